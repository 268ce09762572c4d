package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ondohomes/marketplace/internal/api/metrics"
	"github.com/ondohomes/marketplace/internal/core/ports"
)

// SavedHandler handles HTTP requests for the viewer's saved set.
type SavedHandler struct {
	service ports.SavedService
}

func NewSavedHandler(service ports.SavedService) *SavedHandler {
	return &SavedHandler{service: service}
}

// Toggle handles POST /v1/saved/:id/toggle.
func (h *SavedHandler) Toggle(c echo.Context) error {
	id := c.Param("id")
	saved, err := h.service.Toggle(c.Request().Context(), id)
	if err != nil {
		return err
	}

	result := "unsaved"
	if saved {
		result = "saved"
	}
	metrics.SavedTogglesTotal.WithLabelValues(result).Inc()

	return c.JSON(http.StatusOK, savedToggleResponse{ID: id, Saved: saved})
}

// List handles GET /v1/saved.
func (h *SavedHandler) List(c echo.Context) error {
	ids, err := h.service.All(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, savedListResponse{IDs: ids})
}
