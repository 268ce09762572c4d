package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ondohomes/marketplace/internal/api/metrics"
	"github.com/ondohomes/marketplace/internal/core/ports"
)

// AssistHandler exposes the generative collaborator's chat and nearby-search
// surfaces. Description and image assistance live under submissions, where
// the results feed a draft.
type AssistHandler struct {
	service ports.AssistService
}

func NewAssistHandler(service ports.AssistService) *AssistHandler {
	return &AssistHandler{service: service}
}

// Chat handles POST /v1/assist/chat.
func (h *AssistHandler) Chat(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	start := time.Now()
	result := h.service.Chat(c.Request().Context(), req.Message)
	metrics.AssistDuration.WithLabelValues("chat").Observe(time.Since(start).Seconds())
	metrics.AssistRequestsTotal.WithLabelValues("chat", outcome(result.Fallback)).Inc()

	return c.JSON(http.StatusOK, chatResponse{Reply: result.Text, Fallback: result.Fallback})
}

// Nearby handles POST /v1/assist/nearby. An unavailable collaborator is a
// degraded answer, not an error.
func (h *AssistHandler) Nearby(c echo.Context) error {
	var req nearbyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	start := time.Now()
	result := h.service.SearchNearby(c.Request().Context(), req.Query, req.Lat, req.Lng)
	metrics.AssistDuration.WithLabelValues("nearby").Observe(time.Since(start).Seconds())
	metrics.AssistRequestsTotal.WithLabelValues("nearby", outcome(result == nil)).Inc()

	return c.JSON(http.StatusOK, nearbyResponse{Found: result != nil, Result: result})
}

func outcome(degraded bool) string {
	if degraded {
		return "fallback"
	}
	return "ok"
}
