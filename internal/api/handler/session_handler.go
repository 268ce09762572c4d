package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ondohomes/marketplace/internal/core/ports"
)

// SessionHandler handles HTTP requests for the viewer's session.
type SessionHandler struct {
	service ports.SessionService
}

func NewSessionHandler(service ports.SessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

// SignIn handles POST /v1/session.
func (h *SessionHandler) SignIn(c echo.Context) error {
	user, err := h.service.SignIn(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

// Current handles GET /v1/session.
func (h *SessionHandler) Current(c echo.Context) error {
	user, err := h.service.Restore(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateProfile handles PATCH /v1/session/profile.
func (h *SessionHandler) UpdateProfile(c echo.Context) error {
	var req profilePatchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.service.UpdateProfile(c.Request().Context(), ports.ProfilePatch{
		Username: req.Username,
		Phone:    req.Phone,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// SignOut handles DELETE /v1/session.
func (h *SessionHandler) SignOut(c echo.Context) error {
	if err := h.service.SignOut(c.Request().Context()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
