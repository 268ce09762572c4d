package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ondohomes/marketplace/internal/api/metrics"
	"github.com/ondohomes/marketplace/internal/core/domain"
	"github.com/ondohomes/marketplace/internal/core/ports"
)

// SubmissionHandler handles HTTP requests for listing submission workflows.
type SubmissionHandler struct {
	service ports.SubmissionService
}

func NewSubmissionHandler(service ports.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{service: service}
}

// Start handles POST /v1/submissions.
func (h *SubmissionHandler) Start(c echo.Context) error {
	var req startSubmissionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	view, err := h.service.Start(c.Request().Context(), ports.StartSubmissionInput{
		EditListingID: req.EditListingID,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrListingQuotaReached):
			metrics.SubmissionsRefusedTotal.WithLabelValues("quota").Inc()
		case errors.Is(err, domain.ErrNoActiveSession):
			metrics.SubmissionsRefusedTotal.WithLabelValues("no_session").Inc()
		}
		return err
	}

	mode := "new"
	if view.Editing {
		mode = "edit"
	}
	metrics.SubmissionsStartedTotal.WithLabelValues(mode).Inc()

	return c.JSON(http.StatusCreated, toSubmissionResponse(view))
}

// Get handles GET /v1/submissions/:id.
func (h *SubmissionHandler) Get(c echo.Context) error {
	view, err := h.service.Get(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSubmissionResponse(view))
}

// UpdateDraft handles PATCH /v1/submissions/:id/draft.
func (h *SubmissionHandler) UpdateDraft(c echo.Context) error {
	var req draftPatchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.service.UpdateDraft(c.Param("id"), toDraftPatch(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSubmissionResponse(view))
}

// Next handles POST /v1/submissions/:id/next.
func (h *SubmissionHandler) Next(c echo.Context) error {
	view, err := h.service.Next(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSubmissionResponse(view))
}

// Back handles POST /v1/submissions/:id/back.
func (h *SubmissionHandler) Back(c echo.Context) error {
	view, err := h.service.Back(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSubmissionResponse(view))
}

// Cancel handles DELETE /v1/submissions/:id.
func (h *SubmissionHandler) Cancel(c echo.Context) error {
	if err := h.service.Cancel(c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Complete handles POST /v1/submissions/:id/complete.
func (h *SubmissionHandler) Complete(c echo.Context) error {
	id := c.Param("id")

	view, err := h.service.Get(id)
	if err != nil {
		return err
	}
	mode := "new"
	if view.Editing {
		mode = "edit"
	}

	listing, err := h.service.Complete(c.Request().Context(), id)
	if err != nil {
		return err
	}

	metrics.ListingsPublishedTotal.WithLabelValues(mode).Inc()
	return c.JSON(http.StatusCreated, listing)
}

// AttachImage handles POST /v1/submissions/:id/images. The upload runs
// asynchronously; 202 acknowledges the reserved slot.
func (h *SubmissionHandler) AttachImage(c echo.Context) error {
	var req attachImageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	slot, err := h.service.AttachImage(c.Request().Context(), c.Param("id"), req.Filename, req.Data)
	if err != nil {
		return err
	}

	metrics.PhotoUploadsTotal.Inc()
	return c.JSON(http.StatusAccepted, attachImageResponse{Slot: slot})
}

// RemoveImage handles DELETE /v1/submissions/:id/images/:index.
func (h *SubmissionHandler) RemoveImage(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "index must be a number")
	}

	view, err := h.service.RemoveImage(c.Param("id"), index)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSubmissionResponse(view))
}

// SuggestDescription handles POST /v1/submissions/:id/suggest-description.
func (h *SubmissionHandler) SuggestDescription(c echo.Context) error {
	view, err := h.service.SuggestDescription(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSubmissionResponse(view))
}

// DescribeImage handles POST /v1/submissions/:id/describe.
func (h *SubmissionHandler) DescribeImage(c echo.Context) error {
	var req struct {
		ImageIndex int `json:"imageIndex"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	view, err := h.service.DescribeImage(c.Request().Context(), c.Param("id"), req.ImageIndex)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSubmissionResponse(view))
}
