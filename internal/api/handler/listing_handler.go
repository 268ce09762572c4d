package handler

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ondohomes/marketplace/internal/api/metrics"
	"github.com/ondohomes/marketplace/internal/core/domain"
	"github.com/ondohomes/marketplace/internal/core/ports"
)

// ListingHandler handles HTTP requests for the listing catalog.
type ListingHandler struct {
	service ports.ListingService
}

func NewListingHandler(service ports.ListingService) *ListingHandler {
	return &ListingHandler{service: service}
}

// Search handles GET /v1/listings.
//
// Query parameters: q (free text), budget (monthly rent ceiling), and the
// comma-separated facet sets bhk, type, furnishing, tenant. Without a budget
// every parseable rent passes.
func (h *ListingHandler) Search(c echo.Context) error {
	query := c.QueryParam("q")
	criteria := domain.FilterCriteria{
		Budget:     math.MaxFloat64,
		BHK:        splitFacet(c.QueryParam("bhk")),
		Type:       splitFacet(c.QueryParam("type")),
		Furnishing: splitFacet(c.QueryParam("furnishing")),
		Tenant:     splitFacet(c.QueryParam("tenant")),
	}
	if raw := c.QueryParam("budget"); raw != "" {
		budget, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "budget must be a number")
		}
		criteria.Budget = budget
	}

	listings, err := h.service.Search(c.Request().Context(), query, criteria)
	if err != nil {
		return err
	}

	metrics.SearchesTotal.Inc()
	return c.JSON(http.StatusOK, listListingsResponse{Data: listings, Total: len(listings)})
}

// Get handles GET /v1/listings/:id.
func (h *ListingHandler) Get(c echo.Context) error {
	listing, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listing)
}

// Update handles PATCH /v1/listings/:id.
func (h *ListingHandler) Update(c echo.Context) error {
	var req listingPatchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id := c.Param("id")
	if err := h.service.Update(c.Request().Context(), id, toListingPatch(req)); err != nil {
		return err
	}

	listing, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listing)
}

// Delete handles DELETE /v1/listings/:id.
func (h *ListingHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ToggleActive handles POST /v1/listings/:id/toggle-active, flipping the
// listing's visibility.
func (h *ListingHandler) ToggleActive(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	listing, err := h.service.Get(ctx, id)
	if err != nil {
		return err
	}

	flipped := !listing.IsActive
	if err := h.service.Update(ctx, id, ports.ListingPatch{IsActive: &flipped}); err != nil {
		return err
	}

	listing.IsActive = flipped
	return c.JSON(http.StatusOK, listing)
}

// splitFacet parses a comma-separated facet parameter into a value set.
func splitFacet(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := parts[:0]
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
