package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/ondohomes/marketplace/internal/api/handler"
	"github.com/ondohomes/marketplace/internal/core/ports"
)

// Dependencies carries the wired services the router exposes.
type Dependencies struct {
	Logger      zerolog.Logger
	Session     ports.SessionService
	Listings    ports.ListingService
	Saved       ports.SavedService
	Submissions ports.SubmissionService
	Assist      ports.AssistService
	// HealthChecks maps a dependency name to its readiness ping.
	HealthChecks map[string]handler.Pinger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("marketplace"))

	// --- Handlers ---
	sessionHandler := handler.NewSessionHandler(deps.Session)
	listingHandler := handler.NewListingHandler(deps.Listings)
	savedHandler := handler.NewSavedHandler(deps.Saved)
	submissionHandler := handler.NewSubmissionHandler(deps.Submissions)
	assistHandler := handler.NewAssistHandler(deps.Assist)
	healthHandler := handler.NewHealthHandler(deps.HealthChecks)

	// --- Session ---
	e.POST("/v1/session", sessionHandler.SignIn)
	e.GET("/v1/session", sessionHandler.Current)
	e.PATCH("/v1/session/profile", sessionHandler.UpdateProfile)
	e.DELETE("/v1/session", sessionHandler.SignOut)

	// --- Listings (creation goes through submissions) ---
	e.GET("/v1/listings", listingHandler.Search)
	e.GET("/v1/listings/:id", listingHandler.Get)
	e.PATCH("/v1/listings/:id", listingHandler.Update)
	e.DELETE("/v1/listings/:id", listingHandler.Delete)
	e.POST("/v1/listings/:id/toggle-active", listingHandler.ToggleActive)

	// --- Saved set ---
	e.POST("/v1/saved/:id/toggle", savedHandler.Toggle)
	e.GET("/v1/saved", savedHandler.List)

	// --- Submission workflows ---
	e.POST("/v1/submissions", submissionHandler.Start)
	e.GET("/v1/submissions/:id", submissionHandler.Get)
	e.PATCH("/v1/submissions/:id/draft", submissionHandler.UpdateDraft)
	e.POST("/v1/submissions/:id/next", submissionHandler.Next)
	e.POST("/v1/submissions/:id/back", submissionHandler.Back)
	e.POST("/v1/submissions/:id/complete", submissionHandler.Complete)
	e.DELETE("/v1/submissions/:id", submissionHandler.Cancel)
	e.POST("/v1/submissions/:id/images", submissionHandler.AttachImage)
	e.DELETE("/v1/submissions/:id/images/:index", submissionHandler.RemoveImage)
	e.POST("/v1/submissions/:id/suggest-description", submissionHandler.SuggestDescription)
	e.POST("/v1/submissions/:id/describe", submissionHandler.DescribeImage)

	// --- Assist ---
	e.POST("/v1/assist/chat", assistHandler.Chat)
	e.POST("/v1/assist/nearby", assistHandler.Nearby)

	// --- Operational endpoints ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
