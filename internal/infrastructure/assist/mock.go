package assist

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ondohomes/marketplace/internal/core/ports"
)

// Canned texts the collaborator degrades to. Callers can tell them apart
// from real answers by the Fallback tag, never by string comparison.
const (
	descriptionFallback = "Experience luxury living in this beautifully maintained property, offering modern amenities and direct owner connectivity with zero brokerage fees."
	chatFallback        = "I'm having trouble connecting to my brain right now. Please try again!"
)

// NearbyCache memoizes grounded location answers. Satisfied by the Redis
// cache; nil disables caching.
type NearbyCache interface {
	Lookup(ctx context.Context, query string, lat, lng float64) *ports.NearbyResult
	Store(ctx context.Context, query string, lat, lng float64, result *ports.NearbyResult) error
}

// MockAssist is the in-process stand-in for the generative collaborator. It
// answers deterministically from its inputs so the rest of the system can be
// exercised without network credentials.
type MockAssist struct {
	cache NearbyCache
	log   zerolog.Logger
}

// NewMockAssist creates a MockAssist. cache may be nil.
func NewMockAssist(cache NearbyCache, log zerolog.Logger) *MockAssist {
	return &MockAssist{cache: cache, log: log}
}

// GenerateDescription writes listing prose from the draft's structural
// facts. It needs a title and a rent to say anything useful; without them it
// returns the tagged fallback sentence.
func (a *MockAssist) GenerateDescription(_ context.Context, facts ports.StructuralFacts) ports.TextResult {
	if facts.Title == "" || facts.Rent == "" {
		return ports.TextResult{Text: descriptionFallback, Fallback: true}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s is a %s %s", facts.Title, facts.BHK, strings.ToLower(facts.Type))
	if facts.Area != "" {
		fmt.Fprintf(&b, " spanning %s sq ft", facts.Area)
	}
	if facts.Furnishing != "" {
		fmt.Fprintf(&b, ", offered %sly furnished", strings.ToLower(facts.Furnishing))
	}
	b.WriteString(". ")
	fmt.Fprintf(&b, "Available at ₹%s per month, it combines comfortable living with excellent value. ", facts.Rent)
	b.WriteString("Deal directly with the owner and pay zero brokerage on Ondo Homes.")

	return ports.TextResult{Text: b.String()}
}

// AnalyzeImage suggests a title and description for one photo reference. The
// mock cannot see pixels, so an empty reference is its only failure mode.
func (a *MockAssist) AnalyzeImage(_ context.Context, imageRef string) ports.ImageSuggestion {
	if imageRef == "" {
		return ports.ImageSuggestion{}
	}
	return ports.ImageSuggestion{
		Title:       "Bright, Move-In Ready Home",
		Description: "This inviting home pairs generous natural light with a clean, modern finish. Thoughtfully laid out living spaces flow into a practical kitchen and restful bedrooms. A home that photographs well and lives even better.",
	}
}

// Chat is the single-turn OndoBot reply.
func (a *MockAssist) Chat(_ context.Context, message string) ports.TextResult {
	msg := strings.ToLower(message)
	switch {
	case msg == "":
		return ports.TextResult{Text: chatFallback, Fallback: true}
	case strings.Contains(msg, "membership") || strings.Contains(msg, "silver") || strings.Contains(msg, "gold"):
		return ports.TextResult{Text: "Ondo Homes memberships are simple: Silver members can keep one listing live, while Gold and Platinum members can keep two. Every tier connects owners and tenants directly with zero brokerage."}
	case strings.Contains(msg, "broker"):
		return ports.TextResult{Text: "Ondo Homes is a zero-brokerage platform. Owners and tenants deal directly, so there are no broker fees on either side."}
	default:
		return ports.TextResult{Text: "Happy to help! You can search rentals by locality or pincode, save the homes you like, and list your own property in four quick steps. What would you like to do?"}
	}
}

// SearchNearby returns a grounded locality summary, going through the cache
// when one is wired in. An empty query yields no result.
func (a *MockAssist) SearchNearby(ctx context.Context, query string, lat, lng float64) *ports.NearbyResult {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	if a.cache != nil {
		if cached := a.cache.Lookup(ctx, query, lat, lng); cached != nil {
			a.log.Debug().Str("query", query).Msg("nearby search served from cache")
			return cached
		}
	}

	result := &ports.NearbyResult{
		Text: fmt.Sprintf("Around %s you will find a mix of established residential pockets and newer gated communities, with rentals concentrated near the main transit corridors. Family-friendly localities with parks and schools sit within a short commute.", query),
		Links: []ports.NearbyLink{
			{Title: fmt.Sprintf("Rentals near %s", query), URI: fmt.Sprintf("https://maps.google.com/?q=rentals+near+%s", strings.ReplaceAll(query, " ", "+"))},
		},
	}

	if a.cache != nil {
		if err := a.cache.Store(ctx, query, lat, lng, result); err != nil {
			a.log.Warn().Err(err).Str("query", query).Msg("failed to cache nearby result")
		}
	}
	return result
}
