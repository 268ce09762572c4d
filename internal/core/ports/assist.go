package ports

import "context"

// TextResult is a prose answer from the assist collaborator. Fallback marks
// the canned degradation text so callers can tell "service produced this"
// from "service failed and this is the default".
type TextResult struct {
	Text     string
	Fallback bool
}

// ImageSuggestion is a title/description pair derived from one listing
// photo. Both fields empty means no suggestion is available.
type ImageSuggestion struct {
	Title       string
	Description string
}

// Empty reports whether the analysis produced no usable suggestion.
func (s ImageSuggestion) Empty() bool {
	return s.Title == "" && s.Description == ""
}

// StructuralFacts are the accumulated draft fields the description
// generator works from.
type StructuralFacts struct {
	Type       string
	BHK        string
	Furnishing string
	Area       string
	Rent       string
	Title      string
}

// NearbyLink is one clickable reference in a grounded location result.
type NearbyLink struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// NearbyResult is a grounded-location search answer.
type NearbyResult struct {
	Text  string       `json:"text"`
	Links []NearbyLink `json:"links"`
}

// AssistService is the generative collaborator behind description writing,
// photo analysis, the chat assistant and nearby search. Implementations are
// opaque and non-deterministic by contract; every operation degrades to a
// safe default instead of raising.
type AssistService interface {
	// GenerateDescription writes listing prose from structural facts. On
	// failure the result carries the fixed fallback sentence, tagged.
	GenerateDescription(ctx context.Context, facts StructuralFacts) TextResult
	// AnalyzeImage suggests a title and description for one photo reference.
	// On failure the suggestion is empty.
	AnalyzeImage(ctx context.Context, imageRef string) ImageSuggestion
	// Chat returns a single-turn assistant reply; a fixed apology on failure.
	Chat(ctx context.Context, message string) TextResult
	// SearchNearby returns a grounded location summary, or nil on failure.
	SearchNearby(ctx context.Context, query string, lat, lng float64) *NearbyResult
}
