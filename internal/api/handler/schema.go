package handler

import (
	"github.com/ondohomes/marketplace/internal/core/domain"
	"github.com/ondohomes/marketplace/internal/core/ports"
)

// Domain records (Listing, User, Draft) already carry the product's JSON
// contract in their tags, so responses embed them directly. Requests are
// transport-owned types with validation tags.

// --- Session ---

type profilePatchRequest struct {
	Username *string `json:"username"`
	Phone    *string `json:"phone"`
}

// --- Listings ---

type listingPatchRequest struct {
	Type            *string   `json:"type"            validate:"omitempty,oneof=House Apartment Villa Studio"`
	Pincode         *string   `json:"pincode"`
	Mobile          *string   `json:"mobile"`
	PreferWhatsApp  *bool     `json:"preferWhatsApp"`
	AllowCalls      *bool     `json:"allowCalls"`
	AllowChat       *bool     `json:"allowChat"`
	BHK             *string   `json:"bhk"`
	Bathrooms       *string   `json:"bathrooms"`
	Furnishing      *string   `json:"furnishing"      validate:"omitempty,oneof=Fully Semi Unfurnished"`
	BuiltUpArea     *string   `json:"builtUpArea"`
	CarpetArea      *string   `json:"carpetArea"`
	PreferredTenant *string   `json:"preferredTenant" validate:"omitempty,oneof=Family Bachelors Couples"`
	MonthlyRent     *string   `json:"monthlyRent"`
	Advance         *string   `json:"advance"`
	Negotiable      *bool     `json:"negotiable"`
	MaintenanceFee  *string   `json:"maintenanceFee"`
	TotalFloors     *string   `json:"totalFloors"`
	FloorNumber     *string   `json:"floorNumber"`
	Parking         *bool     `json:"parking"`
	Title           *string   `json:"title"`
	Description     *string   `json:"description"`
	Images          *[]string `json:"images"`
	IsActive        *bool     `json:"isActive"`
}

type listListingsResponse struct {
	Data  []domain.Listing `json:"data"`
	Total int              `json:"total"`
}

// --- Saved set ---

type savedToggleResponse struct {
	ID    string `json:"id"`
	Saved bool   `json:"saved"`
}

type savedListResponse struct {
	IDs []string `json:"ids"`
}

// --- Submissions ---

type startSubmissionRequest struct {
	EditListingID string `json:"editListingId"`
}

type draftPatchRequest struct {
	Type            *string `json:"type"            validate:"omitempty,oneof=House Apartment Villa Studio"`
	Pincode         *string `json:"pincode"`
	Mobile          *string `json:"mobile"`
	PreferWhatsApp  *bool   `json:"preferWhatsApp"`
	AllowCalls      *bool   `json:"allowCalls"`
	AllowChat       *bool   `json:"allowChat"`
	BHK             *string `json:"bhk"`
	Bathrooms       *string `json:"bathrooms"`
	Furnishing      *string `json:"furnishing"      validate:"omitempty,oneof=Fully Semi Unfurnished"`
	BuiltUpArea     *string `json:"builtUpArea"`
	CarpetArea      *string `json:"carpetArea"`
	PreferredTenant *string `json:"preferredTenant" validate:"omitempty,oneof=Family Bachelors Couples"`
	MonthlyRent     *string `json:"monthlyRent"`
	Advance         *string `json:"advance"`
	Negotiable      *bool   `json:"negotiable"`
	MaintenanceFee  *string `json:"maintenanceFee"`
	TotalFloors     *string `json:"totalFloors"`
	FloorNumber     *string `json:"floorNumber"`
	Parking         *bool   `json:"parking"`
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	IsActive        *bool   `json:"isActive"`
}

type submissionResponse struct {
	ID        string       `json:"id"`
	Step      int          `json:"step"`
	StepValid bool         `json:"stepValid"`
	Editing   bool         `json:"editing"`
	Draft     domain.Draft `json:"draft"`
	Uploading []int        `json:"uploading"`
}

type attachImageRequest struct {
	Filename string `json:"filename" validate:"required"`
	// Data is the raw photo, base64 in transit per encoding/json.
	Data []byte `json:"data"`
}

type attachImageResponse struct {
	Slot int `json:"slot"`
}

// --- Assist ---

type chatRequest struct {
	Message string `json:"message" validate:"required"`
}

type chatResponse struct {
	Reply    string `json:"reply"`
	Fallback bool   `json:"fallback"`
}

type nearbyRequest struct {
	Query string  `json:"query" validate:"required"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
}

type nearbyResponse struct {
	Found  bool                `json:"found"`
	Result *ports.NearbyResult `json:"result,omitempty"`
}
