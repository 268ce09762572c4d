package domain

import "errors"

// PropertyType classifies the kind of rentable property.
type PropertyType string

const (
	TypeHouse     PropertyType = "House"
	TypeApartment PropertyType = "Apartment"
	TypeVilla     PropertyType = "Villa"
	TypeStudio    PropertyType = "Studio"
)

// Furnishing describes how furnished a property is offered.
type Furnishing string

const (
	FurnishingFully Furnishing = "Fully"
	FurnishingSemi  Furnishing = "Semi"
	FurnishingNone  Furnishing = "Unfurnished"
)

// TenantPreference is the owner's preferred tenant profile.
type TenantPreference string

const (
	TenantFamily    TenantPreference = "Family"
	TenantBachelors TenantPreference = "Bachelors"
	TenantCouples   TenantPreference = "Couples"
)

var ErrListingNotFound = errors.New("listing not found")
var ErrSubmissionNotFound = errors.New("submission not found")
var ErrSubmissionFinished = errors.New("submission already finished")
var ErrStepInvalid = errors.New("current step is not complete")
var ErrListingQuotaReached = errors.New("active listing quota reached")
var ErrNoActiveSession = errors.New("no active session")

// Listing is a rentable property record. Field names and JSON shape follow
// the persisted storage schema, so a snapshot written by one backend can be
// rehydrated by another.
//
// Numeric-looking facts (rent, areas, floors) are stored as strings: the
// search engine parses them at comparison time and a value that fails to
// parse must fail the budget conjunct rather than match everything.
type Listing struct {
	ID              string           `json:"id"`
	OwnerID         string           `json:"ownerId"`
	Type            PropertyType     `json:"type"`
	Pincode         string           `json:"pincode"`
	Mobile          string           `json:"mobile"`
	PreferWhatsApp  bool             `json:"preferWhatsApp"`
	AllowCalls      bool             `json:"allowCalls"`
	AllowChat       bool             `json:"allowChat"`
	BHK             string           `json:"bhk"`
	Bathrooms       string           `json:"bathrooms"`
	Furnishing      Furnishing       `json:"furnishing"`
	BuiltUpArea     string           `json:"builtUpArea"`
	CarpetArea      string           `json:"carpetArea"`
	PreferredTenant TenantPreference `json:"preferredTenant"`
	MonthlyRent     string           `json:"monthlyRent"`
	Advance         string           `json:"advance"`
	Negotiable      bool             `json:"negotiable"`
	MaintenanceFee  string           `json:"maintenanceFee"`
	TotalFloors     string           `json:"totalFloors"`
	FloorNumber     string           `json:"floorNumber"`
	Parking         bool             `json:"parking"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	Images          []string         `json:"images"`
	CreatedAt       int64            `json:"createdAt"`
	IsActive        bool             `json:"isActive"`
}

// Reachable reports whether at least one contact channel is enabled.
// Not enforced at the data layer; the submission workflow gates on it.
func (l Listing) Reachable() bool {
	return l.AllowCalls || l.AllowChat
}
