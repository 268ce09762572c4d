package ports

import (
	"context"

	"github.com/ondohomes/marketplace/internal/core/domain"
)

// ListingPatch is a typed partial update. Only non-nil fields are applied;
// id, ownerId and createdAt have no representation here so a careless caller
// cannot overwrite them.
type ListingPatch struct {
	Type            *domain.PropertyType
	Pincode         *string
	Mobile          *string
	PreferWhatsApp  *bool
	AllowCalls      *bool
	AllowChat       *bool
	BHK             *string
	Bathrooms       *string
	Furnishing      *domain.Furnishing
	BuiltUpArea     *string
	CarpetArea      *string
	PreferredTenant *domain.TenantPreference
	MonthlyRent     *string
	Advance         *string
	Negotiable      *bool
	MaintenanceFee  *string
	TotalFloors     *string
	FloorNumber     *string
	Parking         *bool
	Title           *string
	Description     *string
	Images          *[]string
	IsActive        *bool
}

// Apply merges the patch into the listing.
func (p ListingPatch) Apply(l *domain.Listing) {
	if p.Type != nil {
		l.Type = *p.Type
	}
	if p.Pincode != nil {
		l.Pincode = *p.Pincode
	}
	if p.Mobile != nil {
		l.Mobile = *p.Mobile
	}
	if p.PreferWhatsApp != nil {
		l.PreferWhatsApp = *p.PreferWhatsApp
	}
	if p.AllowCalls != nil {
		l.AllowCalls = *p.AllowCalls
	}
	if p.AllowChat != nil {
		l.AllowChat = *p.AllowChat
	}
	if p.BHK != nil {
		l.BHK = *p.BHK
	}
	if p.Bathrooms != nil {
		l.Bathrooms = *p.Bathrooms
	}
	if p.Furnishing != nil {
		l.Furnishing = *p.Furnishing
	}
	if p.BuiltUpArea != nil {
		l.BuiltUpArea = *p.BuiltUpArea
	}
	if p.CarpetArea != nil {
		l.CarpetArea = *p.CarpetArea
	}
	if p.PreferredTenant != nil {
		l.PreferredTenant = *p.PreferredTenant
	}
	if p.MonthlyRent != nil {
		l.MonthlyRent = *p.MonthlyRent
	}
	if p.Advance != nil {
		l.Advance = *p.Advance
	}
	if p.Negotiable != nil {
		l.Negotiable = *p.Negotiable
	}
	if p.MaintenanceFee != nil {
		l.MaintenanceFee = *p.MaintenanceFee
	}
	if p.TotalFloors != nil {
		l.TotalFloors = *p.TotalFloors
	}
	if p.FloorNumber != nil {
		l.FloorNumber = *p.FloorNumber
	}
	if p.Parking != nil {
		l.Parking = *p.Parking
	}
	if p.Title != nil {
		l.Title = *p.Title
	}
	if p.Description != nil {
		l.Description = *p.Description
	}
	if p.Images != nil {
		imgs := make([]string, len(*p.Images))
		copy(imgs, *p.Images)
		l.Images = imgs
	}
	if p.IsActive != nil {
		l.IsActive = *p.IsActive
	}
}

// ListingService owns the listing collection.
type ListingService interface {
	// List returns all listings newest-first. The very first call seeds the
	// store with the bootstrap record.
	List(ctx context.Context) ([]domain.Listing, error)
	// Get returns one listing or domain.ErrListingNotFound.
	Get(ctx context.Context, id string) (*domain.Listing, error)
	// Create materializes a draft into a stored listing with a fresh id and
	// creation timestamp, prepending it to the collection.
	Create(ctx context.Context, ownerID string, draft domain.Draft) (*domain.Listing, error)
	// Update merges the patch into the listing with the given id. A missing
	// id is a silent no-op.
	Update(ctx context.Context, id string, patch ListingPatch) error
	// Delete removes the listing. A missing id is a silent no-op.
	Delete(ctx context.Context, id string) error
	// Search filters the collection with the query and criteria, preserving
	// stored order.
	Search(ctx context.Context, query string, criteria domain.FilterCriteria) ([]domain.Listing, error)
	// ActiveCountForOwner counts the owner's listings with isActive set.
	ActiveCountForOwner(ctx context.Context, ownerID string) (int, error)
}
