package ports

import (
	"context"

	"github.com/ondohomes/marketplace/internal/core/domain"
)

// StartSubmissionInput opens a new submission workflow. EditListingID is
// empty for a brand-new listing; when set, the draft is pre-populated from
// that listing and completion updates it in place. The owner identity comes
// from the active session, never from the caller.
type StartSubmissionInput struct {
	EditListingID string
}

// DraftPatch is a typed partial update of a submission draft. Nil fields
// are untouched. Images are managed through AttachImage/RemoveImage, not
// through the patch.
type DraftPatch struct {
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
	IsActive        *bool
}

// Apply merges the patch into the draft.
func (p DraftPatch) Apply(d *domain.Draft) {
	if p.Type != nil {
		d.Type = *p.Type
	}
	if p.Pincode != nil {
		d.Pincode = *p.Pincode
	}
	if p.Mobile != nil {
		d.Mobile = *p.Mobile
	}
	if p.PreferWhatsApp != nil {
		d.PreferWhatsApp = *p.PreferWhatsApp
	}
	if p.AllowCalls != nil {
		d.AllowCalls = *p.AllowCalls
	}
	if p.AllowChat != nil {
		d.AllowChat = *p.AllowChat
	}
	if p.BHK != nil {
		d.BHK = *p.BHK
	}
	if p.Bathrooms != nil {
		d.Bathrooms = *p.Bathrooms
	}
	if p.Furnishing != nil {
		d.Furnishing = *p.Furnishing
	}
	if p.BuiltUpArea != nil {
		d.BuiltUpArea = *p.BuiltUpArea
	}
	if p.CarpetArea != nil {
		d.CarpetArea = *p.CarpetArea
	}
	if p.PreferredTenant != nil {
		d.PreferredTenant = *p.PreferredTenant
	}
	if p.MonthlyRent != nil {
		d.MonthlyRent = *p.MonthlyRent
	}
	if p.Advance != nil {
		d.Advance = *p.Advance
	}
	if p.Negotiable != nil {
		d.Negotiable = *p.Negotiable
	}
	if p.MaintenanceFee != nil {
		d.MaintenanceFee = *p.MaintenanceFee
	}
	if p.TotalFloors != nil {
		d.TotalFloors = *p.TotalFloors
	}
	if p.FloorNumber != nil {
		d.FloorNumber = *p.FloorNumber
	}
	if p.Parking != nil {
		d.Parking = *p.Parking
	}
	if p.Title != nil {
		d.Title = *p.Title
	}
	if p.Description != nil {
		d.Description = *p.Description
	}
	if p.IsActive != nil {
		d.IsActive = *p.IsActive
	}
}

// SubmissionView is a point-in-time snapshot of one workflow, safe for the
// transport layer to render.
type SubmissionView struct {
	ID        string
	Step      domain.Step
	StepValid bool
	Editing   bool
	Draft     domain.Draft
	// Uploading lists the in-flight photo slot indices so the caller can
	// show per-slot progress.
	Uploading []int
}

// SubmissionService runs listing submission workflows: a four-step state
// machine per submission, with asynchronous photo uploads and optional AI
// assistance.
type SubmissionService interface {
	// Start opens a workflow. New listings are gated by the membership
	// quota (domain.ErrListingQuotaReached); edits are not.
	Start(ctx context.Context, input StartSubmissionInput) (*SubmissionView, error)
	// Get returns the current snapshot or domain.ErrSubmissionNotFound.
	Get(id string) (*SubmissionView, error)
	// UpdateDraft merges the patch into the draft.
	UpdateDraft(id string, patch DraftPatch) (*SubmissionView, error)
	// Next advances one step; refused with domain.ErrStepInvalid while the
	// current step's required fields are incomplete.
	Next(id string) (*SubmissionView, error)
	// Back regresses one step, never below step one.
	Back(id string) (*SubmissionView, error)
	// Cancel discards the workflow and its draft.
	Cancel(id string) error
	// Complete finishes the workflow from a valid step four, writing the
	// listing through the repository (create, or update when editing).
	Complete(ctx context.Context, id string) (*domain.Listing, error)
	// AttachImage reserves a photo slot and uploads asynchronously. The
	// returned index identifies the slot while in flight; the finished URL
	// is appended to the draft in upload-completion order.
	AttachImage(ctx context.Context, id, filename string, data []byte) (int, error)
	// RemoveImage drops an already-uploaded image by its position.
	RemoveImage(id string, index int) (*SubmissionView, error)
	// SuggestDescription asks the assist collaborator for prose from the
	// draft's structural facts; fallback answers leave the draft unchanged.
	SuggestDescription(ctx context.Context, id string) (*SubmissionView, error)
	// DescribeImage asks for a title+description from an uploaded photo;
	// empty suggestions leave the draft unchanged.
	DescribeImage(ctx context.Context, id string, imageIndex int) (*SubmissionView, error)
}
