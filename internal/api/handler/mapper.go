package handler

import (
	"github.com/ondohomes/marketplace/internal/core/domain"
	"github.com/ondohomes/marketplace/internal/core/ports"
)

// --- Request → Service input ---

func toListingPatch(req listingPatchRequest) ports.ListingPatch {
	patch := ports.ListingPatch{
		Pincode:        req.Pincode,
		Mobile:         req.Mobile,
		PreferWhatsApp: req.PreferWhatsApp,
		AllowCalls:     req.AllowCalls,
		AllowChat:      req.AllowChat,
		BHK:            req.BHK,
		Bathrooms:      req.Bathrooms,
		BuiltUpArea:    req.BuiltUpArea,
		CarpetArea:     req.CarpetArea,
		MonthlyRent:    req.MonthlyRent,
		Advance:        req.Advance,
		Negotiable:     req.Negotiable,
		MaintenanceFee: req.MaintenanceFee,
		TotalFloors:    req.TotalFloors,
		FloorNumber:    req.FloorNumber,
		Parking:        req.Parking,
		Title:          req.Title,
		Description:    req.Description,
		Images:         req.Images,
		IsActive:       req.IsActive,
	}
	if req.Type != nil {
		t := domain.PropertyType(*req.Type)
		patch.Type = &t
	}
	if req.Furnishing != nil {
		f := domain.Furnishing(*req.Furnishing)
		patch.Furnishing = &f
	}
	if req.PreferredTenant != nil {
		p := domain.TenantPreference(*req.PreferredTenant)
		patch.PreferredTenant = &p
	}
	return patch
}

func toDraftPatch(req draftPatchRequest) ports.DraftPatch {
	patch := ports.DraftPatch{
		Pincode:        req.Pincode,
		Mobile:         req.Mobile,
		PreferWhatsApp: req.PreferWhatsApp,
		AllowCalls:     req.AllowCalls,
		AllowChat:      req.AllowChat,
		BHK:            req.BHK,
		Bathrooms:      req.Bathrooms,
		BuiltUpArea:    req.BuiltUpArea,
		CarpetArea:     req.CarpetArea,
		MonthlyRent:    req.MonthlyRent,
		Advance:        req.Advance,
		Negotiable:     req.Negotiable,
		MaintenanceFee: req.MaintenanceFee,
		TotalFloors:    req.TotalFloors,
		FloorNumber:    req.FloorNumber,
		Parking:        req.Parking,
		Title:          req.Title,
		Description:    req.Description,
		IsActive:       req.IsActive,
	}
	if req.Type != nil {
		t := domain.PropertyType(*req.Type)
		patch.Type = &t
	}
	if req.Furnishing != nil {
		f := domain.Furnishing(*req.Furnishing)
		patch.Furnishing = &f
	}
	if req.PreferredTenant != nil {
		p := domain.TenantPreference(*req.PreferredTenant)
		patch.PreferredTenant = &p
	}
	return patch
}

// --- Service result → HTTP response ---

func toSubmissionResponse(v *ports.SubmissionView) submissionResponse {
	return submissionResponse{
		ID:        v.ID,
		Step:      int(v.Step),
		StepValid: v.StepValid,
		Editing:   v.Editing,
		Draft:     v.Draft,
		Uploading: v.Uploading,
	}
}
