package domain

import "testing"

// completeDraft returns a draft that satisfies every step predicate.
func completeDraft() Draft {
	d := NewDraft()
	d.Pincode = "560001"
	d.Mobile = "9876543210"
	d.BuiltUpArea = "1200"
	d.CarpetArea = "1000"
	d.MonthlyRent = "25000"
	d.Title = "Sunny 1BHK"
	d.Description = "Bright and airy"
	d.Images = []string{"https://cdn.example.com/img/1.jpg"}
	return d
}

func TestNewDraft_Defaults(t *testing.T) {
	d := NewDraft()
	if d.Type != TypeApartment {
		t.Errorf("default type = %s, want Apartment", d.Type)
	}
	if d.BHK != "1 BHK" {
		t.Errorf("default bhk = %q, want \"1 BHK\"", d.BHK)
	}
	if !d.AllowCalls || !d.AllowChat {
		t.Error("both contact channels must default to enabled")
	}
	if !d.Negotiable || !d.IsActive {
		t.Error("negotiable and isActive must default to true")
	}
	if d.MaintenanceFee != "0" {
		t.Errorf("default maintenance fee = %q, want \"0\"", d.MaintenanceFee)
	}
}

func TestStepValid_PerStepPredicates(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Draft)
		step   Step
		want   bool
	}{
		{"complete draft passes step 1", nil, StepBasics, true},
		{"missing pincode fails step 1", func(d *Draft) { d.Pincode = "" }, StepBasics, false},
		{"missing mobile fails step 1", func(d *Draft) { d.Mobile = "" }, StepBasics, false},
		{"no contact channel fails step 1", func(d *Draft) { d.AllowCalls = false; d.AllowChat = false }, StepBasics, false},
		{"one contact channel passes step 1", func(d *Draft) { d.AllowCalls = false }, StepBasics, true},
		{"complete draft passes step 2", nil, StepSpecs, true},
		{"missing carpet area fails step 2", func(d *Draft) { d.CarpetArea = "" }, StepSpecs, false},
		{"complete draft passes step 3", nil, StepFinancials, true},
		{"missing rent fails step 3", func(d *Draft) { d.MonthlyRent = "" }, StepFinancials, false},
		{"missing title fails step 3", func(d *Draft) { d.Title = "" }, StepFinancials, false},
		{"missing description fails step 3", func(d *Draft) { d.Description = "" }, StepFinancials, false},
		{"one image passes step 4", nil, StepMedia, true},
		{"no images fails step 4", func(d *Draft) { d.Images = nil }, StepMedia, false},
		{"unknown step never valid", nil, Step(9), false},
	}
	for _, tc := range cases {
		d := completeDraft()
		if tc.mutate != nil {
			tc.mutate(&d)
		}
		if got := d.StepValid(tc.step); got != tc.want {
			t.Errorf("%s: StepValid(%d) = %v, want %v", tc.name, tc.step, got, tc.want)
		}
	}
}

func TestDraftFromListing_RoundTrip(t *testing.T) {
	l := Listing{
		ID: "x1", OwnerID: "owner-1", Type: TypeVilla, Pincode: "560038",
		Mobile: "9000000000", AllowChat: true, BHK: "3 BHK", Bathrooms: "3",
		Furnishing: FurnishingFully, BuiltUpArea: "2400", CarpetArea: "2000",
		PreferredTenant: TenantCouples, MonthlyRent: "80000", Advance: "240000",
		Negotiable: false, MaintenanceFee: "5000", TotalFloors: "2", FloorNumber: "1",
		Parking: true, Title: "Garden villa", Description: "Quiet lane",
		Images: []string{"a.jpg", "b.jpg"}, CreatedAt: 1700000000000, IsActive: true,
	}

	d := DraftFromListing(l)
	back := d.Listing(l.ID, l.OwnerID, l.CreatedAt)
	if back.Title != l.Title || back.MonthlyRent != l.MonthlyRent || back.Furnishing != l.Furnishing {
		t.Error("draft round trip lost field values")
	}
	if len(back.Images) != 2 || back.Images[0] != "a.jpg" {
		t.Errorf("images not preserved: %v", back.Images)
	}

	// The draft owns its own image slice.
	d.Images[0] = "mutated.jpg"
	if l.Images[0] != "a.jpg" {
		t.Error("mutating the draft leaked into the source listing")
	}
}

func TestDraftListing_AssignsIdentityFromCaller(t *testing.T) {
	d := completeDraft()
	l := d.Listing("id-9", "owner-7", 1234)
	if l.ID != "id-9" || l.OwnerID != "owner-7" || l.CreatedAt != 1234 {
		t.Errorf("identity not applied: %+v", l)
	}
}
