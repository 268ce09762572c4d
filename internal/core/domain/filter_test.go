package domain

import "testing"

func sampleListings() []Listing {
	return []Listing{
		{
			ID: "a", Title: "Spacious 2BHK in Bangalore Center", Pincode: "560001",
			Description: "Beautiful apartment near the metro", Type: TypeApartment,
			BHK: "2 BHK", Furnishing: FurnishingSemi, PreferredTenant: TenantFamily,
			MonthlyRent: "10000",
		},
		{
			ID: "b", Title: "Villa with garden", Pincode: "560038",
			Description: "Independent villa", Type: TypeVilla,
			BHK: "3 BHK", Furnishing: FurnishingFully, PreferredTenant: TenantCouples,
			MonthlyRent: "50000",
		},
		{
			ID: "c", Title: "Penthouse Studio", Pincode: "110001",
			Description: "Top floor studio", Type: TypeStudio,
			BHK: "1 BHK", Furnishing: FurnishingNone, PreferredTenant: TenantBachelors,
			MonthlyRent: "200000",
		},
	}
}

func unrestricted(budget float64) FilterCriteria {
	return FilterCriteria{Budget: budget}
}

func ids(listings []Listing) []string {
	out := make([]string, len(listings))
	for i, l := range listings {
		out[i] = l.ID
	}
	return out
}

func TestFilterListings_BudgetIsInclusiveUpperBound(t *testing.T) {
	got := FilterListings(sampleListings(), "", unrestricted(50000))

	if len(got) != 2 {
		t.Fatalf("expected 2 listings under budget, got %d (%v)", len(got), ids(got))
	}
	// Stable filter: survivors keep input order.
	if got[0].ID != "a" || got[1].ID != "b" {
		t.Errorf("expected order [a b], got %v", ids(got))
	}
}

func TestFilterListings_EmptyQueryMatchesAll(t *testing.T) {
	got := FilterListings(sampleListings(), "", unrestricted(300000))
	if len(got) != 3 {
		t.Errorf("expected all 3 listings, got %d", len(got))
	}
}

func TestFilterListings_QueryMatchesTitlePincodeOrDescription(t *testing.T) {
	listings := sampleListings()
	cases := []struct {
		query string
		want  []string
	}{
		{"bangalore", []string{"a"}},      // title, case-insensitive
		{"560038", []string{"b"}},         // pincode
		{"metro", []string{"a"}},          // description
		{"STUDIO", []string{"c"}},         // title, uppercase query
		{"nowhere", []string{}},           // no hit in any field
		{"5600", []string{"a", "b"}},      // pincode substring
	}
	for _, tc := range cases {
		got := FilterListings(listings, tc.query, unrestricted(300000))
		if len(got) != len(tc.want) {
			t.Errorf("query %q: expected %v, got %v", tc.query, tc.want, ids(got))
			continue
		}
		for i := range tc.want {
			if got[i].ID != tc.want[i] {
				t.Errorf("query %q: expected %v, got %v", tc.query, tc.want, ids(got))
				break
			}
		}
	}
}

func TestFilterListings_EmptyFacetSetIsUnrestricted(t *testing.T) {
	got := FilterListings(sampleListings(), "", FilterCriteria{Budget: 300000})
	if len(got) != 3 {
		t.Errorf("all-empty facets must not restrict, got %d listings", len(got))
	}
}

func TestFilterListings_FacetSetsAreConjunctive(t *testing.T) {
	listings := sampleListings()

	got := FilterListings(listings, "", FilterCriteria{
		Budget: 300000,
		BHK:    []string{"2 BHK", "3 BHK"},
		Type:   []string{"Villa"},
	})
	if len(got) != 1 || got[0].ID != "b" {
		t.Errorf("expected only b, got %v", ids(got))
	}

	// A facet set that matches nothing rejects everything even when other
	// facets would pass.
	got = FilterListings(listings, "", FilterCriteria{
		Budget:     300000,
		Furnishing: []string{"Gilded"},
	})
	if len(got) != 0 {
		t.Errorf("expected no matches, got %v", ids(got))
	}
}

func TestFilterListings_UnparsableRentFailsBudget(t *testing.T) {
	listings := []Listing{
		{ID: "ok", MonthlyRent: "25000"},
		{ID: "blank", MonthlyRent: ""},
		{ID: "words", MonthlyRent: "negotiable"},
	}
	got := FilterListings(listings, "", unrestricted(300000))
	if len(got) != 1 || got[0].ID != "ok" {
		t.Errorf("unparsable rents must be excluded, got %v", ids(got))
	}
}

func TestFilterListings_DoesNotMutateInput(t *testing.T) {
	listings := sampleListings()
	_ = FilterListings(listings, "villa", unrestricted(300000))
	if listings[0].ID != "a" || listings[2].ID != "c" {
		t.Error("input slice order changed")
	}
}
