package domain

import (
	"strconv"
	"strings"
)

// FilterCriteria restricts a listing search. Budget is an inclusive upper
// bound on monthly rent. Each facet slice is a set of accepted values; an
// empty set means the facet is unrestricted, which is not the same thing as
// rejecting everything.
type FilterCriteria struct {
	Budget     float64
	BHK        []string
	Type       []string
	Furnishing []string
	Tenant     []string
}

// FilterListings returns the listings matching the free-text query and the
// criteria. The filter is stable: survivors keep their relative input order,
// and the input slice is never mutated.
func FilterListings(listings []Listing, query string, c FilterCriteria) []Listing {
	out := make([]Listing, 0, len(listings))
	for _, l := range listings {
		if matches(l, query, c) {
			out = append(out, l)
		}
	}
	return out
}

// matches evaluates the conjunction of all filter dimensions for one listing.
func matches(l Listing, query string, c FilterCriteria) bool {
	if !matchesQuery(l, query) {
		return false
	}
	// A rent that does not parse fails the budget conjunct.
	rent, err := strconv.ParseFloat(strings.TrimSpace(l.MonthlyRent), 64)
	if err != nil || rent > c.Budget {
		return false
	}
	return facetAccepts(c.BHK, l.BHK) &&
		facetAccepts(c.Type, string(l.Type)) &&
		facetAccepts(c.Furnishing, string(l.Furnishing)) &&
		facetAccepts(c.Tenant, string(l.PreferredTenant))
}

// matchesQuery is a case-insensitive substring match over title, pincode and
// description. Any single hit is sufficient; an empty query matches all.
func matchesQuery(l Listing, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(l.Title), q) ||
		strings.Contains(l.Pincode, query) ||
		strings.Contains(strings.ToLower(l.Description), q)
}

func facetAccepts(accepted []string, value string) bool {
	if len(accepted) == 0 {
		return true
	}
	for _, a := range accepted {
		if a == value {
			return true
		}
	}
	return false
}
