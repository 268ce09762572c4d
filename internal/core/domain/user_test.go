package domain

import "testing"

func TestCanCreateListing_QuotaBoundaries(t *testing.T) {
	cases := []struct {
		tier   MembershipTier
		active int
		want   bool
	}{
		{TierSilver, 0, true},
		{TierSilver, 1, false},
		{TierGold, 0, true},
		{TierGold, 1, true},
		{TierGold, 2, false},
		{TierPlatinum, 1, true},
		{TierPlatinum, 2, false},
	}
	for _, tc := range cases {
		if got := CanCreateListing(tc.tier, tc.active); got != tc.want {
			t.Errorf("CanCreateListing(%s, %d) = %v, want %v", tc.tier, tc.active, got, tc.want)
		}
	}
}

func TestMaxActiveListings_UnknownTierGetsPaidQuota(t *testing.T) {
	if got := MembershipTier("Diamond").MaxActiveListings(); got != 2 {
		t.Errorf("unknown tier quota = %d, want 2", got)
	}
}
