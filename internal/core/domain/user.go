package domain

// MembershipTier controls how many active listings a user may hold.
type MembershipTier string

const (
	TierSilver   MembershipTier = "Silver"
	TierGold     MembershipTier = "Gold"
	TierPlatinum MembershipTier = "Platinum"
)

// MaxActiveListings returns the active-listing quota for a tier.
// Silver allows a single listing; Gold and Platinum double the capacity.
// An unknown tier is treated as the paid quota, matching the product rule
// that only Silver is restricted.
func (t MembershipTier) MaxActiveListings() int {
	if t == TierSilver {
		return 1
	}
	return 2
}

// CanCreateListing reports whether an owner on the given tier may start
// another listing, given their current count of active listings. Hidden
// (inactive) listings do not count against the quota.
//
// The rule is evaluated when a submission starts, not when it completes:
// a tier change mid-flow can exceed the quota. The deployment is
// single-actor, so the window is theoretical.
func CanCreateListing(tier MembershipTier, activeCount int) bool {
	return activeCount < tier.MaxActiveListings()
}

// User is the signed-in identity. ID, Name and Email are fixed at sign-in;
// Username and Phone are the only profile-editable fields.
type User struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Username   string         `json:"username,omitempty"`
	Phone      string         `json:"phone,omitempty"`
	Email      string         `json:"email"`
	PhotoURL   string         `json:"photoURL"`
	Membership MembershipTier `json:"membership"`
}
