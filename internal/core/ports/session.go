package ports

import (
	"context"

	"github.com/ondohomes/marketplace/internal/core/domain"
)

// ProfilePatch carries the profile fields a user may edit. Nil fields are
// left untouched; identity fields (id, name, email) are not representable
// here on purpose.
type ProfilePatch struct {
	Username *string
	Phone    *string
}

// SessionService owns the current authenticated identity.
type SessionService interface {
	// SignIn produces the deterministic mock identity, persists it and sets
	// it as current. The call simulates a fixed-latency round trip.
	SignIn(ctx context.Context) (*domain.User, error)
	// Restore returns the persisted identity, or domain.ErrNoActiveSession
	// when none exists. It never fabricates a user.
	Restore(ctx context.Context) (*domain.User, error)
	// UpdateProfile merges the patch into the current user. It fails with
	// domain.ErrNoActiveSession when nobody is signed in.
	UpdateProfile(ctx context.Context, patch ProfilePatch) (*domain.User, error)
	// SignOut clears the persisted and in-memory identity.
	SignOut(ctx context.Context) error
}
