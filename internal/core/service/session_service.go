package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/ondohomes/marketplace/internal/core/domain"
	"github.com/ondohomes/marketplace/internal/core/ports"
)

// SessionService owns the current identity. The sign-in is a deterministic
// local stub: it always yields the same mock user after a fixed simulated
// round-trip delay.
type SessionService struct {
	store  ports.KVStore
	delay  time.Duration
	logger zerolog.Logger

	mu      sync.Mutex
	current *domain.User
}

func NewSessionService(store ports.KVStore, signInDelay time.Duration, logger zerolog.Logger) *SessionService {
	return &SessionService{store: store, delay: signInDelay, logger: logger}
}

// mockIdentity is the fixed identity every sign-in produces.
func mockIdentity() domain.User {
	return domain.User{
		ID:         "mock-user-123",
		Name:       "John Doe",
		Username:   "johndoe_ondo",
		Phone:      "9876543210",
		Email:      "john.doe@example.com",
		PhotoURL:   "https://images.unsplash.com/photo-1535713875002-d1d0cf377fde?auto=format&fit=crop&q=80&w=200",
		Membership: domain.TierSilver,
	}
}

// SignIn persists the mock identity and sets it as current. The artificial
// delay models the provider round trip; once started it runs to completion.
func (s *SessionService) SignIn(ctx context.Context) (*domain.User, error) {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}

	user := mockIdentity()
	if err := writeSnapshot(ctx, s.store, ports.KeyCurrentUser, user); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist session")
		return nil, err
	}

	// One-time welcome marker, only set on the very first sign-in.
	var welcomed bool
	if !readSnapshot(ctx, s.store, ports.KeyWelcomed, &welcomed) || !welcomed {
		if err := writeSnapshot(ctx, s.store, ports.KeyWelcomed, true); err != nil {
			s.logger.Warn().Err(err).Msg("failed to set welcomed flag")
		}
	}

	s.mu.Lock()
	s.current = &user
	s.mu.Unlock()

	s.logger.Info().Str("user_id", user.ID).Msg("signed in")
	return &user, nil
}

// Restore returns the persisted identity, if any. Called once at process
// start; it never fabricates a user.
func (s *SessionService) Restore(ctx context.Context) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil {
		u := *s.current
		return &u, nil
	}

	var user domain.User
	if !readSnapshot(ctx, s.store, ports.KeyCurrentUser, &user) || user.ID == "" {
		return nil, domain.ErrNoActiveSession
	}
	s.current = &user
	u := user
	return &u, nil
}

// UpdateProfile merges the patch into the current user. Only username and
// phone are mutable. Editing without an active session is rejected rather
// than fabricating a user out of the patch.
func (s *SessionService) UpdateProfile(ctx context.Context, patch ports.ProfilePatch) (*domain.User, error) {
	current, err := s.Restore(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user := *current
	if patch.Username != nil {
		user.Username = *patch.Username
	}
	if patch.Phone != nil {
		user.Phone = *patch.Phone
	}

	if err := writeSnapshot(ctx, s.store, ports.KeyCurrentUser, user); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist profile update")
		return nil, err
	}
	s.current = &user

	s.logger.Info().Str("user_id", user.ID).Msg("profile updated")
	u := user
	return &u, nil
}

// SignOut clears the persisted and in-memory identity.
func (s *SessionService) SignOut(ctx context.Context) error {
	if err := s.store.Remove(ctx, ports.KeyCurrentUser); err != nil {
		s.logger.Error().Err(err).Msg("failed to clear session")
		return err
	}
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	s.logger.Info().Msg("signed out")
	return nil
}
