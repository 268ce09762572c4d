package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ondohomes/marketplace/internal/core/ports"
)

// SavedService keeps the viewer's bookmarked listing ids. One set per
// installation, persisted after every mutation. Insertion order is kept so
// the saved screen renders in the order homes were bookmarked.
type SavedService struct {
	store  ports.KVStore
	logger zerolog.Logger

	mu sync.Mutex
}

func NewSavedService(store ports.KVStore, logger zerolog.Logger) *SavedService {
	return &SavedService{store: store, logger: logger}
}

// load returns the stored id list; absent or corrupt content is an empty
// set. Caller must hold s.mu.
func (s *SavedService) load(ctx context.Context) []string {
	var ids []string
	readSnapshot(ctx, s.store, ports.KeySavedIDs, &ids)
	return ids
}

// Toggle flips membership for id and returns the new membership state.
// Toggling twice restores the original state.
func (s *SavedService) Toggle(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.load(ctx)
	kept := ids[:0:0]
	removed := false
	for _, existing := range ids {
		if existing == id {
			removed = true
			continue
		}
		kept = append(kept, existing)
	}
	if !removed {
		kept = append(kept, id)
	}

	if err := writeSnapshot(ctx, s.store, ports.KeySavedIDs, kept); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist saved set")
		return false, err
	}

	saved := !removed
	s.logger.Debug().Str("listing_id", id).Bool("saved", saved).Msg("saved set toggled")
	return saved, nil
}

func (s *SavedService) Contains(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.load(ctx) {
		if existing == id {
			return true, nil
		}
	}
	return false, nil
}

func (s *SavedService) All(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx), nil
}
