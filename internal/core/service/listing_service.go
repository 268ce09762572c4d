package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ondohomes/marketplace/internal/core/domain"
	"github.com/ondohomes/marketplace/internal/core/ports"
)

// ListingService owns the listing collection. Every mutation is a full
// read-modify-write of the snapshot under the listings key: the dataset is
// small and local, and a completed write always leaves an internally
// consistent snapshot. The mutex serializes those cycles so two adapter
// calls cannot clobber each other's rewrite.
type ListingService struct {
	store  ports.KVStore
	logger zerolog.Logger

	mu sync.Mutex
}

func NewListingService(store ports.KVStore, logger zerolog.Logger) *ListingService {
	return &ListingService{store: store, logger: logger}
}

// bootstrapListings is the fixed record seeded on first run so the catalog
// is never empty.
func bootstrapListings() []domain.Listing {
	return []domain.Listing{
		{
			ID:              "1",
			OwnerID:         "mock-user-123",
			Type:            domain.TypeApartment,
			Pincode:         "560001",
			Mobile:          "9876543210",
			PreferWhatsApp:  true,
			AllowCalls:      true,
			AllowChat:       true,
			BHK:             "2 BHK",
			Bathrooms:       "2",
			Furnishing:      domain.FurnishingSemi,
			BuiltUpArea:     "1200",
			CarpetArea:      "1000",
			PreferredTenant: domain.TenantFamily,
			MonthlyRent:     "25000",
			Advance:         "100000",
			Negotiable:      true,
			MaintenanceFee:  "2000",
			TotalFloors:     "5",
			FloorNumber:     "3",
			Parking:         true,
			Title:           "Spacious 2BHK in Bangalore Center",
			Description:     "Beautiful apartment with modern amenities and great connectivity in a premium residential hub.",
			Images: []string{
				"https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?auto=format&fit=crop&q=80&w=800",
				"https://images.unsplash.com/photo-1484154218962-a197022b5858?auto=format&fit=crop&q=80&w=800",
			},
			CreatedAt: time.Now().UnixMilli(),
			IsActive:  true,
		},
	}
}

// load returns the stored collection, seeding the bootstrap record when the
// key is absent or its content cannot be decoded. Caller must hold s.mu.
func (s *ListingService) load(ctx context.Context) []domain.Listing {
	var listings []domain.Listing
	if readSnapshot(ctx, s.store, ports.KeyListings, &listings) {
		return listings
	}

	seeded := bootstrapListings()
	if err := writeSnapshot(ctx, s.store, ports.KeyListings, seeded); err != nil {
		s.logger.Error().Err(err).Msg("failed to seed listings")
	}
	s.logger.Info().Int("count", len(seeded)).Msg("seeded bootstrap listings")
	return seeded
}

func (s *ListingService) save(ctx context.Context, listings []domain.Listing) error {
	if err := writeSnapshot(ctx, s.store, ports.KeyListings, listings); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist listings")
		return err
	}
	return nil
}

// List returns all listings in persisted order, newest first.
func (s *ListingService) List(ctx context.Context) ([]domain.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx), nil
}

// Get returns one listing by id.
func (s *ListingService) Get(ctx context.Context, id string) (*domain.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, l := range s.load(ctx) {
		if l.ID == id {
			found := l
			return &found, nil
		}
	}
	return nil, domain.ErrListingNotFound
}

// Create materializes the draft with a fresh UUID and creation timestamp and
// prepends it to the collection.
func (s *ListingService) Create(ctx context.Context, ownerID string, draft domain.Draft) (*domain.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	listing := draft.Listing(uuid.NewString(), ownerID, time.Now().UnixMilli())

	listings := s.load(ctx)
	updated := append([]domain.Listing{listing}, listings...)
	if err := s.save(ctx, updated); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("listing_id", listing.ID).
		Str("owner_id", ownerID).
		Str("type", string(listing.Type)).
		Msg("listing created")
	return &listing, nil
}

// Update merges the patch into the listing with the given id. A missing id
// is a silent no-op, matching the not-found taxonomy.
func (s *ListingService) Update(ctx context.Context, id string, patch ports.ListingPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	listings := s.load(ctx)
	for i := range listings {
		if listings[i].ID == id {
			patch.Apply(&listings[i])
			if err := s.save(ctx, listings); err != nil {
				return err
			}
			s.logger.Info().Str("listing_id", id).Msg("listing updated")
			return nil
		}
	}

	s.logger.Debug().Str("listing_id", id).Msg("update for unknown listing ignored")
	return nil
}

// Delete removes the listing with the given id. Hard delete; a missing id is
// a silent no-op.
func (s *ListingService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	listings := s.load(ctx)
	kept := listings[:0:0]
	for _, l := range listings {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	if len(kept) == len(listings) {
		s.logger.Debug().Str("listing_id", id).Msg("delete for unknown listing ignored")
		return nil
	}
	if err := s.save(ctx, kept); err != nil {
		return err
	}

	s.logger.Info().Str("listing_id", id).Msg("listing deleted")
	return nil
}

// Search applies the filter engine over the stored collection.
func (s *ListingService) Search(ctx context.Context, query string, criteria domain.FilterCriteria) ([]domain.Listing, error) {
	listings, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.FilterListings(listings, query, criteria), nil
}

// ActiveCountForOwner counts the owner's visible listings for the
// membership gate. Hidden listings do not count.
func (s *ListingService) ActiveCountForOwner(ctx context.Context, ownerID string) (int, error) {
	listings, err := s.List(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, l := range listings {
		if l.OwnerID == ownerID && l.IsActive {
			count++
		}
	}
	return count, nil
}
