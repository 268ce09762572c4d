package ports

import "context"

// SavedService is the bookmark set of listing ids for the local viewer.
// One set per installation, independent of ownership or sign-in state.
type SavedService interface {
	// Toggle flips membership for id and returns the new membership:
	// true when the id was inserted, false when it was removed.
	Toggle(ctx context.Context, id string) (bool, error)
	Contains(ctx context.Context, id string) (bool, error)
	All(ctx context.Context) ([]string, error)
}
