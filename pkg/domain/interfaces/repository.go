package interfaces

import (
	"context"

	"github.com/hushh-labs/concierge/pkg/domain/model"
	"github.com/hushh-labs/concierge/pkg/domain/types"
)

// Repository defines the interface for durable per-user state persistence.
// Fact, shortlist, and closet keys share the user namespace; session state
// lives in the session store, not here.
type Repository interface {
	Facts() FactRepository
	Shortlist() ShortlistRepository
	Closet() ClosetRepository

	Close() error
}

// FactRepository holds deduplicated free-text preference strings per user.
type FactRepository interface {
	// Get returns the stored facts for a user. Unknown users yield an
	// empty set, not an error. Callers must not rely on ordering.
	Get(ctx context.Context, userID types.UserID) ([]string, error)

	// Merge unions newFacts into the stored set. Merging the same fact
	// twice has no additional effect.
	Merge(ctx context.Context, userID types.UserID, newFacts []string) error
}

// ShortlistRepository holds the at-most-two product IDs last picked for a
// user. Put fully replaces any prior shortlist.
type ShortlistRepository interface {
	Put(ctx context.Context, userID types.UserID, productIDs []types.ProductID) error
	Get(ctx context.Context, userID types.UserID) ([]types.ProductID, error)
}

// ClosetRepository holds the garments a user already owns.
type ClosetRepository interface {
	Get(ctx context.Context, userID types.UserID) ([]*model.ClosetItem, error)
	Put(ctx context.Context, userID types.UserID, items []*model.ClosetItem) error
}
