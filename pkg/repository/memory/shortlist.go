package memory

import (
	"context"
	"sync"

	"github.com/hushh-labs/concierge/pkg/domain/types"
)

type shortlistRepository struct {
	mu         sync.RWMutex
	shortlists map[types.UserID][]types.ProductID
}

func newShortlistRepository() *shortlistRepository {
	return &shortlistRepository{
		shortlists: make(map[types.UserID][]types.ProductID),
	}
}

func (r *shortlistRepository) Put(ctx context.Context, userID types.UserID, productIDs []types.ProductID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Full replacement, not a merge.
	stored := make([]types.ProductID, len(productIDs))
	copy(stored, productIDs)
	r.shortlists[userID] = stored

	return nil
}

func (r *shortlistRepository) Get(ctx context.Context, userID types.UserID) ([]types.ProductID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, exists := r.shortlists[userID]
	if !exists {
		return []types.ProductID{}, nil
	}

	result := make([]types.ProductID, len(stored))
	copy(result, stored)

	return result, nil
}
