package memory

import (
	"context"
	"sync"

	"github.com/hushh-labs/concierge/pkg/domain/model"
	"github.com/hushh-labs/concierge/pkg/domain/types"
)

type closetRepository struct {
	mu      sync.RWMutex
	closets map[types.UserID][]*model.ClosetItem
}

func newClosetRepository() *closetRepository {
	return &closetRepository{
		closets: make(map[types.UserID][]*model.ClosetItem),
	}
}

func copyClosetItem(item *model.ClosetItem) *model.ClosetItem {
	copied := *item
	if item.StyleKeywords != nil {
		copied.StyleKeywords = make([]string, len(item.StyleKeywords))
		copy(copied.StyleKeywords, item.StyleKeywords)
	}
	return &copied
}

func (r *closetRepository) Get(ctx context.Context, userID types.UserID) ([]*model.ClosetItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, exists := r.closets[userID]
	if !exists {
		return []*model.ClosetItem{}, nil
	}

	result := make([]*model.ClosetItem, len(stored))
	for i, item := range stored {
		result[i] = copyClosetItem(item)
	}

	return result, nil
}

func (r *closetRepository) Put(ctx context.Context, userID types.UserID, items []*model.ClosetItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := make([]*model.ClosetItem, len(items))
	for i, item := range items {
		stored[i] = copyClosetItem(item)
	}
	r.closets[userID] = stored

	return nil
}
