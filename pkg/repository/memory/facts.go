package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/hushh-labs/concierge/pkg/domain/types"
)

type factRepository struct {
	mu    sync.RWMutex
	facts map[types.UserID]map[string]struct{}
}

func newFactRepository() *factRepository {
	return &factRepository{
		facts: make(map[types.UserID]map[string]struct{}),
	}
}

func (r *factRepository) Get(ctx context.Context, userID types.UserID) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set, exists := r.facts[userID]
	if !exists {
		return []string{}, nil
	}

	result := make([]string, 0, len(set))
	for fact := range set {
		result = append(result, fact)
	}

	// Stored facts carry no ordering guarantee; sorting here just keeps
	// reads deterministic.
	sort.Strings(result)

	return result, nil
}

func (r *factRepository) Merge(ctx context.Context, userID types.UserID, newFacts []string) error {
	if len(newFacts) == 0 {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	set, exists := r.facts[userID]
	if !exists {
		set = make(map[string]struct{})
		r.facts[userID] = set
	}

	for _, fact := range newFacts {
		set[fact] = struct{}{}
	}

	return nil
}
