package usecase

import (
	"context"
	"errors"

	"github.com/hushh-labs/concierge/pkg/domain/model"
	"github.com/hushh-labs/concierge/pkg/domain/types"
	"github.com/hushh-labs/concierge/pkg/service/catalog"
)

// GetShortlist returns the user's persisted picks hydrated with catalog
// metadata. Stale product IDs are dropped.
func (uc *UseCases) GetShortlist(ctx context.Context, userID types.UserID) ([]*model.Product, error) {
	sctx, cancel := context.WithTimeout(ctx, uc.storageTimeout)
	defer cancel()

	ids, err := uc.repo.Shortlist().Get(sctx, userID)
	if err != nil {
		return nil, err
	}

	products := make([]*model.Product, 0, len(ids))
	for _, id := range ids {
		p, err := uc.catalog.Get(ctx, id)
		if err != nil {
			if errors.Is(err, catalog.ErrProductNotFound) {
				continue
			}
			return nil, err
		}
		products = append(products, p)
	}

	return products, nil
}
