package interfaces

import (
	"context"

	"github.com/hushh-labs/concierge/pkg/domain/model"
	"github.com/hushh-labs/concierge/pkg/domain/types"
)

// CatalogClient is the read-only product catalog collaborator.
type CatalogClient interface {
	// List returns the full product list. An absent catalog yields an
	// empty list; an unreadable one yields an error.
	List(ctx context.Context) ([]*model.Product, error)

	// Get fetches full metadata for one product. Returns
	// ErrProductNotFound (wrapped) when the ID is stale.
	Get(ctx context.Context, id types.ProductID) (*model.Product, error)
}
