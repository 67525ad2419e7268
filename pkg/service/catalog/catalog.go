package catalog

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/hushh-labs/concierge/pkg/domain/interfaces"
	"github.com/hushh-labs/concierge/pkg/domain/model"
	"github.com/hushh-labs/concierge/pkg/domain/types"
)

// ErrProductNotFound is returned by Get when no product has the ID.
var ErrProductNotFound = goerr.New("product not found")

// Static serves a fixed product list from memory.
type Static struct {
	products []*model.Product
	byID     map[types.ProductID]*model.Product
}

var _ interfaces.CatalogClient = (*Static)(nil)

func NewStatic(products []*model.Product) *Static {
	byID := make(map[types.ProductID]*model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Static{products: products, byID: byID}
}

func (s *Static) List(ctx context.Context) ([]*model.Product, error) {
	out := make([]*model.Product, len(s.products))
	for i, p := range s.products {
		out[i] = p.Clone()
	}
	return out, nil
}

func (s *Static) Get(ctx context.Context, id types.ProductID) (*model.Product, error) {
	p, ok := s.byID[id]
	if !ok {
		return nil, goerr.Wrap(ErrProductNotFound, "no such product", goerr.V("product_id", id))
	}
	return p.Clone(), nil
}
