package catalog

import (
	"context"
	"encoding/json"
	"os"

	"github.com/m-mizutani/goerr/v2"

	"github.com/hushh-labs/concierge/pkg/domain/interfaces"
	"github.com/hushh-labs/concierge/pkg/domain/model"
	"github.com/hushh-labs/concierge/pkg/domain/types"
)

// File serves products from a JSON catalog file. The file is re-read on
// every call so catalog edits show up without a restart. A missing file
// yields an empty catalog; a malformed one is an error.
type File struct {
	path string
}

var _ interfaces.CatalogClient = (*File)(nil)

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) load() ([]*model.Product, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to read catalog file", goerr.V("path", f.path))
	}

	var products []*model.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, goerr.Wrap(err, "failed to parse catalog file", goerr.V("path", f.path))
	}

	return products, nil
}

func (f *File) List(ctx context.Context) ([]*model.Product, error) {
	return f.load()
}

func (f *File) Get(ctx context.Context, id types.ProductID) (*model.Product, error) {
	products, err := f.load()
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if p.ID == id {
			return p.Clone(), nil
		}
	}
	return nil, goerr.Wrap(ErrProductNotFound, "no such product", goerr.V("product_id", id))
}

// SeedFile writes the built-in catalog to path unless a file already
// exists there.
func SeedFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return goerr.Wrap(err, "failed to stat catalog file", goerr.V("path", path))
	}

	raw, err := json.MarshalIndent(Seed(), "", "  ")
	if err != nil {
		return goerr.Wrap(err, "failed to marshal seed catalog")
	}

	if err := os.WriteFile(path, raw, 0644); err != nil {
		return goerr.Wrap(err, "failed to write seed catalog", goerr.V("path", path))
	}

	return nil
}
