package catalog_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/hushh-labs/concierge/pkg/service/catalog"
)

func TestStaticCatalog(t *testing.T) {
	client := catalog.NewStatic(catalog.Seed())
	ctx := context.Background()

	products, err := client.List(ctx)
	gt.NoError(t, err).Required()
	gt.Array(t, products).Length(len(catalog.Seed()))

	p, err := client.Get(ctx, products[0].ID)
	gt.NoError(t, err).Required()
	gt.Value(t, p.ID).Equal(products[0].ID)

	_, err = client.Get(ctx, "no-such-product")
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, catalog.ErrProductNotFound)).True()
}

func TestStaticCatalogReturnsCopies(t *testing.T) {
	client := catalog.NewStatic(catalog.Seed())
	ctx := context.Background()

	products, err := client.List(ctx)
	gt.NoError(t, err).Required()

	products[0].Title = "mutated"

	again, err := client.List(ctx)
	gt.NoError(t, err).Required()
	gt.Value(t, again[0].Title).NotEqual("mutated")
}

func TestFileCatalog(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file yields empty catalog", func(t *testing.T) {
		client := catalog.NewFile(filepath.Join(dir, "absent.json"))

		products, err := client.List(context.Background())
		gt.NoError(t, err).Required()
		gt.Array(t, products).Length(0)
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		path := filepath.Join(dir, "broken.json")
		gt.NoError(t, os.WriteFile(path, []byte("not json"), 0644)).Required()

		client := catalog.NewFile(path)
		_, err := client.List(context.Background())
		gt.Error(t, err)
	})

	t.Run("valid file round-trips", func(t *testing.T) {
		path := filepath.Join(dir, "catalog.json")
		raw := `[{"product_id": "p1", "title": "Test Sneaker", "category": "footwear", "price_inr": 1999}]`
		gt.NoError(t, os.WriteFile(path, []byte(raw), 0644)).Required()

		client := catalog.NewFile(path)
		ctx := context.Background()

		products, err := client.List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, products).Length(1)
		gt.Value(t, products[0].Title).Equal("Test Sneaker")
		gt.Value(t, products[0].Price).Equal(1999)

		p, err := client.Get(ctx, "p1")
		gt.NoError(t, err).Required()
		gt.Value(t, p.Title).Equal("Test Sneaker")

		_, err = client.Get(ctx, "p2")
		gt.Bool(t, errors.Is(err, catalog.ErrProductNotFound)).True()
	})

	t.Run("edits show up without restart", func(t *testing.T) {
		path := filepath.Join(dir, "live.json")
		gt.NoError(t, os.WriteFile(path, []byte(`[]`), 0644)).Required()

		client := catalog.NewFile(path)
		ctx := context.Background()

		products, err := client.List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, products).Length(0)

		raw := `[{"product_id": "p9", "title": "Added Later", "category": "apparel", "price_inr": 500}]`
		gt.NoError(t, os.WriteFile(path, []byte(raw), 0644)).Required()

		products, err = client.List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, products).Length(1)
	})
}

func TestSeedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")

	gt.NoError(t, catalog.SeedFile(path)).Required()

	client := catalog.NewFile(path)
	products, err := client.List(context.Background())
	gt.NoError(t, err).Required()
	gt.Array(t, products).Length(len(catalog.Seed()))

	// A second seed must not overwrite an existing catalog.
	gt.NoError(t, os.WriteFile(path, []byte(`[]`), 0644)).Required()
	gt.NoError(t, catalog.SeedFile(path)).Required()

	products, err = client.List(context.Background())
	gt.NoError(t, err).Required()
	gt.Array(t, products).Length(0)
}
