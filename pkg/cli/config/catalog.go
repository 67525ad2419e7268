package config

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/hushh-labs/concierge/pkg/domain/interfaces"
	"github.com/hushh-labs/concierge/pkg/service/catalog"
	"github.com/hushh-labs/concierge/pkg/utils/logging"
)

// Catalog holds CLI flags for the product catalog source
type Catalog struct {
	path string
	seed bool
}

// Flags returns CLI flags for catalog configuration
func (c *Catalog) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "catalog-path",
			Usage:       "Path to the JSON product catalog. Empty uses the built-in demo catalog.",
			Sources:     cli.EnvVars("CONCIERGE_CATALOG_PATH"),
			Destination: &c.path,
		},
		&cli.BoolFlag{
			Name:        "catalog-seed",
			Usage:       "Write the built-in demo catalog to catalog-path when the file is missing",
			Value:       true,
			Sources:     cli.EnvVars("CONCIERGE_CATALOG_SEED"),
			Destination: &c.seed,
		},
	}
}

// Configure returns the catalog client for the configured source.
func (c *Catalog) Configure() (interfaces.CatalogClient, error) {
	if c.path == "" {
		logging.Default().Info("Using built-in demo catalog")
		return catalog.NewStatic(catalog.Seed()), nil
	}

	if c.seed {
		if err := catalog.SeedFile(c.path); err != nil {
			return nil, goerr.Wrap(err, "failed to seed catalog file")
		}
	}

	logging.Default().Info("Using catalog file", "path", c.path)
	return catalog.NewFile(c.path), nil
}
