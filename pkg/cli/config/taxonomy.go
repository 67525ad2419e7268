package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	"github.com/hushh-labs/concierge/pkg/service/ranking"
	"github.com/hushh-labs/concierge/pkg/utils/logging"
)

// Taxonomy holds CLI flags for ranking taxonomy overrides
type Taxonomy struct {
	path string
}

// taxonomyFile is the TOML shape of a taxonomy override file.
type taxonomyFile struct {
	Synonyms  map[string]string `toml:"synonyms"`
	Colors    []string          `toml:"colors"`
	StopWords []string          `toml:"stop_words"`
}

// Flags returns CLI flags for taxonomy configuration
func (t *Taxonomy) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "taxonomy-path",
			Usage:       "Path to a TOML file overriding category synonyms, colors, and stop words",
			Sources:     cli.EnvVars("CONCIERGE_TAXONOMY_PATH"),
			Destination: &t.path,
		},
	}
}

// Configure builds a ranking engine, applying the override file when one
// is configured. Sections absent from the file keep the built-in
// defaults.
func (t *Taxonomy) Configure() (*ranking.Engine, error) {
	if t.path == "" {
		return ranking.New(), nil
	}

	raw, err := os.ReadFile(t.path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read taxonomy file", goerr.V("path", t.path))
	}

	var file taxonomyFile
	if err := toml.Unmarshal(raw, &file); err != nil {
		return nil, goerr.Wrap(err, "failed to parse taxonomy file", goerr.V("path", t.path))
	}

	logging.Default().Info("Loaded taxonomy overrides",
		"path", t.path,
		"synonyms", len(file.Synonyms),
		"colors", len(file.Colors),
		"stop_words", len(file.StopWords),
	)

	return ranking.New(
		ranking.WithSynonyms(file.Synonyms),
		ranking.WithColors(file.Colors),
		ranking.WithStopWords(file.StopWords),
	), nil
}
