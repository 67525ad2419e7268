package usecase

import (
	"time"

	"github.com/hushh-labs/concierge/pkg/domain/interfaces"
	"github.com/hushh-labs/concierge/pkg/service/ranking"
	"github.com/hushh-labs/concierge/pkg/service/session"
)

const (
	// historyWindow bounds how many prior turns reach the oracle.
	historyWindow = 10
	// searchLimit caps how many ranked products are hydrated and shown.
	searchLimit = 6
	// shortlistLimit caps how many picks persist per user.
	shortlistLimit = 2

	defaultOracleTimeout  = 60 * time.Second
	defaultCatalogTimeout = 10 * time.Second
	defaultStorageTimeout = 10 * time.Second
)

type UseCases struct {
	repo     interfaces.Repository
	catalog  interfaces.CatalogClient
	oracle   interfaces.ReasoningGateway
	sessions *session.Store
	engine   *ranking.Engine

	oracleTimeout  time.Duration
	catalogTimeout time.Duration
	storageTimeout time.Duration
}

type Option func(*UseCases)

// WithEngine replaces the default ranking engine, e.g. one built with a
// custom taxonomy.
func WithEngine(engine *ranking.Engine) Option {
	return func(uc *UseCases) {
		if engine != nil {
			uc.engine = engine
		}
	}
}

func WithOracleTimeout(d time.Duration) Option {
	return func(uc *UseCases) {
		if d > 0 {
			uc.oracleTimeout = d
		}
	}
}

func WithCatalogTimeout(d time.Duration) Option {
	return func(uc *UseCases) {
		if d > 0 {
			uc.catalogTimeout = d
		}
	}
}

func WithStorageTimeout(d time.Duration) Option {
	return func(uc *UseCases) {
		if d > 0 {
			uc.storageTimeout = d
		}
	}
}

func New(repo interfaces.Repository, catalog interfaces.CatalogClient, oracle interfaces.ReasoningGateway, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:           repo,
		catalog:        catalog,
		oracle:         oracle,
		sessions:       session.New(historyWindow),
		engine:         ranking.New(),
		oracleTimeout:  defaultOracleTimeout,
		catalogTimeout: defaultCatalogTimeout,
		storageTimeout: defaultStorageTimeout,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}
