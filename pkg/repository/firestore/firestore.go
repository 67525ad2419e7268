package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"

	"github.com/hushh-labs/concierge/pkg/domain/interfaces"
)

// ErrNotFound is returned when a requested entry does not exist.
var ErrNotFound = goerr.New("not found")

// Firestore persists per-user facts, shortlists, and closets in Google
// Cloud Firestore.
type Firestore struct {
	client    *firestore.Client
	facts     *factRepository
	shortlist *shortlistRepository
	closet    *closetRepository
}

var _ interfaces.Repository = &Firestore{}

type Option func(*Firestore)

// WithCollectionPrefix prefixes all collection names, which keeps
// multiple deployments apart within one database.
func WithCollectionPrefix(prefix string) Option {
	return func(f *Firestore) {
		f.facts.collectionPrefix = prefix
		f.shortlist.collectionPrefix = prefix
		f.closet.collectionPrefix = prefix
	}
}

func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Firestore, error) {
	var client *firestore.Client
	var err error
	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID),
		)
	}

	f := &Firestore{
		client:    client,
		facts:     &factRepository{client: client},
		shortlist: &shortlistRepository{client: client},
		closet:    &closetRepository{client: client},
	}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

func (f *Firestore) Facts() interfaces.FactRepository {
	return f.facts
}

func (f *Firestore) Shortlist() interfaces.ShortlistRepository {
	return f.shortlist
}

func (f *Firestore) Closet() interfaces.ClosetRepository {
	return f.closet
}

func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}
