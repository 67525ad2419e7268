package firestore

import (
	"context"
	"sort"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/hushh-labs/concierge/pkg/domain/types"
)

const factsCollection = "user_facts"

type factDocument struct {
	Facts []string `firestore:"facts"`
}

type factRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func (r *factRepository) collection() string {
	return r.collectionPrefix + factsCollection
}

func (r *factRepository) Get(ctx context.Context, userID types.UserID) ([]string, error) {
	if err := userID.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid user ID")
	}

	doc, err := r.client.Collection(r.collection()).Doc(userID.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return []string{}, nil
		}
		return nil, goerr.Wrap(err, "failed to get facts from firestore",
			goerr.V("userID", userID),
		)
	}

	var stored factDocument
	if err := doc.DataTo(&stored); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal facts")
	}

	sort.Strings(stored.Facts)
	return stored.Facts, nil
}

func (r *factRepository) Merge(ctx context.Context, userID types.UserID, newFacts []string) error {
	if err := userID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid user ID")
	}
	if len(newFacts) == 0 {
		return nil
	}

	docRef := r.client.Collection(r.collection()).Doc(userID.String())

	// A transaction serializes the read-union-write so concurrent merges
	// for the same user never lose facts.
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		set := make(map[string]struct{})

		doc, err := tx.Get(docRef)
		if err != nil && status.Code(err) != codes.NotFound {
			return goerr.Wrap(err, "failed to get facts in transaction")
		}
		if err == nil {
			var stored factDocument
			if err := doc.DataTo(&stored); err != nil {
				return goerr.Wrap(err, "failed to unmarshal facts")
			}
			for _, fact := range stored.Facts {
				set[fact] = struct{}{}
			}
		}

		for _, fact := range newFacts {
			set[fact] = struct{}{}
		}

		merged := make([]string, 0, len(set))
		for fact := range set {
			merged = append(merged, fact)
		}
		sort.Strings(merged)

		return tx.Set(docRef, &factDocument{Facts: merged})
	})
	if err != nil {
		return goerr.Wrap(err, "failed to merge facts",
			goerr.V("userID", userID),
		)
	}

	return nil
}
