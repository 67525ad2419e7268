package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/hushh-labs/concierge/pkg/domain/types"
)

const shortlistCollection = "shortlists"

type shortlistDocument struct {
	ProductIDs []string `firestore:"product_ids"`
}

type shortlistRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func (r *shortlistRepository) collection() string {
	return r.collectionPrefix + shortlistCollection
}

func (r *shortlistRepository) Put(ctx context.Context, userID types.UserID, productIDs []types.ProductID) error {
	if err := userID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid user ID")
	}

	ids := make([]string, len(productIDs))
	for i, id := range productIDs {
		ids[i] = id.String()
	}

	docRef := r.client.Collection(r.collection()).Doc(userID.String())
	if _, err := docRef.Set(ctx, &shortlistDocument{ProductIDs: ids}); err != nil {
		return goerr.Wrap(err, "failed to put shortlist to firestore",
			goerr.V("userID", userID),
		)
	}

	return nil
}

func (r *shortlistRepository) Get(ctx context.Context, userID types.UserID) ([]types.ProductID, error) {
	if err := userID.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid user ID")
	}

	doc, err := r.client.Collection(r.collection()).Doc(userID.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return []types.ProductID{}, nil
		}
		return nil, goerr.Wrap(err, "failed to get shortlist from firestore",
			goerr.V("userID", userID),
		)
	}

	var stored shortlistDocument
	if err := doc.DataTo(&stored); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal shortlist")
	}

	result := make([]types.ProductID, len(stored.ProductIDs))
	for i, id := range stored.ProductIDs {
		result[i] = types.ProductID(id)
	}

	return result, nil
}
