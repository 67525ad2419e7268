package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/hushh-labs/concierge/pkg/domain/model"
	"github.com/hushh-labs/concierge/pkg/domain/types"
)

const closetCollection = "closets"

type closetDocument struct {
	Items []*model.ClosetItem `firestore:"items"`
}

type closetRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func (r *closetRepository) collection() string {
	return r.collectionPrefix + closetCollection
}

func (r *closetRepository) Get(ctx context.Context, userID types.UserID) ([]*model.ClosetItem, error) {
	if err := userID.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid user ID")
	}

	doc, err := r.client.Collection(r.collection()).Doc(userID.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return []*model.ClosetItem{}, nil
		}
		return nil, goerr.Wrap(err, "failed to get closet from firestore",
			goerr.V("userID", userID),
		)
	}

	var stored closetDocument
	if err := doc.DataTo(&stored); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal closet")
	}

	if stored.Items == nil {
		return []*model.ClosetItem{}, nil
	}
	return stored.Items, nil
}

func (r *closetRepository) Put(ctx context.Context, userID types.UserID, items []*model.ClosetItem) error {
	if err := userID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid user ID")
	}

	docRef := r.client.Collection(r.collection()).Doc(userID.String())
	if _, err := docRef.Set(ctx, &closetDocument{Items: items}); err != nil {
		return goerr.Wrap(err, "failed to put closet to firestore",
			goerr.V("userID", userID),
		)
	}

	return nil
}
