package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/hushh-labs/concierge/pkg/domain/model"
	"github.com/hushh-labs/concierge/pkg/repository/memory"
	"github.com/hushh-labs/concierge/pkg/service/catalog"
	"github.com/hushh-labs/concierge/pkg/usecase"
)

func TestIsStylingIntent(t *testing.T) {
	cases := []struct {
		message string
		want    bool
	}{
		{"what should I wear with my blue jeans", true},
		{"give me style advice", true},
		{"does this match my jacket", true},
		{"I want a new look", true},
		{"I want white sneakers under 3000", false},
		{"show me running shoes", false},
	}

	for _, tc := range cases {
		t.Run(tc.message, func(t *testing.T) {
			gt.Value(t, usecase.IsStylingIntent(tc.message)).Equal(tc.want)
		})
	}
}

func TestHandleStyle(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	closet := []*model.ClosetItem{
		{ID: "c1", Title: "Blue Denim Jacket", Category: "apparel", Color: "blue"},
		{ID: "c2", Title: "White Sneakers", Category: "footwear", Color: "white"},
	}
	gt.NoError(t, repo.Closet().Put(ctx, "user-style", closet)).Required()

	var seenCloset []*model.ClosetItem
	oracleMock := &mockOracle{
		adviseFn: func(ctx context.Context, closet []*model.ClosetItem, message string) (*model.StyleAdvice, error) {
			seenCloset = closet
			return &model.StyleAdvice{
				Advice:          "Pair the denim jacket with the white sneakers.",
				ReferencedItems: closet[:1],
			}, nil
		},
	}
	uc := usecase.New(repo, catalog.NewStatic(nil), oracleMock)

	resp := uc.HandleStyle(ctx, "user-style", "what goes with my jacket?")

	gt.Value(t, resp.Agent).Equal(model.AgentStylist)
	gt.String(t, resp.TraceID).NotEqual("")
	gt.Value(t, resp.Intent).Equal("styling_advice")
	gt.Value(t, resp.Error).Equal("")
	gt.Value(t, resp.Advice).Equal("Pair the denim jacket with the white sneakers.")
	gt.Array(t, resp.ReferencedItems).Length(1)
	gt.Value(t, resp.ReferencedItems[0].Title).Equal("Blue Denim Jacket")

	// The oracle saw the stored closet.
	gt.Array(t, seenCloset).Length(2)
}

func TestHandleStyleOracleFailureDegrades(t *testing.T) {
	oracleMock := &mockOracle{
		adviseFn: func(ctx context.Context, closet []*model.ClosetItem, message string) (*model.StyleAdvice, error) {
			return nil, errors.New("model overloaded")
		},
	}
	uc := usecase.New(memory.New(), catalog.NewStatic(nil), oracleMock)

	resp := uc.HandleStyle(context.Background(), "user-deg", "style advice please")

	gt.Value(t, resp.Agent).Equal(model.AgentStylist)
	gt.Value(t, resp.Advice).Equal("Styling service temporarily unavailable.")
	gt.String(t, resp.Error).NotEqual("")
	gt.Array(t, resp.ReferencedItems).Length(0)
}

func TestHandleStyleInvalidUser(t *testing.T) {
	uc := usecase.New(memory.New(), catalog.NewStatic(nil), &mockOracle{})

	resp := uc.HandleStyle(context.Background(), "", "style advice")

	gt.Value(t, resp.Agent).Equal(model.AgentStylist)
	gt.String(t, resp.Error).NotEqual("")
}
