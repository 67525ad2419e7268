package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"

	"github.com/hushh-labs/concierge/pkg/domain/model"
	"github.com/hushh-labs/concierge/pkg/domain/types"
	"github.com/hushh-labs/concierge/pkg/utils/errutil"
	"github.com/hushh-labs/concierge/pkg/utils/logging"
)

// stylistIntents route a message to the stylist instead of the shopping
// loop.
var stylistIntents = []string{"style", "match", "wear with", "advice", "look"}

// IsStylingIntent reports whether the message asks for styling advice
// rather than a product search.
func IsStylingIntent(message string) bool {
	msg := strings.ToLower(message)
	for _, intent := range stylistIntents {
		if strings.Contains(msg, intent) {
			return true
		}
	}
	return false
}

// HandleStyle answers a styling request grounded in the user's closet.
// An unreachable oracle degrades to canned advice rather than an error,
// so the UI always has something to show.
func (uc *UseCases) HandleStyle(ctx context.Context, userID types.UserID, message string) *model.StyleResponse {
	traceID := uuid.NewString()

	if err := userID.Validate(); err != nil {
		return &model.StyleResponse{
			Agent:   model.AgentStylist,
			TraceID: traceID,
			Error:   goerr.Wrap(ErrInvalidRequest, "user_id is required").Error(),
		}
	}

	logger := logging.From(ctx)
	logger.Info("styling request started",
		"trace_id", traceID,
		"user_id", userID,
	)

	closet, err := uc.readCloset(ctx, userID)
	if err != nil {
		_ = errutil.Handle(ctx, err, "failed to read closet, proceeding with empty wardrobe")
		closet = nil
	}

	octx, cancel := context.WithTimeout(ctx, uc.oracleTimeout)
	defer cancel()
	advice, err := uc.oracle.AdviseStyle(octx, closet, message)
	if err != nil {
		_ = errutil.Handle(ctx, err, "stylist oracle failed")
		return &model.StyleResponse{
			Agent:           model.AgentStylist,
			TraceID:         traceID,
			Intent:          "styling_advice",
			Advice:          "Styling service temporarily unavailable.",
			ReferencedItems: []*model.ClosetItem{},
			Error:           err.Error(),
		}
	}

	return &model.StyleResponse{
		Agent:           model.AgentStylist,
		TraceID:         traceID,
		Intent:          "styling_advice",
		Advice:          advice.Advice,
		ReferencedItems: advice.ReferencedItems,
	}
}

func (uc *UseCases) readCloset(ctx context.Context, userID types.UserID) ([]*model.ClosetItem, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.storageTimeout)
	defer cancel()
	return uc.repo.Closet().Get(ctx, userID)
}
