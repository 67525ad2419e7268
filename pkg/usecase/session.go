package usecase

import (
	"context"

	"github.com/hushh-labs/concierge/pkg/domain/types"
	"github.com/hushh-labs/concierge/pkg/utils/logging"
)

// ClearSession drops the conversation history for a session and reports
// whether one existed.
func (uc *UseCases) ClearSession(ctx context.Context, sessionID types.SessionID) bool {
	cleared := uc.sessions.Clear(sessionID)
	logging.From(ctx).Info("session cleared",
		"session_id", sessionID,
		"existed", cleared,
	)
	return cleared
}

// SessionInfo reports the recorded turn count for a session.
func (uc *UseCases) SessionInfo(ctx context.Context, sessionID types.SessionID) (int, bool) {
	count := uc.sessions.TurnCount(sessionID)
	return count, count > 0
}
