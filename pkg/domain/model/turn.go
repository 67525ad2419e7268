package model

import (
	"github.com/hushh-labs/concierge/pkg/domain/types"
)

// ConversationTurn is one message in a session's ordered history.
// Turns are append-only within a session.
type ConversationTurn struct {
	Role    types.TurnRole `json:"role"`
	Content string         `json:"content"`
}
