package interfaces

import (
	"context"

	"github.com/hushh-labs/concierge/pkg/domain/model"
)

// ReasoningGateway invokes the external natural-language reasoning oracle.
type ReasoningGateway interface {
	// Interpret turns one user message into a structured query, given the
	// user's stored facts and the trailing history window. firstTurn
	// selects the prompt variant that permits clarifying questions.
	// The raw structured reply is returned alongside the parsed query so
	// the caller can record it as the assistant turn.
	Interpret(ctx context.Context, facts []string, history []*model.ConversationTurn, firstTurn bool, message string) (*model.StructuredQuery, string, error)

	// AdviseStyle asks the oracle for closet-aware styling advice.
	AdviseStyle(ctx context.Context, closet []*model.ClosetItem, message string) (*model.StyleAdvice, error)
}
