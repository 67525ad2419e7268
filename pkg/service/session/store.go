package session

import (
	"sync"

	"github.com/hushh-labs/concierge/pkg/domain/model"
	"github.com/hushh-labs/concierge/pkg/domain/types"
)

// DefaultWindowSize bounds how many turns History returns per session.
const DefaultWindowSize = 10

// Store keeps per-session conversation history in memory. All methods
// are safe for concurrent use; AppendExchange records a user/assistant
// pair atomically so readers never observe a dangling user turn.
type Store struct {
	mu         sync.RWMutex
	windowSize int
	sessions   map[types.SessionID][]*model.ConversationTurn
}

func New(windowSize int) *Store {
	if windowSize <= 0 {
		windowSize = DefaultWindowSize
	}
	return &Store{
		windowSize: windowSize,
		sessions:   make(map[types.SessionID][]*model.ConversationTurn),
	}
}

// AppendExchange appends the user message and the assistant reply to the
// session history as a single unit.
func (s *Store) AppendExchange(id types.SessionID, userMsg, assistantMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[id] = append(s.sessions[id],
		&model.ConversationTurn{Role: types.RoleUser, Content: userMsg},
		&model.ConversationTurn{Role: types.RoleAssistant, Content: assistantMsg},
	)
}

// History returns a copy of the most recent turns, capped at the window
// size. Unknown sessions yield an empty slice.
func (s *Store) History(id types.SessionID) []*model.ConversationTurn {
	s.mu.RLock()
	defer s.mu.RUnlock()

	turns := s.sessions[id]
	if len(turns) > s.windowSize {
		turns = turns[len(turns)-s.windowSize:]
	}

	out := make([]*model.ConversationTurn, len(turns))
	for i, t := range turns {
		turn := *t
		out[i] = &turn
	}
	return out
}

// IsFirstTurn reports whether the session has no recorded turns yet.
func (s *Store) IsFirstTurn(id types.SessionID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions[id]) == 0
}

// TurnCount returns the total number of recorded turns, not limited by
// the window size.
func (s *Store) TurnCount(id types.SessionID) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions[id])
}

// Clear drops the session history and reports whether it existed.
func (s *Store) Clear(id types.SessionID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.sessions[id]
	delete(s.sessions, id)
	return ok
}
