package memory

import (
	"github.com/m-mizutani/goerr/v2"

	"github.com/hushh-labs/concierge/pkg/domain/interfaces"
)

// ErrNotFound is returned when a requested entry does not exist.
var ErrNotFound = goerr.New("not found")

// Repository is an alias for Memory to match the pattern
type Repository = Memory

// Memory is an in-process repository for development and tests.
type Memory struct {
	facts     *factRepository
	shortlist *shortlistRepository
	closet    *closetRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		facts:     newFactRepository(),
		shortlist: newShortlistRepository(),
		closet:    newClosetRepository(),
	}
}

func (m *Memory) Facts() interfaces.FactRepository {
	return m.facts
}

func (m *Memory) Shortlist() interfaces.ShortlistRepository {
	return m.shortlist
}

func (m *Memory) Closet() interfaces.ClosetRepository {
	return m.closet
}

func (m *Memory) Close() error {
	return nil
}
