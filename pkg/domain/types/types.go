package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// UserID identifies the owner of durable preference and shortlist state.
// One user may hold many sessions.
type UserID string

func (u UserID) Validate() error {
	if u == "" {
		return goerr.New("user ID cannot be empty")
	}
	return nil
}

func (u UserID) String() string {
	return string(u)
}

// SessionID groups the ordered turns of one conversation.
type SessionID string

func (s SessionID) Validate() error {
	if s == "" {
		return goerr.New("session ID cannot be empty")
	}
	return nil
}

func (s SessionID) String() string {
	return string(s)
}

// ProductID identifies a catalog entry.
type ProductID string

func (p ProductID) Validate() error {
	if p == "" {
		return goerr.New("product ID cannot be empty")
	}
	return nil
}

func (p ProductID) String() string {
	return string(p)
}
