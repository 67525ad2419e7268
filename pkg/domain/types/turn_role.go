package types

import "github.com/m-mizutani/goerr/v2"

// TurnRole is the speaker of one conversation turn.
type TurnRole string

const (
	RoleUser      TurnRole = "user"
	RoleAssistant TurnRole = "assistant"
)

func (r TurnRole) Validate() error {
	switch r {
	case RoleUser, RoleAssistant:
		return nil
	default:
		return goerr.New("invalid turn role", goerr.V("role", string(r)))
	}
}

func (r TurnRole) String() string {
	return string(r)
}
