package game

import "errors"

var (
	// ErrIllegalState reports a state the search cannot decide from, such as
	// no legal actions for the controlled agent or an agent index that does
	// not match NumAgents.
	ErrIllegalState = errors.New("illegal state")
	// ErrConfiguration reports an invalid search or agent configuration.
	ErrConfiguration = errors.New("configuration error")
)
