package evaluation

import (
	"fmt"

	"pursuit/game"
	"pursuit/utils"
)

type Role int

const (
	Offense Role = iota
	Defense
)

func (r Role) String() string {
	switch r {
	case Offense:
		return "offense"
	case Defense:
		return "defense"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// SelectRole assigns roles by roster position: the first, third, ... member of
// a team attacks and the others defend. A team with no capsules left on its
// half has nothing worth guarding, so every member attacks.
func SelectRole(state game.CaptureView, agent int) Role {
	red := state.IsRed(agent)
	position := utils.FindIndex(state.Team(red), agent) + 1
	if position%2 == 1 || len(state.Capsules(red)) == 0 {
		return Offense
	}
	return Defense
}

// RoleStrategy extracts the features and weights of one role.
type RoleStrategy interface {
	Role() Role
	Features(state game.CaptureView, action game.Action) Vector
	Weights() Weights
}

// NewStrategy returns the strategy for role. A nil weights table selects the
// role's defaults.
func NewStrategy(role Role, extractor Extractor, weights Weights) RoleStrategy {
	if weights == nil {
		weights = DefaultWeights(role)
	}
	if role == Defense {
		return &DefenseStrategy{Extractor: extractor, weights: weights}
	}
	return &OffenseStrategy{Extractor: extractor, weights: weights}
}

// Score evaluates action in state under strategy.
func Score(strategy RoleStrategy, state game.CaptureView, action game.Action) float64 {
	return Evaluate(strategy.Features(state, action), strategy.Weights())
}
