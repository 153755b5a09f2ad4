package evaluation

import (
	"pursuit/game"

	"gonum.org/v1/gonum/floats"
)

// DefenseStrategy guards the home half: it chases invaders, shadows the
// opponents that may cross next and avoids idling.
type DefenseStrategy struct {
	Extractor
	weights Weights
}

func (d *DefenseStrategy) Role() Role {
	return Defense
}

func (d *DefenseStrategy) Weights() Weights {
	return d.weights
}

func (d *DefenseStrategy) Features(state game.CaptureView, action game.Action) Vector {
	next := d.successor(state, action)
	red := next.IsRed(d.Agent)
	mine := next.AgentState(d.Agent)
	distancer := next.Distancer()

	enemies := d.opponents(next)
	features := Vector{
		OnDefense:            1,
		NumInvaders:          float64(len(enemies.invaders)),
		NumPotentialInvaders: float64(len(enemies.defenders)),
	}
	if behindLine(next, red, mine.Position) {
		features[InTeamSide] = 1
	}
	// Raised while the agent is an edible ghost
	if mine.IsGhost() && mine.IsScared() {
		features[ScaredIntercept] = 1
	}
	if len(enemies.invaders) > 0 {
		features[InvaderDistance] = floats.Min(distances(distancer, mine.Position, enemies.invaders))
	}
	if len(enemies.defenders) > 0 {
		features[PotentialInvaderDistance] = floats.Min(distances(distancer, mine.Position, enemies.defenders))
	}
	if action == game.Stop {
		features[StopPenalty] = 1
	}
	if action == game.Reverse(state.AgentState(d.Agent).Direction) {
		features[ReversePenalty] = 1
	}
	return features
}
