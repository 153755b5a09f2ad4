package agent

import (
	"pursuit/game"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// RandomAgent plays a uniformly random legal action. It drives ghosts and
// serves as a baseline.
type RandomAgent struct {
	index int
	rng   *rand.Rand
}

func NewRandomAgent(index int, rng *rand.Rand) *RandomAgent {
	return &RandomAgent{index: index, rng: newRand(rng)}
}

func (a *RandomAgent) ChooseAction(state game.State) (game.Action, error) {
	actions := state.LegalActions(a.index)
	if len(actions) == 0 {
		return "", errors.Wrapf(game.ErrIllegalState, "agent %d has no legal actions", a.index)
	}
	return actions[a.rng.Intn(len(actions))], nil
}
