package agent

import (
	"pursuit/game"
	"pursuit/utils"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// ActionEvaluator scores playing action in state. Higher is better; NaN
// ranks as -Inf.
type ActionEvaluator func(state game.State, action game.Action) float64

// Reflex picks the legal action with the highest one step evaluation,
// breaking ties uniformly at random.
type Reflex struct {
	agent    int
	evaluate ActionEvaluator
	rng      *rand.Rand
}

// NewReflex returns a reflex policy for agent. A nil rng is seeded from the
// clock.
func NewReflex(agent int, evaluate ActionEvaluator, rng *rand.Rand) *Reflex {
	return &Reflex{agent: agent, evaluate: evaluate, rng: newRand(rng)}
}

func (r *Reflex) ChooseAction(state game.State) (game.Action, error) {
	actions := state.LegalActions(r.agent)
	if len(actions) == 0 {
		return "", errors.Wrapf(game.ErrIllegalState, "agent %d has no legal actions", r.agent)
	}

	candidates := utils.Maximal(actions, func(action game.Action) float64 {
		return r.evaluate(state, action)
	})
	return candidates[r.rng.Intn(len(candidates))], nil
}
