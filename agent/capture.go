package agent

import (
	"pursuit/evaluation"
	"pursuit/game"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// CaptureAgent plays one member of a capture team. Each decision it picks a
// role, then chooses the reflex best action under that role's features and
// weights.
type CaptureAgent struct {
	index    int
	pressure evaluation.Pressure
	weights  map[evaluation.Role]evaluation.Weights
	rng      *rand.Rand
}

// NewCaptureAgent returns the agent playing index. weights overrides the
// default table of a role; missing roles use their defaults.
func NewCaptureAgent(index int, weights map[evaluation.Role]evaluation.Weights, rng *rand.Rand) *CaptureAgent {
	return &CaptureAgent{index: index, weights: weights, rng: newRand(rng)}
}

func (a *CaptureAgent) Index() int {
	return a.index
}

// Pressure returns the number of consecutive offense decisions spent at home.
func (a *CaptureAgent) Pressure() int {
	return a.pressure.Value()
}

func (a *CaptureAgent) ChooseAction(state game.State) (game.Action, error) {
	view, ok := state.(game.CaptureView)
	if !ok {
		return "", errors.Wrapf(game.ErrIllegalState, "capture agent %d needs a capture state, got %T", a.index, state)
	}
	if a.index < 0 || a.index >= view.NumAgents() {
		return "", errors.Wrapf(game.ErrIllegalState, "agent index %d out of range for %d agents", a.index, view.NumAgents())
	}

	role := evaluation.SelectRole(view, a.index)
	// Only attackers feel territorial pressure, a defender's counter is frozen
	if role == evaluation.Offense {
		red := view.IsRed(a.index)
		a.pressure.Step(view.IsHome(red, view.AgentState(a.index).Position))
	}
	weights := evaluation.DefaultWeights(role)
	if override, ok := a.weights[role]; ok {
		weights = weights.With(override)
	}
	strategy := evaluation.NewStrategy(role, evaluation.Extractor{Agent: a.index, Pressure: &a.pressure}, weights)

	reflex := NewReflex(a.index, func(s game.State, action game.Action) float64 {
		return evaluation.Score(strategy, s.(game.CaptureView), action)
	}, a.rng)
	action, err := reflex.ChooseAction(state)
	if err != nil {
		return "", err
	}
	log.Debug().
		Int("agent", a.index).
		Stringer("role", role).
		Int("pressure", a.pressure.Value()).
		Str("action", string(action)).
		Msg("capture decision")
	return action, nil
}
