package agent

import (
	"time"

	"pursuit/experiments/metrics"
	"pursuit/game"

	"golang.org/x/exp/rand"
)

type Agent interface {
	// ChooseAction returns one of the agent's legal actions in state. It fails
	// with game.ErrIllegalState when there is none.
	ChooseAction(state game.State) (game.Action, error)
}

// Reporter is implemented by agents that search, exposing the metrics of
// their latest decision.
type Reporter interface {
	LastSearch() metrics.SearchMetric
}

// newRand returns rng, or a time seeded generator when rng is nil.
func newRand(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
}
