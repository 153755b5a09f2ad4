package agent

import (
	"pursuit/experiments/metrics"
	"pursuit/game"
	"pursuit/searcher"
)

// SearchAgent plays agent 0 with an adversarial tree search.
type SearchAgent struct {
	search *searcher.Search
	last   metrics.SearchMetric
}

func NewSearchAgent(search *searcher.Search) *SearchAgent {
	return &SearchAgent{search: search}
}

func (a *SearchAgent) ChooseAction(state game.State) (game.Action, error) {
	result, err := a.search.Run(state)
	if err != nil {
		return "", err
	}
	a.last = result.Metrics
	return result.Action, nil
}

func (a *SearchAgent) LastSearch() metrics.SearchMetric {
	return a.last
}
