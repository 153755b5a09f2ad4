package agent

import (
	"sort"
	"strings"

	"pursuit/game"

	"github.com/pkg/errors"
)

// Evaluations are the named leaf evaluation functions searches can use.
var Evaluations = map[string]game.Evaluate{
	"score":  game.EvaluateScore,
	"better": game.EvaluateBetter,
}

func ParseEvaluation(name string) (game.Evaluate, error) {
	if fn, ok := Evaluations[strings.ToLower(name)]; ok {
		return fn, nil
	}
	names := make([]string, 0, len(Evaluations))
	for n := range Evaluations {
		names = append(names, n)
	}
	sort.Strings(names)
	return nil, errors.Wrapf(game.ErrConfiguration, "unknown evaluation %q, want one of %s", name, strings.Join(names, ", "))
}
