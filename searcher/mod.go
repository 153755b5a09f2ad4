package searcher

import (
	"fmt"
	"strings"

	"pursuit/game"

	"github.com/pkg/errors"
)

// Mode selects how opponent nodes combine their children's values.
type Mode int

const (
	// Minimax models opponents as minimizing the controlled agent's value.
	Minimax Mode = iota
	// AlphaBeta is Minimax with alpha-beta pruning.
	AlphaBeta
	// Expectimax models opponents as choosing uniformly at random.
	Expectimax
)

var modeNames = map[Mode]string{
	Minimax:    "minimax",
	AlphaBeta:  "alphabeta",
	Expectimax: "expectimax",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode parses a mode name such as "alphabeta" (case insensitive).
func ParseMode(name string) (Mode, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "")
	for mode, n := range modeNames {
		if n == normalized {
			return mode, nil
		}
	}
	return 0, errors.Wrapf(game.ErrConfiguration, "unknown search mode %q", name)
}

// TieBreak selects among root actions sharing the maximal value.
type TieBreak int

const (
	// TieBreakDefault uses TieBreakRandom for AlphaBeta and TieBreakFirst
	// otherwise.
	TieBreakDefault TieBreak = iota
	// TieBreakFirst keeps the first maximal action in legal action order.
	TieBreakFirst
	// TieBreakRandom picks uniformly among the maximal actions.
	TieBreakRandom
)

func (t TieBreak) resolve(mode Mode) TieBreak {
	if t != TieBreakDefault {
		return t
	}
	if mode == AlphaBeta {
		return TieBreakRandom
	}
	return TieBreakFirst
}
