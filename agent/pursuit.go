package agent

import (
	"math"

	"pursuit/game"

	"golang.org/x/exp/rand"
)

const (
	dangerRadius     = 1
	scaredChaseRange = 3
	scaredBonus      = 10
	eatBonus         = 10
	stallPenalty     = 2
	stopPenalty      = 3
)

// GhostAwareEvaluator is a one step pacman heuristic. It forbids moving next
// to an unscared ghost and otherwise rewards eating and closing in on food.
type GhostAwareEvaluator struct {
	Distancer game.Distancer // nil uses Manhattan distance
}

func (g GhostAwareEvaluator) distancer() game.Distancer {
	if g.Distancer == nil {
		return game.ManhattanDistancer{}
	}
	return g.Distancer
}

// Evaluate implements ActionEvaluator for pacman (agent 0) in a pursuit game.
// Non pursuit states are scored by the successor's raw score.
func (g GhostAwareEvaluator) Evaluate(state game.State, action game.Action) float64 {
	next := state.Successor(0, action)
	before, ok := state.(game.PursuitView)
	after, ok2 := next.(game.PursuitView)
	if !ok || !ok2 {
		return next.Score()
	}
	if next.IsLose() {
		return math.Inf(-1)
	}

	d := g.distancer()
	oldPos := before.AgentState(0).Position
	newPos := after.AgentState(0).Position
	value := after.Score()

	for ghost := 1; ghost < after.NumAgents(); ghost++ {
		a := after.AgentState(ghost)
		dist := d.Distance(newPos, a.Position)
		if !a.IsScared() {
			if dist <= dangerRadius {
				return math.Inf(-1)
			}
			continue
		}
		if dist <= scaredChaseRange {
			value += scaredBonus
		}
	}

	if len(after.Food()) < len(before.Food()) {
		value += eatBonus
	}
	if food := after.Food(); len(food) > 0 {
		closest := nearest(d, newPos, food)
		value -= float64(closest)
		// No progress towards food
		if closest == nearest(d, oldPos, before.Food()) {
			value -= stallPenalty
		}
	}
	if newPos == oldPos {
		value -= stopPenalty
	}
	return value
}

func nearest(d game.Distancer, p game.Position, targets []game.Position) int {
	best := math.MaxInt
	for _, t := range targets {
		if dist := d.Distance(p, t); dist < best {
			best = dist
		}
	}
	return best
}

// ReflexPacman names the one step pacman policy where a search mode is
// expected.
const ReflexPacman = "reflex"

// NewReflexPacman returns a reflex policy for pacman driven by
// GhostAwareEvaluator. States that expose their maze measure maze distance,
// others Manhattan distance.
func NewReflexPacman(state game.State, rng *rand.Rand) *Reflex {
	var evaluator GhostAwareEvaluator
	if m, ok := state.(interface{ Maze() *game.Maze }); ok {
		evaluator.Distancer = game.NewMazeDistancer(m.Maze())
	}
	return NewReflex(0, evaluator.Evaluate, rng)
}
