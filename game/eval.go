package game

import "math"

// EvaluateScore uses the raw game score.
func EvaluateScore(s State) float64 {
	return s.Score()
}

// EvaluateBetter scores a pursuit state by its game score plus terms for the
// remaining food and capsules, the nearest food and the ghosts' proximity. A
// state with an unscared ghost adjacent to pacman is forbidden (-Inf). Other
// state kinds fall back to the raw score.
func EvaluateBetter(s State) float64 {
	ps, ok := s.(PursuitView)
	if !ok || s.IsWin() || s.IsLose() {
		return s.Score()
	}

	pacman := ps.AgentState(0).Position
	value := ps.Score()

	food := ps.Food()
	value -= 4 * float64(len(food))
	if len(food) > 0 {
		value -= float64(nearest(pacman, food))
	}
	value -= 20 * float64(len(ps.Capsules()))

	for ghost := 1; ghost < ps.NumAgents(); ghost++ {
		g := ps.AgentState(ghost)
		d := pacman.Manhattan(g.Position)
		if g.IsScared() {
			// Chase scared ghosts only while they stay scared long enough to reach
			if d < g.ScaredTimer {
				value += 100 / float64(d+1)
			}
			continue
		}
		if d <= 1 {
			return math.Inf(-1)
		}
		value -= 10 / float64(d)
	}
	return value
}

// nearest returns the Manhattan distance from p to the closest target.
func nearest(p Position, targets []Position) int {
	best := math.MaxInt
	for _, t := range targets {
		if d := p.Manhattan(t); d < best {
			best = d
		}
	}
	return best
}
