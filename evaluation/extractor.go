package evaluation

import (
	"math"

	"pursuit/game"
)

// Extractor holds what feature extraction needs to know about the agent it
// works for.
type Extractor struct {
	Agent    int
	Pressure *Pressure // may be nil, territorialPressure is then omitted
}

// successor returns the capture state after the agent plays action.
func (e Extractor) successor(state game.CaptureView, action game.Action) game.CaptureView {
	next, ok := state.Successor(e.Agent, action).(game.CaptureView)
	if !ok {
		// Successors of a capture state are capture states
		panic("successor is not a capture state")
	}
	return next
}

type opponents struct {
	invaders  []game.Position // visible opponent pacmen
	defenders []game.Position // visible opponent ghosts
}

func (e Extractor) opponents(state game.CaptureView) opponents {
	var o opponents
	for _, i := range state.Team(!state.IsRed(e.Agent)) {
		a := state.AgentState(i)
		if !a.Visible {
			continue
		}
		if a.Pacman {
			o.invaders = append(o.invaders, a.Position)
		} else {
			o.defenders = append(o.defenders, a.Position)
		}
	}
	return o
}

// distances returns the maze distance from p to every target.
func distances(d game.Distancer, p game.Position, targets []game.Position) []float64 {
	out := make([]float64, len(targets))
	for i, t := range targets {
		out[i] = float64(d.Distance(p, t))
	}
	return out
}

func nearest(d game.Distancer, p game.Position, targets []game.Position) float64 {
	best := math.Inf(1)
	for _, t := range targets {
		best = math.Min(best, float64(d.Distance(p, t)))
	}
	return best
}

// behindLine reports whether p and the cell one step towards the border both
// lie on the team's half.
func behindLine(state game.CaptureView, red bool, p game.Position) bool {
	step := game.East
	if !red {
		step = game.West
	}
	return state.IsHome(red, p) && state.IsHome(red, p.Move(step))
}
