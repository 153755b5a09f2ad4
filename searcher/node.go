package searcher

import "math"

// window is the alpha-beta bound pair. Each node works on its own copy.
type window struct {
	alpha float64
	beta  float64
}

func fullWindow() window {
	return window{alpha: math.Inf(-1), beta: math.Inf(1)}
}

// combinator folds the values of a node's children into the node's value.
type combinator interface {
	init() float64
	fold(acc, child float64) float64
	// cut reports whether the remaining children can be skipped, and
	// otherwise narrows w with the value scored so far.
	cut(acc float64, w *window) bool
	result(acc float64, children int) float64
}

type maxNode struct{}

func (maxNode) init() float64                     { return math.Inf(-1) }
func (maxNode) fold(acc, child float64) float64   { return math.Max(acc, child) }
func (maxNode) cut(float64, *window) bool         { return false }
func (maxNode) result(acc float64, _ int) float64 { return acc }

type minNode struct{}

func (minNode) init() float64                     { return math.Inf(1) }
func (minNode) fold(acc, child float64) float64   { return math.Min(acc, child) }
func (minNode) cut(float64, *window) bool         { return false }
func (minNode) result(acc float64, _ int) float64 { return acc }

// prunedMaxNode stops once its value exceeds beta: the minimizing ancestor
// already has a better option.
type prunedMaxNode struct{ maxNode }

func (prunedMaxNode) cut(acc float64, w *window) bool {
	if acc > w.beta {
		return true
	}
	w.alpha = math.Max(w.alpha, acc)
	return false
}

// prunedMinNode stops once its value drops below alpha.
type prunedMinNode struct{ minNode }

func (prunedMinNode) cut(acc float64, w *window) bool {
	if acc < w.alpha {
		return true
	}
	w.beta = math.Min(w.beta, acc)
	return false
}

// averageNode is the uniform expectation over all children.
type averageNode struct{}

func (averageNode) init() float64                   { return 0 }
func (averageNode) fold(acc, child float64) float64 { return acc + child }
func (averageNode) cut(float64, *window) bool       { return false }
func (averageNode) result(acc float64, children int) float64 {
	return acc / float64(children)
}

// strategy pairs the controlled agent's combinator with the opponents'.
type strategy struct {
	max      combinator
	opponent combinator
}

var strategies = map[Mode]strategy{
	Minimax:    {max: maxNode{}, opponent: minNode{}},
	AlphaBeta:  {max: prunedMaxNode{}, opponent: prunedMinNode{}},
	Expectimax: {max: maxNode{}, opponent: averageNode{}},
}
