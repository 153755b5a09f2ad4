package game

import (
	"math"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
)

// Unreachable is the distance reported between cells with no path.
const Unreachable = 1 << 20

// Maze is a static rectangular grid of open cells and walls. Cells outside
// the grid are walls.
type Maze struct {
	width  int
	height int
	walls  map[Position]bool
}

// NewMaze creates a width x height maze with the given interior walls.
func NewMaze(width, height int, walls ...Position) *Maze {
	m := &Maze{
		width:  width,
		height: height,
		walls:  make(map[Position]bool, len(walls)),
	}
	for _, w := range walls {
		m.walls[w] = true
	}
	return m
}

func (m *Maze) Width() int {
	return m.width
}

func (m *Maze) Height() int {
	return m.height
}

// IsWall reports whether p is blocked.
func (m *Maze) IsWall(p Position) bool {
	if p.X < 0 || p.X >= m.width || p.Y < 0 || p.Y >= m.height {
		return true
	}
	return m.walls[p]
}

// Moves returns the non-stop actions leading from p to an open cell.
func (m *Maze) Moves(p Position) []Action {
	moves := make([]Action, 0, 4)
	for _, a := range Directions {
		if a == Stop {
			continue
		}
		if !m.IsWall(p.Move(a)) {
			moves = append(moves, a)
		}
	}
	return moves
}

// OpenCells returns every open cell in row-major order.
func (m *Maze) OpenCells() []Position {
	cells := []Position{}
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			p := Position{X: x, Y: y}
			if !m.IsWall(p) {
				cells = append(cells, p)
			}
		}
	}
	return cells
}

// MazeDistancer answers maze distances from precomputed all-pairs shortest
// paths over the open cells.
type MazeDistancer struct {
	ids   map[Position]int64
	paths path.AllShortest
}

// NewMazeDistancer builds the shortest path table for m. Construction is
// quadratic in the number of open cells, so build it once per maze.
func NewMazeDistancer(m *Maze) *MazeDistancer {
	g := simple.NewUndirectedGraph()
	ids := make(map[Position]int64)
	for i, p := range m.OpenCells() {
		ids[p] = int64(i)
		g.AddNode(simple.Node(i))
	}
	for p, id := range ids {
		// East and North edges cover every adjacency exactly once
		for _, a := range []Action{East, North} {
			if nid, ok := ids[p.Move(a)]; ok {
				g.SetEdge(g.NewEdge(simple.Node(id), simple.Node(nid)))
			}
		}
	}

	return &MazeDistancer{
		ids:   ids,
		paths: path.DijkstraAllPaths(g),
	}
}

// Distance returns the maze distance between a and b. Positions off the open
// grid fall back to Manhattan distance.
func (d *MazeDistancer) Distance(a, b Position) int {
	aid, aok := d.ids[a]
	bid, bok := d.ids[b]
	if !aok || !bok {
		return a.Manhattan(b)
	}
	w := d.paths.Weight(aid, bid)
	if math.IsInf(w, 1) {
		return Unreachable
	}
	return int(w)
}

// ManhattanDistancer ignores walls.
type ManhattanDistancer struct{}

func (ManhattanDistancer) Distance(a, b Position) int {
	return a.Manhattan(b)
}
