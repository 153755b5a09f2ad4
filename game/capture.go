package game

import "fmt"

// MinFood is the amount of defended food at or below which a capture game ends.
const MinFood = 2

// CaptureState is a two team capture game. Even agent indices play for the
// red team, whose home is the west half of the maze; odd indices play for
// blue. An agent on the opponent's half is a pacman and eats the food there.
// Score is kept from red's perspective.
type CaptureState struct {
	maze      *Maze
	distancer Distancer
	agents    []AgentState
	food      []Position
	capsules  []Position
	score     float64
}

// NewCaptureState places one agent on each start position. Agents start as
// ghosts on their home half.
func NewCaptureState(maze *Maze, distancer Distancer, starts, food, capsules []Position) *CaptureState {
	if distancer == nil {
		distancer = NewMazeDistancer(maze)
	}
	agents := make([]AgentState, len(starts))
	for i, p := range starts {
		agents[i] = AgentState{Position: p, Start: p, Direction: Stop, Visible: true}
	}
	return &CaptureState{
		maze:      maze,
		distancer: distancer,
		agents:    agents,
		food:      append([]Position(nil), food...),
		capsules:  append([]Position(nil), capsules...),
	}
}

func (s *CaptureState) NumAgents() int {
	return len(s.agents)
}

// Score returns the score from red's perspective.
func (s *CaptureState) Score() float64 {
	return s.score
}

func (s *CaptureState) TeamScore(red bool) float64 {
	if red {
		return s.score
	}
	return -s.score
}

// IsWin reports a red victory: blue is down to MinFood or less.
func (s *CaptureState) IsWin() bool {
	return len(s.Food(false)) <= MinFood
}

// IsLose reports a blue victory.
func (s *CaptureState) IsLose() bool {
	return !s.IsWin() && len(s.Food(true)) <= MinFood
}

func (s *CaptureState) AgentState(agent int) AgentState {
	return s.agents[agent]
}

func (s *CaptureState) Width() int {
	return s.maze.Width()
}

func (s *CaptureState) Height() int {
	return s.maze.Height()
}

func (s *CaptureState) Distancer() Distancer {
	return s.distancer
}

func (s *CaptureState) IsRed(agent int) bool {
	return agent%2 == 0
}

func (s *CaptureState) Team(red bool) []int {
	team := []int{}
	for i := range s.agents {
		if s.IsRed(i) == red {
			team = append(team, i)
		}
	}
	return team
}

func (s *CaptureState) IsHome(red bool, p Position) bool {
	if red {
		return p.X < s.maze.Width()/2
	}
	return p.X >= s.maze.Width()/2
}

func (s *CaptureState) Food(red bool) []Position {
	return s.onSide(s.food, red)
}

func (s *CaptureState) Capsules(red bool) []Position {
	return s.onSide(s.capsules, red)
}

func (s *CaptureState) onSide(cells []Position, red bool) []Position {
	side := []Position{}
	for _, c := range cells {
		if s.IsHome(red, c) {
			side = append(side, c)
		}
	}
	return side
}

func (s *CaptureState) LegalActions(agent int) []Action {
	if s.IsWin() || s.IsLose() || agent < 0 || agent >= len(s.agents) {
		return nil
	}
	return append(s.maze.Moves(s.agents[agent].Position), Stop)
}

// Successor applies action for agent and returns the resulting state.
func (s *CaptureState) Successor(agent int, action Action) State {
	if agent < 0 || agent >= len(s.agents) {
		panic(fmt.Sprintf("invalid agent index %d", agent))
	}
	next := s.agents[agent].Position.Move(action)
	if s.maze.IsWall(next) {
		panic(fmt.Sprintf("illegal action %s for agent %d at %s", action, agent, s.agents[agent].Position))
	}

	ns := &CaptureState{
		maze:      s.maze,
		distancer: s.distancer,
		agents:    copyAgents(s.agents),
		food:      s.food,
		capsules:  s.capsules,
		score:     s.score,
	}
	red := s.IsRed(agent)
	me := &ns.agents[agent]
	if me.ScaredTimer > 0 {
		me.ScaredTimer--
	}
	me.Position = next
	if action != Stop {
		me.Direction = action
	}
	me.Pacman = !ns.IsHome(red, next)

	if me.Pacman {
		ns.eat(agent, red, next)
	}
	ns.collide(agent)
	return ns
}

func (s *CaptureState) eat(agent int, red bool, p Position) {
	var eaten bool
	if s.food, eaten = remove(s.food, p); eaten {
		if red {
			s.score++
		} else {
			s.score--
		}
	}
	if s.capsules, eaten = remove(s.capsules, p); eaten {
		for _, o := range s.Team(!red) {
			s.agents[o].ScaredTimer = ScaredTime
		}
	}
}

// collide resolves the mover sharing a cell with opponents. A pacman meeting
// an unscared ghost is sent home; a scared ghost meeting a pacman is sent home.
func (s *CaptureState) collide(agent int) {
	red := s.IsRed(agent)
	for _, o := range s.Team(!red) {
		if s.agents[o].Position != s.agents[agent].Position {
			continue
		}
		pacman, ghost := agent, o
		if !s.agents[agent].Pacman {
			pacman, ghost = o, agent
		}
		if !s.agents[pacman].Pacman || s.agents[ghost].Pacman {
			continue
		}
		if s.agents[ghost].IsScared() {
			s.respawn(ghost)
		} else {
			s.respawn(pacman)
		}
		if s.agents[agent].Position == s.agents[agent].Start {
			return
		}
	}
}

func (s *CaptureState) respawn(agent int) {
	a := &s.agents[agent]
	a.Position = a.Start
	a.Direction = Stop
	a.Pacman = false
	a.ScaredTimer = 0
}
