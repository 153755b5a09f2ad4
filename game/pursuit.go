package game

import "fmt"

const (
	foodReward    = 10
	timePenalty   = 1
	ghostReward   = 200
	winReward     = 500
	losePenalty   = 500
	pacmanIndex   = 0
	firstGhostIdx = 1
)

// PursuitState is a classic pacman game: agent 0 eats food while the other
// agents, ghosts, try to catch it.
type PursuitState struct {
	maze     *Maze
	agents   []AgentState
	food     []Position
	capsules []Position
	score    float64
	win      bool
	lose     bool
}

// NewPursuitState places pacman and the ghosts on the maze.
func NewPursuitState(maze *Maze, pacman Position, ghosts []Position, food, capsules []Position) *PursuitState {
	agents := make([]AgentState, 0, len(ghosts)+1)
	agents = append(agents, AgentState{Position: pacman, Start: pacman, Direction: Stop, Pacman: true, Visible: true})
	for _, g := range ghosts {
		agents = append(agents, AgentState{Position: g, Start: g, Direction: Stop, Visible: true})
	}
	return &PursuitState{
		maze:     maze,
		agents:   agents,
		food:     append([]Position(nil), food...),
		capsules: append([]Position(nil), capsules...),
	}
}

func (s *PursuitState) Maze() *Maze {
	return s.maze
}

func (s *PursuitState) NumAgents() int {
	return len(s.agents)
}

func (s *PursuitState) Score() float64 {
	return s.score
}

func (s *PursuitState) IsWin() bool {
	return s.win
}

func (s *PursuitState) IsLose() bool {
	return s.lose
}

func (s *PursuitState) AgentState(agent int) AgentState {
	return s.agents[agent]
}

func (s *PursuitState) Food() []Position {
	return s.food
}

func (s *PursuitState) Capsules() []Position {
	return s.capsules
}

// LegalActions returns pacman's open moves plus Stop, or a ghost's open moves.
// Ghosts may neither stop nor reverse unless there is no other choice.
func (s *PursuitState) LegalActions(agent int) []Action {
	if s.win || s.lose || agent < 0 || agent >= len(s.agents) {
		return nil
	}
	a := s.agents[agent]
	moves := s.maze.Moves(a.Position)
	if agent == pacmanIndex {
		return append(moves, Stop)
	}
	if len(moves) == 0 {
		return []Action{Stop}
	}
	if len(moves) == 1 {
		return moves
	}
	back := Reverse(a.Direction)
	forward := make([]Action, 0, len(moves))
	for _, m := range moves {
		if m != back {
			forward = append(forward, m)
		}
	}
	return forward
}

// Successor applies action for agent and returns the resulting state.
func (s *PursuitState) Successor(agent int, action Action) State {
	if s.win || s.lose {
		panic("cannot generate a successor of a terminal state")
	}
	if agent < 0 || agent >= len(s.agents) {
		panic(fmt.Sprintf("invalid agent index %d", agent))
	}
	next := s.agents[agent].Position.Move(action)
	if s.maze.IsWall(next) {
		panic(fmt.Sprintf("illegal action %s for agent %d at %s", action, agent, s.agents[agent].Position))
	}

	ns := &PursuitState{
		maze:     s.maze,
		agents:   copyAgents(s.agents),
		food:     s.food,
		capsules: s.capsules,
		score:    s.score,
	}
	ns.agents[agent].Position = next
	if action != Stop {
		ns.agents[agent].Direction = action
	}

	if agent == pacmanIndex {
		ns.movePacman(next)
		for ghost := firstGhostIdx; ghost < len(ns.agents) && !ns.lose; ghost++ {
			ns.collide(ghost)
		}
	} else {
		if ns.agents[agent].ScaredTimer > 0 {
			ns.agents[agent].ScaredTimer--
		}
		ns.collide(agent)
	}
	return ns
}

func (s *PursuitState) movePacman(p Position) {
	s.score -= timePenalty

	var eaten bool
	if s.food, eaten = remove(s.food, p); eaten {
		s.score += foodReward
		if len(s.food) == 0 {
			s.score += winReward
			s.win = true
		}
	}
	if s.capsules, eaten = remove(s.capsules, p); eaten {
		for ghost := firstGhostIdx; ghost < len(s.agents); ghost++ {
			s.agents[ghost].ScaredTimer = ScaredTime
		}
	}
}

func (s *PursuitState) collide(ghost int) {
	if s.win || s.agents[ghost].Position != s.agents[pacmanIndex].Position {
		return
	}
	if s.agents[ghost].IsScared() {
		s.score += ghostReward
		s.agents[ghost].Position = s.agents[ghost].Start
		s.agents[ghost].Direction = Stop
		s.agents[ghost].ScaredTimer = 0
		return
	}
	s.score -= losePenalty
	s.lose = true
}
