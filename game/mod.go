package game

// State is the read-only view of a game that search and evaluation depend on.
// Implementations must be immutable: Successor always returns a new State and
// never mutates the receiver.
type State interface {
	// LegalActions returns the actions available to agent, in a stable order.
	LegalActions(agent int) []Action
	Successor(agent int, action Action) State
	IsWin() bool
	IsLose() bool
	NumAgents() int
	Score() float64
}

// Evaluates a state to a scalar from the controlled agent's (index 0)
// perspective. Higher is better. Searches rank a NaN result as -Inf.
type Evaluate func(State) float64

// Distancer is the maze-distance oracle: the length of the shortest path
// between two open cells, respecting walls.
type Distancer interface {
	Distance(a, b Position) int
}

// AgentState is the positional snapshot of a single agent.
type AgentState struct {
	Position    Position
	Start       Position
	Direction   Action
	Pacman      bool // false means the agent is a ghost
	ScaredTimer int
	Visible     bool
}

func (a AgentState) IsGhost() bool {
	return !a.Pacman
}

func (a AgentState) IsScared() bool {
	return a.ScaredTimer > 0
}

// PursuitView exposes the layout of a single pacman versus ghosts game.
// Agent 0 is pacman, every other agent is a ghost.
type PursuitView interface {
	State
	AgentState(agent int) AgentState
	Food() []Position
	Capsules() []Position
}

// CaptureView exposes the layout of a two team capture game.
type CaptureView interface {
	State
	AgentState(agent int) AgentState
	// Food returns the food located on the given team's half (the food that
	// team defends).
	Food(red bool) []Position
	// Capsules returns the capsules located on the given team's half.
	Capsules(red bool) []Position
	IsRed(agent int) bool
	Team(red bool) []int
	// TeamScore returns the score from the given team's perspective.
	TeamScore(red bool) float64
	// IsHome reports whether p lies on the given team's half.
	IsHome(red bool, p Position) bool
	Width() int
	Height() int
	Distancer() Distancer
}
