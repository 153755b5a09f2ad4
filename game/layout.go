package game

// ScaredTime is the number of moves ghosts stay scared after a capsule is eaten.
const ScaredTime = 40

// remove returns a copy of cells without p, and whether p was present. The
// input slice is never modified so states can share it.
func remove(cells []Position, p Position) ([]Position, bool) {
	for i, c := range cells {
		if c == p {
			out := make([]Position, 0, len(cells)-1)
			out = append(out, cells[:i]...)
			return append(out, cells[i+1:]...), true
		}
	}
	return cells, false
}

func contains(cells []Position, p Position) bool {
	for _, c := range cells {
		if c == p {
			return true
		}
	}
	return false
}

func copyAgents(agents []AgentState) []AgentState {
	out := make([]AgentState, len(agents))
	copy(out, agents)
	return out
}
