package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// corridor is a 5x1 maze: pacman at the west end, one ghost at the east end.
func corridor(food, capsules []Position) *PursuitState {
	return NewPursuitState(NewMaze(5, 1), Position{X: 0, Y: 0}, []Position{{X: 4, Y: 0}}, food, capsules)
}

func TestPursuitLegalActions(t *testing.T) {
	t.Run("pacman may always stop", func(t *testing.T) {
		s := corridor([]Position{{X: 2, Y: 0}}, nil)

		require.Equal(t, []Action{East, Stop}, s.LegalActions(0))
	})

	t.Run("ghosts do not reverse when another move exists", func(t *testing.T) {
		m := NewMaze(3, 3)
		s := NewPursuitState(m, Position{X: 0, Y: 0}, []Position{{X: 1, Y: 1}}, []Position{{X: 2, Y: 2}}, nil)
		s = s.Successor(1, East).(*PursuitState)

		require.NotContains(t, s.LegalActions(1), West, "Reverse of the last move should be excluded")
		require.NotContains(t, s.LegalActions(1), Stop, "Ghosts cannot stop")
	})

	t.Run("ghost in a dead end must reverse", func(t *testing.T) {
		s := corridor([]Position{{X: 2, Y: 0}}, nil)
		s = s.Successor(1, West).(*PursuitState)
		s = s.Successor(1, East).(*PursuitState)

		require.Equal(t, []Action{West}, s.LegalActions(1))
	})

	t.Run("terminal and unknown agents have no actions", func(t *testing.T) {
		s := corridor([]Position{{X: 1, Y: 0}}, nil)
		won := s.Successor(0, East)

		require.Empty(t, won.LegalActions(0))
		require.Empty(t, s.LegalActions(5))
	})
}

func TestPursuitSuccessor(t *testing.T) {
	t.Run("eating the last food wins", func(t *testing.T) {
		s := corridor([]Position{{X: 1, Y: 0}}, nil)

		got := s.Successor(0, East)

		require.True(t, got.IsWin())
		require.Equal(t, float64(-timePenalty+foodReward+winReward), got.Score())
		require.False(t, s.IsWin(), "Original state must not change")
		require.Len(t, s.Food(), 1, "Original state must not change")
	})

	t.Run("walking into an unscared ghost loses", func(t *testing.T) {
		s := corridor([]Position{{X: 0, Y: 0}, {X: 4, Y: 0}}, nil)
		s = s.Successor(1, West).(*PursuitState)
		s = s.Successor(1, West).(*PursuitState)
		s = s.Successor(1, West).(*PursuitState)

		got := s.Successor(0, East)

		require.True(t, got.IsLose())
		require.Equal(t, float64(-timePenalty-losePenalty), got.Score())
	})

	t.Run("capsule scares ghosts and a scared ghost can be eaten", func(t *testing.T) {
		s := corridor([]Position{{X: 0, Y: 0}}, []Position{{X: 1, Y: 0}})
		s = s.Successor(1, West).(*PursuitState) // ghost at x=3
		s = s.Successor(0, East).(*PursuitState) // capsule at x=1
		require.Equal(t, ScaredTime, s.AgentState(1).ScaredTimer)

		s = s.Successor(1, West).(*PursuitState) // ghost at x=2
		require.Equal(t, ScaredTime-1, s.AgentState(1).ScaredTimer, "Scared timer ticks on the ghost's move")

		before := s.Score()
		got := s.Successor(0, East).(*PursuitState)

		require.False(t, got.IsLose())
		require.Equal(t, before-timePenalty+ghostReward, got.Score())
		require.Equal(t, Position{X: 4, Y: 0}, got.AgentState(1).Position, "Eaten ghost respawns at its start")
		require.False(t, got.AgentState(1).IsScared())
	})

	t.Run("stop keeps the facing direction", func(t *testing.T) {
		s := corridor([]Position{{X: 3, Y: 0}}, nil)
		s = s.Successor(0, East).(*PursuitState)
		s = s.Successor(0, Stop).(*PursuitState)

		require.Equal(t, East, s.AgentState(0).Direction)
	})

	t.Run("illegal moves panic", func(t *testing.T) {
		s := corridor([]Position{{X: 3, Y: 0}}, nil)

		require.Panics(t, func() { s.Successor(0, West) })
		require.Panics(t, func() { s.Successor(3, East) })
	})
}
