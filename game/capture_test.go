package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// newCapture builds an 8x3 open maze with red (agent 0) at the west edge and
// blue (agent 1) at the east edge. Red's home is x < 4.
func newCapture(food, capsules []Position) *CaptureState {
	m := NewMaze(8, 3)
	starts := []Position{{X: 0, Y: 1}, {X: 7, Y: 1}}
	return NewCaptureState(m, nil, starts, food, capsules)
}

var fullFood = []Position{
	{X: 1, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: 0}, {X: 2, Y: 2},
	{X: 5, Y: 0}, {X: 5, Y: 2}, {X: 6, Y: 0}, {X: 6, Y: 2},
}

func TestCaptureTeams(t *testing.T) {
	s := newCapture(fullFood, nil)

	require.Equal(t, []int{0}, s.Team(true))
	require.Equal(t, []int{1}, s.Team(false))
	require.True(t, s.IsRed(0))
	require.False(t, s.IsRed(1))
	require.True(t, s.IsHome(true, Position{X: 3, Y: 0}))
	require.False(t, s.IsHome(true, Position{X: 4, Y: 0}))
	require.True(t, s.IsHome(false, Position{X: 4, Y: 0}))
	require.Len(t, s.Food(true), 4, "Red defends the food on the west half")
	require.Len(t, s.Food(false), 4)
	require.False(t, s.IsWin())
	require.False(t, s.IsLose())
}

func TestCaptureSuccessor(t *testing.T) {
	t.Run("crossing the middle turns an agent into a pacman", func(t *testing.T) {
		s := newCapture(fullFood, nil)
		for i := 0; i < 4; i++ {
			s = s.Successor(0, East).(*CaptureState)
		}

		require.True(t, s.AgentState(0).Pacman)
		require.Equal(t, Position{X: 4, Y: 1}, s.AgentState(0).Position)
	})

	t.Run("eating opponent food scores for the eater's team", func(t *testing.T) {
		s := newCapture(append(fullFood, Position{X: 4, Y: 1}), nil)
		for i := 0; i < 4; i++ {
			s = s.Successor(0, East).(*CaptureState)
		}

		require.Equal(t, 1.0, s.Score())
		require.Equal(t, 1.0, s.TeamScore(true))
		require.Equal(t, -1.0, s.TeamScore(false))
		require.Len(t, s.Food(false), 4)
	})

	t.Run("a pacman meeting an unscared ghost is sent home", func(t *testing.T) {
		s := newCapture(fullFood, nil)
		for i := 0; i < 4; i++ {
			s = s.Successor(0, East).(*CaptureState)
		}
		s = s.Successor(1, West).(*CaptureState) // blue at x=6
		s = s.Successor(1, West).(*CaptureState) // blue at x=5

		got := s.Successor(0, East).(*CaptureState)

		require.Equal(t, Position{X: 0, Y: 1}, got.AgentState(0).Position)
		require.False(t, got.AgentState(0).Pacman)
		require.Equal(t, Position{X: 5, Y: 1}, got.AgentState(1).Position)
	})

	t.Run("a capsule scares the opponents and a scared ghost is sent home", func(t *testing.T) {
		s := newCapture(fullFood, []Position{{X: 4, Y: 1}})
		for i := 0; i < 4; i++ {
			s = s.Successor(0, East).(*CaptureState)
		}
		require.Equal(t, ScaredTime, s.AgentState(1).ScaredTimer)
		require.Empty(t, s.Capsules(false))

		s = s.Successor(1, West).(*CaptureState) // blue at x=6
		s = s.Successor(1, West).(*CaptureState) // blue at x=5
		got := s.Successor(0, East).(*CaptureState)

		require.Equal(t, Position{X: 5, Y: 1}, got.AgentState(0).Position, "Pacman survives")
		require.Equal(t, Position{X: 7, Y: 1}, got.AgentState(1).Position, "Scared ghost respawns")
		require.False(t, got.AgentState(1).IsScared())
	})

	t.Run("eating down to the minimum food ends the game", func(t *testing.T) {
		food := []Position{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 1}, {X: 5, Y: 0}, {X: 6, Y: 0}}
		s := newCapture(food, nil)
		for i := 0; i < 4; i++ {
			s = s.Successor(0, East).(*CaptureState)
		}

		require.True(t, s.IsWin(), "Blue is left with %d food", len(s.Food(false)))
		require.False(t, s.IsLose())
		require.Empty(t, s.LegalActions(0))
	})
}
