package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counts nodes, leaves and prunes", func(t *testing.T) {
		c := NewCollector()
		c.Start("alphabeta", 2)
		c.AddNode()
		c.AddNode()
		c.AddLeaf()
		c.AddPrune()

		got := c.Complete()

		require.Equal(t, "alphabeta", got.Mode)
		require.Equal(t, 2, got.Depth)
		require.Equal(t, 2, got.Nodes)
		require.Equal(t, 1, got.Leaves)
		require.Equal(t, 1, got.Prunes)
	})

	t.Run("start resets counters", func(t *testing.T) {
		c := NewCollector()
		c.Start("minimax", 1)
		c.AddLeaf()
		c.Start("minimax", 1)

		require.Zero(t, c.Complete().Leaves)
	})

	t.Run("dummy collector reports nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start("minimax", 3)
		c.AddNode()

		require.Equal(t, SearchMetric{}, c.Complete())
	})
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "modes")
	require.NoError(t, err)

	err = w.WriteAgentConfigs([]AgentConfig{{ID: 1, Mode: "minimax", Depth: 2, Evaluation: "score"}})
	require.NoError(t, err)
	err = w.WriteGameRecords([]GameRecord{{Agent: 1, GameMetric: GameMetric{ID: "g1", Outcome: "win", Score: 503, TotalMoves: 7, Duration: time.Second}}})
	require.NoError(t, err)
	err = w.WriteMoveRecords([]MoveRecord{{Game: "g1", MoveMetric: MoveMetric{Step: 1, Action: "East", SearchMetric: SearchMetric{Mode: "minimax", Nodes: 4}}}})
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(w.Dir(), "game_records.csv"))
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 2, "Header plus one record")
	require.Equal(t, "outcome", rows[0][2])
	require.Equal(t, []string{"g1", "1", "win", "503"}, rows[1][:4])
}
