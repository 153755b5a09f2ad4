package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"pursuit/agent"
	"pursuit/experiments/metrics"
	"pursuit/game"
	"pursuit/searcher"

	"github.com/stretchr/testify/require"
)

func corridor() game.State {
	maze := game.NewMaze(5, 1)
	return game.NewPursuitState(maze, game.Position{X: 2}, []game.Position{{X: 4}}, []game.Position{{X: 0}}, nil)
}

func readCSV(t *testing.T, path string) [][]string {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestModeComparison(t *testing.T) {
	configs := ModeComparison(2, "better")
	require.Len(t, configs, 4)
	require.Equal(t, metrics.AgentConfig{ID: 2, Mode: "alphabeta", Depth: 2, Evaluation: "better"}, configs[1])
	require.Equal(t, metrics.AgentConfig{ID: 4, Mode: agent.ReflexPacman, Evaluation: "ghostaware"}, configs[3])
}

func TestComparison(t *testing.T) {
	t.Run("modes", func(t *testing.T) {
		configs, err := Comparison(KindModes, searcher.Minimax, 3, "score")
		require.NoError(t, err)
		require.Equal(t, ModeComparison(3, "score"), configs)
	})

	t.Run("depth", func(t *testing.T) {
		configs, err := Comparison(KindDepth, searcher.Expectimax, 3, "score")
		require.NoError(t, err)
		require.Len(t, configs, 3)
		for i, config := range configs {
			require.Equal(t, i+1, config.Depth)
			require.Equal(t, "expectimax", config.Mode)
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := Comparison("tournament", searcher.Minimax, 2, "score")
		require.ErrorIs(t, err, game.ErrConfiguration)
	})
}

func TestCreateSearch(t *testing.T) {
	config := metrics.AgentConfig{ID: 1, Mode: "alphabeta", Depth: 2, Evaluation: "better"}

	t.Run("mode default", func(t *testing.T) {
		search, err := createSearch(config, searcher.TieBreakDefault, 1)
		require.NoError(t, err)
		require.Equal(t, searcher.AlphaBeta, search.Mode())
		require.Equal(t, searcher.TieBreakRandom, search.TieBreak())
	})

	t.Run("configured tie break", func(t *testing.T) {
		search, err := createSearch(config, searcher.TieBreakFirst, 1)
		require.NoError(t, err)
		require.Equal(t, searcher.TieBreakFirst, search.TieBreak())
	})

	t.Run("unknown evaluation", func(t *testing.T) {
		_, err := createSearch(metrics.AgentConfig{Mode: "minimax", Evaluation: "vibes"}, searcher.TieBreakDefault, 1)
		require.ErrorIs(t, err, game.ErrConfiguration)
	})
}

func TestRun(t *testing.T) {
	e := Experiment{
		Name:     "modes",
		Root:     t.TempDir(),
		Games:    2,
		MaxMoves: 50,
		Seed:     1,
		TieBreak: searcher.TieBreakFirst,
		NewState: corridor,
	}
	dir, records, err := e.Run(ModeComparison(2, "better"))
	require.NoError(t, err)
	require.Len(t, records, 8)
	for _, record := range records {
		require.Equal(t, "win", record.Outcome, "config %d", record.Agent)
		require.Equal(t, 3, record.TotalMoves)
	}

	configs := readCSV(t, filepath.Join(dir, "agent_configs.csv"))
	require.Len(t, configs, 5)
	require.Equal(t, []string{"3", "expectimax", "2", "better"}, configs[3])
	require.Equal(t, []string{"4", "reflex", "0", "ghostaware"}, configs[4])

	games := readCSV(t, filepath.Join(dir, "game_records.csv"))
	require.Len(t, games, 9)

	moves := readCSV(t, filepath.Join(dir, "move_records.csv"))
	require.Len(t, moves, 25)
}

func TestRunErrors(t *testing.T) {
	t.Run("unknown mode", func(t *testing.T) {
		e := Experiment{Name: "bad", Root: t.TempDir(), Games: 1, NewState: corridor}
		_, _, err := e.Run([]metrics.AgentConfig{{ID: 1, Mode: "mcts", Depth: 1}})
		require.ErrorIs(t, err, game.ErrConfiguration)
	})

	t.Run("no state", func(t *testing.T) {
		_, _, err := Experiment{Name: "bad", Root: t.TempDir()}.Run(ModeComparison(1, "score"))
		require.ErrorIs(t, err, game.ErrConfiguration)
	})
}
