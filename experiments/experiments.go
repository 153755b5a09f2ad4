package experiments

import (
	"pursuit/agent"
	"pursuit/engine"
	"pursuit/experiments/metrics"
	"pursuit/game"
	"pursuit/searcher"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const NumGames = 30 // Per agent config

const (
	KindModes = "modes"
	KindDepth = "depth"
)

// ghostAware labels the reflex pacman's evaluation in agent configs.
const ghostAware = "ghostaware"

// Experiment plays pursuit games with a search or reflex pacman against random
// ghosts, once per agent config.
type Experiment struct {
	Name     string
	Root     string // Directory the results are written under
	Games    int
	MaxMoves int
	Seed     uint64
	TieBreak searcher.TieBreak // Applied to every search agent
	// NewState returns a fresh starting position, pacman is agent 0
	NewState func() game.State
}

// Comparison returns the agent configs of an experiment kind. Modes compares
// every search mode and the reflex pacman at depth; depth compares mode at
// every depth from 1 to depth.
func Comparison(kind string, mode searcher.Mode, depth int, evaluation string) ([]metrics.AgentConfig, error) {
	switch kind {
	case KindModes:
		return ModeComparison(depth, evaluation), nil
	case KindDepth:
		return DepthComparison(mode, depth, evaluation), nil
	default:
		return nil, errors.Wrapf(game.ErrConfiguration, "unknown experiment kind %q", kind)
	}
}

// ModeComparison returns one config per search mode at the same depth and
// evaluation, followed by the reflex pacman as a baseline.
func ModeComparison(depth int, evaluation string) []metrics.AgentConfig {
	modes := []searcher.Mode{searcher.Minimax, searcher.AlphaBeta, searcher.Expectimax}
	configs := make([]metrics.AgentConfig, 0, len(modes)+1)
	for i, mode := range modes {
		configs = append(configs, metrics.AgentConfig{ID: i + 1, Mode: mode.String(), Depth: depth, Evaluation: evaluation})
	}
	return append(configs, metrics.AgentConfig{ID: len(modes) + 1, Mode: agent.ReflexPacman, Evaluation: ghostAware})
}

// DepthComparison returns one config per depth from 1 to maxDepth.
func DepthComparison(mode searcher.Mode, maxDepth int, evaluation string) []metrics.AgentConfig {
	configs := make([]metrics.AgentConfig, 0, maxDepth)
	for depth := 1; depth <= maxDepth; depth++ {
		configs = append(configs, metrics.AgentConfig{ID: depth, Mode: mode.String(), Depth: depth, Evaluation: evaluation})
	}
	return configs
}

// Run plays e.Games games per config and stores agent configs, game records
// and move records as CSV files. It returns the directory they were written to.
func (e Experiment) Run(configs []metrics.AgentConfig) (string, []metrics.GameRecord, error) {
	if e.NewState == nil {
		return "", nil, errors.Wrap(game.ErrConfiguration, "experiment has no starting state")
	}
	games := e.Games
	if games <= 0 {
		games = NumGames
	}
	rng := rand.New(rand.NewSource(e.Seed))

	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Str("experiment", e.Name).Int("configs", len(configs)).Int("games", games).Msg("starting experiment")

	for ci, config := range configs {
		log.Info().Msgf("starting config %d of %d: %+v", ci+1, len(configs), config)

		for i := 0; i < games; i++ {
			gameMetric, moveMetrics, err := e.runGame(config, rng.Uint64())
			if err != nil {
				return "", nil, errors.WithMessagef(err, "config %d game %d", config.ID, i+1)
			}
			gameRecords = append(gameRecords, metrics.GameRecord{Agent: config.ID, GameMetric: gameMetric})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{Game: gameMetric.ID, MoveMetric: mm})
			}

			log.Debug().Msgf("completed config %d game %d of %d: %s", config.ID, i+1, games, gameMetric.Outcome)
		}
		log.Info().Msgf("completed config %d of %d", ci+1, len(configs))
	}

	writer, err := metrics.NewWriter(e.Root, e.Name)
	if err != nil {
		return "", nil, errors.Wrap(err, "failed to create experiment writer")
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", nil, errors.Wrap(err, "failed to store agent configs")
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", nil, errors.Wrap(err, "failed to write game records")
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", nil, errors.Wrap(err, "failed to write move records")
	}
	log.Info().Str("dir", writer.Dir()).Msgf("completed %s experiment", e.Name)

	return writer.Dir(), gameRecords, nil
}

// runGame plays a single game of the config's pacman against random ghosts.
func (e Experiment) runGame(config metrics.AgentConfig, seed uint64) (metrics.GameMetric, []metrics.MoveMetric, error) {
	state := e.NewState()
	rng := rand.New(rand.NewSource(seed))

	var pacman agent.Agent
	if config.Mode == agent.ReflexPacman {
		pacman = agent.NewReflexPacman(state, rng)
	} else {
		search, err := createSearch(config, e.TieBreak, seed)
		if err != nil {
			return metrics.GameMetric{}, nil, err
		}
		pacman = agent.NewSearchAgent(search)
	}
	agents := []agent.Agent{pacman}
	for i := 1; i < state.NumAgents(); i++ {
		agents = append(agents, agent.NewRandomAgent(i, rng))
	}

	options := []engine.Option{}
	if e.MaxMoves > 0 {
		options = append(options, engine.WithMaxMoves(e.MaxMoves))
	}
	eng, err := engine.NewLocal(state, agents, options...)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	return eng.Run()
}

func createSearch(config metrics.AgentConfig, tieBreak searcher.TieBreak, seed uint64) (*searcher.Search, error) {
	mode, err := searcher.ParseMode(config.Mode)
	if err != nil {
		return nil, err
	}
	options := []searcher.Option{
		searcher.WithMode(mode),
		searcher.WithTieBreak(tieBreak),
		searcher.WithSeed(seed),
		searcher.WithMetrics(),
	}

	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	if config.Evaluation != "" {
		evaluate, err := agent.ParseEvaluation(config.Evaluation)
		if err != nil {
			return nil, err
		}
		options = append(options, searcher.WithEvaluationFn(evaluate))
	}
	return searcher.NewSearch(options...)
}
