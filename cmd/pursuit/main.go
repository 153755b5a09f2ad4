package main

import (
	"flag"
	"fmt"
	"os"

	"pursuit/agent"
	"pursuit/config"
	"pursuit/engine"
	"pursuit/experiments"
	"pursuit/game"
	"pursuit/logger"
	"pursuit/searcher"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	kind := flag.String("game", "", "Game to play: pursuit or capture")
	mode := flag.String("mode", "", "Search mode: minimax, alphabeta or expectimax")
	depth := flag.Int("depth", 0, "Search depth in rounds")
	games := flag.Int("games", 0, "Number of games to play")
	pacman := flag.String("pacman", "", "Pursuit pacman: search or reflex")
	experiment := flag.String("experiment", "", "Run an experiment instead of single games: modes or depth")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *kind != "" {
		cfg.Game.Kind = *kind
	}
	if *mode != "" {
		cfg.Search.Mode = *mode
	}
	if *depth > 0 {
		cfg.Search.Depth = *depth
	}
	if *pacman != "" {
		cfg.Game.Pacman = *pacman
	}
	if *games > 0 {
		cfg.Game.Games = *games
		cfg.Experiment.Games = *games
	}
	if *experiment != "" {
		cfg.Experiment.Enabled = true
		cfg.Experiment.Kind = *experiment
	}
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "invalid flags: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	if cfg.Experiment.Enabled {
		err = runExperiment(cfg)
	} else {
		err = runGames(cfg)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("run failed")
	}
}

func runExperiment(cfg *config.Config) error {
	mode, err := searcher.ParseMode(cfg.Search.Mode)
	if err != nil {
		return err
	}
	tieBreak, err := cfg.Search.ParseTieBreak()
	if err != nil {
		return err
	}
	configs, err := experiments.Comparison(cfg.Experiment.Kind, mode, cfg.Search.Depth, cfg.Search.Evaluation)
	if err != nil {
		return err
	}

	e := experiments.Experiment{
		Name:     cfg.Experiment.Name,
		Root:     cfg.Experiment.OutputDir,
		Games:    cfg.Experiment.Games,
		MaxMoves: cfg.Game.MaxMoves,
		Seed:     cfg.Search.Seed,
		TieBreak: tieBreak,
		NewState: func() game.State { return pursuitDemo() },
	}
	dir, records, err := e.Run(configs)
	if err != nil {
		return err
	}

	wins := map[int]int{}
	for _, record := range records {
		if record.Outcome == engine.OutcomeWin {
			wins[record.Agent]++
		}
	}
	log.Info().Str("dir", dir).Interface("wins", wins).Msg("experiment stored")
	return nil
}

func runGames(cfg *config.Config) error {
	var rng *rand.Rand
	if cfg.Search.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Search.Seed))
	}

	for i := 0; i < cfg.Game.Games; i++ {
		state, agents, err := setup(cfg, rng)
		if err != nil {
			return err
		}
		e, err := engine.NewLocal(state, agents, engine.WithMaxMoves(cfg.Game.MaxMoves))
		if err != nil {
			return err
		}
		gameMetric, _, err := e.Run()
		if err != nil {
			return errors.WithMessagef(err, "game %d", i+1)
		}
		log.Info().
			Int("game", i+1).
			Str("kind", cfg.Game.Kind).
			Str("outcome", gameMetric.Outcome).
			Float64("score", gameMetric.Score).
			Int("moves", gameMetric.TotalMoves).
			Msg("game over")
	}
	return nil
}

// setup builds the demo game for cfg and one agent per index.
func setup(cfg *config.Config, rng *rand.Rand) (game.State, []agent.Agent, error) {
	if cfg.Game.Kind == "capture" {
		weights, err := cfg.Weights.Overrides()
		if err != nil {
			return nil, nil, err
		}
		state := captureDemo()
		agents := make([]agent.Agent, state.NumAgents())
		for i := range agents {
			agents[i] = agent.NewCaptureAgent(i, weights, rng)
		}
		return state, agents, nil
	}

	state := pursuitDemo()
	var pacman agent.Agent
	if cfg.Game.Pacman == config.PacmanReflex {
		pacman = agent.NewReflexPacman(state, rng)
	} else {
		options, err := cfg.Search.SearchOptions()
		if err != nil {
			return nil, nil, err
		}
		search, err := searcher.NewSearch(options...)
		if err != nil {
			return nil, nil, err
		}
		pacman = agent.NewSearchAgent(search)
	}
	agents := []agent.Agent{pacman}
	for i := 1; i < state.NumAgents(); i++ {
		agents = append(agents, agent.NewRandomAgent(i, rng))
	}
	return state, agents, nil
}
