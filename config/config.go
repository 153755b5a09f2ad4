package config

import (
	"strings"

	"pursuit/agent"
	"pursuit/evaluation"
	"pursuit/experiments"
	"pursuit/game"
	"pursuit/searcher"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Log        LogConfig        `mapstructure:"log"`
	Search     SearchConfig     `mapstructure:"search"`
	Game       GameConfig       `mapstructure:"game"`
	Experiment ExperimentConfig `mapstructure:"experiment"`
	Weights    WeightsConfig    `mapstructure:"weights"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SearchConfig selects pacman's adversarial search
type SearchConfig struct {
	Mode       string `mapstructure:"mode"`
	Depth      int    `mapstructure:"depth"`
	Evaluation string `mapstructure:"evaluation"`
	TieBreak   string `mapstructure:"tie_break"` // "", "first" or "random"
	Seed       uint64 `mapstructure:"seed"`      // 0 seeds from the clock
}

type GameConfig struct {
	Kind     string `mapstructure:"kind"`   // "pursuit" or "capture"
	Pacman   string `mapstructure:"pacman"` // "search" or "reflex", pursuit only
	MaxMoves int    `mapstructure:"max_moves"`
	Games    int    `mapstructure:"games"`
}

type ExperimentConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Kind      string `mapstructure:"kind"` // "modes" or "depth"
	Name      string `mapstructure:"name"`
	OutputDir string `mapstructure:"output_dir"`
	Games     int    `mapstructure:"games"`
}

// WeightsConfig overrides the feature weights of the capture agents. Keys are
// feature names, matched case insensitively.
type WeightsConfig struct {
	Offense map[string]float64 `mapstructure:"offense"`
	Defense map[string]float64 `mapstructure:"defense"`
}

const envPrefix = "PURSUIT"

const (
	PacmanSearch = "search"
	PacmanReflex = agent.ReflexPacman
)

func setViperDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("search.mode", "alphabeta")
	v.SetDefault("search.depth", 2)
	v.SetDefault("search.evaluation", "better")
	v.SetDefault("search.tie_break", "")
	v.SetDefault("search.seed", 0)

	v.SetDefault("game.kind", "pursuit")
	v.SetDefault("game.pacman", PacmanSearch)
	v.SetDefault("game.max_moves", 500)
	v.SetDefault("game.games", 1)

	v.SetDefault("experiment.enabled", false)
	v.SetDefault("experiment.kind", experiments.KindModes)
	v.SetDefault("experiment.name", "modes")
	v.SetDefault("experiment.output_dir", "results")
	v.SetDefault("experiment.games", 10)
}

// Load reads the configuration from configPath, or from config.yaml in the
// working directory when configPath is empty. Environment variables prefixed
// with PURSUIT_ override file values, e.g. PURSUIT_SEARCH_DEPTH=3.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "error reading config file")
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "unable to decode config into struct")
	}
	if err := Validate(cfg); err != nil {
		return nil, errors.WithMessage(err, "config validation failed")
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func Validate(cfg *Config) error {
	var result *multierror.Error

	if _, err := zerolog.ParseLevel(strings.ToLower(cfg.Log.Level)); err != nil {
		result = multierror.Append(result, errors.Wrapf(game.ErrConfiguration, "log.level %q", cfg.Log.Level))
	}
	switch strings.ToLower(cfg.Log.Format) {
	case "", "console", "json":
	default:
		result = multierror.Append(result, errors.Wrapf(game.ErrConfiguration, "log.format %q", cfg.Log.Format))
	}

	if _, err := searcher.ParseMode(cfg.Search.Mode); err != nil {
		result = multierror.Append(result, err)
	}
	if cfg.Search.Depth < 1 {
		result = multierror.Append(result, errors.Wrapf(game.ErrConfiguration, "search.depth must be at least 1, got %d", cfg.Search.Depth))
	}
	if _, err := agent.ParseEvaluation(cfg.Search.Evaluation); err != nil {
		result = multierror.Append(result, err)
	}
	if _, err := cfg.Search.ParseTieBreak(); err != nil {
		result = multierror.Append(result, err)
	}

	switch cfg.Game.Kind {
	case "pursuit", "capture":
	default:
		result = multierror.Append(result, errors.Wrapf(game.ErrConfiguration, "game.kind %q", cfg.Game.Kind))
	}
	switch cfg.Game.Pacman {
	case PacmanSearch, PacmanReflex:
	default:
		result = multierror.Append(result, errors.Wrapf(game.ErrConfiguration, "game.pacman %q", cfg.Game.Pacman))
	}
	if cfg.Game.MaxMoves < 1 {
		result = multierror.Append(result, errors.Wrapf(game.ErrConfiguration, "game.max_moves must be positive, got %d", cfg.Game.MaxMoves))
	}
	if cfg.Game.Games < 1 {
		result = multierror.Append(result, errors.Wrapf(game.ErrConfiguration, "game.games must be positive, got %d", cfg.Game.Games))
	}
	switch cfg.Experiment.Kind {
	case experiments.KindModes, experiments.KindDepth:
	default:
		result = multierror.Append(result, errors.Wrapf(game.ErrConfiguration, "experiment.kind %q", cfg.Experiment.Kind))
	}
	if cfg.Experiment.Enabled && cfg.Experiment.Games < 1 {
		result = multierror.Append(result, errors.Wrapf(game.ErrConfiguration, "experiment.games must be positive, got %d", cfg.Experiment.Games))
	}

	if _, err := cfg.Weights.Overrides(); err != nil {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}

func (s SearchConfig) ParseTieBreak() (searcher.TieBreak, error) {
	switch strings.ToLower(s.TieBreak) {
	case "":
		return searcher.TieBreakDefault, nil
	case "first":
		return searcher.TieBreakFirst, nil
	case "random":
		return searcher.TieBreakRandom, nil
	default:
		return 0, errors.Wrapf(game.ErrConfiguration, "search.tie_break %q", s.TieBreak)
	}
}

// SearchOptions translates the search settings into searcher options.
func (s SearchConfig) SearchOptions() ([]searcher.Option, error) {
	mode, err := searcher.ParseMode(s.Mode)
	if err != nil {
		return nil, err
	}
	evaluate, err := agent.ParseEvaluation(s.Evaluation)
	if err != nil {
		return nil, err
	}
	tieBreak, err := s.ParseTieBreak()
	if err != nil {
		return nil, err
	}
	options := []searcher.Option{
		searcher.WithMode(mode),
		searcher.WithDepth(s.Depth),
		searcher.WithEvaluationFn(evaluate),
		searcher.WithTieBreak(tieBreak),
		searcher.WithMetrics(),
	}
	if s.Seed != 0 {
		options = append(options, searcher.WithSeed(s.Seed))
	}
	return options, nil
}

// Overrides returns the configured weights keyed by their canonical feature
// names. Viper lowercases map keys, so names are matched case insensitively.
func (w WeightsConfig) Overrides() (map[evaluation.Role]evaluation.Weights, error) {
	canonical := make(map[string]string, len(evaluation.FeatureNames))
	for _, name := range evaluation.FeatureNames {
		canonical[strings.ToLower(name)] = name
	}

	var result *multierror.Error
	overrides := map[evaluation.Role]evaluation.Weights{}
	for role, table := range map[evaluation.Role]map[string]float64{
		evaluation.Offense: w.Offense,
		evaluation.Defense: w.Defense,
	} {
		if len(table) == 0 {
			continue
		}
		weights := evaluation.Weights{}
		for key, value := range table {
			name, ok := canonical[strings.ToLower(key)]
			if !ok {
				result = multierror.Append(result, errors.Wrapf(game.ErrConfiguration, "unknown %s feature %q", role, key))
				continue
			}
			weights[name] = value
		}
		overrides[role] = weights
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return overrides, nil
}
