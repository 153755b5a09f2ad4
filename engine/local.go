package engine

import (
	"slices"
	"time"

	"pursuit/agent"
	"pursuit/experiments/metrics"
	"pursuit/game"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	OutcomeWin        = "win"
	OutcomeLose       = "lose"
	OutcomeUnfinished = "unfinished"
)

type Option func(e *Local)

// WithMaxMoves caps the number of single agent moves in a game.
func WithMaxMoves(maxMoves int) Option {
	return func(e *Local) {
		e.maxMoves = maxMoves
	}
}

// Local plays a game in process. Agent i controls agent index i and agents
// move in index order.
type Local struct {
	state    game.State
	agents   []agent.Agent
	maxMoves int
}

func NewLocal(state game.State, agents []agent.Agent, options ...Option) (*Local, error) {
	e := &Local{
		state:    state,
		agents:   agents,
		maxMoves: MaxMoves,
	}
	for _, option := range options {
		option(e)
	}

	if len(agents) != state.NumAgents() {
		return nil, errors.Wrapf(game.ErrConfiguration, "%d agents for a game of %d", len(agents), state.NumAgents())
	}
	if e.maxMoves <= 0 {
		return nil, errors.Wrapf(game.ErrConfiguration, "max moves must be positive, got %d", e.maxMoves)
	}
	return e, nil
}

// State returns the current game state.
func (e *Local) State() game.State {
	return e.state
}

// Run executes the game loop until the game is over, the move limit is
// reached or no agent can move.
func (e *Local) Run() (metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		ID:        uuid.NewString(),
		StartTime: time.Now(),
	}
	logger := log.With().Str("game", gameMetric.ID).Logger()
	logger.Info().Int("agents", len(e.agents)).Msg("game started")

	var moveMetrics []metrics.MoveMetric
	moves := 0
	for !e.over() && moves < e.maxMoves {
		moved := false
		for i, a := range e.agents {
			if e.over() || moves >= e.maxMoves {
				break
			}
			legal := e.state.LegalActions(i)
			if len(legal) == 0 {
				continue
			}

			action, err := a.ChooseAction(e.state)
			if err != nil {
				return gameMetric, moveMetrics, errors.WithMessagef(err, "agent %d at move %d", i, moves+1)
			}
			if !slices.Contains(legal, action) {
				logger.Warn().Int("agent", i).Str("action", string(action)).Msg("illegal action, playing the first legal one")
				action = legal[0]
			}

			moves++
			moveMetric := metrics.MoveMetric{Step: moves, Agent: i, Action: string(action)}
			if r, ok := a.(agent.Reporter); ok {
				moveMetric.SearchMetric = r.LastSearch()
			}
			moveMetrics = append(moveMetrics, moveMetric)

			e.state = e.state.Successor(i, action)
			moved = true
		}
		if !moved {
			logger.Warn().Msg("no agent can move")
			break
		}
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = moves
	gameMetric.Score = e.state.Score()
	gameMetric.Outcome = outcome(e.state)

	logger.Info().
		Str("outcome", gameMetric.Outcome).
		Float64("score", gameMetric.Score).
		Int("moves", moves).
		Dur("duration", gameMetric.Duration).
		Msg("game finished")
	return gameMetric, moveMetrics, nil
}

func (e *Local) over() bool {
	return e.state.IsWin() || e.state.IsLose()
}

func outcome(state game.State) string {
	switch {
	case state.IsWin():
		return OutcomeWin
	case state.IsLose():
		return OutcomeLose
	default:
		return OutcomeUnfinished
	}
}
