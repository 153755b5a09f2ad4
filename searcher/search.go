package searcher

import (
	"math"
	"time"

	"pursuit/experiments/metrics"
	"pursuit/game"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const DefaultDepth = 2

type Option func(s *Search)

// Result is the outcome of one decision.
type Result struct {
	Action  game.Action
	Value   float64 // backed-up value of Action
	Metrics metrics.SearchMetric
}

// Search is a depth-limited multi-agent game-tree search. Agent 0 is the
// maximizing agent; every other agent is an opponent. Depth counts whole
// rounds in which every agent moves once.
type Search struct {
	depth    int
	mode     Mode
	tieBreak TieBreak
	evaluate game.Evaluate
	rng      *rand.Rand
	metrics  metrics.Collector
}

func WithDepth(depth int) Option {
	return func(s *Search) {
		s.depth = depth
	}
}

func WithMode(mode Mode) Option {
	return func(s *Search) {
		s.mode = mode
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *Search) {
		s.evaluate = evaluate
	}
}

func WithTieBreak(tieBreak TieBreak) Option {
	return func(s *Search) {
		s.tieBreak = tieBreak
	}
}

// WithRand sets the generator used for random tie-breaks.
func WithRand(rng *rand.Rand) Option {
	return func(s *Search) {
		if rng != nil {
			s.rng = rng
		}
	}
}

func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

func WithMetrics() Option {
	return func(s *Search) {
		s.metrics = metrics.NewCollector()
	}
}

// NewSearch validates the options and returns a ready search. It fails with
// game.ErrConfiguration on a non-positive depth, an unknown mode or a nil
// evaluation function.
func NewSearch(options ...Option) (*Search, error) {
	s := &Search{ // Default values
		depth:    DefaultDepth,
		mode:     Minimax,
		evaluate: game.EvaluateScore,
		rng:      rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}

	if s.depth <= 0 {
		return nil, errors.Wrapf(game.ErrConfiguration, "search depth must be at least 1, got %d", s.depth)
	}
	if _, ok := strategies[s.mode]; !ok {
		return nil, errors.Wrapf(game.ErrConfiguration, "unknown search mode %s", s.mode)
	}
	if s.evaluate == nil {
		return nil, errors.Wrap(game.ErrConfiguration, "evaluation function is nil")
	}
	return s, nil
}

func (s *Search) Mode() Mode {
	return s.mode
}

func (s *Search) Depth() int {
	return s.depth
}

// TieBreak returns the tie-break policy in effect for the search's mode.
func (s *Search) TieBreak() TieBreak {
	return s.tieBreak.resolve(s.mode)
}

// ChooseAction returns the best action for agent 0.
func (s *Search) ChooseAction(state game.State) (game.Action, error) {
	result, err := s.Run(state)
	if err != nil {
		return "", err
	}
	return result.Action, nil
}

// Run searches every legal action of agent 0 and returns the one with the
// maximal backed-up value. A NaN value ranks as -Inf. Ties go to the first
// such action, or to a uniformly random one under TieBreakRandom.
func (s *Search) Run(state game.State) (Result, error) {
	numAgents := state.NumAgents()
	if numAgents < 1 {
		return Result{}, errors.Wrapf(game.ErrIllegalState, "state reports %d agents", numAgents)
	}
	actions := state.LegalActions(0)
	if len(actions) == 0 {
		return Result{}, errors.Wrap(game.ErrIllegalState, "controlled agent has no legal actions")
	}

	st := strategies[s.mode]
	s.metrics.Start(s.mode.String(), s.depth)
	s.metrics.AddNode()

	nextAgent, nextDepth := advance(0, s.depth, numAgents)
	w := fullWindow()
	best := math.Inf(-1)
	ties := make([]game.Action, 0, len(actions))
	for _, action := range actions {
		v, err := s.value(state.Successor(0, action), nextDepth, nextAgent, w, st)
		if err != nil {
			return Result{}, errors.WithMessagef(err, "searching action %s", action)
		}
		// An undefined value, e.g. the average of +Inf and -Inf, never wins
		if math.IsNaN(v) {
			v = math.Inf(-1)
		}
		switch {
		case len(ties) == 0 || v > best:
			best = v
			ties = append(ties[:0], action)
		case v == best:
			ties = append(ties, action)
		}
		// The root never prunes (beta is +Inf); this only raises alpha
		st.max.cut(best, &w)
	}

	action := ties[0]
	if s.TieBreak() == TieBreakRandom && len(ties) > 1 {
		action = ties[s.rng.Intn(len(ties))]
	}

	result := Result{Action: action, Value: best, Metrics: s.metrics.Complete()}
	log.Debug().
		Str("mode", s.mode.String()).
		Int("depth", s.depth).
		Str("action", string(action)).
		Float64("value", best).
		Int("ties", len(ties)).
		Int("nodes", result.Metrics.Nodes).
		Int("prunes", result.Metrics.Prunes).
		Msg("search complete")
	return result, nil
}

// value is the backed-up value of state when agent is about to move with
// depth rounds left.
func (s *Search) value(state game.State, depth, agent int, w window, st strategy) (float64, error) {
	if state.IsWin() || state.IsLose() || depth == 0 {
		s.metrics.AddLeaf()
		return s.evaluate(state), nil
	}

	numAgents := state.NumAgents()
	if agent < 0 || agent >= numAgents {
		return 0, errors.Wrapf(game.ErrIllegalState, "agent index %d out of range for %d agents", agent, numAgents)
	}
	actions := state.LegalActions(agent)
	if len(actions) == 0 { // Nothing to expand, score it as it stands
		s.metrics.AddLeaf()
		return s.evaluate(state), nil
	}
	s.metrics.AddNode()

	node := st.opponent
	if agent == 0 {
		node = st.max
	}
	nextAgent, nextDepth := advance(agent, depth, numAgents)

	acc := node.init()
	for i, action := range actions {
		v, err := s.value(state.Successor(agent, action), nextDepth, nextAgent, w, st)
		if err != nil {
			return 0, err
		}
		acc = node.fold(acc, v)
		if node.cut(acc, &w) {
			if i < len(actions)-1 {
				s.metrics.AddPrune()
			}
			return acc, nil
		}
	}
	return node.result(acc, len(actions)), nil
}

// advance returns the agent moving after agent, and the remaining depth. A
// round ends when the last agent has moved, so depth only drops on wrap around.
func advance(agent, depth, numAgents int) (int, int) {
	next := agent + 1
	if next >= numAgents {
		return 0, depth - 1
	}
	return next, depth
}
