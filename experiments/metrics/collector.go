package metrics

import (
	"time"
)

type SearchMetric struct {
	Mode     string
	Depth    int
	Duration time.Duration
	Nodes    int // interior nodes expanded
	Leaves   int // evaluation function calls
	Prunes   int // alpha-beta cutoffs
}

type MoveMetric struct {
	Step   int
	Agent  int // Agent index
	Action string
	SearchMetric
}

type GameMetric struct {
	ID         string
	Outcome    string // "win", "lose" or "unfinished" from agent 0's perspective
	Score      float64
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

// Collector accumulates the metrics of a single search. Searches run on one
// goroutine, so counters are plain integers.
type Collector interface {
	Start(mode string, depth int)
	AddNode()
	AddLeaf()
	AddPrune()
	Complete() SearchMetric
}

type collector struct {
	mode      string
	depth     int
	startTime time.Time
	nodes     int
	leaves    int
	prunes    int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(mode string, depth int) {
	m.mode = mode
	m.depth = depth
	m.startTime = time.Now()
	m.nodes = 0
	m.leaves = 0
	m.prunes = 0
}

func (m *collector) AddNode() {
	m.nodes++
}

func (m *collector) AddLeaf() {
	m.leaves++
}

func (m *collector) AddPrune() {
	m.prunes++
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Mode:     m.mode,
		Depth:    m.depth,
		Duration: time.Since(m.startTime),
		Nodes:    m.nodes,
		Leaves:   m.leaves,
		Prunes:   m.prunes,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(mode string, depth int) {}
func (m *dummyCollector) AddNode()                     {}
func (m *dummyCollector) AddLeaf()                     {}
func (m *dummyCollector) AddPrune()                    {}
func (m *dummyCollector) Complete() SearchMetric       { return SearchMetric{} }
