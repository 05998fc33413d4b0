package metrics

import (
	"connect4/game"
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Strategy     string
	Goroutines   int
	Depth        int
	Iterations   int
	Duration     time.Duration
	Nodes        int // alpha-beta / PVS nodes visited
	Episodes     int // MCTS iterations
	FullPlayouts int
}

type MoveMetric struct {
	Step   int
	Player game.Player
	Column int
	SearchMetric
}

type GameMetric struct {
	StartingPlayer game.Player
	Winner         game.Player // None for a tie
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector gathers counters for one move decision at a time. Start resets
// the counters; counters may be added from several goroutines.
type Collector interface {
	Start(strategy string, goroutines, depth, iterations int)
	AddNode()
	AddEpisode()
	AddFullPlayout()
	Complete() SearchMetric
}

type collector struct {
	strategy     string
	goroutines   int
	depth        int
	iterations   int
	startTime    time.Time
	nodes        atomic.Int64
	episodes     atomic.Int32
	fullPlayouts atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(strategy string, goroutines, depth, iterations int) {
	m.strategy = strategy
	m.goroutines = goroutines
	m.depth = depth
	m.iterations = iterations
	m.startTime = time.Now()
	m.nodes.Store(0)
	m.episodes.Store(0)
	m.fullPlayouts.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *collector) AddFullPlayout() {
	m.fullPlayouts.Add(1)
}

func (m *collector) Complete() SearchMetric {
	var duration time.Duration
	if !m.startTime.IsZero() {
		duration = time.Since(m.startTime)
	}
	return SearchMetric{
		Strategy:     m.strategy,
		Goroutines:   m.goroutines,
		Depth:        m.depth,
		Iterations:   m.iterations,
		Duration:     duration,
		Nodes:        int(m.nodes.Load()),
		Episodes:     int(m.episodes.Load()),
		FullPlayouts: int(m.fullPlayouts.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(strategy string, goroutines, depth, iterations int) {}
func (m *dummyCollector) AddNode()                                                 {}
func (m *dummyCollector) AddEpisode()                                              {}
func (m *dummyCollector) AddFullPlayout()                                          {}
func (m *dummyCollector) Complete() SearchMetric                                   { return SearchMetric{} }
