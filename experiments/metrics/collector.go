package metrics

import (
	"sync/atomic"
	"time"

	"gametree/game"
)

type SearchMetric struct {
	Engine   string
	Depth    int
	Duration time.Duration
	Nodes    int64 // Positions visited
	Leaves   int64 // Terminal or depth cutoff positions
	Cutoffs  int64 // Nodes whose remaining moves were pruned
	Score    game.Score
}

type MoveMetric struct {
	Step   int
	Player game.Player
	Move   string
	SearchMetric
}

type GameMetric struct {
	Variant        string
	StartingPlayer game.Player
	Result         game.Score
	Winner         string // "Max", "Min" or "" for a draw or an unfinished game
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(engine string, depth int)
	AddNode()
	AddLeaf()
	AddCutoff()
	Complete(score game.Score) SearchMetric
}

type collector struct {
	engine    string
	depth     int
	startTime time.Time
	nodes     atomic.Int64
	leaves    atomic.Int64
	cutoffs   atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new search
func (m *collector) Start(engine string, depth int) {
	m.startTime = time.Now()
	m.engine = engine
	m.depth = depth
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.cutoffs.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete(score game.Score) SearchMetric {
	return SearchMetric{
		Engine:   m.engine,
		Depth:    m.depth,
		Duration: time.Since(m.startTime),
		Nodes:    m.nodes.Load(),
		Leaves:   m.leaves.Load(),
		Cutoffs:  m.cutoffs.Load(),
		Score:    score,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(engine string, depth int) {}
func (m *dummyCollector) AddNode()                       {}
func (m *dummyCollector) AddLeaf()                       {}
func (m *dummyCollector) AddCutoff()                     {}
func (m *dummyCollector) Complete(score game.Score) SearchMetric {
	return SearchMetric{Score: score}
}
