package metrics

import (
	"time"

	"chainreaction/game"
)

type SearchMetric struct {
	Height     int
	Duration   time.Duration
	Nodes      int
	Leaves     int
	MaxDepth   int
	Candidates int
}

type MoveMetric struct {
	Turn    int
	Player  int // game.PlayerOne or game.PlayerTwo
	Move    game.Position
	Steps   int // Cascade steps triggered by the move
	Forfeit bool
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int
	Winner         int // 0 when the turn limit was reached
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	TotalSteps     int
	Forfeit        bool
}

// Collector gathers statistics while a search tree is built and scored.
type Collector interface {
	Start(height int)
	AddNode(depth int)
	AddLeaf()
	SetCandidates(n int)
	Complete() SearchMetric
}

type collector struct {
	height     int
	startTime  time.Time
	nodes      int
	leaves     int
	maxDepth   int
	candidates int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(height int) {
	*m = collector{height: height, startTime: time.Now()}
}

func (m *collector) AddNode(depth int) {
	m.nodes++
	if depth > m.maxDepth {
		m.maxDepth = depth
	}
}

func (m *collector) AddLeaf() {
	m.leaves++
}

func (m *collector) SetCandidates(n int) {
	m.candidates = n
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Height:     m.height,
		Duration:   time.Since(m.startTime),
		Nodes:      m.nodes,
		Leaves:     m.leaves,
		MaxDepth:   m.maxDepth,
		Candidates: m.candidates,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(height int)       {}
func (m *dummyCollector) AddNode(depth int)      {}
func (m *dummyCollector) AddLeaf()               {}
func (m *dummyCollector) SetCandidates(n int)    {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
