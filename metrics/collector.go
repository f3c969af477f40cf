package metrics

import (
	"time"

	"github.com/google/uuid"
)

type SearchMetric struct {
	Placing  bool
	Depth    int
	Duration time.Duration
	Nodes    int
	Cutoffs  int
	Ties     int // Size of the root tie-set the move was drawn from
	Score    int
}

type MoveMetric struct {
	Turn   int
	Player string
	Move   string
	SearchMetric
}

type GameMetric struct {
	ID          uuid.UUID
	Winner      string // "white", "black" or "draw"
	StartTime   time.Time
	EndTime     time.Time
	Duration    time.Duration
	MovingTurns int
	WhiteLeft   int
	BlackLeft   int
}

type Collector interface {
	Start(depth int, placing bool)
	AddNode()
	AddCutoff()
	Complete(ties, score int) SearchMetric
}

type collector struct {
	placing   bool
	depth     int
	startTime time.Time
	nodes     int
	cutoffs   int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int, placing bool) {
	m.startTime = time.Now()
	m.depth = depth
	m.placing = placing
	m.nodes = 0
	m.cutoffs = 0
}

func (m *collector) AddNode() {
	m.nodes++
}

func (m *collector) AddCutoff() {
	m.cutoffs++
}

func (m *collector) Complete(ties, score int) SearchMetric {
	return SearchMetric{
		Placing:  m.placing,
		Depth:    m.depth,
		Duration: time.Since(m.startTime),
		Nodes:    m.nodes,
		Cutoffs:  m.cutoffs,
		Ties:     ties,
		Score:    score,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int, placing bool)         {}
func (m *dummyCollector) AddNode()                              {}
func (m *dummyCollector) AddCutoff()                            {}
func (m *dummyCollector) Complete(ties, score int) SearchMetric { return SearchMetric{} }
