package searcher

import (
	"time"
)

type SearchMetric struct {
	StartTime  time.Time
	Duration   time.Duration
	Depth      int
	Nodes      int
	Leaves     int
	Candidates int
	Canceled   bool
}

// Collector records the cost of a single search. A collector is created per
// search and never shared between goroutines.
type Collector interface {
	Start(depth int)
	AddNode()
	AddLeaf()
	Cancel()
	Complete(candidates int) SearchMetric
}

type collector struct {
	startTime time.Time
	depth     int
	nodes     int
	leaves    int
	canceled  bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int) {
	m.startTime = time.Now()
	m.depth = depth
}

func (m *collector) AddNode() {
	m.nodes++
}

func (m *collector) AddLeaf() {
	m.leaves++
}

func (m *collector) Cancel() {
	m.canceled = true
}

func (m *collector) Complete(candidates int) SearchMetric {
	return SearchMetric{
		StartTime:  m.startTime,
		Duration:   time.Since(m.startTime),
		Depth:      m.depth,
		Nodes:      m.nodes,
		Leaves:     m.leaves,
		Candidates: candidates,
		Canceled:   m.canceled,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int)                      {}
func (m *dummyCollector) AddNode()                             {}
func (m *dummyCollector) AddLeaf()                             {}
func (m *dummyCollector) Cancel()                              {}
func (m *dummyCollector) Complete(candidates int) SearchMetric { return SearchMetric{} }
