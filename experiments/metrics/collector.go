package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric summarizes one FindNextMove call.
type SearchMetric struct {
	Depth    int
	Nodes    int
	Cutoffs  int
	Duration time.Duration
}

type MoveMetric struct {
	Step   int
	Player string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(depth int)
	AddNode()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	depth     int
	startTime time.Time
	nodes     atomic.Int64
	cutoffs   atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(depth int) {
	c.depth = depth
	c.startTime = time.Now()
	c.nodes.Store(0)
	c.cutoffs.Store(0)
}

func (c *collector) AddNode() {
	c.nodes.Add(1)
}

func (c *collector) AddCutoff() {
	c.cutoffs.Add(1)
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:    c.depth,
		Nodes:    int(c.nodes.Load()),
		Cutoffs:  int(c.cutoffs.Load()),
		Duration: time.Since(c.startTime),
	}
}

// NewDummyCollector returns a no-op collector for searches that do not
// record metrics.
func NewDummyCollector() Collector {
	return dummyCollector{}
}

type dummyCollector struct{}

func (dummyCollector) Start(int)              {}
func (dummyCollector) AddNode()               {}
func (dummyCollector) AddCutoff()             {}
func (dummyCollector) Complete() SearchMetric { return SearchMetric{} }
