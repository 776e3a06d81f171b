package searcher

import (
	"time"

	"abalone/game"
)

// SearchMetrics is the read-only diagnostic snapshot of one BestMove
// call.
type SearchMetrics struct {
	Nodes     int
	Cutoffs   int
	CacheHits int
	Depth     int
	Elapsed   time.Duration
	Breakdown game.Breakdown
}

type Collector interface {
	Start()
	AddNode()
	AddCutoff()
	AddCacheHit()
	SetDepth(depth int)
	SetBreakdown(bd game.Breakdown)
	Complete() SearchMetrics
}

type collector struct {
	startTime time.Time
	current   SearchMetrics
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start() {
	c.startTime = time.Now()
	c.current = SearchMetrics{}
}

func (c *collector) AddNode()    { c.current.Nodes++ }
func (c *collector) AddCutoff()  { c.current.Cutoffs++ }
func (c *collector) AddCacheHit() { c.current.CacheHits++ }

func (c *collector) SetDepth(depth int) { c.current.Depth = depth }

func (c *collector) SetBreakdown(bd game.Breakdown) { c.current.Breakdown = bd }

func (c *collector) Complete() SearchMetrics {
	c.current.Elapsed = time.Since(c.startTime)
	return c.current
}

type nopCollector struct{}

func NewNopCollector() Collector {
	return &nopCollector{}
}

func (nopCollector) Start()                        {}
func (nopCollector) AddNode()                      {}
func (nopCollector) AddCutoff()                    {}
func (nopCollector) AddCacheHit()                  {}
func (nopCollector) SetDepth(int)                  {}
func (nopCollector) SetBreakdown(game.Breakdown)   {}
func (nopCollector) Complete() SearchMetrics       { return SearchMetrics{} }
