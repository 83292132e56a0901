package searcher

import (
	"sync/atomic"
	"time"
)

type SearchMetrics struct {
	StartTime    time.Time
	Duration     time.Duration
	Episodes     int64
	Rollouts     int64
	RolloutPlies int64
	TreeReused   bool
}

type MetricsCollector interface {
	// Start resets the counters of the previous search
	Start()
	AddEpisode()
	AddRollout(plies int)
	SetTreeReused(value bool)
	Complete() SearchMetrics
}

type metricsCollector struct {
	startTime    time.Time
	episodes     atomic.Int64
	rollouts     atomic.Int64
	rolloutPlies atomic.Int64
	treeReused   atomic.Bool
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{startTime: time.Now()}
}

func (m *metricsCollector) Start() {
	m.startTime = time.Now()
	m.episodes.Store(0)
	m.rollouts.Store(0)
	m.rolloutPlies.Store(0)
}

func (m *metricsCollector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *metricsCollector) AddRollout(plies int) {
	m.rollouts.Add(1)
	m.rolloutPlies.Add(int64(plies))
}

func (m *metricsCollector) SetTreeReused(value bool) {
	m.treeReused.Store(value)
}

func (m *metricsCollector) Complete() SearchMetrics {
	return SearchMetrics{
		StartTime:    m.startTime,
		Duration:     time.Since(m.startTime),
		Episodes:     m.episodes.Load(),
		Rollouts:     m.rollouts.Load(),
		RolloutPlies: m.rolloutPlies.Load(),
		TreeReused:   m.treeReused.Load(),
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start()                  {}
func (m *noMetricsCollector) AddEpisode()             {}
func (m *noMetricsCollector) AddRollout(int)          {}
func (m *noMetricsCollector) SetTreeReused(bool)      {}
func (m *noMetricsCollector) Complete() SearchMetrics { return SearchMetrics{} }
