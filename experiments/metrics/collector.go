package metrics

import (
	"sync"
	"sync/atomic"
	"time"
)

// ActionMetric summarises what the engine did with the actions it was given.
type ActionMetric struct {
	Accepted int
	Rejected int
	// Failures counts rejections by violation kind.
	Failures map[string]int
	// ByType counts every resolved action by its discriminant.
	ByType map[string]int
	// Rolls counts how often each dice sum came up, indexed by the sum.
	Rolls    [13]int
	Duration time.Duration
}

// GameMetric describes one played game.
type GameMetric struct {
	ID         int
	Players    int
	Winner     string
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalTurns int
	Actions    int
}

type Collector interface {
	AddAccepted(actionType string)
	AddRejected(actionType, kind string)
	AddRoll(roll int)
	Complete() ActionMetric
}

type collector struct {
	startTime time.Time
	accepted  atomic.Int64
	rejected  atomic.Int64
	rolls     [13]atomic.Int64

	mu       sync.Mutex
	failures map[string]int
	byType   map[string]int
}

func NewCollector() Collector {
	return &collector{
		startTime: time.Now(),
		failures:  map[string]int{},
		byType:    map[string]int{},
	}
}

func (m *collector) AddAccepted(actionType string) {
	m.accepted.Add(1)
	m.mu.Lock()
	m.byType[actionType]++
	m.mu.Unlock()
}

func (m *collector) AddRejected(actionType, kind string) {
	m.rejected.Add(1)
	m.mu.Lock()
	m.byType[actionType]++
	m.failures[kind]++
	m.mu.Unlock()
}

func (m *collector) AddRoll(roll int) {
	if roll < 0 || roll >= len(m.rolls) {
		return
	}
	m.rolls[roll].Add(1)
}

func (m *collector) Complete() ActionMetric {
	m.mu.Lock()
	failures := make(map[string]int, len(m.failures))
	for k, v := range m.failures {
		failures[k] = v
	}
	byType := make(map[string]int, len(m.byType))
	for k, v := range m.byType {
		byType[k] = v
	}
	m.mu.Unlock()

	metric := ActionMetric{
		Accepted: int(m.accepted.Load()),
		Rejected: int(m.rejected.Load()),
		Failures: failures,
		ByType:   byType,
		Duration: time.Since(m.startTime),
	}
	for i := range m.rolls {
		metric.Rolls[i] = int(m.rolls[i].Load())
	}
	return metric
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) AddAccepted(actionType string)       {}
func (m *dummyCollector) AddRejected(actionType, kind string) {}
func (m *dummyCollector) AddRoll(roll int)                    {}
func (m *dummyCollector) Complete() ActionMetric              { return ActionMetric{} }
