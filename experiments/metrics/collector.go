package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Goroutines int
	Duration   time.Duration
	Episodes   int
	Candidates int // Bandit arms, including buying nothing
}

// TurnMetric records one player's turn.
type TurnMetric struct {
	Turn     int
	Seat     int
	Player   string
	Gained   []string // Cards that entered the deck during the turn
	Score    int      // Victory points after the turn
	DeckSize int
	Searches int
	SearchMetric
}

type GameMetric struct {
	StartingSeat int
	Winners      []int // Seats sharing the highest score
	Scores       []int // In seat order
	Completed    bool  // False when the game was stopped at the turn cap
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
	TotalTurns   int
}

// Reporter is implemented by players that search. Drain returns the metrics
// of the searches since the last call.
type Reporter interface {
	Drain() []SearchMetric
}

// Sum totals the episodes and durations of several searches.
func Sum(searches []SearchMetric) SearchMetric {
	var total SearchMetric
	for _, s := range searches {
		total.Goroutines = max(total.Goroutines, s.Goroutines)
		total.Duration += s.Duration
		total.Episodes += s.Episodes
		total.Candidates += s.Candidates
	}
	return total
}

type Collector interface {
	Start(goroutines, candidates int)
	AddEpisode()
	Complete() SearchMetric
}

type collector struct {
	goroutines int
	candidates int
	startTime  time.Time
	episodes   atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines, candidates int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.candidates = candidates
	m.episodes.Store(0)
}

func (m *collector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines: m.goroutines,
		Duration:   time.Since(m.startTime),
		Episodes:   int(m.episodes.Load()),
		Candidates: m.candidates,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines, candidates int) {}
func (m *dummyCollector) AddEpisode()                      {}
func (m *dummyCollector) Complete() SearchMetric           { return SearchMetric{} }
