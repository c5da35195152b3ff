package searcher

import (
	"sync"
	"time"

	"dominion/experiments/metrics"
	"dominion/game"

	"golang.org/x/exp/rand"
)

type Option func(m *MonteCarlo)

// MonteCarlo estimates how much each buy candidate improves the next hand by
// simulating turns of a deck that contains it.
type MonteCarlo struct {
	goroutines int
	duration   time.Duration
	episodes   int
	policy     game.Player
	metrics    metrics.Collector
}

func WithDuration(duration time.Duration) Option {
	return func(m *MonteCarlo) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

func WithEpisodes(episodes int) Option {
	return func(m *MonteCarlo) {
		if episodes > 0 {
			m.episodes = episodes
		}
	}
}

// WithPolicy sets who plays the actions of simulated turns. It must be safe
// for concurrent use. By default the owner of the searched state plays.
func WithPolicy(policy game.Player) Option {
	return func(m *MonteCarlo) {
		if policy != nil {
			m.policy = policy
		}
	}
}

func WithMetrics() Option {
	return func(m *MonteCarlo) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMonteCarlo(goroutines int, options ...Option) *MonteCarlo {
	m := &MonteCarlo{ // Default values
		goroutines: max(goroutines, 1),
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.episodes <= 0 && m.duration <= 0 {
		panic("Must specify search episodes or duration")
	}
	return m
}

// Evaluate returns the mean reward of buying each candidate. A nil candidate
// stands for buying nothing.
func (m *MonteCarlo) Evaluate(state *game.PlayerState, candidates []*game.Card, seed uint64) (map[*game.Card]float64, metrics.SearchMetric) {
	if len(candidates) == 0 {
		panic("no candidates to evaluate")
	}
	if m.policy != nil {
		state = state.WithPlayer(m.policy)
	}
	b := newBandit(candidates)

	m.metrics.Start(m.goroutines, len(candidates))
	if m.episodes > 0 {
		m.iterate(b, state, seed)
	} else {
		m.countdown(b, state, seed)
	}
	metric := m.metrics.Complete()

	return b.values(), metric
}

func (m *MonteCarlo) iterate(b *bandit, state *game.PlayerState, seed uint64) {
	task := make(chan any, m.episodes)
	for i := 0; i < m.episodes; i++ {
		task <- nil
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		rng := rand.New(rand.NewSource(seed + uint64(i)))
		go func() {
			defer wg.Done()

			for range task {
				simulate(b, state, rng)
				m.metrics.AddEpisode()
			}
		}()
	}

	wg.Wait()
}

func (m *MonteCarlo) countdown(b *bandit, state *game.PlayerState, seed uint64) {
	done := make(chan any)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		rng := rand.New(rand.NewSource(seed + uint64(i)))
		go func() {
			defer wg.Done()

			for {
				select {
				case <-done:
					return
				default:
					simulate(b, state, rng)
					m.metrics.AddEpisode()
				}
			}
		}()
	}

	<-time.After(m.duration)
	close(done)
	wg.Wait()
}

func simulate(b *bandit, state *game.PlayerState, rng *rand.Rand) {
	a := b.pull()
	var extra []*game.Card
	if a.card != nil {
		extra = []*game.Card{a.card}
	}
	hand := state.SimulateHands(1, extra, rng)[0]
	b.backup(a, reward(hand.Coins, hand.Buys))
}

// Best returns the candidate with the highest value. Ties go to the candidate
// listed last, which is the most expensive one for sorted choices.
func Best(values map[*game.Card]float64, candidates []*game.Card) *game.Card {
	var best *game.Card
	bestValue := -1.0
	for _, c := range candidates {
		if v := values[c]; v >= bestValue {
			best = c
			bestValue = v
		}
	}
	return best
}
