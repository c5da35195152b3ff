package player

import (
	"fmt"

	"dominion/experiments/metrics"
	"dominion/game"
	"dominion/searcher"
)

// monteCarlo is HillClimbBot with the simulations spread over a parallel
// bandit search, so the budget goes to the promising buys.
type monteCarlo struct {
	bigMoney
	search   *searcher.MonteCarlo
	searches []metrics.SearchMetric
}

// NewMonteCarloBot plays like BigMoney but picks buys by searching. Rollouts
// are played by a BigMoney policy.
func NewMonteCarloBot(cutoff1, cutoff2, goroutines int, options ...searcher.Option) *AI {
	options = append([]searcher.Option{searcher.WithPolicy(NewBigMoney(cutoff1, cutoff2))}, options...)
	name := fmt.Sprintf("MonteCarloBot(%d, %d, %d)", cutoff1, cutoff2, goroutines)
	return newAI(name, &monteCarlo{
		bigMoney: bigMoney{cutoff1: cutoff1, cutoff2: cutoff2},
		search:   searcher.NewMonteCarlo(goroutines, options...),
	})
}

func (m *monteCarlo) buy(d *game.BuyDecision) *game.Card {
	if card, ok := m.greening(d); ok {
		return card
	}
	choices := d.Choices()
	if len(choices) == 1 {
		return nil
	}
	values, metric := m.search.Evaluate(d.State(), choices, d.Game().Rand().Uint64())
	m.searches = append(m.searches, metric)
	return searcher.Best(values, choices)
}

func (m *monteCarlo) Drain() []metrics.SearchMetric {
	searches := m.searches
	m.searches = nil
	return searches
}
