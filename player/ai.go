package player

import (
	"fmt"

	"dominion/experiments/metrics"
	"dominion/game"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// strategy makes the choices of an AI player. Trash and discard pick one card
// at a time from choices; returning nil stops, which is only allowed when
// allowNone is set.
type strategy interface {
	buy(d *game.BuyDecision) *game.Card
	act(d *game.ActDecision) *game.Card
	trash(d game.MultiDecision, choices []*game.Card, allowNone bool) *game.Card
	discard(d game.MultiDecision, choices []*game.Card, allowNone bool) *game.Card
}

// AI is a computer player. It is safe for concurrent use when its strategy
// is, which holds for every strategy but the Monte-Carlo one.
type AI struct {
	game.NopHooks
	name     string
	strategy strategy
	log      zerolog.Logger
}

func newAI(name string, s strategy) *AI {
	return &AI{
		name:     name,
		strategy: s,
		log:      log.With().Str("player", name).Logger(),
	}
}

func (a *AI) Name() string { return a.name }

func (a *AI) rename(name string) {
	a.name = name
	a.log = log.With().Str("player", name).Logger()
}

func (a *AI) MakeDecision(d game.Decision) *game.Game {
	if !d.Game().Simulated() {
		a.log.Debug().Msgf("decision: %s", d)
	}
	switch d := d.(type) {
	case *game.BuyDecision:
		return d.Choose(a.strategy.buy(d))
	case *game.ActDecision:
		return d.Choose(a.strategy.act(d))
	case *game.TrashDecision:
		return d.Choose(selectIncrementally(d, a.strategy.trash))
	case *game.DiscardDecision:
		return d.Choose(selectIncrementally(d, a.strategy.discard))
	default:
		panic(fmt.Sprintf("%s cannot handle %s", a.name, d))
	}
}

// Drain hands over the metrics of searches made since the last call.
func (a *AI) Drain() []metrics.SearchMetric {
	if r, ok := a.strategy.(metrics.Reporter); ok {
		return r.Drain()
	}
	return nil
}

type incremental func(d game.MultiDecision, choices []*game.Card, allowNone bool) *game.Card

// selectIncrementally builds a selection one card at a time until pick stops
// or nothing more may be picked.
func selectIncrementally(d game.MultiDecision, pick incremental) []*game.Card {
	var chosen []*game.Card
	for {
		choices := d.Remaining(chosen)
		allowNone := choices[0] == nil
		if allowNone {
			choices = choices[1:]
		}
		if len(choices) == 0 {
			return chosen
		}
		next := pick(d, choices, allowNone)
		if next == nil {
			if !allowNone {
				panic(fmt.Sprintf("stopped before the minimum of %s", d))
			}
			return chosen
		}
		chosen = append(chosen, next)
	}
}

// byPriority returns the choice with the highest priority. Ties go to the
// later choice.
func byPriority(choices []*game.Card, priority func(*game.Card) float64) *game.Card {
	if len(choices) == 0 {
		panic("no choices")
	}
	best := choices[0]
	bestPriority := priority(best)
	for _, c := range choices[1:] {
		if p := priority(c); p >= bestPriority {
			best = c
			bestPriority = p
		}
	}
	return best
}

func contains(cards []*game.Card, card *game.Card) bool {
	for _, c := range cards {
		if c == card {
			return true
		}
	}
	return false
}
