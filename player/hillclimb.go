package player

import (
	"fmt"

	"dominion/game"
	"dominion/searcher"
)

// hillClimb buys whatever most improves simulated next hands.
type hillClimb struct {
	bigMoney
	steps int
}

func NewHillClimbBot(cutoff1, cutoff2, simulationSteps int) *AI {
	name := fmt.Sprintf("HillClimbBot(%d, %d, %d)", cutoff1, cutoff2, simulationSteps)
	return newAI(name, &hillClimb{
		bigMoney: bigMoney{cutoff1: cutoff1, cutoff2: cutoff2},
		steps:    simulationSteps,
	})
}

func (h *hillClimb) buy(d *game.BuyDecision) *game.Card {
	if card, ok := h.greening(d); ok {
		return card
	}
	state := d.State()
	rng := d.Game().Rand()
	return byPriority(d.Choices(), func(c *game.Card) float64 {
		var extra []*game.Card
		if c != nil {
			extra = []*game.Card{c}
		}
		total := 0
		for _, hand := range state.SimulateHands(h.steps, extra, rng) {
			total += searcher.BuyingValue(hand.Coins, hand.Buys)
		}
		// Gold is better than it seems
		if c == game.Gold {
			total += h.steps / 2
		}
		return float64(total)
	})
}

// act plays out each choice on hidden-information copies of the game and
// picks the one that reaches the buy phase with the most buying power. Inside
// a simulation it falls back to BigMoney's priorities.
func (h *hillClimb) act(d *game.ActDecision) *game.Card {
	choices := d.Choices()
	if d.Game().Simulated() || len(choices) <= 2 {
		return h.bigMoney.act(d)
	}
	samples := max(h.steps/10, 1)
	return byPriority(choices, func(c *game.Card) float64 {
		total := 0
		for i := 0; i < samples; i++ {
			sim := d.Game().SimulatedCopy()
			state := game.NewActDecision(sim).Choose(c).SimulatePartialTurn()
			total += searcher.BuyingValue(state.HandValue(), state.Buys)
		}
		return float64(total) / float64(samples)
	})
}
