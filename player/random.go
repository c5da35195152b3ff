package player

import (
	"dominion/game"

	"golang.org/x/exp/rand"
)

// RandomBot picks uniformly among the legal options. It is not safe for
// concurrent use.
type RandomBot struct {
	game.NopHooks
	BotName string
	rng     *rand.Rand
}

func NewRandomBot(seed uint64) *RandomBot {
	return &RandomBot{rng: rand.New(rand.NewSource(seed))}
}

func (b *RandomBot) Name() string {
	if b.BotName == "" {
		b.BotName = "RandomBot"
	}
	return b.BotName
}

func (b *RandomBot) MakeDecision(d game.Decision) *game.Game {
	switch d := d.(type) {
	case game.SingleDecision:
		choices := d.Choices()
		return d.Choose(choices[b.rng.Intn(len(choices))])
	case game.MultiDecision:
		return d.Choose(selectIncrementally(d, func(_ game.MultiDecision, choices []*game.Card, allowNone bool) *game.Card {
			if allowNone {
				choices = append([]*game.Card{nil}, choices...)
			}
			return choices[b.rng.Intn(len(choices))]
		}))
	default:
		panic("unexpected decision")
	}
}
