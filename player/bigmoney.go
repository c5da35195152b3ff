package player

import (
	"fmt"
	"sort"

	"dominion/game"
)

// bigMoney buys money, then victory. Its act, trash and discard choices are
// reasonable defaults the other strategies build on.
type bigMoney struct {
	cutoff1 int // Provinces left when Duchy beats Gold
	cutoff2 int // Provinces left when Duchy beats Silver
}

func NewBigMoney(cutoff1, cutoff2 int) *AI {
	name := fmt.Sprintf("BigMoney(%d, %d)", cutoff1, cutoff2)
	return newAI(name, &bigMoney{cutoff1: cutoff1, cutoff2: cutoff2})
}

// priorityOrder lists the cards worth buying from least to most important.
func (b *bigMoney) priorityOrder(d *game.BuyDecision) []*game.Card {
	provinces := d.Game().Count(game.Province)
	switch {
	case provinces <= b.cutoff1:
		return []*game.Card{nil, game.Estate, game.Silver, game.Duchy, game.Province}
	case provinces <= b.cutoff2:
		return []*game.Card{nil, game.Silver, game.Duchy, game.Gold, game.Province}
	default:
		return []*game.Card{nil, game.Silver, game.Gold, game.Province}
	}
}

func (b *bigMoney) buy(d *game.BuyDecision) *game.Card {
	return buyInOrder(d, b.priorityOrder(d))
}

// buyInOrder picks the affordable card that comes last in order.
func buyInOrder(d *game.BuyDecision, order []*game.Card) *game.Card {
	return byPriority(d.Choices(), func(c *game.Card) float64 {
		for i, o := range order {
			if o == c {
				return float64(i)
			}
		}
		return -1
	})
}

// act prefers actions that give more actions, then coins and cards.
func (b *bigMoney) act(d *game.ActDecision) *game.Card {
	return byPriority(d.Choices(), actPriority)
}

func actPriority(c *game.Card) float64 {
	if c == nil {
		return 0
	}
	return float64(100*c.Actions+10*(c.Coins+c.Cards)+c.Buys) + 1
}

func (b *bigMoney) trash(d game.MultiDecision, choices []*game.Card, allowNone bool) *game.Card {
	money := 0
	for _, c := range d.State().AllCards() {
		money += c.Treasure + c.Coins
	}
	switch {
	case contains(choices, game.Curse):
		return game.Curse
	case contains(choices, game.Copper) && money > 3:
		return game.Copper
	case d.Game().Round() < 10 && contains(choices, game.Estate):
		return game.Estate
	case allowNone:
		return nil
	}

	// Get rid of whatever looks least valuable
	sorted := append([]*game.Card(nil), choices...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].VP != sorted[j].VP {
			return sorted[i].VP < sorted[j].VP
		}
		return sorted[i].Cost < sorted[j].Cost
	})
	return sorted[0]
}

func (b *bigMoney) discard(d game.MultiDecision, choices []*game.Card, allowNone bool) *game.Card {
	var actions, victory []*game.Card
	plusActions := 0
	for _, c := range choices {
		if c.IsAction() {
			actions = append(actions, c)
			plusActions += c.Actions
		}
		if c.IsVictory() && !c.IsAction() && !c.IsTreasure() {
			victory = append(victory, c)
		}
	}
	sort.SliceStable(actions, func(i, j int) bool { return actions[i].Actions < actions[j].Actions })
	wasted := len(actions) - plusActions - d.State().Actions

	switch {
	case wasted > 0:
		return actions[0]
	case len(victory) > 0:
		return victory[0]
	case contains(choices, game.Copper):
		return game.Copper
	case allowNone:
		return nil
	}

	sorted := append([]*game.Card(nil), choices...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Actions != b.Actions {
			return a.Actions < b.Actions
		}
		if a.Cards != b.Cards {
			return a.Cards < b.Cards
		}
		if a.Coins != b.Coins {
			return a.Coins < b.Coins
		}
		return a.Treasure < b.Treasure
	})
	return sorted[0]
}

// greening buys victory cards once the Provinces run low. It returns false
// when the usual buying rules apply.
func (b *bigMoney) greening(d *game.BuyDecision) (*game.Card, bool) {
	choices := d.Choices()
	provinces := d.Game().Count(game.Province)
	switch {
	case contains(choices, game.Province):
		return game.Province, true
	case contains(choices, game.Duchy) && provinces <= b.cutoff2:
		return game.Duchy, true
	case contains(choices, game.Estate) && provinces <= b.cutoff1:
		return game.Estate, true
	}
	return nil, false
}

// smithy is BigMoney that also buys Smithies, one per cardsPerSmithy cards
// in the deck, and plays them.
type smithy struct {
	bigMoney
	cardsPerSmithy int
}

func NewSmithyBot(cutoff1, cutoff2, cardsPerSmithy int) *AI {
	name := fmt.Sprintf("SmithyBot(%d, %d, %d)", cutoff1, cutoff2, cardsPerSmithy)
	return newAI(name, &smithy{
		bigMoney:       bigMoney{cutoff1: cutoff1, cutoff2: cutoff2},
		cardsPerSmithy: cardsPerSmithy,
	})
}

func (s *smithy) priorityOrder(d *game.BuyDecision) []*game.Card {
	state := d.State()
	provinces := d.Game().Count(game.Province)
	var order []*game.Card
	switch {
	case provinces <= s.cutoff1:
		return []*game.Card{nil, game.Estate, game.Silver, game.Duchy, game.Province}
	case provinces <= s.cutoff2:
		order = []*game.Card{nil, game.Silver, game.Smithy, game.Duchy, game.Gold, game.Province}
	default:
		order = []*game.Card{nil, game.Silver, game.Smithy, game.Gold, game.Province}
	}
	if (state.Count(game.Smithy)+1)*s.cardsPerSmithy > state.DeckSize() {
		order = append(order[:2:2], order[3:]...)
	}
	return order
}

func (s *smithy) buy(d *game.BuyDecision) *game.Card {
	return buyInOrder(d, s.priorityOrder(d))
}

func (s *smithy) act(d *game.ActDecision) *game.Card {
	if contains(d.Choices(), game.Smithy) {
		return game.Smithy
	}
	return s.bigMoney.act(d)
}
