package game

import (
	"fmt"
	"sort"
)

// Effect is one step of a card's action. It receives the game right after the
// card's fixed bonuses were applied and returns the resulting game.
type Effect func(*Game) *Game

// Card represents a class of card. Only one Card is constructed per name and
// decks hold many references to it, so cards are compared by identity.
type Card struct {
	Name     string
	Cost     int
	Treasure int // Coins this card is worth in hand
	VP       int // Victory points, negative for curses
	Actions  int // +Actions when played
	Cards    int // +Cards when played
	Buys     int // +Buys when played
	Coins    int // +Coins when played
	Attack   bool
	Defense  bool
	Effects  []Effect
	Requires []*Card // Piles added to the supply when this card is in the kingdom
}

func (c *Card) String() string {
	if c == nil {
		return "None"
	}
	return c.Name
}

func (c *Card) IsAction() bool {
	return c.Actions != 0 || c.Cards != 0 || c.Buys != 0 || c.Coins != 0 || len(c.Effects) > 0
}

func (c *Card) IsTreasure() bool { return c.Treasure != 0 }
func (c *Card) IsVictory() bool  { return c.VP > 0 }
func (c *Card) IsCurse() bool    { return c.VP < 0 }
func (c *Card) IsAttack() bool   { return c.Attack }
func (c *Card) IsDefense() bool  { return c.Defense }

// Less orders cards by cost, then by name. A nil card sorts first.
func Less(a, b *Card) bool {
	if a == nil || b == nil {
		return a == nil && b != nil
	}
	if a.Cost != b.Cost {
		return a.Cost < b.Cost
	}
	return a.Name < b.Name
}

// SortCards sorts cards in place by cost and name.
func SortCards(cards []*Card) {
	sort.SliceStable(cards, func(i, j int) bool { return Less(cards[i], cards[j]) })
}

func cardNames(cards []*Card) string {
	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = c.String()
	}
	return fmt.Sprint(names)
}
