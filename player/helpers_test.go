package player

import (
	"dominion/game"

	"golang.org/x/exp/rand"
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func repeat(card *game.Card, n int) []*game.Card {
	out := make([]*game.Card, n)
	for i := range out {
		out[i] = card
	}
	return out
}

func supply(provinces int, kingdom ...*game.Card) game.Supply {
	s := game.Supply{
		game.Copper:   46,
		game.Silver:   40,
		game.Gold:     30,
		game.Estate:   8,
		game.Duchy:    8,
		game.Province: provinces,
	}
	for _, c := range kingdom {
		s[c] = 10
	}
	return s
}

// buyState is a buy phase with hand, on top of the starting deck.
func buyState(p game.Player, hand ...*game.Card) *game.PlayerState {
	discard := append(repeat(game.Copper, 7), repeat(game.Estate, 3)...)
	return &game.PlayerState{Player: p, Hand: hand, Discard: discard, Buys: 1}
}

// withOpponent seats state against an idle BigMoney, state to act.
func withOpponent(state *game.PlayerState, s game.Supply) *game.Game {
	other := &game.PlayerState{Player: NewBigMoney(3, 6), Hand: repeat(game.Copper, 5)}
	return game.NewGame([]*game.PlayerState{state, other}, s, 0, false, newRand(1))
}
