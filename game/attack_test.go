package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func attackGame(active *PlayerState, others ...*PlayerState) *Game {
	supply := basicSupply()
	supply[Curse] = 10
	return NewGame(append([]*PlayerState{active}, others...), supply, 0, false, newRand(9))
}

func TestSweep(t *testing.T) {
	t.Run("Visits every other seat clockwise and restores the turn", func(t *testing.T) {
		states := make([]*PlayerState, 4)
		for i := range states {
			states[i] = stateWithHand(newScripted("p"))
		}
		g := NewGame(states, basicSupply(), 5, false, newRand(1))

		var seats []int
		next := g.EveryoneElse(func(mini *Game) *Game {
			seats = append(seats, mini.PlayerTurn())
			return mini
		})
		require.Equal(t, []int{2, 3, 0}, seats)
		require.Equal(t, 5, next.Turn())
		require.Equal(t, 1, next.PlayerTurn())
	})

	t.Run("Single player has nobody to attack", func(t *testing.T) {
		g := NewGame([]*PlayerState{stateWithHand(newScripted("p"))}, basicSupply(), 0, false, newRand(1))
		calls := 0
		g.AttackWith(func(mini *Game) *Game {
			calls++
			return mini
		})
		require.Zero(t, calls)
	})
}

func TestMilitia(t *testing.T) {
	a := newScripted("a")
	b := newScripted("b")
	c := newScripted("c")
	active := &PlayerState{Player: a, Hand: cards(Militia, Copper), Actions: 1, Buys: 1}
	victim := stateWithHand(b, Copper, Estate, Silver, Estate, Gold)
	defender := stateWithHand(c, Copper, Moat, Copper, Copper, Estate)
	g := attackGame(active, victim, defender)

	next := NewActDecision(g).Choose(Militia)
	states := next.States()

	require.Equal(t, 0, next.PlayerTurn(), "Should give the turn back")
	require.Equal(t, 2, states[0].Coins)
	require.Len(t, states[1].Hand, 3, "Should discard down to 3")
	require.Equal(t, cards(Copper, Estate), states[1].Discard, "Should discard the cheapest cards first")
	require.Equal(t, victim.DeckSize(), states[1].DeckSize())
	require.Equal(t, defender.Hand, states[2].Hand, "Should be protected by Moat")

	require.Len(t, b.seen, 1)
	require.Equal(t, DiscardKind, b.seen[0].Kind())
	require.Empty(t, c.seen)
	require.Equal(t, 1, b.reacted)
	require.Zero(t, c.reacted, "Should not react when defended")
}

func TestWitch(t *testing.T) {
	active := &PlayerState{Player: newScripted("a"), Hand: cards(Witch), DrawPile: cards(Gold, Gold), Actions: 1, Buys: 1}
	victim := stateWithHand(newScripted("b"), Copper)
	defender := stateWithHand(newScripted("c"), Moat)
	g := attackGame(active, victim, defender)

	next := NewActDecision(g).Choose(Witch)
	states := next.States()
	require.Equal(t, cards(Gold, Gold), states[0].Hand)
	require.Equal(t, cards(Curse), states[1].Discard)
	require.Empty(t, states[2].Discard)
	require.Equal(t, 9, next.Count(Curse))

	t.Run("Empty curse pile", func(t *testing.T) {
		supply := g.Supply()
		supply[Curse] = 0
		empty := NewGame(g.States(), supply, 0, false, newRand(1))
		next := NewActDecision(empty).Choose(Witch)
		require.Empty(t, next.States()[1].Discard)
		require.Equal(t, 0, next.Count(Curse))
	})
}

func TestCouncilRoom(t *testing.T) {
	active := &PlayerState{Player: newScripted("a"), Hand: cards(CouncilRoom), DrawPile: repeat(Copper, 4), Actions: 1, Buys: 1}
	other := &PlayerState{Player: newScripted("b"), Hand: cards(Moat), DrawPile: cards(Gold)}
	g := attackGame(active, other)

	next := NewActDecision(g).Choose(CouncilRoom)
	require.Len(t, next.States()[0].Hand, 4)
	require.Equal(t, 2, next.States()[0].Buys)
	require.Equal(t, cards(Moat, Gold), next.States()[1].Hand, "Should draw despite Moat")
}

func TestBureaucrat(t *testing.T) {
	active := &PlayerState{Player: newScripted("a"), Hand: cards(Bureaucrat), DrawPile: cards(Copper), Actions: 1, Buys: 1}
	victim := stateWithHand(newScripted("b"), Copper, Duchy, Estate)
	broke := stateWithHand(newScripted("c"), Copper, Copper)
	g := attackGame(active, victim, broke)

	next := NewActDecision(g).Choose(Bureaucrat)
	states := next.States()
	require.Equal(t, cards(Silver, Copper), states[0].DrawPile)
	require.Equal(t, g.Count(Silver)-1, next.Count(Silver))
	require.Equal(t, cards(Duchy), states[1].DrawPile)
	require.Equal(t, cards(Copper, Estate), states[1].Hand)
	require.Equal(t, broke.Hand, states[2].Hand)
}

func TestSelfEffects(t *testing.T) {
	t.Run("Chapel trashes the selection", func(t *testing.T) {
		a := newScripted("a")
		a.multi = func(d MultiDecision) []*Card { return cards(Estate, Estate, Copper) }
		active := &PlayerState{Player: a, Hand: cards(Chapel, Estate, Copper, Estate, Silver), Actions: 1, Buys: 1}
		g := attackGame(active, stateWithHand(newScripted("b")))

		next := NewActDecision(g).Choose(Chapel)
		require.Equal(t, cards(Silver), next.State().Hand)
		require.Equal(t, active.DeckSize()-3, next.State().DeckSize())
	})

	t.Run("Cellar draws one card per discard", func(t *testing.T) {
		a := newScripted("a")
		a.multi = func(d MultiDecision) []*Card { return cards(Estate, Estate) }
		active := &PlayerState{
			Player:   a,
			Hand:     cards(Cellar, Estate, Estate, Copper),
			DrawPile: cards(Gold, Gold, Gold),
			Actions:  1,
			Buys:     1,
		}
		g := attackGame(active, stateWithHand(newScripted("b")))

		next := NewActDecision(g).Choose(Cellar)
		s := next.State()
		require.Equal(t, cards(Copper, Gold, Gold), s.Hand)
		require.Equal(t, cards(Estate, Estate), s.Discard)
		require.Equal(t, 1, s.Actions)
	})

	t.Run("Moneylender trashes a Copper for coins", func(t *testing.T) {
		active := &PlayerState{Player: newScripted("a"), Hand: cards(Moneylender, Copper, Copper), Actions: 1, Buys: 1}
		g := attackGame(active, stateWithHand(newScripted("b")))

		next := NewActDecision(g).Choose(Moneylender)
		require.Equal(t, cards(Copper), next.State().Hand)
		require.Equal(t, 3, next.State().Coins)
		require.Equal(t, 4, NewBuyDecision(next).Coins())

		none := &PlayerState{Player: newScripted("a"), Hand: cards(Moneylender, Silver), Actions: 1, Buys: 1}
		next = NewActDecision(attackGame(none, stateWithHand(newScripted("b")))).Choose(Moneylender)
		require.Equal(t, 0, next.State().Coins)
	})
}
