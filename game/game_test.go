package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	t.Run("Two players", func(t *testing.T) {
		players := []Player{newScripted("a"), newScripted("b")}
		g := Setup(players, cards(Smithy, Village), newRand(42))

		require.Equal(t, 2, g.NumPlayers())
		require.Equal(t, 8, g.Count(Estate))
		require.Equal(t, 8, g.Count(Duchy))
		require.Equal(t, 8, g.Count(Province))
		require.Equal(t, 46, g.Count(Copper))
		require.Equal(t, 40, g.Count(Silver))
		require.Equal(t, 30, g.Count(Gold))
		require.Equal(t, 10, g.Count(Smithy))
		require.Equal(t, 10, g.Count(Village))
		require.Len(t, g.Supply(), 8, "Should not add piles nothing requires")
		require.False(t, g.Over(), "Should not start over")

		for i, s := range g.States() {
			require.Same(t, players[i], s.Player, "Should keep seat order")
			require.Len(t, s.Hand, HandSize)
			require.Equal(t, 10, s.DeckSize())
		}
		require.Less(t, g.PlayerTurn(), 2)
	})

	t.Run("Victory piles scale with players", func(t *testing.T) {
		for n, want := range map[int]int{3: 12, 4: 12, 5: 15, 6: 18} {
			players := make([]Player, n)
			for i := range players {
				players[i] = newScripted("p")
			}
			g := Setup(players, nil, newRand(1))
			require.Equal(t, want, g.Count(Province), "%d players", n)
			require.Equal(t, 60-7*n, g.Count(Copper), "%d players", n)
		}
	})

	t.Run("Witch brings the curse pile", func(t *testing.T) {
		two := Setup([]Player{newScripted("a"), newScripted("b")}, cards(Witch), newRand(1))
		require.Equal(t, 10, two.Count(Curse))

		players := []Player{newScripted("a"), newScripted("b"), newScripted("c"), newScripted("d")}
		four := Setup(players, cards(Witch), newRand(1))
		require.Equal(t, 30, four.Count(Curse))
	})

	t.Run("Too many players", func(t *testing.T) {
		players := make([]Player, MaxPlayers+1)
		require.Panics(t, func() { Setup(players, nil, newRand(1)) })
	})
}

func TestOver(t *testing.T) {
	states := func(n int) []*PlayerState {
		out := make([]*PlayerState, n)
		for i := range out {
			out[i] = stateWithHand(newScripted("p"))
		}
		return out
	}

	t.Run("Province pile exhausted", func(t *testing.T) {
		supply := basicSupply()
		supply[Province] = 0
		require.True(t, NewGame(states(2), supply, 0, false, newRand(1)).Over())
	})

	t.Run("Three empty piles with four players", func(t *testing.T) {
		supply := basicSupply()
		supply[Estate] = 0
		supply[Silver] = 0
		require.False(t, NewGame(states(4), supply, 0, false, newRand(1)).Over(), "Should need a third pile")

		supply[Gold] = 0
		require.True(t, NewGame(states(4), supply, 0, false, newRand(1)).Over())
	})

	t.Run("Four empty piles with five or six players", func(t *testing.T) {
		supply := basicSupply()
		supply[Estate] = 0
		supply[Silver] = 0
		supply[Gold] = 0
		require.False(t, NewGame(states(5), supply, 0, false, newRand(1)).Over())
		require.False(t, NewGame(states(6), supply, 0, false, newRand(1)).Over())

		supply[Copper] = 0
		require.True(t, NewGame(states(6), supply, 0, false, newRand(1)).Over())
	})
}

func TestGainCard(t *testing.T) {
	g := twoPlayerGame(stateWithHand(newScripted("a")), stateWithHand(newScripted("b")), Supply{Silver: 1})

	next := g.GainCard(Silver)
	require.Equal(t, 0, next.Count(Silver))
	require.Equal(t, cards(Silver), next.State().Discard)

	again := next.GainCard(Silver)
	require.Same(t, next, again, "Should do nothing on an empty pile")

	requirePanicsWith(t, ErrNegativeSupply, func() { next.RemoveCard(Silver) })
}

func TestPerformAction(t *testing.T) {
	var seen []*Card
	record := func(g *Game) *Game {
		seen = append([]*Card(nil), g.State().Hand...)
		return g
	}
	card := &Card{Name: "Scout Test", Cards: 1, Coins: 1, Effects: []Effect{record}}

	state := &PlayerState{Player: newScripted("a"), Hand: cards(Copper), DrawPile: cards(Gold), Actions: 1, Buys: 1}
	g := twoPlayerGame(state, stateWithHand(newScripted("b")), basicSupply())

	next := g.PerformAction(card)
	require.Equal(t, cards(Copper, Gold), seen, "Should run effects after the draw")
	require.Equal(t, 1, next.State().Coins)
}

func TestTakeTurn(t *testing.T) {
	a := newScripted("a")
	b := newScripted("b")
	a.buy = mostExpensive
	g := NewGame([]*PlayerState{
		InitialState(a, newRand(1)),
		InitialState(b, newRand(2)),
	}, basicSupply(), 0, false, newRand(3))

	next := g.TakeTurn()

	require.Equal(t, 1, next.Turn())
	require.Equal(t, 1, next.PlayerTurn())
	require.Same(t, b, next.CurrentPlayer())

	played := next.States()[0]
	require.Len(t, played.Hand, HandSize, "Should redraw at cleanup")
	require.Empty(t, played.Tableau)
	require.Equal(t, 11, played.DeckSize(), "Should have bought one card")
	require.Equal(t, 1, played.Actions)
	require.Equal(t, 1, played.Buys)
	require.Equal(t, 0, played.Coins)
	require.Equal(t, basicSupply().Total()-1, next.Supply().Total())

	require.NotEmpty(t, a.seen)
	require.Empty(t, b.seen, "Should not ask the other player")
	require.Equal(t, 0, g.Turn(), "Should leave the snapshot alone")
}

func TestRun(t *testing.T) {
	a := newScripted("a")
	b := newScripted("b")
	a.buy = mostExpensive
	b.buy = mostExpensive
	g := Setup([]Player{a, b}, cards(Smithy, Village, Market), newRand(42))

	end := g.Run()
	require.True(t, end.Over())
	require.Greater(t, end.Turn(), 0)

	scores := end.Scores()
	require.Len(t, scores, 2)
	winners := end.Winners()
	require.NotEmpty(t, winners)
	for _, w := range winners {
		for _, s := range scores {
			if s.Player == w {
				require.GreaterOrEqual(t, s.Score, scores[0].Score)
				require.GreaterOrEqual(t, s.Score, scores[1].Score)
			}
		}
	}
}

func TestWinners(t *testing.T) {
	a, b, c := newScripted("a"), newScripted("b"), newScripted("c")
	g := NewGame([]*PlayerState{
		{Player: a, Discard: cards(Province)},
		{Player: b, Discard: cards(Duchy, Duchy)},
		{Player: c, Discard: cards(Estate)},
	}, basicSupply(), 0, false, newRand(1))

	require.Equal(t, []Player{a, b}, g.Winners(), "Should keep every tied player")
	require.Equal(t, []Score{{a, 6}, {b, 6}, {c, 1}}, g.Scores())
}
