package player

import (
	"testing"

	"dominion/game"

	"github.com/stretchr/testify/require"
)

func TestBigMoneyBuy(t *testing.T) {
	cases := []struct {
		name      string
		hand      []*game.Card
		provinces int
		want      *game.Card
	}{
		{"Silver with five Coppers", repeat(game.Copper, 5), 8, game.Silver},
		{"Gold with six coins", []*game.Card{game.Gold, game.Silver, game.Copper}, 8, game.Gold},
		{"Province with eight coins", []*game.Card{game.Gold, game.Gold, game.Silver}, 8, game.Province},
		{"Nothing with two coins", repeat(game.Copper, 2), 8, nil},
		{"Duchy over Silver midgame", repeat(game.Copper, 5), 6, game.Duchy},
		{"Gold over Duchy midgame", []*game.Card{game.Gold, game.Gold}, 5, game.Gold},
		{"Duchy over Gold late", []*game.Card{game.Gold, game.Gold}, 3, game.Duchy},
		{"Estate late", repeat(game.Copper, 2), 2, game.Estate},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			bot := NewBigMoney(3, 6)
			g := withOpponent(buyState(bot, c.hand...), supply(c.provinces, game.Smithy, game.Market))
			d := game.NewBuyDecision(g)
			require.Same(t, c.want, bot.strategy.buy(d))

			next := bot.MakeDecision(d)
			if c.want != nil {
				require.Equal(t, 1, next.State().Count(c.want)-g.State().Count(c.want), "Should gain the card")
			}
			require.Equal(t, 0, next.State().Buys)
		})
	}

	t.Run("Initial hand from a seeded setup", func(t *testing.T) {
		bot := NewBigMoney(3, 6)
		g := game.Setup([]game.Player{bot, NewBigMoney(3, 6)}, []*game.Card{game.Smithy}, newRand(42))
		state := g.State()
		d := game.NewBuyDecision(g)
		switch value := state.HandValue(); {
		case value >= 6:
			require.Same(t, game.Gold, bot.strategy.buy(d))
		case value >= 3:
			require.Same(t, game.Silver, bot.strategy.buy(d))
		default:
			require.Nil(t, bot.strategy.buy(d))
		}
	})
}

func TestBigMoneyAct(t *testing.T) {
	bot := NewBigMoney(3, 6)
	state := &game.PlayerState{
		Player:  bot,
		Hand:    []*game.Card{game.Smithy, game.Festival, game.Village, game.Copper},
		Actions: 1,
		Buys:    1,
	}
	g := withOpponent(state, supply(8))

	require.Same(t, game.Festival, bot.strategy.act(game.NewActDecision(g)), "Should prefer +Actions")
	require.Equal(t, 0.0, actPriority(nil))
	require.Equal(t, 31.0, actPriority(game.Smithy))
	require.Equal(t, 211.0, actPriority(game.Village))
}

func TestBigMoneyTrash(t *testing.T) {
	bot := NewBigMoney(3, 6)
	state := &game.PlayerState{
		Player:   bot,
		Hand:     []*game.Card{game.Chapel, game.Estate, game.Copper, game.Curse, game.Copper},
		DrawPile: []*game.Card{game.Gold, game.Silver},
		Actions:  1,
		Buys:     1,
	}
	g := withOpponent(state, supply(8))

	next := bot.MakeDecision(game.NewActDecision(g))
	require.Empty(t, next.State().Hand, "Should trash the Curse, the Coppers and the Estate")
	require.Equal(t, []*game.Card{game.Chapel}, next.State().Tableau)

	t.Run("Keeps Coppers when money is short", func(t *testing.T) {
		poor := &game.PlayerState{Player: bot, Hand: []*game.Card{game.Copper, game.Copper, game.Smithy}}
		d := game.NewTrashDecision(withOpponent(poor, supply(8)), 0, 4)
		require.Empty(t, selectIncrementally(d, bot.strategy.trash))
	})

	t.Run("Trashes the least valuable card when forced", func(t *testing.T) {
		forced := &game.PlayerState{Player: bot, Hand: []*game.Card{game.Gold, game.Province, game.Silver}}
		d := game.NewTrashDecision(withOpponent(forced, supply(8)), 1, 1)
		require.Equal(t, []*game.Card{game.Silver}, selectIncrementally(d, bot.strategy.trash))
	})
}

func TestBigMoneyDiscard(t *testing.T) {
	bot := NewBigMoney(3, 6)

	t.Run("Victory cards then Coppers", func(t *testing.T) {
		state := &game.PlayerState{
			Player:  bot,
			Hand:    []*game.Card{game.Copper, game.Estate, game.Silver, game.Village, game.Smithy},
			Actions: 1,
		}
		d := game.DiscardDownTo(3)(withOpponent(state, supply(8))).(*game.DiscardDecision)
		require.Equal(t, []*game.Card{game.Estate, game.Copper}, selectIncrementally(d, bot.strategy.discard))
	})

	t.Run("Dead actions first, then the weakest card", func(t *testing.T) {
		state := &game.PlayerState{
			Player:  bot,
			Hand:    []*game.Card{game.Smithy, game.Smithy, game.Gold, game.Gold, game.Silver},
			Actions: 1,
		}
		d := game.DiscardDownTo(3)(withOpponent(state, supply(8))).(*game.DiscardDecision)
		require.Equal(t, []*game.Card{game.Smithy, game.Silver}, selectIncrementally(d, bot.strategy.discard))
	})

	t.Run("Militia makes the victim discard", func(t *testing.T) {
		attacker := &game.PlayerState{
			Player:  NewBigMoney(3, 6),
			Hand:    []*game.Card{game.Militia, game.Copper},
			Actions: 1,
			Buys:    1,
		}
		victim := &game.PlayerState{
			Player: bot,
			Hand:   []*game.Card{game.Copper, game.Estate, game.Silver, game.Gold, game.Estate},
		}
		g := game.NewGame([]*game.PlayerState{attacker, victim}, supply(8, game.Militia), 0, false, newRand(1))
		next := attacker.Player.MakeDecision(game.NewActDecision(g))
		require.Equal(t, []*game.Card{game.Copper, game.Silver, game.Gold}, next.States()[1].Hand)
	})
}

func TestSmithyBot(t *testing.T) {
	bot := NewSmithyBot(3, 6, 8)
	require.Equal(t, "SmithyBot(3, 6, 8)", bot.Name())

	t.Run("Buys a first Smithy", func(t *testing.T) {
		g := withOpponent(buyState(bot, repeat(game.Copper, 4)...), supply(8, game.Smithy))
		require.Same(t, game.Smithy, bot.strategy.buy(game.NewBuyDecision(g)))
	})

	t.Run("Keeps one Smithy per eight cards", func(t *testing.T) {
		state := buyState(bot, repeat(game.Copper, 4)...)
		state.Discard = append(state.Discard, game.Smithy)
		g := withOpponent(state, supply(8, game.Smithy))
		require.Same(t, game.Silver, bot.strategy.buy(game.NewBuyDecision(g)))
	})

	t.Run("Plays Smithy", func(t *testing.T) {
		state := &game.PlayerState{
			Player:   bot,
			Hand:     []*game.Card{game.Village, game.Smithy},
			DrawPile: repeat(game.Copper, 3),
			Actions:  1,
			Buys:     1,
		}
		g := withOpponent(state, supply(8))
		next := bot.MakeDecision(game.NewActDecision(g))
		require.Equal(t, []*game.Card{game.Smithy}, next.State().Tableau)
		require.Len(t, next.State().Hand, 4)
	})
}
