package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// scriptedPlayer resolves decisions with overridable callbacks. By default it
// plays the first action, buys nothing and selects as few cards as allowed.
type scriptedPlayer struct {
	NopHooks
	name     string
	act      func(*ActDecision) *Card
	buy      func(*BuyDecision) *Card
	multi    func(MultiDecision) []*Card
	seen     []Decision
	reacted  int
	fallback Player
}

func newScripted(name string) *scriptedPlayer {
	return &scriptedPlayer{name: name}
}

func (p *scriptedPlayer) Name() string { return p.name }

func (p *scriptedPlayer) MakeDecision(d Decision) *Game {
	p.seen = append(p.seen, d)
	switch d := d.(type) {
	case *ActDecision:
		if p.act != nil {
			return d.Choose(p.act(d))
		}
		choices := d.Choices()
		return d.Choose(choices[len(choices)-1])
	case *BuyDecision:
		if p.buy != nil {
			return d.Choose(p.buy(d))
		}
		return d.Choose(nil)
	case MultiDecision:
		if p.multi != nil {
			return d.Choose(p.multi(d))
		}
		return d.Choose(minimalSelection(d))
	default:
		panic("unexpected decision")
	}
}

func (p *scriptedPlayer) React(*Game) { p.reacted++ }

// minimalSelection picks the first remaining card until stopping is allowed.
func minimalSelection(d MultiDecision) []*Card {
	var chosen []*Card
	for {
		next := d.Remaining(chosen)
		if next[0] == nil {
			return chosen
		}
		chosen = append(chosen, next[0])
	}
}

// mostExpensive buys the priciest affordable card.
func mostExpensive(d *BuyDecision) *Card {
	choices := d.Choices()
	return choices[len(choices)-1]
}

type fallbackPlayer struct {
	*scriptedPlayer
}

func (p fallbackPlayer) Fallback() Player { return p.scriptedPlayer.fallback }

func requirePanicsWith(t *testing.T, target error, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "Should panic")
		err, ok := r.(error)
		require.True(t, ok, "Should panic with an error, got %v", r)
		require.True(t, errors.Is(err, target), "Should panic with %v, got %v", target, err)
	}()
	f()
}

func cards(cs ...*Card) []*Card { return cs }

func repeat(card *Card, n int) []*Card {
	out := make([]*Card, n)
	for i := range out {
		out[i] = card
	}
	return out
}

func stateWithHand(p Player, hand ...*Card) *PlayerState {
	return &PlayerState{Player: p, Hand: hand, Actions: 1, Buys: 1}
}

// twoPlayerGame seats a and b with the given states, a to act.
func twoPlayerGame(a, b *PlayerState, supply Supply) *Game {
	return NewGame([]*PlayerState{a, b}, supply, 0, false, newRand(1))
}

func basicSupply() Supply {
	return Supply{
		Copper:   10,
		Silver:   10,
		Gold:     10,
		Estate:   8,
		Duchy:    8,
		Province: 8,
	}
}
