package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// SimulationSupply is the supply of a one-player hypothetical game, where the
// real supply is not tracked.
func SimulationSupply() Supply {
	return Supply{
		Province: 12,
		Duchy:    12,
		Estate:   12,
		Copper:   12,
		Silver:   12,
		Gold:     12,
	}
}

// NewSimulation wraps a single player state in a disposable one-player game.
func NewSimulation(state *PlayerState, rng *rand.Rand) *Game {
	state = state.WithPlayer(simulationStandIn(state.Player))
	return NewGame([]*PlayerState{state}, SimulationSupply(), 0, true, rng)
}

// SimulatedCopy returns a disposable copy of the game for lookahead. The
// current player keeps their hand but their draw pile is reshuffled; every
// other player is replaced by a fresh redraw of their whole deck, so the
// copy reveals nothing hidden. It has its own random source and never shares
// zones with g.
func (g *Game) SimulatedCopy() *Game {
	rng := rand.New(rand.NewSource(g.rng.Uint64()))
	seat := g.PlayerTurn()
	states := make([]*PlayerState, len(g.states))
	for i, s := range g.states {
		var next *PlayerState
		if i == seat {
			next = s.Copy()
			next.DrawPile = shuffled(s.DrawPile, rng)
		} else {
			next = s.SimulationState(nil, rng)
		}
		states[i] = next.WithPlayer(simulationStandIn(s.Player))
	}
	return NewGame(states, g.supply.Copy(), g.turn, true, rng)
}

// SimulateTurn runs the current player's action phase and returns the coins
// and buys they reach the buy phase with.
func (g *Game) SimulateTurn() (coins, buys int) {
	state := g.SimulatePartialTurn()
	return state.HandValue(), state.Buys
}

// SimulatePartialTurn runs the current player's action phase and returns their
// state at the first buy decision.
func (g *Game) SimulatePartialTurn() *PlayerState {
	for {
		state := g.State()
		switch state.NextDecision() {
		case BuyKind:
			return state
		case NoDecision:
			panic(fmt.Errorf("%w: %s", ErrNoBuyPhase, state))
		}
		g = g.CurrentPlayer().MakeDecision(NewActDecision(g))
	}
}
