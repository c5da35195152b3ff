package game

import (
	"fmt"
	"sort"

	"golang.org/x/exp/rand"
)

// VictoryCards is how many of each victory card the supply holds for a number
// of players. One player is only used in simulations.
var VictoryCards = map[int]int{
	1: 5,
	2: 8,
	3: 12,
	4: 12,
	5: 15,
	6: 18,
}

const (
	MaxPlayers   = 6
	KingdomCount = 10 // Cards per kingdom pile
)

// Supply maps each pile in the supply to its remaining count.
type Supply map[*Card]int

func (s Supply) Copy() Supply {
	out := make(Supply, len(s))
	for c, n := range s {
		out[c] = n
	}
	return out
}

// Empty returns how many piles are exhausted.
func (s Supply) Empty() int {
	zeros := 0
	for _, n := range s {
		if n == 0 {
			zeros++
		}
	}
	return zeros
}

func (s Supply) Total() int {
	total := 0
	for _, n := range s {
		total += n
	}
	return total
}

// Game is a snapshot of a whole match: the player states in seat order, the
// supply and the absolute turn count.
//
// Game should be immutable - operations always return a new copy. The random
// source is shared by all snapshots of one timeline.
type Game struct {
	states    []*PlayerState
	supply    Supply
	turn      int
	simulated bool
	rng       *rand.Rand
}

// NewGame assembles a game from existing states. It takes ownership of the
// states slice and supply.
func NewGame(states []*PlayerState, supply Supply, turn int, simulated bool, rng *rand.Rand) *Game {
	if len(states) == 0 {
		panic("need at least one player")
	}
	return &Game{
		states:    states,
		supply:    supply,
		turn:      turn,
		simulated: simulated,
		rng:       rng,
	}
}

// Setup deals every player the starting deck, fills the supply for the number
// of players and picks a random starting seat.
func Setup(players []Player, kingdom []*Card, rng *rand.Rand) *Game {
	n := len(players)
	if n < 1 || n > MaxPlayers {
		panic(fmt.Sprintf("unsupported number of players: %d", n))
	}

	supply := Supply{
		Estate:   VictoryCards[n],
		Duchy:    VictoryCards[n],
		Province: VictoryCards[n],
		Copper:   60 - 7*n,
		Silver:   40,
		Gold:     30,
	}
	for _, card := range kingdom {
		supply[card] = KingdomCount
		for _, required := range card.Requires {
			if _, ok := supply[required]; !ok {
				supply[required] = requiredCount(required, n)
			}
		}
	}

	states := make([]*PlayerState, n)
	for i, p := range players {
		states[i] = InitialState(p, rng)
	}
	return NewGame(states, supply, rng.Intn(n), false, rng)
}

func requiredCount(card *Card, players int) int {
	if card.IsCurse() {
		return max(KingdomCount, KingdomCount*(players-1))
	}
	return KingdomCount
}

func (g *Game) copy() *Game {
	next := *g
	next.states = make([]*PlayerState, len(g.states))
	copy(next.states, g.states)
	return &next
}

func (g *Game) withTurn(turn int) *Game {
	next := g.copy()
	next.turn = turn
	return next
}

func (g *Game) NumPlayers() int  { return len(g.states) }
func (g *Game) Turn() int        { return g.turn }
func (g *Game) PlayerTurn() int  { return g.turn % len(g.states) }
func (g *Game) Round() int       { return g.turn / len(g.states) }
func (g *Game) Simulated() bool  { return g.simulated }
func (g *Game) Rand() *rand.Rand { return g.rng }

// State returns the state of the player whose turn it is.
func (g *Game) State() *PlayerState {
	return g.states[g.PlayerTurn()]
}

// States returns the player states in seat order.
func (g *Game) States() []*PlayerState {
	out := make([]*PlayerState, len(g.states))
	copy(out, g.states)
	return out
}

func (g *Game) CurrentPlayer() Player {
	return g.State().Player
}

// Supply returns a copy of the supply counts.
func (g *Game) Supply() Supply {
	return g.supply.Copy()
}

// Count returns how many of card are left in the supply.
func (g *Game) Count(card *Card) int {
	return g.supply[card]
}

// CardChoices lists the cards that can currently be bought, cheapest first.
func (g *Game) CardChoices() []*Card {
	choices := make([]*Card, 0, len(g.supply))
	for card, n := range g.supply {
		if n > 0 {
			choices = append(choices, card)
		}
	}
	SortCards(choices)
	return choices
}

// ReplaceCurrentState returns a game in which the current player's state is
// replaced.
func (g *Game) ReplaceCurrentState(state *PlayerState) *Game {
	next := g.copy()
	next.states[g.PlayerTurn()] = state
	return next
}

// ChangeCurrentState applies counter deltas to the current player and draws
// deltaCards cards.
func (g *Game) ChangeCurrentState(deltaActions, deltaBuys, deltaCoins, deltaCards int) *Game {
	return g.ReplaceCurrentState(g.State().Change(deltaActions, deltaBuys, deltaCoins, deltaCards, g.rng))
}

func (g *Game) CurrentDrawCards(n int) *Game {
	return g.ReplaceCurrentState(g.State().Draw(n, g.rng))
}

// CurrentPlayCard plays a card without spending an action.
func (g *Game) CurrentPlayCard(card *Card) *Game {
	return g.ReplaceCurrentState(g.State().PlayCard(card))
}

// CurrentPlayAction plays a card and spends an action.
func (g *Game) CurrentPlayAction(card *Card) *Game {
	return g.ReplaceCurrentState(g.State().PlayAction(card))
}

// CurrentDecide asks the current player to resolve the decision built by
// factory.
func (g *Game) CurrentDecide(factory DecisionFactory) *Game {
	d := factory(g)
	if d == nil {
		return g
	}
	return g.CurrentPlayer().MakeDecision(d)
}

// RemoveCard takes one card out of the supply.
func (g *Game) RemoveCard(card *Card) *Game {
	supply := g.supply.Copy()
	supply[card]--
	if supply[card] < 0 {
		panic(fmt.Errorf("%w: %s", ErrNegativeSupply, card))
	}
	next := g.copy()
	next.supply = supply
	return next
}

// GainCard moves one card from the supply into the current player's discard
// pile. Nothing happens when the pile is empty.
func (g *Game) GainCard(card *Card) *Game {
	if g.supply[card] <= 0 {
		return g
	}
	next := g.RemoveCard(card)
	return next.ReplaceCurrentState(next.State().Gain(card))
}

// PerformAction draws the card's +Cards, applies its other bonuses, then runs
// its effects in order.
func (g *Game) PerformAction(card *Card) *Game {
	g.narrate().Msgf("%s plays %s", g.CurrentPlayer().Name(), card)
	if card.Cards > 0 {
		g = g.CurrentDrawCards(card.Cards)
	}
	if card.Actions != 0 || card.Buys != 0 || card.Coins != 0 {
		g = g.ChangeCurrentState(card.Actions, card.Buys, card.Coins, 0)
	}
	for _, effect := range card.Effects {
		g = effect(g)
	}
	return g
}

// RunDecisions resolves every decision of the current player's turn and
// returns the game where nothing is left to decide.
func (g *Game) RunDecisions() *Game {
	for {
		var d Decision
		switch g.State().NextDecision() {
		case ActKind:
			d = NewActDecision(g)
		case BuyKind:
			d = NewBuyDecision(g)
		default:
			return g
		}
		g = g.CurrentPlayer().MakeDecision(d)
	}
}

// TakeTurn plays an entire turn, including the cleanup draw, and returns the
// game where it is the next player's turn.
func (g *Game) TakeTurn() *Game {
	player := g.CurrentPlayer()
	g.narrate().Msgf("player %d: %s", g.PlayerTurn()+1, player.Name())
	g.narrate().Msgf("%d provinces left", g.Count(Province))

	player.BeforeTurn(g)
	end := g.RunDecisions()

	next := end.withTurn(g.turn + 1)
	seat := g.PlayerTurn()
	next.states[seat] = next.states[seat].NextTurn(g.rng)

	player.AfterTurn(next)
	return next
}

// Over reports whether the Provinces or enough other piles are exhausted.
func (g *Game) Over() bool {
	if n, ok := g.supply[Province]; ok && n == 0 {
		return true
	}
	zeros := g.supply.Empty()
	if g.NumPlayers() > 4 {
		return zeros >= 4
	}
	return zeros >= 3
}

// Score is a player's final tally.
type Score struct {
	Player Player
	Score  int
}

// Scores returns every player's victory points in seat order.
func (g *Game) Scores() []Score {
	scores := make([]Score, len(g.states))
	for i, s := range g.states {
		scores[i] = Score{Player: s.Player, Score: s.Score()}
	}
	return scores
}

// Winners returns the players sharing the highest score.
func (g *Game) Winners() []Player {
	scores := g.Scores()
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].Score > scores[j].Score })
	var winners []Player
	for _, s := range scores {
		if s.Score != scores[0].Score {
			break
		}
		winners = append(winners, s.Player)
	}
	return winners
}

// Run plays until the game is over and returns the final game.
func (g *Game) Run() *Game {
	for !g.Over() {
		g = g.TakeTurn()
	}
	g.NarrateScores()
	return g
}

// NarrateScores logs every player's score and the end of the game.
func (g *Game) NarrateScores() {
	for _, s := range g.Scores() {
		g.narrate().Msgf("score: %s %d", s.Player.Name(), s.Score)
	}
	g.narrate().Msg("end of game")
}

func (g *Game) String() string {
	return fmt.Sprintf("Game%v[%d]", g.states, g.turn)
}
