package game

import (
	"fmt"

	"dominion/utils"

	"golang.org/x/exp/rand"
)

const HandSize = 5

// PlayerState holds the game state particular to one player: the four card
// zones plus the actions, buys and bonus coins left this turn.
//
// PlayerState should be immutable - operations always return a new copy and
// never write into the receiver's zones.
type PlayerState struct {
	Player   Player
	Hand     []*Card
	DrawPile []*Card // Index 0 is the top of the pile
	Discard  []*Card
	Tableau  []*Card // Cards played this turn
	Actions  int
	Buys     int
	Coins    int // Bonus coins, on top of the treasure in hand
}

// InitialState puts 7 Coppers and 3 Estates in the discard pile so that the
// first draw shuffles them, then starts the first turn.
func InitialState(player Player, rng *rand.Rand) *PlayerState {
	discard := make([]*Card, 0, 10)
	for i := 0; i < 7; i++ {
		discard = append(discard, Copper)
	}
	for i := 0; i < 3; i++ {
		discard = append(discard, Estate)
	}
	state := &PlayerState{Player: player, Discard: discard}
	return state.NextTurn(rng)
}

func (s *PlayerState) clone() *PlayerState {
	next := *s
	return &next
}

// Copy returns a deep copy that shares no backing arrays with s.
func (s *PlayerState) Copy() *PlayerState {
	next := s.clone()
	next.Hand = utils.Concat(s.Hand)
	next.DrawPile = utils.Concat(s.DrawPile)
	next.Discard = utils.Concat(s.Discard)
	next.Tableau = utils.Concat(s.Tableau)
	return next
}

// WithPlayer returns the same state owned by another decision-maker.
func (s *PlayerState) WithPlayer(p Player) *PlayerState {
	next := s.clone()
	next.Player = p
	return next
}

func (s *PlayerState) AllCards() []*Card {
	return utils.Concat(s.Hand, s.Tableau, s.DrawPile, s.Discard)
}

func (s *PlayerState) DeckSize() int {
	return len(s.Hand) + len(s.Tableau) + len(s.DrawPile) + len(s.Discard)
}

// Count returns how many copies of card the player owns across all zones.
func (s *PlayerState) Count(card *Card) int {
	n := 0
	for _, c := range s.AllCards() {
		if c == card {
			n++
		}
	}
	return n
}

// HandValue returns how many coins the player can spend.
func (s *PlayerState) HandValue() int {
	value := s.Coins
	for _, c := range s.Hand {
		value += c.Treasure
	}
	return value
}

// Score sums the victory points over the whole deck.
func (s *PlayerState) Score() int {
	score := 0
	for _, c := range s.AllCards() {
		score += c.VP
	}
	return score
}

// Change applies deltas to the turn counters and draws deltaCards cards.
func (s *PlayerState) Change(deltaActions, deltaBuys, deltaCoins, deltaCards int, rng *rand.Rand) *PlayerState {
	if deltaCards < 0 {
		panic(fmt.Errorf("%w: %d", ErrNegativeDraw, deltaCards))
	}
	next := s.clone()
	next.Actions += deltaActions
	next.Buys += deltaBuys
	next.Coins += deltaCoins
	if deltaCards > 0 {
		return next.Draw(deltaCards, rng)
	}
	return next
}

// Draw moves n cards from the draw pile to the hand, shuffling the discard
// pile into a new draw pile when the draw pile runs out. When both are
// exhausted it draws what is available.
func (s *PlayerState) Draw(n int, rng *rand.Rand) *PlayerState {
	if n < 0 {
		panic(fmt.Errorf("%w: %d", ErrNegativeDraw, n))
	}
	next := s.clone()
	for n > 0 {
		if len(next.DrawPile) >= n {
			next.Hand = utils.Concat(next.Hand, next.DrawPile[:n])
			next.DrawPile = utils.Concat(next.DrawPile[n:])
			return next
		}
		next.Hand = utils.Concat(next.Hand, next.DrawPile)
		n -= len(next.DrawPile)
		next.DrawPile = nil
		if len(next.Discard) == 0 {
			return next
		}
		next.DrawPile = shuffled(next.Discard, rng)
		next.Discard = nil
	}
	return next
}

// NextTurn discards everything, then draws a new hand with 1 action and 1 buy.
func (s *PlayerState) NextTurn(rng *rand.Rand) *PlayerState {
	next := &PlayerState{
		Player:   s.Player,
		DrawPile: s.DrawPile,
		Discard:  utils.Concat(s.Discard, s.Hand, s.Tableau),
		Actions:  1,
		Buys:     1,
	}
	return next.Draw(HandSize, rng)
}

func (s *PlayerState) Gain(card *Card) *PlayerState {
	return s.GainCards([]*Card{card})
}

func (s *PlayerState) GainCards(cards []*Card) *PlayerState {
	next := s.clone()
	next.Discard = utils.Concat(s.Discard, cards)
	return next
}

// GainOnDeck puts a gained card on top of the draw pile.
func (s *PlayerState) GainOnDeck(card *Card) *PlayerState {
	next := s.clone()
	next.DrawPile = utils.Concat([]*Card{card}, s.DrawPile)
	return next
}

// PlayCard moves a card from the hand to the tableau without spending an
// action.
func (s *PlayerState) PlayCard(card *Card) *PlayerState {
	next := s.clone()
	next.Hand = s.removeFromHand(card)
	next.Tableau = utils.Concat(s.Tableau, []*Card{card})
	s.checkSize(next, 0)
	return next
}

// PlayAction plays a card and spends one action. It does not run the card's
// effect; ActDecision does that.
func (s *PlayerState) PlayAction(card *Card) *PlayerState {
	return s.PlayCard(card).Change(-1, 0, 0, 0, nil)
}

func (s *PlayerState) DiscardCard(card *Card) *PlayerState {
	next := s.clone()
	next.Hand = s.removeFromHand(card)
	next.Discard = utils.Concat(s.Discard, []*Card{card})
	s.checkSize(next, 0)
	return next
}

// TrashCard removes a card in hand from the game.
func (s *PlayerState) TrashCard(card *Card) *PlayerState {
	next := s.clone()
	next.Hand = s.removeFromHand(card)
	s.checkSize(next, -1)
	return next
}

// TopDeck moves a card from the hand onto the draw pile.
func (s *PlayerState) TopDeck(card *Card) *PlayerState {
	next := s.clone()
	next.Hand = s.removeFromHand(card)
	next.DrawPile = utils.Concat([]*Card{card}, s.DrawPile)
	s.checkSize(next, 0)
	return next
}

func (s *PlayerState) removeFromHand(card *Card) []*Card {
	i := utils.FindIndex(s.Hand, card)
	if i < 0 {
		panic(fmt.Errorf("%w: %s in hand %s", ErrCardNotFound, card, cardNames(s.Hand)))
	}
	return utils.RemoveAt(s.Hand, i)
}

func (s *PlayerState) checkSize(next *PlayerState, delta int) {
	if next.DeckSize() != s.DeckSize()+delta {
		panic(fmt.Errorf("%w: %d -> %d", ErrSizeInvariant, s.DeckSize(), next.DeckSize()))
	}
}

// HasDefense reports whether a defense card is in hand.
func (s *PlayerState) HasDefense() bool {
	for _, c := range s.Hand {
		if c.IsDefense() {
			return true
		}
	}
	return false
}

// Actionable reports whether there are actions left to take with this hand.
func (s *PlayerState) Actionable() bool {
	if s.Actions <= 0 {
		return false
	}
	for _, c := range s.Hand {
		if c.IsAction() {
			return true
		}
	}
	return false
}

func (s *PlayerState) Buyable() bool {
	return s.Buys > 0
}

// NextDecision returns the kind of the next decision of the turn. Other kinds
// of decisions only happen as a result of playing actions.
func (s *PlayerState) NextDecision() DecisionKind {
	switch {
	case s.Actionable():
		return ActKind
	case s.Buyable():
		return BuyKind
	default:
		return NoDecision
	}
}

// SimulationState returns a new turn with extra on top of a freshly shuffled
// copy of the whole deck. Useful for simulating the effect of gaining cards.
func (s *PlayerState) SimulationState(extra []*Card, rng *rand.Rand) *PlayerState {
	state := &PlayerState{
		Player:   s.Player,
		DrawPile: utils.Concat(extra, shuffled(s.AllCards(), rng)),
		Actions:  1,
		Buys:     1,
	}
	return state.Draw(HandSize, rng)
}

// Hand is the outcome of one simulated turn.
type Hand struct {
	Coins int
	Buys  int
}

// SimulateHands plays n hypothetical turns of a fresh deck with extra on top
// and returns the coins and buys available when each reached its buy phase.
func (s *PlayerState) SimulateHands(n int, extra []*Card, rng *rand.Rand) []Hand {
	hands := make([]Hand, 0, n)
	for i := 0; i < n; i++ {
		game := NewSimulation(s.SimulationState(extra, rng), rng)
		coins, buys := game.SimulateTurn()
		hands = append(hands, Hand{Coins: coins, Buys: buys})
	}
	return hands
}

func (s *PlayerState) String() string {
	name := "?"
	if s.Player != nil {
		name = s.Player.Name()
	}
	return fmt.Sprintf("%s{hand=%s actions=%d buys=%d coins=%d deck=%d}",
		name, cardNames(s.Hand), s.Actions, s.Buys, s.Coins, s.DeckSize())
}

func shuffled(cards []*Card, rng *rand.Rand) []*Card {
	out := utils.Concat(cards)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
