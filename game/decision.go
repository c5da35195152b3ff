package game

import (
	"fmt"
	"math"

	"dominion/utils"
)

// DecisionKind identifies the kind of a decision.
type DecisionKind int

const (
	NoDecision DecisionKind = iota
	ActKind
	BuyKind
	TrashKind
	DiscardKind
)

func (k DecisionKind) String() string {
	switch k {
	case ActKind:
		return "Act"
	case BuyKind:
		return "Buy"
	case TrashKind:
		return "Trash"
	case DiscardKind:
		return "Discard"
	default:
		return "None"
	}
}

// Unbounded is the Max of a multi-select decision with no upper limit.
const Unbounded = math.MaxInt

// Decision is a request for a choice, bound to one game snapshot. It is
// resolved exactly once.
type Decision interface {
	Game() *Game
	State() *PlayerState
	Kind() DecisionKind
	String() string
}

// SingleDecision picks one card or declines. The decline option is a nil card
// and is always the first choice.
type SingleDecision interface {
	Decision
	Choices() []*Card
	Choose(card *Card) *Game
}

// MultiDecision selects between Min and Max cards. Duplicate cards in hand are
// separate occurrences, each selectable on its own.
type MultiDecision interface {
	Decision
	Min() int
	Max() int
	Choices() []*Card
	// Remaining returns the legal next picks after chosen were picked. A nil
	// entry means "stop here" and is only offered once the minimum is met.
	Remaining(chosen []*Card) []*Card
	Choose(selection []*Card) *Game
}

// DecisionFactory builds a decision against a game snapshot. It may return
// nil when there is nothing to decide.
type DecisionFactory func(g *Game) Decision

type decision struct {
	game *Game
}

func (d decision) Game() *Game         { return d.game }
func (d decision) State() *PlayerState { return d.game.State() }

// ActDecision chooses an action card to play, or none to end the action phase.
type ActDecision struct {
	decision
}

func NewActDecision(g *Game) *ActDecision {
	return &ActDecision{decision{game: g}}
}

func (d *ActDecision) Kind() DecisionKind { return ActKind }

func (d *ActDecision) Choices() []*Card {
	choices := []*Card{nil}
	for _, c := range d.State().Hand {
		if c.IsAction() {
			choices = append(choices, c)
		}
	}
	return choices
}

// Choose plays the card and performs its action. Declining spends all
// remaining actions.
func (d *ActDecision) Choose(card *Card) *Game {
	if card == nil {
		return d.game.ChangeCurrentState(-d.State().Actions, 0, 0, 0)
	}
	mustContain(d, d.Choices(), card)
	return d.game.CurrentPlayAction(card).PerformAction(card)
}

func (d *ActDecision) String() string {
	s := d.State()
	return fmt.Sprintf("ActDecision (%d actions, %d buys, +%d coins)", s.Actions, s.Buys, s.Coins)
}

// BuyDecision chooses an affordable card from the supply, or none to stop
// buying.
type BuyDecision struct {
	decision
}

func NewBuyDecision(g *Game) *BuyDecision {
	return &BuyDecision{decision{game: g}}
}

func (d *BuyDecision) Kind() DecisionKind { return BuyKind }
func (d *BuyDecision) Coins() int         { return d.State().HandValue() }
func (d *BuyDecision) Buys() int          { return d.State().Buys }

func (d *BuyDecision) Choices() []*Card {
	value := d.Coins()
	choices := []*Card{nil}
	for _, c := range d.game.CardChoices() {
		if c.Cost <= value {
			choices = append(choices, c)
		}
	}
	return choices
}

// Choose takes one card from the supply into the discard pile, paying its cost
// and one buy. Declining spends all remaining buys.
func (d *BuyDecision) Choose(card *Card) *Game {
	state := d.State()
	if card == nil {
		return d.game.ChangeCurrentState(0, -state.Buys, 0, 0)
	}
	mustContain(d, d.Choices(), card)
	d.game.narrate().Msgf("%s buys %s", state.Player.Name(), card)
	return d.game.RemoveCard(card).ReplaceCurrentState(
		state.Gain(card).Change(0, -1, -card.Cost, 0, nil),
	)
}

func (d *BuyDecision) String() string {
	return fmt.Sprintf("BuyDecision (%d buys, %d coins)", d.Buys(), d.Coins())
}

type multiDecision struct {
	decision
	min int
	max int
}

func (d multiDecision) Min() int { return d.min }
func (d multiDecision) Max() int { return d.max }

func (d multiDecision) Choices() []*Card {
	choices := utils.Concat(d.State().Hand)
	SortCards(choices)
	return choices
}

func (d multiDecision) Remaining(chosen []*Card) []*Card {
	remaining := d.Choices()
	for _, c := range chosen {
		i := utils.FindIndex(remaining, c)
		if i < 0 {
			panic(fmt.Errorf("%w: %s is not in %s", ErrIllegalChoice, c, cardNames(remaining)))
		}
		remaining = utils.RemoveAt(remaining, i)
	}
	if len(chosen) >= d.max || len(remaining) == 0 {
		return []*Card{nil}
	}
	if len(chosen) >= min(d.min, len(d.State().Hand)) {
		return utils.Concat([]*Card{nil}, remaining)
	}
	return remaining
}

// apply runs op on the current state once per selected card. Each selected
// card must be a distinct occurrence in hand.
func (d multiDecision) apply(selection []*Card, op func(*PlayerState, *Card) *PlayerState) *Game {
	d.Remaining(selection)
	state := d.State()
	for _, c := range selection {
		state = op(state, c)
	}
	return d.game.ReplaceCurrentState(state)
}

// TrashDecision removes cards in hand from the game.
type TrashDecision struct {
	multiDecision
}

func NewTrashDecision(g *Game, min, max int) *TrashDecision {
	return &TrashDecision{multiDecision{decision: decision{game: g}, min: min, max: max}}
}

func (d *TrashDecision) Kind() DecisionKind { return TrashKind }

func (d *TrashDecision) Choose(selection []*Card) *Game {
	return d.apply(selection, (*PlayerState).TrashCard)
}

func (d *TrashDecision) String() string {
	return fmt.Sprintf("TrashDecision (%s) %s", bounds(d.min, d.max), cardNames(d.State().Hand))
}

// DiscardDecision moves cards in hand to the discard pile.
type DiscardDecision struct {
	multiDecision
}

func NewDiscardDecision(g *Game, min, max int) *DiscardDecision {
	return &DiscardDecision{multiDecision{decision: decision{game: g}, min: min, max: max}}
}

func (d *DiscardDecision) Kind() DecisionKind { return DiscardKind }

func (d *DiscardDecision) Choose(selection []*Card) *Game {
	return d.apply(selection, (*PlayerState).DiscardCard)
}

func (d *DiscardDecision) String() string {
	return fmt.Sprintf("DiscardDecision (%s) %s", bounds(d.min, d.max), cardNames(d.State().Hand))
}

// TrashUpTo asks to trash between 0 and n cards.
func TrashUpTo(n int) DecisionFactory {
	return func(g *Game) Decision {
		return NewTrashDecision(g, 0, n)
	}
}

// DiscardDownTo asks to discard until n cards are left in hand. It poses no
// decision when the hand is already small enough.
func DiscardDownTo(n int) DecisionFactory {
	return func(g *Game) Decision {
		excess := len(g.State().Hand) - n
		if excess <= 0 {
			return nil
		}
		return NewDiscardDecision(g, excess, excess)
	}
}

func bounds(min, max int) string {
	if max == Unbounded {
		return fmt.Sprintf("%d+", min)
	}
	return fmt.Sprintf("%d-%d", min, max)
}

func mustContain(d Decision, choices []*Card, card *Card) {
	if utils.FindIndex(choices, card) < 0 {
		panic(fmt.Errorf("%w: %s for %s", ErrIllegalChoice, card, d))
	}
}
