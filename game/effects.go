package game

// effects are the effect procedures a catalog entry can name.
var effects = map[string]Effect{
	"chapel":       chapel,
	"cellar":       cellar,
	"moneylender":  moneylender,
	"militia":      militia,
	"witch":        witch,
	"council_room": councilRoom,
	"bureaucrat":   bureaucrat,
}

// RegisterEffect makes an effect available to catalogs loaded afterwards.
func RegisterEffect(name string, effect Effect) {
	effects[name] = effect
}

// Trash up to 4 cards from your hand.
func chapel(g *Game) *Game {
	return g.CurrentDecide(TrashUpTo(4))
}

// Discard any number of cards, then draw that many.
func cellar(g *Game) *Game {
	before := len(g.State().Hand)
	g = g.CurrentDecide(func(g *Game) Decision {
		return NewDiscardDecision(g, 0, Unbounded)
	})
	return g.CurrentDrawCards(before - len(g.State().Hand))
}

// Trash a Copper from your hand. If you do, +3 coins.
func moneylender(g *Game) *Game {
	for _, c := range g.State().Hand {
		if c == Copper {
			return g.ReplaceCurrentState(g.State().TrashCard(Copper)).ChangeCurrentState(0, 0, 3, 0)
		}
	}
	return g
}

// Each other player discards down to 3 cards in hand.
func militia(g *Game) *Game {
	return g.AttackWithDecision(DiscardDownTo(3))
}

// Each other player gains a Curse.
func witch(g *Game) *Game {
	return g.AttackWith(func(g *Game) *Game {
		return g.GainCard(Curse)
	})
}

// Each other player draws a card.
func councilRoom(g *Game) *Game {
	return g.EveryoneElse(func(g *Game) *Game {
		return g.CurrentDrawCards(1)
	})
}

// Gain a Silver onto your deck. Each other player puts a Victory card from
// their hand onto their deck.
func bureaucrat(g *Game) *Game {
	if g.Count(Silver) > 0 {
		g = g.RemoveCard(Silver)
		g = g.ReplaceCurrentState(g.State().GainOnDeck(Silver))
	}
	return g.AttackWith(func(g *Game) *Game {
		for _, c := range g.State().Hand {
			if c.IsVictory() {
				return g.ReplaceCurrentState(g.State().TopDeck(c))
			}
		}
		return g
	})
}
