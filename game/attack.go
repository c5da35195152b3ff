package game

// AttackWithDecision makes every other player resolve the decision built by
// factory. Players holding a defense card are skipped.
func (g *Game) AttackWithDecision(factory DecisionFactory) *Game {
	return g.sweep(true, func(mini *Game) *Game {
		return mini.CurrentDecide(factory)
	})
}

// AttackWith applies effect to every other player not holding a defense card.
func (g *Game) AttackWith(effect Effect) *Game {
	return g.sweep(true, effect)
}

// EveryoneElse applies effect to every other player. It is not an attack, so
// defense cards do not help.
func (g *Game) EveryoneElse(effect Effect) *Game {
	return g.sweep(false, effect)
}

// sweep runs a mini-turn for each other seat, clockwise from the next seat,
// then gives the turn back to the active seat.
func (g *Game) sweep(attack bool, effect Effect) *Game {
	turn := g.turn
	for offset := 1; offset < g.NumPlayers(); offset++ {
		mini := g.withTurn(turn + offset)
		state := mini.State()
		if attack {
			if state.HasDefense() {
				mini.trace().Msgf("%s is unaffected by the attack", state.Player.Name())
				continue
			}
			if r, ok := state.Player.(Reactor); ok {
				r.React(mini)
			}
		}
		g = effect(mini)
	}
	return g.withTurn(turn)
}
