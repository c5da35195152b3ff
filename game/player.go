package game

// Player is a decision-maker seated at the table. PlayerStates refer to it by
// identity.
type Player interface {
	Name() string
	// MakeDecision resolves a decision posed against its game snapshot, by
	// calling the decision's own Choose with one of its Choices, and returns
	// the resulting game.
	MakeDecision(d Decision) *Game
	BeforeTurn(g *Game)
	AfterTurn(g *Game)
}

// Fallbacker is implemented by players that cannot answer hypothetical
// questions, such as humans. The fallback stands in for them in simulations.
type Fallbacker interface {
	Fallback() Player
}

// Reactor is implemented by players that want to be told when they are about
// to resolve another player's attack.
type Reactor interface {
	React(g *Game)
}

// NopHooks provides empty turn hooks for players that do not need them.
type NopHooks struct{}

func (NopHooks) BeforeTurn(*Game) {}
func (NopHooks) AfterTurn(*Game)  {}

// simulationStandIn returns who decides for p inside a simulated game.
func simulationStandIn(p Player) Player {
	if f, ok := p.(Fallbacker); ok {
		return f.Fallback()
	}
	return p
}
