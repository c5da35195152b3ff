package player

import (
	"fmt"
	"io"

	"dominion/config"
	"dominion/game"
	"dominion/searcher"
)

// Terminal is where Human players read and write.
type Terminal struct {
	In  io.Reader
	Out io.Writer
}

// New builds the player a config seat describes. Seed drives the random
// choices of players that make them.
func New(seat config.Player, seed uint64, term Terminal) (game.Player, error) {
	switch seat.Kind {
	case config.KindBigMoney:
		return named(NewBigMoney(seat.Cutoff1, seat.Cutoff2), seat.Name), nil
	case config.KindSmithy:
		return named(NewSmithyBot(seat.Cutoff1, seat.Cutoff2, seat.CardsPerSmithy), seat.Name), nil
	case config.KindHillClimb:
		return named(NewHillClimbBot(seat.Cutoff1, seat.Cutoff2, seat.SimulationSteps), seat.Name), nil
	case config.KindMonteCarlo:
		options := []searcher.Option{
			searcher.WithEpisodes(seat.Episodes),
			searcher.WithDuration(seat.Duration),
			searcher.WithMetrics(),
		}
		return named(NewMonteCarloBot(seat.Cutoff1, seat.Cutoff2, seat.Goroutines, options...), seat.Name), nil
	case config.KindRandom:
		bot := NewRandomBot(seed)
		bot.BotName = seat.Name
		return bot, nil
	case config.KindHuman:
		name := seat.Name
		if name == "" {
			name = "Human"
		}
		return NewHuman(name, term.In, term.Out, NewBigMoney(seat.Cutoff1, seat.Cutoff2)), nil
	}
	return nil, fmt.Errorf("%w: unknown player kind %q", config.ErrInvalid, seat.Kind)
}

func named(a *AI, name string) *AI {
	if name != "" {
		a.rename(name)
	}
	return a
}
