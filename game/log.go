package game

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// narrate returns an info event for the game's narration. Simulated games are
// silent: the nil event discards everything.
func (g *Game) narrate() *zerolog.Event {
	if g.simulated {
		return nil
	}
	return log.Info()
}

func (g *Game) trace() *zerolog.Event {
	if g.simulated {
		return nil
	}
	return log.Debug()
}
