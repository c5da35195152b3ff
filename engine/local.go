package engine

import (
	"sort"
	"time"

	"dominion/experiments/metrics"
	"dominion/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

var _ Engine = (*LocalEngine)(nil)

type Option func(e *LocalEngine)

func WithMaxTurns(turns int) Option {
	return func(e *LocalEngine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// LocalEngine runs a game between players in this process.
type LocalEngine struct {
	Game     *game.Game
	maxTurns int
}

func Local(players []game.Player, kingdom []*game.Card, seed uint64, options ...Option) *LocalEngine {
	if len(players) < 2 {
		panic("need at least two players")
	}

	rng := rand.New(rand.NewSource(seed))
	e := &LocalEngine{
		Game:     game.Setup(players, kingdom, rng),
		maxTurns: MaxTurns,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the entire game loop until the game is over.
func (e *LocalEngine) Run() ([]int, metrics.GameMetric, []metrics.TurnMetric) {
	g := e.Game
	start := time.Now()
	gameMetric := metrics.GameMetric{
		StartingSeat: g.PlayerTurn(),
		StartTime:    start,
	}
	log.Info().Msgf("player %d is starting", g.PlayerTurn()+1)

	// The game's turn counter starts at the first seat, not at zero
	turns := 0
	var turnMetrics []metrics.TurnMetric
	for !g.Over() && turns < e.maxTurns {
		seat := g.PlayerTurn()
		before := g.State()

		g = g.TakeTurn()
		turns++

		after := g.States()[seat]
		turnMetrics = append(turnMetrics, turnMetric(turns, seat, before, after))
	}
	e.Game = g

	if g.Over() {
		g.NarrateScores()
	} else {
		log.Warn().Msgf("stopped after %d turns", e.maxTurns)
	}

	winners := Winners(g)
	scores := g.Scores()
	gameMetric.Winners = winners
	gameMetric.Scores = make([]int, len(scores))
	for i, s := range scores {
		gameMetric.Scores[i] = s.Score
	}
	gameMetric.Completed = g.Over()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(start)
	gameMetric.TotalTurns = turns
	return winners, gameMetric, turnMetrics
}

// Winners returns the seats sharing the highest score.
func Winners(g *game.Game) []int {
	scores := g.Scores()
	best := scores[0].Score
	for _, s := range scores[1:] {
		best = max(best, s.Score)
	}
	var winners []int
	for seat, s := range scores {
		if s.Score == best {
			winners = append(winners, seat)
		}
	}
	return winners
}

func turnMetric(turn, seat int, before, after *game.PlayerState) metrics.TurnMetric {
	m := metrics.TurnMetric{
		Turn:     turn,
		Seat:     seat,
		Player:   before.Player.Name(),
		Gained:   gained(before, after),
		Score:    after.Score(),
		DeckSize: after.DeckSize(),
	}
	if r, ok := before.Player.(metrics.Reporter); ok {
		searches := r.Drain()
		m.Searches = len(searches)
		m.SearchMetric = metrics.Sum(searches)
	}
	return m
}

// gained lists the cards after holds more copies of than before.
func gained(before, after *game.PlayerState) []string {
	counts := map[*game.Card]int{}
	for _, c := range before.AllCards() {
		counts[c]--
	}
	for _, c := range after.AllCards() {
		counts[c]++
	}
	var names []string
	for _, c := range after.AllCards() {
		if counts[c] > 0 {
			names = append(names, c.Name)
			counts[c]--
		}
	}
	sort.Strings(names)
	return names
}
