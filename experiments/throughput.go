package experiments

import (
	"fmt"
	"time"

	"dominion/config"
	"dominion/player"
)

// ThroughputGoroutines are the worker counts the throughput experiment
// compares.
var ThroughputGoroutines = []int{1, 2, 4, 8, 16}

// RunThroughput pits MonteCarloBots with the same time budget against each
// other, one matchup per goroutine count. The episodes column of the turn
// records shows how many simulations each count fits in the budget.
func RunThroughput(base *config.Config, goroutines []int, duration time.Duration) (string, error) {
	cfg := *base
	cfg.Matchups = nil
	for _, n := range goroutines {
		// Same config for both players for the same playing strength and
		// similar game length
		seat := config.Player{Kind: config.KindMonteCarlo, Goroutines: n, Duration: duration}
		seat.ApplyDefaults()
		cfg.Matchups = append(cfg.Matchups, config.Matchup{
			Name:    fmt.Sprintf("goroutines_%d", n),
			Players: []config.Player{seat, seat},
		})
	}
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	return runExperiment("throughput", &cfg, player.Terminal{})
}
