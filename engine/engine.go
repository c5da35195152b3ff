package engine

import "dominion/experiments/metrics"

const MaxTurns = 1000

type Engine interface {
	// Run plays a game until it is over or a max number of turns is reached
	Run() (winners []int, gameMetric metrics.GameMetric, turnMetrics []metrics.TurnMetric)
}
