package searcher

import (
	"math"
	"sync"

	"dominion/game"
)

type arm struct {
	card    *game.Card
	rewards float64
	visits  float64
}

// bandit holds one arm per buy candidate. Workers pull arms with UCB1 and
// report the rewards of their episodes.
type bandit struct {
	sync.Mutex
	arms   []*arm
	visits float64
}

func newBandit(candidates []*game.Card) *bandit {
	arms := make([]*arm, len(candidates))
	for i, c := range candidates {
		arms[i] = &arm{card: c}
	}
	return &bandit{arms: arms}
}

// pull picks the next arm to explore and applies a virtual loss to it, so
// concurrent workers spread over the arms.
func (b *bandit) pull() *arm {
	b.Lock()
	defer b.Unlock()

	picked := b.pick()
	picked.rewards += Loss
	picked.visits++
	b.visits++
	return picked
}

func (b *bandit) pick() *arm {
	var best *arm
	maxScore := math.Inf(-1)
	for _, a := range b.arms {
		score := ucb1(a.rewards, a.visits, b.visits)
		if score == math.Inf(1) {
			return a
		}
		if score > maxScore {
			maxScore = score
			best = a
		}
	}
	return best
}

// ucb1 = q/n + sqrt(c^2*ln(N)/n), infinite for an unexplored arm.
func ucb1(rewards, visits, total float64) float64 {
	if visits == 0 {
		return math.Inf(1)
	}
	return rewards/visits + math.Sqrt(CSquared*math.Log(total)/visits)
}

// backup reverses the virtual loss of a pulled arm and records its reward.
func (b *bandit) backup(a *arm, reward float64) {
	b.Lock()
	defer b.Unlock()

	a.rewards += reward - Loss
}

// values returns the mean reward of every arm. Unexplored arms are worth 0.
func (b *bandit) values() map[*game.Card]float64 {
	b.Lock()
	defer b.Unlock()

	values := make(map[*game.Card]float64, len(b.arms))
	for _, a := range b.arms {
		if a.visits > 0 {
			values[a.card] = a.rewards / a.visits
		} else {
			values[a.card] = 0
		}
	}
	return values
}
