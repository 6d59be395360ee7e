package td

import (
	"time"

	erand "golang.org/x/exp/rand"

	"github.com/gridrl/tabular/core"
)

type Config struct {
	// Alpha is the learning rate.
	Alpha float64
	// Gamma is the discount factor. 1.0 is typical on episodic tasks
	// such as the cliff walk.
	Gamma float64
	// Epsilon is the exploration rate of the behavior policy.
	Epsilon float64
	// Episodes is the training budget.
	Episodes int
	// NSteps is the lookahead horizon of NStepSARSA.
	NSteps int
	// MaxEpisodeSteps caps a single NStepSARSA episode so pathological
	// layouts cannot trap the learner.
	MaxEpisodeSteps int
	// Rand drives exploration and tie-breaking. Seeded from the clock
	// when nil.
	Rand *erand.Rand
	// OnEpisode, when set, is called after every episode with the
	// episode index and its total reward. It is a reporting side
	// channel only and has no effect on the learned tables.
	OnEpisode func(episode int, totalReward float64)
}

func DefaultConfig() Config {
	return Config{
		Alpha:           0.1,
		Gamma:           0.9,
		Epsilon:         0.1,
		Episodes:        500,
		NSteps:          5,
		MaxEpisodeSteps: 1000,
	}
}

func (c Config) rng() *erand.Rand {
	if c.Rand != nil {
		return c.Rand
	}
	return erand.New(erand.NewSource(uint64(time.Now().UnixNano())))
}

func (c Config) report(episode int, totalReward float64) {
	if c.OnEpisode != nil {
		c.OnEpisode(episode, totalReward)
	}
}

// Result is the artifact of a TD training run: the learned Q-table, the
// greedy policy derived from it, and the per-episode reward history.
type Result struct {
	Q       *QTable
	Policy  core.Policy
	Rewards []float64
}

// derivePolicy extracts the greedy action for every visited non-goal
// state. Ties break deterministically on the fixed action ordering, so
// a finished run always reads back the same policy.
func derivePolicy(m core.Model, q *QTable) core.Policy {
	byHash := make(map[string]core.Action)
	for _, a := range m.Actions() {
		byHash[a.Hash()] = a
	}
	goal := m.Goal().Hash()
	policy := make(core.Policy)
	for _, s := range q.States() {
		if s == goal {
			continue
		}
		policy[s] = byHash[q.Greedy(s)]
	}
	return policy
}
