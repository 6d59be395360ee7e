package td

import (
	erand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/gridrl/tabular/core"
)

// selector draws actions from the epsilon-greedy distribution over a
// Q-table row: every action gets epsilon/|A| exploration mass, and the
// remaining 1-epsilon is split uniformly among the row's maximizers.
// Ties therefore break at random, unlike the deterministic DP greedy.
type selector struct {
	epsilon float64
	rand    *erand.Rand
}

func newSelector(epsilon float64, rng *erand.Rand) *selector {
	return &selector{epsilon: epsilon, rand: rng}
}

func (s *selector) pick(q *QTable, state string, actions []core.Action) core.Action {
	ties := make(map[string]bool)
	for _, a := range q.GreedySet(state) {
		ties[a] = true
	}

	weights := make([]float64, len(actions))
	explore := s.epsilon / float64(len(actions))
	exploit := (1 - s.epsilon) / float64(len(ties))
	for i, a := range actions {
		weights[i] = explore
		if ties[a.Hash()] {
			weights[i] += exploit
		}
	}

	i, ok := sampleuv.NewWeighted(weights, s.rand).Take()
	if !ok {
		return actions[s.rand.Intn(len(actions))]
	}
	return actions[i]
}
