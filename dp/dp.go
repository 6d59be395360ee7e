// Package dp implements exact dynamic-programming solvers for grid
// MDPs: value iteration, policy iteration and truncated policy
// iteration. All three require full-model access to the environment.
package dp

import (
	"errors"
	"math"
	"time"

	erand "golang.org/x/exp/rand"

	"github.com/gridrl/tabular/core"
)

// ErrDidNotConverge is returned when an iteration cap is exhausted
// before the convergence threshold is reached.
var ErrDidNotConverge = errors.New("did not converge within the iteration cap")

type Config struct {
	// Gamma is the discount factor.
	Gamma float64
	// Theta is the convergence threshold on the per-sweep maximum
	// value change.
	Theta float64
	// MaxIterations caps every sweep loop (outer and evaluation).
	// Zero means no cap.
	MaxIterations int
	// Truncate is the fixed number of evaluation sweeps used by
	// TruncatedPolicyIteration.
	Truncate int
	// Rand drives the random initial policy of the policy-iteration
	// variants. Seeded from the clock when nil.
	Rand *erand.Rand
}

func DefaultConfig() Config {
	return Config{
		Gamma:         0.9,
		Theta:         1e-6,
		MaxIterations: 100000,
		Truncate:      5,
	}
}

func (c Config) rng() *erand.Rand {
	if c.Rand != nil {
		return c.Rand
	}
	return erand.New(erand.NewSource(uint64(time.Now().UnixNano())))
}

// Result is the artifact of a DP solve: the converged value function,
// the greedy policy, and one value-table snapshot per recorded phase
// (including the initial all-zero table).
type Result struct {
	Values     core.ValueFunction
	Policy     core.Policy
	History    []core.ValueFunction
	Iterations int
}

// greedy returns the deterministic best action from a state under v:
// the first maximal entry in the model's action ordering.
func greedy(m core.Model, v core.ValueFunction, s core.State, gamma float64) (core.Action, float64, error) {
	var best core.Action
	bestVal := math.Inf(-1)
	for _, a := range m.Actions() {
		out, err := m.Step(s, a)
		if err != nil {
			return nil, 0, err
		}
		q := out.Reward + gamma*v[out.Next.Hash()]
		if q > bestVal {
			best = a
			bestVal = q
		}
	}
	return best, bestVal, nil
}

// randomPolicy assigns a uniformly random action to every non-goal
// state. The goal state has no entry.
func randomPolicy(m core.Model, rng *erand.Rand) core.Policy {
	actions := m.Actions()
	policy := make(core.Policy)
	goal := m.Goal().Hash()
	for _, s := range m.States() {
		if s.Hash() == goal {
			continue
		}
		policy[s.Hash()] = actions[rng.Intn(len(actions))]
	}
	return policy
}

// improve greedily overwrites the policy under v and reports whether it
// was already stable.
func improve(m core.Model, v core.ValueFunction, policy core.Policy, gamma float64) (bool, error) {
	stable := true
	goal := m.Goal().Hash()
	for _, s := range m.States() {
		if s.Hash() == goal {
			continue
		}
		old := policy[s.Hash()]
		best, _, err := greedy(m, v, s, gamma)
		if err != nil {
			return false, err
		}
		policy[s.Hash()] = best
		if old == nil || old.Hash() != best.Hash() {
			stable = false
		}
	}
	return stable, nil
}
