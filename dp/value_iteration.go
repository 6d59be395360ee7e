package dp

import (
	"math"

	"github.com/gridrl/tabular/core"
	"github.com/gridrl/tabular/util"
)

// ValueIteration solves the model by sweeping Bellman-optimality
// backups until the maximum per-sweep change drops below Theta.
//
// Each sweep is synchronous: every backup reads the value table as it
// stood at the start of the sweep, never values updated earlier in the
// same sweep. The greedy action of the final backup per state becomes
// the policy. Ties break deterministically on action ordering.
func ValueIteration(m core.Model, cfg Config) (*Result, error) {
	v := core.ZeroValues(m)
	policy := make(core.Policy)
	history := []core.ValueFunction{v.Copy()}
	goal := m.Goal().Hash()

	for iteration := 0; ; iteration++ {
		if cfg.MaxIterations > 0 && iteration >= cfg.MaxIterations {
			return &Result{Values: v, Policy: policy, History: history, Iterations: iteration}, ErrDidNotConverge
		}
		delta := 0.0
		prev := v.Copy()
		for _, s := range m.States() {
			if s.Hash() == goal {
				continue
			}
			best, bestVal, err := greedy(m, prev, s, cfg.Gamma)
			if err != nil {
				return nil, err
			}
			policy[s.Hash()] = best
			v[s.Hash()] = bestVal
			delta = util.MaxFloat(delta, math.Abs(prev[s.Hash()]-bestVal))
		}
		history = append(history, v.Copy())
		if delta < cfg.Theta {
			return &Result{Values: v, Policy: policy, History: history, Iterations: iteration + 1}, nil
		}
	}
}
