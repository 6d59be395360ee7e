package dp

import (
	"math"

	"github.com/gridrl/tabular/core"
	"github.com/gridrl/tabular/util"
)

// PolicyIteration alternates policy evaluation and greedy improvement
// until the policy is stable.
//
// Evaluation sweeps update the value table in place (asynchronous):
// only self-consistency under the fixed policy is needed, and reusing
// fresh values within a sweep converges faster. The initial policy is
// sampled uniformly from the action set.
func PolicyIteration(m core.Model, cfg Config) (*Result, error) {
	policy := randomPolicy(m, cfg.rng())
	v := core.ZeroValues(m)
	history := []core.ValueFunction{v.Copy()}
	goal := m.Goal().Hash()

	for iteration := 0; ; iteration++ {
		if cfg.MaxIterations > 0 && iteration >= cfg.MaxIterations {
			return &Result{Values: v, Policy: policy, History: history, Iterations: iteration}, ErrDidNotConverge
		}

		// Policy evaluation for the fixed current policy.
		for sweep := 0; ; sweep++ {
			if cfg.MaxIterations > 0 && sweep >= cfg.MaxIterations {
				return &Result{Values: v, Policy: policy, History: history, Iterations: iteration}, ErrDidNotConverge
			}
			delta := 0.0
			for _, s := range m.States() {
				if s.Hash() == goal {
					continue
				}
				old := v[s.Hash()]
				out, err := m.Step(s, policy[s.Hash()])
				if err != nil {
					return nil, err
				}
				v[s.Hash()] = out.Reward + cfg.Gamma*v[out.Next.Hash()]
				delta = util.MaxFloat(delta, math.Abs(old-v[s.Hash()]))
			}
			if delta < cfg.Theta {
				break
			}
		}
		history = append(history, v.Copy())

		// Policy improvement.
		stable, err := improve(m, v, policy, cfg.Gamma)
		if err != nil {
			return nil, err
		}
		if stable {
			return &Result{Values: v, Policy: policy, History: history, Iterations: iteration + 1}, nil
		}
	}
}

// TruncatedPolicyIteration is policy iteration with the evaluation
// phase cut to a fixed number of sweeps instead of running to
// convergence.
//
// Unlike full policy iteration the truncated sweeps are synchronous,
// reading the table as it stood at the start of each sweep: the sweep
// budget assumes sweep-synchronous convergence. Improvement and the
// stability criterion are unchanged.
func TruncatedPolicyIteration(m core.Model, cfg Config) (*Result, error) {
	policy := randomPolicy(m, cfg.rng())
	v := core.ZeroValues(m)
	history := []core.ValueFunction{v.Copy()}
	goal := m.Goal().Hash()

	for iteration := 0; ; iteration++ {
		if cfg.MaxIterations > 0 && iteration >= cfg.MaxIterations {
			return &Result{Values: v, Policy: policy, History: history, Iterations: iteration}, ErrDidNotConverge
		}

		// Truncated policy evaluation.
		for sweep := 0; sweep < cfg.Truncate; sweep++ {
			prev := v.Copy()
			for _, s := range m.States() {
				if s.Hash() == goal {
					continue
				}
				out, err := m.Step(s, policy[s.Hash()])
				if err != nil {
					return nil, err
				}
				v[s.Hash()] = out.Reward + cfg.Gamma*prev[out.Next.Hash()]
			}
		}
		history = append(history, v.Copy())

		stable, err := improve(m, v, policy, cfg.Gamma)
		if err != nil {
			return nil, err
		}
		if stable {
			return &Result{Values: v, Policy: policy, History: history, Iterations: iteration + 1}, nil
		}
	}
}
