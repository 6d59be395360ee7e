package td

import "github.com/gridrl/tabular/core"

// ExpectedSARSA replaces SARSA's sampled next-action value with the
// expectation of the next row under the epsilon-greedy policy. This
// removes the sampling variance of the single next-action draw while
// staying on-policy in expectation.
func ExpectedSARSA(m core.Model, cfg Config) (*Result, error) {
	q := NewQTable(m.Actions())
	sel := newSelector(cfg.Epsilon, cfg.rng())
	actions := m.Actions()
	rewards := make([]float64, 0, cfg.Episodes)

	for episode := 0; episode < cfg.Episodes; episode++ {
		state := m.Start()
		total := 0.0
		for done := false; !done; {
			action := sel.pick(q, state.Hash(), actions)
			out, err := m.Step(state, action)
			if err != nil {
				return nil, err
			}
			total += out.Reward

			old := q.Get(state.Hash(), action.Hash())
			target := out.Reward + cfg.Gamma*expectedValue(q, out.Next.Hash(), actions, cfg.Epsilon)
			q.Set(state.Hash(), action.Hash(), old+cfg.Alpha*(target-old))

			state = out.Next
			done = out.Done
		}
		rewards = append(rewards, total)
		cfg.report(episode, total)
	}

	return &Result{Q: q, Policy: derivePolicy(m, q), Rewards: rewards}, nil
}

// expectedValue is the probability-weighted row value under the
// epsilon-greedy policy: the greedy action carries 1-eps+eps/|A|, every
// other action eps/|A|.
func expectedValue(q *QTable, state string, actions []core.Action, epsilon float64) float64 {
	greedy := q.Greedy(state)
	n := float64(len(actions))

	expected := 0.0
	for _, a := range actions {
		prob := epsilon / n
		if a.Hash() == greedy {
			prob = 1 - epsilon + epsilon/n
		}
		expected += prob * q.Get(state, a.Hash())
	}
	return expected
}
