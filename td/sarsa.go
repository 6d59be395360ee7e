package td

import "github.com/gridrl/tabular/core"

// SARSA is on-policy TD control: the next action is selected before the
// update and its value, not the greedy maximum, forms the bootstrap
// target. State and action then advance together.
func SARSA(m core.Model, cfg Config) (*Result, error) {
	q := NewQTable(m.Actions())
	sel := newSelector(cfg.Epsilon, cfg.rng())
	actions := m.Actions()
	rewards := make([]float64, 0, cfg.Episodes)

	for episode := 0; episode < cfg.Episodes; episode++ {
		state := m.Start()
		total := 0.0
		action := sel.pick(q, state.Hash(), actions)
		for done := false; !done; {
			out, err := m.Step(state, action)
			if err != nil {
				return nil, err
			}
			total += out.Reward

			next := sel.pick(q, out.Next.Hash(), actions)

			old := q.Get(state.Hash(), action.Hash())
			target := out.Reward + cfg.Gamma*q.Get(out.Next.Hash(), next.Hash())
			q.Set(state.Hash(), action.Hash(), old+cfg.Alpha*(target-old))

			state = out.Next
			action = next
			done = out.Done
		}
		rewards = append(rewards, total)
		cfg.report(episode, total)
	}

	return &Result{Q: q, Policy: derivePolicy(m, q), Rewards: rewards}, nil
}
