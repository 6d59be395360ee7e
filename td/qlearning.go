package td

import "github.com/gridrl/tabular/core"

// QLearning is off-policy TD control: the bootstrap target uses the
// greedy value of the next state regardless of which action the
// behavior policy will actually take there.
func QLearning(m core.Model, cfg Config) (*Result, error) {
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
			target := out.Reward + cfg.Gamma*q.Max(out.Next.Hash())
			q.Set(state.Hash(), action.Hash(), old+cfg.Alpha*(target-old))

			state = out.Next
			done = out.Done
		}
		rewards = append(rewards, total)
		cfg.report(episode, total)
	}

	return &Result{Q: q, Policy: derivePolicy(m, q), Rewards: rewards}, nil
}
