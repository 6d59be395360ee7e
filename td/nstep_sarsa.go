package td

import (
	"math"

	"github.com/gridrl/tabular/core"
)

// frame is one buffered (state, action, reward) step of the current
// trajectory window.
type frame struct {
	state  string
	action string
	reward float64
}

// NStepSARSA is on-policy TD control with a sliding window of NSteps
// transitions. Once the window is full, the oldest buffered pair is
// updated with the discounted n-step return plus a bootstrap on the
// newest (state, action) unless the episode has ended, then evicted.
//
// When the episode ends (terminal or the per-episode step cap), the
// remaining buffer is drained oldest-first: each entry's return uses
// only the rewards still buffered from that point on, with no bootstrap
// term. Skipping the drain would leave the last NSteps-1 pairs of every
// episode untrained.
//
// With NSteps=1 the update sequence is numerically identical to SARSA.
func NStepSARSA(m core.Model, cfg Config) (*Result, error) {
	n := cfg.NSteps
	if n < 1 {
		n = 1
	}
	q := NewQTable(m.Actions())
	sel := newSelector(cfg.Epsilon, cfg.rng())
	actions := m.Actions()
	rewards := make([]float64, 0, cfg.Episodes)

	for episode := 0; episode < cfg.Episodes; episode++ {
		state := m.Start()
		total := 0.0
		buffer := make([]frame, 0, n)
		action := sel.pick(q, state.Hash(), actions)

		done := false
		for steps := 0; !done && steps < cfg.MaxEpisodeSteps; steps++ {
			out, err := m.Step(state, action)
			if err != nil {
				return nil, err
			}
			total += out.Reward
			buffer = append(buffer, frame{state.Hash(), action.Hash(), out.Reward})

			var next core.Action
			if !out.Done {
				next = sel.pick(q, out.Next.Hash(), actions)
			}

			if len(buffer) >= n {
				g := 0.0
				for i := 0; i < n; i++ {
					g += math.Pow(cfg.Gamma, float64(i)) * buffer[i].reward
				}
				if !out.Done {
					g += math.Pow(cfg.Gamma, float64(n)) * q.Get(out.Next.Hash(), next.Hash())
				}
				oldest := buffer[0]
				old := q.Get(oldest.state, oldest.action)
				q.Set(oldest.state, oldest.action, old+cfg.Alpha*(g-old))
				buffer = buffer[1:]
			}

			state = out.Next
			action = next
			done = out.Done
		}

		// Drain: the episode is over, so the tail returns have no
		// bootstrap term.
		for len(buffer) > 0 {
			g := 0.0
			for i := range buffer {
				g += math.Pow(cfg.Gamma, float64(i)) * buffer[i].reward
			}
			oldest := buffer[0]
			old := q.Get(oldest.state, oldest.action)
			q.Set(oldest.state, oldest.action, old+cfg.Alpha*(g-old))
			buffer = buffer[1:]
		}

		rewards = append(rewards, total)
		cfg.report(episode, total)
	}

	return &Result{Q: q, Policy: derivePolicy(m, q), Rewards: rewards}, nil
}
