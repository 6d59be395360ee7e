package core

// ValueFunction maps state hashes to expected discounted return.
type ValueFunction map[string]float64

func (v ValueFunction) Copy() ValueFunction {
	out := make(ValueFunction, len(v))
	for s, val := range v {
		out[s] = val
	}
	return out
}

// ZeroValues builds an all-zero value function over the model's states.
func ZeroValues(m Model) ValueFunction {
	v := make(ValueFunction)
	for _, s := range m.States() {
		v[s.Hash()] = 0
	}
	return v
}

// Policy maps non-goal state hashes to a single action. The goal state
// has no entry.
type Policy map[string]Action

func (p Policy) Copy() Policy {
	out := make(Policy, len(p))
	for s, a := range p {
		out[s] = a
	}
	return out
}
