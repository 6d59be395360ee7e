package analysis

import (
	"github.com/gridrl/tabular/core"
	"github.com/gridrl/tabular/util"
)

// StartValueSeries projects a DP value-history onto one state, usually
// the start state, giving the scalar convergence curve of a solver.
func StartValueSeries(history []core.ValueFunction, state string) []float64 {
	out := make([]float64, len(history))
	for i, snapshot := range history {
		out[i] = snapshot[state]
	}
	return out
}

// SaveConvergenceCurves writes the per-solver start-state series.
func SaveConvergenceCurves(path string, curves map[string][]float64) error {
	return util.SaveJson(path, curves)
}
