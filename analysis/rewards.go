// Package analysis collects diagnostic datasets from solver and
// learner runs: per-episode learning curves and DP value histories.
// Nothing here feeds back into the algorithms.
package analysis

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/gridrl/tabular/util"
)

// RewardAnalyzer accumulates the per-episode reward history of one
// training run. Its Analyze method matches the learners' progress
// callback signature, so it plugs straight into td.Config.OnEpisode.
type RewardAnalyzer struct {
	rewards []float64
}

func NewRewardAnalyzer() *RewardAnalyzer {
	return &RewardAnalyzer{rewards: make([]float64, 0)}
}

func (a *RewardAnalyzer) Analyze(_ int, totalReward float64) {
	a.rewards = append(a.rewards, totalReward)
}

func (a *RewardAnalyzer) Rewards() []float64 {
	return util.CopyFloatSlice(a.rewards)
}

func (a *RewardAnalyzer) Reset() {
	a.rewards = a.rewards[:0]
}

// Smoothed returns the trailing moving average of the curve over the
// given window. Early entries average the shorter prefix.
func (a *RewardAnalyzer) Smoothed(window int) []float64 {
	if window < 1 {
		window = 1
	}
	out := make([]float64, len(a.rewards))
	for i := range a.rewards {
		lo := i + 1 - window
		if lo < 0 {
			lo = 0
		}
		out[i] = stat.Mean(a.rewards[lo:i+1], nil)
	}
	return out
}

// Summary condenses a reward curve for terminal reporting.
type Summary struct {
	Episodes int
	Mean     float64
	Best     float64
	Worst    float64
	TailMean float64
	TailSpan int
}

// Summarize computes curve statistics; tail is the number of final
// episodes used for TailMean (clamped to the curve length).
func (a *RewardAnalyzer) Summarize(tail int) Summary {
	if len(a.rewards) == 0 {
		return Summary{}
	}
	if tail < 1 || tail > len(a.rewards) {
		tail = len(a.rewards)
	}
	return Summary{
		Episodes: len(a.rewards),
		Mean:     stat.Mean(a.rewards, nil),
		Best:     floats.Max(a.rewards),
		Worst:    floats.Min(a.rewards),
		TailMean: stat.Mean(a.rewards[len(a.rewards)-tail:], nil),
		TailSpan: tail,
	}
}

// curveRecord is the serialized form of one experiment's curve.
type curveRecord struct {
	Rewards  []float64 `json:"rewards"`
	Smoothed []float64 `json:"smoothed"`
}

// CurveComparator writes the learning curves of several named
// experiments side by side, smoothed with a shared window, so the
// on-policy/off-policy divergence on the cliff walk can be plotted
// straight from the file.
type CurveComparator struct {
	savePath string
	window   int
}

func NewCurveComparator(savePath string, window int) *CurveComparator {
	return &CurveComparator{savePath: savePath, window: window}
}

func (c *CurveComparator) Compare(names []string, analyzers []*RewardAnalyzer) error {
	out := make(map[string]curveRecord, len(names))
	for i, name := range names {
		out[name] = curveRecord{
			Rewards:  analyzers[i].Rewards(),
			Smoothed: analyzers[i].Smoothed(c.window),
		}
	}
	return util.SaveJson(c.savePath, out)
}
