package dp

import (
	"errors"
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	erand "golang.org/x/exp/rand"

	"github.com/gridrl/tabular/core"
	"github.com/gridrl/tabular/grid"
)

func testConfig(seed uint64) Config {
	cfg := DefaultConfig()
	cfg.Rand = erand.New(erand.NewSource(seed))
	return cfg
}

// rollout follows a policy greedily from the start and returns whether
// the goal was reached within the step budget.
func rollout(m core.Model, policy core.Policy, budget int) (bool, float64) {
	state := m.Start()
	total := 0.0
	for i := 0; i < budget; i++ {
		a, ok := policy[state.Hash()]
		if !ok {
			return false, total
		}
		out, err := m.Step(state, a)
		if err != nil {
			return false, total
		}
		total += out.Reward
		state = out.Next
		if out.Done {
			return true, total
		}
	}
	return false, total
}

func TestValueIteration(t *testing.T) {
	Convey("Value iteration on a small maze", t, func() {
		w := grid.MustWorld(grid.Maze1, grid.DefaultConfig())
		result, err := ValueIteration(w, testConfig(1))
		So(err, ShouldBeNil)

		Convey("The goal keeps value zero", func() {
			So(result.Values[w.Goal().Hash()], ShouldEqual, 0)
			for _, snapshot := range result.History {
				So(snapshot[w.Goal().Hash()], ShouldEqual, 0)
			}
		})

		Convey("The history starts with the all-zero table and grows per sweep", func() {
			So(len(result.History), ShouldEqual, result.Iterations+1)
			for _, val := range result.History[0] {
				So(val, ShouldEqual, 0)
			}
		})

		Convey("The greedy policy reaches the goal", func() {
			reached, _ := rollout(w, result.Policy, 100)
			So(reached, ShouldBeTrue)
		})

		Convey("Tie-breaking is deterministic across runs", func() {
			again, err := ValueIteration(w, testConfig(99))
			So(err, ShouldBeNil)
			So(len(again.Policy), ShouldEqual, len(result.Policy))
			for s, a := range result.Policy {
				So(again.Policy[s].Hash(), ShouldEqual, a.Hash())
			}
		})
	})

	Convey("An exhausted iteration cap surfaces as DidNotConverge", t, func() {
		w := grid.MustWorld(grid.Maze1, grid.DefaultConfig())
		cfg := testConfig(1)
		cfg.MaxIterations = 1
		result, err := ValueIteration(w, cfg)
		So(errors.Is(err, ErrDidNotConverge), ShouldBeTrue)
		So(result, ShouldNotBeNil)
	})
}

func TestSolverAgreement(t *testing.T) {
	Convey("Given a deterministic maze and a shared discount", t, func() {
		w := grid.MustWorld(grid.Maze1, grid.DefaultConfig())

		vi, err := ValueIteration(w, testConfig(1))
		So(err, ShouldBeNil)
		pi, err := PolicyIteration(w, testConfig(2))
		So(err, ShouldBeNil)

		Convey("Value iteration and policy iteration find the same values", func() {
			for _, s := range w.States() {
				So(math.Abs(vi.Values[s.Hash()]-pi.Values[s.Hash()]), ShouldBeLessThan, 1e-4)
			}
		})

		Convey("Both policies reach the goal with the same return", func() {
			reachedVI, totalVI := rollout(w, vi.Policy, 100)
			reachedPI, totalPI := rollout(w, pi.Policy, 100)
			So(reachedVI, ShouldBeTrue)
			So(reachedPI, ShouldBeTrue)
			So(totalVI, ShouldEqual, totalPI)
		})

		Convey("Truncated policy iteration with a large sweep budget matches", func() {
			cfg := testConfig(3)
			cfg.Truncate = 200
			tpi, err := TruncatedPolicyIteration(w, cfg)
			So(err, ShouldBeNil)
			for _, s := range w.States() {
				So(math.Abs(vi.Values[s.Hash()]-tpi.Values[s.Hash()]), ShouldBeLessThan, 1e-3)
			}
			reached, total := rollout(w, tpi.Policy, 100)
			So(reached, ShouldBeTrue)
			reachedVI, totalVI := rollout(w, vi.Policy, 100)
			So(reachedVI, ShouldBeTrue)
			So(total, ShouldEqual, totalVI)
		})

		Convey("Policy iteration histories record one snapshot per evaluation phase", func() {
			So(len(pi.History), ShouldEqual, pi.Iterations+1)
		})
	})
}
