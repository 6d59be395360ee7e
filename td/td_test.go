package td

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	erand "golang.org/x/exp/rand"

	"github.com/gridrl/tabular/core"
	"github.com/gridrl/tabular/grid"
)

func seeded(seed uint64) Config {
	cfg := DefaultConfig()
	cfg.Rand = erand.New(erand.NewSource(seed))
	return cfg
}

// rollout follows a policy greedily from the start.
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

func tailMean(rewards []float64, n int) float64 {
	if n > len(rewards) {
		n = len(rewards)
	}
	sum := 0.0
	for _, r := range rewards[len(rewards)-n:] {
		sum += r
	}
	return sum / float64(n)
}

func TestQLearning(t *testing.T) {
	Convey("Q-learning on a small cliff walk", t, func() {
		w := grid.MustWorld(grid.CliffWalk1, grid.DefaultConfig())
		cfg := seeded(1)
		cfg.Episodes = 1000

		result, err := QLearning(w, cfg)
		So(err, ShouldBeNil)

		Convey("One reward is recorded per episode", func() {
			So(len(result.Rewards), ShouldEqual, cfg.Episodes)
		})

		Convey("The goal row is never trained away from zero", func() {
			for _, a := range w.Actions() {
				So(result.Q.Get(w.Goal().Hash(), a.Hash()), ShouldEqual, 0)
			}
		})

		Convey("The greedy policy reaches the goal", func() {
			reached, _ := rollout(w, result.Policy, 100)
			So(reached, ShouldBeTrue)
		})

		Convey("The derived policy has no entry for the goal", func() {
			_, ok := result.Policy[w.Goal().Hash()]
			So(ok, ShouldBeFalse)
		})
	})
}

func TestSARSAAndExpectedSARSA(t *testing.T) {
	Convey("On-policy learners on a small cliff walk", t, func() {
		w := grid.MustWorld(grid.CliffWalk1, grid.DefaultConfig())

		for name, train := range map[string]func(core.Model, Config) (*Result, error){
			"SARSA":          SARSA,
			"Expected SARSA": ExpectedSARSA,
		} {
			Convey(name+" learns a policy that reaches the goal", func() {
				cfg := seeded(2)
				cfg.Episodes = 1000
				result, err := train(w, cfg)
				So(err, ShouldBeNil)
				reached, _ := rollout(w, result.Policy, 100)
				So(reached, ShouldBeTrue)
				for _, a := range w.Actions() {
					So(result.Q.Get(w.Goal().Hash(), a.Hash()), ShouldEqual, 0)
				}
			})
		}
	})
}

func TestCliffWalkDivergence(t *testing.T) {
	Convey("On the classic 4x12 cliff walk", t, func() {
		w := grid.MustWorld(grid.CliffWalk3, grid.DefaultConfig())

		base := Config{
			Alpha:           0.5,
			Gamma:           1.0,
			Epsilon:         0.1,
			Episodes:        3000,
			NSteps:          5,
			MaxEpisodeSteps: 1000,
		}

		qlCfg := base
		qlCfg.Rand = erand.New(erand.NewSource(10))
		ql, err := QLearning(w, qlCfg)
		So(err, ShouldBeNil)

		sarsaCfg := base
		sarsaCfg.Rand = erand.New(erand.NewSource(11))
		sarsa, err := SARSA(w, sarsaCfg)
		So(err, ShouldBeNil)

		esCfg := base
		esCfg.Rand = erand.New(erand.NewSource(12))
		es, err := ExpectedSARSA(w, esCfg)
		So(err, ShouldBeNil)

		Convey("Q-learning takes the optimal risky path along the cliff edge", func() {
			reached, total := rollout(w, ql.Policy, 300)
			So(reached, ShouldBeTrue)
			So(total, ShouldEqual, -12)
		})

		Convey("SARSA and Expected SARSA settle on longer, safer paths", func() {
			reachedS, totalS := rollout(w, sarsa.Policy, 300)
			So(reachedS, ShouldBeTrue)
			So(totalS, ShouldBeLessThan, -12)

			reachedE, totalE := rollout(w, es.Policy, 300)
			So(reachedE, ShouldBeTrue)
			So(totalE, ShouldBeLessThan, -12)
		})

		Convey("On-policy training rewards beat off-policy ones under exploration", func() {
			So(tailMean(sarsa.Rewards, 500), ShouldBeGreaterThan, tailMean(ql.Rewards, 500))
			So(tailMean(es.Rewards, 500), ShouldBeGreaterThan, tailMean(ql.Rewards, 500))
		})
	})
}
