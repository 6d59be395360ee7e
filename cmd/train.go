package cmd

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/spf13/cobra"
	erand "golang.org/x/exp/rand"

	"github.com/gridrl/tabular/analysis"
	"github.com/gridrl/tabular/core"
	"github.com/gridrl/tabular/grid"
	"github.com/gridrl/tabular/td"
	"github.com/gridrl/tabular/util"
)

func TrainCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Run the TD learners on a grid layout",
		RunE: func(cmd *cobra.Command, args []string) error {
			name := flags.Layout
			if name == "" {
				name = "cliffwalk3"
			}
			layout, err := grid.Layout(name)
			if err != nil {
				return err
			}
			world, err := grid.NewWorld(layout, grid.DefaultConfig())
			if err != nil {
				return err
			}

			fmt.Printf("Layout %s:\n%s\n", name, world.Render())

			learners := []struct {
				name  string
				train func(core.Model, td.Config) (*td.Result, error)
			}{
				{"sarsa", td.SARSA},
				{"expected-sarsa", td.ExpectedSARSA},
				{"n-step-sarsa", td.NStepSARSA},
				{"q-learning", td.QLearning},
			}

			printer := util.NewTerminalPrinter(100 * time.Millisecond)
			outputs := make([]*util.Output, len(learners))
			for i := range learners {
				outputs[i] = printer.NewOutput()
			}
			printer.Start(context.Background())

			names := make([]string, 0, len(learners))
			analyzers := make([]*analysis.RewardAnalyzer, 0, len(learners))
			results := make([]*td.Result, 0, len(learners))
			for i, l := range learners {
				curve := analysis.NewRewardAnalyzer()
				cfg := td.Config{
					Alpha:           flags.Alpha,
					Gamma:           flags.TDGamma,
					Epsilon:         flags.Epsilon,
					Episodes:        flags.Episodes,
					NSteps:          flags.NSteps,
					MaxEpisodeSteps: flags.MaxEpisodeSteps,
				}
				if flags.Seed != 0 {
					cfg.Rand = erand.New(erand.NewSource(flags.Seed + uint64(i)))
				}
				out := outputs[i]
				learnerName := l.name
				cfg.OnEpisode = func(episode int, totalReward float64) {
					curve.Analyze(episode, totalReward)
					out.TrySet(fmt.Sprintf(
						"%s: episode %d/%d, reward %.1f",
						learnerName, episode+1, flags.Episodes, totalReward,
					))
				}

				result, err := l.train(world, cfg)
				if err != nil {
					printer.Stop()
					return fmt.Errorf("%s: %w", l.name, err)
				}
				summary := curve.Summarize(100)
				out.Set(fmt.Sprintf(
					"%s: done, mean reward %.1f (last %d: %.1f)",
					learnerName, summary.Mean, summary.TailSpan, summary.TailMean,
				))

				names = append(names, l.name)
				analyzers = append(analyzers, curve)
				results = append(results, result)
			}
			printer.Stop()

			for i, l := range learners {
				fmt.Printf("Policy found by %s:\n%s\n", l.name, world.RenderPolicy(results[i].Policy))
				qPath := path.Join(flags.SavePath, l.name+"_qtable.jsonl")
				if err := results[i].Q.Record(qPath); err != nil {
					return err
				}
			}

			comparator := analysis.NewCurveComparator(path.Join(flags.SavePath, "learning_curves.json"), 10)
			return comparator.Compare(names, analyzers)
		},
	}
	return cmd
}
