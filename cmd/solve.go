package cmd

import (
	"fmt"
	"path"

	"github.com/spf13/cobra"
	erand "golang.org/x/exp/rand"

	"github.com/gridrl/tabular/analysis"
	"github.com/gridrl/tabular/core"
	"github.com/gridrl/tabular/dp"
	"github.com/gridrl/tabular/grid"
)

func SolveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Run the dynamic-programming solvers on a grid layout",
		RunE: func(cmd *cobra.Command, args []string) error {
			name := flags.Layout
			if name == "" {
				name = "maze1"
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

			cfg := dp.Config{
				Gamma:         flags.DPFlags.Gamma,
				Theta:         flags.Theta,
				MaxIterations: flags.MaxIterations,
				Truncate:      flags.Truncate,
			}
			if flags.Seed != 0 {
				cfg.Rand = erand.New(erand.NewSource(flags.Seed))
			}

			solvers := []struct {
				name  string
				solve func(core.Model, dp.Config) (*dp.Result, error)
			}{
				{"value-iteration", dp.ValueIteration},
				{"policy-iteration", dp.PolicyIteration},
				{"truncated-policy-iteration", dp.TruncatedPolicyIteration},
			}

			curves := make(map[string][]float64, len(solvers))
			for _, s := range solvers {
				result, err := s.solve(world, cfg)
				if err != nil {
					return fmt.Errorf("%s: %w", s.name, err)
				}
				fmt.Printf("%s converged after %d iterations\n", s.name, result.Iterations)
				fmt.Printf("Policy:\n%s", world.RenderPolicy(result.Policy))
				fmt.Printf("Values:\n%s\n", world.RenderValues(result.Values))
				curves[s.name] = analysis.StartValueSeries(result.History, world.Start().Hash())
			}

			return analysis.SaveConvergenceCurves(path.Join(flags.SavePath, "dp_convergence.json"), curves)
		},
	}
	return cmd
}
