package cmd

import "github.com/spf13/cobra"

var (
	flags *Flags = DefaultFlags()

	savePath string
	layout   string
	seed     uint64

	gamma         float64
	theta         float64
	truncate      int
	maxIterations int

	alpha           float64
	tdGamma         float64
	epsilon         float64
	episodes        int
	nSteps          int
	maxEpisodeSteps int
)

func AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&savePath, "save-path", flags.SavePath, "Path to save results")
	cmd.PersistentFlags().StringVar(&layout, "layout", flags.Layout, "Named grid layout to use")
	cmd.PersistentFlags().Uint64Var(&seed, "seed", flags.Seed, "Random seed (0 seeds from the clock)")

	cmd.PersistentFlags().Float64Var(&gamma, "gamma", flags.DPFlags.Gamma, "Discount factor for the DP solvers")
	cmd.PersistentFlags().Float64Var(&theta, "theta", flags.Theta, "Convergence threshold for the DP solvers")
	cmd.PersistentFlags().IntVar(&truncate, "truncate", flags.Truncate, "Evaluation sweeps per truncated policy iteration")
	cmd.PersistentFlags().IntVar(&maxIterations, "max-iterations", flags.MaxIterations, "Iteration cap before giving up on convergence")

	cmd.PersistentFlags().Float64Var(&alpha, "alpha", flags.Alpha, "Learning rate for the TD learners")
	cmd.PersistentFlags().Float64Var(&tdGamma, "td-gamma", flags.TDGamma, "Discount factor for the TD learners")
	cmd.PersistentFlags().Float64Var(&epsilon, "epsilon", flags.Epsilon, "Exploration rate for the TD learners")
	cmd.PersistentFlags().IntVar(&episodes, "episodes", flags.Episodes, "Number of training episodes")
	cmd.PersistentFlags().IntVar(&nSteps, "n-steps", flags.NSteps, "Lookahead horizon for n-step SARSA")
	cmd.PersistentFlags().IntVar(&maxEpisodeSteps, "max-episode-steps", flags.MaxEpisodeSteps, "Per-episode step cap for n-step SARSA")
}

func UpdateFlags() {
	flags.SavePath = savePath
	flags.Layout = layout
	flags.Seed = seed

	flags.DPFlags.Gamma = gamma
	flags.Theta = theta
	flags.Truncate = truncate
	flags.MaxIterations = maxIterations

	flags.Alpha = alpha
	flags.TDGamma = tdGamma
	flags.Epsilon = epsilon
	flags.Episodes = episodes
	flags.NSteps = nSteps
	flags.MaxEpisodeSteps = maxEpisodeSteps
}
