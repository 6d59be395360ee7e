package cmd

import "github.com/spf13/cobra"

func RootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tabular",
		Short: "Tabular MDP solvers and TD learners for grid worlds",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			UpdateFlags()
			flags.Record()
		},
	}
	AddFlags(cmd)

	cmd.AddCommand(
		SolveCommand(),
		TrainCommand(),
	)

	return cmd
}
