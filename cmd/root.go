package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "bt",
		Short:         "billion-tapper (bt): run the billion game bot for several accounts",
		Long:          "bt keeps a set of game accounts alive: it authenticates each one through its stored handshake, reports the remaining balance and completes reward tasks with randomized pacing.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newAccountCmd(app),
		newAuthCmd(app),
		newProxyCmd(app),
		newRunCmd(app),
	)

	return rootCmd
}
