package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/memo/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	var (
		extraArgs string
		noRestore bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the configured command behind the cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := configPath(cmd)
			if err != nil {
				return err
			}

			opts := app.RunOptions{
				ConfigPath: path,
				NoRestore:  noRestore,
			}
			if cmd.Flags().Changed("extra-args") {
				opts.ExtraArgs = &extraArgs
			}

			return c.app.Run(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&extraArgs, "extra-args", "", "Override the configured extra arguments")
	cmd.Flags().BoolVar(&noRestore, "no-restore", false, "Skip cache restore, still save afterwards")

	return cmd
}
