package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewStatsCommand(opts *RootOptions) *cobra.Command {
	var copyOut bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show hours per category for this week and this month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := opts.tracker.Stats(cmd.Context())
			if err != nil {
				return err
			}

			text := renderStats(st, opts.deps.Location)
			fmt.Fprint(cmd.OutOrStdout(), text)

			if copyOut {
				if err := opts.deps.Copy(text); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not copy to clipboard: %v\n", err)
				} else {
					fmt.Fprintln(cmd.ErrOrStderr(), "Stats copied to clipboard")
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&copyOut, "copy", false, "also copy the output to the clipboard")

	return cmd
}
