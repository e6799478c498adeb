package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"time-tracker/client/core"
)

func NewHealthCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the server and its database respond",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := opts.tracker.Health(cmd.Context())
			if err != nil && !errors.Is(err, core.ErrUnavailable) {
				return err
			}
			if h.Status != "" {
				fmt.Fprint(cmd.OutOrStdout(), renderHealth(h))
			}
			return err
		},
	}
}
