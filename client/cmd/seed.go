package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"time-tracker/client/core"
)

type sampleEntry struct {
	category    string
	minutes     string
	description string
	daysAgo     int
}

var sampleEntries = []sampleEntry{
	{"Study", "60", "Math revision", 1},
	{"Relax", "30", "Meditation", 0},
	{"Code", "90", "React project", 2},
	{"Study", "45", "Reading articles", 0},
	{"Sport", "55", "Jogging", 5},
}

func NewSeedCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Add a small sample data set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := opts.deps.Now()

			for _, s := range sampleEntries {
				e, err := opts.tracker.AddEntry(cmd.Context(), core.EntryForm{
					Category:    s.category,
					Minutes:     s.minutes,
					Description: s.description,
					Timestamp:   now.AddDate(0, 0, -s.daysAgo).Format(time.RFC3339),
				})
				if err != nil {
					return fmt.Errorf("seed %s: %w", s.category, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", describeEntry(e))
			}
			return nil
		},
	}
}
