package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"time-tracker/client/core"
)

func NewAddCommand(opts *RootOptions) *cobra.Command {
	var form core.EntryForm

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log minutes for a category",
		Example: `  timetrack add -c Study -m 60 -d "Math revision"
  timetrack add -c Sport -m 55 --at 2026-10-12T07:30`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := form.Validate(); err != nil {
				return err
			}
			e, err := opts.tracker.AddEntry(cmd.Context(), form)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", describeEntry(e))
			return nil
		},
	}

	cmd.Flags().StringVarP(&form.Category, "category", "c", "", "category, e.g. Study")
	cmd.Flags().StringVarP(&form.Minutes, "minutes", "m", "", "minutes spent")
	cmd.Flags().StringVarP(&form.Description, "description", "d", "", "optional description")
	cmd.Flags().StringVar(&form.Timestamp, "at", "", "when it happened (RFC 3339 or YYYY-MM-DDTHH:MM), default now")

	return cmd
}

func NewListCommand(opts *RootOptions) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entries, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := opts.tracker.ListEntries(cmd.Context(), search)
			if err != nil {
				return err
			}
			writeEntries(cmd.OutOrStdout(), entries, opts.deps.Location)
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "only entries whose category or description contains this text")

	return cmd
}

func NewEditCommand(opts *RootOptions) *cobra.Command {
	var category, minutes, description string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change the category, minutes or description of an entry",
		Long: `Edit overwrites category, minutes and description of one entry.
Flags that are not given keep the entry's current value. The timestamp never changes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid id %q", args[0])
			}

			current, err := opts.tracker.GetEntry(cmd.Context(), id)
			if err != nil {
				return err
			}

			form := core.FormFromEntry(current)
			flags := cmd.Flags()
			if flags.Changed("category") {
				form.Category = category
			}
			if flags.Changed("minutes") {
				form.Minutes = minutes
			}
			if flags.Changed("description") {
				form.Description = description
			}
			if err := form.Validate(); err != nil {
				return err
			}

			e, err := opts.tracker.UpdateEntry(cmd.Context(), id, form)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", describeEntry(e))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "new category")
	cmd.Flags().StringVarP(&minutes, "minutes", "m", "", "new minutes")
	cmd.Flags().StringVarP(&description, "description", "d", "", "new description (empty clears it)")

	return cmd
}
