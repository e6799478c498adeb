package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"time-tracker/client/config"
	"time-tracker/client/core"
)

// RootOptions holds global flags and what PersistentPreRunE builds from them.
type RootOptions struct {
	Server     string
	ConfigPath string
	Verbose    bool

	deps    *Deps
	cfg     config.Config
	tracker core.Tracker
}

func NewRootCommand(d *Deps) *cobra.Command {
	opts := &RootOptions{deps: d}

	cmd := &cobra.Command{
		Use:   "timetrack",
		Short: "Personal time tracker",
		Long: `timetrack logs minutes spent per category and shows weekly and monthly totals.

Run without a subcommand to open the interactive view.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.connect()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return d.RunTUI(opts.tracker, opts.cfg)
		},
	}

	cmd.SetOut(d.Stdout)
	cmd.SetErr(d.Stderr)
	cmd.SetIn(d.Stdin)

	cmd.PersistentFlags().StringVar(&opts.Server, "server", "", "server URL (overrides config and "+config.ServerEnv+")")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default is the user config dir)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log requests to stderr")

	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewEditCommand(opts))
	cmd.AddCommand(NewPurgeCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))
	cmd.AddCommand(NewHealthCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))

	return cmd
}

func (o *RootOptions) connect() error {
	path := o.ConfigPath
	if path == "" {
		p, err := o.deps.ConfigPath()
		if err != nil {
			return fmt.Errorf("locate config: %w", err)
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if o.Server != "" {
		cfg.ServerURL = o.Server
	}
	o.cfg = cfg

	tr, err := o.deps.NewTracker(cfg, o.logger())
	if err != nil {
		return err
	}
	o.tracker = tr
	return nil
}

func (o *RootOptions) logger() *slog.Logger {
	if !o.Verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(o.deps.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
