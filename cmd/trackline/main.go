package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"trackline/internal/bootstrap"
	"trackline/internal/platform/config"
	"trackline/internal/platform/logging"
)

type rootFlags struct {
	workDir string
	project string
	seed    uint64
	verbose bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "trackline",
		Short:         "Multi-track timeline editor",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.workDir, "workdir", ".", "directory holding .trackline state and .env")
	root.PersistentFlags().StringVar(&flags.project, "project", "", "YAML project file (demo project when empty)")
	root.PersistentFlags().Uint64Var(&flags.seed, "seed", 1, "waveform seed for the demo project")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "also log to stderr")

	root.AddCommand(newTUICmd(flags))
	root.AddCommand(newTracksCmd(flags))
	root.AddCommand(newMarkersCmd(flags))
	root.AddCommand(newMoveCmd(flags))
	root.AddCommand(newLocateCmd(flags))
	root.AddCommand(newHistoryCmd(flags))
	return root
}

// loadApp wires the application. The returned func flushes the logger and
// closes the journal.
func loadApp(ctx context.Context, flags *rootFlags, console bool) (*bootstrap.App, func(), error) {
	cfg, err := config.Load(flags.workDir)
	if err != nil {
		return nil, nil, err
	}
	log, err := logging.New(cfg.Log, logging.Options{Console: console})
	if err != nil {
		return nil, nil, err
	}
	app, err := bootstrap.New(ctx, cfg, bootstrap.Options{ProjectPath: flags.project, Seed: flags.seed}, log)
	if err != nil {
		_ = log.Sync()
		return nil, nil, err
	}
	return app, func() {
		if err := app.Close(); err != nil {
			log.Warn("close app", zap.Error(err))
		}
		_ = log.Sync()
	}, nil
}

func newTUICmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the timeline editor",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, done, err := loadApp(cmd.Context(), flags, false)
			if err != nil {
				return err
			}
			defer done()
			return bootstrap.RunTUI(cmd.Context(), app)
		},
	}
}

func newTracksCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tracks",
		Short: "List tracks and their clips",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, done, err := loadApp(cmd.Context(), flags, flags.verbose)
			if err != nil {
				return err
			}
			defer done()
			project, err := app.TimelineCLI.Tracks(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%s\t%.1fs\t%gfps\t%dx%d\n", project.Name, project.Duration, project.FrameRate, project.Width, project.Height)
			for _, t := range project.Tracks {
				_, _ = fmt.Fprintf(out, "%s %s\t%s\t%s\theight=%g\n", t.Icon, t.ID, t.Type, t.Name, t.Height)
				for _, c := range t.Clips {
					_, _ = fmt.Fprintf(out, "  %s %s\t%s\t%s\t%.2f+%.2f\n", c.Icon, c.ID, c.Type, c.Name, c.StartTime, c.Duration)
				}
			}
			return nil
		},
	}
}

func newMarkersCmd(flags *rootFlags) *cobra.Command {
	var zoom, duration float64
	cmd := &cobra.Command{
		Use:   "markers",
		Short: "Print the ruler markers for a zoom level",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, done, err := loadApp(cmd.Context(), flags, flags.verbose)
			if err != nil {
				return err
			}
			defer done()
			if duration <= 0 {
				project, err := app.TimelineCLI.Tracks(cmd.Context())
				if err != nil {
					return err
				}
				duration = project.Duration
			}
			state, markers := app.ViewportCLI.Markers(duration, zoom)
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "zoom %d%% (%g px/s)\n", state.ZoomPercent, state.PixelsPerSecond)
			for _, m := range markers {
				label := "-"
				if m.IsMajor {
					label = m.Label
				}
				_, _ = fmt.Fprintf(out, "%.3f\t%.1fpx\t%s\n", m.Time, m.X, label)
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&zoom, "zoom", 1.0, "zoom factor (clamped to the configured bounds)")
	cmd.Flags().Float64Var(&duration, "duration", 0, "ruler length in seconds (project duration when 0)")
	return cmd
}

func newMoveCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "move <clip-id> <track-id> <start-seconds>",
		Short: "Move a clip to a track and start time",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("start time %q: %w", args[2], err)
			}
			app, done, err := loadApp(cmd.Context(), flags, flags.verbose)
			if err != nil {
				return err
			}
			defer done()
			out, err := app.TimelineCLI.Move(cmd.Context(), args[0], args[1], start)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "moved %s: %s@%.2f -> %s@%.2f\n",
				out.ClipID, out.FromTrackID, out.FromStart, out.ToTrackID, out.StartTime)
			return nil
		},
	}
}

func newLocateCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "locate <y-pixels>",
		Short: "Hit-test a vertical offset against the track stack",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			y, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("offset %q: %w", args[0], err)
			}
			app, done, err := loadApp(cmd.Context(), flags, flags.verbose)
			if err != nil {
				return err
			}
			defer done()
			loc, top, err := app.TimelineCLI.Locate(cmd.Context(), y)
			if err != nil {
				return err
			}
			if !loc.Found {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no track (ruler band)")
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\ttop=%gpx\n", loc.TrackID, top)
			return nil
		},
	}
}

func newHistoryCmd(flags *rootFlags) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently journaled clip moves",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, done, err := loadApp(cmd.Context(), flags, flags.verbose)
			if err != nil {
				return err
			}
			defer done()
			records, err := app.TimelineCLI.History(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no moves")
				return nil
			}
			for _, r := range records {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s@%.2f -> %s@%.2f\t%s\n",
					r.MovedAt.Format("2006-01-02 15:04:05"), r.ClipID, r.FromTrackID, r.FromStart, r.ToTrackID, r.ToStart, r.ID)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum records (0 for all)")
	return cmd
}
