package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/renderlab/pagetrend/core"
	"github.com/renderlab/pagetrend/internal"
)

// trendCmd runs the live trend chart session.
var trendCmd = &cobra.Command{
	Use:   "trend [repo-path]",
	Short: "Render a live-updating trend chart of similarity metrics against commit history",
	Long: `Render one chart panel per available metric, refreshed on a fixed interval.

Each refresh reloads the commit log and every metric record file from
scratch, recomputes the shared time axis, and redraws the panels with
commit annotations, so a running session reflects new commits and new
test runs as they happen.

Panels are written as <metric>_trend.png into the chart directory; keep
them open in any auto-reloading image viewer.

Examples:
  # Watch the current repository, redrawing every 3 seconds
  pagetrend trend

  # Render a single frame for CI artifacts
  pagetrend trend --once

  # Slower cadence, custom output directory
  pagetrend trend --interval 10s --chart-dir /tmp/charts ~/src/renderer`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		session := &core.TrendSession{Client: internal.NewLocalGitClient(), Cfg: cfg}
		if err := session.Run(ctx); err != nil {
			internal.LogFatal("Cannot run trend session", err)
		}
	},
}
