package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/renderlab/pagetrend/core"
	"github.com/renderlab/pagetrend/internal"
	"github.com/renderlab/pagetrend/internal/publish"
)

// showcaseCmd runs the curation+publish pipeline.
var showcaseCmd = &cobra.Command{
	Use:   "showcase [repo-path]",
	Short: "Curate passing cases and publish their images into the documentation",
	Long: `Select every case whose best score meets its metric's pass bar, resize
the paired reference/generated page images to the published width, and
write them under the showcase directory.

Two documents are updated: the region between the showcase markers in the
root README is replaced with a generated comparison table, and a fresh
standalone index enumerating all published cases is written next to the
images. Re-running with unchanged results is a byte-identical no-op.

Examples:
  # Curate from the existing test output
  pagetrend showcase

  # Run the suite first; failures fall back to existing output
  pagetrend showcase --run-tests "cargo test -- --nocapture"

  # Publish smaller images into a different document
  pagetrend showcase --width 320 --readme docs/GALLERY.md`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		core.RunTestSuite(cfg)

		rows, err := core.Curate(cfg)
		if err != nil {
			internal.LogFatal("Cannot curate showcase", err)
		}

		src, _ := cfg.SourceByName(cfg.ShowcaseMetric)
		targets := []publish.Target{
			&publish.MarkerTarget{
				Path:      filepath.Join(cfg.RepoPath, cfg.ReadmePath),
				ImageBase: cfg.ImageBase,
				Metric:    cfg.ShowcaseMetric,
			},
			&publish.IndexTarget{
				Path:   filepath.Join(cfg.RepoPath, cfg.ShowcaseDir, "README.md"),
				Metric: cfg.ShowcaseMetric,
				Width:  cfg.TargetWidth,
			},
		}
		for _, target := range targets {
			if err := target.Publish(rows); err != nil {
				internal.LogFatal("Cannot publish showcase", err)
			}
		}

		if err := publish.WriteSummary(os.Stdout, rows, src.Threshold); err != nil {
			internal.LogFatal("Cannot print summary", err)
		}
	},
}
