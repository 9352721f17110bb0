package cmd

import (
	"github.com/spf13/cobra"

	"github.com/renderlab/pagetrend/core"
	"github.com/renderlab/pagetrend/internal"
	"github.com/renderlab/pagetrend/internal/outwriter"
	"github.com/renderlab/pagetrend/internal/parquet"
	"github.com/renderlab/pagetrend/schema"
)

// exportCmd merges every available metric record file into one sample list
// for offline analysis.
var exportCmd = &cobra.Command{
	Use:   "export [repo-path]",
	Short: "Export all metric samples as parquet, csv or json",
	Long: `Merge every available metric record file into a single sample list and
write it in a columnar or row format for offline analysis.

Examples:
  # Parquet (default), to samples.parquet
  pagetrend export

  # CSV to stdout
  pagetrend export --output csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		panels, err := core.LoadPanels(cfg.RepoPath, cfg.Sources)
		if err != nil {
			internal.LogFatal("Cannot load metric records", err)
		}
		samples := core.MergeSamples(panels)

		switch cfg.Output {
		case schema.CSVOut:
			err = outwriter.WriteSamplesCSV(samples, cfg.OutputFile)
		case schema.JSONOut:
			err = outwriter.WriteSamplesJSON(samples, cfg.OutputFile)
		default:
			path := cfg.OutputFile
			if path == "" {
				path = "samples.parquet"
			}
			err = parquet.WriteSamplesParquet(samples, path)
		}
		if err != nil {
			internal.LogFatal("Cannot export samples", err)
		}
	},
}
