package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/renderlab/pagetrend/schema"
)

// init defines all command flags and binds them into Viper so that config
// file, environment and flags resolve through one lookup.
func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	rootCmd.PersistentFlags().Bool("color", true, "Colorize terminal output")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding root flags: %v\n", err)
		os.Exit(1)
	}

	trendCmd.Flags().String("interval", schema.DefaultInterval.String(), "Redraw interval, e.g. 3s or 1m")
	trendCmd.Flags().String("chart-dir", schema.CaseOutputDir, "Directory receiving the panel PNGs")
	trendCmd.Flags().Bool("once", false, "Render a single frame and exit")
	if err := viper.BindPFlags(trendCmd.Flags()); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding trend flags: %v\n", err)
		os.Exit(1)
	}

	showcaseCmd.Flags().String("showcase-metric", "ssim", "Metric source used to pick passing cases")
	showcaseCmd.Flags().String("showcase-dir", "showcase", "Directory receiving resized images and the index")
	showcaseCmd.Flags().String("readme", "README.md", "Document carrying the showcase markers")
	showcaseCmd.Flags().String("image-base", "showcase", "URL prefix for image links in the marker block")
	showcaseCmd.Flags().Int("width", schema.DefaultTargetWidth, "Published image width in pixels")
	showcaseCmd.Flags().String("run-tests", "", "Command to run the test suite first (failures only warn)")
	if err := viper.BindPFlags(showcaseCmd.Flags()); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding showcase flags: %v\n", err)
		os.Exit(1)
	}

	exportCmd.Flags().String("output", string(schema.ParquetOut), "Export format: parquet or csv or json")
	exportCmd.Flags().String("output-file", "", "Optional path to write export to")
	if err := viper.BindPFlags(exportCmd.Flags()); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding export flags: %v\n", err)
		os.Exit(1)
	}

	rootCmd.AddCommand(trendCmd)
	rootCmd.AddCommand(showcaseCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
}
