// Package cmd wires the pagetrend commands: the live trend chart, the
// showcase curation run, and the sample export.
package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/renderlab/pagetrend/schema"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// cfg will hold the validated, final configuration.
var cfg = &schema.Config{}

// input holds the raw, unvalidated configuration from all sources (file,
// env, flags). Viper will unmarshal into this struct.
var input = &schema.ConfigRawInput{}

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:                "pagetrend",
	Short:              "Track and publish visual-regression results for a document renderer.",
	Long:               `Pagetrend correlates per-case similarity metrics with commit history into a live trend chart, and curates passing cases into a published showcase.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".pagetrend") // Name of config file (without extension)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")     // Look in the current directory
		viper.AddConfigPath("$HOME") // Look in the home directory
	}

	viper.SetEnvPrefix("PAGETREND")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if !viper.GetBool("color") {
		color.NoColor = true
	}

	// Set defaults in Viper
	viper.SetDefault("interval", schema.DefaultInterval.String())
	viper.SetDefault("chart-dir", schema.CaseOutputDir)
	viper.SetDefault("once", false)
	viper.SetDefault("showcase-metric", "ssim")
	viper.SetDefault("showcase-dir", "showcase")
	viper.SetDefault("readme", "README.md")
	viper.SetDefault("image-base", "showcase")
	viper.SetDefault("width", schema.DefaultTargetWidth)
	viper.SetDefault("run-tests", "")
	viper.SetDefault("output", string(schema.ParquetOut))
	viper.SetDefault("output-file", "")
}

// sharedSetup unmarshals config and runs validation.
func sharedSetup(_ *cobra.Command, args []string) error {
	// 1. Read config file. This merges defaults, file, env, and flags.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Handle positional arguments (which Viper doesn't do).
	if len(args) == 1 {
		input.RepoPathStr = args[0]
	} else {
		input.RepoPathStr = "."
	}

	// 4. Run all validation and complex parsing.
	return schema.ProcessAndValidate(cfg, input)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
