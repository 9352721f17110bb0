package schema

import (
	"fmt"
	"time"
)

// Config holds the final, validated runtime configuration shared by the
// trend and showcase pipelines.
type Config struct {
	RepoPath string // Absolute or relative path to the repository root

	Sources []MetricSource // Declared metric record files

	// Trend pipeline
	Interval time.Duration // Redraw cadence for the live chart
	ChartDir string        // Directory receiving one PNG per metric panel
	Once     bool          // Render a single frame and exit

	// Showcase pipeline
	ShowcaseMetric string // Source name used for curation (e.g. "ssim")
	ShowcaseDir    string // Directory receiving resized images and the index
	ReadmePath     string // Document carrying the sentinel markers
	ImageBase      string // URL prefix for image links in the marker block
	TargetWidth    int    // Published image width in pixels
	RunTests       string // Optional external test runner command

	// Export
	Output     OutputMode // Export format
	OutputFile string     // Export destination, empty means default name
}

// ConfigRawInput holds the raw, unvalidated configuration from all sources
// (file, env, flags). Viper unmarshals into this struct.
type ConfigRawInput struct {
	Sources        []MetricSource `mapstructure:"sources"`
	Interval       string         `mapstructure:"interval"`
	ChartDir       string         `mapstructure:"chart-dir"`
	Once           bool           `mapstructure:"once"`
	ShowcaseMetric string         `mapstructure:"showcase-metric"`
	ShowcaseDir    string         `mapstructure:"showcase-dir"`
	Readme         string         `mapstructure:"readme"`
	ImageBase      string         `mapstructure:"image-base"`
	Width          int            `mapstructure:"width"`
	RunTests       string         `mapstructure:"run-tests"`
	Output         string         `mapstructure:"output"`
	OutputFile     string         `mapstructure:"output-file"`

	// RepoPathStr comes from the positional argument, not Viper.
	RepoPathStr string `mapstructure:"-"`
}

// ProcessAndValidate populates cfg from raw input, applying defaults and
// rejecting values the pipelines cannot work with.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	cfg.RepoPath = input.RepoPathStr
	if cfg.RepoPath == "" {
		cfg.RepoPath = "."
	}

	cfg.Sources = input.Sources
	if len(cfg.Sources) == 0 {
		cfg.Sources = DefaultSources()
	}
	for i, src := range cfg.Sources {
		if src.Name == "" || src.Path == "" || src.Column == "" {
			return fmt.Errorf("source %d needs name, path and column", i)
		}
		if src.Threshold < 0 || src.Threshold > 1 {
			return fmt.Errorf("source %q threshold %.2f outside [0,1]", src.Name, src.Threshold)
		}
	}

	interval, err := time.ParseDuration(input.Interval)
	if err != nil {
		return fmt.Errorf("invalid interval %q: %w", input.Interval, err)
	}
	if interval <= 0 {
		return fmt.Errorf("interval must be positive, got %s", interval)
	}
	cfg.Interval = interval
	cfg.ChartDir = input.ChartDir
	cfg.Once = input.Once

	cfg.ShowcaseMetric = input.ShowcaseMetric
	if _, ok := cfg.SourceByName(cfg.ShowcaseMetric); !ok {
		return fmt.Errorf("showcase metric %q is not a declared source", cfg.ShowcaseMetric)
	}
	cfg.ShowcaseDir = input.ShowcaseDir
	cfg.ReadmePath = input.Readme
	cfg.ImageBase = input.ImageBase
	if input.Width <= 0 {
		return fmt.Errorf("width must be positive, got %d", input.Width)
	}
	cfg.TargetWidth = input.Width
	cfg.RunTests = input.RunTests

	switch OutputMode(input.Output) {
	case ParquetOut, CSVOut, JSONOut:
		cfg.Output = OutputMode(input.Output)
	default:
		return fmt.Errorf("unsupported output format %q", input.Output)
	}
	cfg.OutputFile = input.OutputFile

	return nil
}

// SourceByName returns the declared source with the given name.
func (c *Config) SourceByName(name string) (MetricSource, bool) {
	for _, src := range c.Sources {
		if src.Name == name {
			return src, true
		}
	}
	return MetricSource{}, false
}
