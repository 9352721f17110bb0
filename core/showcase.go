package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/renderlab/pagetrend/internal"
	"github.com/renderlab/pagetrend/internal/imaging"
	"github.com/renderlab/pagetrend/schema"
)

// RunTestSuite invokes the external test runner before curation. Failures
// only warn: curation then proceeds with whatever output already exists.
func RunTestSuite(cfg *schema.Config) {
	if cfg.RunTests == "" {
		return
	}
	internal.LogInfo("Running tests: %s", cfg.RunTests)
	cmd := exec.Command("sh", "-c", cfg.RunTests)
	cmd.Dir = cfg.RepoPath
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		internal.LogWarn("tests reported failures, using existing output", err)
	}
}

// Curate selects the passing cases for the showcase metric, resizes each
// case's paired page images into the showcase directory, and returns the
// publishable rows ordered by case name. A case missing either image is
// skipped with a warning; it narrows the output but never fails the run.
func Curate(cfg *schema.Config) ([]schema.ShowcaseRow, error) {
	src, ok := cfg.SourceByName(cfg.ShowcaseMetric)
	if !ok {
		return nil, fmt.Errorf("unknown showcase metric %q", cfg.ShowcaseMetric)
	}

	series, err := LoadSeries(cfg.RepoPath, src)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", src.Path, schema.ErrNoMetricSources)
	}
	if err != nil {
		return nil, err
	}

	passing := SelectPassing(series, src.Threshold)
	internal.LogInfo("Passing cases (%s >= %.0f%%): %d", src.Name, src.Threshold*100, len(passing))

	showcaseDir := filepath.Join(cfg.RepoPath, cfg.ShowcaseDir)
	if err := os.MkdirAll(showcaseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", showcaseDir, err)
	}

	rows := make([]schema.ShowcaseRow, 0, len(passing))
	for _, cs := range passing {
		caseDir := filepath.Join(cfg.RepoPath, schema.CaseOutputDir, cs.Case)
		refSrc := filepath.Join(caseDir, filepath.FromSlash(schema.RefPageRel))
		genSrc := filepath.Join(caseDir, filepath.FromSlash(schema.GenPageRel))
		if !fileExists(refSrc) || !fileExists(genSrc) {
			internal.LogWarn(fmt.Sprintf("skipping %s", cs.Case), schema.ErrMissingArtifact)
			continue
		}

		row := schema.ShowcaseRow{
			Case:     cs.Case,
			Score:    cs.Score,
			RefImage: cs.Case + schema.RefSuffix,
			GenImage: cs.Case + schema.GenSuffix,
		}
		if err := imaging.ResizeFile(refSrc, filepath.Join(showcaseDir, row.RefImage), cfg.TargetWidth); err != nil {
			return nil, err
		}
		if err := imaging.ResizeFile(genSrc, filepath.Join(showcaseDir, row.GenImage), cfg.TargetWidth); err != nil {
			return nil, err
		}
		internal.LogInfo("  Saved %s and %s", row.RefImage, row.GenImage)
		rows = append(rows, row)
	}
	return rows, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
