package core

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/renderlab/pagetrend/internal"
	"github.com/renderlab/pagetrend/schema"
)

// TrendSession owns the live chart loop: a fixed-interval tick that reloads
// commits and metric records from scratch and redraws every panel. At most
// one render is in flight; a slow tick delays the next rather than
// overlapping it.
type TrendSession struct {
	Client internal.GitClient
	Cfg    *schema.Config

	busy atomic.Bool
}

// Run validates that any input exists at all, renders the first frame, and
// then redraws on every tick until ctx is cancelled. The first frame is
// fatal on error so a misconfigured session fails fast; after that a
// failing tick is logged and skipped, keeping the previous charts on disk.
func (s *TrendSession) Run(ctx context.Context) error {
	if err := s.preflight(); err != nil {
		return err
	}
	if err := s.tick(); err != nil {
		return err
	}
	if s.Cfg.Once {
		return nil
	}

	ticker := time.NewTicker(s.Cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if !s.busy.CompareAndSwap(false, true) {
				continue
			}
			if err := s.tick(); err != nil {
				internal.LogWarn("skipping refresh, keeping previous charts", err)
			}
			s.busy.Store(false)
		}
	}
}

// preflight distinguishes "nothing to draw at all" (fatal before any
// render) from the recoverable absence of individual inputs.
func (s *TrendSession) preflight() error {
	hasMetrics := false
	for _, src := range s.Cfg.Sources {
		if _, err := os.Stat(filepath.Join(s.Cfg.RepoPath, src.Path)); err == nil {
			hasMetrics = true
			break
		}
	}

	_, err := LoadCommits(s.Client, s.Cfg.RepoPath)
	if err != nil && !hasMetrics {
		return fmt.Errorf("%w (run the test suite first)", schema.ErrNoInputSource)
	}
	if err != nil {
		// A time axis anchored to history needs at least one commit.
		return err
	}
	return nil
}

// tick is one full load -> correlate -> render pass.
func (s *TrendSession) tick() error {
	commits, err := LoadCommits(s.Client, s.Cfg.RepoPath)
	if err != nil {
		return err
	}
	panels, err := LoadPanels(s.Cfg.RepoPath, s.Cfg.Sources)
	if err != nil {
		return err
	}
	return WriteCharts(panels, commits, filepath.Join(s.Cfg.RepoPath, s.Cfg.ChartDir))
}
