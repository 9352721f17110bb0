package core

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renderlab/pagetrend/internal"
	"github.com/renderlab/pagetrend/schema"
)

func trendConfig(repo string) *schema.Config {
	return &schema.Config{
		RepoPath: repo,
		Sources:  schema.DefaultSources(),
		Interval: 10 * time.Millisecond,
		ChartDir: "charts",
		Once:     true,
	}
}

func TestTrendSessionOnce(t *testing.T) {
	repo := t.TempDir()
	writeRecordFile(t, repo, "tests/output/ssim_results.csv",
		"timestamp,case,avg_ssim\n"+
			"1700000000,invoice,0.35\n"+
			"1700003600,invoice,0.62\n")

	client := new(internal.MockGitClient)
	client.On("CommitLog", repo).
		Return([]byte("1700001800\timprove borders\n1700000000\tinitial"), nil)

	session := &TrendSession{Client: client, Cfg: trendConfig(repo)}
	require.NoError(t, session.Run(context.Background()))

	// One frame rendered, one PNG per panel with data on disk.
	_, err := os.Stat(filepath.Join(repo, "charts", "ssim_trend.png"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(repo, "charts", "jaccard_trend.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestTrendSessionNoInputAtAll(t *testing.T) {
	repo := t.TempDir()
	client := new(internal.MockGitClient)
	client.On("CommitLog", repo).Return([]byte(""), nil)

	session := &TrendSession{Client: client, Cfg: trendConfig(repo)}
	err := session.Run(context.Background())
	assert.ErrorIs(t, err, schema.ErrNoInputSource)
}

func TestTrendSessionNoCommitsWithMetrics(t *testing.T) {
	repo := t.TempDir()
	writeRecordFile(t, repo, "tests/output/ssim_results.csv",
		"timestamp,case,avg_ssim\n100,invoice,0.5\n")

	client := new(internal.MockGitClient)
	client.On("CommitLog", repo).Return([]byte(""), nil)

	// Metric records exist, so the failure is specifically about history.
	session := &TrendSession{Client: client, Cfg: trendConfig(repo)}
	err := session.Run(context.Background())
	assert.ErrorIs(t, err, schema.ErrNoCommits)
}

// TestTrendSessionFailingTickKeepsCharts exercises the recovery path: once
// the first frame is on disk, a tick whose commit load fails is skipped and
// the session keeps running with the previous charts intact.
func TestTrendSessionFailingTickKeepsCharts(t *testing.T) {
	repo := t.TempDir()
	writeRecordFile(t, repo, "tests/output/ssim_results.csv",
		"timestamp,case,avg_ssim\n1700000000,invoice,0.5\n")

	client := new(internal.MockGitClient)
	// Preflight and the first frame see history; every later tick fails.
	client.On("CommitLog", repo).
		Return([]byte("1700000000\tinitial"), nil).Twice()
	client.On("CommitLog", repo).
		Return([]byte(nil), errors.New("index.lock held"))

	cfg := trendConfig(repo)
	cfg.Once = false
	session := &TrendSession{Client: client, Cfg: cfg}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- session.Run(ctx) }()

	// Let several failing ticks elapse before stopping.
	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("session did not survive failing ticks")
	}

	info, err := os.Stat(filepath.Join(repo, "charts", "ssim_trend.png"))
	require.NoError(t, err, "the first frame must remain on disk")
	assert.Greater(t, info.Size(), int64(0))
}

func TestTrendSessionCancel(t *testing.T) {
	repo := t.TempDir()
	writeRecordFile(t, repo, "tests/output/ssim_results.csv",
		"timestamp,case,avg_ssim\n1700000000,invoice,0.5\n")

	client := new(internal.MockGitClient)
	client.On("CommitLog", repo).Return([]byte("1700000000\tinitial"), nil)

	cfg := trendConfig(repo)
	cfg.Once = false
	session := &TrendSession{Client: client, Cfg: cfg}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- session.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("session did not stop after cancellation")
	}
}
