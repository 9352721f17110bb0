// Package core implements the trend and showcase pipelines: loading commit
// history and metric records, correlating them onto one time axis,
// rendering the trend panels, and curating the showcase.
package core

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/renderlab/pagetrend/internal"
	"github.com/renderlab/pagetrend/schema"
)

// LoadCommits reads the repository's commit history and returns it sorted
// ascending by timestamp. git emits newest-first, and grafted or rebased
// histories are not guaranteed monotonic either, so ordering is imposed
// here rather than assumed.
//
// Callers re-invoke this on every render tick; there is no caching, so a
// live session picks up commits made while it runs.
func LoadCommits(client internal.GitClient, repoPath string) ([]schema.Commit, error) {
	out, err := client.CommitLog(repoPath)
	if err != nil {
		return nil, fmt.Errorf("load commit log: %w", err)
	}

	var commits []schema.Commit
	for _, line := range strings.Split(string(out), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		tsStr, msg, _ := strings.Cut(line, "\t")
		ts, err := strconv.ParseInt(tsStr, 10, 64)
		if err != nil {
			// A mangled line (merge surgery, encoding damage) should not
			// take down a live session.
			continue
		}
		commits = append(commits, schema.Commit{Time: time.Unix(ts, 0).UTC(), Message: msg})
	}

	if len(commits) == 0 {
		return nil, schema.ErrNoCommits
	}

	sort.Slice(commits, func(i, j int) bool {
		return commits[i].Time.Before(commits[j].Time)
	})
	return commits, nil
}
