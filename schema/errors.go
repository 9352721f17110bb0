package schema

import "errors"

// Failure taxonomy. Anything that would corrupt a deterministic artifact
// (missing markers, no data at all) is fatal; anything that only narrows
// the output (one case's images missing, one tick failing) is recoverable
// and merely logged by callers.
var (
	// ErrNoCommits means the repository history is empty. Fatal for any
	// operation that needs a time axis anchored to history.
	ErrNoCommits = errors.New("repository has no commits")

	// ErrNoMetricSources means every declared metric record file is
	// absent. A single absent file only omits its panel; all absent is fatal.
	ErrNoMetricSources = errors.New("no metric result files found")

	// ErrNoInputSource means neither metric records nor commit history
	// exist at all. Fatal before any rendering attempt.
	ErrNoInputSource = errors.New("no metric results and no commit history")

	// ErrMissingArtifact means one case's paired images are absent. The
	// case is skipped with a warning and curation continues.
	ErrMissingArtifact = errors.New("paired case images missing")

	// ErrMarkersNotFound means the publish target document lacks one or
	// both sentinel marker lines. Fatal; nothing is written.
	ErrMarkersNotFound = errors.New("showcase markers not found in document")
)
