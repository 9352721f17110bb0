package publish

import (
	"fmt"
	"os"

	"github.com/renderlab/pagetrend/schema"
)

// Target is one place the showcase block can be published to. The two
// variants share the row rendering in block.go; only the document
// interface differs.
type Target interface {
	// Publish writes the rendered rows. Implementations must either
	// complete fully or leave the target untouched.
	Publish(rows []schema.ShowcaseRow) error
}

// MarkerTarget injects the block into an existing document between the
// showcase sentinel markers. The file outside the markers is preserved
// byte for byte; a document without both markers is rejected before
// anything is written.
type MarkerTarget struct {
	Path      string
	ImageBase string
	Metric    string
}

var _ Target = (*MarkerTarget)(nil)

// Publish implements the Target interface.
func (t *MarkerTarget) Publish(rows []schema.ShowcaseRow) error {
	raw, err := os.ReadFile(t.Path)
	if err != nil {
		return fmt.Errorf("read %s: %w", t.Path, err)
	}

	block := BuildBlock(rows, t.ImageBase, t.Metric)
	updated, err := InjectShowcase(string(raw), block)
	if err != nil {
		return fmt.Errorf("inject into %s: %w", t.Path, err)
	}

	if updated == string(raw) {
		// Already current; skip the write so mtime stays honest.
		return nil
	}
	if err := os.WriteFile(t.Path, []byte(updated), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", t.Path, err)
	}
	return nil
}

// IndexTarget writes a fresh self-contained index document enumerating
// every published case. The previous index, if any, is replaced wholesale.
type IndexTarget struct {
	Path   string
	Metric string
	Width  int
}

var _ Target = (*IndexTarget)(nil)

// Publish implements the Target interface.
func (t *IndexTarget) Publish(rows []schema.ShowcaseRow) error {
	doc := BuildIndex(rows, t.Metric, t.Width) + "\n"
	if err := os.WriteFile(t.Path, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", t.Path, err)
	}
	return nil
}
