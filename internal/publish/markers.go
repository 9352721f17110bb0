package publish

import (
	"fmt"
	"strings"

	"github.com/renderlab/pagetrend/schema"
)

// Inject replaces the region strictly between the start and end marker
// lines with block, normalized to exactly one newline on each side.
// Everything outside the markers round-trips byte for byte, so running
// the injection twice with the same block is a no-op.
func Inject(doc, startMarker, endMarker, block string) (string, error) {
	start := strings.Index(doc, startMarker)
	if start < 0 {
		return "", fmt.Errorf("start marker %q: %w", startMarker, schema.ErrMarkersNotFound)
	}
	afterStart := start + len(startMarker)

	rel := strings.Index(doc[afterStart:], endMarker)
	if rel < 0 {
		return "", fmt.Errorf("end marker %q: %w", endMarker, schema.ErrMarkersNotFound)
	}
	end := afterStart + rel

	return doc[:afterStart] + "\n" + block + "\n" + doc[end:], nil
}

// InjectShowcase applies Inject with the showcase sentinel markers.
func InjectShowcase(doc, block string) (string, error) {
	return Inject(doc, schema.ShowcaseStartMarker, schema.ShowcaseEndMarker, block)
}
