package publish

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renderlab/pagetrend/schema"
)

var sampleRows = []schema.ShowcaseRow{
	{Case: "invoice", Score: 0.62, RefImage: "invoice_ref.png", GenImage: "invoice_gen.png"},
	{Case: "letter", Score: 0.48, RefImage: "letter_ref.png", GenImage: "letter_gen.png"},
}

func TestMarkerTargetPublish(t *testing.T) {
	path := filepath.Join(t.TempDir(), "README.md")
	doc := "# Renderer\n\n<!-- showcase-start -->\nplaceholder\n<!-- showcase-end -->\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	target := &MarkerTarget{Path: path, ImageBase: "docs/showcase", Metric: "ssim"}
	require.NoError(t, target.Publish(sampleRows))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(got), "# Renderer\n")
	assert.Contains(t, string(got), `<img src="docs/showcase/invoice_gen.png"/>`)
	assert.Contains(t, string(got), "62.0% SSIM")
	assert.NotContains(t, string(got), "placeholder")
}

func TestMarkerTargetPublishIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "README.md")
	doc := "<!-- showcase-start -->\nold\n<!-- showcase-end -->\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	target := &MarkerTarget{Path: path, ImageBase: "docs/showcase", Metric: "ssim"}
	require.NoError(t, target.Publish(sampleRows))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, target.Publish(sampleRows))
	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestMarkerTargetMissingMarkersLeavesFileUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "README.md")
	doc := "# Renderer\n\nNo markers here.\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	target := &MarkerTarget{Path: path, ImageBase: "docs/showcase", Metric: "ssim"}
	err := target.Publish(sampleRows)
	assert.ErrorIs(t, err, schema.ErrMarkersNotFound)

	got, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, doc, string(got))
}

func TestIndexTargetPublish(t *testing.T) {
	path := filepath.Join(t.TempDir(), "README.md")
	target := &IndexTarget{Path: path, Metric: "ssim", Width: 420}
	require.NoError(t, target.Publish(sampleRows))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(got), "# All test cases")
	assert.Contains(t, string(got), "## invoice (62.0% SSIM)")
	assert.Contains(t, string(got), `<img src="letter_ref.png" width="420"/>`)
}
