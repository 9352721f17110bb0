package publish

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renderlab/pagetrend/schema"
)

func TestBuildBlock(t *testing.T) {
	rows := []schema.ShowcaseRow{
		{Case: "invoice", Score: 0.625, RefImage: "invoice_ref.png", GenImage: "invoice_gen.png"},
	}

	block := BuildBlock(rows, "docs/showcase", "ssim")

	assert.True(t, strings.HasPrefix(block, "<table>"))
	assert.True(t, strings.HasSuffix(block, "</table>"))
	assert.Contains(t, block, `<img src="docs/showcase/invoice_ref.png"/>`)
	assert.Contains(t, block, "invoice (reference)")
	assert.Contains(t, block, "invoice (62.5% SSIM)")
}

func TestBuildBlockEmpty(t *testing.T) {
	block := BuildBlock(nil, "docs/showcase", "ssim")
	// Header row only; still a well-formed table.
	assert.Equal(t, "<table>\n  <tr><th>Reference</th><th>Generated</th></tr>\n</table>", block)
}

func TestBuildIndex(t *testing.T) {
	rows := []schema.ShowcaseRow{
		{Case: "invoice", Score: 0.62, RefImage: "invoice_ref.png", GenImage: "invoice_gen.png"},
		{Case: "letter", Score: 0.48, RefImage: "letter_ref.png", GenImage: "letter_gen.png"},
	}

	index := BuildIndex(rows, "ssim", 420)

	assert.Contains(t, index, "# All test cases")
	assert.Contains(t, index, "## invoice (62.0% SSIM)")
	assert.Contains(t, index, "## letter (48.0% SSIM)")
	// Index links are relative; no path prefix.
	assert.Contains(t, index, `<img src="invoice_ref.png" width="420"/>`)
}
