// Package publish renders showcase rows into their two document targets:
// the marker-delimited block inside the hand-maintained README and the
// standalone showcase index. Both targets share the row rendering here.
package publish

import (
	"fmt"
	"strings"

	"github.com/renderlab/pagetrend/schema"
)

// BuildBlock renders the marker-delimited HTML table block. Image links
// are prefixed with imageBase so the block works when the README is viewed
// outside the repository checkout.
func BuildBlock(rows []schema.ShowcaseRow, imageBase, metric string) string {
	label := strings.ToUpper(metric)
	lines := []string{
		"<table>",
		"  <tr><th>Reference</th><th>Generated</th></tr>",
	}
	for _, row := range rows {
		lines = append(lines,
			"  <tr>",
			fmt.Sprintf(`    <td align="center"><img src="%s/%s"/><br/><sub>%s (reference)</sub></td>`, imageBase, row.RefImage, row.Case),
			fmt.Sprintf(`    <td align="center"><img src="%s/%s"/><br/><sub>%s (%.1f%% %s)</sub></td>`, imageBase, row.GenImage, row.Case, row.Score*100, label),
			"  </tr>",
		)
	}
	lines = append(lines, "</table>")
	return strings.Join(lines, "\n")
}

// BuildIndex renders the self-contained showcase index document with one
// section per case. Links are relative because the index lives next to
// the images.
func BuildIndex(rows []schema.ShowcaseRow, metric string, width int) string {
	label := strings.ToUpper(metric)
	lines := []string{
		"# All test cases",
		"",
		"Reference on the left, generated output on the right.",
		"",
	}
	for _, row := range rows {
		lines = append(lines,
			fmt.Sprintf("## %s (%.1f%% %s)", row.Case, row.Score*100, label),
			"",
			fmt.Sprintf(`<img src="%s" width="%d"/> <img src="%s" width="%d"/>`, row.RefImage, width, row.GenImage, width),
			"",
		)
	}
	return strings.Join(lines, "\n")
}
