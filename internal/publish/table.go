package publish

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/term"

	"github.com/renderlab/pagetrend/schema"
)

var (
	passColor   = color.New(color.FgGreen)
	strongColor = color.New(color.FgCyan)
)

// marginLabel classifies how far above the pass bar a published score sits.
func marginLabel(score, threshold float64) string {
	if score >= threshold+0.20 {
		return strongColor.Sprint("Strong")
	}
	return passColor.Sprint("Pass")
}

// WriteSummary prints the published cases as a human-readable table,
// followed by a one-line count. Case names are truncated to fit narrow
// terminals and CI logs.
func WriteSummary(w io.Writer, rows []schema.ShowcaseRow, threshold float64) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Case", "Score", "Margin", "Images"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	maxCase := maxCaseWidth()
	var data [][]string
	for i, row := range rows {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			truncate(row.Case, maxCase),
			fmt.Sprintf("%.1f%%", row.Score*100),
			marginLabel(row.Score, threshold),
			fmt.Sprintf("%s %s", row.RefImage, row.GenImage),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Published %d passing cases (threshold %.0f%%)\n", len(rows), threshold*100)
	return err
}

// maxCaseWidth reserves space for the fixed columns and gives the rest of
// the terminal to the case name column.
func maxCaseWidth() int {
	termWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || termWidth <= 0 {
		termWidth = 80 // conservative default for narrow terminals and CI
	}
	width := termWidth - 60 // Rank + Score + Margin + Images with formatting
	if width < 12 {
		width = 12
	}
	return width
}

// truncate shortens a name to maxWidth with an ellipsis prefix.
func truncate(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return "..." + string(runes[len(runes)-maxWidth+3:])
	}
	return name
}
