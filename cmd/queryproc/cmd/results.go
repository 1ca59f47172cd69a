package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/hieudo/queryproc/internal/query"
)

// printResultTable renders ranked results with github.com/olekukonko/tablewriter,
// grounded on cmd/info.go's own use of the same library for aligned,
// border-free tabular summaries. After the whole table is rendered, each
// non-empty snippet is listed on its own line, prefixed by its result's
// rank (the source prints "Link / score / snippet" as three separate lines
// per result; a table only for the structured columns keeps the snippet
// free to wrap).
func printResultTable(results []query.Result) {
	tw := tablewriter.NewWriter(os.Stdout)
	tw.SetHeader([]string{"Rank", "Score", "URL"})
	tw.SetBorder(false)
	tw.SetAutoWrapText(false)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	tw.SetColumnSeparator("")

	for _, r := range results {
		tw.Append([]string{
			fmt.Sprintf("%d.", r.Rank),
			fmt.Sprintf("%.4f", r.Score),
			r.URL,
		})
	}
	tw.Render()

	for _, r := range results {
		if r.Snippet == "" {
			continue
		}
		color.New(color.Faint).Printf("  %d. ...%s...\n", r.Rank, strings.TrimSpace(r.Snippet))
	}
}
