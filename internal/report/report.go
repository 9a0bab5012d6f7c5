// Package report renders the end-of-run summary shown to the user.
package report

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"trackmirror/internal/batch"
)

// Render formats the batch result as a counts line plus, when anything
// went wrong, tables of unmatched tracks and failed downloads in input
// order.
func Render(result batch.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%d tracks: %d matched, %d downloaded, %d unmatched, %d failed\n",
		result.Total, result.Matched, result.Downloaded,
		len(result.Unmatched), len(result.Failed))

	if len(result.Unmatched) > 0 {
		b.WriteString("\nUnmatched tracks:\n")
		b.WriteString(failureTable(result.Unmatched))
		b.WriteByte('\n')
	}
	if len(result.Failed) > 0 {
		b.WriteString("\nFailed downloads:\n")
		b.WriteString(failureTable(result.Failed))
		b.WriteByte('\n')
	}

	return b.String()
}

func failureTable(failures []batch.Failure) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Title", "Artist", "Reason"})

	for _, f := range failures {
		tw.AppendRow(table.Row{f.Track.Title, f.Track.Artist, f.Reason})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, WidthMax: 60, Align: text.AlignLeft},
	})

	return tw.Render()
}
