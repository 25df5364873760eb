package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/srtran/srtran/internal/compare"
)

func renderComparisonTable(comparisons []compare.EntryComparison, showSimilarity, showReference bool) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := table.Row{"#", "Timestamp", "Source", "Translated"}
	if showSimilarity {
		header = append(header, "Similarity")
	}
	if showReference {
		header = append(header, "Reference")
	}
	tw.AppendHeader(header)

	for _, c := range comparisons {
		row := table.Row{c.Index, c.Timing, c.SourceText, c.TranslatedText}
		if showSimilarity {
			row = append(row, fmt.Sprintf("%.2f", c.Similarity))
		}
		if showReference {
			reference := c.ReferenceText
			if c.ReferenceScore > 0 {
				reference = fmt.Sprintf("%s (%d common words)", c.ReferenceText, c.ReferenceScore)
			}
			row = append(row, reference)
		}
		tw.AppendRow(row)
	}

	return tw.Render() + "\n"
}
