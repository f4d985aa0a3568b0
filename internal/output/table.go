package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/evallab/rating-report/internal/model"
)

const userColumnWidth = 25

// PrintTable renders a report as an aligned fixed-width text table.
// Nil cells are shown as N/A, everything else with 2 decimal places.
func PrintTable(w io.Writer, report *model.Report) {
	widths := make([]int, len(report.Columns))
	widths[0] = userColumnWidth
	for i, col := range report.Columns[1:] {
		widths[i+1] = len(col) + 2
		if widths[i+1] < 10 {
			widths[i+1] = 10
		}
	}

	total := 0
	for _, fw := range widths {
		total += fw + 1
	}
	rule := strings.Repeat("-", total)

	fmt.Fprintf(w, "\n%s Results:\n", report.Title)
	fmt.Fprintln(w, rule)
	for i, col := range report.Columns {
		fmt.Fprintf(w, "%-*s ", widths[i], col)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)

	for _, row := range report.Rows {
		fmt.Fprintf(w, "%-*s ", widths[0], row.UserID)
		for i, v := range row.Values {
			fmt.Fprintf(w, "%-*s ", widths[i+1], formatCell(v))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}

func formatCell(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", *v)
}
