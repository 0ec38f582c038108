package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/bankcat-dev/bankcat/internal/model"
)

// CSVHeader is the header of the csv output format.
const CSVHeader = "Datum;Belastung;Gutschrift;Kategorie;Buchungstext"

// RenderCSV writes the transactions as semicolon-separated values.
func RenderCSV(w io.Writer, txns []model.Transaction) {
	fmt.Fprintln(w, CSVHeader)
	for _, t := range txns {
		fmt.Fprintln(w, strings.Join([]string{
			t.Datum,
			t.Belastung.StringFixed(2),
			t.Gutschrift.StringFixed(2),
			t.Kategorie,
			t.Buchungstext,
		}, ";"))
	}
}

// RenderTable writes a fixed-width listing of the transactions followed by
// a count line.
func RenderTable(w io.Writer, txns []model.Transaction) {
	for _, t := range txns {
		fmt.Fprintf(w, "%-5d %11s %10s %10s %-15s %s\n",
			t.ID,
			t.Datum,
			t.Belastung.StringFixed(2),
			t.Gutschrift.StringFixed(2),
			t.Kategorie,
			t.Buchungstext,
		)
	}
	fmt.Fprintf(w, "%d transactions\n", len(txns))
}

// RenderSummary writes the per-category sums as an aligned table.
func RenderSummary(w io.Writer, sums []CategorySum) {
	width := len("Kategorie")
	for _, s := range sums {
		if len(s.Kategorie) > width {
			width = len(s.Kategorie)
		}
	}

	fmt.Fprintf(w, "%-*s %12s %12s\n", width, "Kategorie", "Belastung", "Gutschrift")
	for _, s := range sums {
		if s.Kategorie == "" {
			fmt.Fprintln(w)
			continue
		}
		fmt.Fprintf(w, "%-*s %12s %12s\n", width, s.Kategorie, s.Belastung.StringFixed(2), s.Gutschrift.StringFixed(2))
	}
}
