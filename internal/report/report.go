// Package report aggregates filtered transactions into per-category sums
// and renders the console output formats.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/bankcat-dev/bankcat/internal/model"
)

// TotalLabel is the grand-total row label.
const TotalLabel = "GESAMT-TOTAL"

// CategorySum holds the debit and credit totals of one category. A row
// with an empty Kategorie is a visual separator.
type CategorySum struct {
	Kategorie  string
	Belastung  decimal.Decimal
	Gutschrift decimal.Decimal
}

// Summarize sums debits and credits per category, sorted by category name
// and rounded to two decimal places. When more than one category is
// present, a blank separator and a GESAMT-TOTAL row are appended.
func Summarize(txns []model.Transaction) []CategorySum {
	byCategory := make(map[string]*CategorySum)
	for _, t := range txns {
		sum, ok := byCategory[t.Kategorie]
		if !ok {
			sum = &CategorySum{Kategorie: t.Kategorie}
			byCategory[t.Kategorie] = sum
		}
		sum.Belastung = sum.Belastung.Add(t.Belastung)
		sum.Gutschrift = sum.Gutschrift.Add(t.Gutschrift)
	}

	names := make([]string, 0, len(byCategory))
	for name := range byCategory {
		names = append(names, name)
	}
	sort.Strings(names)

	sums := make([]CategorySum, 0, len(names)+2)
	var totalBelastung, totalGutschrift decimal.Decimal
	for _, name := range names {
		sum := byCategory[name]
		totalBelastung = totalBelastung.Add(sum.Belastung)
		totalGutschrift = totalGutschrift.Add(sum.Gutschrift)
		sums = append(sums, CategorySum{
			Kategorie:  name,
			Belastung:  sum.Belastung.Round(2),
			Gutschrift: sum.Gutschrift.Round(2),
		})
	}

	if len(names) > 1 {
		sums = append(sums,
			CategorySum{},
			CategorySum{
				Kategorie:  TotalLabel,
				Belastung:  totalBelastung.Round(2),
				Gutschrift: totalGutschrift.Round(2),
			})
	}
	return sums
}
