package statement

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"

	"github.com/bankcat-dev/bankcat/internal/model"
)

// RaiffeisenParser parses Raiffeisen e-banking CSV exports.
//
// Layout: IBAN;Booked At;Text;Credit/Debit Amount;Balance;Value Date with
// a header line and one trailing footer line. The export is Latin-1
// encoded, carries a single signed amount column, and splits collective
// bookings (Sammelauftrag, Dauerauftrag and friends) across several lines:
// detail lines have no booking date and must be merged with the collective
// line above them.
type RaiffeisenParser struct{}

const raiffeisenNumFields = 6

// Type returns the statement-type selector.
func (p *RaiffeisenParser) Type() string { return "Raiffeisen" }

// Parse reads a Raiffeisen statement and returns normalized transactions
// with continuation rows merged.
func (p *RaiffeisenParser) Parse(r io.Reader) ([]model.Transaction, error) {
	lines, err := readLines(charmap.ISO8859_1.NewDecoder().Reader(r))
	if err != nil {
		return nil, err
	}
	if len(lines) <= 2 {
		return nil, nil
	}

	var table []model.Transaction
	for i, line := range lines[1 : len(lines)-1] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		txn, err := parseRaiffeisenRow(line)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		table = append(table, txn)
	}

	merged, err := mergeContinuations(table)
	if err != nil {
		return nil, err
	}
	renumber(merged)
	return merged, nil
}

func parseRaiffeisenRow(line string) (model.Transaction, error) {
	cells := strings.Split(strings.TrimSpace(line), ";")
	if len(cells) < raiffeisenNumFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", raiffeisenNumFields, len(cells))
	}

	amount, err := parseAmount(cells[3])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("amount: %w", err)
	}
	saldo, err := parseAmount(cells[4])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("Saldo: %w", err)
	}

	// The booked-at cell carries a timestamp; only the date part is kept.
	datum, _, _ := strings.Cut(strings.TrimSpace(cells[1]), " ")

	txn := model.Transaction{
		Datum:        datum,
		Valuta:       cells[5],
		Buchungstext: cleanText(cells[2]),
		Saldo:        saldo,
		Kategorie:    model.UnknownCategory,
	}
	if amount.IsNegative() {
		txn.Belastung = amount.Neg()
	} else {
		txn.Gutschrift = amount
	}
	return txn, nil
}

// mergeContinuations reconstructs transactions the export splits across
// several lines. A row without a booking date continues the most recent
// row that had one: it inherits the dates and the debit/credit side,
// carries its own amount, and supersedes the collective row when it
// directly follows it. Later continuations of the same collective row
// append as separate merged records.
func mergeContinuations(table []model.Transaction) ([]model.Transaction, error) {
	var out []model.Transaction
	var full model.Transaction
	fullIdx := -1

	for i, row := range table {
		if i > 0 && row.Datum == "" {
			amount, err := continuationAmount(full, row)
			if err != nil {
				return nil, fmt.Errorf("continuation row %d: %w", i+2, err)
			}
			row.Buchungstext = full.Buchungstext + " " + row.Buchungstext
			row.Datum = full.Datum
			row.Valuta = full.Valuta
			// The carried amount lands on whichever side the collective
			// row used; the other side stays zero.
			row.Belastung, row.Gutschrift = decimal.Zero, decimal.Zero
			if !full.Belastung.IsZero() {
				row.Belastung = amount
			}
			if !full.Gutschrift.IsZero() {
				row.Gutschrift = amount
			}
			// Known to drift for chained continuations; kept for parity
			// with the historical output.
			row.Saldo = full.Saldo.Sub(amount)

			// The collective row is dropped when its first continuation
			// lands directly below it.
			if fullIdx == i-1 && len(out) > 0 {
				out = out[:len(out)-1]
			}
		} else {
			full = row
			fullIdx = i
		}
		out = append(out, row)
	}
	return out, nil
}

// continuationAmount determines the amount a continuation row carries.
// Collective credit ("Gutschrift ...") and payment ("Zahlung ...") rows
// repeat their own amount on every detail line; otherwise the amount is
// the last whitespace-delimited token of the continuation's own text.
func continuationAmount(full, row model.Transaction) (decimal.Decimal, error) {
	if strings.HasPrefix(full.Buchungstext, "Gutschrift") {
		return full.Gutschrift, nil
	}
	if strings.HasPrefix(full.Buchungstext, "Zahlung") {
		return full.Belastung, nil
	}

	tokens := strings.Fields(row.Buchungstext)
	if len(tokens) == 0 {
		return decimal.Decimal{}, fmt.Errorf("no amount token in %q", row.Buchungstext)
	}
	last := strings.ReplaceAll(tokens[len(tokens)-1], "'", "")
	d, err := decimal.NewFromString(last)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing amount %q: %w", last, err)
	}
	return d, nil
}
