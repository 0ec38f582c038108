package statement

import (
	"fmt"
	"io"
	"strings"

	"github.com/bankcat-dev/bankcat/internal/model"
)

// AKBParser parses Aargauische Kantonalbank CSV exports.
//
// Layout: Buchung;Valuta;Buchungstext;Belastung;Gutschrift;Saldo with one
// header line. Amounts use apostrophe thousands separators, the booking
// text may carry stray quote characters.
type AKBParser struct{}

const akbNumFields = 6

// Type returns the statement-type selector.
func (p *AKBParser) Type() string { return "AKB" }

// Parse reads an AKB statement and returns normalized transactions.
func (p *AKBParser) Parse(r io.Reader) ([]model.Transaction, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) <= 1 {
		return nil, nil
	}

	var txns []model.Transaction
	for i, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		txn, err := parseAKBRow(line)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	renumber(txns)
	return txns, nil
}

func parseAKBRow(line string) (model.Transaction, error) {
	cells := strings.Split(strings.TrimSpace(line), ";")
	if len(cells) < akbNumFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", akbNumFields, len(cells))
	}

	belastung, err := parseAmount(cells[3])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("Belastung: %w", err)
	}
	gutschrift, err := parseAmount(cells[4])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("Gutschrift: %w", err)
	}
	saldo, err := parseAmount(cells[5])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("Saldo: %w", err)
	}

	return model.Transaction{
		Datum:        cells[0],
		Valuta:       cells[1],
		Buchungstext: cleanText(cells[2]),
		Belastung:    belastung,
		Gutschrift:   gutschrift,
		Saldo:        saldo,
		Kategorie:    model.UnknownCategory,
	}, nil
}
