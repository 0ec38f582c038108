package model

import (
	"github.com/shopspring/decimal"
)

// UnknownCategory is the sentinel category of a transaction that no
// pattern matched.
const UnknownCategory = "unknown"

// Transaction represents one normalized bank-statement entry. Exactly one
// of Belastung/Gutschrift is nonzero.
type Transaction struct {
	ID           int    // 0-based position in the parsed statement
	Datum        string // booking date, kept in the source's text format
	Valuta       string // value date
	Buchungstext string
	Belastung    decimal.Decimal // debit, never negative
	Gutschrift   decimal.Decimal // credit, never negative
	Saldo        decimal.Decimal // running balance, informational only
	Kategorie    string
}
