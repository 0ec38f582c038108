package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Field identifies one addressable column of a Transaction.
type Field int

const (
	FieldDatum Field = iota
	FieldValuta
	FieldBuchungstext
	FieldBelastung
	FieldGutschrift
	FieldSaldo
	FieldKategorie
)

// fieldNames lists the column names in declared order. Order matters:
// partial-name resolution picks the first field whose name contains the
// query.
var fieldNames = []string{
	FieldDatum:        "Datum",
	FieldValuta:       "Valuta",
	FieldBuchungstext: "Buchungstext",
	FieldBelastung:    "Belastung",
	FieldGutschrift:   "Gutschrift",
	FieldSaldo:        "Saldo",
	FieldKategorie:    "Kategorie",
}

// Name returns the column name of the field.
func (f Field) Name() string {
	if int(f) < 0 || int(f) >= len(fieldNames) {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldNames[f]
}

// IsAmount reports whether the field holds a decimal amount.
func (f Field) IsAmount() bool {
	switch f {
	case FieldBelastung, FieldGutschrift, FieldSaldo:
		return true
	}
	return false
}

// ResolveField maps a column name, possibly partial, to a Field. A name
// matches a field when it occurs case-insensitively within the field's
// column name; the first match in declared order wins.
func ResolveField(name string) (Field, error) {
	query := strings.ToLower(strings.TrimSpace(name))
	if query == "" {
		return 0, fmt.Errorf("empty field name")
	}
	for i, fn := range fieldNames {
		if strings.Contains(strings.ToLower(fn), query) {
			return Field(i), nil
		}
	}
	return 0, fmt.Errorf("field %q matches no column", name)
}

// StringValue returns the field's value in display form. Amounts are
// rendered with two decimal places.
func (t Transaction) StringValue(f Field) string {
	switch f {
	case FieldDatum:
		return t.Datum
	case FieldValuta:
		return t.Valuta
	case FieldBuchungstext:
		return t.Buchungstext
	case FieldBelastung:
		return t.Belastung.StringFixed(2)
	case FieldGutschrift:
		return t.Gutschrift.StringFixed(2)
	case FieldSaldo:
		return t.Saldo.StringFixed(2)
	case FieldKategorie:
		return t.Kategorie
	}
	return ""
}

// AmountValue returns the field's decimal value. ok is false for text
// fields.
func (t Transaction) AmountValue(f Field) (amount decimal.Decimal, ok bool) {
	switch f {
	case FieldBelastung:
		return t.Belastung, true
	case FieldGutschrift:
		return t.Gutschrift, true
	case FieldSaldo:
		return t.Saldo, true
	}
	return decimal.Decimal{}, false
}
