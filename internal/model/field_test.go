package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveField_ExactAndPartial(t *testing.T) {
	tests := []struct {
		query string
		want  Field
	}{
		{"Datum", FieldDatum},
		{"datum", FieldDatum},
		{"Belastung", FieldBelastung},
		{"belast", FieldBelastung},
		{"GUTSCHRIFT", FieldGutschrift},
		{"text", FieldBuchungstext},
		{"Saldo", FieldSaldo},
		{"kategorie", FieldKategorie},
		{"Valuta", FieldValuta},
	}
	for _, tc := range tests {
		got, err := ResolveField(tc.query)
		require.NoError(t, err, "query %q", tc.query)
		assert.Equal(t, tc.want, got, "query %q", tc.query)
	}
}

func TestResolveField_FirstMatchWins(t *testing.T) {
	// "a" occurs in several column names; Datum is first in declared order.
	got, err := ResolveField("a")
	require.NoError(t, err)
	assert.Equal(t, FieldDatum, got)

	// "u" also hits Datum before Buchungstext and Gutschrift.
	got, err = ResolveField("u")
	require.NoError(t, err)
	assert.Equal(t, FieldDatum, got)
}

func TestResolveField_Unresolvable(t *testing.T) {
	_, err := ResolveField("Zinssatz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "matches no column")

	_, err = ResolveField("  ")
	assert.Error(t, err)
}

func TestStringValue(t *testing.T) {
	txn := Transaction{
		Datum:        "03.01.2024",
		Valuta:       "04.01.2024",
		Buchungstext: "Migros Filiale Bern",
		Belastung:    decimal.RequireFromString("75.2"),
		Saldo:        decimal.RequireFromString("12424.8"),
		Kategorie:    "Grocery",
	}

	assert.Equal(t, "03.01.2024", txn.StringValue(FieldDatum))
	assert.Equal(t, "04.01.2024", txn.StringValue(FieldValuta))
	assert.Equal(t, "Migros Filiale Bern", txn.StringValue(FieldBuchungstext))
	assert.Equal(t, "75.20", txn.StringValue(FieldBelastung))
	assert.Equal(t, "0.00", txn.StringValue(FieldGutschrift))
	assert.Equal(t, "12424.80", txn.StringValue(FieldSaldo))
	assert.Equal(t, "Grocery", txn.StringValue(FieldKategorie))
}

func TestAmountValue(t *testing.T) {
	txn := Transaction{Belastung: decimal.RequireFromString("10.5")}

	amount, ok := txn.AmountValue(FieldBelastung)
	require.True(t, ok)
	assert.Equal(t, "10.50", amount.StringFixed(2))

	_, ok = txn.AmountValue(FieldBuchungstext)
	assert.False(t, ok)
	_, ok = txn.AmountValue(FieldKategorie)
	assert.False(t, ok)
}

func TestFieldIsAmount(t *testing.T) {
	assert.True(t, FieldBelastung.IsAmount())
	assert.True(t, FieldGutschrift.IsAmount())
	assert.True(t, FieldSaldo.IsAmount())
	assert.False(t, FieldDatum.IsAmount())
	assert.False(t, FieldKategorie.IsAmount())
}
