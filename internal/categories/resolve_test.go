package categories

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankcat-dev/bankcat/internal/model"
)

func TestResolve_LongestPatternWins(t *testing.T) {
	defs := mustParse(t, "Food:\n  - Migros\nGrocery:\n  - Migros Filiale\n")
	assert.Equal(t, "Grocery", defs.Resolve("Migros Filiale Bern"))
	assert.Equal(t, "Food", defs.Resolve("Migros Bern"))
}

func TestResolve_CaseInsensitive(t *testing.T) {
	defs := mustParse(t, "Food:\n  - migros\n")
	assert.Equal(t, "Food", defs.Resolve("Einkauf MIGROS Bern"))
}

func TestResolve_NoMatchIsUnknown(t *testing.T) {
	defs := mustParse(t, "Food:\n  - Migros\n")
	assert.Equal(t, model.UnknownCategory, defs.Resolve("Coop Tankstelle"))
}

func TestResolve_DuplicatePatternLastWins(t *testing.T) {
	defs := mustParse(t, "Food:\n  - Migros\nGrocery:\n  - Migros\n")
	assert.Equal(t, "Grocery", defs.Resolve("Migros Bern"))
}

func TestResolve_EqualLengthKeepsEarlier(t *testing.T) {
	defs := mustParse(t, "First:\n  - aa\nSecond:\n  - bb\n")
	assert.Equal(t, "First", defs.Resolve("xx aa bb yy"))
}

func TestCategorize(t *testing.T) {
	defs := mustParse(t, "Food:\n  - Migros\nIncome:\n  - Lohn\n")
	txns := []model.Transaction{
		{ID: 0, Buchungstext: "Migros Filiale", Belastung: decimal.RequireFromString("75.20"), Kategorie: model.UnknownCategory},
		{ID: 1, Buchungstext: "Lohn Januar", Gutschrift: decimal.RequireFromString("5500"), Kategorie: model.UnknownCategory},
		{ID: 2, Buchungstext: "Kiosk", Belastung: decimal.RequireFromString("3.50"), Kategorie: model.UnknownCategory},
	}

	got := defs.Categorize(txns)
	require.Len(t, got, 3)
	assert.Equal(t, "Food", got[0].Kategorie)
	assert.Equal(t, "Income", got[1].Kategorie)
	assert.Equal(t, model.UnknownCategory, got[2].Kategorie)

	// Input sequence is copied, not mutated.
	assert.Equal(t, model.UnknownCategory, txns[0].Kategorie)
}

func TestInvert_KeepsFirstSeenPosition(t *testing.T) {
	defs := mustParse(t, "A:\n  - one\n  - two\nB:\n  - one\n")
	entries := defs.invert()
	require.Len(t, entries, 2)
	assert.Equal(t, "one", entries[0].pattern)
	assert.Equal(t, "B", entries[0].category)
	assert.Equal(t, "two", entries[1].pattern)
	assert.Equal(t, "A", entries[1].category)
}
