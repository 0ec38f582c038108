package categories

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func mustParse(t *testing.T, doc string) *Definitions {
	t.Helper()
	var defs Definitions
	require.NoError(t, yaml.Unmarshal([]byte(doc), &defs))
	return &defs
}

func TestRoundTrip_PreservesOrder(t *testing.T) {
	doc := "Travel:\n  - SBB\nFood:\n  - Migros\n  - Coop\nIncome:\n  - Lohn\n"
	defs := mustParse(t, doc)
	assert.Equal(t, []string{"Travel", "Food", "Income"}, defs.Names())

	path := filepath.Join(t.TempDir(), "categories.yaml")
	require.NoError(t, defs.Store(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Travel", "Food", "Income"}, got.Names())
	assert.Equal(t, []string{"Migros", "Coop"}, got.categories[1].Patterns)
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestUnmarshal_RejectsNonMapping(t *testing.T) {
	var defs Definitions
	err := yaml.Unmarshal([]byte("- just\n- a\n- list\n"), &defs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected a mapping")
}

func TestStore_AtomicReplace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "categories.yaml")
	require.NoError(t, os.WriteFile(path, []byte("Old:\n  - stale\n"), 0o644))

	defs := mustParse(t, "Food:\n  - Migros\n")
	require.NoError(t, defs.Store(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Food")
	assert.NotContains(t, string(data), "stale")

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "categories.yaml", entries[0].Name())
}

func TestNameByIndex(t *testing.T) {
	defs := mustParse(t, "Food:\n  - Migros\nGrocery:\n  - Filiale\nIncome:\n  - Lohn\n")

	name, ok := defs.Name(2)
	require.True(t, ok)
	assert.Equal(t, "Income", name)

	_, ok = defs.Name(3)
	assert.False(t, ok)
	_, ok = defs.Name(-1)
	assert.False(t, ok)
}

func TestAppend(t *testing.T) {
	defs := mustParse(t, "Food:\n  - Migros\n")

	defs.Append("Food", "Coop")
	assert.Equal(t, []string{"Migros", "Coop"}, defs.categories[0].Patterns)

	defs.Append("Travel", "SBB")
	require.Equal(t, 2, defs.Len())
	assert.Equal(t, "Travel", defs.categories[1].Name)
	assert.True(t, defs.Has("Travel"))
	assert.False(t, defs.Has("Grocery"))
}

func TestAppend_SurvivesRoundTrip(t *testing.T) {
	defs := mustParse(t, "Food:\n  - Migros\n")
	defs.Append("Travel", "SBB Billett")

	path := filepath.Join(t.TempDir(), "categories.yaml")
	require.NoError(t, defs.Store(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Food", "Travel"}, got.Names())
	assert.Equal(t, []string{"SBB Billett"}, got.categories[1].Patterns)
}

func TestStoreFormat(t *testing.T) {
	defs := mustParse(t, "Food:\n  - Migros\n")
	path := filepath.Join(t.TempDir(), "categories.yaml")
	require.NoError(t, defs.Store(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Food:\n"), "got:\n%s", data)
	assert.Contains(t, string(data), "- Migros")
}
