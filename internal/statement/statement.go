// Package statement parses bank-specific CSV statement exports into
// normalized transactions.
package statement

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bankcat-dev/bankcat/internal/model"
)

// Parser converts one bank's raw statement export into transactions.
type Parser interface {
	Parse(r io.Reader) ([]model.Transaction, error)
	Type() string
}

// Registry holds parsers by statement type.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate statement type.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Type())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate statement type: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for a statement-type selector. An unknown
// selector is a configuration error.
func (r *Registry) Get(statementType string) (Parser, error) {
	p, ok := r.parsers[strings.ToLower(statementType)]
	if !ok {
		return nil, fmt.Errorf("statement type %q not supported", statementType)
	}
	return p, nil
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&AKBParser{})
	r.Register(&RaiffeisenParser{})
	return r
}

// readLines splits the statement into lines, dropping trailing blank
// lines so footer handling is not thrown off by a final newline.
func readLines(r io.Reader) ([]string, error) {
	s := bufio.NewScanner(r)
	var lines []string
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading statement: %w", err)
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}

// parseAmount parses a statement amount cell. Thousands-separator
// apostrophes are stripped; an empty cell is zero.
func parseAmount(cell string) (decimal.Decimal, error) {
	cell = strings.TrimSpace(strings.ReplaceAll(cell, "'", ""))
	if cell == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(cell)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing amount %q: %w", cell, err)
	}
	return d, nil
}

// cleanText strips quote characters and surrounding whitespace from a
// booking-text cell.
func cleanText(cell string) string {
	return strings.TrimSpace(strings.ReplaceAll(cell, "\"", ""))
}

// renumber assigns each transaction its 0-based position as ID.
func renumber(txns []model.Transaction) {
	for i := range txns {
		txns[i].ID = i
	}
}
