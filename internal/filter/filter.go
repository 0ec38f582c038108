// Package filter compiles and applies the display-filter mini-language: a
// comma-separated conjunction of field<op>value clauses, e.g.
// "Kategorie=unknown,Belastung>50".
package filter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bankcat-dev/bankcat/internal/categories"
	"github.com/bankcat-dev/bankcat/internal/model"
)

// Op is a filter comparison operator.
type Op int

const (
	OpEq          Op = iota // =  decimal equality on amounts, exact equality on text
	OpLt                    // <  decimal less-than
	OpGt                    // >  decimal greater-than
	OpContains              // ?  case-insensitive substring containment
	OpNotContains           // !  case-insensitive substring non-containment
)

// opChars lists the operator characters a clause is split on.
const opChars = "=<>?!"

// Clause is one compiled field<op>value condition.
type Clause struct {
	Field   model.Field
	Op      Op
	Operand string
	number  decimal.Decimal // parsed Operand for numeric comparisons
	numeric bool
}

// Predicate is the conjunction of its clauses. The zero value matches
// every transaction.
type Predicate struct {
	clauses []Clause
}

// Parse compiles a filter expression. The definitions are needed only to
// resolve the KategorieIdx pseudo-field, which maps an integer index into
// the definitions' key order to a literal category test. An empty
// expression yields the identity predicate.
func Parse(expr string, defs *categories.Definitions) (Predicate, error) {
	var p Predicate
	if strings.TrimSpace(expr) == "" {
		return p, nil
	}
	for _, part := range strings.Split(expr, ",") {
		part = strings.TrimSpace(part)
		clause, err := parseClause(part, defs)
		if err != nil {
			return Predicate{}, fmt.Errorf("filter clause %q: %w", part, err)
		}
		p.clauses = append(p.clauses, clause)
	}
	return p, nil
}

func parseClause(part string, defs *categories.Definitions) (Clause, error) {
	opIdx := strings.IndexAny(part, opChars)
	if opIdx < 0 {
		return Clause{}, fmt.Errorf("no operator (expected one of %q)", opChars)
	}

	key := part[:opIdx]
	operand := part[opIdx+1:]
	op, err := parseOp(part[opIdx])
	if err != nil {
		return Clause{}, err
	}

	// KategorieIdx selects a category by position instead of by name.
	if strings.EqualFold(strings.TrimSpace(key), "KategorieIdx") {
		if op == OpLt || op == OpGt {
			return Clause{}, fmt.Errorf("KategorieIdx supports no numeric comparison")
		}
		idx, err := strconv.Atoi(operand)
		if err != nil {
			return Clause{}, fmt.Errorf("parsing category index %q: %w", operand, err)
		}
		name, ok := defs.Name(idx)
		if !ok {
			return Clause{}, fmt.Errorf("category index %d out of range (%d categories)", idx, defs.Len())
		}
		return Clause{Field: model.FieldKategorie, Op: op, Operand: name}, nil
	}

	field, err := model.ResolveField(key)
	if err != nil {
		return Clause{}, err
	}

	clause := Clause{Field: field, Op: op, Operand: operand}
	if op == OpLt || op == OpGt || (op == OpEq && field.IsAmount()) {
		if !field.IsAmount() {
			return Clause{}, fmt.Errorf("field %s is not numeric", field.Name())
		}
		clause.number, err = decimal.NewFromString(strings.TrimSpace(operand))
		if err != nil {
			return Clause{}, fmt.Errorf("parsing operand %q: %w", operand, err)
		}
		clause.numeric = true
	}
	return clause, nil
}

func parseOp(c byte) (Op, error) {
	switch c {
	case '=':
		return OpEq, nil
	case '<':
		return OpLt, nil
	case '>':
		return OpGt, nil
	case '?':
		return OpContains, nil
	case '!':
		return OpNotContains, nil
	}
	return 0, fmt.Errorf("unknown operator %q", string(c))
}

// Match reports whether a single transaction satisfies the clause.
func (c Clause) Match(t model.Transaction) bool {
	switch c.Op {
	case OpEq:
		if c.numeric {
			amount, _ := t.AmountValue(c.Field)
			return amount.Equal(c.number)
		}
		return t.StringValue(c.Field) == c.Operand
	case OpLt:
		amount, _ := t.AmountValue(c.Field)
		return amount.LessThan(c.number)
	case OpGt:
		amount, _ := t.AmountValue(c.Field)
		return amount.GreaterThan(c.number)
	case OpContains, OpNotContains:
		found := strings.Contains(
			strings.ToLower(t.StringValue(c.Field)),
			strings.ToLower(c.Operand),
		)
		return found == (c.Op == OpContains)
	}
	return false
}

// Apply returns a new table holding only the transactions every clause
// matches. The input is never modified.
func (p Predicate) Apply(txns []model.Transaction) []model.Transaction {
	out := make([]model.Transaction, 0, len(txns))
	for _, t := range txns {
		matched := true
		for _, c := range p.clauses {
			if !c.Match(t) {
				matched = false
				break
			}
		}
		if matched {
			out = append(out, t)
		}
	}
	return out
}
