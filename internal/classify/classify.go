// Package classify implements the interactive classification workflow: it
// walks the filtered statement for unknown transactions and grows the
// category definitions from operator input.
package classify

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/bankcat-dev/bankcat/internal/categories"
	"github.com/bankcat-dev/bankcat/internal/model"
)

// LoadFunc reloads the category definitions and re-runs the
// parse/categorize/filter pipeline. It is called at the head of every
// outer pass so on-disk edits take effect immediately.
type LoadFunc func() (*categories.Definitions, []model.Transaction, error)

// Session runs the interactive classification workflow.
type Session struct {
	CategoriesPath string
	Load           LoadFunc
	In             io.Reader
	Out            io.Writer
}

// Run drives the classification loop until no unknown transactions remain
// or the operator closes the input. Every accepted classification is
// persisted before the next prompt, so aborting at any point leaves the
// definitions file consistent.
func (s *Session) Run() error {
	in := bufio.NewReader(s.In)
	offset := 0

outer:
	for {
		defs, txns, err := s.Load()
		if err != nil {
			return err
		}

		for i := offset; i < len(txns); i++ {
			txn := txns[i]
			if txn.Kategorie != model.UnknownCategory {
				continue
			}

			s.printTransaction(txn)
			category, ok, err := s.promptCategory(in, defs)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			if category == model.UnknownCategory {
				continue
			}

			pattern, ok, err := s.promptPattern(in, txn.Buchungstext)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}

			defs.Append(category, pattern)
			if err := defs.Store(s.CategoriesPath); err != nil {
				return err
			}

			if pattern != txn.Buchungstext {
				// A generalized pattern may have reclassified rows the
				// in-memory table still shows as unknown; reload and
				// rescan from directly after this position.
				offset = i + 1
				continue outer
			}
		}
		break
	}

	fmt.Fprintln(s.Out, "No unknown transactions left.")
	return nil
}

func (s *Session) printTransaction(t model.Transaction) {
	bold := color.New(color.Bold)
	fmt.Fprintln(s.Out)
	bold.Fprintf(s.Out, "#%-4d %s\n", t.ID, t.Datum)
	fmt.Fprintf(s.Out, "  Belastung:  %s\n", t.Belastung.StringFixed(2))
	fmt.Fprintf(s.Out, "  Gutschrift: %s\n", t.Gutschrift.StringFixed(2))
	fmt.Fprintf(s.Out, "  Text:       %s\n", t.Buchungstext)
}

// promptCategory shows the known categories in two columns and reads a
// selection: a numeric index, an existing name, or a new name (which
// creates the category on accept). ok is false when the operator closed
// the input.
func (s *Session) promptCategory(in *bufio.Reader, defs *categories.Definitions) (category string, ok bool, err error) {
	names := append([]string{model.UnknownCategory}, defs.Names()...)
	for i := 0; i < len(names); i += 2 {
		left := fmt.Sprintf("[%d] %s", i, names[i])
		if i+1 < len(names) {
			fmt.Fprintf(s.Out, "%-30s [%d] %s\n", left, i+1, names[i+1])
		} else {
			fmt.Fprintln(s.Out, left)
		}
	}

	for {
		color.New(color.FgCyan).Fprint(s.Out, "Category (index or name): ")
		line, ok, err := readLine(in)
		if err != nil || !ok {
			return "", ok, err
		}
		if line == "" {
			continue
		}
		if idx, convErr := strconv.Atoi(line); convErr == nil {
			if idx < 0 || idx >= len(names) {
				fmt.Fprintf(s.Out, "index %d out of range\n", idx)
				continue
			}
			return names[idx], true, nil
		}
		// Typed names pass through: an unrecognized name creates a new
		// category once a pattern is accepted.
		return line, true, nil
	}
}

// promptPattern reads the match pattern, defaulting to the transaction's
// full booking text. ok is false when the operator closed the input.
func (s *Session) promptPattern(in *bufio.Reader, fallback string) (pattern string, ok bool, err error) {
	color.New(color.FgCyan).Fprintf(s.Out, "Pattern [%s]: ", fallback)
	line, ok, err := readLine(in)
	if err != nil || !ok {
		return "", ok, err
	}
	if line == "" {
		return fallback, true, nil
	}
	return line, true, nil
}

// readLine reads one trimmed input line. ok is false on end of input,
// which the workflow treats as a normal exit, not an error.
func readLine(in *bufio.Reader) (line string, ok bool, err error) {
	line, err = in.ReadString('\n')
	if errors.Is(err, io.EOF) {
		if strings.TrimSpace(line) == "" {
			return "", false, nil
		}
		return strings.TrimSpace(line), true, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), true, nil
}
