package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/bankcat-dev/bankcat/internal/categories"
	"github.com/bankcat-dev/bankcat/internal/classify"
	"github.com/bankcat-dev/bankcat/internal/filter"
	"github.com/bankcat-dev/bankcat/internal/model"
	"github.com/bankcat-dev/bankcat/internal/report"
	"github.com/bankcat-dev/bankcat/internal/statement"
)

// printOptions is the parsed --print selector.
type printOptions struct {
	table   bool
	summary bool
	csv     bool
}

// parsePrintOptions parses the comma-combination of output formats. The
// csv format replaces the human-readable ones and cannot be combined with
// them.
func parsePrintOptions(s string) (printOptions, error) {
	var opts printOptions
	for _, part := range strings.Split(s, ",") {
		switch strings.TrimSpace(part) {
		case "table":
			opts.table = true
		case "summary":
			opts.summary = true
		case "csv":
			opts.csv = true
		case "":
		default:
			return printOptions{}, fmt.Errorf("unknown print option %q", strings.TrimSpace(part))
		}
	}
	if opts.csv && (opts.table || opts.summary) {
		return printOptions{}, fmt.Errorf("print option 'csv' cannot be combined with others")
	}
	return opts, nil
}

func run(opts options) error {
	printOpts, err := parsePrintOptions(opts.printOptions)
	if err != nil {
		return err
	}

	if opts.interactive {
		session := &classify.Session{
			CategoriesPath: opts.categoriesPath,
			Load:           func() (*categories.Definitions, []model.Transaction, error) { return loadPipeline(opts) },
			In:             os.Stdin,
			Out:            os.Stdout,
		}
		return session.Run()
	}

	_, txns, err := loadPipeline(opts)
	if err != nil {
		return err
	}

	if printOpts.csv {
		report.RenderCSV(os.Stdout, txns)
	}
	if printOpts.table {
		report.RenderTable(os.Stdout, txns)
	}
	if printOpts.summary {
		report.RenderSummary(os.Stdout, report.Summarize(txns))
	}
	return nil
}

// loadPipeline runs the read side once: load definitions, parse the
// statement, categorize, filter.
func loadPipeline(opts options) (*categories.Definitions, []model.Transaction, error) {
	defs, err := categories.Load(opts.categoriesPath)
	if err != nil {
		return nil, nil, err
	}

	parser, err := statement.DefaultRegistry().Get(opts.statementType)
	if err != nil {
		return nil, nil, err
	}

	f, err := os.Open(opts.statementPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening statement: %w", err)
	}
	defer f.Close()

	txns, err := parser.Parse(f)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing %s statement: %w", parser.Type(), err)
	}
	txns = defs.Categorize(txns)

	pred, err := filter.Parse(opts.filterExpr, defs)
	if err != nil {
		return nil, nil, err
	}
	filtered := pred.Apply(txns)

	log.Debug().
		Int("parsed", len(txns)).
		Int("filtered", len(filtered)).
		Int("categories", defs.Len()).
		Msg("pipeline loaded")

	return defs, filtered, nil
}
