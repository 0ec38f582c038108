// Package commands wires the CLI surface to the processing pipeline.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bankcat-dev/bankcat/internal/buildinfo"
	"github.com/bankcat-dev/bankcat/internal/logging"
)

type options struct {
	categoriesPath string
	statementPath  string
	statementType  string
	filterExpr     string
	printOptions   string
	interactive    bool
	loglevel       string
}

// NewRootCommand creates the root CLI command.
func NewRootCommand() *cobra.Command {
	var opts options

	rootCmd := &cobra.Command{
		Use:     "bankcat",
		Short:   "Categorize and summarize bank statement exports",
		Long:    "Tool to process bank statements and categorize the expenses.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logging.Setup(opts.loglevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.categoriesPath, "categories", "c", "", "category definitions file (yaml)")
	flags.StringVarP(&opts.statementPath, "statement", "s", "", "bank statement file (csv)")
	flags.StringVarP(&opts.statementType, "statement-type", "t", "", "bank statement type (AKB or Raiffeisen)")
	flags.StringVarP(&opts.filterExpr, "filter", "f", "", "display filter (e.g. 'Kategorie=unknown,Belastung>50')")
	flags.StringVarP(&opts.printOptions, "print", "p", "table,summary", "print options: table, summary, csv")
	flags.BoolVarP(&opts.interactive, "interactive", "i", false, "classify unknown transactions interactively")
	rootCmd.PersistentFlags().StringVarP(&opts.loglevel, "loglevel", "l", "info", "log level (debug, info, warn, error)")

	_ = rootCmd.MarkFlagRequired("categories")
	_ = rootCmd.MarkFlagRequired("statement")
	_ = rootCmd.MarkFlagRequired("statement-type")

	return rootCmd
}
