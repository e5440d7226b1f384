package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/boolex/foundation/core/error"
	mdwlog "github.com/msto63/boolex/foundation/core/log"
	"github.com/msto63/boolex/foundation/logic"
	"github.com/msto63/boolex/internal/history"
	"github.com/msto63/boolex/internal/report"
)

var (
	parseFile       string
	parseExpression string
	parseShowAST    bool
	parseOutput     string
	parseStyle      string
	parseHistory    bool
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a file of expressions or a single expression",
	Long: `Parses a file with logical expressions (one per line) or a single
expression given on the command line and prints a truth table for each.

Examples:
  boolex parse --expression "A AND (B OR NOT C)"
  boolex parse --file expressions.txt --ast
  boolex parse -e "A ^ B" --output yaml
  boolex parse -e "A !& B" --style styled --history`,
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseFile, "file", "f", "", "Path to the file for parsing")
	parseCmd.Flags().StringVarP(&parseExpression, "expression", "e", "", "Logical expression for parsing")
	parseCmd.Flags().BoolVarP(&parseShowAST, "ast", "a", false, "Show the syntax tree")
	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", "", "Output format (text, yaml, json; default from config)")
	parseCmd.Flags().StringVar(&parseStyle, "style", "", "Text style (plain, styled; default from config)")
	parseCmd.Flags().BoolVar(&parseHistory, "history", false, "Record expressions in the history store")

	parseCmd.MarkFlagsMutuallyExclusive("file", "expression")
	parseCmd.MarkFlagsOneRequired("file", "expression")
}

func runParse(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	opts := reportOptions(cmd, parseOutput, parseStyle)
	if err := opts.Validate(); err != nil {
		return err
	}
	showAST := parseShowAST || appConfig.Table.ShowAST

	var content string
	if parseFile != "" {
		data, err := os.ReadFile(parseFile)
		if err != nil {
			return mdwerror.Wrap(err, "failed to read file").
				WithCode(mdwerror.CodeNotFound).
				WithDetail("path", parseFile).
				WithOperation("parse")
		}
		content = string(data)
		if opts.IsText() {
			fmt.Fprintf(out, "Processing file: %s\n\n", parseFile)
		}
	} else {
		content = parseExpression + "\n"
		if opts.IsText() {
			fmt.Fprintln(out, "Processing expression from console")
		}
	}

	engine, err := newEngine()
	if err != nil {
		return err
	}

	results, err := engine.Process(content)
	if err != nil {
		return withInput(err, content)
	}

	if err := report.Write(out, report.Build(results, showAST), opts); err != nil {
		return err
	}

	if parseHistory || appConfig.History.Enabled {
		return recordResults(commandContext(cmd), results)
	}
	return nil
}

// reportOptions merges output flags with the configured defaults
func reportOptions(cmd *cobra.Command, output, style string) report.Options {
	opts := report.Options{
		Format: appConfig.Table.Output,
		Style:  appConfig.Table.Style,
	}
	if cmd.Flags().Changed("output") {
		opts.Format = output
	}
	if cmd.Flags().Changed("style") {
		opts.Style = style
	}
	return opts
}

// recordResults writes every processed expression to the history store
func recordResults(ctx context.Context, results []logic.Result) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	for _, r := range results {
		entry := history.NewEntry(r)
		if err := store.Record(ctx, &entry); err != nil {
			return err
		}
	}

	logger.Debug("Expressions recorded", mdwlog.Fields{"count": len(results)})
	return nil
}
