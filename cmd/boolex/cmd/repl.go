package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/boolex/internal/tui/repl"
	"github.com/msto63/boolex/pkg/core/version"
)

var (
	replShowAST bool
	replStyle   string
	replHistory bool
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive expression REPL",
	Long: `Starts an interactive session: type an expression and press Enter to
see its truth table, or the syntax error.

Shortcuts:
  Enter       Evaluate the input line
  Up/Down     Previous inputs
  PgUp/PgDn   Scroll the output
  Ctrl+L      Clear the output
  Esc/Ctrl+C  Quit

Commands:
  :ast        Toggle the syntax tree
  :style      Toggle plain/styled tables
  :q          Quit`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().BoolVarP(&replShowAST, "ast", "a", false, "Show the syntax tree")
	replCmd.Flags().StringVar(&replStyle, "style", "", "Text style (plain, styled; default from config)")
	replCmd.Flags().BoolVar(&replHistory, "history", false, "Record expressions in the history store")
}

func runRepl(cmd *cobra.Command, args []string) error {
	opts := reportOptions(cmd, "", replStyle)
	if err := opts.Validate(); err != nil {
		return err
	}

	engine, err := newEngine()
	if err != nil {
		return err
	}

	cfg := repl.Config{
		Engine:  engine,
		Logger:  logger,
		Style:   opts.Style,
		ShowAST: replShowAST || appConfig.Table.ShowAST,
		Version: version.Version,
	}

	if replHistory || appConfig.History.Enabled {
		store, err := openHistory()
		if err != nil {
			return err
		}
		defer store.Close()
		cfg.Recorder = store
	}

	return repl.Run(cfg)
}
