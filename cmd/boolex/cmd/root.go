package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/boolex/foundation/core/log"
	"github.com/msto63/boolex/foundation/logic"
	"github.com/msto63/boolex/internal/history"
	"github.com/msto63/boolex/internal/report"
	"github.com/msto63/boolex/pkg/core/config"
	"github.com/msto63/boolex/pkg/core/logging"
	"github.com/msto63/boolex/pkg/core/version"
)

var (
	cfgFile    string
	verbose    bool
	showAuthor bool

	appConfig *config.Config
	logger    *mdwlog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "boolex",
	Short: "boolex - boolean logic expression parser",
	Long: `boolex parses boolean logic expressions, builds their syntax trees
and prints truth tables.

Operators (tightest first):
  NOT  !
  AND  &    NAND  !&
  XOR  ^    XNOR  !^
  OR   |    NOR   !|

Identifiers are single upper case letters A-Z. Keywords are accepted in
upper or lower case; one expression per line.`,
	Version:           version.Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showAuthor {
			fmt.Fprintln(cmd.OutOrStdout(), version.Author)
			return nil
		}
		return cmd.Help()
	},
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: $BOOLEX_CONFIG or ./configs/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.Flags().BoolVar(&showAuthor, "author", false, "Print author")
}

// setup loads the configuration and builds the logger for every command
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return err
	}
	appConfig = cfg

	logger = logging.NewLogger(logging.LoggerConfig{
		ServiceName:   "boolex",
		Level:         cfg.General.LogLevel,
		Format:        cfg.General.LogFormat,
		Output:        cmd.ErrOrStderr(),
		CorrelationID: uuid.New().String(),
		Verbose:       verbose,
	})
	mdwlog.SetDefault(logger)

	logger.Debug("Configuration loaded", mdwlog.Fields{
		"command":       cmd.Name(),
		"max_variables": cfg.Table.MaxVariables,
		"history":       cfg.History.Enabled,
	})
	return nil
}

// newEngine creates a logic engine limited by the configured table width
func newEngine() (*logic.Engine, error) {
	return logic.New(logic.Options{
		Logger:       logger,
		MaxVariables: appConfig.Table.MaxVariables,
	})
}

// openHistory opens the configured history store
func openHistory() (*history.Store, error) {
	return history.Open(history.Config{
		Path:   appConfig.History.Path,
		Logger: logger,
	})
}

// inputError carries the input a failure refers to so syntax errors can be
// printed with the offending line
type inputError struct {
	err   error
	input string
}

func (e *inputError) Error() string {
	return report.DescribeError(e.err, e.input)
}

func (e *inputError) Unwrap() error {
	return e.err
}

func withInput(err error, input string) error {
	if err == nil {
		return nil
	}
	return &inputError{err: err, input: input}
}

func printError(w io.Writer, err error) {
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}
