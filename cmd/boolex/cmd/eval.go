package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/boolex/foundation/core/error"
	mdwlog "github.com/msto63/boolex/foundation/core/log"
	mdwast "github.com/msto63/boolex/foundation/logic/ast"
	"github.com/msto63/boolex/internal/assign"
)

var (
	evalSet  string
	evalJSON string
)

var evalCmd = &cobra.Command{
	Use:   "eval [expression]",
	Short: "Evaluate expressions under one assignment",
	Long: `Evaluates each expression under a single variable assignment without
enumerating the truth table. Unassigned variables are false.

Examples:
  boolex eval "A AND NOT B" --set A=1,B=0
  boolex eval "A ^ B" --json '{"A": true, "B": 0}'
  echo "A | B" | boolex eval --set B=1`,
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().StringVarP(&evalSet, "set", "s", "", "Assignment list, e.g. A=1,B=0")
	evalCmd.Flags().StringVar(&evalJSON, "json", "", `Assignment object, e.g. {"A":true,"B":0}`)

	evalCmd.MarkFlagsMutuallyExclusive("set", "json")
}

func runEval(cmd *cobra.Command, args []string) error {
	input, err := getInputText(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	if strings.TrimSpace(input) == "" {
		return mdwerror.New("no expression to evaluate").
			WithCode(mdwerror.CodeEmptyInput).
			WithOperation("eval")
	}

	var assignment mdwast.Assignment
	if cmd.Flags().Changed("json") {
		assignment, err = assign.ParseJSON([]byte(evalJSON))
	} else {
		assignment, err = assign.ParseSet(evalSet)
	}
	if err != nil {
		return err
	}

	engine, err := newEngine()
	if err != nil {
		return err
	}

	evaluations, err := engine.Evaluate(input, assignment)
	if err != nil {
		return withInput(err, input)
	}

	out := cmd.OutOrStdout()
	for _, e := range evaluations {
		if unset := unassigned(e.Variables, assignment); unset != "" {
			logger.Warn("Unassigned variables default to false", mdwlog.Fields{
				"expression": e.Index,
				"variables":  unset,
			})
		}

		if len(evaluations) > 1 {
			fmt.Fprintf(out, "Expression %d: ", e.Index)
		}
		fmt.Fprintf(out, "result: %d\n", bit(e.Value))
	}
	return nil
}

// getInputText reads piped stdin, otherwise joins the arguments
func getInputText(stdin io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " ") + "\n", nil
	}

	if f, ok := stdin.(*os.File); ok {
		stat, err := f.Stat()
		if err != nil || stat.Mode()&os.ModeCharDevice != 0 {
			return "", nil
		}
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", mdwerror.Wrap(err, "failed to read stdin").WithOperation("eval")
	}
	return string(data), nil
}

func unassigned(vars []rune, assignment mdwast.Assignment) string {
	var b strings.Builder
	for _, v := range vars {
		if _, ok := assignment[v]; !ok {
			b.WriteRune(v)
		}
	}
	return b.String()
}

func bit(v bool) int {
	if v {
		return 1
	}
	return 0
}
