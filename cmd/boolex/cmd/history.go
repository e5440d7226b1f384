package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/msto63/boolex/internal/history"
	"github.com/msto63/boolex/internal/report"
)

var (
	historyLimit  int
	historyUnique bool
	historyOutput string
	historyInput  string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded expressions",
	Long: `Lists expressions recorded by parse --history, the REPL or with
history.enabled set in the config, newest first.

Examples:
  boolex history --limit 10
  boolex history --unique
  boolex history show 2f1c...
  boolex history export --output history.jsonl.zst
  boolex history import --input history.jsonl.zst`,
	RunE: runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show a recorded expression with its truth table",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the history as JSON lines (zstd for .zst files)",
	RunE:  runHistoryExport,
}

var historyImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import JSON lines written by export, skipping known ids",
	RunE:  runHistoryImport,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded expressions",
	RunE:  runHistoryClear,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyImportCmd)
	historyCmd.AddCommand(historyClearCmd)

	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "Maximum number of entries (default from config)")
	historyCmd.Flags().BoolVarP(&historyUnique, "unique", "u", false, "Keep only the newest entry per expression")

	historyExportCmd.Flags().StringVarP(&historyOutput, "output", "o", "", "Export file")
	historyExportCmd.MarkFlagRequired("output")

	historyImportCmd.Flags().StringVarP(&historyInput, "input", "i", "", "Import file")
	historyImportCmd.MarkFlagRequired("input")
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	limit := appConfig.History.Limit
	if cmd.Flags().Changed("limit") {
		limit = historyLimit
	}

	entries, err := store.List(commandContext(cmd), history.ListOptions{Limit: limit, Unique: historyUnique})
	if err != nil {
		return err
	}

	writeHistory(cmd.OutOrStdout(), entries)
	return nil
}

// writeHistory prints one line per entry: timestamp, id, variable count, source
func writeHistory(w io.Writer, entries []*history.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No recorded expressions")
		return
	}
	for _, e := range entries {
		fmt.Fprintf(w, "%s  %s  %2d  %s\n",
			e.CreatedAt.Local().Format("2006-01-02 15:04:05"), e.ID, len(e.Variables), e.Source)
	}
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	entry, err := store.Get(commandContext(cmd), args[0])
	if err != nil {
		return err
	}

	engine, err := newEngine()
	if err != nil {
		return err
	}
	results, err := engine.Process(entry.Source)
	if err != nil {
		return withInput(err, entry.Source)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ID:       %s\n", entry.ID)
	fmt.Fprintf(out, "Recorded: %s\n", entry.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(out, "Digest:   %s\n", entry.Digest)
	fmt.Fprintf(out, "True:     %d of %d rows\n\n", entry.TrueRows, entry.Rows)

	return report.Write(out, report.Build(results, true), report.Options{Style: appConfig.Table.Style})
}

func runHistoryExport(cmd *cobra.Command, args []string) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	w, err := history.OpenExport(historyOutput)
	if err != nil {
		return err
	}

	n, err := store.Export(commandContext(cmd), w)
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d entries to %s\n", n, historyOutput)
	return nil
}

func runHistoryImport(cmd *cobra.Command, args []string) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	r, err := history.OpenImport(historyInput)
	if err != nil {
		return err
	}
	defer r.Close()

	stats, err := store.Import(commandContext(cmd), r)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d entries, skipped %d\n", stats.Imported, stats.Skipped)
	return nil
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	deleted, err := store.Clear(commandContext(cmd))
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d entries\n", deleted)
	return nil
}
