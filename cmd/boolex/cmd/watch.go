package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/boolex/foundation/core/error"
	mdwlog "github.com/msto63/boolex/foundation/core/log"
	"github.com/msto63/boolex/internal/report"
)

var (
	watchShowAST bool
	watchOutput  string
	watchStyle   string
)

var watchCmd = &cobra.Command{
	Use:   "watch FILE",
	Short: "Re-process a file every time it is written",
	Long: `Processes FILE and prints its truth tables, then waits for changes and
prints them again after every write. Syntax errors are reported and
watching continues. Stop with Ctrl+C.

Examples:
  boolex watch expressions.txt
  boolex watch expressions.txt --ast --style styled`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().BoolVarP(&watchShowAST, "ast", "a", false, "Show the syntax tree")
	watchCmd.Flags().StringVarP(&watchOutput, "output", "o", "", "Output format (text, yaml, json; default from config)")
	watchCmd.Flags().StringVar(&watchStyle, "style", "", "Text style (plain, styled; default from config)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := args[0]
	if _, err := os.Stat(path); err != nil {
		return mdwerror.Wrap(err, "cannot watch file").
			WithCode(mdwerror.CodeNotFound).
			WithDetail("path", path).
			WithOperation("watch")
	}

	opts := reportOptions(cmd, watchOutput, watchStyle)
	if err := opts.Validate(); err != nil {
		return err
	}
	showAST := watchShowAST || appConfig.Table.ShowAST

	engine, err := newEngine()
	if err != nil {
		return err
	}

	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	process := func() {
		data, err := os.ReadFile(path)
		if err != nil {
			printError(errOut, err)
			return
		}
		content := string(data)

		if opts.IsText() {
			fmt.Fprintf(out, "Processing file: %s (%s)\n\n", path, time.Now().Format("15:04:05"))
		}
		results, err := engine.Process(content)
		if err != nil {
			printError(errOut, withInput(err, content))
			return
		}
		if err := report.Write(out, report.Build(results, showAST), opts); err != nil {
			printError(errOut, err)
		}
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return watchFile(ctx, path, appConfig.Watch.Debounce.Duration, process)
}

// watchFile calls process once, then again after writes to path settle for
// debounce. The parent directory is watched so editors that replace the
// file on save are followed. Returns when ctx is done.
func watchFile(ctx context.Context, path string, debounce time.Duration, process func()) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return mdwerror.Wrap(err, "invalid path").WithOperation("watch")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return mdwerror.Wrap(err, "failed to create file watcher").WithOperation("watch")
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return mdwerror.Wrap(err, "failed to watch directory").
			WithDetail("path", filepath.Dir(abs)).
			WithOperation("watch")
	}

	log := logger.WithField("file", abs)
	log.Debug("Watching file", mdwlog.Fields{"debounce": debounce.String()})

	process()

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			log.Debug("Watch stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
				continue
			}
			log.Trace("File event", mdwlog.Fields{"op": event.Op.String()})
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			process()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.WarnWithErr("File watcher error", err)
		}
	}
}
