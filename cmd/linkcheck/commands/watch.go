package commands

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"git.home.luguber.info/inful/linkcheck/internal/config"
	"git.home.luguber.info/inful/linkcheck/internal/lint"
	"git.home.luguber.info/inful/linkcheck/internal/logfields"
	"git.home.luguber.info/inful/linkcheck/internal/watch"
)

// WatchCmd implements the 'watch' command: a dry-run check re-executed on
// every change to the documentation tree. It never writes files and never
// exits non-zero on findings; it is an authoring aid, not a CI gate.
type WatchCmd struct {
	Root     string        `arg:"" optional:"" help:"Documentation root to watch (overrides config)"`
	Debounce time.Duration `default:"2s" help:"Settle time after a burst of file changes"`
}

// Run executes the watch command until interrupted.
func (wc *WatchCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return err
	}

	rootDir := cfg.Root
	if wc.Root != "" {
		rootDir = wc.Root
	}

	runOnce := func(context.Context) {
		result, checkedRoot, checkErr := runCheck(cfg, rootDir, false)
		if checkErr != nil {
			slog.Error("Check failed", logfields.Error(checkErr))
			return
		}
		formatter := lint.NewFormatter("text")
		if fmtErr := formatter.Format(os.Stdout, result, checkedRoot); fmtErr != nil {
			slog.Error("Failed to format report", logfields.Error(fmtErr))
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Initial pass before waiting for changes.
	runOnce(ctx)

	watcher := watch.New(rootDir, wc.Debounce, runOnce)
	return watcher.Run(ctx)
}
