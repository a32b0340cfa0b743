package commands

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/linkcheck/internal/config"
	"git.home.luguber.info/inful/linkcheck/internal/docscan"
	"git.home.luguber.info/inful/linkcheck/internal/lint"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"linkcheck.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Check   CheckCmd   `cmd:"" default:"withargs" help:"Validate site-relative links and heading anchors"`
	Watch   WatchCmd   `cmd:"" help:"Re-run validation whenever the documentation tree changes"`
	Rewrite RewriteCmd `cmd:"" help:"Apply site-build link rewrites to a copy of the tree"`
	Init    InitCmd    `cmd:"" help:"Initialize a new configuration file"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// runCheck performs one scan-and-check pass and returns the result together
// with the root that was checked.
func runCheck(cfg *config.Config, rootOverride string, write bool) (*lint.Result, string, error) {
	rootDir := cfg.Root
	if rootOverride != "" {
		rootDir = rootOverride
	}

	scanner := docscan.New(rootDir, docscan.WithExtraExcludes(cfg.Exclude...))
	snapshot, err := scanner.Scan()
	if err != nil {
		return nil, rootDir, err
	}

	checker := lint.NewChecker(snapshot, lint.Options{
		MountPrefix: cfg.MountPrefix,
		Write:       write,
	})
	result, err := checker.Run()
	return result, rootDir, err
}
