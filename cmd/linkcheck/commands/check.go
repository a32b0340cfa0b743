package commands

import (
	"fmt"
	"os"

	"git.home.luguber.info/inful/linkcheck/internal/config"
	"git.home.luguber.info/inful/linkcheck/internal/lint"
)

// CheckCmd implements the 'check' command.
type CheckCmd struct {
	Root   string `arg:"" optional:"" help:"Documentation root to check (overrides config)"`
	Write  bool   `short:"w" help:"Apply auto-fixable repairs in place (default is dry-run)"`
	Format string `short:"f" default:"text" enum:"text,json" help:"Output format (text or json)"`
}

// Run executes the check command. The exit code is derived from the count of
// outstanding issues so the command works as a CI gate.
func (cc *CheckCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return err
	}

	result, rootDir, err := runCheck(cfg, cc.Root, cc.Write)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	formatter := lint.NewFormatter(cc.Format)
	if err := formatter.Format(os.Stdout, result, rootDir); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if result.Outstanding() > 0 {
		os.Exit(1)
	}
	return nil
}
