package commands

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/linkcheck/internal/config"
	"git.home.luguber.info/inful/linkcheck/internal/docscan"
	"git.home.luguber.info/inful/linkcheck/internal/routes"
)

// RewriteCmd implements the 'rewrite' command: it copies the documentation
// tree into an output directory with the site-build link rewrites applied
// (.md targets to pretty routes, then optional base-path prefixing).
// The source tree is never modified.
type RewriteCmd struct {
	Source   string `arg:"" optional:"" help:"Documentation root to rewrite (overrides config)"`
	Output   string `short:"o" default:"./site-content" help:"Output directory for the rewritten tree"`
	BasePath string `help:"Deployment base path to prefix onto absolute links (overrides config)"`
}

// Run executes the rewrite command.
func (rc *RewriteCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return err
	}

	source := cfg.Root
	if rc.Source != "" {
		source = rc.Source
	}
	basePath := cfg.BasePath
	if rc.BasePath != "" {
		basePath = rc.BasePath
	}

	if _, err := os.Stat(source); err != nil {
		return fmt.Errorf("source tree not accessible: %w", err)
	}

	transform := func(content string) string {
		content = routes.PrettyLinks(content)
		if basePath != "" {
			content = routes.WithBasePath(content, basePath)
		}
		return content
	}

	files, err := rewriteTree(source, rc.Output, transform)
	if err != nil {
		return err
	}

	fmt.Printf("Rewrote %d markdown file(s) into %s\n", files, rc.Output)
	return nil
}

// rewriteTree copies source into output, transforming markdown files and
// copying everything else verbatim. Excluded directories are skipped the
// same way the scanner skips them.
func rewriteTree(source, output string, transform func(string) string) (int, error) {
	transformed := 0

	err := filepath.WalkDir(source, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, relErr := filepath.Rel(source, path)
		if relErr != nil {
			return relErr
		}
		dest := filepath.Join(output, rel)

		if d.IsDir() {
			if path != source && docscan.DefaultExcluded(d.Name()) {
				return fs.SkipDir
			}
			return os.MkdirAll(dest, 0o750)
		}
		if docscan.DefaultExcluded(d.Name()) {
			return nil
		}

		if strings.HasSuffix(d.Name(), ".md") {
			// #nosec G304 -- path comes from the walk, not user input
			data, readErr := os.ReadFile(path)
			if readErr != nil {
				return fmt.Errorf("failed to read %s: %w", rel, readErr)
			}
			if writeErr := os.WriteFile(dest, []byte(transform(string(data))), 0o600); writeErr != nil {
				return fmt.Errorf("failed to write %s: %w", dest, writeErr)
			}
			transformed++
			return nil
		}

		return copyFile(path, dest)
	})

	return transformed, err
}

// copyFile copies a single file from src to dst, preserving permissions.
func copyFile(src, dst string) error {
	// #nosec G304 -- src comes from the walk, not user input
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() {
		_ = srcFile.Close()
	}()

	// #nosec G304 -- dst is derived from the walk under the output root
	dstFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		_ = dstFile.Close()
	}()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		return err
	}

	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}
	return os.Chmod(dst, srcInfo.Mode())
}
