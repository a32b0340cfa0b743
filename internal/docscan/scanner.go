// Package docscan discovers the markdown documents a run operates on.
//
// Discovery happens exactly once per run: the returned Snapshot is the fixed
// universe for resolution and candidate search, so in-place repairs later in
// the run cannot change which files are considered.
package docscan

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"git.home.luguber.info/inful/linkcheck/internal/logfields"
	"git.home.luguber.info/inful/linkcheck/internal/util/sets"
)

const markdownExt = ".md"

// ExcludeFunc decides whether a path segment (directory or file name) should
// be skipped. Exclusion rules are data, not control flow, so synthetic trees
// in tests can supply their own.
type ExcludeFunc func(segment string) bool

// defaultExcluded directories: conventionally hidden (leading dot or
// underscore), version control, dependency and build output directories.
var defaultExcluded = sets.New(
	"node_modules",
	"vendor",
	"dist",
	"build",
	"public",
	"target",
)

// DefaultExcluded is the built-in exclusion predicate.
func DefaultExcluded(segment string) bool {
	if segment == "" {
		return false
	}
	if segment[0] == '_' || segment[0] == '.' {
		return true
	}
	return defaultExcluded.Has(segment)
}

// Scanner walks a documentation root and collects markdown documents.
type Scanner struct {
	root    string
	exclude ExcludeFunc
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithExclude replaces the exclusion predicate.
func WithExclude(fn ExcludeFunc) Option {
	return func(s *Scanner) { s.exclude = fn }
}

// WithExtraExcludes keeps the default predicate and additionally skips the
// given segment names.
func WithExtraExcludes(names ...string) Option {
	extra := sets.New(names...)
	return func(s *Scanner) {
		s.exclude = func(segment string) bool {
			return DefaultExcluded(segment) || extra.Has(segment)
		}
	}
}

// New creates a scanner for the given root directory.
func New(root string, opts ...Option) *Scanner {
	s := &Scanner{root: root, exclude: DefaultExcluded}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan walks the root and returns the document snapshot.
//
// A missing or unreadable root is fatal. Unreadable subdirectories are
// skipped: partial documentation trees are common and should not abort the
// whole run.
func (s *Scanner) Scan() (*Snapshot, error) {
	info, err := os.Stat(s.root)
	if err != nil {
		return nil, fmt.Errorf("documentation root not accessible: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("documentation root is not a directory: %s", s.root)
	}

	var files []string
	err = filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path != s.root && errors.Is(err, fs.ErrPermission) {
				slog.Debug("Skipping unreadable directory", logfields.Path(path))
				return fs.SkipDir
			}
			return err
		}

		if d.IsDir() {
			if path != s.root && s.exclude(d.Name()) {
				return fs.SkipDir
			}
			return nil
		}

		if s.exclude(d.Name()) {
			return nil
		}
		if !strings.HasSuffix(d.Name(), markdownExt) {
			return nil
		}

		rel, relErr := filepath.Rel(s.root, path)
		if relErr != nil {
			return relErr
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk documentation root: %w", err)
	}

	sort.Strings(files)
	return newSnapshot(s.root, files), nil
}
