// Package lint runs the link-integrity pass: extract, resolve, classify and
// optionally repair site-relative links across a document snapshot.
package lint

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"git.home.luguber.info/inful/linkcheck/internal/docscan"
	"git.home.luguber.info/inful/linkcheck/internal/logfields"
	"git.home.luguber.info/inful/linkcheck/internal/mdlink"
	"git.home.luguber.info/inful/linkcheck/internal/resolve"
	"git.home.luguber.info/inful/linkcheck/internal/util/sets"
)

// Options configures a Checker.
type Options struct {
	// MountPrefix is stripped from link targets before resolution.
	MountPrefix string
	// Write applies auto-fixable repairs in place. Default is dry-run.
	Write bool
}

// Checker performs a single synchronous pass over a document snapshot.
// All state is per-run; nothing survives between runs.
type Checker struct {
	snap     *docscan.Snapshot
	resolver *resolve.Resolver
	write    bool

	// content holds every document read eagerly before any writes, so
	// repairs cannot change what later files see.
	content map[string][]byte
	anchors map[string]sets.Set[string]
}

// NewChecker creates a checker over the given snapshot.
func NewChecker(snap *docscan.Snapshot, opts Options) *Checker {
	return &Checker{
		snap:     snap,
		resolver: resolve.New(snap, opts.MountPrefix),
		write:    opts.Write,
		content:  make(map[string][]byte, snap.Len()),
		anchors:  make(map[string]sets.Set[string]),
	}
}

// Run processes every document and returns the accumulated result.
// A read failure on an enumerated file is fatal: silently dropping a file
// from analysis would create false negatives.
func (c *Checker) Run() (*Result, error) {
	for _, rel := range c.snap.Files() {
		// #nosec G304 -- paths come from the scanner walk, not user input
		data, err := os.ReadFile(c.snap.Abs(rel))
		if err != nil {
			return nil, fmt.Errorf("failed to read document %s: %w", rel, err)
		}
		c.content[rel] = data
	}

	result := &Result{FilesScanned: c.snap.Len()}

	for _, rel := range c.snap.Files() {
		issues := c.checkDocument(rel)
		if len(issues) == 0 {
			continue
		}
		if c.write {
			if err := c.applyFixes(rel, issues); err != nil {
				return nil, err
			}
			for _, issue := range issues {
				if issue.Fixed {
					result.LinksFixed++
				}
			}
		}
		result.Issues = append(result.Issues, issues...)
	}

	mode := "dry-run"
	if c.write {
		mode = "write"
	}
	slog.Debug("Link check completed",
		logfields.Mode(mode),
		logfields.Count(result.FilesScanned),
		logfields.Issues(len(result.Issues)))

	return result, nil
}

// checkDocument validates every site-relative link in one document.
func (c *Checker) checkDocument(rel string) []Issue {
	links := mdlink.ExtractLinks(string(c.content[rel]))

	var issues []Issue
	for _, link := range links {
		target := mdlink.SplitTarget(link.Target)

		resolved, ok := c.resolver.Resolve(target.Path)
		if ok {
			if target.HasAnchor && target.Anchor != "" && !c.anchorsFor(resolved).Has(target.Anchor) {
				// Anchor mismatches cannot be repaired by search: the
				// content, not the path, is wrong.
				issues = append(issues, Issue{
					File:   rel,
					Line:   link.Line,
					Kind:   KindBrokenAnchor,
					Status: StatusManualCheck,
					Link:   link,
					Target: target,
				})
			}
			continue
		}

		status, suggestion, candidates := c.classify(target)
		issues = append(issues, Issue{
			File:       rel,
			Line:       link.Line,
			Kind:       KindBrokenLink,
			Status:     status,
			Link:       link,
			Target:     target,
			Suggestion: suggestion,
			Candidates: candidates,
		})
	}

	return issues
}

// anchorsFor returns the anchor set of a resolved document, extracting on
// first use.
func (c *Checker) anchorsFor(rel string) sets.Set[string] {
	if anchors, ok := c.anchors[rel]; ok {
		return anchors
	}
	anchors := mdlink.ExtractAnchors(string(c.content[rel]))
	c.anchors[rel] = anchors
	return anchors
}

// applyFixes rewrites auto-fixable links in the original document text.
// Each substitution is scoped to the line the link was extracted from, so
// identical markup elsewhere in the document, code samples included, stays
// untouched. Repeated identical links on one line each carry their own
// issue and consume one occurrence apiece.
func (c *Checker) applyFixes(rel string, issues []Issue) error {
	lines := strings.Split(string(c.content[rel]), "\n")
	changed := false

	for i := range issues {
		issue := &issues[i]
		if issue.Status != StatusAutoFixable || issue.Suggestion == "" {
			continue
		}
		idx := issue.Link.Line - 1
		if idx < 0 || idx >= len(lines) {
			continue
		}
		if !strings.Contains(lines[idx], issue.Link.Markup) {
			continue
		}
		replacement := "[" + issue.Link.Text + "](" + issue.Suggestion + ")"
		lines[idx] = strings.Replace(lines[idx], issue.Link.Markup, replacement, 1)
		issue.Fixed = true
		changed = true
		slog.Debug("Rewrote link",
			logfields.File(rel),
			logfields.Target(issue.Link.Target),
			slog.String("replacement", issue.Suggestion))
	}

	if !changed {
		return nil
	}

	text := strings.Join(lines, "\n")
	if err := os.WriteFile(c.snap.Abs(rel), []byte(text), 0o600); err != nil {
		return fmt.Errorf("failed to write repaired document %s: %w", rel, err)
	}
	c.content[rel] = []byte(text)
	return nil
}
