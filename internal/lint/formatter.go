package lint

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Formatter formats check results for output.
type Formatter interface {
	Format(w io.Writer, result *Result, root string) error
}

// NewFormatter creates the appropriate formatter based on format string.
func NewFormatter(format string) Formatter {
	switch format {
	case "json":
		return &JSONFormatter{}
	default:
		return &TextFormatter{}
	}
}

// TextFormatter formats results as human-readable text, grouped per file.
type TextFormatter struct{}

// Format outputs the report: issues grouped per file, then a summary block
// and an actionable final message.
func (f *TextFormatter) Format(w io.Writer, result *Result, root string) error {
	if _, err := fmt.Fprintf(w, "Checking links in: %s\n", root); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("━", 60)); err != nil {
		return err
	}

	// Issues arrive grouped by file in scan order; keep that grouping.
	currentFile := ""
	for _, issue := range result.Issues {
		if issue.File != currentFile {
			currentFile = issue.File
			if _, err := fmt.Fprintf(w, "\n%s:\n", issue.File); err != nil {
				return err
			}
		}
		if err := f.formatIssue(w, issue); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("━", 60)); err != nil {
		return err
	}
	if err := f.formatSummary(w, result); err != nil {
		return err
	}
	return f.printFinalMessage(w, result)
}

func (f *TextFormatter) formatIssue(w io.Writer, issue Issue) error {
	line := fmt.Sprintf("  %s %s: %s", issue.Status.Tag(), issue.Kind, issue.Link.Target)

	switch {
	case issue.Fixed:
		line += fmt.Sprintf(" → %s (fixed)", issue.Suggestion)
	case issue.Status == StatusAutoFixable:
		line += fmt.Sprintf(" → %s", issue.Suggestion)
	case issue.Status == StatusNeedsReview:
		line += fmt.Sprintf(" (%d candidates)", len(issue.Candidates))
	case issue.Kind == KindBrokenAnchor:
		line += fmt.Sprintf(" (no heading %q in target)", issue.Target.Anchor)
	}
	if issue.Line > 0 {
		line += fmt.Sprintf("  [line %d]", issue.Line)
	}

	if _, err := fmt.Fprintln(w, line); err != nil {
		return err
	}

	for _, candidate := range issue.Candidates {
		if _, err := fmt.Fprintf(w, "      - %s\n", candidate); err != nil {
			return err
		}
	}
	return nil
}

func (f *TextFormatter) formatSummary(w io.Writer, result *Result) error {
	if _, err := fmt.Fprintf(w, "Results:\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  %d file%s scanned\n", result.FilesScanned, pluralize(result.FilesScanned)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  %d file%s with issues\n", result.FilesWithIssues(), pluralize(result.FilesWithIssues())); err != nil {
		return err
	}

	counts := []struct {
		status Status
		label  string
	}{
		{StatusAutoFixable, "auto-fixable"},
		{StatusNeedsReview, "needs review"},
		{StatusManualCheck, "manual check"},
	}
	for _, entry := range counts {
		if n := result.Count(entry.status); n > 0 {
			if _, err := fmt.Fprintf(w, "  %d %s\n", n, entry.label); err != nil {
				return err
			}
		}
	}
	if result.LinksFixed > 0 {
		if _, err := fmt.Fprintf(w, "  %d link%s fixed\n", result.LinksFixed, pluralize(result.LinksFixed)); err != nil {
			return err
		}
	}
	return nil
}

func (f *TextFormatter) printFinalMessage(w io.Writer, result *Result) error {
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	outstanding := result.Outstanding()
	switch {
	case len(result.Issues) == 0:
		_, err := fmt.Fprintln(w, "✨ All links valid!")
		return err
	case outstanding == 0:
		_, err := fmt.Fprintf(w, "✨ Fixed %d link%s; no issues remain.\n", result.LinksFixed, pluralize(result.LinksFixed))
		return err
	default:
		if fixable := result.Count(StatusAutoFixable) - result.LinksFixed; fixable > 0 {
			if _, err := fmt.Fprintf(w, "%d issue%s can be fixed automatically. Run: linkcheck check --write\n",
				fixable, pluralize(fixable)); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "%d issue%s need%s attention.\n",
			outstanding, pluralize(outstanding), singularVerb(outstanding))
		return err
	}
}

func pluralize(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func singularVerb(n int) string {
	if n == 1 {
		return "s"
	}
	return ""
}

// JSONFormatter formats results as JSON.
type JSONFormatter struct{}

// JSONOutput represents the JSON output structure.
type JSONOutput struct {
	Root             string      `json:"root"`
	FilesScanned     int         `json:"files_scanned"`
	FilesWithIssues  int         `json:"files_with_issues"`
	AutoFixableCount int         `json:"auto_fixable_count"`
	NeedsReviewCount int         `json:"needs_review_count"`
	ManualCheckCount int         `json:"manual_check_count"`
	LinksFixed       int         `json:"links_fixed"`
	Outstanding      int         `json:"outstanding"`
	Issues           []JSONIssue `json:"issues"`
}

// JSONIssue represents a single issue in JSON format.
type JSONIssue struct {
	File       string   `json:"file"`
	Line       int      `json:"line,omitempty"`
	Kind       string   `json:"kind"`
	Status     string   `json:"status"`
	Target     string   `json:"target"`
	Suggestion string   `json:"suggestion,omitempty"`
	Candidates []string `json:"candidates,omitempty"`
	Fixed      bool     `json:"fixed,omitempty"`
}

// Format outputs results in JSON format.
func (f *JSONFormatter) Format(w io.Writer, result *Result, root string) error {
	output := JSONOutput{
		Root:             root,
		FilesScanned:     result.FilesScanned,
		FilesWithIssues:  result.FilesWithIssues(),
		AutoFixableCount: result.Count(StatusAutoFixable),
		NeedsReviewCount: result.Count(StatusNeedsReview),
		ManualCheckCount: result.Count(StatusManualCheck),
		LinksFixed:       result.LinksFixed,
		Outstanding:      result.Outstanding(),
	}

	for _, issue := range result.Issues {
		output.Issues = append(output.Issues, JSONIssue{
			File:       issue.File,
			Line:       issue.Line,
			Kind:       issue.Kind.String(),
			Status:     issue.Status.String(),
			Target:     issue.Link.Target,
			Suggestion: issue.Suggestion,
			Candidates: issue.Candidates,
			Fixed:      issue.Fixed,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
