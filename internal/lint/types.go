package lint

import "git.home.luguber.info/inful/linkcheck/internal/mdlink"

// Status classifies a finding. A closed enum with exactly four cases so
// switches over it can be checked for exhaustiveness.
type Status int

const (
	// StatusValid means the link resolved; valid links produce no Issue.
	StatusValid Status = iota
	// StatusAutoFixable means the repair heuristic found exactly one
	// plausible target and can rewrite the link without human judgment.
	StatusAutoFixable
	// StatusNeedsReview means multiple candidate targets matched.
	StatusNeedsReview
	// StatusManualCheck means no candidate matched, or the finding is not
	// repairable by search (anchor mismatches).
	StatusManualCheck
)

// String returns the human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusValid:
		return "valid"
	case StatusAutoFixable:
		return "auto-fixable"
	case StatusNeedsReview:
		return "needs-review"
	case StatusManualCheck:
		return "manual-check"
	default:
		return "unknown"
	}
}

// Tag returns the report line prefix for the status.
func (s Status) Tag() string {
	switch s {
	case StatusAutoFixable:
		return "[FIX]"
	case StatusNeedsReview:
		return "[REVIEW]"
	case StatusManualCheck:
		return "[MANUAL]"
	default:
		return ""
	}
}

// Kind distinguishes the two issue types.
type Kind int

const (
	// KindBrokenLink means the target path did not resolve to a document.
	KindBrokenLink Kind = iota
	// KindBrokenAnchor means the path resolved but the requested anchor is
	// absent from the target document.
	KindBrokenAnchor
)

func (k Kind) String() string {
	switch k {
	case KindBrokenLink:
		return "broken-link"
	case KindBrokenAnchor:
		return "broken-anchor"
	default:
		return "unknown"
	}
}

// Issue represents one unresolved link or anchor.
type Issue struct {
	File       string        // owning document, root-relative
	Line       int           // 1-based line number
	Kind       Kind          // broken-link or broken-anchor
	Status     Status        // classification
	Link       mdlink.Link   // the offending link as written
	Target     mdlink.Target // split target components
	Suggestion string        // replacement target when auto-fixable
	Candidates []string      // candidate routes when needs-review
	Fixed      bool          // set when write mode applied the suggestion
}

// Result contains all findings of a single run.
type Result struct {
	FilesScanned int
	Issues       []Issue
	LinksFixed   int
}

// Outstanding returns the number of issues remaining after whatever fixing
// occurred. The run's exit code is a pure function of this count.
func (r *Result) Outstanding() int {
	count := 0
	for _, issue := range r.Issues {
		if !issue.Fixed {
			count++
		}
	}
	return count
}

// Count returns the number of issues with the given status.
func (r *Result) Count(status Status) int {
	count := 0
	for _, issue := range r.Issues {
		if issue.Status == status {
			count++
		}
	}
	return count
}

// FilesWithIssues returns the number of distinct files owning at least one issue.
func (r *Result) FilesWithIssues() int {
	files := make(map[string]struct{})
	for _, issue := range r.Issues {
		files[issue.File] = struct{}{}
	}
	return len(files)
}
