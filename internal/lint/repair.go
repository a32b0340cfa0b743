package lint

import (
	"path"
	"strings"

	"git.home.luguber.info/inful/linkcheck/internal/mdlink"
	"git.home.luguber.info/inful/linkcheck/internal/resolve"
)

const markdownExt = ".md"

// classify searches the snapshot for plausible targets of an unresolved link
// and derives the repair classification.
//
// Two signals come from the broken path: the expected filename (last segment
// plus markdown extension) and the expected parent directory name. A
// basename match whose parent also matches short-circuits the search.
func (c *Checker) classify(target mdlink.Target) (Status, string, []string) {
	trimmed := strings.Trim(c.resolver.Normalize(target.Path), "/")
	if trimmed == "" {
		return StatusManualCheck, "", nil
	}

	segments := strings.Split(trimmed, "/")
	base := segments[len(segments)-1]

	wantFile := base
	if !strings.HasSuffix(wantFile, markdownExt) {
		wantFile += markdownExt
	}
	wantDir := strings.TrimSuffix(wantFile, markdownExt)

	wantParent := ""
	if len(segments) > 1 {
		wantParent = segments[len(segments)-2]
	}

	var candidates []string
	for _, f := range c.snap.Files() {
		name := path.Base(f)
		parent := path.Base(path.Dir(f))

		if name == wantFile {
			if wantParent != "" && parent == wantParent {
				return StatusAutoFixable, suggest(target, f), nil
			}
			candidates = append(candidates, f)
			continue
		}

		// Directory-style candidate: an index file whose containing
		// directory carries the expected name.
		if name == "index.md" && parent == wantDir {
			candidates = append(candidates, f)
		}
	}

	switch len(candidates) {
	case 0:
		return StatusManualCheck, "", nil
	case 1:
		// A lone match is presumed correct even without a parent-directory
		// hit. Existing behavior, kept for compatibility.
		return StatusAutoFixable, suggest(target, candidates[0]), nil
	default:
		routes := make([]string, 0, len(candidates))
		for _, f := range candidates {
			routes = append(routes, resolve.Route(f))
		}
		return StatusNeedsReview, "", routes
	}
}

// suggest builds the replacement target: the candidate's site-relative route
// with the original query and anchor reattached.
func suggest(target mdlink.Target, rel string) string {
	target.Path = resolve.Route(rel)
	return target.String()
}
