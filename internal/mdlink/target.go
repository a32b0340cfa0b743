package mdlink

import "strings"

// Target is a link destination split into its path, query and anchor
// components. Splitting and reattaching must round-trip: the path may be
// rewritten in between, the suffix components must survive unchanged.
type Target struct {
	Path      string
	Query     string
	Anchor    string
	HasQuery  bool
	HasAnchor bool
}

// SplitTarget splits a raw link target on the first-occurring of '?' and '#'.
// Per the markdown-link convention in use a query precedes an anchor; when
// '#' occurs first the whole remainder is the fragment.
func SplitTarget(raw string) Target {
	t := Target{Path: raw}

	q := strings.IndexByte(raw, '?')
	h := strings.IndexByte(raw, '#')

	switch {
	case h >= 0 && (q < 0 || h < q):
		t.Path = raw[:h]
		t.Anchor = raw[h+1:]
		t.HasAnchor = true
	case q >= 0:
		t.Path = raw[:q]
		rest := raw[q+1:]
		t.HasQuery = true
		if h2 := strings.IndexByte(rest, '#'); h2 >= 0 {
			t.Query = rest[:h2]
			t.Anchor = rest[h2+1:]
			t.HasAnchor = true
		} else {
			t.Query = rest
		}
	}

	return t
}

// String reattaches the components into a semantically equivalent target.
func (t Target) String() string {
	var b strings.Builder
	b.WriteString(t.Path)
	if t.HasQuery {
		b.WriteByte('?')
		b.WriteString(t.Query)
	}
	if t.HasAnchor {
		b.WriteByte('#')
		b.WriteString(t.Anchor)
	}
	return b.String()
}
