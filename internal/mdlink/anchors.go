package mdlink

import (
	"strings"
	"unicode"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"git.home.luguber.info/inful/linkcheck/internal/util/sets"
)

// ExtractAnchors parses markdown text and returns the set of anchor slugs
// the document exposes, one per heading. Duplicate slugs collapse.
func ExtractAnchors(content string) sets.Set[string] {
	anchors := sets.New[string]()
	if content == "" {
		return anchors
	}

	source := []byte(content)
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(source))

	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		heading, ok := n.(*gmast.Heading)
		if !ok {
			return gmast.WalkContinue, nil
		}
		if slug := Slugify(headingText(heading, source)); slug != "" {
			anchors.Add(slug)
		}
		// Heading children are plain inline content, no nested headings.
		return gmast.WalkSkipChildren, nil
	})

	return anchors
}

// headingText collects the plain text of a heading node. Inline markup
// (emphasis, code spans, nested links) contributes only its display text.
func headingText(n gmast.Node, source []byte) string {
	var b strings.Builder
	_ = gmast.Walk(n, func(c gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		if t, ok := c.(*gmast.Text); ok {
			b.Write(t.Segment.Value(source))
		}
		return gmast.WalkContinue, nil
	})
	return b.String()
}

// Slugify derives the anchor slug for a heading text. Deterministic and
// idempotent: lowercase, formatting markup and emoji dropped, whitespace runs
// collapsed to single hyphens, leading/trailing hyphens removed.
func Slugify(heading string) string {
	var b strings.Builder
	b.Grow(len(heading))

	for _, r := range strings.ToLower(heading) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		default:
			// punctuation, symbols, emoji
		}
	}

	slug := strings.Join(strings.Fields(b.String()), "-")
	return strings.Trim(slug, "-")
}
