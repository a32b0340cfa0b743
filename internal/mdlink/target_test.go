package mdlink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitTarget_QueryThenAnchor(t *testing.T) {
	target := SplitTarget("/a/b.md?x=1#sec")
	assert.Equal(t, "/a/b.md", target.Path)
	assert.Equal(t, "x=1", target.Query)
	assert.Equal(t, "sec", target.Anchor)
	assert.True(t, target.HasQuery)
	assert.True(t, target.HasAnchor)
}

func TestSplitTarget_AnchorOnly(t *testing.T) {
	target := SplitTarget("/guide/#install")
	assert.Equal(t, "/guide/", target.Path)
	assert.Equal(t, "install", target.Anchor)
	assert.False(t, target.HasQuery)
}

func TestSplitTarget_AnchorBeforeQuestionMark(t *testing.T) {
	// '#' occurs first: the whole remainder is the fragment.
	target := SplitTarget("/faq#what?why")
	assert.Equal(t, "/faq", target.Path)
	assert.Equal(t, "what?why", target.Anchor)
	assert.False(t, target.HasQuery)
}

func TestSplitTarget_PathOnly(t *testing.T) {
	target := SplitTarget("/a/b")
	assert.Equal(t, "/a/b", target.Path)
	assert.False(t, target.HasQuery)
	assert.False(t, target.HasAnchor)
	assert.Equal(t, "/a/b", target.String())
}

// Splitting, rewriting the path and reattaching must reproduce a
// semantically equivalent reference.
func TestSplitTarget_RoundTripAfterPathRewrite(t *testing.T) {
	target := SplitTarget("/a/b.md?x=1#sec")
	require.Equal(t, "/a/b.md?x=1#sec", target.String())

	target.Path = "/a/new-path/"
	assert.Equal(t, "/a/new-path/?x=1#sec", target.String())
}

func TestSplitTarget_EmptyComponentsPreserved(t *testing.T) {
	target := SplitTarget("/a?#")
	assert.Equal(t, "/a", target.Path)
	assert.True(t, target.HasQuery)
	assert.True(t, target.HasAnchor)
	assert.Equal(t, "/a?#", target.String())
}
