package routes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrettyLinks_MarkdownSuffix(t *testing.T) {
	assert.Equal(t, "[a](/x/y/#s)", PrettyLinks("[a](/x/y.md#s)"))
	assert.Equal(t, "[a](/x/y/?v=1#s)", PrettyLinks("[a](/x/y.md?v=1#s)"))
	assert.Equal(t, "[a](../guide/)", PrettyLinks("[a](../guide.md)"))
}

func TestPrettyLinks_IndexSpecialCase(t *testing.T) {
	assert.Equal(t, "[a](/x/)", PrettyLinks("[a](/x/index.md)"))
	assert.Equal(t, "[a](./)", PrettyLinks("[a](index.md)"))
	assert.Equal(t, "[a](/x/#top)", PrettyLinks("[a](/x/index.md#top)"))
}

func TestPrettyLinks_Untouched(t *testing.T) {
	assert.Equal(t, "[a](/x/y/)", PrettyLinks("[a](/x/y/)"))
	assert.Equal(t, "[a](https://example.com/x.md)", PrettyLinks("[a](https://example.com/x.md)"))
	assert.Equal(t, "![i](/img.png)", PrettyLinks("![i](/img.png)"))
	assert.Equal(t, "plain prose", PrettyLinks("plain prose"))
}

func TestPrettyLinks_CodeBlocksPreserved(t *testing.T) {
	src := "[a](/x.md)\n```\n[b](/y.md)\n```\n"
	out := PrettyLinks(src)
	assert.Equal(t, "[a](/x/)\n```\n[b](/y.md)\n```\n", out)
}

func TestWithBasePath_Links(t *testing.T) {
	assert.Equal(t, "[a](/base/x/)", WithBasePath("[a](/x/)", "/base"))
	assert.Equal(t, "![i](/base/img.png)", WithBasePath("![i](/img.png)", "/base"))
}

func TestWithBasePath_AlreadyPrefixed(t *testing.T) {
	assert.Equal(t, "[a](/base/x/)", WithBasePath("[a](/base/x/)", "/base"))
	assert.Equal(t, "[a](/base)", WithBasePath("[a](/base)", "/base"))
}

func TestWithBasePath_RelativeAndExternalUntouched(t *testing.T) {
	assert.Equal(t, "[a](./x/)", WithBasePath("[a](./x/)", "/base"))
	assert.Equal(t, "[a](https://example.com/x)", WithBasePath("[a](https://example.com/x)", "/base"))
}

func TestWithBasePath_SrcAttributes(t *testing.T) {
	assert.Equal(t, `<img src="/base/i.png">`, WithBasePath(`<img src="/i.png">`, "/base"))
	assert.Equal(t, `<iframe src="/base/embed/"></iframe>`, WithBasePath(`<iframe src="/embed/"></iframe>`, "/base"))
	assert.Equal(t, `<img src="https://cdn.example.com/i.png">`, WithBasePath(`<img src="https://cdn.example.com/i.png">`, "/base"))
	assert.Equal(t, `<img src="/base/i.png">`, WithBasePath(`<img src="/base/i.png">`, "/base"))
}

func TestWithBasePath_TrailingSlashBaseNormalized(t *testing.T) {
	assert.Equal(t, "[a](/base/x/)", WithBasePath("[a](/x/)", "/base/"))
}

func TestWithBasePath_EmptyBaseNoOp(t *testing.T) {
	assert.Equal(t, "[a](/x/)", WithBasePath("[a](/x/)", ""))
}

// The rewrite passes share the split conventions of the checker: query and
// anchor are separated before the extension rewrite and reattached after.
func TestPrettyLinks_SplitReattachConvention(t *testing.T) {
	assert.Equal(t, "[a](/a/b/?x=1#sec)", PrettyLinks("[a](/a/b.md?x=1#sec)"))
}
