package lint

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/linkcheck/internal/mdlink"
)

func sampleResult() *Result {
	return &Result{
		FilesScanned: 3,
		Issues: []Issue{
			{
				File:       "index.md",
				Line:       4,
				Kind:       KindBrokenLink,
				Status:     StatusAutoFixable,
				Link:       mdlink.Link{Text: "old", Target: "/old-page/", Markup: "[old](/old-page/)", Line: 4},
				Target:     mdlink.SplitTarget("/old-page/"),
				Suggestion: "/guides/old-page/",
			},
			{
				File:       "index.md",
				Line:       9,
				Kind:       KindBrokenLink,
				Status:     StatusNeedsReview,
				Link:       mdlink.Link{Text: "s", Target: "/setup", Markup: "[s](/setup)", Line: 9},
				Target:     mdlink.SplitTarget("/setup"),
				Candidates: []string{"/a/setup/", "/b/setup/"},
			},
			{
				File:   "guide.md",
				Line:   2,
				Kind:   KindBrokenAnchor,
				Status: StatusManualCheck,
				Link:   mdlink.Link{Text: "x", Target: "/faq/#missing", Markup: "[x](/faq/#missing)", Line: 2},
				Target: mdlink.SplitTarget("/faq/#missing"),
			},
		},
	}
}

func TestTextFormatter_TagsAndGrouping(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter("text").Format(&buf, sampleResult(), "docs"))
	out := buf.String()

	assert.Contains(t, out, "Checking links in: docs")
	assert.Contains(t, out, "index.md:")
	assert.Contains(t, out, "guide.md:")
	assert.Contains(t, out, "[FIX] broken-link: /old-page/ → /guides/old-page/")
	assert.Contains(t, out, "[REVIEW] broken-link: /setup (2 candidates)")
	assert.Contains(t, out, "- /a/setup/")
	assert.Contains(t, out, "- /b/setup/")
	assert.Contains(t, out, "[MANUAL] broken-anchor: /faq/#missing")

	// Grouping: the file header appears once per file.
	assert.Equal(t, 1, strings.Count(out, "\nindex.md:"))
}

func TestTextFormatter_Summary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter("text").Format(&buf, sampleResult(), "docs"))
	out := buf.String()

	assert.Contains(t, out, "3 files scanned")
	assert.Contains(t, out, "2 files with issues")
	assert.Contains(t, out, "1 auto-fixable")
	assert.Contains(t, out, "1 needs review")
	assert.Contains(t, out, "1 manual check")
	assert.Contains(t, out, "1 issue can be fixed automatically. Run: linkcheck check --write")
}

func TestTextFormatter_AllValid(t *testing.T) {
	var buf bytes.Buffer
	result := &Result{FilesScanned: 5}
	require.NoError(t, NewFormatter("text").Format(&buf, result, "docs"))

	assert.Contains(t, buf.String(), "All links valid!")
}

func TestTextFormatter_AfterFixes(t *testing.T) {
	result := sampleResult()
	result.Issues = result.Issues[:1]
	result.Issues[0].Fixed = true
	result.LinksFixed = 1

	var buf bytes.Buffer
	require.NoError(t, NewFormatter("text").Format(&buf, result, "docs"))
	out := buf.String()

	assert.Contains(t, out, "(fixed)")
	assert.Contains(t, out, "no issues remain")
	assert.NotContains(t, out, "--write")
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter("json").Format(&buf, sampleResult(), "docs"))

	var output JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))

	assert.Equal(t, "docs", output.Root)
	assert.Equal(t, 3, output.FilesScanned)
	assert.Equal(t, 2, output.FilesWithIssues)
	assert.Equal(t, 1, output.AutoFixableCount)
	assert.Equal(t, 1, output.NeedsReviewCount)
	assert.Equal(t, 1, output.ManualCheckCount)
	assert.Equal(t, 3, output.Outstanding)
	require.Len(t, output.Issues, 3)
	assert.Equal(t, "broken-anchor", output.Issues[2].Kind)
	assert.Equal(t, "manual-check", output.Issues[2].Status)
}

func TestStatus_ClosedEnum(t *testing.T) {
	assert.Equal(t, "valid", StatusValid.String())
	assert.Equal(t, "auto-fixable", StatusAutoFixable.String())
	assert.Equal(t, "needs-review", StatusNeedsReview.String())
	assert.Equal(t, "manual-check", StatusManualCheck.String())
	assert.Equal(t, "[FIX]", StatusAutoFixable.Tag())
	assert.Equal(t, "[REVIEW]", StatusNeedsReview.Tag())
	assert.Equal(t, "[MANUAL]", StatusManualCheck.Tag())
}
