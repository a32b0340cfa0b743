// Package mdlink extracts site-relative links and heading anchors from
// markdown text.
//
// Link scanning is byte-oriented rather than AST-based: repairs are applied
// by literal substitution of the exact original link markup, and a CommonMark
// parser normalizes destinations in ways that lose the source text.
package mdlink

import "strings"

// Link is a site-relative outbound reference found in a document.
type Link struct {
	Text   string // display text
	Target string // raw target string, may carry query and/or anchor
	Markup string // exact source span "[text](target)"
	Line   int    // 1-based line number
}

// ExtractLinks scans markdown text for inline links whose target begins with
// '/'. Fenced and indented code regions and inline code spans are skipped:
// code samples commonly contain example paths that are not real links.
// Empty input yields an empty result.
func ExtractLinks(content string) []Link {
	if content == "" {
		return nil
	}

	var links []Link

	inCodeBlock := false
	activeFence := ""

	for lineNum, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			inCodeBlock, activeFence = toggleFencedBlock(inCodeBlock, activeFence, "```")
			continue
		}
		if strings.HasPrefix(trimmed, "~~~") {
			inCodeBlock, activeFence = toggleFencedBlock(inCodeBlock, activeFence, "~~~")
			continue
		}
		if inCodeBlock || isIndentedCode(line) {
			continue
		}

		clean := stripInlineCodeSpans(line)
		links = append(links, extractSiteLinks(clean, lineNum+1)...)
	}

	return links
}

func extractSiteLinks(line string, lineNum int) []Link {
	var links []Link

	for i := 0; i+1 < len(line); i++ {
		if line[i] != ']' || line[i+1] != '(' {
			continue
		}

		start := findLinkTextStart(line, i)
		if start == -1 {
			continue
		}

		end := strings.IndexByte(line[i+2:], ')')
		if end == -1 {
			continue
		}
		end += i + 2

		target := line[i+2 : end]
		if !strings.HasPrefix(target, "/") {
			// Relative and external links are out of scope for validation.
			continue
		}

		text := line[start+1 : i]
		links = append(links, Link{
			Text:   text,
			Target: target,
			Markup: line[start : end+1],
			Line:   lineNum,
		})
	}

	return links
}

// findLinkTextStart locates the opening '[' for the link text ending at
// closeBracketPos. Image links (preceded by '!') are not hyperlinks.
func findLinkTextStart(line string, closeBracketPos int) int {
	for j := closeBracketPos - 1; j >= 0; j-- {
		if line[j] == '[' {
			if j > 0 && line[j-1] == '!' {
				return -1
			}
			return j
		}
	}
	return -1
}
