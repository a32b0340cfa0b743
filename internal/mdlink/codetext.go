package mdlink

import "strings"

// Code regions are stripped before link scanning only. Output always goes
// through the original document text, so code blocks survive repairs intact.

func toggleFencedBlock(inCodeBlock bool, activeFence string, fence string) (bool, string) {
	if !inCodeBlock {
		return true, fence
	}
	if activeFence == fence {
		return false, ""
	}
	return inCodeBlock, activeFence
}

func isIndentedCode(line string) bool {
	return strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "\t")
}

// stripInlineCodeSpans removes backtick-delimited code spans from a line,
// including the delimiters. Unclosed spans keep their backticks.
func stripInlineCodeSpans(s string) string {
	if !strings.Contains(s, "`") {
		return s
	}

	var out strings.Builder
	out.Grow(len(s))

	for i := 0; i < len(s); {
		if s[i] != '`' {
			out.WriteByte(s[i])
			i++
			continue
		}

		run := 1
		for i+run < len(s) && s[i+run] == '`' {
			run++
		}

		marker := strings.Repeat("`", run)
		closeRel := strings.Index(s[i+run:], marker)
		if closeRel == -1 {
			out.WriteString(marker)
			i += run
			continue
		}

		// Skip the entire code span, including delimiters.
		i = i + run + closeRel + run
	}

	return out.String()
}
