// Package routes holds the link rewrites consumed by the site build: the
// pretty-route conversion for .md-suffixed targets and deployment base-path
// prefixing. Both are pure content-to-content transforms sharing the
// path/query/anchor splitting conventions of the checker.
package routes

import (
	"strings"

	"git.home.luguber.info/inful/linkcheck/internal/mdlink"
)

const markdownExt = ".md"

// PrettyLinks converts .md-suffixed link targets into extensionless route
// paths with a trailing slash; index files map to their directory. Query and
// anchor suffixes are split off before the rewrite and reattached after.
// External targets, non-markdown targets and code blocks are untouched.
func PrettyLinks(content string) string {
	return transformLines(content, func(line string) string {
		return rewriteTargets(line, prettyTarget)
	})
}

func prettyTarget(raw string) string {
	if isExternalTarget(raw) {
		return raw
	}
	target := mdlink.SplitTarget(raw)
	if !strings.HasSuffix(target.Path, markdownExt) {
		return raw
	}

	switch {
	case target.Path == "index.md":
		target.Path = "./"
	case strings.HasSuffix(target.Path, "/index.md"):
		target.Path = strings.TrimSuffix(target.Path, "index.md")
	default:
		target.Path = strings.TrimSuffix(target.Path, markdownExt) + "/"
	}
	return target.String()
}

// WithBasePath prefixes base onto absolute-rooted link targets, image
// sources and embedded-frame sources that do not already carry it.
// Relative targets and external URLs pass through.
func WithBasePath(content, base string) string {
	base = strings.TrimSuffix(base, "/")
	if base == "" {
		return content
	}

	return transformLines(content, func(line string) string {
		line = rewriteTargets(line, func(raw string) string {
			return prefixTarget(raw, base)
		})
		return rewriteSrcAttributes(line, base)
	})
}

func prefixTarget(raw, base string) string {
	if !strings.HasPrefix(raw, "/") {
		return raw
	}
	if raw == base || strings.HasPrefix(raw, base+"/") {
		return raw
	}
	return base + raw
}

// rewriteSrcAttributes prefixes base onto absolute-rooted src attributes of
// inline img and iframe elements.
func rewriteSrcAttributes(line, base string) string {
	if !strings.Contains(line, "<img") && !strings.Contains(line, "<iframe") {
		return line
	}

	var out strings.Builder
	out.Grow(len(line))

	rest := line
	for {
		idx := strings.Index(rest, `src="`)
		if idx == -1 {
			out.WriteString(rest)
			return out.String()
		}
		valueStart := idx + len(`src="`)
		end := strings.IndexByte(rest[valueStart:], '"')
		if end == -1 {
			out.WriteString(rest)
			return out.String()
		}

		value := rest[valueStart : valueStart+end]
		out.WriteString(rest[:valueStart])
		out.WriteString(prefixTarget(value, base))
		rest = rest[valueStart+end:]
	}
}

// rewriteTargets rewrites the href portion of every markdown link or image
// on a line, leaving text and everything else byte-identical.
func rewriteTargets(line string, rewrite func(string) string) string {
	var out strings.Builder
	out.Grow(len(line))

	i := 0
	for i < len(line) {
		if line[i] != ']' || i+1 >= len(line) || line[i+1] != '(' {
			out.WriteByte(line[i])
			i++
			continue
		}

		end := strings.IndexByte(line[i+2:], ')')
		if end == -1 {
			out.WriteByte(line[i])
			i++
			continue
		}
		end += i + 2

		target := line[i+2 : end]
		out.WriteString("](")
		out.WriteString(rewrite(target))
		out.WriteByte(')')
		i = end + 1
	}

	return out.String()
}

func isExternalTarget(raw string) bool {
	return strings.Contains(raw, "://") || strings.HasPrefix(raw, "mailto:") || strings.HasPrefix(raw, "#")
}

// transformLines applies fn to every line outside fenced and indented code
// regions, preserving code blocks byte for byte.
func transformLines(content string, fn func(string) string) string {
	if content == "" {
		return content
	}

	lines := strings.Split(content, "\n")

	inCodeBlock := false
	activeFence := ""

	for idx, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			inCodeBlock, activeFence = toggleFence(inCodeBlock, activeFence, "```")
			continue
		}
		if strings.HasPrefix(trimmed, "~~~") {
			inCodeBlock, activeFence = toggleFence(inCodeBlock, activeFence, "~~~")
			continue
		}
		if inCodeBlock || strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "\t") {
			continue
		}
		lines[idx] = fn(line)
	}

	return strings.Join(lines, "\n")
}

func toggleFence(inCodeBlock bool, activeFence string, fence string) (bool, string) {
	if !inCodeBlock {
		return true, fence
	}
	if activeFence == fence {
		return false, ""
	}
	return inCodeBlock, activeFence
}
