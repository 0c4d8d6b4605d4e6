package highlight

import (
	"bytes"
	"os"
	"strings"
)

// Fences rewrites a Markdown document, replacing the body of each fenced
// code block with an ANSI-highlighted version. Fence lines and everything
// outside blocks pass through untouched. Honors NO_COLOR.
func Fences(body, styleName string) string {
	if body == "" || os.Getenv("NO_COLOR") != "" {
		return body
	}

	lines := strings.Split(body, "\n")
	var out strings.Builder

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		fence, lang, ok := parseFence(line)
		if !ok {
			out.WriteString(line)
			if i < len(lines)-1 {
				out.WriteByte('\n')
			}
			continue
		}

		end := findClosingFence(lines, i+1, fence)
		if end == -1 {
			out.WriteString(line)
			if i < len(lines)-1 {
				out.WriteByte('\n')
			}
			continue
		}

		out.WriteString(line)
		out.WriteByte('\n')

		code := strings.Join(lines[i+1:end], "\n")
		out.WriteString(highlightFenced(code, lang, styleName))
		out.WriteByte('\n')
		out.WriteString(lines[end])

		if end < len(lines)-1 {
			out.WriteByte('\n')
		}
		i = end
	}

	return out.String()
}

// parseFence reports whether line opens a fenced code block, returning the
// fence marker and the info-string language.
func parseFence(line string) (fence, lang string, ok bool) {
	trimmed := strings.TrimLeft(line, " \t")
	if len(trimmed) < 3 || (trimmed[0] != '`' && trimmed[0] != '~') {
		return "", "", false
	}

	marker := trimmed[0]
	n := 0
	for n < len(trimmed) && trimmed[n] == marker {
		n++
	}
	if n < 3 {
		return "", "", false
	}

	if fields := strings.Fields(trimmed[n:]); len(fields) > 0 {
		lang = fields[0]
	}
	return trimmed[:n], lang, true
}

func findClosingFence(lines []string, start int, fence string) int {
	for i := start; i < len(lines); i++ {
		if isClosingFence(lines[i], fence) {
			return i
		}
	}
	return -1
}

// isClosingFence accepts a line made up solely of the opener's fence
// character, at least as long as the opener.
func isClosingFence(line, fence string) bool {
	trimmed := strings.TrimSpace(line)
	return len(trimmed) >= len(fence) && strings.Trim(trimmed, fence[:1]) == ""
}

func highlightFenced(code, lang, styleName string) string {
	if code == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := Render(&buf, code, lang, styleName, FormatTerminal); err != nil {
		return code
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
