package patterns

import "strings"

// DeriveCompact produces the rules-only form of a topic: fenced code
// blocks are dropped and runs of blank lines collapse to one.
func DeriveCompact(full string) string {
	var (
		out   []string
		fence string
		blank bool
	)

	for _, line := range strings.Split(full, "\n") {
		trimmed := strings.TrimSpace(line)

		if fence != "" {
			if strings.HasPrefix(trimmed, fence) && strings.Trim(trimmed, "`") == "" {
				fence = ""
			}
			continue
		}
		if strings.HasPrefix(trimmed, "```") {
			fence = trimmed[:countLeading(trimmed, '`')]
			continue
		}

		if trimmed == "" {
			if blank || len(out) == 0 {
				continue
			}
			blank = true
			out = append(out, "")
			continue
		}
		blank = false
		out = append(out, line)
	}

	return strings.TrimSpace(strings.Join(out, "\n"))
}

func countLeading(s string, c byte) int {
	n := 0
	for n < len(s) && s[n] == c {
		n++
	}
	return n
}
