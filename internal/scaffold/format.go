package scaffold

import "strings"

// FormatFiles renders each record as a path heading followed by a fenced
// block, records separated by a blank line.
func FormatFiles(files []File) string {
	parts := make([]string, len(files))
	for i, f := range files {
		fence := Fence(f.Content)

		var b strings.Builder
		b.WriteString("## ")
		b.WriteString(f.Path)
		b.WriteString("\n")
		b.WriteString(fence)
		b.WriteString(FenceLanguage(f.Path))
		b.WriteString("\n")
		b.WriteString(f.Content)
		b.WriteString("\n")
		b.WriteString(fence)
		parts[i] = b.String()
	}
	return strings.Join(parts, "\n\n")
}

// Fence returns a backtick fence longer than any backtick run in content.
func Fence(content string) string {
	longest, run := 0, 0
	for i := 0; i < len(content); i++ {
		if content[i] == '`' {
			run++
			if run > longest {
				longest = run
			}
			continue
		}
		run = 0
	}
	n := 3
	if longest >= n {
		n = longest + 1
	}
	return strings.Repeat("`", n)
}

// FenceLanguage picks the code fence info string for a file path.
func FenceLanguage(path string) string {
	switch {
	case strings.HasSuffix(path, ".tsx"), strings.HasSuffix(path, ".ts"):
		return "tsx"
	case strings.HasSuffix(path, ".js"):
		return "js"
	case strings.HasSuffix(path, ".json"):
		return "json"
	case strings.HasSuffix(path, ".css"):
		return "css"
	case strings.HasSuffix(path, ".yml"), strings.HasSuffix(path, ".yaml"):
		return "yaml"
	default:
		return ""
	}
}
