package patterns

import (
	"fmt"
	"strings"
)

// Resolve renders a family for one request. An empty topic means the
// whole family. With compact set, topics without a compact form are left
// out of the whole-family listing. Resolve never fails: an unknown topic
// yields a message listing the valid keys.
func Resolve(f *Family, topic string, compact bool) string {
	source := f.full
	if compact {
		source = f.compact
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", f.title)

	if topic == "" {
		first := true
		for _, key := range f.keys {
			text, ok := source[key]
			if !ok {
				continue
			}
			if !first {
				b.WriteString("\n\n")
			}
			b.WriteString(text)
			first = false
		}
		return b.String()
	}

	if text, ok := source[topic]; ok {
		b.WriteString(text)
		return b.String()
	}

	fmt.Fprintf(&b, "Unknown topic: \"%s\". Available topics: %s", topic, strings.Join(f.keys, ", "))
	return b.String()
}
