package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// parseArgs turns key=value pairs into tool arguments. Values that parse
// as JSON (numbers, booleans, arrays) keep their JSON type; anything
// else is a plain string.
func parseArgs(pairs []string) (map[string]any, error) {
	args := make(map[string]any, len(pairs))
	for _, p := range pairs {
		key, value, ok := strings.Cut(p, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("argument %q: want key=value", p)
		}
		if _, dup := args[key]; dup {
			return nil, fmt.Errorf("argument %q given twice", key)
		}

		var decoded any
		if err := json.Unmarshal([]byte(value), &decoded); err == nil && decoded != nil {
			if _, isObject := decoded.(map[string]any); !isObject {
				args[key] = decoded
				continue
			}
		}
		args[key] = value
	}
	return args, nil
}

// argSummary lists property names sorted, required ones first and
// suffixed with "*".
func argSummary(props map[string]any, required []string) string {
	if len(props) == 0 {
		return "-"
	}
	isRequired := make(map[string]bool, len(required))
	for _, r := range required {
		isRequired[r] = true
	}

	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if isRequired[names[i]] != isRequired[names[j]] {
			return isRequired[names[i]]
		}
		return names[i] < names[j]
	})

	for i, name := range names {
		if isRequired[name] {
			names[i] = name + "*"
		}
	}
	return strings.Join(names, ", ")
}
