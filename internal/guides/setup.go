package guides

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/expo-kit/rn-expo-mcp/internal/config"
)

// StepCount is the number of setup steps.
const StepCount = 13

type step struct {
	title    string
	variants map[config.Router]string
}

// StepInfo describes one setup step.
type StepInfo struct {
	Number int
	Title  string
}

func loadSteps(fsys fs.FS) ([]step, error) {
	files, nums, err := numberedFiles(fsys, SetupDir)
	if err != nil {
		return nil, err
	}
	if len(files) != StepCount {
		return nil, fmt.Errorf("setup: found %d steps, want %d", len(files), StepCount)
	}

	steps := make([]step, len(files))
	for i, file := range files {
		if nums[i] != i+1 {
			return nil, fmt.Errorf("setup: step files must be numbered 1-%d without gaps, got %s", StepCount, file)
		}

		var meta docMeta
		body, _, err := readDoc(fsys, file, &meta)
		if err != nil {
			return nil, err
		}
		if meta.Title == "" {
			return nil, fmt.Errorf("setup: %s has no title", file)
		}

		variants, err := renderVariants(file, body, config.Routers...)
		if err != nil {
			return nil, fmt.Errorf("setup: %w", err)
		}
		steps[i] = step{title: meta.Title, variants: variants}
	}
	return steps, nil
}

// Steps lists every step in order.
func (g *Guides) Steps() []StepInfo {
	out := make([]StepInfo, len(g.steps))
	for i, s := range g.steps {
		out[i] = StepInfo{Number: i + 1, Title: s.title}
	}
	return out
}

// Step returns step n for router r. An unspecified router means
// expo-router. Out-of-range n yields a not-found message.
func (g *Guides) Step(n int, r config.Router) string {
	if n < 1 || n > len(g.steps) {
		return fmt.Sprintf("Step %d not found. Available steps: 1-%d.", n, len(g.steps))
	}
	return g.steps[n-1].variants[r.OrDefault()]
}

// All returns every step for router r joined by Separator.
func (g *Guides) All(r config.Router) string {
	parts := make([]string, len(g.steps))
	for i := range g.steps {
		parts[i] = g.Step(i+1, r)
	}
	return strings.Join(parts, Separator)
}

// Overview lists the step titles with a usage hint.
func (g *Guides) Overview() string {
	var b strings.Builder
	b.WriteString("# Setup Tutorial — Overview\n\n")
	fmt.Fprintf(&b, "Complete guide to setting up a React Native + Expo project (%d steps):\n\n", len(g.steps))
	for i, s := range g.steps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, s.title)
	}
	b.WriteString("\nUse `get-setup-guide` with the `step` parameter to get a specific step.\n")
	b.WriteString("Steps 2, 5 and 7 adapt to your router choice (`expo-router` or `react-navigation`).\n")
	return b.String()
}
