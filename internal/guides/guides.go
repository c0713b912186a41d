// Package guides serves the step-by-step setup tutorial, the best-practice
// categories and the static reference pages.
//
// Every (entry, router) variant is rendered once by Load, so lookups are
// plain map reads and never fail.
package guides

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/expo-kit/rn-expo-mcp/internal/config"
	"github.com/expo-kit/rn-expo-mcp/internal/templates"
)

// Content directories inside the content filesystem.
const (
	SetupDir     = "setup"
	PracticesDir = "practices"
	ExtrasDir    = "extras"
)

// Separator joins entries in the aggregate "all" forms.
const Separator = "\n\n---\n\n"

// Guides is the loaded, immutable set of tutorial and reference content.
type Guides struct {
	steps     []step
	practices []practice
	byName    map[Category]int

	troubleshooting string
	cheatSheet      string
	setupNewProject string
}

// variantData is the template context for router-dependent content.
// With neither flag set the template renders its router-neutral form.
type variantData struct {
	Router          string
	ExpoRouter      bool
	ReactNavigation bool
}

func dataFor(r config.Router) variantData {
	return variantData{
		Router:          string(r),
		ExpoRouter:      r == config.RouterExpo,
		ReactNavigation: r == config.RouterReactNavigation,
	}
}

// Load reads setup steps, practices and extras from fsys.
func Load(fsys fs.FS) (*Guides, error) {
	g := &Guides{}

	var err error
	if g.steps, err = loadSteps(fsys); err != nil {
		return nil, err
	}
	if g.practices, g.byName, err = loadPractices(fsys); err != nil {
		return nil, err
	}

	for name, dst := range map[string]*string{
		"troubleshooting.md":   &g.troubleshooting,
		"cheat-sheet.md":       &g.cheatSheet,
		"setup-new-project.md": &g.setupNewProject,
	} {
		text, _, err := readDoc(fsys, path.Join(ExtrasDir, name), nil)
		if err != nil {
			return nil, err
		}
		*dst = text
	}

	return g, nil
}

// ─── Helpers ───────────────────────────────────────────────────────────

type docMeta struct {
	Title    string `yaml:"title"`
	Category string `yaml:"category"`
}

// readDoc splits front matter from body and returns the trimmed body.
func readDoc(fsys fs.FS, file string, meta *docMeta) (string, docMeta, error) {
	raw, err := fs.ReadFile(fsys, file)
	if err != nil {
		return "", docMeta{}, fmt.Errorf("reading %s: %w", file, err)
	}

	var m docMeta
	body, err := frontmatter.Parse(bytes.NewReader(raw), &m)
	if err != nil {
		return "", docMeta{}, fmt.Errorf("parsing front matter of %s: %w", file, err)
	}
	if meta != nil {
		*meta = m
	}

	text := strings.TrimSpace(string(body))
	if text == "" {
		return "", m, fmt.Errorf("%s is empty", file)
	}
	return text, m, nil
}

var numberedFile = regexp.MustCompile(`^(\d+)-[a-z0-9-]+\.md$`)

// numberedFiles lists NN-<slug>.md files in dir sorted by NN.
func numberedFiles(fsys fs.FS, dir string) ([]string, []int, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	type item struct {
		name string
		n    int
	}
	var items []item
	for _, e := range entries {
		m := numberedFile.FindStringSubmatch(e.Name())
		if e.IsDir() || m == nil {
			continue
		}
		n, _ := strconv.Atoi(m[1])
		items = append(items, item{e.Name(), n})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].n < items[j].n })

	names := make([]string, len(items))
	nums := make([]int, len(items))
	for i, it := range items {
		names[i] = path.Join(dir, it.name)
		nums[i] = it.n
	}
	return names, nums, nil
}

// renderVariants executes body once per router.
func renderVariants(name, body string, routers ...config.Router) (map[config.Router]string, error) {
	r := templates.NewRenderer()
	if err := r.Add(name, body); err != nil {
		return nil, err
	}

	out := make(map[config.Router]string, len(routers))
	for _, router := range routers {
		text, err := r.Render(name, dataFor(router))
		if err != nil {
			return nil, err
		}
		out[router] = strings.TrimSpace(text)
	}
	return out, nil
}
