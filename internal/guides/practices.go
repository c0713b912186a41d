package guides

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/expo-kit/rn-expo-mcp/internal/config"
)

// Category names a best-practice page.
type Category string

const (
	StackChoice     Category = "stack-choice"
	Architecture    Category = "architecture"
	Styling         Category = "styling"
	Components      Category = "components"
	StateManagement Category = "state-management"
	Navigation      Category = "navigation"
	Performance     Category = "performance"
	Recommendations Category = "recommendations"

	// AllCategories aggregates every category.
	AllCategories Category = "all"
)

// Categories lists the single-page categories in declared order.
var Categories = []Category{
	StackChoice, Architecture, Styling, Components,
	StateManagement, Navigation, Performance, Recommendations,
}

// CategoryNames returns every accepted category name, "all" last.
func CategoryNames() []string {
	names := make([]string, 0, len(Categories)+1)
	for _, c := range Categories {
		names = append(names, string(c))
	}
	return append(names, string(AllCategories))
}

type practice struct {
	category Category
	title    string
	variants map[config.Router]string
}

// Practice variants: neutral (both routers) plus one per router.
var practiceRouters = []config.Router{config.RouterUnspecified, config.RouterExpo, config.RouterReactNavigation}

func loadPractices(fsys fs.FS) ([]practice, map[Category]int, error) {
	files, _, err := numberedFiles(fsys, PracticesDir)
	if err != nil {
		return nil, nil, err
	}

	practices := make([]practice, 0, len(files))
	index := make(map[Category]int, len(files))

	for _, file := range files {
		var meta docMeta
		body, _, err := readDoc(fsys, file, &meta)
		if err != nil {
			return nil, nil, err
		}
		c := Category(meta.Category)
		if _, dup := index[c]; dup {
			return nil, nil, fmt.Errorf("practices: duplicate category %q", c)
		}

		variants, err := renderVariants(file, body, practiceRouters...)
		if err != nil {
			return nil, nil, fmt.Errorf("practices: %w", err)
		}
		index[c] = len(practices)
		practices = append(practices, practice{category: c, title: meta.Title, variants: variants})
	}

	for i, want := range Categories {
		pos, ok := index[want]
		if !ok {
			return nil, nil, fmt.Errorf("practices: category %q missing", want)
		}
		if pos != i {
			return nil, nil, fmt.Errorf("practices: category %q out of order", want)
		}
	}
	if len(practices) != len(Categories) {
		return nil, nil, fmt.Errorf("practices: found %d categories, want %d", len(practices), len(Categories))
	}
	return practices, index, nil
}

// PracticeInfo describes one best-practice category.
type PracticeInfo struct {
	Category Category
	Title    string
}

// Practices lists the categories in declared order.
func (g *Guides) Practices() []PracticeInfo {
	out := make([]PracticeInfo, len(g.practices))
	for i, p := range g.practices {
		out[i] = PracticeInfo{Category: p.category, Title: p.title}
	}
	return out
}

// Practice returns the named category for router r. An unspecified
// router gives the router-neutral text. "all" joins every category;
// an unknown name yields a not-found message.
func (g *Guides) Practice(name string, r config.Router) string {
	if Category(name) == AllCategories {
		parts := make([]string, len(g.practices))
		for i, p := range g.practices {
			parts[i] = p.variants[r]
		}
		return strings.Join(parts, Separator)
	}

	i, ok := g.byName[Category(name)]
	if !ok {
		return fmt.Sprintf("Category \"%s\" not found. Available: %s", name, strings.Join(CategoryNames(), ", "))
	}
	return g.practices[i].variants[r]
}
