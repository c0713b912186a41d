// Package scaffold generates starter project files and project documents
// (CLAUDE.md rules, environment setup) from the embedded templates.
//
// Generation is textual only: nothing is written to disk, and identical
// requests produce byte-identical output.
package scaffold

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/expo-kit/rn-expo-mcp/internal/config"
	"github.com/expo-kit/rn-expo-mcp/internal/templates"
)

// Dir is the scaffold root inside the content filesystem.
const Dir = "scaffold"

// Document templates, relative to Dir.
const (
	claudeTemplate   = "docs/claude-md.md.tmpl"
	envSetupTemplate = "docs/env-setup.md.tmpl"
)

// Conditions a manifest group may require.
const (
	whenEnv = "env"
	whenCI  = "ci"
)

// Request describes a starter file set.
type Request struct {
	AppName         string
	Router          config.Router
	Features        []string
	IncludeCI       bool
	IncludeEnvSetup bool
}

// File is one generated file record.
type File struct {
	Path    string
	Content string
}

// Generator renders requests against the loaded manifest and templates.
// It is immutable after Load and safe for concurrent use.
type Generator struct {
	groups   []group
	renderer *templates.Renderer
}

type manifest struct {
	Groups []group `yaml:"groups"`
}

type group struct {
	Name   string        `yaml:"name"`
	Router config.Router `yaml:"router"`
	When   string        `yaml:"when"`
	Files  []fileSpec    `yaml:"files"`
}

type fileSpec struct {
	Path     string `yaml:"path"`
	Template string `yaml:"template"`
}

// templateData is the context every scaffold template executes with.
type templateData struct {
	AppName         string
	Description     string
	Router          string
	ExpoRouter      bool
	ReactNavigation bool
	Features        []string
	IncludeCI       bool
	IncludeEnvSetup bool
}

// Load parses the manifest and every template under Dir in fsys.
func Load(fsys fs.FS) (*Generator, error) {
	raw, err := fs.ReadFile(fsys, path.Join(Dir, "manifest.yaml"))
	if err != nil {
		return nil, fmt.Errorf("reading scaffold manifest: %w", err)
	}

	var m manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parsing scaffold manifest: %w", err)
	}

	sub, err := fs.Sub(fsys, Dir)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", Dir, err)
	}
	renderer := templates.NewRenderer()
	if err := renderer.AddFS(sub, "*/*.tmpl"); err != nil {
		return nil, fmt.Errorf("loading scaffold templates: %w", err)
	}

	if err := validate(m, renderer); err != nil {
		return nil, err
	}
	return &Generator{groups: m.Groups, renderer: renderer}, nil
}

func validate(m manifest, r *templates.Renderer) error {
	if len(m.Groups) == 0 {
		return fmt.Errorf("scaffold manifest has no groups")
	}
	used := map[string]bool{claudeTemplate: true, envSetupTemplate: true}
	for _, g := range m.Groups {
		if _, err := config.ParseRouter(string(g.Router)); err != nil {
			return fmt.Errorf("scaffold group %s: %w", g.Name, err)
		}
		switch g.When {
		case "", whenEnv, whenCI:
		default:
			return fmt.Errorf("scaffold group %s: unknown condition %q", g.Name, g.When)
		}
		for _, f := range g.Files {
			if f.Path == "" {
				return fmt.Errorf("scaffold group %s: file without path", g.Name)
			}
			if !r.Has(f.Template) {
				return fmt.Errorf("scaffold group %s: template %q not found", g.Name, f.Template)
			}
			used[f.Template] = true
		}
	}
	for _, doc := range []string{claudeTemplate, envSetupTemplate} {
		if !r.Has(doc) {
			return fmt.Errorf("scaffold: template %q not found", doc)
		}
	}
	// A template the manifest never names is a packaging mistake.
	for _, name := range r.Names() {
		if !used[name] {
			return fmt.Errorf("scaffold: template %q is not referenced by the manifest", name)
		}
	}
	return nil
}

func (g group) selected(req Request, router config.Router) bool {
	if g.Router != config.RouterUnspecified && g.Router != router {
		return false
	}
	switch g.When {
	case whenEnv:
		return req.IncludeEnvSetup
	case whenCI:
		return req.IncludeCI
	}
	return true
}

func dataFor(appName, description string, router config.Router, features []string) templateData {
	return templateData{
		AppName:         appName,
		Description:     description,
		Router:          string(router),
		ExpoRouter:      router == config.RouterExpo,
		ReactNavigation: router == config.RouterReactNavigation,
		Features:        features,
	}
}

// Files builds the ordered file records for req. An unspecified router
// means expo-router.
func (g *Generator) Files(req Request) ([]File, error) {
	router := req.Router.OrDefault()
	data := dataFor(req.AppName, "", router, req.Features)
	data.IncludeCI = req.IncludeCI
	data.IncludeEnvSetup = req.IncludeEnvSetup

	var files []File
	for _, grp := range g.groups {
		if !grp.selected(req, router) {
			continue
		}
		for _, f := range grp.Files {
			content, err := g.renderer.Render(f.Template, data)
			if err != nil {
				return nil, fmt.Errorf("generating %s: %w", f.Path, err)
			}
			files = append(files, File{
				Path:    f.Path,
				Content: strings.TrimSuffix(content, "\n"),
			})
		}
	}
	return files, nil
}

// Generate renders the starter file set as one markdown document.
func (g *Generator) Generate(req Request) (string, error) {
	files, err := g.Files(req)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Starter files for %s (%s)\n\n", templates.Line(req.AppName), req.Router.OrDefault())
	b.WriteString("Create the following files in your project:\n\n")
	b.WriteString(FormatFiles(files))
	b.WriteString("\n\n---\n\nAfter creating the files:\n```bash\nnpm install\nnpx expo start --clear\n```\n")
	return b.String(), nil
}
