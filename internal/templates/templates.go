// Package templates renders the embedded markdown and scaffold templates.
//
// Content is full of "{{" (GitHub Actions expressions, JSX object
// literals), so templates use "[%" and "%]" as action delimiters. Every
// template is parsed into its own set, which keeps {{define}} names of
// one file from leaking into another.
package templates

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"regexp"
	"sort"
	"strings"
	"text/template"
)

// Action delimiters.
const (
	LeftDelim  = "[%"
	RightDelim = "%]"
)

// Renderer holds parsed templates keyed by name. It is populated at
// startup and read-only afterwards, so concurrent Render calls are safe.
type Renderer struct {
	templates map[string]*template.Template
}

// NewRenderer returns an empty renderer.
func NewRenderer() *Renderer {
	return &Renderer{templates: make(map[string]*template.Template)}
}

// Add parses text and registers it under name.
func (r *Renderer) Add(name, text string) error {
	if _, dup := r.templates[name]; dup {
		return fmt.Errorf("template %q already registered", name)
	}

	tmpl, err := template.New(name).
		Delims(LeftDelim, RightDelim).
		Funcs(Funcs()).
		Option("missingkey=error").
		Parse(text)
	if err != nil {
		return fmt.Errorf("parsing template %s: %w", name, err)
	}

	r.templates[name] = tmpl
	return nil
}

// AddFS registers every file matching pattern in fsys, named by its path.
func (r *Renderer) AddFS(fsys fs.FS, pattern string) error {
	paths, err := fs.Glob(fsys, pattern)
	if err != nil {
		return fmt.Errorf("globbing %s: %w", pattern, err)
	}
	if len(paths) == 0 {
		return fmt.Errorf("no templates match %s", pattern)
	}

	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("reading template %s: %w", p, err)
		}
		if err := r.Add(p, string(data)); err != nil {
			return err
		}
	}
	return nil
}

// Has reports whether name is registered.
func (r *Renderer) Has(name string) bool {
	_, ok := r.templates[name]
	return ok
}

// Names returns registered template names in sorted order.
func (r *Renderer) Names() []string {
	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render executes the named template with data.
func (r *Renderer) Render(name string, data any) (string, error) {
	tmpl, ok := r.templates[name]
	if !ok {
		return "", fmt.Errorf("template %q not found", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering template %s: %w", name, err)
	}
	return buf.String(), nil
}

// --- Template functions ---

// Funcs returns the escaping helpers available to every template.
//
//	jsx   text placed between JSX tags
//	json  the inside of a double-quoted JSON or JS string literal
//	slug  lowercase host/identifier fragment
//	line  single-line text such as a markdown heading
func Funcs() template.FuncMap {
	return template.FuncMap{
		"jsx":  EscapeJSX,
		"json": EscapeJSON,
		"slug": Slug,
		"line": Line,
	}
}

var jsxReplacer = strings.NewReplacer(
	"&", "&amp;",
	"{", "&#123;",
	"}", "&#125;",
	"<", "&lt;",
	">", "&gt;",
)

// EscapeJSX entity-escapes characters that JSX would treat as markup or
// expressions.
func EscapeJSX(s string) string {
	return jsxReplacer.Replace(s)
}

// EscapeJSON returns s escaped for use inside a JSON string literal,
// without the surrounding quotes.
func EscapeJSON(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encoding a string cannot fail.
	_ = enc.Encode(s)

	out := strings.TrimSuffix(buf.String(), "\n")
	return out[1 : len(out)-1]
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slug lowercases s and collapses every run of characters outside
// [a-z0-9] into a single hyphen. A name with no usable characters
// becomes "app".
func Slug(s string) string {
	slug := strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(s), "-"), "-")
	if slug == "" {
		return "app"
	}
	return slug
}

// Line folds line breaks into spaces.
func Line(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	return strings.NewReplacer("\n", " ", "\r", " ").Replace(s)
}
