package patterns

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
	"gopkg.in/yaml.v3"
)

// Dir is the catalog root inside the content filesystem.
const Dir = "patterns"

// Registry is the immutable set of families loaded at startup.
type Registry struct {
	families []*Family
	byName   map[string]*Family
}

// NewRegistry indexes families in the given order.
func NewRegistry(families ...*Family) (*Registry, error) {
	r := &Registry{byName: make(map[string]*Family, len(families))}
	for _, f := range families {
		if _, dup := r.byName[f.name]; dup {
			return nil, fmt.Errorf("duplicate family %q", f.name)
		}
		r.families = append(r.families, f)
		r.byName[f.name] = f
	}
	return r, nil
}

// Family returns the family registered under name.
func (r *Registry) Family(name string) (*Family, bool) {
	f, ok := r.byName[name]
	return f, ok
}

// Families returns every family in catalog order.
func (r *Registry) Families() []*Family {
	out := make([]*Family, len(r.families))
	copy(out, r.families)
	return out
}

// ─── Loading ───────────────────────────────────────────────────────────

type familyMeta struct {
	Title string `yaml:"title"`
	Order int    `yaml:"order"`
}

type topicMeta struct {
	Topic   string `yaml:"topic"`
	Compact string `yaml:"compact"`
}

var topicFile = regexp.MustCompile(`^(\d+)-([a-z0-9-]+)\.md$`)

// Load reads every family under Dir in fsys. Each family is a directory
// holding family.yaml and NN-<key>.md topic files.
func Load(fsys fs.FS) (*Registry, error) {
	entries, err := fs.ReadDir(fsys, Dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", Dir, err)
	}

	type loaded struct {
		family *Family
		order  int
	}
	var all []loaded

	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		f, order, err := loadFamily(fsys, path.Join(Dir, e.Name()), e.Name())
		if err != nil {
			return nil, err
		}
		all = append(all, loaded{f, order})
	}

	sort.SliceStable(all, func(i, j int) bool { return all[i].order < all[j].order })

	families := make([]*Family, len(all))
	for i, l := range all {
		families[i] = l.family
	}
	return NewRegistry(families...)
}

func loadFamily(fsys fs.FS, dir, name string) (*Family, int, error) {
	raw, err := fs.ReadFile(fsys, path.Join(dir, "family.yaml"))
	if err != nil {
		return nil, 0, fmt.Errorf("family %s: %w", name, err)
	}
	var meta familyMeta
	if err := yaml.Unmarshal(raw, &meta); err != nil {
		return nil, 0, fmt.Errorf("family %s: parsing family.yaml: %w", name, err)
	}

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, 0, fmt.Errorf("family %s: %w", name, err)
	}

	type numbered struct {
		n       int
		section Section
	}
	var topics []numbered

	for _, e := range entries {
		m := topicFile.FindStringSubmatch(e.Name())
		if e.IsDir() || m == nil {
			continue
		}
		n, _ := strconv.Atoi(m[1])

		s, err := loadSection(fsys, path.Join(dir, e.Name()), m[2])
		if err != nil {
			return nil, 0, fmt.Errorf("family %s: %w", name, err)
		}
		topics = append(topics, numbered{n, s})
	}

	sort.SliceStable(topics, func(i, j int) bool { return topics[i].n < topics[j].n })

	sections := make([]Section, len(topics))
	for i, t := range topics {
		sections[i] = t.section
	}

	f, err := NewFamily(name, meta.Title, sections)
	if err != nil {
		return nil, 0, err
	}
	return f, meta.Order, nil
}

func loadSection(fsys fs.FS, file, key string) (Section, error) {
	raw, err := fs.ReadFile(fsys, file)
	if err != nil {
		return Section{}, err
	}

	var meta topicMeta
	body, err := frontmatter.Parse(bytes.NewReader(raw), &meta)
	if err != nil {
		return Section{}, fmt.Errorf("parsing front matter of %s: %w", file, err)
	}

	if meta.Topic != "" {
		key = meta.Topic
	}

	full := strings.TrimSpace(string(body))
	if full == "" {
		return Section{}, fmt.Errorf("topic %s is empty", file)
	}

	compact := strings.TrimSpace(meta.Compact)
	if compact == "" {
		compact = DeriveCompact(full)
	}

	return Section{Key: key, Full: full, Compact: compact}, nil
}
