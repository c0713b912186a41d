// Package patterns holds the pattern cheat-sheet catalog: ten families of
// topic-keyed markdown sections, each available in full and compact form,
// and the resolver that turns a (family, topic, compact) request into text.
package patterns

import (
	"fmt"
	"strings"
)

// Family names in catalog order.
const (
	Components         = "components"
	ScreenArchitecture = "screen-architecture"
	Navigation         = "navigation"
	State              = "state"
	API                = "api"
	Styling            = "styling"
	Performance        = "performance"
	ProjectStructure   = "project-structure"
	TypeScript         = "typescript"
	Memory             = "memory"
)

// Section is one topic of a family. An empty Compact means the topic has
// no compact form.
type Section struct {
	Key     string
	Full    string
	Compact string
}

// Family is an immutable, ordered set of topics sharing a title.
type Family struct {
	name    string
	title   string
	keys    []string
	full    map[string]string
	compact map[string]string
}

// NewFamily builds a family from sections in the given order.
func NewFamily(name, title string, sections []Section) (*Family, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("family name is required")
	}
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("family %s: title is required", name)
	}
	if len(sections) == 0 {
		return nil, fmt.Errorf("family %s: no topics", name)
	}

	f := &Family{
		name:    name,
		title:   title,
		keys:    make([]string, 0, len(sections)),
		full:    make(map[string]string, len(sections)),
		compact: make(map[string]string, len(sections)),
	}

	for _, s := range sections {
		if s.Key == "" {
			return nil, fmt.Errorf("family %s: topic with empty key", name)
		}
		if _, dup := f.full[s.Key]; dup {
			return nil, fmt.Errorf("family %s: duplicate topic %q", name, s.Key)
		}
		f.keys = append(f.keys, s.Key)
		f.full[s.Key] = s.Full
		if s.Compact != "" {
			f.compact[s.Key] = s.Compact
		}
	}
	return f, nil
}

// Name returns the family key, which is also its directory name.
func (f *Family) Name() string { return f.name }

// Title returns the heading Resolve puts above every response.
func (f *Family) Title() string { return f.title }

// Keys returns topic keys in declared order.
func (f *Family) Keys() []string {
	out := make([]string, len(f.keys))
	copy(out, f.keys)
	return out
}

// Full returns the full text of a topic.
func (f *Family) Full(key string) (string, bool) {
	s, ok := f.full[key]
	return s, ok
}

// Compact returns the compact text of a topic.
func (f *Family) Compact(key string) (string, bool) {
	s, ok := f.compact[key]
	return s, ok
}
