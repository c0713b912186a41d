package search

import (
	"context"
	"strconv"

	"github.com/expo-kit/rn-expo-mcp/internal/config"
	"github.com/expo-kit/rn-expo-mcp/internal/guides"
	"github.com/expo-kit/rn-expo-mcp/internal/patterns"
)

// Reference page keys.
const (
	RefTroubleshooting = "troubleshooting"
	RefCheatSheet      = "cheat-sheet"
	RefSetupNewProject = "setup-new-project"
)

// Documents flattens the catalog into indexable documents. Setup steps are
// indexed for expo-router, plus a react-navigation copy where the text
// differs. Practices are indexed in their router-neutral form.
func Documents(reg *patterns.Registry, g *guides.Guides) []Document {
	var docs []Document

	for _, f := range reg.Families() {
		for _, key := range f.Keys() {
			body, _ := f.Full(key)
			docs = append(docs, Document{
				Kind:   KindPattern,
				Family: f.Name(),
				Key:    key,
				Title:  f.Title() + ": " + key,
				Body:   body,
			})
		}
	}

	for _, s := range g.Steps() {
		expo := g.Step(s.Number, config.RouterExpo)
		docs = append(docs, Document{
			Kind:   KindSetup,
			Key:    strconv.Itoa(s.Number),
			Router: string(config.RouterExpo),
			Title:  "Step " + strconv.Itoa(s.Number) + ": " + s.Title,
			Body:   expo,
		})
		if rn := g.Step(s.Number, config.RouterReactNavigation); rn != expo {
			docs = append(docs, Document{
				Kind:   KindSetup,
				Key:    strconv.Itoa(s.Number),
				Router: string(config.RouterReactNavigation),
				Title:  "Step " + strconv.Itoa(s.Number) + ": " + s.Title + " (React Navigation)",
				Body:   rn,
			})
		}
	}

	for _, p := range g.Practices() {
		docs = append(docs, Document{
			Kind:  KindPractice,
			Key:   string(p.Category),
			Title: "Best Practice: " + p.Title,
			Body:  g.Practice(string(p.Category), config.RouterUnspecified),
		})
	}

	docs = append(docs,
		Document{Kind: KindReference, Key: RefTroubleshooting, Title: "Troubleshooting", Body: g.Troubleshooting()},
		Document{Kind: KindReference, Key: RefCheatSheet, Title: "Cheat Sheet", Body: g.CheatSheet()},
		Document{Kind: KindReference, Key: RefSetupNewProject, Title: "Setup New Project", Body: g.SetupNewProject()},
	)
	return docs
}

// Build indexes the whole catalog.
func Build(ctx context.Context, reg *patterns.Registry, g *guides.Guides) (*Index, error) {
	return New(ctx, Documents(reg, g))
}
