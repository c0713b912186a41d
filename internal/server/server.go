// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it loads the embedded content, builds the
// search index and the tool catalog, and registers tools, prompts and
// resources on one MCP server. No content logic lives here.
package server

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/server"

	"github.com/expo-kit/rn-expo-mcp/internal/config"
	"github.com/expo-kit/rn-expo-mcp/internal/content"
	"github.com/expo-kit/rn-expo-mcp/internal/guides"
	"github.com/expo-kit/rn-expo-mcp/internal/patterns"
	"github.com/expo-kit/rn-expo-mcp/internal/prompts"
	"github.com/expo-kit/rn-expo-mcp/internal/resources"
	"github.com/expo-kit/rn-expo-mcp/internal/scaffold"
	"github.com/expo-kit/rn-expo-mcp/internal/search"
	"github.com/expo-kit/rn-expo-mcp/internal/tools"
)

// Name is the server identity announced during MCP initialization.
const Name = "react-native-expo-mcp"

// Version is set at build time via ldflags.
var Version = "dev"

// Components is the loaded catalog shared by the MCP server and the CLI.
type Components struct {
	Patterns  *patterns.Registry
	Guides    *guides.Guides
	Generator *scaffold.Generator
	Index     *search.Index
	Catalog   *tools.Catalog
}

// Load reads the embedded content and builds the search index and the
// tool catalog. The returned cleanup closes the index; it is always
// non-nil and safe to call even when Load fails.
func Load(ctx context.Context, cfg config.Config) (*Components, func(), error) {
	reg, err := patterns.Load(content.FS)
	if err != nil {
		return nil, noop, fmt.Errorf("loading patterns: %w", err)
	}

	g, err := guides.Load(content.FS)
	if err != nil {
		return nil, noop, fmt.Errorf("loading guides: %w", err)
	}

	gen, err := scaffold.Load(content.FS)
	if err != nil {
		return nil, noop, fmt.Errorf("loading scaffold templates: %w", err)
	}

	ix, err := search.Build(ctx, reg, g)
	if err != nil {
		return nil, noop, fmt.Errorf("building search index: %w", err)
	}
	cleanup := func() { _ = ix.Close() }

	catalog, err := tools.NewCatalog(tools.Deps{
		Patterns:  reg,
		Guides:    g,
		Generator: gen,
		Index:     ix,
		Config:    cfg,
	})
	if err != nil {
		cleanup()
		return nil, noop, fmt.Errorf("building tool catalog: %w", err)
	}

	return &Components{
		Patterns:  reg,
		Guides:    g,
		Generator: gen,
		Index:     ix,
		Catalog:   catalog,
	}, cleanup, nil
}

// New creates and configures the MCP server with all tools, prompts,
// and resources registered. This is the single place where all
// dependencies are resolved.
//
// The returned cleanup function closes the search index and must be
// called on shutdown (typically via defer).
func New(ctx context.Context, cfg config.Config, logger *log.Logger) (*server.MCPServer, func(), error) {
	c, cleanup, err := Load(ctx, cfg)
	if err != nil {
		return nil, noop, err
	}

	// Logging wraps recovery so recovered panics are logged as failures.
	s := server.NewMCPServer(
		Name,
		Version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithPromptCapabilities(false),
		server.WithToolHandlerMiddleware(toolLogging(logger)),
		server.WithRecovery(),
		server.WithResourceRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// --- Register tools ---

	for _, t := range c.Catalog.Tools() {
		s.AddTool(t.Definition(), t.Handle)
	}

	// --- Register prompts ---

	initPrompt := prompts.NewInitProjectPrompt()
	s.AddPrompt(initPrompt.Definition(), initPrompt.Handle)

	featurePrompt := prompts.NewAddFeaturePrompt()
	s.AddPrompt(featurePrompt.Definition(), featurePrompt.Handle)

	// --- Register resources ---

	s.AddResources(resources.NewHandler(c.Patterns, c.Guides).Resources()...)

	docs, err := c.Index.Count(ctx)
	if err != nil {
		cleanup()
		return nil, noop, err
	}
	if docs == 0 {
		cleanup()
		return nil, noop, fmt.Errorf("search index is empty")
	}

	logger.Debug("server ready",
		"tools", len(c.Catalog.Tools()),
		"documents", docs,
		"families", len(c.Patterns.Families()),
		"default_router", cfg.DefaultRouter.OrDefault(),
	)
	return s, cleanup, nil
}

// noop is a no-op cleanup function returned when loading fails.
func noop() {}

// serverInstructions tells the AI when to reach for which tool.
func serverInstructions() string {
	return `You have access to a React Native + Expo knowledge server.

## WHEN TO CALL THE PATTERN TOOLS

Call the matching tool BEFORE writing code of that kind:
- Creating a component → get-component-patterns
- Creating a screen or route → get-screen-architecture
- Routes, layouts, deep links, auth guards → get-navigation-patterns
- Global state, stores, persistence → get-state-patterns
- API services, data fetching hooks → get-api-patterns
- Styling → get-styling-patterns
- Lists, images, bundle size, animations → get-performance-patterns
- Deciding where a file goes → get-project-structure
- Types and interfaces → get-typescript-patterns
- Memory leaks → get-memory-optimization

Every pattern tool takes an optional topic and compact=true returns rules
without code examples. Prefer a single topic over the whole family.

## NEW PROJECTS

- get-setup-guide with step="overview" lists the 13 setup steps
- setup-new-project is the same walkthrough on one page
- generate-project-files scaffolds starter files
- generate-claude-md writes the project rules file
- generate-env-setup adds development/staging/production config

Pass router="react-navigation" when the project does not use Expo Router.

## OTHER

- get-best-practices for stack and architecture decisions
- get-troubleshooting when something breaks
- get-cheat-sheet for commands
- search-docs when you don't know which tool covers a topic`
}
