// Package tools implements the MCP tool handlers and the closed table
// that maps every tool name to exactly one handler.
//
// Each tool is a struct that receives its content dependencies at
// construction and exposes Definition (the MCP schema) and Handle (the
// mcp-go handler). Handlers never mutate shared state, so every tool is
// safe for concurrent calls.
package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/expo-kit/rn-expo-mcp/internal/config"
	"github.com/expo-kit/rn-expo-mcp/internal/guides"
	"github.com/expo-kit/rn-expo-mcp/internal/patterns"
	"github.com/expo-kit/rn-expo-mcp/internal/scaffold"
	"github.com/expo-kit/rn-expo-mcp/internal/search"
)

// ToolName identifies one tool on the wire.
type ToolName string

const (
	ComponentPatterns   ToolName = "get-component-patterns"
	ScreenArchitecture  ToolName = "get-screen-architecture"
	NavigationPatterns  ToolName = "get-navigation-patterns"
	StatePatterns       ToolName = "get-state-patterns"
	APIPatterns         ToolName = "get-api-patterns"
	StylingPatterns     ToolName = "get-styling-patterns"
	PerformancePatterns ToolName = "get-performance-patterns"
	ProjectStructure    ToolName = "get-project-structure"
	TypeScriptPatterns  ToolName = "get-typescript-patterns"
	MemoryOptimization  ToolName = "get-memory-optimization"

	SetupGuide           ToolName = "get-setup-guide"
	BestPractices        ToolName = "get-best-practices"
	GenerateProjectFiles ToolName = "generate-project-files"
	GenerateClaudeMD     ToolName = "generate-claude-md"
	Troubleshooting      ToolName = "get-troubleshooting"
	CheatSheet           ToolName = "get-cheat-sheet"
	SetupNewProject      ToolName = "setup-new-project"
	GenerateEnvSetup     ToolName = "generate-env-setup"
	SearchDocs           ToolName = "search-docs"
)

// Names lists every tool in registration order.
var Names = []ToolName{
	ComponentPatterns, ScreenArchitecture, NavigationPatterns, StatePatterns, APIPatterns,
	StylingPatterns, PerformancePatterns, ProjectStructure, TypeScriptPatterns, MemoryOptimization,
	SetupGuide, BestPractices, GenerateProjectFiles, GenerateClaudeMD,
	Troubleshooting, CheatSheet, SetupNewProject, GenerateEnvSetup, SearchDocs,
}

// ErrUnknownTool is returned by Lookup for names outside Names.
var ErrUnknownTool = errors.New("unknown tool")

// Tool is the contract every handler satisfies.
type Tool interface {
	Definition() mcp.Tool
	Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// Deps carries the loaded content every tool draws from.
type Deps struct {
	Patterns  *patterns.Registry
	Guides    *guides.Guides
	Generator *scaffold.Generator
	Index     *search.Index
	Config    config.Config
}

// Catalog is the immutable dispatch table.
type Catalog struct {
	tools  []Tool
	byName map[ToolName]Tool
}

// NewCatalog builds one handler per ToolName. It fails if a pattern
// family is missing or if the table does not cover Names exactly.
func NewCatalog(d Deps) (*Catalog, error) {
	router, err := config.ParseRouter(string(d.Config.DefaultRouter))
	if err != nil {
		return nil, fmt.Errorf("default router: %w", err)
	}

	var list []Tool

	for _, p := range patternTools {
		family, ok := d.Patterns.Family(p.family)
		if !ok {
			return nil, fmt.Errorf("pattern family %q not loaded", p.family)
		}
		list = append(list, NewPatternTool(p.name, family, p.description))
	}

	list = append(list,
		NewSetupGuideTool(d.Guides, router),
		NewBestPracticesTool(d.Guides, router),
		NewProjectFilesTool(d.Generator, router),
		NewClaudeMDTool(d.Generator, router),
		NewStaticTool(Troubleshooting, troubleshootingDescription, d.Guides.Troubleshooting),
		NewStaticTool(CheatSheet, cheatSheetDescription, d.Guides.CheatSheet),
		NewStaticTool(SetupNewProject, setupNewProjectDescription, d.Guides.SetupNewProject),
		NewEnvSetupTool(d.Generator),
		NewSearchTool(d.Index, d.Config.SearchLimit),
	)

	return newCatalog(list)
}

func newCatalog(list []Tool) (*Catalog, error) {
	c := &Catalog{byName: make(map[ToolName]Tool, len(list))}
	for _, t := range list {
		name := ToolName(t.Definition().Name)
		if _, dup := c.byName[name]; dup {
			return nil, fmt.Errorf("tool %s registered twice", name)
		}
		c.byName[name] = t
		c.tools = append(c.tools, t)
	}

	for _, name := range Names {
		if _, ok := c.byName[name]; !ok {
			return nil, fmt.Errorf("tool %s has no handler", name)
		}
	}
	if len(c.byName) != len(Names) {
		return nil, fmt.Errorf("catalog has %d tools, want %d", len(c.byName), len(Names))
	}
	return c, nil
}

// Tools returns the handlers in registration order.
func (c *Catalog) Tools() []Tool {
	out := make([]Tool, len(c.tools))
	copy(out, c.tools)
	return out
}

// Lookup returns the handler for name.
func (c *Catalog) Lookup(name string) (Tool, error) {
	t, ok := c.byName[ToolName(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTool, name)
	}
	return t, nil
}

// Call dispatches one request outside the MCP transport, as the CLI does.
func (c *Catalog) Call(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	t, err := c.Lookup(name)
	if err != nil {
		return nil, err
	}

	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return t.Handle(ctx, req)
}
