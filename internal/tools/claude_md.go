package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/expo-kit/rn-expo-mcp/internal/config"
	"github.com/expo-kit/rn-expo-mcp/internal/scaffold"
)

// ClaudeMDTool generates a CLAUDE.md project rules file.
type ClaudeMDTool struct {
	generator     *scaffold.Generator
	defaultRouter config.Router
}

// NewClaudeMDTool creates a ClaudeMDTool.
func NewClaudeMDTool(g *scaffold.Generator, defaultRouter config.Router) *ClaudeMDTool {
	return &ClaudeMDTool{generator: g, defaultRouter: defaultRouter.OrDefault()}
}

// Definition returns the MCP tool definition for registration.
func (t *ClaudeMDTool) Definition() mcp.Tool {
	return mcp.NewTool(string(GenerateClaudeMD),
		mcp.WithDescription(
			"Generate a CLAUDE.md file with project rules for an AI coding assistant. Includes the tech stack, "+
				"architecture rules, code conventions and MCP tool usage instructions so the right pattern tools get called during development.",
		),
		mcp.WithString("appName",
			mcp.Required(),
			mcp.Description("App name"),
		),
		mcp.WithString("appDescription",
			mcp.Description("Short description of the app"),
		),
		featuresOption("List of main features"),
		routerOption("Navigation library (default: expo-router)"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	)
}

// Handle renders the document.
func (t *ClaudeMDTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	appName, errResult := requiredString(req, "appName")
	if errResult != nil {
		return errResult, nil
	}

	router, err := routerArg(req, t.defaultRouter)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	out, err := t.generator.ClaudeMD(scaffold.ClaudeRequest{
		AppName:     appName,
		Router:      router,
		Description: req.GetString("appDescription", ""),
		Features:    req.GetStringSlice("features", nil),
	})
	if err != nil {
		return nil, fmt.Errorf("generate-claude-md: %w", err)
	}
	return mcp.NewToolResultText(out), nil
}
