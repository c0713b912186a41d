package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/expo-kit/rn-expo-mcp/internal/scaffold"
)

// EnvSetupTool generates the per-environment configuration files.
type EnvSetupTool struct {
	generator *scaffold.Generator
}

// NewEnvSetupTool creates an EnvSetupTool.
func NewEnvSetupTool(g *scaffold.Generator) *EnvSetupTool {
	return &EnvSetupTool{generator: g}
}

// Definition returns the MCP tool definition for registration.
func (t *EnvSetupTool) Definition() mcp.Tool {
	return mcp.NewTool(string(GenerateEnvSetup),
		mcp.WithDescription(
			"Generate environment configuration for development, staging and production: per-environment JSON files, "+
				"a switch script, a typed config module, and the .gitignore and package.json additions.",
		),
		mcp.WithString("appName",
			mcp.Required(),
			mcp.Description("App name, used for API hostnames"),
		),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	)
}

// Handle renders the env setup document.
func (t *EnvSetupTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	appName, errResult := requiredString(req, "appName")
	if errResult != nil {
		return errResult, nil
	}

	out, err := t.generator.EnvSetup(appName)
	if err != nil {
		return nil, fmt.Errorf("generate-env-setup: %w", err)
	}
	return mcp.NewToolResultText(out), nil
}
