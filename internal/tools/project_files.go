package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/expo-kit/rn-expo-mcp/internal/config"
	"github.com/expo-kit/rn-expo-mcp/internal/scaffold"
)

// ProjectFilesTool generates the starter file set for a new project.
type ProjectFilesTool struct {
	generator     *scaffold.Generator
	defaultRouter config.Router
}

// NewProjectFilesTool creates a ProjectFilesTool.
func NewProjectFilesTool(g *scaffold.Generator, defaultRouter config.Router) *ProjectFilesTool {
	return &ProjectFilesTool{generator: g, defaultRouter: defaultRouter.OrDefault()}
}

// Definition returns the MCP tool definition for registration.
func (t *ProjectFilesTool) Definition() mcp.Tool {
	return mcp.NewTool(string(GenerateProjectFiles),
		mcp.WithDescription(
			"Generate starter files for a NEW React Native + Expo project. Produces actual file contents: "+
				"navigation layouts, Zustand store with MMKV, API client, environment config, and optionally a GitHub Actions EAS workflow.",
		),
		mcp.WithString("appName",
			mcp.Required(),
			mcp.Description("App name"),
		),
		featuresOption(`List of features (e.g. ["auth", "catalog", "cart"])`),
		mcp.WithBoolean("includeCI",
			mcp.Description("Include GitHub Actions CI/CD"),
			mcp.DefaultBool(false),
		),
		mcp.WithBoolean("includeEnvSetup",
			mcp.Description("Include per-environment config files"),
			mcp.DefaultBool(true),
		),
		routerOption("Navigation library (default: expo-router)"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	)
}

// Handle renders the file set.
func (t *ProjectFilesTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	appName, errResult := requiredString(req, "appName")
	if errResult != nil {
		return errResult, nil
	}

	router, err := routerArg(req, t.defaultRouter)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	out, err := t.generator.Generate(scaffold.Request{
		AppName:         appName,
		Router:          router,
		Features:        req.GetStringSlice("features", nil),
		IncludeCI:       req.GetBool("includeCI", false),
		IncludeEnvSetup: req.GetBool("includeEnvSetup", true),
	})
	if err != nil {
		return nil, fmt.Errorf("generate-project-files: %w", err)
	}
	return mcp.NewToolResultText(out), nil
}
