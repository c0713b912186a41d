package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

const (
	troubleshootingDescription = "Get solutions to common React Native + Expo problems: Metro bundler, NativeWind styles, " +
		"iOS and Android builds, EAS Build, Zustand/MMKV and TypeScript, plus a full reset procedure."

	cheatSheetDescription = "Get a quick-reference cheat sheet of Expo CLI, EAS CLI and core stack install commands."

	setupNewProjectDescription = "Get a step-by-step guide for creating a new Expo Router project from scratch on one page. " +
		"Covers project creation, TypeScript strict mode, NativeWind, folder structure, Zustand + MMKV, Axios + TanStack Query, " +
		"environment variables, EAS Build, OTA updates and CI/CD."
)

// StaticTool returns a fixed document and takes no arguments.
type StaticTool struct {
	name        ToolName
	description string
	text        func() string
}

// NewStaticTool creates a StaticTool that serves text().
func NewStaticTool(name ToolName, description string, text func() string) *StaticTool {
	return &StaticTool{name: name, description: description, text: text}
}

// Definition returns the MCP tool definition for registration.
func (t *StaticTool) Definition() mcp.Tool {
	return mcp.NewTool(string(t.name),
		mcp.WithDescription(t.description),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	)
}

// Handle ignores all arguments.
func (t *StaticTool) Handle(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(t.text()), nil
}
