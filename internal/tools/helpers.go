package tools

import (
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/expo-kit/rn-expo-mcp/internal/config"
)

// routerArg reads the optional "router" argument. A missing or empty
// value resolves to fallback.
func routerArg(req mcp.CallToolRequest, fallback config.Router) (config.Router, error) {
	raw, ok := req.GetArguments()["router"]
	if !ok || raw == nil {
		return fallback, nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("'router' must be a string")
	}
	if strings.TrimSpace(s) == "" {
		return fallback, nil
	}
	return config.ParseRouter(s)
}

// requiredString reads a required string argument. Whitespace-only
// counts as present so an empty app name still renders.
func requiredString(req mcp.CallToolRequest, key string) (string, *mcp.CallToolResult) {
	s, err := req.RequireString(key)
	if err != nil {
		return "", mcp.NewToolResultError(fmt.Sprintf("'%s' is required and must be a string", key))
	}
	return s, nil
}

// routerOption is the shared schema property for "router".
func routerOption(description string) mcp.ToolOption {
	return mcp.WithString("router",
		mcp.Description(description),
		mcp.Enum(config.RouterNames()...),
	)
}

// featuresOption is the shared schema property for "features".
func featuresOption(description string) mcp.ToolOption {
	return mcp.WithArray("features",
		mcp.Description(description),
		mcp.WithStringItems(),
	)
}
