// Package prompts implements MCP prompt handlers.
//
// MCP prompts are user-triggered workflows (like slash commands) that
// instruct the AI to call the catalog tools in a specific sequence.
// Unlike tools (which the AI calls), prompts are initiated by the user.
package prompts

import (
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/expo-kit/rn-expo-mcp/internal/config"
)

// routerArgument reads the optional router argument. Unknown or empty
// values fall back to expo-router so a prompt never fails.
func routerArgument(req mcp.GetPromptRequest) config.Router {
	if args := req.Params.Arguments; args != nil {
		if r, err := config.ParseRouter(args["router"]); err == nil {
			return r.OrDefault()
		}
	}
	return config.RouterExpo
}

// routerLabel is the human name of r.
func routerLabel(r config.Router) string {
	if r == config.RouterReactNavigation {
		return "React Navigation"
	}
	return "Expo Router"
}

// userMessage wraps text as the single user message of a prompt.
func userMessage(text string) []mcp.PromptMessage {
	return []mcp.PromptMessage{
		{
			Role:    mcp.RoleUser,
			Content: mcp.NewTextContent(strings.TrimSpace(text)),
		},
	}
}
