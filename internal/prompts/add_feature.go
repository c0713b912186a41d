package prompts

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// AddFeaturePrompt handles the add-feature MCP prompt.
// It walks the AI through the pattern tools needed to build one feature.
type AddFeaturePrompt struct{}

// NewAddFeaturePrompt creates an AddFeaturePrompt.
func NewAddFeaturePrompt() *AddFeaturePrompt {
	return &AddFeaturePrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *AddFeaturePrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("add-feature",
		mcp.WithPromptDescription(
			"Add a feature to an existing React Native + Expo app, "+
				"following the project structure, screen architecture, state and API patterns.",
		),
		mcp.WithArgument("feature",
			mcp.RequiredArgument(),
			mcp.ArgumentDescription("Feature to add, e.g. 'cart' or 'product catalog'"),
		),
		mcp.WithArgument("router",
			mcp.ArgumentDescription("Navigation library: 'expo-router' (default) or 'react-navigation'"),
		),
	)
}

// Handle processes the add-feature prompt request.
func (p *AddFeaturePrompt) Handle(_ context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	feature := ""
	if args := req.Params.Arguments; args != nil {
		feature = strings.TrimSpace(args["feature"])
	}
	if feature == "" {
		return nil, fmt.Errorf("argument 'feature' is required")
	}

	router := routerArgument(req)

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Add feature: %s", feature),
		Messages: userMessage(fmt.Sprintf(`
I want to add the "%[1]s" feature to my React Native + Expo app (%[2]s).

Please work through it in this order, calling each tool before writing the related code:

1. `+"`get-project-structure`"+`: decide where every new file goes
2. `+"`get-screen-architecture`"+`: split each new screen into a route file and a UI file
3. `+"`get-state-patterns`"+`: add a store only if the state is shared across screens
4. `+"`get-api-patterns`"+`: add the service functions and query/mutation hooks
5. `+"`get-navigation-patterns`"+`: wire the new screens into %[2]s
6. `+"`get-typescript-patterns`"+`: type the models, params and props

Use `+"`compact: true`"+` on pattern tools once you know a topic. Show me the file list before writing code.
`, feature, routerLabel(router))),
	}, nil
}
