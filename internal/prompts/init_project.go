package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// InitProjectPrompt handles the init-mobile-project MCP prompt.
// It runs an interview and then points the AI at the generators.
type InitProjectPrompt struct{}

// NewInitProjectPrompt creates an InitProjectPrompt.
func NewInitProjectPrompt() *InitProjectPrompt {
	return &InitProjectPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *InitProjectPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("init-mobile-project",
		mcp.WithPromptDescription("Interactive wizard for setting up a new React Native + Expo mobile app"),
		mcp.WithArgument("router",
			mcp.ArgumentDescription("Navigation library: 'expo-router' (default) or 'react-navigation'"),
		),
	)
}

// Handle processes the init-mobile-project prompt request.
func (p *InitProjectPrompt) Handle(_ context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	router := routerArgument(req)
	label := routerLabel(router)

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Set up a new %s app", label),
		Messages: userMessage(fmt.Sprintf(`
I want to create a new mobile app with React Native + Expo and %[1]s.

Help me set it up. Please ask me:

1. **Is this a new project or an existing one?**
2. **What features do you need?** (auth, catalog, cart, chat, payments, etc.)
3. **Do you need CI/CD (GitHub Actions)?**

Based on the answers:
- For a NEW project: use `+"`generate-project-files`"+` with router='%[2]s' to scaffold files and `+"`generate-claude-md`"+` to create project rules
- For environments: use `+"`generate-env-setup`"+`
- For setup guidance: use `+"`get-setup-guide`"+` with step='overview', or `+"`setup-new-project`"+` for a single-page walkthrough
- For patterns during development: use the appropriate pattern tool:
  - Creating a component → `+"`get-component-patterns`"+`
  - Creating a screen → `+"`get-screen-architecture`"+`
  - Working with navigation → `+"`get-navigation-patterns`"+`
  - Working with state → `+"`get-state-patterns`"+`
  - Creating API hooks → `+"`get-api-patterns`"+`
  - Styling → `+"`get-styling-patterns`"+`
  - Performance issues → `+"`get-performance-patterns`"+`
  - Memory leaks → `+"`get-memory-optimization`"+`
  - File placement → `+"`get-project-structure`"+`
  - TypeScript types → `+"`get-typescript-patterns`"+`
- Not sure which tool covers something? Use `+"`search-docs`"+`.
`, label, router)),
	}, nil
}
