package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/expo-kit/rn-expo-mcp/internal/config"
	"github.com/expo-kit/rn-expo-mcp/internal/guides"
)

// BestPracticesTool serves the best-practice categories.
type BestPracticesTool struct {
	guides        *guides.Guides
	defaultRouter config.Router
}

// NewBestPracticesTool creates a BestPracticesTool. An unspecified
// defaultRouter keeps router-neutral text for calls without router.
func NewBestPracticesTool(g *guides.Guides, defaultRouter config.Router) *BestPracticesTool {
	return &BestPracticesTool{guides: g, defaultRouter: defaultRouter}
}

// Definition returns the MCP tool definition for registration.
func (t *BestPracticesTool) Definition() mcp.Tool {
	return mcp.NewTool(string(BestPractices),
		mcp.WithDescription(
			"Get React Native + Expo best practices by category: stack choice, architecture, styling, components, "+
				"state management, navigation, performance and final recommendations. Use \"all\" for every category. "+
				"Architecture and navigation adapt to the router when one is given.",
		),
		mcp.WithString("category",
			mcp.Required(),
			mcp.Description("Best-practice category"),
			mcp.Enum(guides.CategoryNames()...),
		),
		routerOption("Navigation library; omit for router-neutral advice"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	)
}

// Handle returns the category text. Unknown categories are answered with
// the available list.
func (t *BestPracticesTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	category, errResult := requiredString(req, "category")
	if errResult != nil {
		return errResult, nil
	}

	router, err := routerArg(req, t.defaultRouter)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(t.guides.Practice(category, router)), nil
}
