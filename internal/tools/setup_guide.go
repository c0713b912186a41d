package tools

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/expo-kit/rn-expo-mcp/internal/config"
	"github.com/expo-kit/rn-expo-mcp/internal/guides"
)

// Special values of the step argument.
const (
	stepOverview = "overview"
	stepAll      = "all"
)

// SetupGuideTool serves the 13-step setup tutorial.
type SetupGuideTool struct {
	guides        *guides.Guides
	defaultRouter config.Router
}

// NewSetupGuideTool creates a SetupGuideTool. defaultRouter applies when
// the call omits router.
func NewSetupGuideTool(g *guides.Guides, defaultRouter config.Router) *SetupGuideTool {
	return &SetupGuideTool{guides: g, defaultRouter: defaultRouter.OrDefault()}
}

// Definition returns the MCP tool definition for registration.
func (t *SetupGuideTool) Definition() mcp.Tool {
	return mcp.NewTool(string(SetupGuide),
		mcp.WithDescription(
			"Get the step-by-step setup tutorial for a React Native + Expo project. "+
				fmt.Sprintf("Pass a step number (1-%d), \"overview\" for the list of steps, or \"all\" for the whole guide. ", guides.StepCount)+
				"Steps 2, 5 and 7 adapt to the chosen router.",
		),
		mcp.WithAny("step",
			mcp.Required(),
			mcp.Description(fmt.Sprintf("Step number 1-%d, \"overview\" or \"all\"", guides.StepCount)),
		),
		routerOption("Navigation library (default: expo-router)"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	)
}

// Handle dispatches on the step argument.
func (t *SetupGuideTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, ok := req.GetArguments()["step"]
	if !ok || raw == nil {
		return mcp.NewToolResultError("'step' is required"), nil
	}

	router, err := routerArg(req, t.defaultRouter)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	switch v := raw.(type) {
	case string:
		s := strings.ToLower(strings.TrimSpace(v))
		switch s {
		case stepOverview:
			return mcp.NewToolResultText(t.guides.Overview()), nil
		case stepAll:
			return mcp.NewToolResultText(t.guides.All(router)), nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return mcp.NewToolResultError(invalidStep(v)), nil
		}
		return mcp.NewToolResultText(t.guides.Step(n, router)), nil
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return mcp.NewToolResultError(invalidStep(v)), nil
		}
		return mcp.NewToolResultText(t.guides.Step(int(v), router)), nil
	case int:
		return mcp.NewToolResultText(t.guides.Step(v, router)), nil
	default:
		return mcp.NewToolResultError(invalidStep(v)), nil
	}
}

func invalidStep(v any) string {
	return fmt.Sprintf("'step' must be an integer 1-%d, %q or %q (got %v)", guides.StepCount, stepOverview, stepAll, v)
}
