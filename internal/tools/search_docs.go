package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/expo-kit/rn-expo-mcp/internal/config"
	"github.com/expo-kit/rn-expo-mcp/internal/search"
)

// SearchTool runs full-text queries over the whole catalog.
type SearchTool struct {
	index        *search.Index
	defaultLimit int
}

// NewSearchTool creates a SearchTool.
func NewSearchTool(index *search.Index, defaultLimit int) *SearchTool {
	if defaultLimit < config.MinSearchLimit || defaultLimit > config.MaxSearchLimit {
		defaultLimit = config.DefaultSearchLimit
	}
	return &SearchTool{index: index, defaultLimit: defaultLimit}
}

// Definition returns the MCP tool definition for registration.
func (t *SearchTool) Definition() mcp.Tool {
	return mcp.NewTool(string(SearchDocs),
		mcp.WithDescription(
			"Search every pattern, setup step, best practice and reference page by keyword. "+
				"Each result names the tool call that returns the full text. "+
				"Use this when you don't know which tool covers a topic.",
		),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Keywords, e.g. \"mmkv persist\" or \"flashlist\""),
		),
		mcp.WithNumber("limit",
			mcp.Description(fmt.Sprintf("Maximum results (%d-%d)", config.MinSearchLimit, config.MaxSearchLimit)),
			mcp.Min(config.MinSearchLimit),
			mcp.Max(config.MaxSearchLimit),
			mcp.DefaultNumber(float64(t.defaultLimit)),
		),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	)
}

// Handle runs the query and formats the ranked results.
func (t *SearchTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := strings.TrimSpace(req.GetString("query", ""))
	if query == "" {
		return mcp.NewToolResultError("'query' is required"), nil
	}
	limit := req.GetInt("limit", t.defaultLimit)

	results, err := t.index.Search(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("search-docs: %w", err)
	}
	return mcp.NewToolResultText(formatResults(query, results)), nil
}

func formatResults(query string, results []search.Result) string {
	if len(results) == 0 {
		return fmt.Sprintf("No results for \"%s\". Try fewer or more general keywords.", query)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Search results for \"%s\" (%d)\n", query, len(results))
	for i, r := range results {
		fmt.Fprintf(&b, "\n%d. **%s** [%s]\n", i+1, r.Title, r.Kind)
		if r.Snippet != "" {
			fmt.Fprintf(&b, "   %s\n", r.Snippet)
		}
		if call := fetchCall(r); call != "" {
			fmt.Fprintf(&b, "   Fetch with: `%s`\n", call)
		}
	}
	return b.String()
}

// fetchCall names the tool call that returns the full text of r.
func fetchCall(r search.Result) string {
	switch r.Kind {
	case search.KindPattern:
		for _, p := range patternTools {
			if p.family == r.Family {
				return fmt.Sprintf("%s topic=%s", p.name, r.Key)
			}
		}
	case search.KindSetup:
		call := fmt.Sprintf("%s step=%s", SetupGuide, r.Key)
		if r.Router != "" {
			call += " router=" + r.Router
		}
		return call
	case search.KindPractice:
		return fmt.Sprintf("%s category=%s", BestPractices, r.Key)
	case search.KindReference:
		switch r.Key {
		case search.RefTroubleshooting:
			return string(Troubleshooting)
		case search.RefCheatSheet:
			return string(CheatSheet)
		case search.RefSetupNewProject:
			return string(SetupNewProject)
		}
	}
	return ""
}
