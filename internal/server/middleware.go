package server

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// toolLogging logs every tool call. Successful calls log at debug level
// with the estimated response size; failures log at error level.
func toolLogging(logger *log.Logger) server.ToolHandlerMiddleware {
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			start := time.Now()
			result, err := next(ctx, req)
			elapsed := time.Since(start)

			name := req.Params.Name
			switch {
			case err != nil:
				logger.Error("tool failed", "tool", name, "duration", elapsed, "err", err)
			case result != nil && result.IsError:
				logger.Warn("tool rejected arguments", "tool", name, "duration", elapsed, "message", resultText(result))
			default:
				logger.Debug("tool call", "tool", name, "duration", elapsed, "tokens", EstimateTokens(resultText(result)))
			}
			return result, err
		}
	}
}

// EstimateTokens returns a rough token count for text using the
// heuristic of ~4 characters per token.
// Returns 0 for empty text, and at least 1 for non-empty text.
func EstimateTokens(text string) int {
	n := len(text)
	if n == 0 {
		return 0
	}
	tokens := n / 4
	if tokens == 0 {
		return 1
	}
	return tokens
}

func resultText(result *mcp.CallToolResult) string {
	if result == nil {
		return ""
	}
	var text string
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			text += tc.Text
		}
	}
	return text
}
