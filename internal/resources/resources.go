// Package resources implements MCP resource handlers for the catalog.
//
// Resources provide read-only markdown that the host can attach as
// context without a tool call. They use URI-based addressing
// (rnexpo://...) following MCP conventions.
package resources

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/expo-kit/rn-expo-mcp/internal/guides"
	"github.com/expo-kit/rn-expo-mcp/internal/patterns"
)

const (
	// Scheme prefixes every resource URI.
	Scheme = "rnexpo://"

	mimeMarkdown = "text/markdown"

	patternsPrefix   = Scheme + "patterns/"
	setupOverviewURI = Scheme + "setup/overview"
	troubleshootURI  = Scheme + "troubleshooting"
	cheatSheetURI    = Scheme + "cheat-sheet"
)

// Handler serves the catalog as resources.
type Handler struct {
	registry *patterns.Registry
	guides   *guides.Guides
}

// NewHandler creates a resource Handler with its dependencies.
func NewHandler(reg *patterns.Registry, g *guides.Guides) *Handler {
	return &Handler{registry: reg, guides: g}
}

// Resources returns every resource with its read handler, in a stable
// order: one per pattern family, then the setup overview and the two
// reference pages.
func (h *Handler) Resources() []server.ServerResource {
	var out []server.ServerResource
	for _, f := range h.registry.Families() {
		out = append(out, server.ServerResource{
			Resource: mcp.NewResource(
				patternsPrefix+f.Name(),
				f.Title(),
				mcp.WithResourceDescription(fmt.Sprintf("All %s topics, full text", f.Name())),
				mcp.WithMIMEType(mimeMarkdown),
			),
			Handler: h.HandlePattern,
		})
	}

	out = append(out,
		server.ServerResource{
			Resource: mcp.NewResource(setupOverviewURI, "Setup Tutorial Overview",
				mcp.WithResourceDescription("The setup steps and how to fetch each one"),
				mcp.WithMIMEType(mimeMarkdown),
			),
			Handler: h.static(h.guides.Overview),
		},
		server.ServerResource{
			Resource: mcp.NewResource(troubleshootURI, "Troubleshooting",
				mcp.WithResourceDescription("Fixes for common React Native + Expo problems"),
				mcp.WithMIMEType(mimeMarkdown),
			),
			Handler: h.static(h.guides.Troubleshooting),
		},
		server.ServerResource{
			Resource: mcp.NewResource(cheatSheetURI, "Cheat Sheet",
				mcp.WithResourceDescription("Expo, EAS and core stack commands"),
				mcp.WithMIMEType(mimeMarkdown),
			),
			Handler: h.static(h.guides.CheatSheet),
		},
	)
	return out
}

// HandlePattern returns the full catalog of the family named in the URI.
func (h *Handler) HandlePattern(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uri := req.Params.URI
	name, ok := strings.CutPrefix(uri, patternsPrefix)
	if !ok {
		return nil, fmt.Errorf("resource %q: not a pattern URI", uri)
	}
	f, ok := h.registry.Family(name)
	if !ok {
		return nil, fmt.Errorf("resource %q: unknown pattern family %q", uri, name)
	}
	return markdown(uri, patterns.Resolve(f, "", false)), nil
}

func (h *Handler) static(text func() string) server.ResourceHandlerFunc {
	return func(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return markdown(req.Params.URI, text()), nil
	}
}

func markdown(uri, text string) []mcp.ResourceContents {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: mimeMarkdown,
			Text:     text,
		},
	}
}
