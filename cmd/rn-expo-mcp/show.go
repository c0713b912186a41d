package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"

	"github.com/expo-kit/rn-expo-mcp/internal/config"
	rnserver "github.com/expo-kit/rn-expo-mcp/internal/server"
)

func newShowCmd(a *app) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "show <tool> [key=value ...]",
		Short: "Call a tool and print its result",
		Example: "  rn-expo-mcp show get-state-patterns topic=selectors compact=true\n" +
			"  rn-expo-mcp show get-setup-guide step=2 router=react-navigation\n" +
			`  rn-expo-mcp show generate-project-files appName=Shop 'features=["auth","cart"]' --plain`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			toolArgs, err := parseArgs(args[1:])
			if err != nil {
				return err
			}

			c, cleanup, err := rnserver.Load(cmd.Context(), a.cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			result, err := c.Catalog.Call(cmd.Context(), args[0], toolArgs)
			if err != nil {
				return err
			}

			text := resultText(result)
			if result.IsError {
				return fmt.Errorf("%s: %s", args[0], text)
			}
			return render(cmd.OutOrStdout(), text, a.cfg, plain)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print raw markdown instead of rendering it")
	return cmd
}

// render writes markdown, styled with glamour unless plain is set.
func render(w io.Writer, markdown string, cfg config.Config, plain bool) error {
	if plain {
		_, err := io.WriteString(w, ensureNewline(markdown))
		return err
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(cfg.Style),
		glamour.WithWordWrap(cfg.WordWrap),
	)
	if err != nil {
		return fmt.Errorf("creating markdown renderer: %w", err)
	}

	out, err := renderer.Render(markdown)
	if err != nil {
		return fmt.Errorf("rendering markdown: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}

func resultText(result *mcp.CallToolResult) string {
	var parts []string
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			parts = append(parts, tc.Text)
		}
	}
	return strings.Join(parts, "\n")
}

func ensureNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
