package main

import (
	"strings"

	"github.com/spf13/cobra"

	rnserver "github.com/expo-kit/rn-expo-mcp/internal/server"
	"github.com/expo-kit/rn-expo-mcp/internal/tools"
)

func newSearchCmd(a *app) *cobra.Command {
	var (
		limit int
		plain bool
	)

	cmd := &cobra.Command{
		Use:   "search <query...>",
		Short: "Search patterns, setup steps, best practices and references",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, cleanup, err := rnserver.Load(cmd.Context(), a.cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			toolArgs := map[string]any{"query": strings.Join(args, " ")}
			if limit > 0 {
				toolArgs["limit"] = limit
			}
			result, err := c.Catalog.Call(cmd.Context(), string(tools.SearchDocs), toolArgs)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), resultText(result), a.cfg, plain)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum results (default from config)")
	cmd.Flags().BoolVar(&plain, "plain", false, "print raw markdown instead of rendering it")
	return cmd
}
