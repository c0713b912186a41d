package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	rnserver "github.com/expo-kit/rn-expo-mcp/internal/server"
)

func newToolsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List every tool with its arguments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, cleanup, err := rnserver.Load(cmd.Context(), a.cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, t := range c.Catalog.Tools() {
				def := t.Definition()
				fmt.Fprintf(w, "%s\t%s\n", def.Name, argSummary(def.InputSchema.Properties, def.InputSchema.Required))
			}
			return w.Flush()
		},
	}
}
