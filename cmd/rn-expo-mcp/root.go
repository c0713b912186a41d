package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/expo-kit/rn-expo-mcp/internal/config"
	"github.com/expo-kit/rn-expo-mcp/internal/logging"
	rnserver "github.com/expo-kit/rn-expo-mcp/internal/server"
)

// app carries what every subcommand needs once configuration is loaded.
type app struct {
	cfg    config.Config
	logger *log.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           config.AppName,
		Short:         "React Native + Expo knowledge MCP server",
		Long:          "Serves React Native + Expo patterns, setup guides, best practices and starter-file generators over MCP.",
		Version:       rnserver.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			logger, err := logging.New(cfg)
			if err != nil {
				return fmt.Errorf("creating logger: %w", err)
			}
			a.cfg = cfg
			a.logger = logger
			return nil
		},
	}

	root.AddCommand(
		newServeCmd(a),
		newToolsCmd(a),
		newShowCmd(a),
		newSearchCmd(a),
		newVersionCmd(),
	)

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w\n\n%s", err, cmd.UsageString())
	})
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		// Skips config loading so version works with a broken config.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s v%s\n", config.AppName, rnserver.Version)
		},
	}
}
