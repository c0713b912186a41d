package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	rnserver "github.com/expo-kit/rn-expo-mcp/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Graceful shutdown on interrupt.
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, a)
		},
	}
}

func serve(ctx context.Context, a *app) error {
	s, cleanup, err := rnserver.New(ctx, a.cfg, a.logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}
	defer cleanup()

	// stdout carries the protocol; everything else goes to stderr.
	stdio := server.NewStdioServer(s)
	stdio.SetErrorLogger(a.logger.StandardLog(log.StandardLogOptions{ForceLevel: log.ErrorLevel}))

	a.logger.Info("serving on stdio", "version", rnserver.Version, "router", a.cfg.DefaultRouter.OrDefault())
	err = stdio.Listen(ctx, os.Stdin, os.Stdout)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("serving stdio: %w", err)
	}
	a.logger.Info("shutdown complete")
	return nil
}
