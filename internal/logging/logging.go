// Package logging builds the charmbracelet logger shared by the server
// and CLI. Output always goes to stderr because stdout carries the MCP
// stdio transport.
package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/expo-kit/rn-expo-mcp/internal/config"
)

// New returns a stderr logger configured from cfg.
func New(cfg config.Config) (*log.Logger, error) {
	return NewWithWriter(os.Stderr, cfg)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, cfg config.Config) (*log.Logger, error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}

	formatter, err := parseFormatter(cfg.LogFormat)
	if err != nil {
		return nil, err
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          config.AppName,
		Level:           level,
		Formatter:       formatter,
	}), nil
}

func parseFormatter(name string) (log.Formatter, error) {
	switch name {
	case "", "text":
		return log.TextFormatter, nil
	case "json":
		return log.JSONFormatter, nil
	case "logfmt":
		return log.LogfmtFormatter, nil
	default:
		return log.TextFormatter, fmt.Errorf("unknown log format %q", name)
	}
}

// NewTestLogger creates a debug-level logger that writes to a buffer.
func NewTestLogger() (*log.Logger, *bytes.Buffer) {
	var buf bytes.Buffer

	logger := log.NewWithOptions(&buf, log.Options{
		ReportTimestamp: false,
		Prefix:          "test",
		Level:           log.DebugLevel,
	})
	return logger, &buf
}
