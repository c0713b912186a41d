package scaffold

import (
	"fmt"

	"github.com/expo-kit/rn-expo-mcp/internal/config"
)

// ClaudeRequest describes a CLAUDE.md project rules document.
type ClaudeRequest struct {
	AppName     string
	Router      config.Router
	Description string
	Features    []string
}

// ClaudeMD renders the project rules document for an AI coding assistant.
// An unspecified router means expo-router.
func (g *Generator) ClaudeMD(req ClaudeRequest) (string, error) {
	data := dataFor(req.AppName, req.Description, req.Router.OrDefault(), req.Features)

	out, err := g.renderer.Render(claudeTemplate, data)
	if err != nil {
		return "", fmt.Errorf("generating CLAUDE.md: %w", err)
	}
	return out, nil
}

// EnvSetup renders per-environment config files and switch scripts.
func (g *Generator) EnvSetup(appName string) (string, error) {
	data := dataFor(appName, "", config.RouterExpo, nil)

	out, err := g.renderer.Render(envSetupTemplate, data)
	if err != nil {
		return "", fmt.Errorf("generating env setup: %w", err)
	}
	return out, nil
}
