// rn-expo-mcp: React Native + Expo knowledge MCP server
//
// Serves pattern cheat-sheets, a 13-step setup tutorial, best practices
// and starter-file generators to any MCP-capable AI coding tool.
//
// Usage:
//
//	rn-expo-mcp serve                       # Start MCP server (stdio transport)
//	rn-expo-mcp tools                       # List the available tools
//	rn-expo-mcp show get-setup-guide step=2 # Call a tool and render the result
//	rn-expo-mcp search mmkv                 # Search the whole catalog
//	rn-expo-mcp version
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
