package main

import (
	"fmt"
	"os"
	"strings"

	// Packages
	mcp "github.com/mutablelogic/go-nws/pkg/mcp"
	version "github.com/mutablelogic/go-nws/pkg/version"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type McpCmd struct{}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *McpCmd) Run(g *Globals) error {
	// Create toolkit with tools
	toolkit, err := g.Toolkit()
	if err != nil {
		return err
	}

	// Log tools that will be exposed via MCP. Standard output carries
	// the protocol, so lifecycle messages go to stderr.
	var toolNames []string
	for _, t := range toolkit.Tools() {
		toolNames = append(toolNames, t.Name())
	}
	fmt.Fprintln(os.Stderr, "Running MCP server with tools:", strings.Join(toolNames, ", "))
	defer fmt.Fprintln(os.Stderr, "MCP server stopped")

	// Create MCP server
	server, err := mcp.New("weather", version.Version(),
		mcp.WithToolkit(toolkit),
	)
	if err != nil {
		return err
	}

	// Run the server on stdio
	return server.RunStdio(g.ctx, os.Stdin, os.Stdout)
}
