package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	// Packages
	kong "github.com/alecthomas/kong"
	client "github.com/mutablelogic/go-client"
	nwsapi "github.com/mutablelogic/go-nws/pkg/nwsapi"
	tool "github.com/mutablelogic/go-nws/pkg/tool"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Debugging
	Debug   bool `name:"debug" help:"Enable debug output"`
	Verbose bool `name:"verbose" help:"Enable verbose output"`

	// Upstream
	Endpoint string        `name:"endpoint" env:"NWS_ENDPOINT" help:"Weather API endpoint override"`
	Timeout  time.Duration `name:"timeout" help:"Request timeout"`

	// Context
	ctx context.Context
}

type CLI struct {
	Globals

	// Commands
	Mcp      McpCmd      `cmd:"" help:"Run the MCP server on stdin and stdout"`
	Alerts   AlertsCmd   `cmd:"" help:"Return active weather alerts for a US state"`
	Forecast ForecastCmd `cmd:"" help:"Return the forecast for a location"`
	Tools    ToolsCmd    `cmd:"" help:"Return a list of tools"`
	Version  VersionCmd  `cmd:"" help:"Print version information"`
}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("National Weather Service command line interface"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{},
	)

	// Create a context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx

	// Run the command
	if err := cmd.Run(&cli.Globals); err != nil {
		cmd.FatalIfErrorf(err)
		return
	}
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// clientOpts returns the client options for the global flags
func (g *Globals) clientOpts() []client.ClientOpt {
	opts := []client.ClientOpt{}
	if g.Debug || g.Verbose {
		opts = append(opts, client.OptTrace(os.Stderr, g.Verbose))
	}
	if g.Endpoint != "" {
		opts = append(opts, client.OptEndpoint(g.Endpoint))
	}
	if g.Timeout > 0 {
		opts = append(opts, client.OptTimeout(g.Timeout))
	}
	return opts
}

// Toolkit returns a toolkit with the weather tools registered
func (g *Globals) Toolkit() (*tool.Toolkit, error) {
	tools, err := nwsapi.NewTools(g.clientOpts()...)
	if err != nil {
		return nil, err
	}
	return tool.NewToolkit(tools...)
}

func execName() string {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	} else {
		return filepath.Base(name)
	}
}
