package main

import (
	"context"
	"fmt"
	"io"
	stdslog "log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/mpickford/folkweb"
	"github.com/mpickford/folkweb/browse"
	folkhttp "github.com/mpickford/folkweb/http"
	"github.com/mpickford/folkweb/lru"
	"github.com/mpickford/folkweb/mcp"
	folkslog "github.com/mpickford/folkweb/slog"
)

const version = "0.1.0"

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("folkweb"),
		kong.Description("Read-only structured access to the folk music encyclopaedia."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		kong.Vars{"origin": folkweb.SiteOrigin},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'folkweb --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Wire the fetch stack: bounded TTL cache, caching HTTP fetcher,
	// optional logging decorator.
	cache := lru.New(cli.CacheSize, lru.DefaultTTL)
	var fetcher folkweb.Fetcher = folkhttp.NewFetcher(cache, folkhttp.WithOrigin(cli.Origin))
	if cli.Verbose {
		logger := stdslog.New(stdslog.NewTextHandler(stderr, nil))
		fetcher = folkslog.NewLoggingFetcher(fetcher, logger)
	}

	service := browse.New(fetcher)
	deps.Service = service
	deps.Warmer = service
	deps.MCP = mcp.NewServer(service, version)

	return kongCtx.Run(deps)
}
