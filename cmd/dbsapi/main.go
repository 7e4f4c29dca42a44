package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/dbsapi/dbsapi"
	"github.com/dbsapi/dbsapi/goquery"
	dbshttp "github.com/dbsapi/dbsapi/http"
	"github.com/dbsapi/dbsapi/scrape"
	dbsslog "github.com/dbsapi/dbsapi/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher used for upstream requests. Set before calling Run() to
	// replace the HTTP fetcher, e.g. in end-to-end tests.
	Fetcher dbsapi.Fetcher

	// Page URLs, overridable for end-to-end tests.
	HomeURL   string
	EventsURL string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		HomeURL:   dbsapi.HomeURL,
		EventsURL: dbsapi.EventsURL,
	}
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
		kong.Name("dbsapi"),
		kong.Description("JSON API over the Don Bosco School Berhampore website"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'dbsapi --help' to see available commands")
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

	deps.Logger = newLogger(stderr, cli.LogLevel, cli.LogFormat)

	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = dbshttp.NewFetcher(
			dbshttp.WithTimeout(cli.FetchTimeout),
			dbshttp.WithUserAgent(cli.UserAgent),
		)
	}
	fetcher = dbsslog.NewLoggingFetcher(fetcher, deps.Logger)
	defer fetcher.Close()

	svc := scrape.NewService(fetcher, goquery.NewExtractor(dbsapi.NewSiteMarkup()))
	svc.HomeURL = m.HomeURL
	svc.EventsURL = m.EventsURL
	svc.EventImageHosts = cli.EventImageHosts
	deps.Service = dbsslog.NewLoggingSchoolService(svc, deps.Logger)

	return kongCtx.Run(deps)
}

// newLogger builds the process logger. Level and format are validated by kong.
func newLogger(w io.Writer, level, format string) *slog.Logger {
	var lvl slog.Level
	_ = lvl.UnmarshalText([]byte(level))

	opts := &slog.HandlerOptions{Level: lvl}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
