package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/qrtables"
	"github.com/fwojciec/qrtables/generate"
	"github.com/fwojciec/qrtables/goquery"
	qrhttp "github.com/fwojciec/qrtables/http"
	qrslog "github.com/fwojciec/qrtables/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher overrides the HTTP fetcher. Used for end-to-end testing.
	Fetcher qrtables.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("qrtables"),
		kong.Description("Generate QR code reference tables as array declarations"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'qrtables --help' to see available commands")
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	var fetcher qrtables.Fetcher = m.Fetcher
	if fetcher == nil {
		fetcher = qrhttp.NewFetcher(qrhttp.WithTimeout(cli.Timeout))
	}
	defer fetcher.Close()

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Generator: &generate.Generator{
			Fetcher: qrslog.NewLoggingFetcher(fetcher, logger),
			Tables:  qrslog.NewLoggingTableReader(goquery.NewTableReader(), logger),
			Dialect: cli.Dialect,
		},
	}

	return kongCtx.Run(deps)
}
