package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pystandards"
	"github.com/fwojciec/pystandards/content"
	"github.com/fwojciec/pystandards/fs"
	"github.com/fwojciec/pystandards/gemini"
	"github.com/fwojciec/pystandards/glamour"
	"github.com/fwojciec/pystandards/goldmark"
	pyslog "github.com/fwojciec/pystandards/slog"
	"github.com/fwojciec/pystandards/sqlite"
	"github.com/mattn/go-isatty"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Stdin is read by the suggest command.
	Stdin io.Reader

	// Getenv looks up environment variables. Defaults to os.Getenv.
	Getenv func(string) string

	// SQLite database opened when --db is set.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Stdin:  os.Stdin,
		Getenv: os.Getenv,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pystandards"),
		kong.Description("Python AI Coding Standards CLI"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		Vars(),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) > 0 {
		if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
			_, _ = parser.Parse([]string{"--help"})
			return nil
		}
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", err)
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	var standards pystandards.StandardService = content.NewStore()
	if cli.DB != "" && cmd != "index" {
		m.DB = sqlite.NewDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			err = fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
			fmt.Fprintf(stderr, "error: %s\n", err)
			fmt.Fprintf(stderr, "Hint: Run 'pystandards index %s' to build the index\n", cli.DB)
			return err
		}
		defer m.Close()
		standards = sqlite.NewStandardService(m.DB)
	}

	var exporter pystandards.ExportWriter = fs.NewExporter(goldmark.NewConverter())
	if cli.Verbose {
		standards = pyslog.NewLoggingStandardService(standards, logger)
		exporter = pyslog.NewLoggingExportWriter(exporter, logger)
	}
	deps.Standards = standards
	deps.Exporter = exporter

	plain := cli.Plain || !isTerminal(stdout)
	deps.Styles = NewStyles(stdout, plain)
	if !plain {
		if r, err := glamour.NewRenderer(glamour.Config{}); err == nil {
			deps.Renderer = r
		} else {
			logger.Debug("markdown rendering disabled", "err", err)
		}
	}

	if cmd == "ask" {
		if err := m.wireAsk(ctx, deps, cli.Ask.Tokens, logger, cli.Verbose); err != nil {
			return err
		}
	}

	return kongCtx.Run(deps)
}

func (m *Main) wireAsk(ctx context.Context, deps *Dependencies, tokens bool, logger *slog.Logger, verbose bool) error {
	if tokens {
		counter, err := gemini.NewTokenCounter(gemini.DefaultModel)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", err)
			return fmt.Errorf("failed to create token counter: %w", err)
		}
		deps.Prompter = gemini.NewAsker(nil, deps.Standards, gemini.DefaultModel)
		deps.Tokens = counter
		return nil
	}

	apiKey := m.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(deps.Stderr, "error: GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		err = fmt.Errorf("failed to connect to Gemini API: %w", err)
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		fmt.Fprintln(deps.Stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return err
	}

	var asker pystandards.Asker = gemini.NewAsker(client, deps.Standards, gemini.DefaultModel)
	if verbose {
		asker = pyslog.NewLoggingAsker(asker, logger)
	}
	deps.Asker = asker
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
