package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/optcg/fs"
	optcghttp "github.com/fwojciec/optcg/http"
	"github.com/fwojciec/optcg/scrape"
	optcgslog "github.com/fwojciec/optcg/slog"
	"github.com/fwojciec/optcg/sqlite"
	"github.com/fwojciec/optcg/toml"
)

// requestsPerSecond is the politeness limit toward the vendor site.
const requestsPerSecond = 2.0

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
	// Database path. Set before calling Run().
	DBPath string

	// Root directory for JSON and image output.
	DataDir string

	// Directory holding the locale TOML files.
	LocalesDir string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults from the
// environment.
func NewMain() *Main {
	return &Main{
		DBPath:     envOr("OPTCG_DB", "data/optcg.db"),
		DataDir:    envOr("OPTCG_DATA", "data"),
		LocalesDir: envOr("OPTCG_LOCALES", "locales"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
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
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("optcg"),
		kong.Description("Fetch One Piece TCG card data from the official card list."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'optcg --help' to see available commands")
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	locales := toml.NewLocaleSource(m.LocalesDir)
	deps.Locales = locales

	// The locales command only lists tables; everything else needs a
	// loaded locale and the full scrape/storage wiring.
	cmd := strings.Fields(kongCtx.Command())[0]
	if cmd != "locales" {
		locale, err := locales.Load(cli.Lang)
		if err != nil {
			fmt.Fprintf(stderr, "Hint: Set OPTCG_LOCALES to the directory holding the locale TOML files\n")
			return fmt.Errorf("failed to load locale %q: %w", cli.Lang, err)
		}

		scraper := &scrape.Scraper{
			BaseURL: fmt.Sprintf("https://%s", locale.Hostname),
			Locale:  locale,
			Fetcher: optcghttp.NewFetcher(),
			Limiter: scrape.NewDomainLimiter(requestsPerSecond),
		}
		deps.Scraper = optcgslog.NewLoggingScraper(scraper, logger)

		store := fs.NewStore(m.DataDir, cli.Lang)
		deps.Images = store

		if needsDB(cli, cmd) {
			m.DB = sqlite.NewDB(m.DBPath)
			if err := m.DB.Open(); err != nil {
				fmt.Fprintf(stderr, "Hint: Set OPTCG_DB to use a different database path\n")
				return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
			}
			defer m.Close()

			deps.Packs = sqlite.NewPackService(m.DB)
			deps.Cards = sqlite.NewCardService(m.DB)
		} else {
			deps.Packs = store
			deps.Cards = store
		}
	}

	return kongCtx.Run(deps)
}

// needsDB reports whether the invoked command persists to SQLite. Plain
// JSON-to-stdout runs, image-only runs, and --files runs stay file-based.
func needsDB(cli *CLI, cmd string) bool {
	if cli.Files {
		return false
	}
	switch cmd {
	case "packs":
		return cli.Packs.Save
	case "cards":
		return cli.Cards.Save || cli.Cards.Images
	default:
		return false
	}
}
