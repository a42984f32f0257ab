package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"ligonsite/internal/config"
	"ligonsite/internal/content"
	"ligonsite/internal/logging"
	"ligonsite/internal/trace"
	"ligonsite/internal/ui"
)

// options holds the parsed CLI flags.
type options struct {
	configPath string
	section    string
	print      bool
	width      int
	verbose    bool
}

func parseFlags() options {
	var opts options

	flag.StringVar(&opts.configPath, "config", "", "path to a TOML config file (default $LIGONSITE_CONFIG or ~/.config/ligonsite/config.toml)")
	flag.StringVar(&opts.section, "section", "", "section to scroll to once the page is shown (hero, features, docs, examples, download)")
	flag.BoolVar(&opts.print, "print", false, "render the whole page to stdout and exit")
	flag.IntVar(&opts.width, "width", 100, "render width for -print")
	flag.BoolVar(&opts.verbose, "verbose", false, "log at debug level")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ligonsite [flags]\n\n")
		fmt.Fprintf(os.Stderr, "ligonsite shows the Ligon landing page in the terminal.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if opts.width < 20 {
		fmt.Fprintln(os.Stderr, "error: -width must be at least 20")
		flag.Usage()
		os.Exit(2)
	}
	return opts
}

func main() {
	if err := run(parseFlags()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.verbose {
		cfg.Log.Level = "debug"
	}
	if opts.section != "" {
		cfg.Nav.Initial = opts.section
	}

	logger, closeLog, err := logging.Open(cfg.Log.File, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(logger)

	ctx := context.Background()
	tp, err := trace.NewProvider(ctx, cfg.Trace)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			logger.Warn("trace shutdown", "err", err)
		}
	}()

	site, err := content.Load(cfg.Content.Path)
	if err != nil {
		return err
	}

	page, err := ui.NewPage(site, cfg,
		ui.WithPageLogger(logger),
		ui.WithPageTracer(tp.Tracer()),
	)
	if err != nil {
		return err
	}
	defer page.Close()
	logger.Info("starting", "page_id", page.ID, "tracing", tp.Enabled(), "print", opts.print)

	if opts.print {
		fmt.Println(page.Render(opts.width))
		return nil
	}

	p := tea.NewProgram(page.AsTeaModel(), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
