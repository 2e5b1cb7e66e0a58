package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/handiism/inventory/internal/catalog"
	"github.com/handiism/inventory/internal/config"
	"github.com/handiism/inventory/internal/export"
	"github.com/handiism/inventory/internal/model"
	"github.com/handiism/inventory/internal/render"
)

const (
	exitOK          = 0
	exitError       = 1
	exitInterrupted = 130
)

func main() {
	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code. Rendered
// output goes to stdout, diagnostics to stderr.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("inventory", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configFlag  = fs.String("config", "", "Path to config file")
		catalogFlag = fs.String("catalog", "", "Catalog file or URL (overrides config)")
		formatFlag  = fs.String("format", "", "Comma-separated output formats: xml, json, id3 (overrides config)")
		exportFlag  = fs.String("export", "", "Export every item into this directory instead of printing")
		verboseFlag = fs.Bool("verbose", false, "Show verbose output")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitError
	}

	level := slog.LevelInfo
	if *verboseFlag {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			logger.Error("load config", "path", *configFlag, "error", err)
			return exitError
		}
	}

	// Apply flags
	if *catalogFlag != "" {
		settings.Catalog = *catalogFlag
	}
	if *formatFlag != "" {
		settings.Formats = strings.Split(*formatFlag, ",")
	}
	if *exportFlag != "" {
		settings.ExportPath = *exportFlag
	}

	items, err := loadCatalog(ctx, settings.Catalog)
	if err != nil {
		logger.Error("load catalog", "source", settings.Catalog, "error", err)
		return exitCode(ctx)
	}
	logger.Debug("catalog loaded", "items", items.Len())

	if *exportFlag != "" {
		err = exportCatalog(ctx, logger, settings, items)
	} else {
		err = printCatalog(stdout, settings, items)
	}
	if err != nil {
		logger.Error("inventory failed", "error", err)
		return exitCode(ctx)
	}

	if ctx.Err() != nil {
		logger.Warn("interrupted")
		return exitInterrupted
	}
	return exitOK
}

func exitCode(ctx context.Context) int {
	if ctx.Err() != nil {
		return exitInterrupted
	}
	return exitError
}

func loadCatalog(ctx context.Context, source string) (*model.Catalog, error) {
	if source == "" {
		return model.SampleCatalog(), nil
	}
	return catalog.NewLoader().Load(ctx, source)
}

// printCatalog writes one line per item per format: every item through the
// first format's visitor, then every item through the next.
func printCatalog(w io.Writer, settings *config.Settings, items *model.Catalog) error {
	formats, err := settings.ParsedFormats()
	if err != nil {
		return err
	}
	opts, err := settings.RenderOptions()
	if err != nil {
		return err
	}

	for _, f := range formats {
		if f.Binary() {
			return fmt.Errorf("format %s is binary, use -export to write it to files", f)
		}
	}

	for _, f := range formats {
		visitor, err := render.NewVisitor(f, w, opts)
		if err != nil {
			return err
		}
		if err := items.Accept(visitor); err != nil {
			return err
		}
	}

	return nil
}

func exportCatalog(ctx context.Context, logger *slog.Logger, settings *config.Settings, items *model.Catalog) error {
	manager, err := export.NewManager(settings, func(event export.ProgressEvent) {
		switch event.Level {
		case export.LevelError:
			logger.Error(event.Message)
		case export.LevelWarning:
			logger.Warn(event.Message)
		case export.LevelVerbose:
			logger.Debug(event.Message)
		default:
			logger.Info(event.Message)
		}
	})
	if err != nil {
		return err
	}

	if err := manager.Export(ctx, items); err != nil {
		return err
	}

	written, total := manager.Progress()
	logger.Info("export complete", "dir", manager.Dir(), "files", written, "expected", total)
	return nil
}
