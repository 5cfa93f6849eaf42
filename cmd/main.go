package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/okian/eventsheet/internal/adapters/document"
	"github.com/okian/eventsheet/internal/adapters/repository"
	app "github.com/okian/eventsheet/internal/app"
	"github.com/okian/eventsheet/internal/config"
	"github.com/okian/eventsheet/pkg/logger"
	"github.com/okian/eventsheet/pkg/metrics"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one generation. The written path goes to stdout; logs and
// errors go to stderr.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fset := flag.NewFlagSet("eventsheet", flag.ContinueOnError)
	fset.SetOutput(stderr)
	eventID := fset.Int64("event", 0, "generate the sheet for this event id")
	upcoming := fset.Bool("upcoming", false, "generate the upcoming events list")
	out := fset.String("out", "", "output path (default: a dated name in output_dir)")
	fset.Usage = func() {
		fmt.Fprintln(stderr, "usage: eventsheet -event ID [-out PATH] | -upcoming [-out PATH]")
		fset.PrintDefaults()
	}
	if err := fset.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if (*eventID > 0) == *upcoming {
		fset.Usage()
		return exitUsage
	}

	// A missing .env file is fine; the environment may already be set.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(stderr, "failed to read .env: "+err.Error())
		return exitFailure
	}

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		// Use fmt for initialization errors since logger isn't available yet
		fmt.Fprintln(stderr, "failed to load config: "+err.Error())
		return exitFailure
	}

	if err := logger.Init(logger.WithWriter(stderr), logger.WithJSON(cfg.LogJSON)); err != nil {
		fmt.Fprintln(stderr, "failed to initialize logging: "+err.Error())
		return exitFailure
	}
	log := logger.Get()
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	db, err := repository.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "failed to open database", logger.String("path", cfg.DatabasePath), logger.Error(err))
		return exitFailure
	}
	defer db.Close()

	gen := app.New(
		app.WithLogger(log.Named("generator")),
		app.WithReader(repository.NewSQLReader(db, repository.WithLogger(log.Named("repository")))),
		app.WithRenderer(document.NewRenderer(
			document.WithCompression(cfg.Compress),
			document.WithLogger(log.Named("document")),
		)),
		app.WithOutputDir(cfg.OutputDir),
	)

	var path string
	if *upcoming {
		path, err = gen.GenerateUpcomingEventsList(ctx, *out)
	} else {
		path, err = gen.GenerateEventSheet(ctx, *eventID, *out)
	}

	if cfg.MetricsFile != "" {
		if merr := metrics.WriteTextfile(cfg.MetricsFile); merr != nil {
			log.Warn(ctx, "failed to write metrics", logger.String("path", cfg.MetricsFile), logger.Error(merr))
		}
	}

	if err != nil {
		fmt.Fprintln(stderr, "error: "+err.Error())
		return exitFailure
	}
	fmt.Fprintln(stdout, path)
	return exitOK
}
