package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kinetrack/kinetrack/internal/client/api"
	"github.com/kinetrack/kinetrack/internal/client/cli"
	"github.com/kinetrack/kinetrack/internal/client/connectivity"
	"github.com/kinetrack/kinetrack/internal/client/data"
	"github.com/kinetrack/kinetrack/internal/client/storage/boltdb"
	"github.com/kinetrack/kinetrack/internal/client/sync"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	dbPath := flag.String("db", "kinetrack-client.db", "Path to local database")
	userID := flag.String("user", "", "User id")
	token := flag.String("token", os.Getenv("KINETRACK_TOKEN"), "Access token")
	verbose := flag.Bool("v", false, "Verbose logging")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}
	command := args[0]

	if *userID == "" {
		fmt.Fprintln(os.Stderr, "Error: -user is required")
		os.Exit(1)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	apiClient := api.NewClient(*serverURL, *token, logger)

	// A one-shot process probes aggressively so commands that need the
	// network don't wait out the full debounce cadence.
	monitor := connectivity.NewMonitor(
		connectivity.ProbeFunc(apiClient.Health),
		connectivity.Config{
			Interval:     500 * time.Millisecond,
			StableWindow: time.Millisecond,
			ProbeTimeout: 3 * time.Second,
		},
		logger,
	)
	monitor.Start(ctx)
	defer monitor.Stop()

	engine := sync.NewEngine(boltStorage, boltStorage, apiClient, monitor, sync.Config{}, logger)
	defer engine.Stop()

	if err := engine.Bootstrap(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to bootstrap sync engine: %v\n", err)
		os.Exit(1)
	}

	dataService := data.NewService(boltStorage, boltStorage, engine, logger)
	app := cli.NewApp(dataService, engine, *userID, os.Stdout)

	if err := run(ctx, app, monitor, engine, logger, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, app *cli.App, monitor *connectivity.Monitor, engine *sync.Engine, logger *slog.Logger, command string, args []string) error {
	switch command {
	case "add":
		if err := app.RunAdd(ctx, args); err != nil {
			return err
		}
		// Give the scheduled pass a chance to run before exit.
		waitOnline(ctx, monitor, 3*time.Second)
		return engine.ForceSyncNow(ctx)
	case "list":
		return app.RunList(ctx)
	case "status":
		waitOnline(ctx, monitor, 2*time.Second)
		return app.RunStatus(ctx)
	case "sync":
		waitOnline(ctx, monitor, 5*time.Second)
		return app.RunSync(ctx)
	case "retry":
		waitOnline(ctx, monitor, 5*time.Second)
		return app.RunRetry(ctx)
	case "prune":
		return app.RunPrune(ctx)
	case "watch":
		// Watch also keeps background sync alive.
		trigger := sync.NewTrigger(engine, monitor, 0, logger)
		trigger.Start(ctx)
		defer trigger.Stop()
		return app.RunWatch(ctx)
	default:
		cli.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

// waitOnline blocks until the monitor commits an online state or the
// timeout expires. Offline is a valid answer; commands fall back to
// local-only behavior.
func waitOnline(ctx context.Context, monitor *connectivity.Monitor, timeout time.Duration) {
	deadline := time.After(timeout)
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		if monitor.IsOnline() {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-deadline:
			return
		case <-ticker.C:
		}
	}
}

func printVersion() {
	fmt.Printf("KineTrack Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
