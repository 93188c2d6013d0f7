package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kinetrack/kinetrack/internal/server/handlers"
	"github.com/kinetrack/kinetrack/internal/server/middleware"
	"github.com/kinetrack/kinetrack/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const shutdownTimeout = 10 * time.Second

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	addr := flag.String("addr", ":8080", "Listen address")
	dbPath := flag.String("db", "kinetrack-server.db", "Path to SQLite database")
	jwtSecret := flag.String("jwt-secret", os.Getenv("KINETRACK_JWT_SECRET"), "JWT signing secret")
	tokenTTL := flag.Duration("token-ttl", 24*time.Hour, "Access token lifetime")
	rateLimit := flag.Int("rate-limit", 300, "Max requests per IP per minute, 0 disables")
	issueToken := flag.String("issue-token", "", "Print an access token for the given user id and exit")
	verbose := flag.Bool("v", false, "Verbose logging")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *jwtSecret == "" {
		logger.Error("JWT secret is required (flag -jwt-secret or env KINETRACK_JWT_SECRET)")
		os.Exit(1)
	}

	jwtConfig := handlers.JWTConfig{
		Secret:         []byte(*jwtSecret),
		AccessTokenTTL: *tokenTTL,
	}

	if *issueToken != "" {
		token, expiresIn, err := handlers.GenerateAccessToken(jwtConfig, *issueToken)
		if err != nil {
			logger.Error("failed to issue token", "error", err)
			os.Exit(1)
		}
		fmt.Printf("%s\n", token)
		logger.Info("token issued", "user_id", *issueToken, "expires_in_seconds", expiresIn)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	storage, err := sqlite.New(ctx, *dbPath)
	if err != nil {
		logger.Error("failed to open storage", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := storage.Close(); err != nil {
			logger.Error("failed to close storage", "error", err)
		}
	}()

	server := &http.Server{
		Addr:              *addr,
		Handler:           buildRouter(logger, jwtConfig, storage, *rateLimit),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", *addr, "version", Version)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}

// buildRouter assembles the HTTP routes. The health endpoint stays
// outside the auth chain so it can serve as a connectivity probe.
func buildRouter(logger *slog.Logger, jwtConfig handlers.JWTConfig, storage *sqlite.Storage, rateLimit int) http.Handler {
	healthHandler := handlers.NewHealthHandler(logger)
	measurementsHandler := handlers.NewMeasurementsHandler(logger, storage)

	auth := middleware.AuthMiddleware(logger, jwtConfig)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/health", healthHandler.HandleHealth)
	limit := middleware.RateLimitMiddleware(rateLimit, time.Minute, logger)
	mux.Handle("/api/v1/measurements", limit(auth(http.HandlerFunc(measurementsHandler.HandleMeasurements))))
	mux.Handle("/api/v1/measurements/batch", limit(auth(http.HandlerFunc(measurementsHandler.HandleBatch))))

	var handler http.Handler = mux
	handler = middleware.LoggingWithSkip(logger, []string{"/api/v1/health"})(handler)
	handler = middleware.RecoveryMiddleware(logger)(handler)

	return handler
}

func printVersion() {
	fmt.Printf("KineTrack Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
