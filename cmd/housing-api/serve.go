package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	housing "github.com/ynstf/boston-housing-api"
	"github.com/ynstf/boston-housing-api/infrastructure/api"
	apimiddleware "github.com/ynstf/boston-housing-api/infrastructure/api/middleware"
	"github.com/ynstf/boston-housing-api/internal/log"
	"golang.org/x/sync/errgroup"
)

func serveCmd() *cobra.Command {
	var (
		envFile string
		host    string
		port    int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Start the HTTP API server.

Configuration is loaded in the following order (later sources override earlier):
  1. Default values
  2. .env file (if --env-file specified or .env exists in current directory)
  3. Environment variables
  4. Command line flags

Environment variables:
  HOST          Server host to bind to (default: 0.0.0.0)
  PORT          Server port to listen on (default: 8080)
  DATA_DIR      Data directory (default: ~/.housing-api)
  DB_URL        Database URL (default: sqlite:///{data_dir}/homes.db)
  LOG_LEVEL     Log level: DEBUG, INFO, WARN, ERROR (default: INFO)
  LOG_FORMAT    Log format: pretty, json (default: pretty)
  MODEL_PATH    Path to a pipeline artifact file (default: embedded model)
  API_KEYS      Comma-separated list of valid API keys`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(envFile, host, port)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.Flags().StringVar(&host, "host", "", "Server host to bind to (default: 0.0.0.0)")
	cmd.Flags().IntVar(&port, "port", 0, "Server port to listen on (default: 8080)")

	return cmd
}

func runServe(envFile, host string, port int) error {
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}
	cfg = cfg.WithHost(host).WithPort(port)

	if err := cfg.EnsureDataDir(); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	logger := log.Configure(cfg)
	slogger := logger.Slog()

	opts := []housing.Option{
		housing.WithDatabaseURL(cfg.DBURL()),
		housing.WithLogger(slogger),
	}
	if path := cfg.ModelPath(); path != "" {
		opts = append(opts, housing.WithModelPath(path))
	}
	if keys := cfg.APIKeys(); len(keys) > 0 {
		opts = append(opts, housing.WithAPIKeys(keys...))
	}

	attrs := append([]slog.Attr{slog.String("version", version)}, cfg.LogAttrs()...)
	slogger.LogAttrs(context.Background(), slog.LevelInfo, "starting housing-api", attrs...)

	client, err := housing.New(opts...)
	if err != nil {
		return fmt.Errorf("create housing client: %w", err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			slogger.Error("failed to close housing client", slog.Any("error", err))
		}
	}()

	apiServer := api.NewAPIServer(client)
	router := apiServer.Router()

	// Custom middleware must be registered before MountRoutes.
	router.Use(apimiddleware.Logging(slogger))
	router.Use(apimiddleware.CorrelationID)

	apiServer.MountRoutes()

	router.Get("/health", healthHandler)
	router.Get("/healthz", healthHandler)

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprintf(w, `{"name":"housing-api","version":%q}`, version)
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := api.NewServer(cfg.Addr(), slogger)
	server.Router().Mount("/", router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slogger.Info("starting server", slog.String("addr", cfg.Addr()))
		return server.Start()
	})
	g.Go(func() error {
		<-gctx.Done()
		slogger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"healthy"}`))
}
