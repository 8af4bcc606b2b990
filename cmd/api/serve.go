package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"hourlog/internal/config"
	"hourlog/internal/database"
	"hourlog/internal/database/migration"
	"hourlog/internal/http/handler"
	"hourlog/internal/http/middleware"
	"hourlog/internal/logger"
	"hourlog/internal/otel"
	"hourlog/internal/repository"
	"hourlog/internal/repository/memory"
	"hourlog/internal/repository/postgres"
	"hourlog/internal/service"
	"hourlog/internal/storage"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run migrations if needed and serve the HTTP API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Logging.Level, cfg.Logging.Pretty)

	shutdownTracing, err := otel.Init(ctx, cfg.Tracing, log)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			log.Error().Err(err).Msg("tracing shutdown failed")
		}
	}()

	repo, db, err := newRepository(ctx, cfg, log)
	if err != nil {
		return err
	}
	// Stays a nil interface for the in-memory backend.
	var pinger handler.Pinger
	if db != nil {
		defer db.Close()
		pinger = db
	}

	var store storage.Storage
	if cfg.MinIO.Endpoint != "" {
		store, err = storage.NewMinIO(ctx, cfg.MinIO)
		if err != nil {
			return fmt.Errorf("init object storage: %w", err)
		}
	} else {
		log.Info().Msg("object storage not configured, exports disabled")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	if db != nil {
		reg.MustRegister(collectors.NewDBStatsCollector(db, cfg.Database.Name))
	}

	app, err := newApp(log, reg, pinger, service.NewHoursService(repo, store))
	if err != nil {
		return err
	}

	addr := ":" + strconv.Itoa(cfg.Server.Port)
	log.Info().Str("addr", addr).Str("backend", cfg.Storage.Backend).Msg("starting http server")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := app.Listen(addr); err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down http server")
		return app.ShutdownWithTimeout(shutdownTimeout)
	})
	return g.Wait()
}

// newRepository picks the configured backend. For postgres it also returns the pool, already migrated.
func newRepository(ctx context.Context, cfg *config.AppConfig, log zerolog.Logger) (repository.HoursRepository, *sql.DB, error) {
	switch cfg.Storage.Backend {
	case config.BackendMemory:
		log.Warn().Msg("using in-memory storage, data is lost on restart")
		return memory.NewHoursMemory(), nil, nil
	case config.BackendPostgres:
		db, err := database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("connect database: %w", err)
		}
		if err := migration.Up(ctx, db, log); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return postgres.NewHoursPostgres(db), db, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

func newApp(log zerolog.Logger, reg *prometheus.Registry, db handler.Pinger, svc service.HoursService) (*fiber.App, error) {
	prom, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handler.ErrorHandler(),
		DisableStartupMessage: true,
	})

	// RequestID adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	app.Use(middleware.Logger(log))
	app.Use(prom.Handler())

	handler.RegisterRoutes(app, db, svc, reg)
	return app, nil
}
