// Package main wires the HTTP server for the club transfer ledger.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"club-transfer-ledger/config"
	"club-transfer-ledger/internal/jobs"
	"club-transfer-ledger/internal/ledger"
	"club-transfer-ledger/internal/metrics"
	"club-transfer-ledger/internal/repository"
	"club-transfer-ledger/internal/transport/http/middleware"
	"club-transfer-ledger/internal/transport/http/server/handlers-fiber"
	"club-transfer-ledger/internal/usecase"
	"club-transfer-ledger/internal/usecase/domain"
	"club-transfer-ledger/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "club ledger:", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	repo, err := repository.New(ctx, cfg.Storage.Backend, log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return err
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "backend", cfg.Storage.Backend, "error", err)
		return err
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	store := ledger.New(log, repo, m)
	if err := store.Load(ctx); err != nil {
		log.Errorw("cannot load ledger", "backend", cfg.Storage.Backend, "error", err)
		return err
	}

	uc := usecase.New(log, store, cfg.HTTP.RequestTimeout, domain.WithMetrics(m))

	sweeper := jobs.NewExpirySweeper(log, uc, m, cfg.Sweeper)
	if cfg.Sweeper.Enabled {
		sweeper.Start()
		defer sweeper.Stop()
	}

	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	serv.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	h := handlers_fiber.NewHandler(log, uc, sweeper)
	h.RegisterRoutes(serv)

	go func() {
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}
	return nil
}
