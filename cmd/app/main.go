package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dispatch/cmd"
	httpin "dispatch/internal/adapters/in/http"
	postgres_adapter "dispatch/internal/adapters/out/postgres"

	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, flush, err := cmd.NewLogger(cfg)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer flush()
	slog.SetDefault(logger)

	if err = run(cfg, logger); err != nil {
		logger.Error("Dispatch service stopped with error", "error", err)
		flush()
		os.Exit(1)
	}
}

func run(cfg cmd.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)

	if err = postgres_adapter.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	redisClient := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:    []string{cfg.RedisAddr},
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()
	if err = redisClient.Ping(ctx).Err(); err != nil {
		logger.WarnContext(ctx, "Redis is not reachable, notifications will fail until it is", "error", err)
	}

	app := cmd.NewCompositionRoot(cfg, db, redisClient, logger)

	doc, err := httpin.LoadDocument(ctx)
	if err != nil {
		return err
	}
	e, err := httpin.NewEcho(app.CreateServer(), doc, logger)
	if err != nil {
		return err
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		addr := fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort)
		logger.InfoContext(gctx, "HTTP server listening", "addr", addr)
		if startErr := e.Start(addr); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			return startErr
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.InfoContext(shutdownCtx, "Shutting down HTTP server")
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
