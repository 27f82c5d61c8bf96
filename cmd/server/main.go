package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Freeeeeet/tutoring_server/internal/app"
	"github.com/Freeeeeet/tutoring_server/internal/config"
	"github.com/Freeeeeet/tutoring_server/internal/controller"
	"github.com/Freeeeeet/tutoring_server/internal/notify"
	"github.com/Freeeeeet/tutoring_server/internal/repository"
	"github.com/Freeeeeet/tutoring_server/internal/repository/base"
	"github.com/Freeeeeet/tutoring_server/internal/service"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatalf("tutoring server: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting tutoring server",
		zap.String("environment", cfg.Environment),
		zap.String("addr", cfg.HTTPAddr),
		zap.Bool("telegram", cfg.TelegramEnabled()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		return fmt.Errorf("create pool: %w", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	migrator, err := app.NewMigrator(pool, cfg.MigrationsPath, logger)
	if err != nil {
		return err
	}
	if err := migrator.Run(ctx); err != nil {
		_ = migrator.Close()
		return err
	}
	if err := migrator.Close(); err != nil {
		logger.Warn("Failed to close migrator", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(pool)
	courseRepo := repository.NewCourseRepository(pool)
	registrationRepo := repository.NewRegistrationRepository(pool)
	lessonRepo := repository.NewLessonRepository(pool)

	notifier := newNotifier(cfg, logger)

	userService := service.NewUserService(userRepo, logger)
	courseService := service.NewCourseService(courseRepo, logger)
	registrationService := service.NewRegistrationService(registrationRepo, courseRepo, userRepo, notifier, logger)
	lessonService := service.NewLessonService(lessonRepo, courseRepo, logger)

	handler := controller.NewHandler(
		userService,
		registrationService,
		lessonService,
		courseService,
		base.NewRepository(pool),
		logger,
	)
	e := controller.NewEcho(handler, logger)

	scheduler := app.NewScheduler(registrationService, cfg.PendingDigestInterval, logger)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", zap.String("addr", cfg.HTTPAddr))
		if err := e.Start(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("Server stopped")
	return nil
}

// newNotifier falls back to a no-op notifier when Telegram is not configured or unreachable
func newNotifier(cfg *config.Config, logger *zap.Logger) service.Notifier {
	if !cfg.TelegramEnabled() {
		logger.Info("TELEGRAM_TOKEN not set, notifications disabled")
		return notify.NewNopNotifier(logger)
	}

	telegram, err := notify.NewTelegramNotifier(cfg.TelegramToken, logger)
	if err != nil {
		logger.Error("Failed to init telegram notifier, notifications disabled", zap.Error(err))
		return notify.NewNopNotifier(logger)
	}

	return telegram
}
