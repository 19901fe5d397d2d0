package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"customs/cmd"
	"customs/internal/adapters/out/postgres"
	_ "customs/internal/generated/docs"
	"customs/internal/generated/servers"
	"customs/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	gommonlog "github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// @title Customs Package Tracking API
// @version 1.0
// @description Status tracking of inbound packages through customs clearance.
// @BasePath /
func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(configs.Environment, configs.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", configs.Environment),
		zap.String("log_level", configs.LogLevel),
	)

	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := postgres.AutoMigrate(gormDB); err != nil {
		l.Fatal("Failed to migrate database", zap.Error(err))
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, l)
	if err != nil {
		l.Fatal("Failed to build application", zap.Error(err))
	}
	defer func() {
		if err := app.Close(); err != nil {
			l.Warn("Failed to close application", zap.Error(err))
		}
	}()

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		l.Fatal("Failed to start jobs", zap.Error(err))
	}
	defer jobManager.StopAll()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := startWebServer(ctx, app, configs.HTTPPort, l); err != nil {
		l.Error("Server stopped with error", zap.Error(err))
	}
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, l *zap.Logger) error {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(gommonlog.WARN)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				l.Warn("HTTP request failed", append(fields, zap.Error(v.Error))...)
				return nil
			}
			l.Info("HTTP request", fields...)
			return nil
		},
	}))

	validator, err := app.CreateRequestValidator()
	if err != nil {
		return fmt.Errorf("build request validator: %w", err)
	}
	e.Use(validator)

	servers.RegisterHandlers(e, app.CreateHTTPServer())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", port))
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	l.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
