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

	"github.com/Dosada05/workout-api/config"
	"github.com/Dosada05/workout-api/db"
	"github.com/Dosada05/workout-api/feed"
	"github.com/Dosada05/workout-api/handlers"
	"github.com/Dosada05/workout-api/repositories"
	api "github.com/Dosada05/workout-api/routes"
	"github.com/Dosada05/workout-api/services"
	"github.com/Dosada05/workout-api/storage"
	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 15 * time.Second

// @title Workout API
// @version 1.0
// @description Cadastro e listagem de atletas.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and a JWT token.
func main() {
	if err := run(); err != nil {
		slog.Error("application exited with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Настройка логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)
	logger.Info("configuration loaded",
		slog.Int("port", cfg.ServerPort),
		slog.String("name_match", cfg.AthleteNameMatch),
		slog.Int("conflict_status", cfg.ConflictStatusCode),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Подключение к базе данных
	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established", slog.String("driver", dbConn.DriverName()))

	if err := db.EnsureSchema(ctx, dbConn); err != nil {
		return fmt.Errorf("failed to prepare schema: %w", err)
	}

	// Загрузчик экспорта (Cloudflare R2) подключается только при наличии настроек
	var uploader storage.FileUploader
	if cfg.R2.Enabled() {
		uploader, err = storage.NewCloudflareR2Uploader(ctx, storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2.AccountID,
			AccessKeyID:     cfg.R2.AccessKeyID,
			SecretAccessKey: cfg.R2.SecretAccessKey,
			BucketName:      cfg.R2.BucketName,
			PublicBaseURL:   cfg.R2.PublicBaseURL,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize Cloudflare R2 uploader: %w", err)
		}
		logger.Info("Cloudflare R2 uploader initialized", slog.String("bucket", cfg.R2.BucketName))
	} else {
		logger.Info("Cloudflare R2 not configured, athlete export disabled")
	}

	wsHub := feed.NewHub(logger)

	nameMatch := repositories.NameMatchInsensitive
	if cfg.CaseSensitiveNameMatch() {
		nameMatch = repositories.NameMatchSensitive
	}
	athleteRepo := repositories.NewSQLAthleteRepository(dbConn, nameMatch)
	athleteService := services.NewAthleteService(athleteRepo, uploader, wsHub)

	athleteHandler := handlers.NewAthleteHandler(athleteService, cfg.ConflictStatusCode)
	healthHandler := handlers.NewHealthHandler(dbConn)
	webSocketHandler := handlers.NewWebSocketHandler(wsHub, cfg.CORSAllowedOrigins, logger)

	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		api.Options{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			JWTSecret:      []byte(cfg.JWTSecretKey),
			Logger:         logger,
		},
		athleteHandler,
		healthHandler,
		webSocketHandler,
	)
	if cfg.JWTSecretKey == "" {
		logger.Warn("JWT_SECRET_KEY not set, write endpoints are public")
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		wsHub.Run(gctx)
		logger.Info("WebSocket hub stopped")
		return nil
	})

	g.Go(func() error {
		logger.Info("starting server", slog.String("address", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			_ = server.Close()
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		logger.Info("server shutdown complete")
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("application exited")
	return nil
}
