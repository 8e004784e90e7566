package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/shenikar/crime_pulse/internal/config"
	"github.com/shenikar/crime_pulse/internal/crimeapi"
	v1 "github.com/shenikar/crime_pulse/internal/handler/http/v1"
	"github.com/shenikar/crime_pulse/internal/poller"
	"github.com/shenikar/crime_pulse/internal/repository"
	"github.com/shenikar/crime_pulse/internal/service"
	"github.com/shenikar/crime_pulse/internal/session"
	"github.com/shenikar/crime_pulse/internal/store"
	"github.com/shenikar/crime_pulse/pkg/logger"
	"github.com/shenikar/crime_pulse/pkg/postgres"
	redisclient "github.com/shenikar/crime_pulse/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/crime_pulse/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title CrimePulse Dashboard Gateway API
// @version 1.0
// @description Local gateway for the CrimePulse crime map: polls the remote crime data API and serves the map frontend.
// @host localhost:8080
// @BasePath /api/v1
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown: его отмена останавливает poller
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Необязательный локальный архив записей в PostgreSQL
	var archive service.CrimeArchive
	if cfg.DatabaseURL != "" {
		if err := runMigrations(cfg, log); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}

		dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		}
		defer dbpool.Close()
		log.Info("Successfully connected to PostgreSQL, crime archive enabled")

		archive = repository.NewCrimeArchive(dbpool)
	} else {
		log.Info("DATABASE_URL is not set, crime archive disabled")
	}

	// Инициализация Redis клиента (хранилище сессии)
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Клиент удаленного API и хранилище данных
	apiClient := crimeapi.NewClient(cfg.CrimeAPIURL, cfg.APITimeout)
	dataStore := store.New()
	sessionRepo := session.NewRedisRepository(redisClient)

	// Инициализация сервиса панели
	dashboard := service.NewDashboardService(apiClient, dataStore, sessionRepo, archive, log, cfg)

	// Восстановление сессии предыдущего запуска (без сетевых запросов)
	if _, err := dashboard.RestoreSession(ctx); err != nil {
		log.WithError(err).Warn("Failed to restore previous session")
	}

	// Начальная загрузка идет в фоне, сервер стартует сразу: до ее
	// завершения хэндлеры отдают пустые или архивные данные
	go dashboard.InitialLoad(ctx)

	// Запуск периодического опроса новых записей
	dataPoller := poller.New(dashboard, cfg.PollInterval, log)
	dataPoller.Start(ctx)

	// Инициализация хэндлеров
	handler := v1.NewHandler(dashboard, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	router.Use(v1.RequestIDMiddleware(log))
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	// Останавливаем poller вместе с сервером
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
