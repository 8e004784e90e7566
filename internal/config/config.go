package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	// Удаленный API с данными о преступлениях
	CrimeAPIURL string        `env:"CRIME_API_URL"`
	APITimeout  time.Duration `env:"API_TIMEOUT" envDefault:"10s"`

	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Токен картографического провайдера, отдается фронтенду как есть
	MapboxToken string `env:"MAPBOX_TOKEN"`

	// Интервал опроса новых записей
	PollInterval time.Duration `env:"POLL_INTERVAL" envDefault:"60s"`

	// Redis Config (хранилище сессии)
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Необязательный локальный архив записей (пусто - архив выключен)
	DatabaseURL string `env:"DATABASE_URL"`

	// Параметры запросов аналитики
	TrendsDays     int `env:"TRENDS_DAYS" envDefault:"30"`
	PatrolOfficers int `env:"PATROL_OFFICERS" envDefault:"5"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		CrimeAPIURL:    os.Getenv("CRIME_API_URL"),
		APITimeout:     getEnvAsDuration("API_TIMEOUT", 10*time.Second),
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		MapboxToken:    os.Getenv("MAPBOX_TOKEN"),
		PollInterval:   getEnvAsDuration("POLL_INTERVAL", 60*time.Second),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:      os.Getenv("REDIS_PASSWORD"),
		RedisDB:        getEnvAsInt("REDIS_DB", 0),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		TrendsDays:     getEnvAsInt("TRENDS_DAYS", 30),
		PatrolOfficers: getEnvAsInt("PATROL_OFFICERS", 5),
	}

	if cfg.CrimeAPIURL == "" {
		return nil, fmt.Errorf("CRIME_API_URL environment variable is required")
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
