package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	App      AppConfig
}

type ServerConfig struct {
	Port            string
	Env             string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	RateLimitPerMin int
}

type DatabaseConfig struct {
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

// RedisConfig controls the optional leaderboard snapshot cache.
// An empty Addr disables Redis; rank lookups then hit Postgres directly.
type RedisConfig struct {
	Addr           string
	Password       string
	DB             int
	LeaderboardTTL time.Duration
}

type AppConfig struct {
	// BaseURL is the public origin of the landing page, used as the referral
	// redirect target and in referral-link emails.
	BaseURL string
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            getenv("PORT", "8080"),
			Env:             getenv("APP_ENV", "development"),
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			RateLimitPerMin: getenvInt("RATE_LIMIT_PER_MIN", 100),
		},
		Database: DatabaseConfig{
			DSN:             getenv("DATABASE_URL", "host=localhost user=launchpad password=launchpad dbname=launchpad port=5432 sslmode=disable"),
			MaxIdleConns:    10,
			MaxOpenConns:    50,
			ConnMaxLifetime: time.Hour,
		},
		Redis: RedisConfig{
			Addr:           os.Getenv("REDIS_ADDR"),
			Password:       os.Getenv("REDIS_PASSWORD"),
			DB:             getenvInt("REDIS_DB", 0),
			LeaderboardTTL: 30 * time.Second,
		},
		App: AppConfig{
			BaseURL: getenv("BASE_URL", "http://localhost:8080"),
		},
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
