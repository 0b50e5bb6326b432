package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Env var names whose presence the diagnostics route reports.
const (
	EnvDatabaseURL  = "DATABASE_URL"
	EnvDatabaseName = "DATABASE_NAME"
)

type Config struct {
	Port             string
	DatabaseURL      string
	DatabaseName     string
	DatabaseTimeout  time.Duration
	RedisURL         string
	InquiryRateLimit int
	LogFile          string
}

// Load reads .env (if present) and the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] no .env file found, using environment variables")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	timeout := 5 * time.Second
	if v := os.Getenv("DATABASE_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			timeout = d
		} else {
			log.Printf("[config] ignoring bad DATABASE_TIMEOUT=%q", v)
		}
	}
	rate := 10
	if v := os.Getenv("INQUIRY_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			rate = n
		} else {
			log.Printf("[config] ignoring bad INQUIRY_RATE_LIMIT=%q", v)
		}
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./chiragbattery.log"
	}

	cfg := Config{
		Port:             port,
		DatabaseURL:      os.Getenv(EnvDatabaseURL),
		DatabaseName:     os.Getenv(EnvDatabaseName),
		DatabaseTimeout:  timeout,
		RedisURL:         os.Getenv("REDIS_URL"),
		InquiryRateLimit: rate,
		LogFile:          logFile,
	}
	log.Printf("[config] PORT=%s DATABASE_URL=%s DATABASE_NAME=%s DATABASE_TIMEOUT=%s REDIS_URL=%s INQUIRY_RATE_LIMIT=%d LOG_FILE=%s",
		cfg.Port, setOrNot(cfg.DatabaseURL), cfg.DatabaseName, cfg.DatabaseTimeout, setOrNot(cfg.RedisURL), cfg.InquiryRateLimit, cfg.LogFile)
	return cfg
}

// IsSet reports whether an env var is present and non-empty, without exposing its value.
func IsSet(name string) bool { return os.Getenv(name) != "" }

func setOrNot(v string) string {
	if v != "" {
		return "SET"
	}
	return "NOT SET"
}
