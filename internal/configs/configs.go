package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

type Config struct {
	AppURL                    string
	DatabaseDSN               string
	RateLimit                 int
	ShutdownTimeoutSeconds    int
	RedisAddr                 string
	AlfredAPIKey              string
	AlfredBaseURL             string
	AlfredModel               string
	AlfredTimeoutSeconds      int
	SuggestionCacheTTLSeconds int
}

func Load() Config {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")

	cfg := Config{
		AppURL:                    fmt.Sprintf("%s:%s", appHost, appPort),
		DatabaseDSN:               getEnv("DATABASE_DSN", "batcave.db"),
		RateLimit:                 getEnvAsInt("RATE_LIMIT_PER_MINUTE", 60),
		ShutdownTimeoutSeconds:    getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20),
		RedisAddr:                 getEnv("REDIS_ADDR", ""),
		AlfredAPIKey:              getEnv("ALFRED_API_KEY", ""),
		AlfredBaseURL:             getEnv("ALFRED_BASE_URL", ""),
		AlfredModel:               getEnv("ALFRED_MODEL", ""),
		AlfredTimeoutSeconds:      getEnvAsInt("ALFRED_TIMEOUT_SECONDS", 20),
		SuggestionCacheTTLSeconds: getEnvAsInt("SUGGESTION_CACHE_TTL_SECONDS", 300),
	}

	validate(cfg)
	return cfg
}

func validate(cfg Config) {
	if cfg.DatabaseDSN == "" {
		log.Fatal("DATABASE_DSN must not be empty")
	}
	if cfg.RateLimit <= 0 {
		log.Fatal("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
	if cfg.ShutdownTimeoutSeconds <= 0 {
		log.Fatal("SHUTDOWN_TIMEOUT_SECONDS must be greater than 0")
	}
	if cfg.AlfredTimeoutSeconds <= 0 {
		log.Fatal("ALFRED_TIMEOUT_SECONDS must be greater than 0")
	}
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid integer value for %s", key)
		}
		return i
	}
	return defaultVal
}
