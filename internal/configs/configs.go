package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

type Config struct {
	AppURL                 string
	DatabaseDSN            string
	JWTSecret              string
	TokenValidityMinutes   int
	RateLimit              int
	RedisAddr              string
	RedisDenylistPrefix    string
	ShutdownTimeoutSeconds int
}

func Load() Config {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")
	redisHost := getEnv("REDIS_HOST", "127.0.0.1")
	redisPort := getEnv("REDIS_PORT", "6379")

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		DatabaseDSN:            getEnv("DATABASE_DSN", "taskhub.db"),
		JWTSecret:              getEnv("JWT_SECRET", ""),
		TokenValidityMinutes:   getEnvAsInt("TOKEN_VALIDITY_MINUTES", 60),
		RateLimit:              getEnvAsInt("RATE_LIMIT_PER_SECOND", 20),
		RedisAddr:              fmt.Sprintf("%s:%s", redisHost, redisPort),
		RedisDenylistPrefix:    getEnv("REDIS_DENYLIST_PREFIX", "revoked_token:"),
		ShutdownTimeoutSeconds: getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20),
	}

	validate(cfg)
	return cfg
}

func validate(cfg Config) {
	if cfg.AppURL == "" {
		log.Fatal("APP_URL must not be empty (e.g. 127.0.0.1:8080)")
	}
	if cfg.DatabaseDSN == "" {
		log.Fatal("DATABASE_DSN must not be empty")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must not be empty")
	}
	if cfg.TokenValidityMinutes <= 0 {
		log.Fatal("TOKEN_VALIDITY_MINUTES must be greater than 0")
	}
	if cfg.RateLimit <= 0 {
		log.Fatal("RATE_LIMIT_PER_SECOND must be greater than 0")
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
