package config

import (
	"fmt"
	"log"
	"os"
)

type Config struct {
	Port string

	// Database. Driver is "postgres" or "sqlite"; DATABASE_URL overrides the
	// discrete DB_* fields when set.
	DBDriver    string
	DBHost      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBPort      string
	DBPath      string // sqlite file (or :memory:)
	DatabaseURL string

	TokenSecret   string
	WebhookSecret string

	CORSOrigin string
	LogFile    string
}

func Load() Config {
	cfg := Config{
		Port:          getenv("PORT", "4000"),
		DBDriver:      getenv("DB_DRIVER", "postgres"),
		DBHost:        getenv("DB_HOST", "127.0.0.1"),
		DBUser:        getenv("DB_USER", "postgres"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        getenv("DB_NAME", "shoppulse"),
		DBPort:        getenv("DB_PORT", "5432"),
		DBPath:        getenv("DB_PATH", "shoppulse.db"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		TokenSecret:   os.Getenv("TOKEN_SECRET"),
		WebhookSecret: os.Getenv("SHOPIFY_WEBHOOK_SECRET"),
		CORSOrigin:    getenv("CORS_ORIGIN", "http://localhost:3000"),
		LogFile:       os.Getenv("LOG_FILE"),
	}

	log.Printf("[config] PORT=%s DB_DRIVER=%s DB_HOST=%s DB_NAME=%s CORS_ORIGIN=%s",
		cfg.Port, cfg.DBDriver, cfg.DBHost, cfg.DBName, cfg.CORSOrigin)
	if cfg.TokenSecret == "" {
		log.Printf("[config] warn: TOKEN_SECRET is empty; logins will not work")
	}
	if cfg.WebhookSecret == "" {
		log.Printf("[config] warn: SHOPIFY_WEBHOOK_SECRET is empty; all webhooks will be rejected")
	}
	return cfg
}

// DSN returns the connection string for the configured driver.
func (c Config) DSN() string {
	if c.DBDriver == "sqlite" {
		return c.DBPath
	}
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
