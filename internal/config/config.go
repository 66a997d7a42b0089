package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Substrate driver names accepted by store.driver.
const (
	StoreDriverRedis    = "redis"
	StoreDriverPostgres = "postgres"
)

// Config holds runtime configuration values for the booking service.
type Config struct {
	AppName       string
	AppEnv        string
	AppPort       string
	StoreDriver   string
	RedisURL      string
	DatabaseURL   string
	JWTSecret     string
	SessionTTL    time.Duration
	AdminUsername string
	AdminSecret   string
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values from environment variables and an
// optional .env file. The admin credential defaults to admin/admin, the
// fixed pair the clients were built around; deployments can override it.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("TURNERO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "Turnero API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("store.driver", StoreDriverRedis)
	v.SetDefault("session.ttl", "12h")
	v.SetDefault("admin.username", "admin")
	v.SetDefault("admin.secret", "admin")

	ttlString := v.GetString("session.ttl")
	if ttlString == "" {
		ttlString = "12h"
	}

	ttl, err := time.ParseDuration(ttlString)
	if err != nil {
		return Config{}, fmt.Errorf("invalid session ttl: %w", err)
	}

	cfg := Config{
		AppName:       v.GetString("app.name"),
		AppEnv:        v.GetString("app.env"),
		AppPort:       v.GetString("app.port"),
		StoreDriver:   strings.ToLower(v.GetString("store.driver")),
		RedisURL:      v.GetString("redis.url"),
		DatabaseURL:   v.GetString("database.url"),
		JWTSecret:     v.GetString("jwt.secret"),
		SessionTTL:    ttl,
		AdminUsername: v.GetString("admin.username"),
		AdminSecret:   v.GetString("admin.secret"),
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("jwt secret must be provided")
	}

	switch cfg.StoreDriver {
	case StoreDriverRedis, StoreDriverPostgres:
	default:
		return Config{}, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}

	return cfg, nil
}
