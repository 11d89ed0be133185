// Package config loads application configuration from environment
// variables, optionally seeded from a .env file.
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values. Strings for
// identifiers and secrets, ints for durations and costs.
type Config struct {
	Env          string // application environment (e.g. "dev", "prod")
	Port         string // HTTP port to listen on
	JWTSecret    string // secret used to sign session tokens
	AccessTTLMin int    // access token time-to-live in minutes
	BcryptCost   int    // bcrypt cost for seeded password hashes
	AMQPURL      string // optional RabbitMQ URL for the notification bridge
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first when present. JWT_SECRET is
// required; everything else falls back to a sensible default for the
// demo deployment.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Env:          envStr("APP_ENV", "dev"),
		Port:         envStr("APP_PORT", "8080"),
		JWTSecret:    must("JWT_SECRET"),
		AccessTTLMin: envInt("ACCESS_TOKEN_TTL_MIN", 480),
		BcryptCost:   envInt("BCRYPT_COST", 10),
		AMQPURL:      os.Getenv("AMQP_URL"),
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and
// exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, v)
	}
	return n
}
