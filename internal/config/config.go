package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// Config holds everything the process reads from the environment.
type Config struct {
	DatabaseURL   string
	SessionSecret string
	Port          string
	Env           string // "production" enables secure cookies and release mode
	BcryptCost    int
}

// Load reads configuration from environment variables. A missing
// DATABASE_URL is a startup error; everything else has a dev default.
func Load() (*Config, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "secret_key_change_me"
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	cost := bcrypt.DefaultCost
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < bcrypt.MinCost || n > bcrypt.MaxCost {
			return nil, fmt.Errorf("invalid BCRYPT_COST %q", v)
		}
		cost = n
	}

	return &Config{
		DatabaseURL:   dsn,
		SessionSecret: secret,
		Port:          port,
		Env:           os.Getenv("ENV"),
		BcryptCost:    cost,
	}, nil
}

// Production reports whether the process runs with production hardening
// (secure cookies, gin release mode).
func (c *Config) Production() bool {
	return c.Env == "production"
}
