package main

import (
	"time"

	"choreboard/client/dashboard"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "CHORECTL"

type Config struct {
	BaseURL  string        `envconfig:"BASE_URL"  default:"http://localhost:8080"`
	Email    string        `envconfig:"EMAIL"`
	Password string        `envconfig:"PASSWORD"`
	Token    string        `envconfig:"TOKEN"`
	LogLevel string        `envconfig:"LOG_LEVEL" default:"warn"`
	Timeout  time.Duration `envconfig:"TIMEOUT"   default:"10s"`
	Retry    struct {
		MaxAttempts uint64        `envconfig:"MAX_ATTEMPTS" default:"1"`
		Backoff     time.Duration `envconfig:"BACKOFF"      default:"200ms"`
	} `envconfig:"RETRY"`
}

func (c Config) retryPolicy() dashboard.RetryPolicy {
	return dashboard.RetryPolicy{MaxAttempts: c.Retry.MaxAttempts, Backoff: c.Retry.Backoff}
}

// loadConfig reads CHORECTL_* variables, after an optional .env in the working directory.
func loadConfig() (Config, error) {
	var cfg Config

	_ = godotenv.Load()

	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}
