package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// ProcessConfig holds the process-level tunables consumed by cmd/spert
// (§4.14): default RNG seed, progress interval, log level, HTTP listen
// address.
type ProcessConfig struct {
	DefaultSeed      string
	ProgressInterval int
	LogLevel         string
	HTTPAddr         string
}

const (
	defaultProgressInterval = 1000
	defaultLogLevel         = "info"
	defaultHTTPAddr         = ":8080"
)

// LoadProcessConfig loads envPath via godotenv (missing file is not an
// error — environment variables alone are a valid configuration) and
// resolves ProcessConfig from the environment, validating as it goes.
func LoadProcessConfig(envPath string) (*ProcessConfig, error) {
	_ = godotenv.Load(envPath) // absence of a .env file is not fatal

	interval := defaultProgressInterval
	if raw, ok := os.LookupEnv("SPERT_PROGRESS_INTERVAL"); ok {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			return nil, &ValidationError{Path: "SPERT_PROGRESS_INTERVAL", Message: "must be a positive integer"}
		}
		interval = v
	}

	return &ProcessConfig{
		DefaultSeed:      getEnv("SPERT_DEFAULT_SEED", "spert-default"),
		ProgressInterval: interval,
		LogLevel:         getEnv("SPERT_LOG_LEVEL", defaultLogLevel),
		HTTPAddr:         getEnv("SPERT_HTTP_ADDR", defaultHTTPAddr),
	}, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
