// Package config loads server tuning from the environment. A .env file in
// the working directory is merged first when present, which suits how MCP
// clients launch the binary: no shell, no flags, environment only.
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries the environment-driven server settings. Zero configuration
// is valid: every field defaults to the tuning detection ships with.
type Config struct {
	// LogLevel is "debug" or "info".
	LogLevel string

	// LowThreshold and HighThreshold seed the edge detector's hysteresis.
	LowThreshold  int
	HighThreshold int

	// MinArea is the smallest contour area, in working-image pixels, still
	// considered a document candidate.
	MinArea float64

	// MaxDimension caps the longest side of the detection working image.
	MaxDimension int

	// Workers sizes the worker pool for parallel scans; 0 means one per
	// available processor.
	Workers int
}

// Default returns the built-in tuning with no environment applied.
func Default() *Config {
	return &Config{
		LogLevel:      "info",
		LowThreshold:  75,
		HighThreshold: 200,
		MinArea:       1000,
		MaxDimension:  800,
	}
}

// Load reads configuration from the environment, merging a .env file from
// the working directory when one exists. Malformed values are logged and
// replaced with their defaults rather than rejected; a bad variable must not
// keep the server from starting.
func Load() *Config {
	_ = godotenv.Load()

	cfg := Default()

	if v := os.Getenv("DOCSCAN_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	cfg.LowThreshold = intEnv("DOCSCAN_LOW_THRESHOLD", cfg.LowThreshold)
	cfg.HighThreshold = intEnv("DOCSCAN_HIGH_THRESHOLD", cfg.HighThreshold)
	cfg.MinArea = floatEnv("DOCSCAN_MIN_AREA", cfg.MinArea)
	cfg.MaxDimension = intEnv("DOCSCAN_MAX_DIMENSION", cfg.MaxDimension)
	cfg.Workers = intEnv("DOCSCAN_WORKERS", cfg.Workers)
	return cfg
}

func intEnv(name string, def int) int {
	v := os.Getenv(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("config: ignoring %s=%q: %v", name, v, err)
		return def
	}
	return n
}

func floatEnv(name string, def float64) float64 {
	v := os.Getenv(name)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("config: ignoring %s=%q: %v", name, v, err)
		return def
	}
	return f
}
