package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/dgallion1/resumescore/internal/textproc"
	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// Auth; empty disables bearer-token checks.
	CompareAPIKey string

	// Comparison
	TopN             int
	StopwordLanguage string

	// Upload limits
	MaxUploadBytes int64

	// Rate limiting on /api/compare
	RateLimitPerSec float64
	RateLimitBurst  int

	// Stats
	StatsWindow time.Duration

	// PDF
	PDFFallbackPdftotext bool
}

// Load reads configuration from the environment, after merging a .env file
// from the working directory if one exists.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port: envOr("PORT", "8090"),

		CompareAPIKey: os.Getenv("COMPARE_API_KEY"),

		TopN:             envInt("TOP_N", 10),
		StopwordLanguage: envOr("STOPWORD_LANGUAGE", textproc.DefaultLanguage),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 10485760), // 10MB

		RateLimitPerSec: envFloat("RATE_LIMIT_PER_SEC", 20),
		RateLimitBurst:  envInt("RATE_LIMIT_BURST", 40),

		StatsWindow: envDuration("STATS_WINDOW", 1*time.Hour),

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", false),
	}

	if cfg.TopN <= 0 {
		cfg.TopN = 10
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 10485760
	}
	if cfg.RateLimitBurst <= 0 {
		cfg.RateLimitBurst = 1
	}
	if cfg.StatsWindow <= 0 {
		cfg.StatsWindow = 1 * time.Hour
	}

	return cfg
}

func (c Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if _, err := textproc.ForLanguage(c.StopwordLanguage); err != nil {
		return fmt.Errorf("STOPWORD_LANGUAGE: %w", err)
	}
	if c.RateLimitPerSec < 0 {
		return fmt.Errorf("RATE_LIMIT_PER_SEC must not be negative")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
