package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultDatasetPath   = "data/pizza_sales.csv"
	DefaultSummaryRows   = 5
	DefaultRawSampleRows = 500
)

func init() {
	// Load env from .env
	godotenv.Load()
}

// DefaultDataset is the dataset used when a session is opened without an upload.
// Either a local path or a gs://bucket/object location.
//
// Set via env:
// - DEFAULT_DATASET=gs://pizza-data/A_year_of_pizza_sales.csv
func DefaultDataset() string {
	if v := strings.TrimSpace(os.Getenv("DEFAULT_DATASET")); v != "" {
		return v
	}
	return DefaultDatasetPath
}

func SummaryRowLimit() int {
	return positiveIntFromEnv("SUMMARY_ROWS", DefaultSummaryRows)
}

func RawSampleRowLimit() int {
	return positiveIntFromEnv("RAW_SAMPLE_ROWS", DefaultRawSampleRows)
}

// MaxUploadBytes caps a single dataset upload. Env: MAX_UPLOAD_MB (default 50).
func MaxUploadBytes() int64 {
	return int64(positiveIntFromEnv("MAX_UPLOAD_MB", 50)) << 20
}

func SessionCacheSize() int {
	return positiveIntFromEnv("SESSION_CACHE_SIZE", 128)
}

func SessionTTL() time.Duration {
	return time.Duration(positiveIntFromEnv("SESSION_TTL_MINUTES", 60)) * time.Minute
}

// ReportSlowMs is the threshold above which a dashboard run is logged. Env: REPORT_SLOW_MS (default 500ms).
func ReportSlowMs() int64 {
	return int64(positiveIntFromEnv("REPORT_SLOW_MS", 500))
}

func RateLimitEnabled() bool {
	return boolFromEnv("RATE_LIMIT_ENABLED")
}

func RateLimitMaxRequests() int64 {
	return int64(positiveIntFromEnv("RATE_LIMIT_MAX_REQUESTS", 600))
}

func RateLimitWindow() time.Duration {
	return time.Duration(positiveIntFromEnv("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second
}

func IsProduction() bool {
	return strings.EqualFold(strings.TrimSpace(os.Getenv("GO_ENV")), "production")
}

func intFromEnv(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func positiveIntFromEnv(key string, def int) int {
	n := intFromEnv(key, def)
	if n <= 0 {
		return def
	}
	return n
}

func boolFromEnv(key string) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	return v == "1" || v == "true" || v == "yes" || v == "y" || v == "on"
}
