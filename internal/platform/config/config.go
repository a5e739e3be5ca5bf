package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the full process configuration.
type Config struct {
	Server     Server
	Gemini     GeminiConfig
	Submission SubmissionConfig
	Extraction ExtractionConfig
	Redis      RedisConfig
	Log        LogConfig
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr string
}

// GeminiConfig selects the model used to read document images.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// SubmissionConfig points at the spreadsheet endpoint receiving guest data.
type SubmissionConfig struct {
	Endpoint string
	Timeout  time.Duration
}

// ExtractionConfig bounds extraction calls and caching of their results.
type ExtractionConfig struct {
	Timeout  time.Duration
	CacheTTL time.Duration
}

// RedisConfig configures the optional extraction cache. An empty URL disables it.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string
	Format string
}

const (
	DefaultAddr              = ":8080"
	DefaultGeminiModel       = "gemini-1.5-flash"
	DefaultExtractionTimeout = 60 * time.Second
	DefaultSubmissionTimeout = 30 * time.Second
	DefaultCacheTTL          = 5 * time.Minute
)

// ErrMissingRequired is returned by Validate when a required key is unset.
var ErrMissingRequired = errors.New("missing required configuration")

// FromEnv builds a Config from environment variables so main stays lean.
// Malformed numbers and durations are reported; unset keys take defaults.
func FromEnv() (Config, error) {
	var p parser
	cfg := Config{
		Server: Server{
			Addr: stringOr("CHECKIN_ADDR", DefaultAddr),
		},
		Gemini: GeminiConfig{
			APIKey: os.Getenv("GEMINI_API_KEY"),
			Model:  stringOr("GEMINI_MODEL", DefaultGeminiModel),
		},
		Submission: SubmissionConfig{
			Endpoint: os.Getenv("SHEET_ENDPOINT"),
			Timeout:  p.duration("SUBMISSION_TIMEOUT", DefaultSubmissionTimeout),
		},
		Extraction: ExtractionConfig{
			Timeout:  p.duration("EXTRACTION_TIMEOUT", DefaultExtractionTimeout),
			CacheTTL: p.duration("EXTRACTION_CACHE_TTL", DefaultCacheTTL),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     p.integer("REDIS_POOL_SIZE", 10),
			MinIdleConns: p.integer("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  p.duration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  p.duration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: p.duration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Log: LogConfig{
			Level:  stringOr("LOG_LEVEL", "info"),
			Format: stringOr("LOG_FORMAT", "json"),
		},
	}
	if err := errors.Join(p.errs...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every required key that is still empty.
func (c Config) Validate() error {
	var missing []string
	if c.Gemini.APIKey == "" {
		missing = append(missing, "GEMINI_API_KEY")
	}
	if c.Submission.Endpoint == "" {
		missing = append(missing, "SHEET_ENDPOINT")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingRequired, strings.Join(missing, ", "))
	}
	return nil
}

// CacheEnabled reports whether extraction results should be cached in Redis.
func (c Config) CacheEnabled() bool {
	return c.Redis.URL != "" && c.Extraction.CacheTTL > 0
}

func stringOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// parser collects conversion errors so all bad keys are reported at once.
type parser struct {
	errs []error
}

func (p *parser) duration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return d
}

func (p *parser) integer(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return n
}
