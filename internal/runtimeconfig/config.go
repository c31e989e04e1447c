package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/ilyakaznacheev/cleanenv"
)

var ErrDefaultLocaleInvalid = errors.New("portal config: default locale must be ar or en")
var ErrLocaleUnsupported = errors.New("portal config: locale is not supported")

// ErrSourceProviderUnknown rejects content sources other than memory, bun and http.
var ErrSourceProviderUnknown = errors.New("portal config: source provider is invalid")

// ErrStorageDriverUnknown rejects SQL drivers other than sqlite and postgres.
var ErrStorageDriverUnknown = errors.New("portal config: storage driver is invalid")
var ErrStorageDSNRequired = errors.New("portal config: storage dsn is required for the bun source")
var ErrUpstreamBaseURLRequired = errors.New("portal config: upstream base url is required for the http source")
var ErrUpstreamBaseURLInvalid = errors.New("portal config: upstream base url is invalid")
var ErrUpstreamTimeoutInvalid = errors.New("portal config: upstream timeout must be zero or positive")
var ErrCacheTTLInvalid = errors.New("portal config: cache ttl must be positive when cache is enabled")
var ErrPageSizeInvalid = errors.New("portal config: pagination sizes must be positive and default must not exceed max")
var ErrDebounceInvalid = errors.New("portal config: query debounce must be zero or positive")
var ErrServerAddrRequired = errors.New("portal config: server address is required")
var ErrLoggingProviderRequired = errors.New("portal config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("portal config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("portal config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("portal config: logging format is invalid")

const (
	SourceMemory = "memory"
	SourceBun    = "bun"
	SourceHTTP   = "http"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config aggregates the runtime settings of the portal. Every field can be supplied
// through PORTAL_* environment variables with FromEnv.
type Config struct {
	DefaultLocale string   `env:"PORTAL_DEFAULT_LOCALE"`
	Locales       []string `env:"PORTAL_LOCALES" env-separator:","`
	Source        SourceConfig
	Storage       StorageConfig
	Upstream      UpstreamConfig
	Cache         CacheConfig
	Pagination    PaginationConfig
	Query         QueryConfig
	Server        ServerConfig
	Features      Features
	Logging       LoggingConfig
}

// SourceConfig selects where content records come from.
type SourceConfig struct {
	Provider string `env:"PORTAL_SOURCE_PROVIDER"`
	// DatasetDir holds Markdown files loaded into the memory source at startup.
	DatasetDir   string `env:"PORTAL_DATASET_DIR"`
	StrictErrors bool   `env:"PORTAL_STRICT_ERRORS"`
}

// StorageConfig configures the SQL database used by the bun source.
type StorageConfig struct {
	Driver string `env:"PORTAL_STORAGE_DRIVER"`
	DSN    string `env:"PORTAL_STORAGE_DSN"`
	// Migrate creates the records table on startup.
	Migrate bool `env:"PORTAL_STORAGE_MIGRATE"`
}

type UpstreamConfig struct {
	BaseURL string        `env:"PORTAL_UPSTREAM_BASE_URL"`
	Timeout time.Duration `env:"PORTAL_UPSTREAM_TIMEOUT"`
}

// CacheConfig captures cache behaviour toggles for the bun source.
type CacheConfig struct {
	Enabled    bool          `env:"PORTAL_CACHE_ENABLED"`
	DefaultTTL time.Duration `env:"PORTAL_CACHE_TTL"`
}

type PaginationConfig struct {
	DefaultPageSize int `env:"PORTAL_PAGE_SIZE"`
	MaxPageSize     int `env:"PORTAL_MAX_PAGE_SIZE"`
}

// QueryConfig tunes view-model queries.
type QueryConfig struct {
	Debounce time.Duration `env:"PORTAL_QUERY_DEBOUNCE"`
}

type ServerConfig struct {
	Addr           string        `env:"PORTAL_SERVER_ADDR"`
	RequestTimeout time.Duration `env:"PORTAL_SERVER_REQUEST_TIMEOUT"`
}

// Features toggles optional functionality.
type Features struct {
	Logger bool `env:"PORTAL_FEATURE_LOGGER"`
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string   `env:"PORTAL_LOG_PROVIDER"`
	Level     string   `env:"PORTAL_LOG_LEVEL"`
	Format    string   `env:"PORTAL_LOG_FORMAT"`
	AddSource bool     `env:"PORTAL_LOG_ADD_SOURCE"`
	Focus     []string `env:"PORTAL_LOG_FOCUS" env-separator:","`
}

// DefaultConfig returns defaults for a local portal backed by the memory source.
func DefaultConfig() Config {
	return Config{
		DefaultLocale: "ar",
		Locales:       []string{"ar", "en"},
		Source: SourceConfig{
			Provider: SourceMemory,
		},
		Storage: StorageConfig{
			Driver:  DriverSQLite,
			Migrate: true,
		},
		Upstream: UpstreamConfig{
			Timeout: 10 * time.Second,
		},
		Cache: CacheConfig{
			Enabled:    false,
			DefaultTTL: time.Minute,
		},
		Pagination: PaginationConfig{
			DefaultPageSize: 10,
			MaxPageSize:     100,
		},
		Query: QueryConfig{
			Debounce: 300 * time.Millisecond,
		},
		Server: ServerConfig{
			Addr:           ":8080",
			RequestTimeout: 15 * time.Second,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
	}
}

// FromEnv overlays PORTAL_* environment variables on cfg. Unset variables keep the
// current values.
func FromEnv(cfg *Config) error {
	if cfg == nil {
		return errors.New("portal config: nil config")
	}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return fmt.Errorf("portal config: read env: %w", err)
	}
	return nil
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if err := validation.Validate(strings.ToLower(strings.TrimSpace(cfg.DefaultLocale)),
		validation.Required, validation.In("ar", "en")); err != nil {
		return fmt.Errorf("%w: %q", ErrDefaultLocaleInvalid, cfg.DefaultLocale)
	}
	for _, code := range cfg.Locales {
		if err := validation.Validate(strings.ToLower(strings.TrimSpace(code)), validation.In("ar", "en")); err != nil {
			return fmt.Errorf("%w: %s", ErrLocaleUnsupported, code)
		}
	}

	switch normalize(cfg.Source.Provider) {
	case SourceMemory:
	case SourceBun:
		switch normalize(cfg.Storage.Driver) {
		case DriverSQLite, DriverPostgres:
		default:
			return fmt.Errorf("%w: %s", ErrStorageDriverUnknown, cfg.Storage.Driver)
		}
		if strings.TrimSpace(cfg.Storage.DSN) == "" {
			return ErrStorageDSNRequired
		}
	case SourceHTTP:
		base := strings.TrimSpace(cfg.Upstream.BaseURL)
		if base == "" {
			return ErrUpstreamBaseURLRequired
		}
		if err := validation.Validate(base, is.URL); err != nil {
			return fmt.Errorf("%w: %s", ErrUpstreamBaseURLInvalid, base)
		}
	default:
		return fmt.Errorf("%w: %s", ErrSourceProviderUnknown, cfg.Source.Provider)
	}
	if cfg.Upstream.Timeout < 0 {
		return ErrUpstreamTimeoutInvalid
	}

	if cfg.Cache.Enabled && cfg.Cache.DefaultTTL <= 0 {
		return ErrCacheTTLInvalid
	}
	if p := cfg.Pagination; p.DefaultPageSize <= 0 || p.MaxPageSize <= 0 || p.DefaultPageSize > p.MaxPageSize {
		return fmt.Errorf("%w: default=%d max=%d", ErrPageSizeInvalid, p.DefaultPageSize, p.MaxPageSize)
	}
	if cfg.Query.Debounce < 0 {
		return ErrDebounceInvalid
	}
	if strings.TrimSpace(cfg.Server.Addr) == "" {
		return ErrServerAddrRequired
	}

	if cfg.Features.Logger {
		provider := normalize(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch normalize(level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch normalize(format) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
