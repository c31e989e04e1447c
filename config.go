package portal

import "github.com/goliatone/go-portal/internal/runtimeconfig"

var (
	ErrDefaultLocaleInvalid    = runtimeconfig.ErrDefaultLocaleInvalid
	ErrLocaleUnsupported       = runtimeconfig.ErrLocaleUnsupported
	ErrSourceProviderUnknown   = runtimeconfig.ErrSourceProviderUnknown
	ErrStorageDriverUnknown    = runtimeconfig.ErrStorageDriverUnknown
	ErrStorageDSNRequired      = runtimeconfig.ErrStorageDSNRequired
	ErrUpstreamBaseURLRequired = runtimeconfig.ErrUpstreamBaseURLRequired
	ErrUpstreamBaseURLInvalid  = runtimeconfig.ErrUpstreamBaseURLInvalid
	ErrCacheTTLInvalid         = runtimeconfig.ErrCacheTTLInvalid
	ErrPageSizeInvalid         = runtimeconfig.ErrPageSizeInvalid
	ErrLoggingProviderRequired = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown  = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
)

const (
	SourceMemory = runtimeconfig.SourceMemory
	SourceBun    = runtimeconfig.SourceBun
	SourceHTTP   = runtimeconfig.SourceHTTP
)

type (
	Config           = runtimeconfig.Config
	SourceConfig     = runtimeconfig.SourceConfig
	StorageConfig    = runtimeconfig.StorageConfig
	UpstreamConfig   = runtimeconfig.UpstreamConfig
	CacheConfig      = runtimeconfig.CacheConfig
	PaginationConfig = runtimeconfig.PaginationConfig
	QueryConfig      = runtimeconfig.QueryConfig
	ServerConfig     = runtimeconfig.ServerConfig
	Features         = runtimeconfig.Features
	LoggingConfig    = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// LoadConfig returns the defaults overlaid with PORTAL_* environment variables.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	if err := runtimeconfig.FromEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
