package di

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"strings"
	"time"

	repocache "github.com/goliatone/go-repository-cache/cache"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/goliatone/go-portal/internal/awareness"
	"github.com/goliatone/go-portal/internal/content"
	"github.com/goliatone/go-portal/internal/definitions"
	"github.com/goliatone/go-portal/internal/domain"
	"github.com/goliatone/go-portal/internal/logging"
	"github.com/goliatone/go-portal/internal/logging/console"
	"github.com/goliatone/go-portal/internal/logging/gologger"
	"github.com/goliatone/go-portal/internal/markdown"
	"github.com/goliatone/go-portal/internal/media"
	"github.com/goliatone/go-portal/internal/news"
	"github.com/goliatone/go-portal/internal/procedures"
	"github.com/goliatone/go-portal/internal/protection"
	"github.com/goliatone/go-portal/internal/query"
	"github.com/goliatone/go-portal/internal/references"
	"github.com/goliatone/go-portal/internal/runtimeconfig"
	"github.com/goliatone/go-portal/internal/standards"
	"github.com/goliatone/go-portal/internal/upstream"
	"github.com/goliatone/go-portal/pkg/interfaces"
)

var ErrStoreNotSeedable = errors.New("di: configured store does not accept dataset imports")

// Services bundles one service per content domain. The standards hierarchy is also
// exposed through narrower aliases for callers that only need one level.
type Services struct {
	News               news.Service
	Media              media.Service
	Definitions        definitions.Service
	Standards          standards.Service
	StandardCategories standards.CategoryService
	StandardControls   standards.ControlService
	Procedures         procedures.Service
	Protection         protection.Service
	References         references.Service
	Awareness          awareness.Service
}

// Container wires the content store and every domain service. It is built once and
// is read-only afterwards.
type Container struct {
	Config runtimeconfig.Config

	store          content.Store
	bunDB          *bun.DB
	ownsDB         bool
	httpClient     *http.Client
	loggerProvider interfaces.LoggerProvider
	datasetFS      fs.FS
	clock          func() time.Time
	queryClock     query.Clock

	cacheService  repocache.CacheService
	keySerializer repocache.KeySerializer

	services Services
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithStore overrides the store selected by configuration.
func WithStore(store content.Store) Option {
	return func(c *Container) {
		c.store = store
	}
}

// WithBunDB supplies the database used by the bun source. The container does not
// close databases it did not open.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithHTTPClient sets the client used by the http source.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Container) {
		c.httpClient = client
	}
}

func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithCache overrides the repository cache used by the bun source.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithClock overrides the time source used for store timestamps and console logs.
func WithClock(clock func() time.Time) Option {
	return func(c *Container) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithQueryClock overrides the timer source of view-model search debouncing.
func WithQueryClock(clock query.Clock) Option {
	return func(c *Container) {
		if clock != nil {
			c.queryClock = clock
		}
	}
}

// WithDatasetFS loads the memory source from filesystem instead of Source.DatasetDir.
func WithDatasetFS(filesystem fs.FS) Option {
	return func(c *Container) {
		c.datasetFS = filesystem
	}
}

// NewContainer validates cfg and builds the container.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{
		Config:     cfg,
		clock:      time.Now,
		queryClock: query.SystemClock(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if err := c.configureLogging(); err != nil {
		return nil, err
	}

	ctx := context.Background()
	if c.store == nil {
		store, err := c.buildStore(ctx)
		if err != nil {
			_ = c.Close()
			return nil, err
		}
		c.store = store
	}

	c.configureServices()

	logging.StoreLogger(c.loggerProvider).Info("portal.container.ready",
		"source", strings.ToLower(strings.TrimSpace(cfg.Source.Provider)),
		"strict_errors", cfg.Source.StrictErrors,
	)
	return c, nil
}

func (c *Container) configureLogging() error {
	if c.loggerProvider != nil || !c.Config.Features.Logger {
		return nil
	}
	cfg := c.Config.Logging
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
			Focus:     cfg.Focus,
		})
		if err != nil {
			return fmt.Errorf("di: configure logging: %w", err)
		}
		c.loggerProvider = provider
	default:
		opts := console.Options{TimeFunc: c.clock}
		if level, ok := console.ParseLevel(cfg.Level); ok {
			opts.MinLevel = &level
		}
		c.loggerProvider = console.NewProvider(opts)
	}
	return nil
}

func (c *Container) buildStore(ctx context.Context) (content.Store, error) {
	switch strings.ToLower(strings.TrimSpace(c.Config.Source.Provider)) {
	case runtimeconfig.SourceBun:
		return c.buildBunStore(ctx)
	case runtimeconfig.SourceHTTP:
		opts := []upstream.Option{upstream.WithLogger(logging.UpstreamLogger(c.loggerProvider))}
		if c.httpClient != nil {
			opts = append(opts, upstream.WithHTTPClient(c.httpClient))
		}
		client, err := upstream.New(upstream.Config{
			BaseURL: c.Config.Upstream.BaseURL,
			Timeout: c.Config.Upstream.Timeout,
		}, opts...)
		if err != nil {
			return nil, fmt.Errorf("di: configure upstream: %w", err)
		}
		return client, nil
	default:
		store := content.NewMemoryStore()
		if err := c.loadDataset(ctx, store); err != nil {
			return nil, err
		}
		return store, nil
	}
}

func (c *Container) buildBunStore(ctx context.Context) (content.Store, error) {
	if c.bunDB == nil {
		db, err := openBunDB(c.Config.Storage)
		if err != nil {
			return nil, err
		}
		c.bunDB = db
		c.ownsDB = true
	}

	c.configureCacheDefaults()
	store := content.NewBunStoreWithCache(c.bunDB, c.cacheService, c.keySerializer).WithClock(c.clock)
	if c.Config.Storage.Migrate {
		if err := store.Migrate(ctx); err != nil {
			return nil, fmt.Errorf("di: migrate: %w", err)
		}
	}
	if err := c.loadDataset(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}

func (c *Container) configureCacheDefaults() {
	if !c.Config.Cache.Enabled {
		return
	}

	if c.cacheService == nil {
		cfg := repocache.DefaultConfig()
		if c.Config.Cache.DefaultTTL > 0 {
			cfg.TTL = c.Config.Cache.DefaultTTL
		}
		service, err := repocache.NewCacheService(cfg)
		if err == nil {
			c.cacheService = service
		}
	}

	if c.cacheService != nil && c.keySerializer == nil {
		c.keySerializer = repocache.NewDefaultKeySerializer()
	}
}

func (c *Container) loadDataset(ctx context.Context, seeder content.Seeder) error {
	filesystem := c.datasetFS
	if filesystem == nil {
		dir := strings.TrimSpace(c.Config.Source.DatasetDir)
		if dir == "" {
			return nil
		}
		filesystem = os.DirFS(dir)
	}
	loader := markdown.NewLoader(filesystem, markdown.LoaderConfig{
		DefaultLocale: domain.ParseLocale(c.Config.DefaultLocale, domain.DefaultLocale),
		Logger:        logging.DatasetLogger(c.loggerProvider),
	})
	records, err := loader.Load(ctx, ".")
	if err != nil {
		return fmt.Errorf("di: load dataset: %w", err)
	}
	if err := seeder.Upsert(ctx, records...); err != nil {
		return fmt.Errorf("di: seed dataset: %w", err)
	}
	return nil
}

func (c *Container) configureServices() {
	deps := content.Dependencies{
		Store:  c.store,
		Logger: c.loggerProvider,
		Options: []content.RepositoryOption{
			content.WithStrictErrors(c.Config.Source.StrictErrors),
			content.WithPageLimits(c.Config.Pagination.DefaultPageSize, c.Config.Pagination.MaxPageSize),
		},
	}

	standardsSvc := standards.NewService(deps)
	c.services = Services{
		News:               news.NewService(deps),
		Media:              media.NewService(deps),
		Definitions:        definitions.NewService(deps),
		Standards:          standardsSvc,
		StandardCategories: standardsSvc,
		StandardControls:   standardsSvc,
		Procedures:         procedures.NewService(deps),
		Protection:         protection.NewService(deps),
		References:         references.NewService(deps),
		Awareness:          awareness.NewService(deps),
	}
}

// Services returns the domain services. The struct is a copy; the services are shared.
func (c *Container) Services() Services {
	return c.services
}

// Store exposes the configured data source.
func (c *Container) Store() content.Store {
	return c.store
}

// Seeder returns the store as a Seeder when it accepts imports.
func (c *Container) Seeder() (content.Seeder, error) {
	seeder, ok := c.store.(content.Seeder)
	if !ok {
		return nil, ErrStoreNotSeedable
	}
	return seeder, nil
}

// LoggerProvider returns the configured provider, which may be nil when logging is
// disabled.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

func (c *Container) Clock() func() time.Time {
	return c.clock
}

// QueryClock returns the timer source for search debouncing.
func (c *Container) QueryClock() query.Clock {
	return c.queryClock
}

// Close releases the database opened by the container.
func (c *Container) Close() error {
	if c.bunDB != nil && c.ownsDB {
		return c.bunDB.Close()
	}
	return nil
}

func openBunDB(cfg runtimeconfig.StorageConfig) (*bun.DB, error) {
	dsn := strings.TrimSpace(cfg.DSN)
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case runtimeconfig.DriverPostgres:
		sqlDB, err := sql.Open("pgx", dsn)
		if err != nil {
			return nil, fmt.Errorf("di: open postgres: %w", err)
		}
		return bun.NewDB(sqlDB, pgdialect.New()), nil
	default:
		sqlDB, err := sql.Open("sqlite3", dsn)
		if err != nil {
			return nil, fmt.Errorf("di: open sqlite: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
		return bun.NewDB(sqlDB, sqlitedialect.New()), nil
	}
}
