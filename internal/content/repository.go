package content

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-portal/internal/domain"
	"github.com/goliatone/go-portal/internal/logging"
	"github.com/goliatone/go-portal/pkg/interfaces"
)

// Decoder converts a stored record into a domain entity.
type Decoder[T any] func(*Record) (*T, error)

// Repository is the read contract every content domain implements.
//
// Missing single lookups return (nil, nil). Errors are reserved for transport or
// decode failures. List reads clamp the query and, unless strict errors are enabled,
// degrade to an empty envelope when the data source fails.
type Repository[T any] interface {
	GetByID(ctx context.Context, id string) (*T, error)
	GetBySlug(ctx context.Context, slug string) (*T, error)
	List(ctx context.Context, q domain.ListQuery) (domain.Page[T], error)
	ListByParent(ctx context.Context, parentID string, q domain.ListQuery) (domain.Page[T], error)
}

// RepositoryOption configures a store-backed repository.
type RepositoryOption func(*repositoryOptions)

type repositoryOptions struct {
	logger          interfaces.Logger
	strict          bool
	defaultPageSize int
	maxPageSize     int
}

// WithRepositoryLogger sets the logger used for lookups and degraded lists.
func WithRepositoryLogger(logger interfaces.Logger) RepositoryOption {
	return func(o *repositoryOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithStrictErrors makes List and ListByParent surface data source failures instead
// of returning an empty envelope.
func WithStrictErrors(strict bool) RepositoryOption {
	return func(o *repositoryOptions) {
		o.strict = strict
	}
}

// WithPageLimits overrides the default and maximum page sizes used when clamping.
func WithPageLimits(defaultPageSize, maxPageSize int) RepositoryOption {
	return func(o *repositoryOptions) {
		if defaultPageSize > 0 {
			o.defaultPageSize = defaultPageSize
		}
		if maxPageSize > 0 {
			o.maxPageSize = maxPageSize
		}
	}
}

type storeRepository[T any] struct {
	store     Store
	domainKey string
	decode    Decoder[T]
	opts      repositoryOptions
}

// NewRepository binds a Store to one content domain.
func NewRepository[T any](store Store, domainKey string, decode Decoder[T], opts ...RepositoryOption) Repository[T] {
	options := repositoryOptions{
		logger:          logging.NoOp(),
		defaultPageSize: domain.DefaultPageSize,
		maxPageSize:     domain.MaxPageSize,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}
	return &storeRepository[T]{
		store:     store,
		domainKey: domainKey,
		decode:    decode,
		opts:      options,
	}
}

func (r *storeRepository[T]) GetByID(ctx context.Context, id string) (*T, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, nil
	}
	rec, err := r.store.Get(ctx, r.domainKey, id)
	return r.single(ctx, "get_by_id", id, rec, err)
}

func (r *storeRepository[T]) GetBySlug(ctx context.Context, slug string) (*T, error) {
	key := NormalizeSlug(slug)
	if key == "" {
		return nil, nil
	}
	rec, err := r.store.GetBySlug(ctx, r.domainKey, key)
	return r.single(ctx, "get_by_slug", key, rec, err)
}

func (r *storeRepository[T]) List(ctx context.Context, q domain.ListQuery) (domain.Page[T], error) {
	return r.list(ctx, "list", Filter{Query: q})
}

func (r *storeRepository[T]) ListByParent(ctx context.Context, parentID string, q domain.ListQuery) (domain.Page[T], error) {
	parentID = strings.TrimSpace(parentID)
	if parentID == "" {
		clamped := q.Clamp(r.opts.defaultPageSize, r.opts.maxPageSize)
		return domain.EmptyPage[T](clamped), nil
	}
	return r.list(ctx, "list_by_parent", Filter{ParentID: parentID, Query: q})
}

func (r *storeRepository[T]) single(ctx context.Context, operation, key string, rec *Record, err error) (*T, error) {
	logger := r.opts.logger.WithContext(ctx)
	if err != nil {
		if domain.IsNotFound(err) {
			logger.Debug(r.domainKey+"."+operation+".miss", "key", key)
			return nil, nil
		}
		logger.Error(r.domainKey+"."+operation+".failed", "key", key, "error", err)
		return nil, domain.TransportFailure(err, fmt.Sprintf("%s lookup failed", r.domainKey))
	}
	if rec == nil {
		return nil, nil
	}
	entity, err := r.decode(rec)
	if err != nil {
		logger.Error(r.domainKey+"."+operation+".decode_failed", "key", key, "error", err)
		return nil, domain.TransportFailure(err, fmt.Sprintf("%s decode failed", r.domainKey))
	}
	logger.Debug(r.domainKey+"."+operation, "key", key)
	return entity, nil
}

func (r *storeRepository[T]) list(ctx context.Context, operation string, filter Filter) (domain.Page[T], error) {
	filter.Query = filter.Query.Clamp(r.opts.defaultPageSize, r.opts.maxPageSize)
	logger := r.opts.logger.WithContext(ctx)

	records, total, err := r.store.List(ctx, r.domainKey, filter)
	if err == nil {
		if len(records) > filter.Query.PageSize {
			logger.Warn(r.domainKey+"."+operation+".oversized_page",
				"page_size", filter.Query.PageSize,
				"items", len(records),
			)
			records = records[:filter.Query.PageSize]
		}
		if total < len(records) {
			total = len(records)
		}
		items := make([]T, 0, len(records))
		for _, rec := range records {
			entity, decodeErr := r.decode(rec)
			if decodeErr != nil {
				err = decodeErr
				break
			}
			if entity != nil {
				items = append(items, *entity)
			}
		}
		if err == nil {
			logger.Debug(r.domainKey+"."+operation,
				"parent_id", filter.ParentID,
				"page", filter.Query.Page,
				"items", len(items),
				"total", total,
			)
			return domain.NewPage(items, total, filter.Query), nil
		}
	}

	if r.opts.strict {
		logger.Error(r.domainKey+"."+operation+".failed", "error", err)
		return domain.EmptyPage[T](filter.Query), domain.TransportFailure(err, fmt.Sprintf("%s list failed", r.domainKey))
	}
	logger.Warn(r.domainKey+"."+operation+".degraded", "error", err, "parent_id", filter.ParentID)
	return domain.EmptyPage[T](filter.Query), nil
}
