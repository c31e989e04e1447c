package content

import (
	"context"
	"fmt"
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-portal/internal/domain"
	"github.com/goliatone/go-portal/internal/identity"
)

// recordModel is the SQL row backing a Record. Every domain shares one table; the
// primary key is derived from (domain, external id) and lookup_key holds
// "domain/slug" so slug reads go through the repository identifier path.
type recordModel struct {
	bun.BaseModel `bun:"table:content_records,alias:cr"`

	ID            uuid.UUID      `bun:",pk,type:uuid"`
	Domain        string         `bun:"domain,notnull"`
	ExternalID    string         `bun:"external_id,notnull"`
	Slug          string         `bun:"slug"`
	LookupKey     string         `bun:"lookup_key,notnull,unique"`
	ParentID      *uuid.UUID     `bun:"parent_id,type:uuid"`
	ParentRef     string         `bun:"parent_ref"`
	NameAr        string         `bun:"name_ar"`
	NameEn        string         `bun:"name_en"`
	DescriptionAr string         `bun:"description_ar"`
	DescriptionEn string         `bun:"description_en"`
	Position      int            `bun:"position,notnull,default:0"`
	PublishedAt   *time.Time     `bun:"published_at,nullzero"`
	Attributes    map[string]any `bun:"attributes,type:jsonb"`
	CreatedAt     time.Time      `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt     time.Time      `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// NewRecordRepository builds the go-repository-bun repository for content records.
func NewRecordRepository(db *bun.DB) repository.Repository[*recordModel] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*recordModel]{
		NewRecord: func() *recordModel { return &recordModel{} },
		GetID: func(m *recordModel) uuid.UUID {
			return m.ID
		},
		SetID: func(m *recordModel, id uuid.UUID) {
			m.ID = id
		},
		GetIdentifier: func() string {
			return "lookup_key"
		},
		GetIdentifierValue: func(m *recordModel) string {
			return m.LookupKey
		},
	})
}

// BunStore persists records in a SQL database through bun. Point reads go through
// go-repository-bun (optionally cached); list reads are built directly so search and
// pagination stay in SQL.
type BunStore struct {
	db    *bun.DB
	repo  repository.Repository[*recordModel]
	cache cache.CacheService
	now   func() time.Time
}

// recordCachePrefix is the key prefix repositorycache derives for recordModel.
const recordCachePrefix = "record_model" + cache.KeySeparator

var (
	_ Store  = (*BunStore)(nil)
	_ Seeder = (*BunStore)(nil)
)

// NewBunStore constructs an uncached store.
func NewBunStore(db *bun.DB) *BunStore {
	return NewBunStoreWithCache(db, nil, nil)
}

// NewBunStoreWithCache constructs a store whose point reads are cached when both the
// cache service and key serializer are supplied.
func NewBunStoreWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunStore {
	base := NewRecordRepository(db)
	store := &BunStore{
		db:   db,
		repo: wrapWithCache(base, cacheService, keySerializer),
		now:  time.Now,
	}
	if cacheService != nil && keySerializer != nil {
		store.cache = cacheService
	}
	return store
}

// WithClock overrides the timestamp source used for created_at and updated_at.
func (s *BunStore) WithClock(now func() time.Time) *BunStore {
	if now != nil {
		s.now = now
	}
	return s
}

// Migrate creates the records table and its indexes when missing.
func (s *BunStore) Migrate(ctx context.Context) error {
	if _, err := s.db.NewCreateTable().Model((*recordModel)(nil)).IfNotExists().Exec(ctx); err != nil {
		return fmt.Errorf("content store: create table: %w", err)
	}
	indexes := []struct {
		name    string
		columns []string
	}{
		{name: "idx_content_records_domain_parent", columns: []string{"domain", "parent_ref"}},
		{name: "idx_content_records_domain_position", columns: []string{"domain", "position"}},
	}
	for _, idx := range indexes {
		if _, err := s.db.NewCreateIndex().
			Model((*recordModel)(nil)).
			Index(idx.name).
			Column(idx.columns...).
			IfNotExists().
			Exec(ctx); err != nil {
			return fmt.Errorf("content store: create index %s: %w", idx.name, err)
		}
	}
	return nil
}

// Get resolves a record by id. Identifiers are mapped through identity.RecordUUID,
// which keys rows by domain and exact id.
func (s *BunStore) Get(ctx context.Context, domainKey, id string) (*Record, error) {
	uid := identity.RecordUUID(domainKey, id)
	if uid == uuid.Nil {
		return nil, &domain.NotFoundError{Resource: domainKey, Key: id}
	}
	model, err := s.repo.GetByID(ctx, uid.String())
	if err != nil {
		return nil, mapRepositoryError(err, domainKey, id)
	}
	if model.Domain != domainKey {
		return nil, &domain.NotFoundError{Resource: domainKey, Key: id}
	}
	return model.toRecord(), nil
}

// GetBySlug resolves a record by its domain-scoped slug.
func (s *BunStore) GetBySlug(ctx context.Context, domainKey, slug string) (*Record, error) {
	key := NormalizeSlug(slug)
	if key == "" {
		return nil, &domain.NotFoundError{Resource: domainKey, Key: slug}
	}
	model, err := s.repo.GetByIdentifier(ctx, lookupKey(domainKey, key))
	if err != nil {
		return nil, mapRepositoryError(err, domainKey, slug)
	}
	return model.toRecord(), nil
}

// List returns one page of matching records and the total match count.
func (s *BunStore) List(ctx context.Context, domainKey string, filter Filter) ([]*Record, int, error) {
	var models []*recordModel
	q := s.db.NewSelect().
		Model(&models).
		Where("?TableAlias.domain = ?", domainKey)

	if parent := strings.TrimSpace(filter.ParentID); parent != "" {
		q = q.Where("?TableAlias.parent_ref = ?", parent)
	}
	if needle := filter.Query.Needle(); needle != "" {
		pattern := "%" + escapeLike(needle) + "%"
		q = q.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where(`LOWER(?TableAlias.name_ar) LIKE ? ESCAPE '\'`, pattern).
				WhereOr(`LOWER(?TableAlias.name_en) LIKE ? ESCAPE '\'`, pattern).
				WhereOr(`LOWER(?TableAlias.description_ar) LIKE ? ESCAPE '\'`, pattern).
				WhereOr(`LOWER(?TableAlias.description_en) LIKE ? ESCAPE '\'`, pattern)
		})
	}

	q = q.OrderExpr("?TableAlias.position ASC").
		OrderExpr("?TableAlias.external_id ASC").
		Limit(filter.Query.PageSize).
		Offset(filter.Query.Offset())

	total, err := q.ScanAndCount(ctx)
	if err != nil {
		return nil, 0, err
	}
	out := make([]*Record, 0, len(models))
	for _, model := range models {
		out = append(out, model.toRecord())
	}
	return out, total, nil
}

// Upsert writes records, replacing existing rows with the same id. The external parent
// reference is kept verbatim for filtering; parent_id carries its UUID in the parent's
// domain when the record names one, otherwise the child's own domain is assumed.
func (s *BunStore) Upsert(ctx context.Context, records ...*Record) error {
	if len(records) == 0 {
		return nil
	}
	now := s.now().UTC()
	models := make([]*recordModel, 0, len(records))
	for _, rec := range records {
		if rec == nil {
			continue
		}
		model := newRecordModel(rec, now)
		if model.ID == uuid.Nil {
			return fmt.Errorf("content store: record in %q has no id", rec.Domain)
		}
		models = append(models, model)
	}
	if len(models) == 0 {
		return nil
	}
	_, err := s.db.NewInsert().
		Model(&models).
		On("CONFLICT (id) DO UPDATE").
		Set("domain = EXCLUDED.domain").
		Set("external_id = EXCLUDED.external_id").
		Set("slug = EXCLUDED.slug").
		Set("lookup_key = EXCLUDED.lookup_key").
		Set("parent_id = EXCLUDED.parent_id").
		Set("parent_ref = EXCLUDED.parent_ref").
		Set("name_ar = EXCLUDED.name_ar").
		Set("name_en = EXCLUDED.name_en").
		Set("description_ar = EXCLUDED.description_ar").
		Set("description_en = EXCLUDED.description_en").
		Set("position = EXCLUDED.position").
		Set("published_at = EXCLUDED.published_at").
		Set("attributes = EXCLUDED.attributes").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("content store: upsert: %w", err)
	}
	return s.invalidateCache(ctx)
}

// invalidateCache drops cached point reads after writes that bypass the cached
// repository.
func (s *BunStore) invalidateCache(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	if err := s.cache.DeleteByPrefix(ctx, recordCachePrefix); err != nil {
		return fmt.Errorf("content store: invalidate cache: %w", err)
	}
	return nil
}

func newRecordModel(rec *Record, now time.Time) *recordModel {
	slugKey := NormalizeSlug(rec.Slug)
	externalID := strings.TrimSpace(rec.ID)
	key := slugKey
	if key == "" {
		key = "#" + externalID
	}
	model := &recordModel{
		ID:            identity.RecordUUID(rec.Domain, externalID),
		Domain:        rec.Domain,
		ExternalID:    externalID,
		Slug:          slugKey,
		LookupKey:     lookupKey(rec.Domain, key),
		NameAr:        rec.Name.Ar,
		NameEn:        rec.Name.En,
		DescriptionAr: rec.Description.Ar,
		DescriptionEn: rec.Description.En,
		Position:      rec.Position,
		PublishedAt:   rec.PublishedAt,
		Attributes:    cloneMap(rec.Attributes),
		CreatedAt:     rec.CreatedAt,
		UpdatedAt:     now,
	}
	if model.CreatedAt.IsZero() {
		model.CreatedAt = now
	}
	if parent := strings.TrimSpace(rec.ParentID); parent != "" {
		parentDomain := rec.String(ParentDomainAttribute)
		if parentDomain == "" {
			parentDomain = rec.Domain
		}
		parentID := identity.RecordUUID(parentDomain, parent)
		model.ParentID = &parentID
		model.ParentRef = parent
	}
	return model
}

func (m *recordModel) toRecord() *Record {
	if m == nil {
		return nil
	}
	rec := &Record{
		Entity: domain.Entity{
			ID:          m.ExternalID,
			Slug:        m.Slug,
			Name:        domain.Text{Ar: m.NameAr, En: m.NameEn},
			Description: domain.Text{Ar: m.DescriptionAr, En: m.DescriptionEn},
		},
		Domain:      m.Domain,
		ParentID:    m.ParentRef,
		Position:    m.Position,
		PublishedAt: m.PublishedAt,
		Attributes:  cloneMap(m.Attributes),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if rec.ID == "" {
		rec.ID = m.ID.String()
	}
	return rec
}

// ParentDomainAttribute names the attribute carrying the parent's domain key. The
// dataset importer sets it so SQL stores can map parent references.
const ParentDomainAttribute = "parent_domain"

func lookupKey(domainKey, key string) string {
	return domainKey + "/" + key
}

func escapeLike(value string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(value)
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &domain.NotFoundError{
			Resource: resource,
			Key:      key,
		}
	}
	return fmt.Errorf("%s store error: %w", resource, err)
}

func wrapWithCache[T any](base repository.Repository[T], cacheService cache.CacheService, keySerializer cache.KeySerializer) repository.Repository[T] {
	if cacheService == nil || keySerializer == nil {
		return base
	}
	return repositorycache.New(base, cacheService, keySerializer)
}
