package content

import (
	"context"
	"strings"

	"github.com/goliatone/go-portal/internal/domain"
	"github.com/goliatone/go-slug"
)

// Store is the data source every repository reads from. Implementations return a
// *domain.NotFoundError for missing records; any other error is a transport failure.
type Store interface {
	Get(ctx context.Context, domainKey, id string) (*Record, error)
	GetBySlug(ctx context.Context, domainKey, slug string) (*Record, error)
	List(ctx context.Context, domainKey string, filter Filter) ([]*Record, int, error)
}

// Seeder is implemented by stores that accept bulk loads from the dataset importer.
type Seeder interface {
	Upsert(ctx context.Context, records ...*Record) error
}

// Filter narrows a List call. The query is expected to be clamped already.
type Filter struct {
	ParentID string
	Query    domain.ListQuery
}

// NormalizeSlug applies the slug rules used for lookups and imports. Values the
// slug normalizer cannot represent (e.g. Arabic slugs) fall back to a trimmed,
// lower-cased form so they stay addressable.
func NormalizeSlug(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}
	if normalized, err := slug.Normalize(trimmed); err == nil && normalized != "" && slug.IsValid(normalized) {
		if isASCII(trimmed) {
			return normalized
		}
	}
	return strings.ToLower(strings.Join(strings.Fields(trimmed), "-"))
}

func isASCII(value string) bool {
	for i := 0; i < len(value); i++ {
		if value[i] >= 0x80 {
			return false
		}
	}
	return true
}
