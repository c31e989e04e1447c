package content

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-portal/internal/domain"
)

// MemoryStore is the in-process dataset store used for local runs and tests.
type MemoryStore struct {
	mu        sync.RWMutex
	records   map[string]map[string]*Record
	slugIndex map[string]map[string]string
}

var (
	_ Store  = (*MemoryStore)(nil)
	_ Seeder = (*MemoryStore)(nil)
)

// NewMemoryStore creates a store, optionally seeded with records.
func NewMemoryStore(records ...*Record) *MemoryStore {
	store := &MemoryStore{
		records:   make(map[string]map[string]*Record),
		slugIndex: make(map[string]map[string]string),
	}
	for _, rec := range records {
		store.put(rec)
	}
	return store
}

// Put inserts or replaces a record.
func (m *MemoryStore) Put(record *Record) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.put(record)
}

// Upsert satisfies Seeder.
func (m *MemoryStore) Upsert(_ context.Context, records ...*Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, rec := range records {
		m.put(rec)
	}
	return nil
}

func (m *MemoryStore) put(record *Record) {
	if record == nil || strings.TrimSpace(record.ID) == "" || strings.TrimSpace(record.Domain) == "" {
		return
	}
	copied := record.Clone()
	copied.Slug = NormalizeSlug(copied.Slug)

	byID, ok := m.records[copied.Domain]
	if !ok {
		byID = make(map[string]*Record)
		m.records[copied.Domain] = byID
	}
	slugs, ok := m.slugIndex[copied.Domain]
	if !ok {
		slugs = make(map[string]string)
		m.slugIndex[copied.Domain] = slugs
	}
	if previous, exists := byID[copied.ID]; exists && previous.Slug != "" {
		delete(slugs, previous.Slug)
	}
	byID[copied.ID] = copied
	if copied.Slug != "" {
		slugs[copied.Slug] = copied.ID
	}
}

// Get returns the record with id in domainKey.
func (m *MemoryStore) Get(_ context.Context, domainKey, id string) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.records[domainKey][id]
	if !ok {
		return nil, &domain.NotFoundError{Resource: domainKey, Key: id}
	}
	return rec.Clone(), nil
}

// GetBySlug returns the record with slug in domainKey.
func (m *MemoryStore) GetBySlug(_ context.Context, domainKey, slug string) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	key := NormalizeSlug(slug)
	id, ok := m.slugIndex[domainKey][key]
	if !ok {
		return nil, &domain.NotFoundError{Resource: domainKey, Key: slug}
	}
	return m.records[domainKey][id].Clone(), nil
}

// List returns one page of matching records ordered by position then id, and the
// total number of matches.
func (m *MemoryStore) List(_ context.Context, domainKey string, filter Filter) ([]*Record, int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	needle := filter.Query.Needle()
	parentID := strings.TrimSpace(filter.ParentID)

	matches := make([]*Record, 0)
	for _, rec := range m.records[domainKey] {
		if parentID != "" && rec.ParentID != parentID {
			continue
		}
		if !rec.Matches(needle) {
			continue
		}
		matches = append(matches, rec)
	}
	sortRecords(matches)

	total := len(matches)
	offset := filter.Query.Offset()
	if offset < 0 || offset >= total || filter.Query.PageSize <= 0 {
		return []*Record{}, total, nil
	}
	end := offset + filter.Query.PageSize
	if end > total || end < offset {
		end = total
	}
	out := make([]*Record, 0, end-offset)
	for _, rec := range matches[offset:end] {
		out = append(out, rec.Clone())
	}
	return out, total, nil
}

// Len reports the number of records held for domainKey.
func (m *MemoryStore) Len(domainKey string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records[domainKey])
}

func sortRecords(records []*Record) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Position != records[j].Position {
			return records[i].Position < records[j].Position
		}
		return records[i].ID < records[j].ID
	})
}
