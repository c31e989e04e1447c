package content

import (
	"context"
	"errors"
	"strings"

	"github.com/goliatone/go-portal/internal/domain"
)

var (
	ErrIDRequired     = errors.New("content: id required")
	ErrSlugRequired   = errors.New("content: slug required")
	ErrParentRequired = errors.New("content: parent id required")
)

// Service wraps one repository and applies the domain policy shared by every content
// type: missing entities become *domain.NotFoundError and list queries are validated.
type Service[T any] struct {
	repo     Repository[T]
	resource string
}

// NewService constructs a Service. resource names the entity in NotFound errors.
func NewService[T any](repo Repository[T], resource string) *Service[T] {
	return &Service[T]{repo: repo, resource: resource}
}

// Repository exposes the wrapped repository for callers that need the nil-for-missing
// shape directly.
func (s *Service[T]) Repository() Repository[T] {
	return s.repo
}

// Get returns the entity with id or a NotFoundError.
func (s *Service[T]) Get(ctx context.Context, id string) (*T, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, domain.InvalidParameter(ErrIDRequired)
	}
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, &domain.NotFoundError{Resource: s.resource, Key: id}
	}
	return entity, nil
}

// GetBySlug returns the entity with slug or a NotFoundError.
func (s *Service[T]) GetBySlug(ctx context.Context, slug string) (*T, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, domain.InvalidParameter(ErrSlugRequired)
	}
	entity, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, &domain.NotFoundError{Resource: s.resource, Key: slug}
	}
	return entity, nil
}

// Resolve accepts either a slug or an id. The slug is tried first.
func (s *Service[T]) Resolve(ctx context.Context, idOrSlug string) (*T, error) {
	key := strings.TrimSpace(idOrSlug)
	if key == "" {
		return nil, domain.InvalidParameter(ErrIDRequired)
	}
	entity, err := s.repo.GetBySlug(ctx, key)
	if err != nil {
		return nil, err
	}
	if entity != nil {
		return entity, nil
	}
	entity, err = s.repo.GetByID(ctx, key)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, &domain.NotFoundError{Resource: s.resource, Key: key}
	}
	return entity, nil
}

// Find is the best-effort lookup used for breadcrumb ancestors: a missing or empty
// id yields (nil, nil).
func (s *Service[T]) Find(ctx context.Context, id string) (*T, error) {
	if strings.TrimSpace(id) == "" {
		return nil, nil
	}
	return s.repo.GetByID(ctx, id)
}

// List validates q and returns one page of entities.
func (s *Service[T]) List(ctx context.Context, q domain.ListQuery) (domain.Page[T], error) {
	if err := q.Validate(); err != nil {
		return domain.EmptyPage[T](q), err
	}
	return s.repo.List(ctx, q)
}

// ListByParent validates q and returns one page of the children of parentID. An
// unknown parent yields an empty envelope.
func (s *Service[T]) ListByParent(ctx context.Context, parentID string, q domain.ListQuery) (domain.Page[T], error) {
	if strings.TrimSpace(parentID) == "" {
		return domain.EmptyPage[T](q), domain.InvalidParameter(ErrParentRequired)
	}
	if err := q.Validate(); err != nil {
		return domain.EmptyPage[T](q), err
	}
	return s.repo.ListByParent(ctx, parentID, q)
}
