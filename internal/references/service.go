package references

import (
	"context"

	"github.com/goliatone/go-portal/internal/content"
	"github.com/goliatone/go-portal/internal/domain"
)

type Service interface {
	GetReferences(ctx context.Context, q domain.ListQuery) (domain.Page[Reference], error)
	GetReferenceByID(ctx context.Context, id string) (*Reference, error)
	GetReferenceBySlug(ctx context.Context, slug string) (*Reference, error)
}

type service struct {
	items *content.Service[Reference]
}

func NewService(deps content.Dependencies) Service {
	return &service{items: content.Bind(deps, Domain, "reference", Decode)}
}

func (s *service) GetReferences(ctx context.Context, q domain.ListQuery) (domain.Page[Reference], error) {
	return s.items.List(ctx, q)
}

func (s *service) GetReferenceByID(ctx context.Context, id string) (*Reference, error) {
	return s.items.Get(ctx, id)
}

func (s *service) GetReferenceBySlug(ctx context.Context, slug string) (*Reference, error) {
	return s.items.GetBySlug(ctx, slug)
}
