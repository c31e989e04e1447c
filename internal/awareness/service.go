package awareness

import (
	"context"

	"github.com/goliatone/go-portal/internal/content"
	"github.com/goliatone/go-portal/internal/domain"
)

// Service exposes awareness material reads.
type Service interface {
	GetAwarenessItems(ctx context.Context, q domain.ListQuery) (domain.Page[Item], error)
	GetAwarenessItemByID(ctx context.Context, id string) (*Item, error)
	GetAwarenessItemBySlug(ctx context.Context, slug string) (*Item, error)
}

type service struct {
	items *content.Service[Item]
}

func NewService(deps content.Dependencies) Service {
	return &service{items: content.Bind(deps, Domain, "awareness item", Decode)}
}

func (s *service) GetAwarenessItems(ctx context.Context, q domain.ListQuery) (domain.Page[Item], error) {
	return s.items.List(ctx, q)
}

func (s *service) GetAwarenessItemByID(ctx context.Context, id string) (*Item, error) {
	return s.items.Get(ctx, id)
}

func (s *service) GetAwarenessItemBySlug(ctx context.Context, slug string) (*Item, error) {
	return s.items.GetBySlug(ctx, slug)
}
