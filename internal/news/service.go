package news

import (
	"context"

	"github.com/goliatone/go-portal/internal/content"
	"github.com/goliatone/go-portal/internal/domain"
)

// Service exposes news reads.
type Service interface {
	GetNews(ctx context.Context, q domain.ListQuery) (domain.Page[News], error)
	GetNewsByID(ctx context.Context, id string) (*News, error)
	GetNewsBySlug(ctx context.Context, slug string) (*News, error)
	ResolveNews(ctx context.Context, idOrSlug string) (*News, error)
}

type service struct {
	items *content.Service[News]
}

// NewService binds the news repository to deps.Store.
func NewService(deps content.Dependencies) Service {
	return &service{items: content.Bind(deps, Domain, "news", Decode)}
}

func (s *service) GetNews(ctx context.Context, q domain.ListQuery) (domain.Page[News], error) {
	return s.items.List(ctx, q)
}

func (s *service) GetNewsByID(ctx context.Context, id string) (*News, error) {
	return s.items.Get(ctx, id)
}

func (s *service) GetNewsBySlug(ctx context.Context, slug string) (*News, error) {
	return s.items.GetBySlug(ctx, slug)
}

func (s *service) ResolveNews(ctx context.Context, idOrSlug string) (*News, error) {
	return s.items.Resolve(ctx, idOrSlug)
}
