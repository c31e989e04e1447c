package definitions

import (
	"context"

	"github.com/goliatone/go-portal/internal/content"
	"github.com/goliatone/go-portal/internal/domain"
)

// Service exposes glossary reads.
type Service interface {
	GetCategories(ctx context.Context, q domain.ListQuery) (domain.Page[Category], error)
	GetCategoryByID(ctx context.Context, id string) (*Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*Category, error)

	GetDefinitions(ctx context.Context, q domain.ListQuery) (domain.Page[Definition], error)
	GetDefinitionByID(ctx context.Context, id string) (*Definition, error)
	GetDefinitionBySlug(ctx context.Context, slug string) (*Definition, error)
	// GetDefinitionsByCategory never fails for an empty or unknown category.
	GetDefinitionsByCategory(ctx context.Context, categoryID string, q domain.ListQuery) (domain.Page[Definition], error)
}

type service struct {
	categories  *content.Service[Category]
	definitions *content.Service[Definition]
}

// NewService binds the category and definition repositories to deps.Store.
func NewService(deps content.Dependencies) Service {
	return &service{
		categories:  content.Bind(deps, CategoriesDomain, "definition category", DecodeCategory),
		definitions: content.Bind(deps, DefinitionsDomain, "definition", DecodeDefinition),
	}
}

func (s *service) GetCategories(ctx context.Context, q domain.ListQuery) (domain.Page[Category], error) {
	return s.categories.List(ctx, q)
}

func (s *service) GetCategoryByID(ctx context.Context, id string) (*Category, error) {
	return s.categories.Get(ctx, id)
}

func (s *service) GetCategoryBySlug(ctx context.Context, slug string) (*Category, error) {
	return s.categories.GetBySlug(ctx, slug)
}

func (s *service) GetDefinitions(ctx context.Context, q domain.ListQuery) (domain.Page[Definition], error) {
	return s.definitions.List(ctx, q)
}

func (s *service) GetDefinitionByID(ctx context.Context, id string) (*Definition, error) {
	return s.definitions.Get(ctx, id)
}

func (s *service) GetDefinitionBySlug(ctx context.Context, slug string) (*Definition, error) {
	return s.definitions.GetBySlug(ctx, slug)
}

func (s *service) GetDefinitionsByCategory(ctx context.Context, categoryID string, q domain.ListQuery) (domain.Page[Definition], error) {
	return s.definitions.ListByParent(ctx, categoryID, q)
}
