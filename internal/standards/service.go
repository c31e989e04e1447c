package standards

import (
	"context"

	"github.com/goliatone/go-portal/internal/content"
	"github.com/goliatone/go-portal/internal/domain"
)

// CategoryService exposes standard category reads.
type CategoryService interface {
	GetCategories(ctx context.Context, q domain.ListQuery) (domain.Page[Category], error)
	GetCategoryByID(ctx context.Context, id string) (*Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*Category, error)
}

// ControlService exposes standard control reads.
type ControlService interface {
	GetControlsByStandard(ctx context.Context, standardID string, q domain.ListQuery) (domain.Page[Control], error)
	GetControlByID(ctx context.Context, id string) (*Control, error)
	GetControlBySlug(ctx context.Context, slug string) (*Control, error)
	ControlContext(ctx context.Context, controlID string) (*ControlContext, error)
}

// Service exposes the whole standards hierarchy.
type Service interface {
	CategoryService
	ControlService

	GetStandards(ctx context.Context, q domain.ListQuery) (domain.Page[Standard], error)
	GetStandardsByCategory(ctx context.Context, categoryID string, q domain.ListQuery) (domain.Page[Standard], error)
	GetStandardByID(ctx context.Context, id string) (*Standard, error)
	GetStandardBySlug(ctx context.Context, slug string) (*Standard, error)
}

type service struct {
	categories *content.Service[Category]
	standards  *content.Service[Standard]
	controls   *content.Service[Control]
}

// NewService binds the standards repositories to deps.Store.
func NewService(deps content.Dependencies) Service {
	return &service{
		categories: content.Bind(deps, CategoriesDomain, "standard category", DecodeCategory),
		standards:  content.Bind(deps, StandardsDomain, "standard", DecodeStandard),
		controls:   content.Bind(deps, ControlsDomain, "standard control", DecodeControl),
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

func (s *service) GetStandards(ctx context.Context, q domain.ListQuery) (domain.Page[Standard], error) {
	return s.standards.List(ctx, q)
}

func (s *service) GetStandardsByCategory(ctx context.Context, categoryID string, q domain.ListQuery) (domain.Page[Standard], error) {
	return s.standards.ListByParent(ctx, categoryID, q)
}

func (s *service) GetStandardByID(ctx context.Context, id string) (*Standard, error) {
	return s.standards.Get(ctx, id)
}

func (s *service) GetStandardBySlug(ctx context.Context, slug string) (*Standard, error) {
	return s.standards.GetBySlug(ctx, slug)
}

func (s *service) GetControlsByStandard(ctx context.Context, standardID string, q domain.ListQuery) (domain.Page[Control], error) {
	return s.controls.ListByParent(ctx, standardID, q)
}

func (s *service) GetControlByID(ctx context.Context, id string) (*Control, error) {
	return s.controls.Get(ctx, id)
}

func (s *service) GetControlBySlug(ctx context.Context, slug string) (*Control, error) {
	return s.controls.GetBySlug(ctx, slug)
}

// ControlContext resolves the control (NotFound when missing) and then its standard
// and category on a best-effort basis.
func (s *service) ControlContext(ctx context.Context, controlID string) (*ControlContext, error) {
	control, err := s.controls.Get(ctx, controlID)
	if err != nil {
		return nil, err
	}
	out := &ControlContext{Control: *control}

	out.Standard, err = s.standards.Find(ctx, control.StandardID)
	if err != nil {
		return nil, err
	}
	if out.Standard != nil {
		out.Category, err = s.categories.Find(ctx, out.Standard.CategoryID)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
