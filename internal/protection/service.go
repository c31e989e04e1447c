package protection

import (
	"context"

	"github.com/goliatone/go-portal/internal/content"
	"github.com/goliatone/go-portal/internal/domain"
)

// Service exposes the personal-protection hierarchy.
type Service interface {
	GetCategories(ctx context.Context, q domain.ListQuery) (domain.Page[Category], error)
	GetCategoryByID(ctx context.Context, id string) (*Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*Category, error)

	GetSubCategories(ctx context.Context, categoryID string, q domain.ListQuery) (domain.Page[SubCategory], error)
	GetSubCategoryByID(ctx context.Context, id string) (*SubCategory, error)
	GetSubCategoryBySlug(ctx context.Context, slug string) (*SubCategory, error)

	GetControls(ctx context.Context, subCategoryID string, q domain.ListQuery) (domain.Page[Control], error)
	GetControlByID(ctx context.Context, id string) (*Control, error)
	GetControlBySlug(ctx context.Context, slug string) (*Control, error)

	GetControlSteps(ctx context.Context, controlID string, q domain.ListQuery) (domain.Page[ControlStep], error)
	ControlContext(ctx context.Context, controlID string) (*ControlContext, error)
}

type service struct {
	categories    *content.Service[Category]
	subCategories *content.Service[SubCategory]
	controls      *content.Service[Control]
	steps         *content.Service[ControlStep]
}

// NewService binds the personal-protection repositories to deps.Store.
func NewService(deps content.Dependencies) Service {
	return &service{
		categories:    content.Bind(deps, CategoriesDomain, "protection category", DecodeCategory),
		subCategories: content.Bind(deps, SubCategoriesDomain, "protection subcategory", DecodeSubCategory),
		controls:      content.Bind(deps, ControlsDomain, "protection control", DecodeControl),
		steps:         content.Bind(deps, StepsDomain, "protection control step", DecodeControlStep),
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

func (s *service) GetSubCategories(ctx context.Context, categoryID string, q domain.ListQuery) (domain.Page[SubCategory], error) {
	return s.subCategories.ListByParent(ctx, categoryID, q)
}

func (s *service) GetSubCategoryByID(ctx context.Context, id string) (*SubCategory, error) {
	return s.subCategories.Get(ctx, id)
}

func (s *service) GetSubCategoryBySlug(ctx context.Context, slug string) (*SubCategory, error) {
	return s.subCategories.GetBySlug(ctx, slug)
}

func (s *service) GetControls(ctx context.Context, subCategoryID string, q domain.ListQuery) (domain.Page[Control], error) {
	return s.controls.ListByParent(ctx, subCategoryID, q)
}

func (s *service) GetControlByID(ctx context.Context, id string) (*Control, error) {
	return s.controls.Get(ctx, id)
}

func (s *service) GetControlBySlug(ctx context.Context, slug string) (*Control, error) {
	return s.controls.GetBySlug(ctx, slug)
}

func (s *service) GetControlSteps(ctx context.Context, controlID string, q domain.ListQuery) (domain.Page[ControlStep], error) {
	return s.steps.ListByParent(ctx, controlID, q)
}

// ControlContext resolves the control (NotFound when missing) and its subcategory and
// category best-effort.
func (s *service) ControlContext(ctx context.Context, controlID string) (*ControlContext, error) {
	control, err := s.controls.Get(ctx, controlID)
	if err != nil {
		return nil, err
	}
	out := &ControlContext{Control: *control}

	out.SubCategory, err = s.subCategories.Find(ctx, control.SubCategoryID)
	if err != nil {
		return nil, err
	}
	if out.SubCategory != nil {
		if out.Category, err = s.categories.Find(ctx, out.SubCategory.CategoryID); err != nil {
			return nil, err
		}
	}
	return out, nil
}
