package http

import (
	"context"
	"errors"

	"github.com/goliatone/go-portal/internal/awareness"
	"github.com/goliatone/go-portal/internal/definitions"
	"github.com/goliatone/go-portal/internal/di"
	"github.com/goliatone/go-portal/internal/domain"
	"github.com/goliatone/go-portal/internal/media"
	"github.com/goliatone/go-portal/internal/news"
	"github.com/goliatone/go-portal/internal/procedures"
	"github.com/goliatone/go-portal/internal/protection"
	"github.com/goliatone/go-portal/internal/references"
	"github.com/goliatone/go-portal/internal/standards"
)

type listFunc func(ctx context.Context, parentID string, q domain.ListQuery, locale *domain.Locale) (any, error)
type itemFunc func(ctx context.Context, key string, locale *domain.Locale) (any, error)

// endpoint binds one domain to its service calls. Nil funcs answer 404.
type endpoint struct {
	list    listFunc
	get     itemFunc
	bySlug  itemFunc
	context itemFunc
}

type listResponse[T any] struct {
	Data       []T               `json:"data"`
	Pagination domain.Pagination `json:"pagination"`
	Display    []domain.Display  `json:"display,omitempty"`
}

type itemResponse[T any] struct {
	Data    T               `json:"data"`
	Display *domain.Display `json:"display,omitempty"`
}

func listing[T domain.Localizable](
	all func(context.Context, domain.ListQuery) (domain.Page[T], error),
	byParent func(context.Context, string, domain.ListQuery) (domain.Page[T], error),
) listFunc {
	return func(ctx context.Context, parentID string, q domain.ListQuery, locale *domain.Locale) (any, error) {
		var (
			page domain.Page[T]
			err  error
		)
		switch {
		case parentID != "" && byParent == nil:
			return nil, domain.InvalidParameter(errors.New("parentId is not supported for this listing"))
		case parentID != "" && byParent != nil:
			page, err = byParent(ctx, parentID, q)
		case all != nil:
			page, err = all(ctx, q)
		default:
			page, err = byParent(ctx, parentID, q)
		}
		if err != nil {
			return nil, err
		}
		resp := listResponse[T]{Data: page.Data, Pagination: page.Pagination}
		if locale != nil {
			resp.Display = make([]domain.Display, 0, len(page.Data))
			for _, item := range page.Data {
				resp.Display = append(resp.Display, item.Localized(*locale))
			}
		}
		return resp, nil
	}
}

func item[T domain.Localizable](fetch func(context.Context, string) (*T, error)) itemFunc {
	if fetch == nil {
		return nil
	}
	return func(ctx context.Context, key string, locale *domain.Locale) (any, error) {
		entity, err := fetch(ctx, key)
		if err != nil {
			return nil, err
		}
		resp := itemResponse[*T]{Data: entity}
		if locale != nil {
			display := (*entity).Localized(*locale)
			resp.Display = &display
		}
		return resp, nil
	}
}

// breadcrumbs serves context lookups. The display projection lists the resolved
// ancestors from the root down to the entity itself.
func breadcrumbs[T any](fetch func(context.Context, string) (*T, error), trail func(*T) []domain.Localizable) itemFunc {
	return func(ctx context.Context, key string, locale *domain.Locale) (any, error) {
		value, err := fetch(ctx, key)
		if err != nil {
			return nil, err
		}
		resp := contextResponse[*T]{Data: value}
		if locale != nil {
			resp.Display = []domain.Display{}
			for _, node := range trail(value) {
				resp.Display = append(resp.Display, node.Localized(*locale))
			}
		}
		return resp, nil
	}
}

type contextResponse[T any] struct {
	Data    T                `json:"data"`
	Display []domain.Display `json:"display,omitempty"`
}

func appendIf[T domain.Localizable](trail []domain.Localizable, node *T) []domain.Localizable {
	if node == nil {
		return trail
	}
	return append(trail, *node)
}

func buildEndpoints(s di.Services) map[string]endpoint {
	endpoints := map[string]endpoint{}

	if s.News != nil {
		endpoints[news.Domain] = endpoint{
			list:   listing(s.News.GetNews, nil),
			get:    item(s.News.GetNewsByID),
			bySlug: item(s.News.GetNewsBySlug),
		}
	}
	if s.Media != nil {
		endpoints[media.LecturesDomain] = endpoint{
			list:   listing(s.Media.GetLectures, nil),
			get:    item(s.Media.GetLectureByID),
			bySlug: item(s.Media.GetLectureBySlug),
		}
		endpoints[media.PresentationsDomain] = endpoint{
			list:   listing(s.Media.GetPresentations, nil),
			get:    item(s.Media.GetPresentationByID),
			bySlug: item(s.Media.GetPresentationBySlug),
		}
	}
	if s.Definitions != nil {
		endpoints[definitions.CategoriesDomain] = endpoint{
			list:   listing(s.Definitions.GetCategories, nil),
			get:    item(s.Definitions.GetCategoryByID),
			bySlug: item(s.Definitions.GetCategoryBySlug),
		}
		endpoints[definitions.DefinitionsDomain] = endpoint{
			list:   listing(s.Definitions.GetDefinitions, s.Definitions.GetDefinitionsByCategory),
			get:    item(s.Definitions.GetDefinitionByID),
			bySlug: item(s.Definitions.GetDefinitionBySlug),
		}
	}
	if s.StandardCategories != nil {
		endpoints[standards.CategoriesDomain] = endpoint{
			list:   listing(s.StandardCategories.GetCategories, nil),
			get:    item(s.StandardCategories.GetCategoryByID),
			bySlug: item(s.StandardCategories.GetCategoryBySlug),
		}
	}
	if s.Standards != nil {
		endpoints[standards.StandardsDomain] = endpoint{
			list:   listing(s.Standards.GetStandards, s.Standards.GetStandardsByCategory),
			get:    item(s.Standards.GetStandardByID),
			bySlug: item(s.Standards.GetStandardBySlug),
		}
	}
	if s.StandardControls != nil {
		endpoints[standards.ControlsDomain] = endpoint{
			list:   listing(nil, s.StandardControls.GetControlsByStandard),
			get:    item(s.StandardControls.GetControlByID),
			bySlug: item(s.StandardControls.GetControlBySlug),
			context: breadcrumbs(s.StandardControls.ControlContext, func(c *standards.ControlContext) []domain.Localizable {
				trail := appendIf(nil, c.Category)
				trail = appendIf(trail, c.Standard)
				return append(trail, c.Control)
			}),
		}
	}
	if s.Procedures != nil {
		endpoints[procedures.ProceduresDomain] = endpoint{
			list:   listing(s.Procedures.GetProcedures, nil),
			get:    item(s.Procedures.GetProcedureByID),
			bySlug: item(s.Procedures.GetProcedureBySlug),
		}
		endpoints[procedures.ControlsDomain] = endpoint{
			list: listing(nil, s.Procedures.GetControlsByProcedure),
			get:  item(s.Procedures.GetControlByID),
		}
		endpoints[procedures.SafeguardsDomain] = endpoint{
			list:   listing(nil, s.Procedures.GetSafeguardsByControl),
			get:    item(s.Procedures.GetSafeguardByID),
			bySlug: item(s.Procedures.GetSafeguardBySlug),
			context: breadcrumbs(s.Procedures.SafeguardContext, func(c *procedures.SafeguardContext) []domain.Localizable {
				trail := appendIf(nil, c.Procedure)
				trail = appendIf(trail, c.Control)
				return append(trail, c.Safeguard)
			}),
		}
		endpoints[procedures.TechniquesDomain] = endpoint{
			list:   listing(nil, s.Procedures.GetTechniquesBySafeguard),
			get:    item(s.Procedures.GetTechniqueByID),
			bySlug: item(s.Procedures.GetTechniqueBySlug),
			context: breadcrumbs(s.Procedures.TechniqueContext, func(c *procedures.TechniqueContext) []domain.Localizable {
				trail := appendIf(nil, c.Procedure)
				trail = appendIf(trail, c.Control)
				trail = appendIf(trail, c.Safeguard)
				return append(trail, c.Technique)
			}),
		}
	}
	if s.Protection != nil {
		endpoints[protection.CategoriesDomain] = endpoint{
			list:   listing(s.Protection.GetCategories, nil),
			get:    item(s.Protection.GetCategoryByID),
			bySlug: item(s.Protection.GetCategoryBySlug),
		}
		endpoints[protection.SubCategoriesDomain] = endpoint{
			list:   listing(nil, s.Protection.GetSubCategories),
			get:    item(s.Protection.GetSubCategoryByID),
			bySlug: item(s.Protection.GetSubCategoryBySlug),
		}
		endpoints[protection.ControlsDomain] = endpoint{
			list:   listing(nil, s.Protection.GetControls),
			get:    item(s.Protection.GetControlByID),
			bySlug: item(s.Protection.GetControlBySlug),
			context: breadcrumbs(s.Protection.ControlContext, func(c *protection.ControlContext) []domain.Localizable {
				trail := appendIf(nil, c.Category)
				trail = appendIf(trail, c.SubCategory)
				return append(trail, c.Control)
			}),
		}
		endpoints[protection.StepsDomain] = endpoint{
			list: listing(nil, s.Protection.GetControlSteps),
		}
	}
	if s.References != nil {
		endpoints[references.Domain] = endpoint{
			list:   listing(s.References.GetReferences, nil),
			get:    item(s.References.GetReferenceByID),
			bySlug: item(s.References.GetReferenceBySlug),
		}
	}
	if s.Awareness != nil {
		endpoints[awareness.Domain] = endpoint{
			list:   listing(s.Awareness.GetAwarenessItems, nil),
			get:    item(s.Awareness.GetAwarenessItemByID),
			bySlug: item(s.Awareness.GetAwarenessItemBySlug),
		}
	}
	return endpoints
}
