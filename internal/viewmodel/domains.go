package viewmodel

import (
	"github.com/goliatone/go-portal/internal/awareness"
	"github.com/goliatone/go-portal/internal/definitions"
	"github.com/goliatone/go-portal/internal/domain"
	"github.com/goliatone/go-portal/internal/media"
	"github.com/goliatone/go-portal/internal/news"
	"github.com/goliatone/go-portal/internal/procedures"
	"github.com/goliatone/go-portal/internal/protection"
	"github.com/goliatone/go-portal/internal/query"
	"github.com/goliatone/go-portal/internal/references"
	"github.com/goliatone/go-portal/internal/standards"
)

func NewsList(svc news.Service, opts ...query.Option[[]news.News]) *query.Resource[domain.ListQuery, []news.News] {
	return list(svc.GetNews, opts)
}

// NewsDetail accepts either a slug or an id.
func NewsDetail(svc news.Service, opts ...query.Option[*news.News]) *query.Resource[string, *news.News] {
	return detail(svc.ResolveNews, opts)
}

func LectureList(svc media.Service, opts ...query.Option[[]media.Lecture]) *query.Resource[domain.ListQuery, []media.Lecture] {
	return list(svc.GetLectures, opts)
}

func LectureDetail(svc media.Service, opts ...query.Option[*media.Lecture]) *query.Resource[string, *media.Lecture] {
	return detail(svc.GetLectureBySlug, opts)
}

func PresentationList(svc media.Service, opts ...query.Option[[]media.Presentation]) *query.Resource[domain.ListQuery, []media.Presentation] {
	return list(svc.GetPresentations, opts)
}

func PresentationDetail(svc media.Service, opts ...query.Option[*media.Presentation]) *query.Resource[string, *media.Presentation] {
	return detail(svc.GetPresentationBySlug, opts)
}

func DefinitionCategories(svc definitions.Service, opts ...query.Option[[]definitions.Category]) *query.Resource[domain.ListQuery, []definitions.Category] {
	return list(svc.GetCategories, opts)
}

func DefinitionList(svc definitions.Service, opts ...query.Option[[]definitions.Definition]) *query.Resource[domain.ListQuery, []definitions.Definition] {
	return list(svc.GetDefinitions, opts)
}

// DefinitionsByCategory lists the definitions of ChildParams.ParentID.
func DefinitionsByCategory(svc definitions.Service, opts ...query.Option[[]definitions.Definition]) *query.Resource[ChildParams, []definitions.Definition] {
	return children(svc.GetDefinitionsByCategory, opts)
}

func DefinitionDetail(svc definitions.Service, opts ...query.Option[*definitions.Definition]) *query.Resource[string, *definitions.Definition] {
	return detail(svc.GetDefinitionBySlug, opts)
}

func StandardCategories(svc standards.CategoryService, opts ...query.Option[[]standards.Category]) *query.Resource[domain.ListQuery, []standards.Category] {
	return list(svc.GetCategories, opts)
}

func StandardsByCategory(svc standards.Service, opts ...query.Option[[]standards.Standard]) *query.Resource[ChildParams, []standards.Standard] {
	return children(svc.GetStandardsByCategory, opts)
}

func StandardDetail(svc standards.Service, opts ...query.Option[*standards.Standard]) *query.Resource[string, *standards.Standard] {
	return detail(svc.GetStandardBySlug, opts)
}

func StandardControls(svc standards.ControlService, opts ...query.Option[[]standards.Control]) *query.Resource[ChildParams, []standards.Control] {
	return children(svc.GetControlsByStandard, opts)
}

// StandardControlContext resolves a control with its standard and category.
func StandardControlContext(svc standards.ControlService, opts ...query.Option[*standards.ControlContext]) *query.Resource[string, *standards.ControlContext] {
	return detail(svc.ControlContext, opts)
}

func ProcedureList(svc procedures.Service, opts ...query.Option[[]procedures.Procedure]) *query.Resource[domain.ListQuery, []procedures.Procedure] {
	return list(svc.GetProcedures, opts)
}

func ProcedureControls(svc procedures.Service, opts ...query.Option[[]procedures.Control]) *query.Resource[ChildParams, []procedures.Control] {
	return children(svc.GetControlsByProcedure, opts)
}

func Safeguards(svc procedures.Service, opts ...query.Option[[]procedures.Safeguard]) *query.Resource[ChildParams, []procedures.Safeguard] {
	return children(svc.GetSafeguardsByControl, opts)
}

func Techniques(svc procedures.Service, opts ...query.Option[[]procedures.Technique]) *query.Resource[ChildParams, []procedures.Technique] {
	return children(svc.GetTechniquesBySafeguard, opts)
}

// SafeguardContext is keyed by safeguard id. Missing ancestors leave their
// breadcrumbs nil without failing the query.
func SafeguardContext(svc procedures.Service, opts ...query.Option[*procedures.SafeguardContext]) *query.Resource[string, *procedures.SafeguardContext] {
	return detail(svc.SafeguardContext, opts)
}

func TechniqueContext(svc procedures.Service, opts ...query.Option[*procedures.TechniqueContext]) *query.Resource[string, *procedures.TechniqueContext] {
	return detail(svc.TechniqueContext, opts)
}

func ProtectCategories(svc protection.Service, opts ...query.Option[[]protection.Category]) *query.Resource[domain.ListQuery, []protection.Category] {
	return list(svc.GetCategories, opts)
}

func ProtectSubCategories(svc protection.Service, opts ...query.Option[[]protection.SubCategory]) *query.Resource[ChildParams, []protection.SubCategory] {
	return children(svc.GetSubCategories, opts)
}

func ProtectControls(svc protection.Service, opts ...query.Option[[]protection.Control]) *query.Resource[ChildParams, []protection.Control] {
	return children(svc.GetControls, opts)
}

// ControlSteps lists the ordered steps of a protection control.
func ControlSteps(svc protection.Service, opts ...query.Option[[]protection.ControlStep]) *query.Resource[ChildParams, []protection.ControlStep] {
	return children(svc.GetControlSteps, opts)
}

func ProtectControlContext(svc protection.Service, opts ...query.Option[*protection.ControlContext]) *query.Resource[string, *protection.ControlContext] {
	return detail(svc.ControlContext, opts)
}

func ReferenceList(svc references.Service, opts ...query.Option[[]references.Reference]) *query.Resource[domain.ListQuery, []references.Reference] {
	return list(svc.GetReferences, opts)
}

func ReferenceDetail(svc references.Service, opts ...query.Option[*references.Reference]) *query.Resource[string, *references.Reference] {
	return detail(svc.GetReferenceBySlug, opts)
}

func AwarenessList(svc awareness.Service, opts ...query.Option[[]awareness.Item]) *query.Resource[domain.ListQuery, []awareness.Item] {
	return list(svc.GetAwarenessItems, opts)
}

func AwarenessDetail(svc awareness.Service, opts ...query.Option[*awareness.Item]) *query.Resource[string, *awareness.Item] {
	return detail(svc.GetAwarenessItemBySlug, opts)
}
