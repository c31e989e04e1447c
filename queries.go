package portal

import (
	"time"

	"github.com/goliatone/go-portal/internal/domain"
	"github.com/goliatone/go-portal/internal/logging"
	"github.com/goliatone/go-portal/internal/query"
	"github.com/goliatone/go-portal/internal/viewmodel"
)

// Resource is a paginated-resource query bound to one service call.
type Resource[P, T any] = query.Resource[P, T]

// State is the observable snapshot of a Resource.
type State[T any] = query.State[T]

// QueryOption configures a Resource.
type QueryOption[T any] = query.Option[T]

// Search debounces a search term into the params of a Resource.
type Search[P, T any] = query.Search[P, T]

// DebounceOption configures the debouncer behind a Search.
type DebounceOption = query.DebounceOption

type (
	ListQuery   = domain.ListQuery
	ChildParams = viewmodel.ChildParams
	Locale      = domain.Locale
)

const (
	LocaleArabic  = domain.LocaleArabic
	LocaleEnglish = domain.LocaleEnglish
)

// NewListQuery builds list params.
func NewListQuery(page, pageSize int, search string) ListQuery {
	return domain.NewListQuery(page, pageSize, search)
}

// NewChildParams builds params for a child listing starting at page one.
func NewChildParams(parentID string, pageSize int) ChildParams {
	return viewmodel.NewChildParams(parentID, pageSize)
}

// WithLocale selects the language of a Resource's error messages.
func WithLocale[T any](locale Locale) QueryOption[T] {
	return query.WithLocale[T](locale)
}

// QueryOptions returns the module defaults for a view-model resource: the
// portal.query logger and the configured default locale. opts are applied after the
// defaults.
func QueryOptions[T any](m *Module, opts ...QueryOption[T]) []QueryOption[T] {
	locale := domain.ParseLocale(m.container.Config.DefaultLocale, domain.DefaultLocale)
	defaults := []QueryOption[T]{
		query.WithLogger[T](logging.QueryLogger(m.container.LoggerProvider())),
		query.WithLocale[T](locale),
	}
	return append(defaults, opts...)
}

// ListSearch attaches a debounced search box to a top-level list query.
func ListSearch[T any](r *Resource[ListQuery, []T], delay time.Duration, opts ...DebounceOption) *Search[ListQuery, []T] {
	return viewmodel.ListSearch(r, delay, opts...)
}

// ChildSearch attaches a debounced search box to a child list query.
func ChildSearch[T any](r *Resource[ChildParams, []T], delay time.Duration, opts ...DebounceOption) *Search[ChildParams, []T] {
	return viewmodel.ChildSearch(r, delay, opts...)
}

// View-model query constructors, one per screen of the portal.
var (
	NewsList               = viewmodel.NewsList
	NewsDetail             = viewmodel.NewsDetail
	LectureList            = viewmodel.LectureList
	LectureDetail          = viewmodel.LectureDetail
	PresentationList       = viewmodel.PresentationList
	PresentationDetail     = viewmodel.PresentationDetail
	DefinitionCategories   = viewmodel.DefinitionCategories
	DefinitionList         = viewmodel.DefinitionList
	DefinitionsByCategory  = viewmodel.DefinitionsByCategory
	DefinitionDetail       = viewmodel.DefinitionDetail
	StandardCategories     = viewmodel.StandardCategories
	StandardsByCategory    = viewmodel.StandardsByCategory
	StandardDetail         = viewmodel.StandardDetail
	StandardControls       = viewmodel.StandardControls
	StandardControlContext = viewmodel.StandardControlContext
	ProcedureList          = viewmodel.ProcedureList
	ProcedureControls      = viewmodel.ProcedureControls
	Safeguards             = viewmodel.Safeguards
	Techniques             = viewmodel.Techniques
	SafeguardContext       = viewmodel.SafeguardContext
	TechniqueContext       = viewmodel.TechniqueContext
	ProtectCategories      = viewmodel.ProtectCategories
	ProtectSubCategories   = viewmodel.ProtectSubCategories
	ProtectControls        = viewmodel.ProtectControls
	ControlSteps           = viewmodel.ControlSteps
	ProtectControlContext  = viewmodel.ProtectControlContext
	ReferenceList          = viewmodel.ReferenceList
	ReferenceDetail        = viewmodel.ReferenceDetail
	AwarenessList          = viewmodel.AwarenessList
	AwarenessDetail        = viewmodel.AwarenessDetail
)

// SearchDebounce returns the configured debounce window for search boxes.
func (m *Module) SearchDebounce() time.Duration {
	return m.container.Config.Query.Debounce
}

// SearchOptions returns the debounce options backed by the module's query clock.
func (m *Module) SearchOptions() []DebounceOption {
	return []DebounceOption{query.WithDebounceClock(m.container.QueryClock())}
}
