package http

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"github.com/goliatone/go-portal/internal/di"
	"github.com/goliatone/go-portal/internal/domain"
	"github.com/goliatone/go-portal/internal/logging"
	"github.com/goliatone/go-portal/pkg/interfaces"
)

// API serves the content services over HTTP.
type API struct {
	endpoints map[string]endpoint
	logger    interfaces.Logger
	locale    domain.Locale
	pageSize  int
	timeout   time.Duration
}

// Option configures the API.
type Option func(*API)

// WithLoggerProvider routes request logs through provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(a *API) {
		a.logger = logging.HTTPLogger(provider)
	}
}

// WithDefaultLocale selects the locale of error messages when the request names none.
func WithDefaultLocale(locale domain.Locale) Option {
	return func(a *API) {
		if locale.Valid() {
			a.locale = locale
		}
	}
}

// WithPageSize sets the page size used when pageSize is omitted.
func WithPageSize(size int) Option {
	return func(a *API) {
		if size > 0 {
			a.pageSize = size
		}
	}
}

// WithRequestTimeout bounds every request. Zero disables the timeout.
func WithRequestTimeout(timeout time.Duration) Option {
	return func(a *API) {
		a.timeout = timeout
	}
}

// NewAPI builds the API over services.
func NewAPI(services di.Services, opts ...Option) *API {
	a := &API{
		endpoints: buildEndpoints(services),
		logger:    logging.NoOp(),
		locale:    domain.DefaultLocale,
		pageSize:  domain.DefaultPageSize,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}
	return a
}

// Routes returns the router with middleware and every route mounted.
func (a *API) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(a.requestLogger)
	r.Use(middleware.Recoverer)
	if a.timeout > 0 {
		r.Use(middleware.Timeout(a.timeout))
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, map[string]string{"status": "ok"})
	})
	r.Route("/api", func(r chi.Router) {
		r.Get("/", a.domains)
		r.Get("/{domain}", a.list)
		r.Get("/{domain}/slug/{slug}", a.bySlug)
		r.Get("/{domain}/{id}", a.get)
		r.Get("/{domain}/{id}/context", a.context)
	})
	return r
}

func (a *API) domains(w http.ResponseWriter, r *http.Request) {
	keys := make([]string, 0, len(a.endpoints))
	for key := range a.endpoints {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	render.JSON(w, r, map[string][]string{"domains": keys})
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ep, ok := a.endpoint(w, r)
	if !ok {
		return
	}
	if ep.list == nil {
		a.writeError(w, r, &domain.NotFoundError{Resource: chi.URLParam(r, "domain")})
		return
	}
	q, err := a.listQuery(r)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	parentID := strings.TrimSpace(r.URL.Query().Get("parentId"))
	resp, err := ep.list(r.Context(), parentID, q, requestedLocale(r))
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	render.JSON(w, r, resp)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	ep, ok := a.endpoint(w, r)
	if !ok {
		return
	}
	a.serveItem(w, r, ep.get, chi.URLParam(r, "id"))
}

func (a *API) bySlug(w http.ResponseWriter, r *http.Request) {
	ep, ok := a.endpoint(w, r)
	if !ok {
		return
	}
	a.serveItem(w, r, ep.bySlug, chi.URLParam(r, "slug"))
}

func (a *API) context(w http.ResponseWriter, r *http.Request) {
	ep, ok := a.endpoint(w, r)
	if !ok {
		return
	}
	a.serveItem(w, r, ep.context, chi.URLParam(r, "id"))
}

func (a *API) serveItem(w http.ResponseWriter, r *http.Request, fetch itemFunc, key string) {
	domainKey := chi.URLParam(r, "domain")
	if fetch == nil {
		a.writeError(w, r, &domain.NotFoundError{Resource: domainKey, Key: key})
		return
	}
	resp, err := fetch(r.Context(), key, requestedLocale(r))
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	render.JSON(w, r, resp)
}

func (a *API) endpoint(w http.ResponseWriter, r *http.Request) (endpoint, bool) {
	domainKey := chi.URLParam(r, "domain")
	ep, ok := a.endpoints[domainKey]
	if !ok {
		a.writeError(w, r, &domain.NotFoundError{Resource: "domain", Key: domainKey})
		return endpoint{}, false
	}
	return ep, true
}

func (a *API) listQuery(r *http.Request) (domain.ListQuery, error) {
	values := r.URL.Query()
	page, err := intParam(values.Get("page"), 1, "page")
	if err != nil {
		return domain.ListQuery{}, err
	}
	size, err := intParam(values.Get("pageSize"), a.pageSize, "pageSize")
	if err != nil {
		return domain.ListQuery{}, err
	}
	return domain.NewListQuery(page, size, values.Get("search")), nil
}

func intParam(raw string, fallback int, name string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.InvalidParameter(fmt.Errorf("%s must be an integer: %w", name, err))
	}
	return value, nil
}

// requestedLocale returns the locale named by the request, or nil when the caller
// asked for no display projection.
func requestedLocale(r *http.Request) *domain.Locale {
	raw := strings.TrimSpace(r.URL.Query().Get("locale"))
	if raw == "" {
		return nil
	}
	locale := domain.ParseLocale(raw, domain.DefaultLocale)
	return &locale
}
