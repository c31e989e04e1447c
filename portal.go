package portal

import (
	"context"
	"net/http"

	"github.com/goliatone/go-portal/internal/awareness"
	datasetcmd "github.com/goliatone/go-portal/internal/commands/dataset"
	"github.com/goliatone/go-portal/internal/definitions"
	"github.com/goliatone/go-portal/internal/di"
	"github.com/goliatone/go-portal/internal/domain"
	porthttp "github.com/goliatone/go-portal/internal/http"
	"github.com/goliatone/go-portal/internal/logging"
	"github.com/goliatone/go-portal/internal/media"
	"github.com/goliatone/go-portal/internal/news"
	"github.com/goliatone/go-portal/internal/procedures"
	"github.com/goliatone/go-portal/internal/protection"
	"github.com/goliatone/go-portal/internal/references"
	"github.com/goliatone/go-portal/internal/standards"
)

// NewsItem is one news article.
type NewsItem = news.News

// NewsService exports the news service contract for consumers of the portal package.
type NewsService = news.Service

// MediaService exports the lectures and presentations contract.
type MediaService = media.Service

// DefinitionService exports the glossary contract.
type DefinitionService = definitions.Service

// StandardService exports the standards contract.
type StandardService = standards.Service

// ProcedureService exports the procedures hierarchy contract.
type ProcedureService = procedures.Service

// ProtectionService exports the protection hierarchy contract.
type ProtectionService = protection.Service

type ReferenceService = references.Service

type AwarenessService = awareness.Service

// Services groups every domain service.
type Services = di.Services

// ImportDatasetCommand loads a Markdown dataset into a seedable store.
type ImportDatasetCommand = datasetcmd.ImportDatasetCommand

// ImportResult summarises a dataset import.
type ImportResult = datasetcmd.ImportResult

// Module represents the top level portal runtime facade.
type Module struct {
	container *di.Container
}

// New constructs a portal module using the provided configuration and optional DI
// overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

func (m *Module) Services() Services {
	return m.container.Services()
}

func (m *Module) News() NewsService {
	return m.container.Services().News
}

func (m *Module) Media() MediaService {
	return m.container.Services().Media
}

func (m *Module) Definitions() DefinitionService {
	return m.container.Services().Definitions
}

func (m *Module) Standards() StandardService {
	return m.container.Services().Standards
}

func (m *Module) Procedures() ProcedureService {
	return m.container.Services().Procedures
}

func (m *Module) Protection() ProtectionService {
	return m.container.Services().Protection
}

func (m *Module) References() ReferenceService {
	return m.container.Services().References
}

func (m *Module) Awareness() AwarenessService {
	return m.container.Services().Awareness
}

// Handler returns the JSON API mounted at /api plus /healthz.
func (m *Module) Handler() http.Handler {
	cfg := m.container.Config
	api := porthttp.NewAPI(m.container.Services(),
		porthttp.WithLoggerProvider(m.container.LoggerProvider()),
		porthttp.WithDefaultLocale(domain.ParseLocale(cfg.DefaultLocale, domain.DefaultLocale)),
		porthttp.WithPageSize(cfg.Pagination.DefaultPageSize),
		porthttp.WithRequestTimeout(cfg.Server.RequestTimeout),
	)
	return api.Routes()
}

// ImportDataset runs cmd against the configured store. It fails with
// di.ErrStoreNotSeedable for the http source.
func (m *Module) ImportDataset(ctx context.Context, cmd ImportDatasetCommand) (ImportResult, error) {
	seeder, err := m.container.Seeder()
	if err != nil {
		return ImportResult{}, err
	}
	var result ImportResult
	handler, err := datasetcmd.NewImportDatasetHandler(datasetcmd.Config{
		Seeder:        seeder,
		DefaultLocale: domain.ParseLocale(m.container.Config.DefaultLocale, domain.DefaultLocale),
		Logger:        logging.WithOperation(logging.DatasetLogger(m.container.LoggerProvider()), "dataset.import"),
		OnResult:      func(r ImportResult) { result = r },
	})
	if err != nil {
		return ImportResult{}, err
	}
	if err := handler.Execute(ctx, cmd); err != nil {
		return ImportResult{}, err
	}
	return result, nil
}

// Error kinds returned by ErrorKind.
const (
	ErrorKindNotFound         = domain.KindNotFound
	ErrorKindInvalidParameter = domain.KindInvalidParameter
	ErrorKindTransportFailure = domain.KindTransportFailure
	ErrorKindInternal         = domain.KindInternal
)

// ErrorKind classifies an error returned by the module as not_found,
// invalid_parameter, transport_failure or internal. These are the codes the HTTP API
// reports.
func ErrorKind(err error) string {
	return domain.ErrorKind(err)
}

// Close releases resources held by the module.
func (m *Module) Close() error {
	return m.container.Close()
}
