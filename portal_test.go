package portal_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"testing/fstest"
	"time"

	portal "github.com/goliatone/go-portal"
	"github.com/goliatone/go-portal/internal/di"
	"github.com/goliatone/go-portal/internal/domain"
	"github.com/goliatone/go-portal/internal/query"
	"github.com/goliatone/go-portal/pkg/interfaces"
)

func dataset() fstest.MapFS {
	return fstest.MapFS{
		"news/launch.md": {Data: []byte(`---
id: n1
slug: portal-launch
name_ar: إطلاق البوابة
name_en: Portal launch
---
`)},
	}
}

func TestModuleServesDataset(t *testing.T) {
	module, err := portal.New(portal.DefaultConfig(), di.WithDatasetFS(dataset()))
	if err != nil {
		t.Fatalf("new module: %v", err)
	}
	t.Cleanup(func() { _ = module.Close() })

	item, err := module.News().GetNewsBySlug(context.Background(), "portal-launch")
	if err != nil {
		t.Fatalf("get news: %v", err)
	}
	if item.ID != "n1" || domain.Localize(item.Name, domain.LocaleEnglish) != "Portal launch" {
		t.Fatalf("unexpected news %+v", item)
	}

	rec := httptest.NewRecorder()
	module.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/news/n1", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	module.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/lectures/slug/nonexistent", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestModuleImportDataset(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "references"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	doc := []byte("---\nid: r1\nslug: nca-guide\nname_en: NCA guide\nattributes:\n  url: https://example.com/guide.pdf\n---\n")
	if err := os.WriteFile(filepath.Join(dir, "references", "guide.md"), doc, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	module, err := portal.New(portal.DefaultConfig())
	if err != nil {
		t.Fatalf("new module: %v", err)
	}
	t.Cleanup(func() { _ = module.Close() })

	result, err := module.ImportDataset(context.Background(), portal.ImportDatasetCommand{Directory: dir})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if result.Total != 1 || result.Counts["references"] != 1 {
		t.Fatalf("unexpected result %+v", result)
	}

	ref, err := module.References().GetReferenceBySlug(context.Background(), "nca-guide")
	if err != nil {
		t.Fatalf("get reference: %v", err)
	}
	if ref.URL != "https://example.com/guide.pdf" {
		t.Fatalf("unexpected reference %+v", ref)
	}
}

func TestModuleImportRejectsHTTPSource(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(srv.Close)

	cfg := portal.DefaultConfig()
	cfg.Source.Provider = portal.SourceHTTP
	cfg.Upstream.BaseURL = srv.URL

	module, err := portal.New(cfg)
	if err != nil {
		t.Fatalf("new module: %v", err)
	}
	t.Cleanup(func() { _ = module.Close() })

	_, err = module.ImportDataset(context.Background(), portal.ImportDatasetCommand{Directory: t.TempDir()})
	if !errors.Is(err, di.ErrStoreNotSeedable) {
		t.Fatalf("expected ErrStoreNotSeedable, got %v", err)
	}
}

func TestModuleViewModelQuery(t *testing.T) {
	module, err := portal.New(portal.DefaultConfig(), di.WithDatasetFS(dataset()))
	if err != nil {
		t.Fatalf("new module: %v", err)
	}
	t.Cleanup(func() { _ = module.Close() })

	r := portal.NewsDetail(module.News(), portal.WithLocale[*portal.NewsItem](portal.LocaleEnglish))
	defer r.Close()
	r.Mount("missing")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	state, err := r.Wait(ctx)
	if err != nil {
		t.Fatalf("wait: %v", err)
	}
	if state.Data != nil || state.Error != "The requested content was not found" {
		t.Fatalf("unexpected state %+v", state)
	}
	if module.SearchDebounce() != 300*time.Millisecond {
		t.Fatalf("unexpected debounce %v", module.SearchDebounce())
	}
}

type logEntry struct {
	logger string
	level  string
	msg    string
}

type recordingProvider struct {
	mu      sync.Mutex
	entries []logEntry
}

func (p *recordingProvider) GetLogger(name string) interfaces.Logger {
	return &recordingLogger{name: name, provider: p}
}

func (p *recordingProvider) has(logger, level, msg string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, e := range p.entries {
		if e.logger == logger && e.level == level && e.msg == msg {
			return true
		}
	}
	return false
}

type recordingLogger struct {
	name     string
	provider *recordingProvider
}

func (l *recordingLogger) record(level, msg string) {
	l.provider.mu.Lock()
	defer l.provider.mu.Unlock()
	l.provider.entries = append(l.provider.entries, logEntry{logger: l.name, level: level, msg: msg})
}

func (l *recordingLogger) Trace(msg string, _ ...any) { l.record("trace", msg) }
func (l *recordingLogger) Debug(msg string, _ ...any) { l.record("debug", msg) }
func (l *recordingLogger) Info(msg string, _ ...any)  { l.record("info", msg) }
func (l *recordingLogger) Warn(msg string, _ ...any)  { l.record("warn", msg) }
func (l *recordingLogger) Error(msg string, _ ...any) { l.record("error", msg) }
func (l *recordingLogger) Fatal(msg string, _ ...any) { l.record("fatal", msg) }

func (l *recordingLogger) WithContext(context.Context) interfaces.Logger { return l }

func TestModuleQueryDefaults(t *testing.T) {
	logs := &recordingProvider{}
	clock := query.NewManualClock(time.Unix(0, 0))
	module, err := portal.New(portal.DefaultConfig(),
		di.WithDatasetFS(dataset()),
		di.WithLoggerProvider(logs),
		di.WithQueryClock(clock),
	)
	if err != nil {
		t.Fatalf("new module: %v", err)
	}
	t.Cleanup(func() { _ = module.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	detail := portal.NewsDetail(module.News(), portal.QueryOptions[*portal.NewsItem](module)...)
	defer detail.Close()
	detail.Mount("missing")
	state, err := detail.Wait(ctx)
	if err != nil {
		t.Fatalf("wait: %v", err)
	}
	if state.Error != domain.DisplayMessage(&domain.NotFoundError{}, domain.LocaleArabic) {
		t.Fatalf("expected arabic not-found message, got %q", state.Error)
	}
	if !logs.has("portal.query", "warn", "query.fetch.failed") {
		t.Fatal("expected fetch failure on the portal.query logger")
	}

	list := portal.NewsList(module.News(), portal.QueryOptions[[]portal.NewsItem](module)...)
	search := portal.ListSearch(list, module.SearchDebounce(), module.SearchOptions()...)
	defer search.Close()
	list.Mount(portal.NewListQuery(1, 10, ""))
	if _, err := list.Wait(ctx); err != nil {
		t.Fatalf("wait list: %v", err)
	}

	search.SetTerm("launch")
	if clock.Pending() != 1 {
		t.Fatalf("expected the debounce timer on the module clock, got %d pending", clock.Pending())
	}
	clock.Advance(module.SearchDebounce())
	listState, err := list.Wait(ctx)
	if err != nil {
		t.Fatalf("wait search: %v", err)
	}
	if list.Params().Search != "launch" || len(listState.Data) != 1 {
		t.Fatalf("unexpected search result params=%+v state=%+v", list.Params(), listState)
	}
}
