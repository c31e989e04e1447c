package logging

import (
	"context"
	"testing"

	"github.com/goliatone/go-portal/pkg/interfaces"
)

type recordingLogger struct {
	fields   []map[string]any
	contexts []context.Context
}

func (r *recordingLogger) Trace(string, ...any) {}
func (r *recordingLogger) Debug(string, ...any) {}
func (r *recordingLogger) Info(string, ...any)  {}
func (r *recordingLogger) Warn(string, ...any)  {}
func (r *recordingLogger) Error(string, ...any) {}
func (r *recordingLogger) Fatal(string, ...any) {}

func (r *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	r.fields = append(r.fields, copied)
	return r
}

func (r *recordingLogger) WithContext(ctx context.Context) interfaces.Logger {
	r.contexts = append(r.contexts, ctx)
	return r
}

type stubProvider struct {
	requested []string
	logger    interfaces.Logger
}

func (s *stubProvider) GetLogger(name string) interfaces.Logger {
	s.requested = append(s.requested, name)
	return s.logger
}

func TestModuleLoggerFallsBackToNoOp(t *testing.T) {
	logger := ModuleLogger(nil, "portal.test")
	if _, ok := logger.(noopLogger); !ok {
		t.Fatalf("expected noopLogger fallback, got %T", logger)
	}
	logger = logger.WithContext(context.Background())
	logger.Debug("noop")
}

func TestModuleLoggerUsesProviderAndAnnotatesFields(t *testing.T) {
	rec := &recordingLogger{}
	provider := &stubProvider{logger: rec}

	_ = ModuleLogger(provider, upstreamModule)

	if len(provider.requested) != 1 || provider.requested[0] != upstreamModule {
		t.Fatalf("expected module %s, got %v", upstreamModule, provider.requested)
	}
	if len(rec.fields) != 1 || rec.fields[0]["module"] != upstreamModule {
		t.Fatalf("expected module field %s, got %v", upstreamModule, rec.fields)
	}
}

func TestModuleLoggerDefaultsToRootModule(t *testing.T) {
	rec := &recordingLogger{}
	provider := &stubProvider{logger: rec}

	_ = ModuleLogger(provider, "")

	if len(provider.requested) != 1 || provider.requested[0] != rootModule {
		t.Fatalf("expected default module %s, got %v", rootModule, provider.requested)
	}
}

func TestDomainLoggerQualifiesDomainKey(t *testing.T) {
	rec := &recordingLogger{}
	provider := &stubProvider{logger: rec}

	_ = DomainLogger(provider, "lectures")

	if provider.requested[0] != "portal.lectures" {
		t.Fatalf("expected portal.lectures, got %v", provider.requested)
	}
	if len(rec.fields) != 2 || rec.fields[1][fieldDomain] != "lectures" {
		t.Fatalf("expected domain field, got %v", rec.fields)
	}
}

func TestModuleName(t *testing.T) {
	cases := map[string]string{
		"":            "portal",
		"portal":      "portal",
		"news":        "portal.news",
		"portal.http": "portal.http",
	}
	for input, want := range cases {
		if got := ModuleName(input); got != want {
			t.Fatalf("ModuleName(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestContextWithFieldsMerges(t *testing.T) {
	ctx := ContextWithFields(context.Background(), map[string]any{"a": 1})
	ctx = ContextWithFields(ctx, map[string]any{"b": 2, "a": 3})

	fields := ContextFields(ctx)
	if fields["a"] != 3 || fields["b"] != 2 {
		t.Fatalf("unexpected merged fields %v", fields)
	}
	fields["a"] = 99
	if ContextFields(ctx)["a"] != 3 {
		t.Fatalf("expected ContextFields to return a copy")
	}
}
