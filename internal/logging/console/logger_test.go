package console_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-portal/internal/logging"
	"github.com/goliatone/go-portal/internal/logging/console"
)

func TestConsoleLogger_WritesStructuredEntry(t *testing.T) {
	var buf bytes.Buffer
	now := time.Date(2025, 3, 14, 15, 9, 26, 535897000, time.UTC)

	minLevel := console.LevelDebug
	provider := console.NewProvider(console.Options{
		Writer:   &buf,
		TimeFunc: func() time.Time { return now },
		MinLevel: &minLevel,
	})

	logger := logging.ModuleLogger(provider, "news")
	ctx := logging.ContextWithFields(context.Background(), map[string]any{
		"request_id": "req-1234",
	})
	logger = logger.WithContext(ctx)

	logger.Warn("news.list.degraded",
		"error", errors.New("upstream down"),
		"page", 2,
	)

	got := strings.TrimSpace(buf.String())
	want := `2025-03-14T15:09:26.535897Z WARN news.list.degraded error="upstream down" logger=portal.news module=portal.news page=2 request_id=req-1234`
	if got != want {
		t.Fatalf("unexpected log entry\nwant: %s\ngot:  %s", want, got)
	}
}

func TestConsoleLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	minLevel := console.LevelInfo
	provider := console.NewProvider(console.Options{
		Writer:   &buf,
		TimeFunc: time.Now,
		MinLevel: &minLevel,
	})

	logger := provider.GetLogger("portal.test")
	logger.Debug("ignored.debug", "foo", "bar")
	logger.Info("included.info", "foo", "bar")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected single log line, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "included.info") {
		t.Fatalf("expected info log to be written, got %s", lines[0])
	}
}

func TestConsoleLogger_DanglingArgumentIsPositional(t *testing.T) {
	var buf bytes.Buffer
	provider := console.NewProvider(console.Options{
		Writer:   &buf,
		TimeFunc: func() time.Time { return time.Unix(0, 0) },
	})

	provider.GetLogger("portal").Info("odd", "key", "value", "orphan")

	if !strings.Contains(buf.String(), "field_1=orphan") {
		t.Fatalf("expected positional field for dangling arg, got %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]console.Level{
		"trace":   console.LevelTrace,
		"DEBUG":   console.LevelDebug,
		"":        console.LevelInfo,
		"warning": console.LevelWarn,
		"error":   console.LevelError,
	}
	for input, want := range cases {
		got, ok := console.ParseLevel(input)
		if !ok || got != want {
			t.Fatalf("ParseLevel(%q) = %v, %v; want %v", input, got, ok, want)
		}
	}
	if _, ok := console.ParseLevel("loud"); ok {
		t.Fatalf("expected unknown level to be rejected")
	}
}
