package news_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-portal/internal/content"
	"github.com/goliatone/go-portal/internal/domain"
	"github.com/goliatone/go-portal/internal/news"
)

func newService(t *testing.T) news.Service {
	t.Helper()
	published := time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC)
	store := content.NewMemoryStore(
		&content.Record{
			Entity:      domain.Entity{ID: "n1", Slug: "launch", Name: domain.NewText("إطلاق", "Launch")},
			Domain:      news.Domain,
			Position:    1,
			PublishedAt: &published,
			Attributes: map[string]any{
				"image_url": "https://cdn.example.com/n1.png",
				"body_ar":   "<p>نص</p>",
				"source":    map[string]any{"ar": "المركز", "en": "Center"},
			},
		},
		&content.Record{
			Entity:   domain.Entity{ID: "n2", Slug: "update", Name: domain.NewText("تحديث", "")},
			Domain:   news.Domain,
			Position: 2,
		},
	)
	return news.NewService(content.Dependencies{Store: store})
}

func TestGetNewsDecodesAttributes(t *testing.T) {
	svc := newService(t)

	item, err := svc.GetNewsBySlug(context.Background(), "launch")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/n1.png", item.ImageURL)
	assert.Equal(t, "<p>نص</p>", item.Body.Localize(domain.LocaleEnglish))
	assert.Equal(t, "Center", item.Source.Localize(domain.LocaleEnglish))
	require.NotNil(t, item.PublishedAt)
}

func TestGetNewsListsAndFallsBackToArabic(t *testing.T) {
	svc := newService(t)

	page, err := svc.GetNews(context.Background(), domain.NewListQuery(1, 10, ""))
	require.NoError(t, err)
	require.Len(t, page.Data, 2)
	assert.Equal(t, "تحديث", domain.Localize(page.Data[1].Name, domain.LocaleEnglish))
	assert.Equal(t, domain.Pagination{ItemsCount: 2, PagesCount: 1, PageSize: 10, CurrentPage: 1}, page.Pagination)
}

func TestGetNewsByIDMissingIsNotFound(t *testing.T) {
	svc := newService(t)

	_, err := svc.GetNewsByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	item, err := svc.ResolveNews(context.Background(), "n2")
	require.NoError(t, err)
	assert.Equal(t, "update", item.Slug)
}
