package markdown_test

import (
	"context"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-portal/internal/content"
	"github.com/goliatone/go-portal/internal/domain"
	"github.com/goliatone/go-portal/internal/markdown"
)

func datasetFS() fstest.MapFS {
	modified := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	return fstest.MapFS{
		"news/launch.ar.md": {
			Data: []byte(`---
id: n1
slug: Portal Launch
position: 1
published_at: 2025-04-30T08:00:00Z
name_ar: إطلاق البوابة
description_ar: خبر الإطلاق
attributes:
  image_url: https://cdn.example.com/launch.png
  source:
    ar: المركز
    en: The Center
---
# عنوان

نص **الخبر**.
`),
			ModTime: modified,
		},
		"news/launch.en.md": {
			Data: []byte(`---
id: n1
locale: en
name_en: Portal Launch
description_en: Launch news
---
Launch *body*.
`),
			ModTime: modified.Add(time.Hour),
		},
		"misc/control.md": {
			Data: []byte(`---
domain: standard_controls
id: ctl-1
parent: std-1
parent_domain: standards
name_en: Asset Inventory
attributes:
  code: "1-1-1"
---
`),
			ModTime: modified,
		},
		"news/README.txt": {Data: []byte("ignored")},
	}
}

func TestLoaderBuildsMergedRecords(t *testing.T) {
	loader := markdown.NewLoader(datasetFS(), markdown.LoaderConfig{})

	records, err := loader.Load(context.Background(), ".")
	require.NoError(t, err)
	require.Len(t, records, 2)

	news := records[0]
	assert.Equal(t, "news", news.Domain)
	assert.Equal(t, "n1", news.ID)
	assert.Equal(t, "portal-launch", news.Slug)
	assert.Equal(t, domain.NewText("إطلاق البوابة", "Portal Launch"), news.Name)
	assert.Equal(t, "Launch news", news.Description.En)
	require.NotNil(t, news.PublishedAt)
	assert.Equal(t, 2025, news.PublishedAt.Year())

	body := news.Text("body")
	assert.Contains(t, body.Ar, "<strong>الخبر</strong>")
	assert.Contains(t, body.En, "<em>body</em>")
	assert.Equal(t, "https://cdn.example.com/launch.png", news.String("image_url"))
	assert.Equal(t, "The Center", news.Text("source").En)
	assert.NotEmpty(t, news.String(markdown.AttributeChecksum))

	control := records[1]
	assert.Equal(t, "standard_controls", control.Domain)
	assert.Equal(t, "std-1", control.ParentID)
	assert.Equal(t, "standards", control.String(content.ParentDomainAttribute))
	assert.Equal(t, "1-1-1", control.String("code"))
}

func TestLoaderRequiresID(t *testing.T) {
	fsys := fstest.MapFS{
		"news/bad.md": {Data: []byte("---\nname_en: No id\n---\nbody\n")},
	}
	_, err := markdown.NewLoader(fsys, markdown.LoaderConfig{}).Load(context.Background(), ".")
	require.ErrorIs(t, err, markdown.ErrRecordIDRequired)
}

func TestLoaderSeedsMemoryStore(t *testing.T) {
	records, err := markdown.NewLoader(datasetFS(), markdown.LoaderConfig{}).Load(context.Background(), ".")
	require.NoError(t, err)

	store := content.NewMemoryStore()
	require.NoError(t, store.Upsert(context.Background(), records...))

	rec, err := store.GetBySlug(context.Background(), "news", "portal-launch")
	require.NoError(t, err)
	assert.Equal(t, "n1", rec.ID)
}

func TestRendererSafeModeDropsRawHTML(t *testing.T) {
	safe := markdown.NewRenderer(markdown.RenderOptions{SafeMode: true})
	out, err := safe.Render([]byte("<script>alert(1)</script>\n\ntext"))
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")

	empty, err := safe.Render([]byte("   "))
	require.NoError(t, err)
	assert.Empty(t, empty)
}
