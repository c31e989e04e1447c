package awareness_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-portal/internal/awareness"
	"github.com/goliatone/go-portal/internal/content"
	"github.com/goliatone/go-portal/internal/domain"
)

func TestParseKind(t *testing.T) {
	assert.Equal(t, awareness.KindVideo, awareness.ParseKind(" Video "))
	assert.Equal(t, awareness.KindInfographic, awareness.ParseKind("infographic"))
	assert.Equal(t, awareness.KindArticle, awareness.ParseKind(""))
	assert.Equal(t, awareness.KindArticle, awareness.ParseKind("podcast"))
}

func TestAwarenessService(t *testing.T) {
	store := content.NewMemoryStore(
		&content.Record{
			Entity:     domain.Entity{ID: "a1", Slug: "phishing-101", Name: domain.NewText("التصيد", "Phishing 101")},
			Domain:     awareness.Domain,
			Attributes: map[string]any{"media_url": "https://cdn.example.com/phishing.mp4", "kind": "video"},
		},
		&content.Record{Entity: domain.Entity{ID: "a2", Name: domain.NewText("كلمات المرور", "Passwords")}, Domain: awareness.Domain},
	)
	svc := awareness.NewService(content.Dependencies{Store: store})
	ctx := context.Background()

	item, err := svc.GetAwarenessItemBySlug(ctx, "phishing-101")
	require.NoError(t, err)
	assert.Equal(t, awareness.KindVideo, item.Kind)
	assert.Equal(t, "https://cdn.example.com/phishing.mp4", item.MediaURL)

	page, err := svc.GetAwarenessItems(ctx, domain.NewListQuery(1, 10, "PASS"))
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, awareness.KindArticle, page.Data[0].Kind)

	_, err = svc.GetAwarenessItemByID(ctx, "a9")
	assert.True(t, domain.IsNotFound(err))
}
