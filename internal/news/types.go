package news

import (
	"time"

	"github.com/goliatone/go-portal/internal/content"
	"github.com/goliatone/go-portal/internal/domain"
)

// Domain is the store key for news items.
const Domain = "news"

// News is a published news item.
type News struct {
	domain.Entity
	ImageURL    string      `json:"imageUrl,omitempty"`
	Body        domain.Text `json:"body"`
	Source      domain.Text `json:"source"`
	PublishedAt *time.Time  `json:"publishedAt,omitempty"`
}

// Decode maps a stored record onto News.
func Decode(rec *content.Record) (*News, error) {
	published := rec.PublishedAt
	if published == nil {
		published = rec.Time("published_at")
	}
	return &News{
		Entity:      rec.Entity,
		ImageURL:    rec.String("image_url"),
		Body:        rec.Text("body"),
		Source:      rec.Text("source"),
		PublishedAt: published,
	}, nil
}
