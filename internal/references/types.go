package references

import (
	"time"

	"github.com/goliatone/go-portal/internal/content"
	"github.com/goliatone/go-portal/internal/domain"
)

// Domain is the store key for references.
const Domain = "references"

// Reference points at an external publication.
type Reference struct {
	domain.Entity
	URL         string      `json:"url,omitempty"`
	Publisher   domain.Text `json:"publisher"`
	Kind        string      `json:"kind,omitempty"`
	PublishedAt *time.Time  `json:"publishedAt,omitempty"`
}

func Decode(rec *content.Record) (*Reference, error) {
	published := rec.PublishedAt
	if published == nil {
		published = rec.Time("published_at")
	}
	return &Reference{
		Entity:      rec.Entity,
		URL:         rec.String("url"),
		Publisher:   rec.Text("publisher"),
		Kind:        rec.String("kind"),
		PublishedAt: published,
	}, nil
}
