package awareness

import (
	"strings"
	"time"

	"github.com/goliatone/go-portal/internal/content"
	"github.com/goliatone/go-portal/internal/domain"
)

// Domain is the store key for awareness material.
const Domain = "awareness"

type Kind string

const (
	KindArticle     Kind = "article"
	KindVideo       Kind = "video"
	KindInfographic Kind = "infographic"
)

// Item is a piece of awareness material.
type Item struct {
	domain.Entity
	MediaURL     string     `json:"mediaUrl,omitempty"`
	ThumbnailURL string     `json:"thumbnailUrl,omitempty"`
	Kind         Kind       `json:"kind"`
	PublishedAt  *time.Time `json:"publishedAt,omitempty"`
}

// ParseKind maps unknown or empty kinds to KindArticle.
func ParseKind(value string) Kind {
	switch Kind(strings.ToLower(strings.TrimSpace(value))) {
	case KindVideo:
		return KindVideo
	case KindInfographic:
		return KindInfographic
	default:
		return KindArticle
	}
}

func Decode(rec *content.Record) (*Item, error) {
	return &Item{
		Entity:       rec.Entity,
		MediaURL:     rec.String("media_url"),
		ThumbnailURL: rec.String("thumbnail_url"),
		Kind:         ParseKind(rec.String("kind")),
		PublishedAt:  rec.PublishedAt,
	}, nil
}
