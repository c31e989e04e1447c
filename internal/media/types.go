package media

import (
	"time"

	"github.com/goliatone/go-portal/internal/content"
	"github.com/goliatone/go-portal/internal/domain"
)

const (
	LecturesDomain      = "lectures"
	PresentationsDomain = "presentations"
)

// Lecture is a recorded talk.
type Lecture struct {
	domain.Entity
	Speaker         domain.Text `json:"speaker"`
	VideoURL        string      `json:"videoUrl,omitempty"`
	ThumbnailURL    string      `json:"thumbnailUrl,omitempty"`
	DurationMinutes int         `json:"durationMinutes,omitempty"`
	PublishedAt     *time.Time  `json:"publishedAt,omitempty"`
}

// Presentation is a downloadable slide deck.
type Presentation struct {
	domain.Entity
	FileURL      string     `json:"fileUrl,omitempty"`
	ThumbnailURL string     `json:"thumbnailUrl,omitempty"`
	SlidesCount  int        `json:"slidesCount,omitempty"`
	PublishedAt  *time.Time `json:"publishedAt,omitempty"`
}

// DecodeLecture maps a stored record onto Lecture.
func DecodeLecture(rec *content.Record) (*Lecture, error) {
	return &Lecture{
		Entity:          rec.Entity,
		Speaker:         rec.Text("speaker"),
		VideoURL:        rec.String("video_url"),
		ThumbnailURL:    rec.String("thumbnail_url"),
		DurationMinutes: rec.Int("duration_minutes"),
		PublishedAt:     publishedAt(rec),
	}, nil
}

// DecodePresentation maps a stored record onto Presentation.
func DecodePresentation(rec *content.Record) (*Presentation, error) {
	return &Presentation{
		Entity:       rec.Entity,
		FileURL:      rec.String("file_url"),
		ThumbnailURL: rec.String("thumbnail_url"),
		SlidesCount:  rec.Int("slides_count"),
		PublishedAt:  publishedAt(rec),
	}, nil
}

func publishedAt(rec *content.Record) *time.Time {
	if rec.PublishedAt != nil {
		return rec.PublishedAt
	}
	return rec.Time("published_at")
}
