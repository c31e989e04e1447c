package media

import (
	"context"

	"github.com/goliatone/go-portal/internal/content"
	"github.com/goliatone/go-portal/internal/domain"
)

// Service exposes lecture and presentation reads.
type Service interface {
	GetLectures(ctx context.Context, q domain.ListQuery) (domain.Page[Lecture], error)
	GetLectureByID(ctx context.Context, id string) (*Lecture, error)
	GetLectureBySlug(ctx context.Context, slug string) (*Lecture, error)

	GetPresentations(ctx context.Context, q domain.ListQuery) (domain.Page[Presentation], error)
	GetPresentationByID(ctx context.Context, id string) (*Presentation, error)
	GetPresentationBySlug(ctx context.Context, slug string) (*Presentation, error)
}

type service struct {
	lectures      *content.Service[Lecture]
	presentations *content.Service[Presentation]
}

// NewService binds the lecture and presentation repositories to deps.Store.
func NewService(deps content.Dependencies) Service {
	return &service{
		lectures:      content.Bind(deps, LecturesDomain, "lecture", DecodeLecture),
		presentations: content.Bind(deps, PresentationsDomain, "presentation", DecodePresentation),
	}
}

func (s *service) GetLectures(ctx context.Context, q domain.ListQuery) (domain.Page[Lecture], error) {
	return s.lectures.List(ctx, q)
}

func (s *service) GetLectureByID(ctx context.Context, id string) (*Lecture, error) {
	return s.lectures.Get(ctx, id)
}

func (s *service) GetLectureBySlug(ctx context.Context, slug string) (*Lecture, error) {
	return s.lectures.GetBySlug(ctx, slug)
}

func (s *service) GetPresentations(ctx context.Context, q domain.ListQuery) (domain.Page[Presentation], error) {
	return s.presentations.List(ctx, q)
}

func (s *service) GetPresentationByID(ctx context.Context, id string) (*Presentation, error) {
	return s.presentations.Get(ctx, id)
}

func (s *service) GetPresentationBySlug(ctx context.Context, slug string) (*Presentation, error) {
	return s.presentations.GetBySlug(ctx, slug)
}
