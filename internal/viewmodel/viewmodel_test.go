package viewmodel_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-portal/internal/content"
	"github.com/goliatone/go-portal/internal/definitions"
	"github.com/goliatone/go-portal/internal/domain"
	"github.com/goliatone/go-portal/internal/media"
	"github.com/goliatone/go-portal/internal/news"
	"github.com/goliatone/go-portal/internal/procedures"
	"github.com/goliatone/go-portal/internal/protection"
	"github.com/goliatone/go-portal/internal/query"
	"github.com/goliatone/go-portal/internal/viewmodel"
)

func fixtureDeps() content.Dependencies {
	store := content.NewMemoryStore(
		&content.Record{Entity: domain.Entity{ID: "n1", Slug: "traffic-week", Name: domain.NewText("أسبوع المرور", "Traffic week")}, Domain: news.Domain, Position: 1},
		&content.Record{Entity: domain.Entity{ID: "n2", Slug: "cyber-day", Name: domain.NewText("يوم الأمن", "Cyber day")}, Domain: news.Domain, Position: 2},
		&content.Record{Entity: domain.Entity{ID: "n3", Name: domain.NewText("حملة", "Traffic campaign")}, Domain: news.Domain, Position: 3},
		&content.Record{Entity: domain.Entity{ID: "c1", Name: domain.NewText("فارغ", "Empty")}, Domain: definitions.CategoriesDomain},
		&content.Record{Entity: domain.Entity{ID: "sg9", Name: domain.NewText("حماية", "Orphan")}, Domain: procedures.SafeguardsDomain, ParentID: "missing-control"},
		&content.Record{Entity: domain.Entity{ID: "pc1", Name: domain.NewText("قفل", "Lock")}, Domain: protection.ControlsDomain},
		&content.Record{Entity: domain.Entity{ID: "s2"}, Domain: protection.StepsDomain, ParentID: "pc1", Position: 2},
		&content.Record{Entity: domain.Entity{ID: "s1"}, Domain: protection.StepsDomain, ParentID: "pc1", Position: 1},
	)
	return content.Dependencies{Store: store}
}

func settle[P, T any](t *testing.T, r *query.Resource[P, T]) query.State[T] {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	state, err := r.Wait(ctx)
	require.NoError(t, err)
	return state
}

func TestDefinitionsByCategoryEmptyCategory(t *testing.T) {
	r := viewmodel.DefinitionsByCategory(definitions.NewService(fixtureDeps()))
	defer r.Close()

	r.Mount(viewmodel.NewChildParams("c1", 50))
	state := settle(t, r)

	assert.Empty(t, state.Error)
	assert.NotNil(t, state.Data)
	assert.Len(t, state.Data, 0)
	assert.Equal(t, domain.Pagination{ItemsCount: 0, PagesCount: 0, PageSize: 50, CurrentPage: 1}, state.Pagination)
}

func TestLectureDetailNotFoundBecomesMessage(t *testing.T) {
	r := viewmodel.LectureDetail(media.NewService(fixtureDeps()), query.WithLocale[*media.Lecture](domain.LocaleEnglish))
	defer r.Close()

	r.Mount("nonexistent")
	state := settle(t, r)

	assert.Nil(t, state.Data)
	assert.Equal(t, "The requested content was not found", state.Error)
}

func TestSafeguardContextWithoutControl(t *testing.T) {
	r := viewmodel.SafeguardContext(procedures.NewService(fixtureDeps()))
	defer r.Close()

	r.Mount("sg9")
	state := settle(t, r)

	require.NotNil(t, state.Data)
	assert.Empty(t, state.Error)
	assert.Equal(t, "sg9", state.Data.Safeguard.ID)
	assert.Nil(t, state.Data.Control)
	assert.Nil(t, state.Data.Procedure)
}

func TestNewsListSearch(t *testing.T) {
	clock := query.NewManualClock(time.Unix(0, 0))
	r := viewmodel.NewsList(news.NewService(fixtureDeps()))
	search := viewmodel.ListSearch(r, 300*time.Millisecond, query.WithDebounceClock(clock))
	defer search.Close()

	r.Mount(domain.NewListQuery(2, 2, ""))
	page2 := settle(t, r)
	require.Len(t, page2.Data, 1)
	assert.Equal(t, "n3", page2.Data[0].ID)

	search.SetTerm("tra")
	search.SetTerm("TRAFFIC")
	clock.Advance(300 * time.Millisecond)
	state := settle(t, r)

	assert.Equal(t, 1, r.Params().Page)
	ids := make([]string, 0, len(state.Data))
	for _, item := range state.Data {
		ids = append(ids, item.ID)
	}
	assert.Equal(t, []string{"n1", "n3"}, ids)
	assert.Equal(t, 2, state.Pagination.ItemsCount)
}

func TestNewsDetailResolvesSlugOrID(t *testing.T) {
	r := viewmodel.NewsDetail(news.NewService(fixtureDeps()))
	defer r.Close()

	r.Mount("cyber-day")
	assert.Equal(t, "n2", settle(t, r).Data.ID)

	r.SetParams("n1")
	assert.Equal(t, "traffic-week", settle(t, r).Data.Slug)
}

func TestControlStepsOrdered(t *testing.T) {
	r := viewmodel.ControlSteps(protection.NewService(fixtureDeps()))
	search := viewmodel.ChildSearch(r, 0)
	defer search.Close()

	r.Mount(viewmodel.NewChildParams("pc1", 10))
	state := settle(t, r)

	require.Len(t, state.Data, 2)
	assert.Equal(t, 1, state.Data[0].StepNumber)
	assert.Equal(t, 2, state.Data[1].StepNumber)
}

func TestApplyChildSearch(t *testing.T) {
	p := viewmodel.ApplyChildSearch(viewmodel.ChildParams{ParentID: "c2", Query: domain.NewListQuery(3, 10, "")}, "tunnel")
	assert.Equal(t, "c2", p.ParentID)
	assert.Equal(t, domain.NewListQuery(1, 10, "tunnel"), p.Query)
}
