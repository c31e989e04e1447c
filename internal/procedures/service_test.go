package procedures_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-portal/internal/content"
	"github.com/goliatone/go-portal/internal/domain"
	"github.com/goliatone/go-portal/internal/procedures"
)

func newService() procedures.Service {
	store := content.NewMemoryStore(
		&content.Record{Entity: domain.Entity{ID: "p1", Slug: "incident-response", Name: domain.NewText("الاستجابة للحوادث", "Incident Response")}, Domain: procedures.ProceduresDomain},
		&content.Record{Entity: domain.Entity{ID: "pc1", Name: domain.NewText("الاحتواء", "Containment")}, Domain: procedures.ControlsDomain, ParentID: "p1"},
		&content.Record{Entity: domain.Entity{ID: "sg1", Slug: "isolate-host", Name: domain.NewText("عزل الجهاز", "Isolate Host")}, Domain: procedures.SafeguardsDomain, ParentID: "pc1"},
		&content.Record{Entity: domain.Entity{ID: "sg2", Name: domain.NewText("يتيم", "Orphan Safeguard")}, Domain: procedures.SafeguardsDomain, ParentID: "pc404"},
		&content.Record{Entity: domain.Entity{ID: "t1", Name: domain.NewText("فصل الشبكة", "Unplug Network")}, Domain: procedures.TechniquesDomain, ParentID: "sg1", Attributes: map[string]any{"steps": map[string]any{"ar": "افصل", "en": "Unplug"}}},
		&content.Record{Entity: domain.Entity{ID: "t2", Name: domain.NewText("تقنية", "Dangling")}, Domain: procedures.TechniquesDomain, ParentID: "sg404"},
	)
	return procedures.NewService(content.Dependencies{Store: store})
}

func TestSafeguardContextWithMissingControl(t *testing.T) {
	svc := newService()

	got, err := svc.SafeguardContext(context.Background(), "sg2")
	require.NoError(t, err)
	assert.Equal(t, "sg2", got.Safeguard.ID)
	assert.Nil(t, got.Control)
	assert.Nil(t, got.Procedure)
}

func TestSafeguardContextResolvesAncestors(t *testing.T) {
	svc := newService()

	got, err := svc.SafeguardContext(context.Background(), "sg1")
	require.NoError(t, err)
	require.NotNil(t, got.Control)
	require.NotNil(t, got.Procedure)
	assert.Equal(t, "pc1", got.Control.ID)
	assert.Equal(t, "Incident Response", got.Procedure.Name.En)

	_, err = svc.SafeguardContext(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTechniqueContext(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	full, err := svc.TechniqueContext(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "Unplug", full.Technique.Steps.En)
	require.NotNil(t, full.Safeguard)
	require.NotNil(t, full.Procedure)
	assert.Equal(t, "p1", full.Procedure.ID)

	dangling, err := svc.TechniqueContext(ctx, "t2")
	require.NoError(t, err)
	assert.Nil(t, dangling.Safeguard)
	assert.Nil(t, dangling.Control)
}

func TestHierarchyListing(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	q := domain.NewListQuery(1, 10, "")

	controls, err := svc.GetControlsByProcedure(ctx, "p1", q)
	require.NoError(t, err)
	assert.Len(t, controls.Data, 1)

	safeguards, err := svc.GetSafeguardsByControl(ctx, "pc1", q)
	require.NoError(t, err)
	assert.Len(t, safeguards.Data, 1)

	techniques, err := svc.GetTechniquesBySafeguard(ctx, "sg-unknown", q)
	require.NoError(t, err)
	assert.Empty(t, techniques.Data)
	assert.Equal(t, 0, techniques.Pagination.ItemsCount)
}
