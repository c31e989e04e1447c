package datasetcmd_test

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"testing"
	"testing/fstest"

	goerrors "github.com/goliatone/go-errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	datasetcmd "github.com/goliatone/go-portal/internal/commands/dataset"
	"github.com/goliatone/go-portal/internal/content"
	"github.com/goliatone/go-portal/internal/domain"
)

func dataset() fstest.MapFS {
	return fstest.MapFS{
		"news/launch.md": {Data: []byte(`---
id: n1
slug: portal-launch
name_ar: إطلاق البوابة
name_en: Portal launch
---
Body.
`)},
		"lectures/intro.md": {Data: []byte(`---
id: l1
name_en: Intro
---
`)},
	}
}

func newHandler(t *testing.T, store *content.MemoryStore, results *[]datasetcmd.ImportResult) *datasetcmd.ImportDatasetHandler {
	t.Helper()
	h, err := datasetcmd.NewImportDatasetHandler(datasetcmd.Config{
		Seeder:        store,
		DefaultLocale: domain.LocaleArabic,
		Open:          func(string) fs.FS { return dataset() },
		OnResult: func(r datasetcmd.ImportResult) {
			*results = append(*results, r)
		},
	})
	require.NoError(t, err)
	return h
}

func TestImportDatasetSeedsStore(t *testing.T) {
	store := content.NewMemoryStore()
	var results []datasetcmd.ImportResult
	h := newHandler(t, store, &results)

	require.NoError(t, h.Execute(context.Background(), datasetcmd.ImportDatasetCommand{Directory: "dataset"}))

	rec, err := store.GetBySlug(context.Background(), "news", "portal-launch")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "Portal launch", rec.Name.En)

	require.Len(t, results, 1)
	assert.Equal(t, 2, results[0].Total)
	assert.Equal(t, map[string]int{"news": 1, "lectures": 1}, results[0].Counts)
}

func TestImportDatasetDryRunAndFilter(t *testing.T) {
	store := content.NewMemoryStore()
	var results []datasetcmd.ImportResult
	h := newHandler(t, store, &results)

	cmd := datasetcmd.ImportDatasetCommand{Directory: "dataset", Domains: []string{"lectures"}, DryRun: true}
	require.NoError(t, h.Execute(context.Background(), cmd))

	_, err := store.Get(context.Background(), "lectures", "l1")
	assert.True(t, domain.IsNotFound(err))

	require.Len(t, results, 1)
	assert.Equal(t, map[string]int{"lectures": 1}, results[0].Counts)
	assert.True(t, results[0].DryRun)
}

func TestImportDatasetValidation(t *testing.T) {
	store := content.NewMemoryStore()
	var results []datasetcmd.ImportResult
	h := newHandler(t, store, &results)

	err := h.Execute(context.Background(), datasetcmd.ImportDatasetCommand{})
	require.Error(t, err)
	assert.True(t, goerrors.IsCategory(err, goerrors.CategoryValidation))
	assert.Equal(t, domain.KindInvalidParameter, domain.ErrorKind(err))

	err = h.Execute(context.Background(), datasetcmd.ImportDatasetCommand{Directory: "dataset", Domains: []string{"blogs"}})
	require.Error(t, err)
	assert.True(t, domain.IsInvalidParameter(err))
	assert.Empty(t, results)
}

func TestImportDatasetMissingDirectoryIsInvalidParameter(t *testing.T) {
	h, err := datasetcmd.NewImportDatasetHandler(datasetcmd.Config{Seeder: content.NewMemoryStore()})
	require.NoError(t, err)

	missing := filepath.Join(t.TempDir(), "nowhere")
	err = h.Execute(context.Background(), datasetcmd.ImportDatasetCommand{Directory: missing})
	require.Error(t, err)
	assert.Equal(t, domain.KindInvalidParameter, domain.ErrorKind(err))
}

type failingSeeder struct{}

func (failingSeeder) Upsert(context.Context, ...*content.Record) error {
	return errors.New("database is locked")
}

func TestImportDatasetSeedFailureIsTransportFailure(t *testing.T) {
	h, err := datasetcmd.NewImportDatasetHandler(datasetcmd.Config{
		Seeder: failingSeeder{},
		Open:   func(string) fs.FS { return dataset() },
	})
	require.NoError(t, err)

	err = h.Execute(context.Background(), datasetcmd.ImportDatasetCommand{Directory: "dataset"})
	require.Error(t, err)
	assert.True(t, domain.IsTransportFailure(err))
	assert.Equal(t, domain.KindTransportFailure, domain.ErrorKind(err))
}

func TestNewImportDatasetHandlerRequiresSeeder(t *testing.T) {
	_, err := datasetcmd.NewImportDatasetHandler(datasetcmd.Config{})
	assert.ErrorIs(t, err, datasetcmd.ErrSeederRequired)
}
