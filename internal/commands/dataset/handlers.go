package datasetcmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-portal/internal/commands"
	"github.com/goliatone/go-portal/internal/content"
	"github.com/goliatone/go-portal/internal/domain"
	"github.com/goliatone/go-portal/internal/logging"
	"github.com/goliatone/go-portal/internal/markdown"
	"github.com/goliatone/go-portal/pkg/interfaces"
)

const importOperation = "dataset.import"

var ErrSeederRequired = errors.New("dataset command: seeder required")

var _ command.Commander[ImportDatasetCommand] = (*ImportDatasetHandler)(nil)

// ImportResult summarises one import run.
type ImportResult struct {
	Directory string
	DryRun    bool
	// Counts holds the number of records per domain.
	Counts map[string]int
	Total  int
}

// Config wires an ImportDatasetHandler.
type Config struct {
	Seeder        content.Seeder
	DefaultLocale domain.Locale
	Logger        interfaces.Logger
	// Open resolves the command directory. Defaults to os.DirFS.
	Open func(dir string) fs.FS
	// OnResult receives the summary of every successful run.
	OnResult func(ImportResult)
}

// ImportDatasetHandler executes ImportDatasetCommand through the shared handler.
type ImportDatasetHandler struct {
	inner *commands.Handler[ImportDatasetCommand]
}

// NewImportDatasetHandler returns a handler seeding cfg.Seeder.
func NewImportDatasetHandler(cfg Config, opts ...commands.HandlerOption[ImportDatasetCommand]) (*ImportDatasetHandler, error) {
	if cfg.Seeder == nil {
		return nil, ErrSeederRequired
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	open := cfg.Open
	if open == nil {
		open = os.DirFS
	}

	exec := func(ctx context.Context, msg ImportDatasetCommand) error {
		dir := strings.TrimSpace(msg.Directory)
		loader := markdown.NewLoader(open(dir), markdown.LoaderConfig{
			DefaultLocale: cfg.DefaultLocale,
			Logger:        logger,
		})
		records, err := loader.Load(ctx, ".")
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return domain.InvalidParameter(fmt.Errorf("dataset directory %q: %w", dir, err))
			}
			return err
		}
		records = filterDomains(records, msg.Domains)

		result := ImportResult{Directory: dir, DryRun: msg.DryRun, Counts: map[string]int{}, Total: len(records)}
		for _, rec := range records {
			result.Counts[rec.Domain]++
		}

		if !msg.DryRun {
			if err := cfg.Seeder.Upsert(ctx, records...); err != nil {
				return domain.TransportFailure(err, "dataset seed failed")
			}
		}

		logging.WithFields(logger, map[string]any{
			"directory": dir,
			"records":   result.Total,
			"domains":   len(result.Counts),
			"dry_run":   msg.DryRun,
		}).Info("dataset.command.import.completed")
		if cfg.OnResult != nil {
			cfg.OnResult(result)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[ImportDatasetCommand]{
		commands.WithLogger[ImportDatasetCommand](logger),
		commands.WithOperation[ImportDatasetCommand](importOperation),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ImportDatasetHandler{inner: commands.NewHandler(exec, handlerOpts...)}, nil
}

// Execute satisfies command.Commander[ImportDatasetCommand].
func (h *ImportDatasetHandler) Execute(ctx context.Context, msg ImportDatasetCommand) error {
	return h.inner.Execute(ctx, msg)
}

func filterDomains(records []*content.Record, domains []string) []*content.Record {
	if len(domains) == 0 {
		return records
	}
	out := make([]*content.Record, 0, len(records))
	for _, rec := range records {
		if slices.Contains(domains, rec.Domain) {
			out = append(out, rec)
		}
	}
	return out
}
