package datasetcmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-portal/internal/awareness"
	"github.com/goliatone/go-portal/internal/definitions"
	"github.com/goliatone/go-portal/internal/media"
	"github.com/goliatone/go-portal/internal/news"
	"github.com/goliatone/go-portal/internal/procedures"
	"github.com/goliatone/go-portal/internal/protection"
	"github.com/goliatone/go-portal/internal/references"
	"github.com/goliatone/go-portal/internal/standards"
)

const importDatasetMessageType = "portal.dataset.import"

// KnownDomains lists every domain key a dataset may populate.
var KnownDomains = []string{
	news.Domain,
	media.LecturesDomain,
	media.PresentationsDomain,
	definitions.CategoriesDomain,
	definitions.DefinitionsDomain,
	standards.CategoriesDomain,
	standards.StandardsDomain,
	standards.ControlsDomain,
	procedures.ProceduresDomain,
	procedures.ControlsDomain,
	procedures.SafeguardsDomain,
	procedures.TechniquesDomain,
	protection.CategoriesDomain,
	protection.SubCategoriesDomain,
	protection.ControlsDomain,
	protection.StepsDomain,
	references.Domain,
	awareness.Domain,
}

// ImportDatasetCommand loads a directory of Markdown documents into the configured
// store.
type ImportDatasetCommand struct {
	// Directory is the dataset root. Its first-level directories name the domains.
	Directory string `json:"directory"`
	// Domains restricts the import. Empty imports every domain found.
	Domains []string `json:"domains,omitempty"`
	// DryRun parses and reports without writing.
	DryRun bool `json:"dry_run,omitempty"`
}

// Type implements command.Message.
func (ImportDatasetCommand) Type() string { return importDatasetMessageType }

// Validate ensures the directory is present and every domain filter is known.
func (cmd ImportDatasetCommand) Validate() error {
	known := make([]any, 0, len(KnownDomains))
	for _, key := range KnownDomains {
		known = append(known, key)
	}
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("portal.dataset.import.directory_required", "directory is required")
			}
			return nil
		})),
		validation.Field(&cmd.Domains, validation.Each(validation.In(known...).
			ErrorObject(validation.NewError("portal.dataset.import.domain_unknown", "unknown domain")))),
	)
}
