package content

import (
	"github.com/goliatone/go-portal/internal/logging"
	"github.com/goliatone/go-portal/pkg/interfaces"
)

// Dependencies carries what every domain service needs to bind its repositories.
type Dependencies struct {
	Store   Store
	Logger  interfaces.LoggerProvider
	Options []RepositoryOption
}

// Bind builds the repository and service for one content domain. resource names the
// entity in NotFound errors; the repository logs under portal.<domainKey>.
func Bind[T any](deps Dependencies, domainKey, resource string, decode Decoder[T]) *Service[T] {
	opts := make([]RepositoryOption, 0, len(deps.Options)+1)
	opts = append(opts, WithRepositoryLogger(logging.DomainLogger(deps.Logger, domainKey)))
	opts = append(opts, deps.Options...)
	return NewService(NewRepository(deps.Store, domainKey, decode, opts...), resource)
}
