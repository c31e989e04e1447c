package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-portal/internal/domain"
)

const (
	textCodeCommandCancelled = "PORTAL_COMMAND_CANCELLED"
	textCodeCommandTimeout   = "PORTAL_COMMAND_TIMEOUT"
	textCodeCommandFailed    = "PORTAL_COMMAND_FAILED"
)

// invalidCommand classifies a message that failed validation the same way the read
// path classifies bad list queries.
func invalidCommand(err error) error {
	if err == nil {
		return nil
	}
	return domain.InvalidParameter(err)
}

func interruptedCommand(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return goerrors.Wrap(err, goerrors.CategoryCommand, "command deadline exceeded").
			WithTextCode(textCodeCommandTimeout)
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "command cancelled").
		WithTextCode(textCodeCommandCancelled)
}

// failedCommand keeps portal classifications raised by the handler body and tags
// anything else as a command failure.
func failedCommand(err error) error {
	switch {
	case err == nil:
		return nil
	case domain.IsNotFound(err), domain.IsInvalidParameter(err), domain.IsTransportFailure(err):
		return err
	case isContextError(err):
		return interruptedCommand(err)
	case goerrors.IsWrapped(err):
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "command failed").
		WithTextCode(textCodeCommandFailed)
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
