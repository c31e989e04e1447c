package commands

import (
	"context"
	"time"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-portal/internal/domain"
	"github.com/goliatone/go-portal/internal/logging"
	"github.com/goliatone/go-portal/pkg/interfaces"
)

// TelemetryStatus is the outcome of one command execution.
type TelemetryStatus string

const (
	TelemetryStatusSuccess      TelemetryStatus = "success"
	TelemetryStatusRejected     TelemetryStatus = "rejected"
	TelemetryStatusFailed       TelemetryStatus = "failed"
	TelemetryStatusContextError TelemetryStatus = "context_error"
)

// TelemetryInfo is handed to the telemetry callback after every execution that got
// past validation. ErrorKind uses the same names as the HTTP error codes.
type TelemetryInfo struct {
	Command   string
	Operation string
	Fields    map[string]any
	Duration  time.Duration
	Error     error
	ErrorKind string
	Status    TelemetryStatus
	Logger    interfaces.Logger
}

// Telemetry observes command outcomes.
type Telemetry[T command.Message] func(ctx context.Context, msg T, info TelemetryInfo)

// DefaultTelemetry logs outcomes. Rejections caused by bad input or missing content
// are warnings; everything else that fails is an error.
func DefaultTelemetry[T command.Message](logger interfaces.Logger) Telemetry[T] {
	if logger == nil {
		logger = logging.NoOp()
	}
	return func(ctx context.Context, _ T, info TelemetryInfo) {
		entry := logging.WithFields(logger.WithContext(ctx), info.Fields)
		args := []any{"duration_ms", info.Duration.Milliseconds()}
		if info.Error != nil {
			args = append(args, "error", info.Error, "error_kind", info.ErrorKind)
		}
		switch info.Status {
		case TelemetryStatusSuccess:
			entry.Info("portal.command.completed", args...)
		case TelemetryStatusRejected:
			entry.Warn("portal.command.rejected", args...)
		case TelemetryStatusContextError:
			entry.Warn("portal.command.interrupted", args...)
		default:
			entry.Error("portal.command.failed", args...)
		}
	}
}

func statusFor(ctx context.Context, err error) TelemetryStatus {
	switch {
	case err == nil && ctx.Err() == nil:
		return TelemetryStatusSuccess
	case err == nil, ctx.Err() != nil && isContextError(err):
		return TelemetryStatusContextError
	case domain.IsInvalidParameter(err), domain.IsNotFound(err):
		return TelemetryStatusRejected
	default:
		return TelemetryStatusFailed
	}
}
