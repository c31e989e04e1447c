package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-portal/pkg/interfaces"
)

const (
	rootModule     = "portal"
	modulePrefix   = rootModule + "."
	storeModule    = "portal.store"
	upstreamModule = "portal.upstream"
	datasetModule  = "portal.dataset"
	httpModule     = "portal.http"
	queryModule    = "portal.query"
)

const (
	fieldDomain    = "domain"
	fieldOperation = "operation"
	fieldDataset   = "dataset_path"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The module identifier is attached
// as a structured field.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	module = ModuleName(module)

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		return fieldsLogger.WithFields(map[string]any{
			"module": module,
		})
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// ModuleName qualifies a bare module or domain name with the portal prefix.
func ModuleName(name string) string {
	trimmed := strings.TrimSpace(name)
	switch {
	case trimmed == "", trimmed == rootModule:
		return rootModule
	case strings.HasPrefix(trimmed, modulePrefix):
		return trimmed
	default:
		return modulePrefix + trimmed
	}
}

// DomainLogger returns the logger for a content domain, e.g. portal.news.
func DomainLogger(provider interfaces.LoggerProvider, domainKey string) interfaces.Logger {
	logger := ModuleLogger(provider, domainKey)
	return WithFields(logger, map[string]any{fieldDomain: domainKey})
}

// StoreLogger returns the logger namespace reserved for data stores.
func StoreLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, storeModule)
}

// UpstreamLogger returns the logger namespace reserved for the upstream API client.
func UpstreamLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, upstreamModule)
}

// DatasetLogger returns the logger namespace reserved for dataset imports.
func DatasetLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, datasetModule)
}

// HTTPLogger returns the logger namespace reserved for the read API.
func HTTPLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, httpModule)
}

// QueryLogger returns the logger namespace reserved for view-model resources.
func QueryLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, queryModule)
}

// WithOperation tags a logger with the operation being executed. Empty values are
// ignored.
func WithOperation(logger interfaces.Logger, operation string) interfaces.Logger {
	if trimmed := strings.TrimSpace(operation); trimmed != "" {
		return WithFields(logger, map[string]any{fieldOperation: trimmed})
	}
	return logger
}

// WithDatasetContext enriches a logger with the dataset file being imported.
func WithDatasetContext(logger interfaces.Logger, path, domainKey string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(path); trimmed != "" {
		fields[fieldDataset] = trimmed
	}
	if trimmed := strings.TrimSpace(domainKey); trimmed != "" {
		fields[fieldDomain] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
