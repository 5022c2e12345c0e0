// Package observability provides logging, metrics, and tracing for smartenum
// registries.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// Every helper accepts a nil logger, and metrics and tracing have no-op
// implementations for when they are disabled.
package observability

import (
	"log/slog"
)

// EnrichLogger returns logger with the enum type and registry ID attached.
func EnrichLogger(logger *slog.Logger, enumType, registryID string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("enum_type", enumType),
		slog.String("registry_id", registryID),
	)
}

// LogRegistryCreated logs the lazy creation of a type's registry.
func LogRegistryCreated(logger *slog.Logger, enumType, registryID string) {
	if logger == nil {
		return
	}
	logger.Debug("enum registry created",
		slog.String("enum_type", enumType),
		slog.String("registry_id", registryID),
	)
}

// LogVariantRegistered logs a new variant.
func LogVariantRegistered(logger *slog.Logger, value string) {
	if logger == nil {
		return
	}
	logger.Debug("enum variant registered",
		slog.String("value", value),
	)
}

// LogVariantReplaced logs a registration that overwrote an earlier variant
// with the same value.
func LogVariantReplaced(logger *slog.Logger, value string) {
	if logger == nil {
		return
	}
	logger.Debug("enum variant replaced",
		slog.String("value", value),
	)
}

// LogSealed logs the transition of a registry to the sealed phase.
func LogSealed(logger *slog.Logger, variants int, reason string) {
	if logger == nil {
		return
	}
	logger.Debug("enum registry sealed",
		slog.Int("variants", variants),
		slog.String("reason", reason),
	)
}

// LogLookupMiss logs a lookup for a value with no variant.
func LogLookupMiss(logger *slog.Logger, value string) {
	if logger == nil {
		return
	}
	logger.Debug("enum lookup miss",
		slog.String("value", value),
	)
}

// LogRegisterAfterSeal logs a rejected registration. The caller panics
// right after, so this is the last trace of the attempt.
func LogRegisterAfterSeal(logger *slog.Logger, value string) {
	if logger == nil {
		return
	}
	logger.Error("enum variant registered after seal",
		slog.String("value", value),
	)
}

// LogDefined logs completion of an explicit Define step.
func LogDefined(logger *slog.Logger, variants int) {
	if logger == nil {
		return
	}
	logger.Info("enum defined",
		slog.Int("variants", variants),
	)
}
