package smartenum

import (
	"log/slog"
	"os"
	"sync"
	"sync/atomic"

	"github.com/randalmurphal/smartenum/pkg/smartenum/config"
	"github.com/randalmurphal/smartenum/pkg/smartenum/observability"
)

// settings are the process defaults. Registries read them on every
// operation, so Configure reaches registries that already exist.
type settings struct {
	logger       *slog.Logger
	loggerSet    bool
	metrics      observability.MetricsRecorder
	spans        observability.SpanManager
	sealOnLookup bool
}

func defaultSettings() settings {
	return settings{
		metrics:      observability.NoopMetrics{},
		spans:        observability.NoopSpanManager{},
		sealOnLookup: true,
	}
}

var (
	settingsMu sync.Mutex
	current    atomic.Pointer[settings]
	defaults   = defaultSettings()
)

// loadSettings returns the settings in effect. The result must not be
// modified; Configure replaces it instead.
func loadSettings() *settings {
	if s := current.Load(); s != nil {
		return s
	}
	return &defaults
}

// baseLogger returns the configured logger, or slog.Default() at the time of
// the call when none was set.
func (s *settings) baseLogger() *slog.Logger {
	if !s.loggerSet {
		return slog.Default()
	}
	return s.logger
}

// Option modifies the process defaults.
type Option func(*settings)

// WithLogger sets the registry logger. nil disables logging.
// Default: whatever slog.Default() returns when the registry logs.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
		s.loggerSet = true
	}
}

// WithMetrics sets the metrics recorder. nil restores the no-op recorder.
func WithMetrics(m observability.MetricsRecorder) Option {
	return func(s *settings) {
		if m == nil {
			m = observability.NoopMetrics{}
		}
		s.metrics = m
	}
}

// WithSpanManager sets the span manager used by Define. nil restores the
// no-op manager.
func WithSpanManager(m observability.SpanManager) Option {
	return func(s *settings) {
		if m == nil {
			m = observability.NoopSpanManager{}
		}
		s.spans = m
	}
}

// WithSealOnLookup controls whether the first lookup seals a registry.
// Default: true.
//
// With false, registrations stay open until Seal is called. They remain
// serialized against lookups, but a lookup may run before every variant of
// the type has been registered. Registries that are already sealed stay
// sealed.
func WithSealOnLookup(enabled bool) Option {
	return func(s *settings) {
		s.sealOnLookup = enabled
	}
}

// Configure applies opts to the process defaults, typically from main or
// TestMain. Every registry picks the new settings up on its next operation,
// including registries whose variants were declared as package-level vars
// and therefore exist before main runs. Only the "enum registry created" log
// line is emitted with the settings in effect at creation.
func Configure(opts ...Option) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	next := *loadSettings()
	for _, opt := range opts {
		opt(&next)
	}
	current.Store(&next)
}

// ConfigureFromSettings applies file-based settings. Logging goes to stderr
// with a text handler at the configured level when a level is set.
func ConfigureFromSettings(s config.Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	level, enabled, _ := s.Level()

	opts := []Option{WithSealOnLookup(s.SealOnLookup)}
	switch {
	case !enabled:
		opts = append(opts, WithLogger(nil))
	case s.LogLevel != "":
		opts = append(opts, WithLogger(slog.New(
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
		)))
	}
	if s.Metrics {
		opts = append(opts, WithMetrics(observability.NewMetricsRecorder()))
	} else {
		opts = append(opts, WithMetrics(nil))
	}
	if s.Tracing {
		opts = append(opts, WithSpanManager(observability.NewSpanManager()))
	} else {
		opts = append(opts, WithSpanManager(nil))
	}

	Configure(opts...)
	return nil
}

// ConfigureFromFile loads settings from a YAML or JSON file and applies them.
func ConfigureFromFile(path string) error {
	s, err := config.Load(path)
	if err != nil {
		return err
	}
	return ConfigureFromSettings(s)
}
