package smartenum

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/randalmurphal/smartenum/pkg/smartenum/observability"
)

const pkgPath = "github.com/randalmurphal/smartenum/pkg/smartenum"

// qualified returns the registry name of a type declared in this package.
func qualified(name string) string {
	return pkgPath + "." + name
}

// withSettings applies opts for the duration of the test.
func withSettings(t *testing.T, opts ...Option) {
	t.Helper()
	settingsMu.Lock()
	saved := current.Load()
	settingsMu.Unlock()
	t.Cleanup(func() {
		settingsMu.Lock()
		current.Store(saved)
		settingsMu.Unlock()
	})
	Configure(opts...)
}

// withDefaultLogger replaces slog.Default for the duration of the test and
// returns the buffer it writes JSON records to.
func withDefaultLogger(t *testing.T) *bytes.Buffer {
	t.Helper()
	saved := slog.Default()
	t.Cleanup(func() { slog.SetDefault(saved) })
	buf := &bytes.Buffer{}
	slog.SetDefault(slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return buf
}

// captureLogs routes registry logging into a buffer at debug level.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	h := slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	withSettings(t, WithLogger(slog.New(h)))
	return buf
}

func logRecords(buf *bytes.Buffer) []map[string]any {
	var records []map[string]any
	for _, line := range bytes.Split(buf.Bytes(), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal(line, &m); err == nil {
			records = append(records, m)
		}
	}
	return records
}

func messages(buf *bytes.Buffer) []string {
	var msgs []string
	for _, r := range logRecords(buf) {
		msgs = append(msgs, r["msg"].(string))
	}
	return msgs
}

// fakeMetrics counts recorder calls.
type fakeMetrics struct {
	mu            sync.Mutex
	registrations int
	replacements  int
	hits          int
	misses        int
	seals         int
	sealedWith    int
}

var _ observability.MetricsRecorder = (*fakeMetrics)(nil)

func (m *fakeMetrics) RecordRegistration(_ context.Context, _ string, replaced bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.registrations++
	if replaced {
		m.replacements++
	}
}

func (m *fakeMetrics) RecordLookup(_ context.Context, _ string, found bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if found {
		m.hits++
	} else {
		m.misses++
	}
}

func (m *fakeMetrics) RecordSeal(_ context.Context, _ string, variants int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seals++
	m.sealedWith = variants
}

// fakeSpans records Define spans.
type fakeSpans struct {
	started  []string
	ended    int
	variants int
	err      error
}

var _ observability.SpanManager = (*fakeSpans)(nil)

func (f *fakeSpans) StartDefineSpan(ctx context.Context, enumType, _ string) (context.Context, trace.Span) {
	f.started = append(f.started, enumType)
	return ctx, noop.Span{}
}

func (f *fakeSpans) EndDefineSpan(_ trace.Span, variants int, err error) {
	f.ended++
	f.variants = variants
	f.err = err
}

// recoverPanic runs fn and returns the recovered panic value.
func recoverPanic(fn func()) (p any) {
	defer func() { p = recover() }()
	fn()
	return nil
}
