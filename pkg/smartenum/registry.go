package smartenum

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"reflect"
	"sync"
	"sync/atomic"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"

	"github.com/randalmurphal/smartenum/pkg/smartenum/observability"
)

// slotKey addresses either a keyed value or the null slot.
type slotKey[V comparable] struct {
	value V
	null  bool
}

// Registry holds the variants of one concrete enum type E, keyed by their
// underlying value V. Obtain it with For; there is exactly one per type.
//
// A registry starts open and becomes sealed either explicitly through Seal
// or, by default, on its first lookup. Registering into a sealed registry
// panics. All methods are safe for concurrent use.
type Registry[E Variant[V], V comparable] struct {
	mu      sync.RWMutex
	byValue map[V]E
	null    E
	hasNull bool
	order   []slotKey[V]
	sealed  atomic.Bool

	id   uuid.UUID
	name string
	view atomic.Pointer[registryView]

	defineOnce  sync.Once
	definePanic any
}

// registryView is a registry's resolution of the process settings.
type registryView struct {
	from   *settings
	base   *slog.Logger
	logger *slog.Logger

	metrics      observability.MetricsRecorder
	spans        observability.SpanManager
	sealOnLookup bool
}

func newRegistry[E Variant[V], V comparable](name string) *Registry[E, V] {
	r := &Registry[E, V]{
		byValue: make(map[V]E),
		id:      uuid.New(),
		name:    name,
	}
	observability.LogRegistryCreated(loadSettings().baseLogger(), name, r.id.String())
	return r
}

// env returns the current process settings as seen by r. The enriched
// logger is rebuilt only after Configure or slog.SetDefault.
func (r *Registry[E, V]) env() *registryView {
	s := loadSettings()
	base := s.baseLogger()
	if v := r.view.Load(); v != nil && v.from == s && v.base == base {
		return v
	}
	v := &registryView{
		from:         s,
		base:         base,
		logger:       observability.EnrichLogger(base, r.name, r.id.String()),
		metrics:      s.metrics,
		spans:        s.spans,
		sealOnLookup: s.sealOnLookup,
	}
	r.view.Store(v)
	return v
}

// Name returns the concrete enum type name qualified by its import path,
// e.g. "example.com/app/colors.Color".
func (r *Registry[E, V]) Name() string { return r.name }

// ID returns the unique ID assigned when the registry was created.
func (r *Registry[E, V]) ID() uuid.UUID { return r.id }

// Register adds e under its value and returns it, so variants can be
// declared as package-level vars:
//
//	var Red = smartenum.For[*Color, string]().Register(&Color{Base: smartenum.Of("R")})
//
// A later variant with the same value replaces the earlier one. A null
// variant goes to the null slot, replacing any previous null variant.
//
// Panics with a *RegistrationError wrapping ErrSealed if the registry is
// sealed, and panics if e is a nil pointer.
func (r *Registry[E, V]) Register(e E) E {
	if v := reflect.ValueOf(e); v.Kind() == reflect.Pointer && v.IsNil() {
		panic(fmt.Sprintf("smartenum: cannot register nil %s", r.name))
	}
	b := e.enumBase()
	key := slotKey[V]{value: b.value, null: b.null}
	env := r.env()

	r.mu.Lock()
	if r.sealed.Load() {
		r.mu.Unlock()
		observability.LogRegisterAfterSeal(env.logger, r.display(key))
		panic(&RegistrationError{Type: r.name, Value: r.text(key), Null: key.null, Err: ErrSealed})
	}
	var replaced bool
	if key.null {
		replaced = r.hasNull
		r.null, r.hasNull = e, true
	} else {
		_, replaced = r.byValue[key.value]
		r.byValue[key.value] = e
	}
	if !replaced {
		r.order = append(r.order, key)
	}
	r.mu.Unlock()

	display := r.display(key)
	if replaced {
		observability.LogVariantReplaced(env.logger, display)
	} else {
		observability.LogVariantRegistered(env.logger, display)
	}
	env.metrics.RecordRegistration(context.Background(), r.name, replaced)
	return e
}

// Seal stops further registrations. It is idempotent and returns true if
// this call changed the registry from open to sealed.
func (r *Registry[E, V]) Seal() bool {
	return r.seal("explicit")
}

// Sealed reports whether the registry is sealed.
func (r *Registry[E, V]) Sealed() bool { return r.sealed.Load() }

func (r *Registry[E, V]) seal(reason string) bool {
	// Taking the write lock lets an in-flight Register finish first.
	r.mu.Lock()
	changed := !r.sealed.Swap(true)
	n := len(r.order)
	r.mu.Unlock()

	if changed {
		env := r.env()
		observability.LogSealed(env.logger, n, reason)
		env.metrics.RecordSeal(context.Background(), r.name, n)
	}
	return changed
}

// beginRead seals the registry on first read when seal-on-lookup is on.
func (r *Registry[E, V]) beginRead() {
	if !r.sealed.Load() && r.env().sealOnLookup {
		r.seal("lookup")
	}
}

// Get returns the variant registered under value, or a *NotFoundError.
func (r *Registry[E, V]) Get(value V) (E, error) {
	return r.get(slotKey[V]{value: value})
}

// GetNull returns the null variant, or a *NotFoundError if the type has none.
func (r *Registry[E, V]) GetNull() (E, error) {
	return r.get(slotKey[V]{null: true})
}

// MustGet is like Get but panics with the *NotFoundError.
func (r *Registry[E, V]) MustGet(value V) E {
	e, err := r.Get(value)
	if err != nil {
		panic(err)
	}
	return e
}

// Lookup returns the variant registered under value and whether it exists.
func (r *Registry[E, V]) Lookup(value V) (E, bool) {
	return r.lookup(slotKey[V]{value: value})
}

// LookupNull returns the null variant and whether the type has one.
func (r *Registry[E, V]) LookupNull() (E, bool) {
	return r.lookup(slotKey[V]{null: true})
}

func (r *Registry[E, V]) get(key slotKey[V]) (E, error) {
	e, ok := r.lookup(key)
	if !ok {
		return e, &NotFoundError{Type: r.name, Value: r.text(key), Null: key.null}
	}
	return e, nil
}

func (r *Registry[E, V]) lookup(key slotKey[V]) (E, bool) {
	r.beginRead()

	r.mu.RLock()
	e, ok := r.find(key)
	r.mu.RUnlock()

	env := r.env()
	env.metrics.RecordLookup(context.Background(), r.name, ok)
	if !ok {
		observability.LogLookupMiss(env.logger, r.display(key))
	}
	return e, ok
}

// find must be called with r.mu held.
func (r *Registry[E, V]) find(key slotKey[V]) (E, bool) {
	if key.null {
		return r.null, r.hasNull
	}
	e, ok := r.byValue[key.value]
	return e, ok
}

// Has reports whether a variant is registered under value.
func (r *Registry[E, V]) Has(value V) bool {
	r.beginRead()
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byValue[value]
	return ok
}

// HasNull reports whether the type has a null variant.
func (r *Registry[E, V]) HasNull() bool {
	r.beginRead()
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.hasNull
}

// Len returns the number of registered variants, the null variant included.
func (r *Registry[E, V]) Len() int {
	r.beginRead()
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// All returns the registered variants as a sequence. Each iteration works on
// a snapshot taken when it starts, so the sequence can be ranged over again
// and stays valid while other goroutines use the registry.
//
// Variants are yielded in the order their values were first registered; a
// replacement keeps its predecessor's position. The null variant, if any,
// is yielded like any other.
func (r *Registry[E, V]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, e := range r.snapshot() {
			if !yield(e) {
				return
			}
		}
	}
}

// Values returns the non-null values in first-registration order.
func (r *Registry[E, V]) Values() []V {
	r.beginRead()
	r.mu.RLock()
	defer r.mu.RUnlock()
	values := make([]V, 0, len(r.order))
	for _, k := range r.order {
		if !k.null {
			values = append(values, k.value)
		}
	}
	return values
}

// Set returns the registered variants as a new set.
func (r *Registry[E, V]) Set() mapset.Set[E] {
	return mapset.NewSet(r.snapshot()...)
}

func (r *Registry[E, V]) snapshot() []E {
	r.beginRead()
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]E, 0, len(r.order))
	for _, k := range r.order {
		e, _ := r.find(k)
		out = append(out, e)
	}
	return out
}

// count returns the variant count without sealing.
func (r *Registry[E, V]) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

func (r *Registry[E, V]) text(key slotKey[V]) string {
	if key.null {
		return ""
	}
	return fmt.Sprint(key.value)
}

func (r *Registry[E, V]) display(key slotKey[V]) string {
	return displayValue(r.text(key), key.null)
}
