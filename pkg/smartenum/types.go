package smartenum

import (
	"context"
	"fmt"
	"reflect"
	"slices"
	"sync"

	"github.com/randalmurphal/smartenum/pkg/smartenum/observability"
	"github.com/randalmurphal/smartenum/pkg/smartenum/registry"
)

// typeKey identifies a registry by concrete enum type and value type.
type typeKey struct {
	enum  reflect.Type
	value reflect.Type
}

// typeSlot holds one type's registry. once serializes creation per type,
// so first use of one enum type never waits on another.
type typeSlot struct {
	name string
	once sync.Once
	reg  any
}

// types is the process-wide table of enum registries. Entries are added on
// first use and never removed.
var types = registry.New[typeKey, *typeSlot]()

// For returns the registry for enum type E, creating it on first use.
// Every call for the same E returns the same registry, including under
// concurrent first use.
func For[E Variant[V], V comparable]() *Registry[E, V] {
	key := typeKey{enum: reflect.TypeFor[E](), value: reflect.TypeFor[V]()}
	slot := types.GetOrCreate(key, func() *typeSlot {
		return &typeSlot{name: typeName(key.enum)}
	})
	slot.once.Do(func() {
		slot.reg = newRegistry[E, V](slot.name)
	})
	return slot.reg.(*Registry[E, V])
}

// New builds a variant bound to value and registers it with E's registry.
// build wraps the Base into the concrete type:
//
//	var Red = smartenum.New("R", func(b smartenum.Base[string]) *Color {
//	    return &Color{Base: b, Hex: "#ff0000"}
//	})
func New[E Variant[V], V comparable](value V, build func(Base[V]) E) E {
	return For[E, V]().Register(build(Of(value)))
}

// NewNull builds the null variant of E and registers it.
func NewNull[E Variant[V], V comparable](build func(Base[V]) E) E {
	return For[E, V]().Register(build(Null[V]()))
}

// Define runs define once for E's registry and then seals it. It is the
// explicit initialization step for a type: define registers every variant,
// and lookups can rely on the set being complete afterwards.
//
//	var Colors = smartenum.Define(context.Background(), func(r *smartenum.Registry[*Color, string]) {
//	    Red = r.Register(&Color{Base: smartenum.Of("R")})
//	    Green = r.Register(&Color{Base: smartenum.Of("G")})
//	})
//
// Later calls for the same E return the registry without running define.
// When tracing is enabled the step is recorded as a "smartenum.define" span.
//
// If define panics, the registry is sealed with whatever define registered
// so far and the panic is propagated. Later calls for the same E panic with
// the same value.
func Define[E Variant[V], V comparable](ctx context.Context, define func(r *Registry[E, V])) *Registry[E, V] {
	r := For[E, V]()
	r.defineOnce.Do(func() { r.runDefine(ctx, define) })
	if p := r.definePanic; p != nil {
		panic(p)
	}
	return r
}

func (r *Registry[E, V]) runDefine(ctx context.Context, define func(r *Registry[E, V])) {
	spans := r.env().spans
	_, span := spans.StartDefineSpan(ctx, r.name, r.id.String())
	defer func() {
		if p := recover(); p != nil {
			r.definePanic = p
			r.seal("define failed")
			spans.EndDefineSpan(span, r.count(), fmt.Errorf("define panicked: %v", p))
			panic(p)
		}
	}()

	define(r)
	r.seal("define")

	n := r.count()
	spans.EndDefineSpan(span, n, nil)
	observability.LogDefined(r.env().logger, n)
}

// Types returns the names of all enum types that have a registry, sorted.
func Types() []string {
	names := make([]string, 0, types.Len())
	types.Range(func(_ typeKey, slot *typeSlot) bool {
		names = append(names, slot.name)
		return true
	})
	slices.Sort(names)
	return names
}

// typeName returns the import-path-qualified name of t, without pointer
// stars, e.g. "example.com/shop/models.Status". Unnamed types fall back to
// their literal.
func typeName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" || t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}
