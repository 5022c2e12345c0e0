package smartenum

// Base carries the underlying value of a variant. Concrete enum types embed
// it; the value is fixed when the Base is built with Of or Null and cannot
// change afterwards.
//
//	type Color struct {
//	    smartenum.Base[string]
//	    Hex string
//	}
type Base[V comparable] struct {
	value V
	null  bool
}

// Of returns a Base bound to value.
func Of[V comparable](value V) Base[V] {
	return Base[V]{value: value}
}

// Null returns a Base for the variant that stands for an absent value.
// A type has at most one such variant, kept apart from all keyed values.
func Null[V comparable]() Base[V] {
	return Base[V]{null: true}
}

// Value returns the underlying value. It is the zero V for a null variant.
func (b Base[V]) Value() V { return b.value }

// IsNull reports whether the variant was registered under the null value.
func (b Base[V]) IsNull() bool { return b.null }

func (b Base[V]) enumBase() Base[V] { return b }

// Enum is implemented by every type that embeds Base[V]. The unexported
// method keeps types that merely have Value and IsNull methods out.
type Enum[V comparable] interface {
	Value() V
	IsNull() bool
	enumBase() Base[V]
}

// Variant constrains the concrete enum type parameter of a Registry.
// Pointer types like *Color satisfy it as long as Color embeds Base[V].
type Variant[V comparable] interface {
	comparable
	Enum[V]
}
