/*
Package smartenum provides type-safe enumerations backed by full objects.

# Overview

A concrete enum type is an ordinary Go type that embeds Base[V], where V is
the underlying value that identifies each variant (an int code, a string,
...). Each variant is a singleton created once during package
initialization and registered with its type's Registry. Callers look
variants up by value or iterate over all of them. Unlike plain constants,
variants can carry fields and methods.

# Declaring a Type

	type Color struct {
	    smartenum.Base[string]
	    Hex string
	}

	var (
	    Red   = smartenum.New("R", newColor("#ff0000"))
	    Green = smartenum.New("G", newColor("#00ff00"))
	)

	func newColor(hex string) func(smartenum.Base[string]) *Color {
	    return func(b smartenum.Base[string]) *Color {
	        return &Color{Base: b, Hex: hex}
	    }
	}

	// Colors is the registry of every Color variant.
	var Colors = smartenum.For[*Color, string]()

Go runs package-level variable initializers before any init function and
before other packages can use the package, so all variants are registered
before the first external lookup.

A type may define one variant for the absent value with NewNull. It lives in
a slot of its own and is found with GetNull and LookupNull:

	var Unset = smartenum.NewNull(func(b smartenum.Base[int]) *Priority {
	    return &Priority{Base: b}
	})

# Lookup

	c, err := Colors.Get("R")      // Red, nil
	_, err = Colors.Get("B")       // *NotFoundError, errors.Is(err, ErrNotFound)
	c, ok := Colors.Lookup("B")    // nil, false
	for c := range Colors.All() {  // Red, Green
	    ...
	}

# Lifecycle

Registries are created on first use by For, New or NewNull, exactly once per
type, and live for the rest of the process. A registry is open until it is
sealed; sealed registries reject registrations by panicking with a
*RegistrationError that wraps ErrSealed.

By default the first lookup seals the registry. A variant that is still
being registered after lookups began therefore fails loudly instead of
being silently missing. Seal can also be called explicitly, for example
from an init function, and Define runs a whole definition step and seals
at its end. If the definition step panics, the registry is sealed with
what was registered so far and every later Define for the type panics
with the same value. WithSealOnLookup(false) keeps registration open until Seal;
registrations and lookups are still serialized by the registry's lock.

Registering the same value twice replaces the earlier variant. Nothing
checks for that beyond the debug log line.

# Configuration

Process settings are set with Configure or loaded from a file, usually at
the top of main:

	if err := smartenum.ConfigureFromFile("smartenum.yaml"); err != nil {
	    log.Fatal(err)
	}

Registries read the settings on every operation, so the logger, metrics,
tracing and seal-on-lookup settings also reach types whose variants were
registered during package initialization, before main ran. Without
WithLogger, registries log through whatever slog.Default returns at the
time, which follows slog.SetDefault. A registry that is already sealed
stays sealed when seal-on-lookup is turned off later.

See the config package for the file format and the observability package
for the logging, metrics and tracing that the settings control.
*/
package smartenum
