// Package enumtest declares enum types the way applications do, as
// package-level vars, so tests can configure smartenum only after the
// variants already exist.
package enumtest

import "github.com/randalmurphal/smartenum/pkg/smartenum"

// Shade is a lightness level.
type Shade struct {
	smartenum.Base[string]
	Percent int
}

func shade(percent int) func(smartenum.Base[string]) *Shade {
	return func(b smartenum.Base[string]) *Shade {
		return &Shade{Base: b, Percent: percent}
	}
}

var (
	Light = smartenum.New("L", shade(80))
	Dark  = smartenum.New("D", shade(20))
)

// Shades is the registry of every Shade.
var Shades = smartenum.For[*Shade, string]()

// Add registers a shade after initialization.
func Add(value string, percent int) *Shade {
	return smartenum.New(value, shade(percent))
}
