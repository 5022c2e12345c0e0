package smartenum_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/randalmurphal/smartenum/pkg/smartenum"
)

type Planet struct {
	smartenum.Base[int]
	Name string
}

func planet(name string) func(smartenum.Base[int]) *Planet {
	return func(b smartenum.Base[int]) *Planet {
		return &Planet{Base: b, Name: name}
	}
}

var (
	Mercury = smartenum.New(1, planet("Mercury"))
	Venus   = smartenum.New(2, planet("Venus"))
	Earth   = smartenum.New(3, planet("Earth"))
)

var Planets = smartenum.For[*Planet, int]()

func ExampleNew() {
	p, err := Planets.Get(3)
	fmt.Println(p.Name, err)

	_, err = Planets.Get(9)
	fmt.Println(err)
	fmt.Println(errors.Is(err, smartenum.ErrNotFound))

	for p := range Planets.All() {
		fmt.Println(p.Value(), p.Name)
	}
	// Output:
	// Earth <nil>
	// github.com/randalmurphal/smartenum/pkg/smartenum_test.Planet: no variant for value 9
	// true
	// 1 Mercury
	// 2 Venus
	// 3 Earth
}

type Answer struct {
	smartenum.Base[string]
}

func ExampleNewNull() {
	yes := smartenum.New("y", func(b smartenum.Base[string]) *Answer { return &Answer{b} })
	skipped := smartenum.NewNull(func(b smartenum.Base[string]) *Answer { return &Answer{b} })
	answers := smartenum.For[*Answer, string]()

	a, _ := answers.GetNull()
	fmt.Println(a == skipped, a.IsNull())

	a, ok := answers.Lookup("y")
	fmt.Println(a == yes, ok)

	_, ok = answers.Lookup("n")
	fmt.Println(ok)
	// Output:
	// true true
	// true true
	// false
}

type Direction struct {
	smartenum.Base[string]
	DX, DY int
}

var North, South *Direction

func ExampleDefine() {
	directions := smartenum.Define(context.Background(), func(r *smartenum.Registry[*Direction, string]) {
		North = r.Register(&Direction{Base: smartenum.Of("N"), DY: 1})
		South = r.Register(&Direction{Base: smartenum.Of("S"), DY: -1})
	})

	d := directions.MustGet("S")
	fmt.Println(d == South, d.DY)
	fmt.Println(directions.Sealed(), directions.Len())
	// Output:
	// true -1
	// true 2
}
