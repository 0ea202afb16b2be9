package coffee

import "fmt"

type Drink interface {
	Cost() float64
	Label() string
}

type Espresso struct{}

func (Espresso) Cost() float64  { return 1.99 }
func (Espresso) Label() string  { return "Espresso" }
func (Espresso) String() string { return "espresso" }

var _ fmt.Stringer = Espresso{}

// Milk wraps another drink.
type Milk struct {
	inner Drink
}

func (m *Milk) Cost() float64 { return m.inner.Cost() + 0.15 }
func (m *Milk) Label() string { return m.inner.Label() + ", Milk" }

// Cup holds whichever drink it is served.
type Cup struct {
	Contents Drink
}

func (c Cup) Serve() string { return "A cup of " + c.Contents.Label() }

// Order only carries a drink around.
type Order struct {
	Table int
	Drink Drink
}
