package beverage

import "fmt"

// Condiment is a decorator layer: a fixed label and price added on top of
// whatever it wraps.
type Condiment int

const (
	Mocha Condiment = iota + 1
	Whip
	SoyMilk
)

var condiments = [...]menuItem{
	Mocha:   {"mocha", "Moca", 0.20},
	Whip:    {"whip", "Crema Batida", 0.10},
	SoyMilk: {"soy", "Leche de Soja", 0.15},
}

// Condiments lists every condiment.
var Condiments = []Condiment{Mocha, Whip, SoyMilk}

func (c Condiment) Valid() bool { return c > 0 && int(c) < len(condiments) }

func (c Condiment) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Condiment(%d)", int(c))
	}
	return condiments[c].name
}

func (c Condiment) Label() string {
	if !c.Valid() {
		return ""
	}
	return condiments[c].label
}

func (c Condiment) Price() float64 {
	if !c.Valid() {
		return 0
	}
	return condiments[c].price
}

// Wrap decorates b with this condiment. Condiments off the menu, nil
// beverages and bases off the menu are rejected.
func (c Condiment) Wrap(b Beverage) (*Decorated, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: condiment %s", ErrUnknownVariant, c)
	}
	if err := check(b); err != nil {
		return nil, err
	}
	return &Decorated{inner: b, condiment: c}, nil
}

func check(b Beverage) error {
	switch v := b.(type) {
	case nil:
		return ErrNilBeverage
	case *Decorated:
		if v == nil {
			return ErrNilBeverage
		}
	case Base:
		if !v.Valid() {
			return fmt.Errorf("%w: base %s", ErrUnknownVariant, v)
		}
	}
	return nil
}

// Decorated is a beverage wrapped by one condiment. The wrapped value may
// itself be Decorated, so chains have any depth.
type Decorated struct {
	inner     Beverage
	condiment Condiment
}

// Description appends this layer's label to the wrapped description.
func (d *Decorated) Description() string {
	return d.inner.Description() + ", " + d.condiment.Label()
}

// Cost adds this layer's price to the wrapped cost.
func (d *Decorated) Cost() float64 {
	return d.inner.Cost() + d.condiment.Price()
}

// Unwrap returns the beverage this layer wraps.
func (d *Decorated) Unwrap() Beverage { return d.inner }

func (d *Decorated) Condiment() Condiment { return d.condiment }

func NewMocha(b Beverage) (*Decorated, error)   { return Mocha.Wrap(b) }
func NewWhip(b Beverage) (*Decorated, error)    { return Whip.Wrap(b) }
func NewSoyMilk(b Beverage) (*Decorated, error) { return SoyMilk.Wrap(b) }

// Stack wraps base with each condiment in order; the last one ends up
// outermost. It fails on the first layer Wrap rejects.
func Stack(base Beverage, cs ...Condiment) (Beverage, error) {
	if err := check(base); err != nil {
		return nil, err
	}
	b := base
	for i, c := range cs {
		d, err := c.Wrap(b)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		b = d
	}
	return b, nil
}

// Layers returns the condiments of b from innermost to outermost and the
// undecorated beverage at the bottom of the chain.
func Layers(b Beverage) (Beverage, []Condiment) {
	var cs []Condiment
	for {
		d, ok := b.(*Decorated)
		if !ok {
			break
		}
		cs = append(cs, d.Condiment())
		b = d.Unwrap()
	}
	for i, j := 0, len(cs)-1; i < j; i, j = i+1, j-1 {
		cs[i], cs[j] = cs[j], cs[i]
	}
	return b, cs
}

// ParseCondiment returns the condiment registered under name.
func ParseCondiment(name string) (Condiment, error) {
	for _, c := range Condiments {
		if c.String() == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: condiment %q (valid: %s)", ErrUnknownVariant, name, names(Condiments))
}

// Order parses a base name and condiment names and builds the chain.
func Order(base string, condimentNames ...string) (Beverage, error) {
	b, err := ParseBase(base)
	if err != nil {
		return nil, err
	}
	cs := make([]Condiment, 0, len(condimentNames))
	for _, name := range condimentNames {
		c, err := ParseCondiment(name)
		if err != nil {
			return nil, err
		}
		cs = append(cs, c)
	}
	return Stack(b, cs...)
}
