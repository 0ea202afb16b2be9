// Package beverage prices drinks built from a base and any stack of
// condiment decorators.
package beverage

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownVariant is returned for base or condiment names outside the menu.
var ErrUnknownVariant = errors.New("unknown variant")

// ErrNilBeverage is returned when a condiment is asked to wrap nothing.
var ErrNilBeverage = errors.New("nil beverage")

type Describable interface {
	Description() string
}

type Priceable interface {
	Cost() float64
}

// Beverage is anything that can be described and priced, whether a base
// drink or a decorated one.
type Beverage interface {
	Describable
	Priceable
}

type menuItem struct {
	name  string
	label string
	price float64
}

// Base is a drink that wraps nothing.
type Base int

const (
	Espresso Base = iota + 1
	HouseBlend
)

var bases = [...]menuItem{
	Espresso:   {"espresso", "Espresso", 1.99},
	HouseBlend: {"house-blend", "Café de la Casa", 0.89},
}

// Bases lists every base drink.
var Bases = []Base{Espresso, HouseBlend}

func (b Base) Valid() bool { return b > 0 && int(b) < len(bases) }

func (b Base) Description() string {
	if !b.Valid() {
		return ""
	}
	return bases[b].label
}

func (b Base) Cost() float64 {
	if !b.Valid() {
		return 0
	}
	return bases[b].price
}

func (b Base) String() string {
	if !b.Valid() {
		return fmt.Sprintf("Base(%d)", int(b))
	}
	return bases[b].name
}

// Receipt formats a beverage as "<description> $<cost>" with two decimals.
func Receipt(b Beverage) string {
	return fmt.Sprintf("%s $%.2f", b.Description(), b.Cost())
}

// ParseBase returns the base registered under name.
func ParseBase(name string) (Base, error) {
	for _, b := range Bases {
		if b.String() == name {
			return b, nil
		}
	}
	return 0, fmt.Errorf("%w: base %q (valid: %s)", ErrUnknownVariant, name, names(Bases))
}

func names[T fmt.Stringer](all []T) string {
	out := make([]string, len(all))
	for i, v := range all {
		out[i] = v.String()
	}
	return strings.Join(out, ", ")
}
