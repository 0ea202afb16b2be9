// Package funcs implements the duck behaviors as plain function values
// instead of interface implementations.
package funcs

import (
	"fmt"

	"github.com/olehluchkiv/gopatterns/internal/strategy"
)

type (
	FlyFunc   func() string
	QuackFunc func() string
	EatFunc   func(meal strategy.Meal) string
)

var (
	FlyWithWings FlyFunc = func() string { return strategy.FlyWithWings.Fly() }
	FlyNoWay     FlyFunc = func() string { return strategy.FlyNoWay.Fly() }

	Quack     QuackFunc = func() string { return strategy.Quack.Quack() }
	Squeak    QuackFunc = func() string { return strategy.Squeak.Quack() }
	MuteQuack QuackFunc = func() string { return strategy.MuteQuack.Quack() }

	EatAnything EatFunc = func(meal strategy.Meal) string { return strategy.EatAnything.Eat(meal) }
	PickyEater  EatFunc = func(meal strategy.Meal) string { return strategy.PickyEater.Eat(meal) }
	NoEat       EatFunc = func(meal strategy.Meal) string { return strategy.NoEat.Eat(meal) }
)

// Behaviors holds one function per category.
type Behaviors struct {
	Fly   FlyFunc
	Quack QuackFunc
	Eat   EatFunc
}

// Complete reports which categories are missing.
func (b Behaviors) Complete() error {
	var missing []string
	if b.Fly == nil {
		missing = append(missing, "fly")
	}
	if b.Quack == nil {
		missing = append(missing, "quack")
	}
	if b.Eat == nil {
		missing = append(missing, "eat")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %v", strategy.ErrMissingBehavior, missing)
	}
	return nil
}

// Of converts a composed loadout into function values. Each function
// closes over the interface value, so any FlyBehavior can be used.
func Of(l strategy.Loadout) (Behaviors, error) {
	if err := l.Validate(); err != nil {
		return Behaviors{}, err
	}
	return Behaviors{
		Fly:   l.Fly.Fly,
		Quack: l.Quack.Quack,
		Eat:   l.Eat.Eat,
	}, nil
}
