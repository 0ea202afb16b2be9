package strategy

import "fmt"

// FlyBehavior produces a duck's flight effect.
type FlyBehavior interface {
	Fly() string
}

// QuackBehavior produces a duck's voice.
type QuackBehavior interface {
	Quack() string
}

// EatBehavior decides what a duck does with a meal.
type EatBehavior interface {
	Eat(meal Meal) string
}

// variant is one row of a behavior table: its registry name and the line
// it prints.
type variant struct {
	name string
	line string
}

// Flight is the closed set of fly behaviors. The zero value is not a
// valid behavior.
type Flight int

const (
	FlyWithWings Flight = iota + 1
	FlyNoWay
)

var flights = [...]variant{
	FlyWithWings: {"flies-with-wings", "¡Estoy volando con alas!"},
	FlyNoWay:     {"cannot-fly", "No puedo volar."},
}

// Flights lists every fly behavior.
var Flights = []Flight{FlyWithWings, FlyNoWay}

func (f Flight) Valid() bool { return f > 0 && int(f) < len(flights) }

func (f Flight) Fly() string {
	if !f.Valid() {
		return ""
	}
	return flights[f].line
}

func (f Flight) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Flight(%d)", int(f))
	}
	return flights[f].name
}

// Voice is the closed set of quack behaviors.
type Voice int

const (
	Quack Voice = iota + 1
	Squeak
	MuteQuack
)

var voices = [...]variant{
	Quack:     {"quacks", "¡Quack, quack!"},
	Squeak:    {"squeaks", "Squeak, squeak!"},
	MuteQuack: {"silent", "<< Silencio >>"},
}

// Voices lists every quack behavior.
var Voices = []Voice{Quack, Squeak, MuteQuack}

func (v Voice) Valid() bool { return v > 0 && int(v) < len(voices) }

func (v Voice) Quack() string {
	if !v.Valid() {
		return ""
	}
	return voices[v].line
}

func (v Voice) String() string {
	if !v.Valid() {
		return fmt.Sprintf("Voice(%d)", int(v))
	}
	return voices[v].name
}

// Diet is the closed set of eat behaviors.
type Diet int

const (
	EatAnything Diet = iota + 1
	PickyEater
	NoEat
)

var diets = [...]string{
	EatAnything: "eats-anything",
	PickyEater:  "picky",
	NoEat:       "eats-nothing",
}

// Diets lists every eat behavior.
var Diets = []Diet{EatAnything, PickyEater, NoEat}

func (d Diet) Valid() bool { return d > 0 && int(d) < len(diets) }

// Eat reports what the duck does with meal. EatAnything and PickyEater
// default to one portion, NoEat to none.
func (d Diet) Eat(meal Meal) string {
	switch d {
	case EatAnything:
		return eating(meal.Food, meal.portionsOr(1))
	case PickyEater:
		if meal.Food != Grain {
			return fmt.Sprintf("No me gusta comer %s.", meal.Food)
		}
		return eating(meal.Food, meal.portionsOr(1))
	case NoEat:
		return "No estoy comiendo nada."
	}
	return ""
}

func (d Diet) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Diet(%d)", int(d))
	}
	return diets[d]
}

func eating(food Food, portions int) string {
	return fmt.Sprintf("Estoy comiendo %d porción(es) de %s.", portions, food)
}
