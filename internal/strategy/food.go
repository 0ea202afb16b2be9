package strategy

// Food is what a duck can be offered.
type Food string

const (
	Grain Food = "grano"
	Bread Food = "pan"
	Seed  Food = "semilla"
)

func (f Food) String() string { return string(f) }

// Foods lists every known food in declaration order.
var Foods = []Food{Grain, Bread, Seed}

// ParseFood maps a food name to its Food value.
func ParseFood(s string) (Food, error) { return lookup("food", s, Foods) }

// Meal is the argument to an eat behavior. Portions <= 0 means the caller
// did not say how much, and the behavior picks its own default.
type Meal struct {
	Food     Food
	Portions int
}

// portionsOr returns m.Portions, or def when no quantity was given.
func (m Meal) portionsOr(def int) int {
	if m.Portions <= 0 {
		return def
	}
	return m.Portions
}
