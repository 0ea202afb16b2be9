package strategy

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownVariant is returned when a name or value is outside a
	// closed behavior set.
	ErrUnknownVariant = errors.New("unknown variant")
	// ErrMissingBehavior is returned when a behavior category would be
	// left unset.
	ErrMissingBehavior = errors.New("missing behavior")
)

// LookupFlight returns the fly behavior registered under name.
func LookupFlight(name string) (Flight, error) { return lookup("fly behavior", name, Flights) }

// LookupVoice returns the quack behavior registered under name.
func LookupVoice(name string) (Voice, error) { return lookup("quack behavior", name, Voices) }

// LookupDiet returns the eat behavior registered under name.
func LookupDiet(name string) (Diet, error) { return lookup("eat behavior", name, Diets) }

// LookupKind returns the duck kind registered under name.
func LookupKind(name string) (Kind, error) { return lookup("duck kind", name, Kinds) }

func lookup[T fmt.Stringer](category, name string, all []T) (T, error) {
	for _, v := range all {
		if v.String() == name {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: %s %q (valid: %s)", ErrUnknownVariant, category, name, joinNames(all))
}

func joinNames[T fmt.Stringer](all []T) string {
	names := make([]string, len(all))
	for i, v := range all {
		names[i] = v.String()
	}
	return strings.Join(names, ", ")
}

// validator is implemented by the enum behaviors of this package.
type validator interface {
	Valid() bool
}

// checkBehavior rejects nil behaviors and enum values outside their set.
func checkBehavior(category string, b any) error {
	if b == nil {
		return fmt.Errorf("%w: %s", ErrMissingBehavior, category)
	}
	if v, ok := b.(validator); ok && !v.Valid() {
		return fmt.Errorf("%w: %s %v", ErrUnknownVariant, category, b)
	}
	return nil
}

// behaviorName is the label used for a behavior in logs.
func behaviorName(b any) string {
	if s, ok := b.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", b)
}
