package strategy

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

const swimLine = "Todos los patos flotan, ¡incluso los señuelos!"

// Loadout holds exactly one behavior per category.
type Loadout struct {
	Fly   FlyBehavior
	Quack QuackBehavior
	Eat   EatBehavior
}

// Validate reports every category that is unset or out of range.
func (l Loadout) Validate() error {
	return errors.Join(
		checkBehavior("fly", l.Fly),
		checkBehavior("quack", l.Quack),
		checkBehavior("eat", l.Eat),
	)
}

// Duck delegates flying, quacking and eating to its current Loadout.
// Every observable effect is a line written to the duck's output.
type Duck struct {
	name    string
	display string
	loadout Loadout
	out     io.Writer
	logger  *slog.Logger
}

// New builds a duck of a built-in kind.
func New(kind Kind, out io.Writer, logger *slog.Logger) (*Duck, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: duck kind %v", ErrUnknownVariant, kind)
	}
	return NewCustom(kind.String(), kind.Display(), kind.Loadout(), out, logger)
}

// NewCustom builds a duck with an arbitrary display line and loadout.
// The loadout must be complete.
func NewCustom(name, display string, loadout Loadout, out io.Writer, logger *slog.Logger) (*Duck, error) {
	if err := loadout.Validate(); err != nil {
		return nil, fmt.Errorf("duck %q: %w", name, err)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Duck{
		name:    name,
		display: display,
		loadout: loadout,
		out:     out,
		logger:  logger,
	}, nil
}

func NewMallard(out io.Writer, logger *slog.Logger) *Duck { return mustNew(Mallard, out, logger) }
func NewRubber(out io.Writer, logger *slog.Logger) *Duck  { return mustNew(Rubber, out, logger) }
func NewDecoy(out io.Writer, logger *slog.Logger) *Duck   { return mustNew(Decoy, out, logger) }

func mustNew(kind Kind, out io.Writer, logger *slog.Logger) *Duck {
	d, err := New(kind, out, logger)
	if err != nil {
		panic(err)
	}
	return d
}

func (d *Duck) Name() string { return d.name }

// Loadout returns the behaviors the duck currently holds.
func (d *Duck) Loadout() Loadout { return d.loadout }

func (d *Duck) Display() { d.say(d.display) }

func (d *Duck) Swim() { d.say(swimLine) }

func (d *Duck) PerformFly() { d.say(d.loadout.Fly.Fly()) }

func (d *Duck) PerformQuack() { d.say(d.loadout.Quack.Quack()) }

func (d *Duck) PerformEat(meal Meal) { d.say(d.loadout.Eat.Eat(meal)) }

// SetFlyBehavior announces the change and then replaces the fly behavior.
// Nothing is written when fb is rejected.
func (d *Duck) SetFlyBehavior(fb FlyBehavior) error {
	if err := checkBehavior("fly", fb); err != nil {
		return fmt.Errorf("duck %q: %w", d.name, err)
	}
	d.say("Cambiando el comportamiento de vuelo...")
	d.logSwap("fly", d.loadout.Fly, fb)
	d.loadout.Fly = fb
	return nil
}

// SetQuackBehavior announces the change and then replaces the quack behavior.
func (d *Duck) SetQuackBehavior(qb QuackBehavior) error {
	if err := checkBehavior("quack", qb); err != nil {
		return fmt.Errorf("duck %q: %w", d.name, err)
	}
	d.say("Cambiando el comportamiento de graznido...")
	d.logSwap("quack", d.loadout.Quack, qb)
	d.loadout.Quack = qb
	return nil
}

// SetEatBehavior announces the change and then replaces the eat behavior.
func (d *Duck) SetEatBehavior(eb EatBehavior) error {
	if err := checkBehavior("eat", eb); err != nil {
		return fmt.Errorf("duck %q: %w", d.name, err)
	}
	d.say("Cambiando el comportamiento de alimentación...")
	d.logSwap("eat", d.loadout.Eat, eb)
	d.loadout.Eat = eb
	return nil
}

func (d *Duck) logSwap(category string, from, to any) {
	d.logger.Debug("behavior changed",
		"duck", d.name,
		"category", category,
		"from", behaviorName(from),
		"to", behaviorName(to),
	)
}

func (d *Duck) say(line string) {
	_, _ = fmt.Fprintln(d.out, line)
}
