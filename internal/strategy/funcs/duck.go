package funcs

import (
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"runtime"

	"github.com/olehluchkiv/gopatterns/internal/strategy"
)

var kindBehaviors = map[strategy.Kind]Behaviors{
	strategy.Mallard: {Fly: FlyWithWings, Quack: Quack, Eat: PickyEater},
	strategy.Rubber:  {Fly: FlyNoWay, Quack: Squeak, Eat: NoEat},
	strategy.Decoy:   {Fly: FlyNoWay, Quack: MuteQuack, Eat: NoEat},
}

// Duck calls whichever functions it currently holds.
type Duck struct {
	name      string
	display   string
	behaviors Behaviors
	out       io.Writer
	logger    *slog.Logger
}

// New builds a duck of a built-in kind wired with this package's
// function values.
func New(kind strategy.Kind, out io.Writer, logger *slog.Logger) (*Duck, error) {
	b, ok := kindBehaviors[kind]
	if !ok {
		return nil, fmt.Errorf("%w: duck kind %v", strategy.ErrUnknownVariant, kind)
	}
	return NewCustom(kind.String(), kind.Display(), b, out, logger)
}

func NewCustom(name, display string, b Behaviors, out io.Writer, logger *slog.Logger) (*Duck, error) {
	if err := b.Complete(); err != nil {
		return nil, fmt.Errorf("duck %q: %w", name, err)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Duck{name: name, display: display, behaviors: b, out: out, logger: logger}, nil
}

func (d *Duck) Name() string { return d.name }

func (d *Duck) Display() { d.say(d.display) }

func (d *Duck) Swim() { d.say("Todos los patos flotan, ¡incluso los señuelos!") }

func (d *Duck) PerformFly() { d.say(d.behaviors.Fly()) }

func (d *Duck) PerformQuack() { d.say(d.behaviors.Quack()) }

func (d *Duck) PerformEat(meal strategy.Meal) { d.say(d.behaviors.Eat(meal)) }

func (d *Duck) SetFlyBehavior(fb FlyFunc) error {
	if fb == nil {
		return fmt.Errorf("duck %q: %w: fly", d.name, strategy.ErrMissingBehavior)
	}
	d.say("Cambiando el comportamiento de vuelo...")
	d.logSwap("fly", d.behaviors.Fly, fb)
	d.behaviors.Fly = fb
	return nil
}

func (d *Duck) SetQuackBehavior(qb QuackFunc) error {
	if qb == nil {
		return fmt.Errorf("duck %q: %w: quack", d.name, strategy.ErrMissingBehavior)
	}
	d.say("Cambiando el comportamiento de graznido...")
	d.logSwap("quack", d.behaviors.Quack, qb)
	d.behaviors.Quack = qb
	return nil
}

func (d *Duck) SetEatBehavior(eb EatFunc) error {
	if eb == nil {
		return fmt.Errorf("duck %q: %w: eat", d.name, strategy.ErrMissingBehavior)
	}
	d.say("Cambiando el comportamiento de alimentación...")
	d.logSwap("eat", d.behaviors.Eat, eb)
	d.behaviors.Eat = eb
	return nil
}

func (d *Duck) logSwap(category string, from, to any) {
	d.logger.Debug("behavior changed",
		"duck", d.name,
		"category", category,
		"from", funcName(from),
		"to", funcName(to),
	)
}

// funcName names f after the package variable it shares code with, so a
// converted MuteQuack still reads "silent". Other functions go by their
// runtime symbol.
func funcName(f any) string {
	ptr := reflect.ValueOf(f).Pointer()
	for _, k := range known {
		if reflect.ValueOf(k.fn).Pointer() == ptr {
			return k.name
		}
	}
	if fn := runtime.FuncForPC(ptr); fn != nil {
		return fn.Name()
	}
	return fmt.Sprintf("%p", f)
}

var known = []struct {
	name string
	fn   any
}{
	{strategy.FlyWithWings.String(), FlyWithWings},
	{strategy.FlyNoWay.String(), FlyNoWay},
	{strategy.Quack.String(), Quack},
	{strategy.Squeak.String(), Squeak},
	{strategy.MuteQuack.String(), MuteQuack},
	{strategy.EatAnything.String(), EatAnything},
	{strategy.PickyEater.String(), PickyEater},
	{strategy.NoEat.String(), NoEat},
}

func (d *Duck) say(line string) {
	_, _ = fmt.Fprintln(d.out, line)
}
