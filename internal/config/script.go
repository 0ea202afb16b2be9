package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/olehluchkiv/gopatterns/internal/strategy"
)

// Op is one action a scripted duck can take.
type Op string

const (
	OpDisplay  Op = "display"
	OpFly      Op = "fly"
	OpQuack    Op = "quack"
	OpSwim     Op = "swim"
	OpEat      Op = "eat"
	OpSetFly   Op = "set-fly"
	OpSetQuack Op = "set-quack"
	OpSetEat   Op = "set-eat"
)

// Step is a parsed script line. Only the fields for Op are set.
type Step struct {
	Op    Op
	Meal  strategy.Meal
	Fly   strategy.Flight
	Quack strategy.Voice
	Eat   strategy.Diet
}

// ParseStep parses lines such as "fly", "eat grano 3" or "set-quack silent".
func ParseStep(line string) (Step, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Step{}, errors.New("empty step")
	}
	op, args := Op(fields[0]), fields[1:]

	wantArgs := func(lo, hi int) error {
		if len(args) < lo || len(args) > hi {
			return fmt.Errorf("%s takes %d to %d arguments, got %d", op, lo, hi, len(args))
		}
		return nil
	}

	switch op {
	case OpDisplay, OpFly, OpQuack, OpSwim:
		if err := wantArgs(0, 0); err != nil {
			return Step{}, err
		}
		return Step{Op: op}, nil

	case OpEat:
		if err := wantArgs(1, 2); err != nil {
			return Step{}, err
		}
		food, err := strategy.ParseFood(args[0])
		if err != nil {
			return Step{}, err
		}
		meal := strategy.Meal{Food: food}
		if len(args) == 2 {
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 1 {
				return Step{}, fmt.Errorf("portions must be a positive integer, got %q", args[1])
			}
			meal.Portions = n
		}
		return Step{Op: op, Meal: meal}, nil

	case OpSetFly:
		if err := wantArgs(1, 1); err != nil {
			return Step{}, err
		}
		f, err := strategy.LookupFlight(args[0])
		if err != nil {
			return Step{}, err
		}
		return Step{Op: op, Fly: f}, nil

	case OpSetQuack:
		if err := wantArgs(1, 1); err != nil {
			return Step{}, err
		}
		q, err := strategy.LookupVoice(args[0])
		if err != nil {
			return Step{}, err
		}
		return Step{Op: op, Quack: q}, nil

	case OpSetEat:
		if err := wantArgs(1, 1); err != nil {
			return Step{}, err
		}
		e, err := strategy.LookupDiet(args[0])
		if err != nil {
			return Step{}, err
		}
		return Step{Op: op, Eat: e}, nil
	}
	return Step{}, fmt.Errorf("unknown step %q", fields[0])
}

// Apply runs the step against d.
func (s Step) Apply(d *strategy.Duck) error {
	switch s.Op {
	case OpDisplay:
		d.Display()
	case OpFly:
		d.PerformFly()
	case OpQuack:
		d.PerformQuack()
	case OpSwim:
		d.Swim()
	case OpEat:
		d.PerformEat(s.Meal)
	case OpSetFly:
		return d.SetFlyBehavior(s.Fly)
	case OpSetQuack:
		return d.SetQuackBehavior(s.Quack)
	case OpSetEat:
		return d.SetEatBehavior(s.Eat)
	default:
		return fmt.Errorf("unknown step %q", s.Op)
	}
	return nil
}
