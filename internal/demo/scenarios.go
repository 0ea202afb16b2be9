package demo

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/olehluchkiv/gopatterns/internal/beverage"
	"github.com/olehluchkiv/gopatterns/internal/config"
	"github.com/olehluchkiv/gopatterns/internal/strategy"
	"github.com/olehluchkiv/gopatterns/internal/strategy/funcs"
)

func runStrategy(w io.Writer, logger *slog.Logger) error {
	decoy := strategy.NewDecoy(w, logger)
	decoy.Display()
	decoy.PerformFly()
	if err := decoy.SetFlyBehavior(strategy.FlyWithWings); err != nil {
		return err
	}
	decoy.PerformFly()
	if err := decoy.SetFlyBehavior(strategy.FlyNoWay); err != nil {
		return err
	}
	decoy.PerformFly()

	mallard := strategy.NewMallard(w, logger)
	mallard.Display()
	mallard.PerformFly()
	mallard.PerformQuack()
	if err := errors.Join(
		mallard.SetQuackBehavior(strategy.MuteQuack),
		mallard.SetFlyBehavior(strategy.FlyNoWay),
	); err != nil {
		return err
	}
	mallard.PerformQuack()
	mallard.PerformFly()
	mallard.PerformEat(strategy.Meal{Food: strategy.Bread})
	mallard.PerformEat(strategy.Meal{Food: strategy.Grain, Portions: 3})

	rubber := strategy.NewRubber(w, logger)
	rubber.Display()
	rubber.PerformFly()
	rubber.PerformQuack()
	rubber.PerformEat(strategy.Meal{Food: strategy.Seed})
	rubber.Swim()
	return nil
}

func runFunctional(w io.Writer, logger *slog.Logger) error {
	mallard, err := funcs.New(strategy.Mallard, w, logger)
	if err != nil {
		return err
	}
	mallard.Display()
	mallard.PerformFly()
	mallard.PerformQuack()
	// Same underlying type, so the silent quack doubles as a flight.
	if err := mallard.SetFlyBehavior(funcs.FlyFunc(funcs.MuteQuack)); err != nil {
		return err
	}
	mallard.PerformFly()
	mallard.PerformEat(strategy.Meal{Food: strategy.Grain, Portions: 3})
	mallard.PerformEat(strategy.Meal{Food: strategy.Bread})

	rubber, err := funcs.New(strategy.Rubber, w, logger)
	if err != nil {
		return err
	}
	rubber.Display()
	rubber.PerformFly()
	rubber.PerformQuack()
	rubber.PerformEat(strategy.Meal{Food: strategy.Seed})
	return nil
}

func runDecorator(w io.Writer, _ *slog.Logger) error {
	house, err := beverage.Stack(beverage.HouseBlend, beverage.Mocha, beverage.Whip)
	if err != nil {
		return err
	}
	soy, err := beverage.Stack(beverage.HouseBlend, beverage.SoyMilk, beverage.Mocha, beverage.Whip)
	if err != nil {
		return err
	}

	for _, b := range []beverage.Beverage{beverage.Espresso, house, soy} {
		if _, err := fmt.Fprintln(w, beverage.Receipt(b)); err != nil {
			return err
		}
	}
	return nil
}

// Custom turns a resolved config into a scenario named "custom": each duck
// runs its script, then each order prints its receipt.
func Custom(plan *config.Plan) Scenario {
	return Scenario{
		Name:    "custom",
		Summary: fmt.Sprintf("%d ducks and %d orders from config", len(plan.Ducks), len(plan.Orders)),
		Run: func(w io.Writer, logger *slog.Logger) error {
			for _, dp := range plan.Ducks {
				d, err := strategy.NewCustom(dp.Name, dp.Display, dp.Loadout, w, logger)
				if err != nil {
					return err
				}
				for i, step := range dp.Script {
					if err := step.Apply(d); err != nil {
						return fmt.Errorf("duck %s step %d: %w", dp.Name, i, err)
					}
				}
			}
			for _, op := range plan.Orders {
				logger.Debug("order priced", "order", op.Name, "cost", op.Beverage.Cost())
				if _, err := fmt.Fprintln(w, beverage.Receipt(op.Beverage)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
