// Package config loads user-defined ducks and beverage orders from YAML
// and resolves every name against the closed behavior and menu sets.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/olehluchkiv/gopatterns/internal/beverage"
	"github.com/olehluchkiv/gopatterns/internal/strategy"
)

// EnvPrefix prefixes environment variables that override file settings.
const EnvPrefix = "GOPATTERNS"

// ErrInvalid marks every validation failure found in a config file.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	LogLevel string        `mapstructure:"log_level"`
	Ducks    []DuckConfig  `mapstructure:"ducks"`
	Orders   []OrderConfig `mapstructure:"orders"`
}

// DuckConfig describes one duck. With Kind set, the kind supplies the
// display line and behaviors and the other fields override them. Without
// it, all three behaviors are required.
type DuckConfig struct {
	Name    string   `mapstructure:"name"`
	Kind    string   `mapstructure:"kind"`
	Display string   `mapstructure:"display"`
	Fly     string   `mapstructure:"fly"`
	Quack   string   `mapstructure:"quack"`
	Eat     string   `mapstructure:"eat"`
	Script  []string `mapstructure:"script"`
}

type OrderConfig struct {
	Name       string   `mapstructure:"name"`
	Base       string   `mapstructure:"base"`
	Condiments []string `mapstructure:"condiments"`
}

// Load reads the YAML file at path. GOPATTERNS_* environment variables
// override scalar settings.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetDefault("log_level", "info")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config %s: %w", path, err)
	}
	return &cfg, nil
}

// Plan is a validated config: every name resolved to a value.
type Plan struct {
	Ducks  []DuckPlan
	Orders []OrderPlan
}

type DuckPlan struct {
	Name    string
	Display string
	Loadout strategy.Loadout
	Script  []Step
}

type OrderPlan struct {
	Name     string
	Beverage beverage.Beverage
}

// Resolve validates the whole config and reports every problem at once.
func (c *Config) Resolve() (*Plan, error) {
	var (
		plan Plan
		errs []error
	)
	for i, dc := range c.Ducks {
		dp, err := dc.resolve(fmt.Sprintf("ducks[%d]", i))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		plan.Ducks = append(plan.Ducks, dp)
	}
	for i, oc := range c.Orders {
		op, err := oc.resolve(fmt.Sprintf("orders[%d]", i))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		plan.Orders = append(plan.Orders, op)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return &plan, nil
}

func invalid(where string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrInvalid, where, err)
}

func (dc DuckConfig) resolve(where string) (DuckPlan, error) {
	var errs []error
	if dc.Name == "" {
		errs = append(errs, invalid(where+".name", errors.New("required")))
	}

	dp := DuckPlan{Name: dc.Name, Display: dc.Display}
	if dc.Kind != "" {
		kind, err := strategy.LookupKind(dc.Kind)
		if err != nil {
			errs = append(errs, invalid(where+".kind", err))
		} else {
			dp.Loadout = kind.Loadout()
			if dp.Display == "" {
				dp.Display = kind.Display()
			}
		}
	}

	if dc.Fly != "" {
		f, err := strategy.LookupFlight(dc.Fly)
		if err != nil {
			errs = append(errs, invalid(where+".fly", err))
		} else {
			dp.Loadout.Fly = f
		}
	}
	if dc.Quack != "" {
		q, err := strategy.LookupVoice(dc.Quack)
		if err != nil {
			errs = append(errs, invalid(where+".quack", err))
		} else {
			dp.Loadout.Quack = q
		}
	}
	if dc.Eat != "" {
		e, err := strategy.LookupDiet(dc.Eat)
		if err != nil {
			errs = append(errs, invalid(where+".eat", err))
		} else {
			dp.Loadout.Eat = e
		}
	}

	// Only report missing categories when nothing else went wrong; a bad
	// name already explains why its category is empty.
	if len(errs) == 0 {
		if err := dp.Loadout.Validate(); err != nil {
			errs = append(errs, invalid(where, err))
		}
	}

	for i, line := range dc.Script {
		step, err := ParseStep(line)
		if err != nil {
			errs = append(errs, invalid(fmt.Sprintf("%s.script[%d]", where, i), err))
			continue
		}
		dp.Script = append(dp.Script, step)
	}

	if len(errs) > 0 {
		return DuckPlan{}, errors.Join(errs...)
	}
	return dp, nil
}

func (oc OrderConfig) resolve(where string) (OrderPlan, error) {
	var errs []error
	base, err := beverage.ParseBase(oc.Base)
	if err != nil {
		errs = append(errs, invalid(where+".base", err))
	}
	cs := make([]beverage.Condiment, 0, len(oc.Condiments))
	for i, name := range oc.Condiments {
		c, err := beverage.ParseCondiment(name)
		if err != nil {
			errs = append(errs, invalid(fmt.Sprintf("%s.condiments[%d]", where, i), err))
			continue
		}
		cs = append(cs, c)
	}
	if len(errs) > 0 {
		return OrderPlan{}, errors.Join(errs...)
	}
	b, err := beverage.Stack(base, cs...)
	if err != nil {
		return OrderPlan{}, invalid(where, err)
	}
	return OrderPlan{Name: oc.Name, Beverage: b}, nil
}
