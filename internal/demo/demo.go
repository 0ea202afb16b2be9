// Package demo holds the named, deterministic transcripts the CLI prints.
package demo

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ErrUnknownScenario is returned when a requested scenario does not exist.
var ErrUnknownScenario = errors.New("unknown scenario")

// Scenario writes one transcript to w.
type Scenario struct {
	Name    string
	Summary string
	Run     func(w io.Writer, logger *slog.Logger) error
}

// Builtins returns the built-in scenarios in the order they run by default.
func Builtins() []Scenario {
	return []Scenario{
		{Name: "strategy", Summary: "ducks composed from behavior values", Run: runStrategy},
		{Name: "functional", Summary: "ducks holding behavior functions", Run: runFunctional},
		{Name: "decorator", Summary: "beverages wrapped in condiments", Run: runDecorator},
	}
}

// Select picks scenarios by name from all, in the order given. An empty
// names list selects everything.
func Select(all []Scenario, names []string) ([]Scenario, error) {
	if len(names) == 0 {
		return all, nil
	}
	byName := make(map[string]Scenario, len(all))
	for _, s := range all {
		byName[s.Name] = s
	}
	out := make([]Scenario, 0, len(names))
	for _, name := range names {
		s, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownScenario, name, strings.Join(scenarioNames(all), ", "))
		}
		out = append(out, s)
	}
	return out, nil
}

// Run writes each scenario under a section header. It stops at the first
// scenario that fails.
func Run(scenarios []Scenario, w io.Writer, logger *slog.Logger) error {
	for i, s := range scenarios {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "━━━ %s ━━━\n", s.Name); err != nil {
			return err
		}
		logger.Info("running scenario", "scenario", s.Name)
		if err := s.Run(w, logger); err != nil {
			logger.Error("scenario failed", "scenario", s.Name, "error", err)
			return fmt.Errorf("scenario %s: %w", s.Name, err)
		}
	}
	return nil
}

// List writes one "name  summary" line per scenario.
func List(scenarios []Scenario, w io.Writer) {
	width := 0
	for _, s := range scenarios {
		width = max(width, len(s.Name))
	}
	for _, s := range scenarios {
		fmt.Fprintf(w, "%-*s  %s\n", width, s.Name, s.Summary)
	}
}

func scenarioNames(all []Scenario) []string {
	names := make([]string, len(all))
	for i, s := range all {
		names[i] = s.Name
	}
	return names
}
