package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/olehluchkiv/gopatterns/internal/beverage"
	"github.com/olehluchkiv/gopatterns/internal/config"
	"github.com/olehluchkiv/gopatterns/internal/strategy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testdataFile(name string) string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "testdata", "config", name)
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gopatterns.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// ---------------------------------------------------------------------------
// Load
// ---------------------------------------------------------------------------

func TestLoad_Flock(t *testing.T) {
	cfg, err := config.Load(testdataFile("flock.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	require.Len(t, cfg.Ducks, 2)
	assert.Equal(t, "robo", cfg.Ducks[0].Name)
	assert.Equal(t, "cannot-fly", cfg.Ducks[0].Fly)
	assert.Len(t, cfg.Ducks[0].Script, 6)
	assert.Equal(t, "mallard", cfg.Ducks[1].Kind)
	require.Len(t, cfg.Orders, 2)
	assert.Equal(t, []string{"soy", "mocha", "whip"}, cfg.Orders[0].Condiments)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestLoad_DefaultLogLevel(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "ducks: []\n"))
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_EnvOverridesLogLevel(t *testing.T) {
	t.Setenv("GOPATTERNS_LOG_LEVEL", "warn")
	cfg, err := config.Load(writeConfig(t, "log_level: debug\n"))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
}

// ---------------------------------------------------------------------------
// Resolve
// ---------------------------------------------------------------------------

func TestResolve_Flock(t *testing.T) {
	cfg, err := config.Load(testdataFile("flock.yaml"))
	require.NoError(t, err)

	plan, err := cfg.Resolve()
	require.NoError(t, err)

	require.Len(t, plan.Ducks, 2)
	robo := plan.Ducks[0]
	assert.Equal(t, "Soy un pato robot.", robo.Display)
	assert.Equal(t, strategy.Loadout{Fly: strategy.FlyNoWay, Quack: strategy.Squeak, Eat: strategy.EatAnything}, robo.Loadout)
	assert.Equal(t, config.Step{Op: config.OpEat, Meal: strategy.Meal{Food: strategy.Seed, Portions: 2}}, robo.Script[2])

	// A kind supplies the display line and defaults; fields override them.
	quiet := plan.Ducks[1]
	assert.Equal(t, strategy.Mallard.Display(), quiet.Display)
	assert.Equal(t, strategy.Loadout{Fly: strategy.FlyWithWings, Quack: strategy.MuteQuack, Eat: strategy.PickyEater}, quiet.Loadout)

	require.Len(t, plan.Orders, 2)
	assert.Equal(t, "Café de la Casa, Leche de Soja, Moca, Crema Batida $1.34", beverage.Receipt(plan.Orders[0].Beverage))
	assert.Equal(t, "Espresso $1.99", beverage.Receipt(plan.Orders[1].Beverage))
}

func TestResolve_ReportsEveryProblemWithLocation(t *testing.T) {
	cfg, err := config.Load(testdataFile("invalid.yaml"))
	require.NoError(t, err)

	_, err = cfg.Resolve()
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrInvalid))
	assert.True(t, errors.Is(err, strategy.ErrUnknownVariant))
	assert.True(t, errors.Is(err, beverage.ErrUnknownVariant))

	msg := err.Error()
	assert.Contains(t, msg, `ducks[0].fly: unknown variant: fly behavior "flies-with-jets"`)
	assert.Contains(t, msg, `ducks[0].script[0]: unknown step "dance"`)
	assert.Contains(t, msg, "ducks[1].name: required")
	assert.Contains(t, msg, `orders[0].condiments[1]: unknown variant: condiment "caramel"`)
	// The bad fly name is the only complaint about that category.
	assert.NotContains(t, msg, "missing behavior")
}

func TestResolve_MissingCategoryWithoutKind(t *testing.T) {
	cfg := &config.Config{Ducks: []config.DuckConfig{{Name: "lazy", Fly: "cannot-fly"}}}
	_, err := cfg.Resolve()
	require.Error(t, err)
	assert.True(t, errors.Is(err, strategy.ErrMissingBehavior))
	assert.Contains(t, err.Error(), "ducks[0]")
}

// ---------------------------------------------------------------------------
// Steps
// ---------------------------------------------------------------------------

func TestParseStep(t *testing.T) {
	tests := []struct {
		line string
		want config.Step
	}{
		{"display", config.Step{Op: config.OpDisplay}},
		{"  fly  ", config.Step{Op: config.OpFly}},
		{"eat pan", config.Step{Op: config.OpEat, Meal: strategy.Meal{Food: strategy.Bread}}},
		{"eat grano 3", config.Step{Op: config.OpEat, Meal: strategy.Meal{Food: strategy.Grain, Portions: 3}}},
		{"set-fly cannot-fly", config.Step{Op: config.OpSetFly, Fly: strategy.FlyNoWay}},
		{"set-quack silent", config.Step{Op: config.OpSetQuack, Quack: strategy.MuteQuack}},
		{"set-eat eats-nothing", config.Step{Op: config.OpSetEat, Eat: strategy.NoEat}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := config.ParseStep(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStep_Errors(t *testing.T) {
	for _, line := range []string{
		"",
		"fly high",
		"eat",
		"eat pizza",
		"eat grano zero",
		"eat grano 0",
		"set-fly",
		"set-quack honks",
		"moonwalk",
	} {
		_, err := config.ParseStep(line)
		assert.Error(t, err, "line %q", line)
	}
}

func TestStep_Apply(t *testing.T) {
	var out testWriter
	d := strategy.NewRubber(&out, nil)

	for _, line := range []string{"set-quack quacks", "quack", "eat grano"} {
		step, err := config.ParseStep(line)
		require.NoError(t, err)
		require.NoError(t, step.Apply(d))
	}
	assert.Equal(t, []string{
		"Cambiando el comportamiento de graznido...",
		"¡Quack, quack!",
		"No estoy comiendo nada.",
	}, out.lines)

	assert.Error(t, config.Step{Op: "teleport"}.Apply(d))
}

type testWriter struct{ lines []string }

func (w *testWriter) Write(p []byte) (int, error) {
	s := string(p)
	if n := len(s); n > 0 && s[n-1] == '\n' {
		s = s[:n-1]
	}
	w.lines = append(w.lines, s)
	return len(p), nil
}
