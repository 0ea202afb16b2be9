package funcs_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/olehluchkiv/gopatterns/internal/strategy"
	"github.com/olehluchkiv/gopatterns/internal/strategy/funcs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_MallardTranscript(t *testing.T) {
	var buf bytes.Buffer
	d, err := funcs.New(strategy.Mallard, &buf, nil)
	require.NoError(t, err)

	d.Display()
	d.PerformFly()
	d.PerformQuack()
	// FlyFunc and QuackFunc share an underlying type, so a quack can be
	// installed as a fly behavior with an explicit conversion.
	require.NoError(t, d.SetFlyBehavior(funcs.FlyFunc(funcs.MuteQuack)))
	d.PerformFly()
	d.PerformEat(strategy.Meal{Food: strategy.Grain, Portions: 3})
	d.PerformEat(strategy.Meal{Food: strategy.Bread})

	assert.Equal(t, strings.Join([]string{
		"Soy un verdadero pato Mallard.",
		"¡Estoy volando con alas!",
		"¡Quack, quack!",
		"Cambiando el comportamiento de vuelo...",
		"<< Silencio >>",
		"Estoy comiendo 3 porción(es) de grano.",
		"No me gusta comer pan.",
	}, "\n")+"\n", buf.String())
}

func TestNew_UnknownKind(t *testing.T) {
	_, err := funcs.New(strategy.Kind(0), &bytes.Buffer{}, nil)
	assert.True(t, errors.Is(err, strategy.ErrUnknownVariant))
}

func TestNewCustom_Incomplete(t *testing.T) {
	_, err := funcs.NewCustom("ghost", "", funcs.Behaviors{Quack: funcs.Squeak}, &bytes.Buffer{}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, strategy.ErrMissingBehavior))
	assert.Contains(t, err.Error(), "[fly eat]")
}

func TestSet_NilRejected(t *testing.T) {
	var buf bytes.Buffer
	d, err := funcs.New(strategy.Rubber, &buf, nil)
	require.NoError(t, err)

	assert.Error(t, d.SetFlyBehavior(nil))
	assert.Error(t, d.SetQuackBehavior(nil))
	assert.Error(t, d.SetEatBehavior(nil))
	assert.Empty(t, buf.String())

	d.PerformQuack()
	assert.Equal(t, "Squeak, squeak!\n", buf.String())
}

func TestSet_ClosureBehavior(t *testing.T) {
	// Any function with the right shape is a behavior, including one that
	// closes over local state.
	var buf bytes.Buffer
	d, err := funcs.New(strategy.Decoy, &buf, nil)
	require.NoError(t, err)

	flaps := 0
	require.NoError(t, d.SetFlyBehavior(func() string {
		flaps++
		return strings.Repeat("flap ", flaps)
	}))
	buf.Reset()
	d.PerformFly()
	d.PerformFly()
	assert.Equal(t, "flap \nflap flap \n", buf.String())
}

func TestOf_MatchesComposedBehaviors(t *testing.T) {
	b, err := funcs.Of(strategy.Mallard.Loadout())
	require.NoError(t, err)
	assert.Equal(t, strategy.FlyWithWings.Fly(), b.Fly())
	assert.Equal(t, strategy.Quack.Quack(), b.Quack())
	meal := strategy.Meal{Food: strategy.Seed}
	assert.Equal(t, strategy.PickyEater.Eat(meal), b.Eat(meal))

	_, err = funcs.Of(strategy.Loadout{})
	assert.True(t, errors.Is(err, strategy.ErrMissingBehavior))
}

func TestVariants_MatchComposedLines(t *testing.T) {
	assert.Equal(t, "No puedo volar.", funcs.FlyNoWay())
	assert.Equal(t, "<< Silencio >>", funcs.MuteQuack())
	assert.Equal(t, "Estoy comiendo 1 porción(es) de pan.", funcs.EatAnything(strategy.Meal{Food: strategy.Bread}))
	assert.Equal(t, "No estoy comiendo nada.", funcs.NoEat(strategy.Meal{Food: strategy.Bread}))
}

func TestSet_LogsOldAndNewNames(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	d, err := funcs.New(strategy.Mallard, &bytes.Buffer{}, logger)
	require.NoError(t, err)

	require.NoError(t, d.SetFlyBehavior(funcs.FlyFunc(funcs.MuteQuack)))
	require.NoError(t, d.SetEatBehavior(funcs.EatAnything))
	require.NoError(t, d.SetQuackBehavior(func() string { return "honk" }))

	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(logs.String()), "\n") {
		var e map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &e))
		entries = append(entries, e)
	}
	require.Len(t, entries, 3)

	assert.Equal(t, "fly", entries[0]["category"])
	assert.Equal(t, "flies-with-wings", entries[0]["from"])
	assert.Equal(t, "silent", entries[0]["to"])

	assert.Equal(t, "picky", entries[1]["from"])
	assert.Equal(t, "eats-anything", entries[1]["to"])

	assert.Equal(t, "quacks", entries[2]["from"])
	assert.Contains(t, entries[2]["to"], "funcs_test.TestSet_LogsOldAndNewNames")
}
