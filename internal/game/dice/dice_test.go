package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/aventura/internal/game/dice"
)

func TestCryptoSource_Intn_InRange(t *testing.T) {
	src := dice.NewCryptoSource()
	for i := 0; i < 1000; i++ {
		v := src.Intn(6)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 6)
	}
}

func TestCryptoSource_Intn_PanicsOnZero(t *testing.T) {
	src := dice.NewCryptoSource()
	assert.PanicsWithValue(t, "dice: Intn called with n <= 0", func() { src.Intn(0) })
}

func TestSeededSource_Deterministic(t *testing.T) {
	a := dice.NewSeededSource(42)
	b := dice.NewSeededSource(42)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Intn(100), b.Intn(100))
	}
}

func TestNewSource_ZeroSeed(t *testing.T) {
	src := dice.NewSource(0)
	v := src.Intn(3)
	assert.True(t, v >= 0 && v < 3)
}

func TestBetween_EmptyRange(t *testing.T) {
	_, err := dice.Between(dice.NewSeededSource(1), 5, 1)
	assert.Error(t, err)
}

func TestPropertyBetweenStaysInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Int64().Draw(t, "seed")
		lo := rapid.IntRange(-10, 10).Draw(t, "lo")
		hi := lo + rapid.IntRange(0, 10).Draw(t, "span")
		v, err := dice.Between(dice.NewSeededSource(seed), lo, hi)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v < lo || v > hi {
			t.Fatalf("Between(%d, %d) = %d out of range", lo, hi, v)
		}
	})
}

func TestRoller_Between(t *testing.T) {
	r := dice.NewLoggedRoller(dice.NewSeededSource(7), zap.NewNop())
	for i := 0; i < 100; i++ {
		v, err := r.Between("attempts", 1, 5)
		require.NoError(t, err)
		require.True(t, v >= 1 && v <= 5, "got %d", v)
	}
}

func TestRoller_IsASource(t *testing.T) {
	var src dice.Source = dice.NewLoggedRoller(dice.NewSeededSource(7), zap.NewNop())
	v := src.Intn(2)
	assert.True(t, v == 0 || v == 1)
}

func TestRollBetween_LogsLabelThroughRoller(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	r := dice.NewLoggedRoller(dice.NewFixedSource(2), zap.New(core))

	v, err := dice.RollBetween(r, "monster attempts: wraith", 1, 5)
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	entries := logs.FilterMessage("dice range roll").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "monster attempts: wraith", entries[0].ContextMap()["label"])
	assert.Equal(t, int64(3), entries[0].ContextMap()["result"])
}

func TestRollBetween_PlainSource(t *testing.T) {
	v, err := dice.RollBetween(dice.NewFixedSource(0), "ignored", 1, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	_, err = dice.RollBetween(dice.NewFixedSource(0), "empty", 3, 2)
	assert.Error(t, err)
}

func TestFixedSource_Cycles(t *testing.T) {
	src := dice.NewFixedSource(0, 4, 7)
	assert.Equal(t, 0, src.Intn(5))
	assert.Equal(t, 4, src.Intn(5))
	assert.Equal(t, 2, src.Intn(5))
	assert.Equal(t, 0, src.Intn(5))

	v, err := dice.Between(dice.NewFixedSource(4), 1, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, v)
}
