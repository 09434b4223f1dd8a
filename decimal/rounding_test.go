package decimal_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/pitfalls/decimal"
)

func TestRoundingMode(t *testing.T) {
	modes := map[string]decimal.RoundingMode{
		"UP":          decimal.Up,
		"DOWN":        decimal.Down,
		"CEILING":     decimal.Ceiling,
		"FLOOR":       decimal.Floor,
		"HALF_UP":     decimal.HalfUp,
		"HALF_DOWN":   decimal.HalfDown,
		"HALF_EVEN":   decimal.HalfEven,
		"UNNECESSARY": decimal.Unnecessary,
	}

	for name, mode := range modes {
		t.Run(name, func(t *testing.T) {
			require.True(t, mode.Valid())
			require.Equal(t, name, mode.String())

			parsed, err := decimal.ParseRoundingMode(name)
			require.NoError(t, err)
			require.Equal(t, mode, parsed)

			text, err := mode.MarshalText()
			require.NoError(t, err)

			var back decimal.RoundingMode
			require.NoError(t, back.UnmarshalText(text))
			require.Equal(t, mode, back)
		})
	}

	t.Run("lenient names", func(t *testing.T) {
		m, err := decimal.ParseRoundingMode(" half-even ")
		require.NoError(t, err)
		require.Equal(t, decimal.HalfEven, m)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := decimal.ParseRoundingMode("BANKERS")
		require.Error(t, err)
		require.True(t, decimal.Error.Has(err), err)

		bad := decimal.RoundingMode(-1)
		require.False(t, bad.Valid())
		require.Equal(t, "RoundingMode(invalid)", bad.String())

		_, err = bad.MarshalText()
		require.Error(t, err)
	})
}
