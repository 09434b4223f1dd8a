package integer_test

import (
	"errors"
	"fmt"
	"runtime"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/pitfalls"
	"github.com/calebcase/pitfalls/integer"
)

func TestDivide(t *testing.T) {
	type TC struct {
		A, B int
		Q    int
		Mark error
	}

	tcs := []TC{
		{A: 10, B: 2, Q: 5, Mark: oops.New("unexpected")},
		{A: 7, B: 2, Q: 3, Mark: oops.New("unexpected")},
		{A: -7, B: 2, Q: -3, Mark: oops.New("unexpected")},
		{A: 0, B: 5, Q: 0, Mark: oops.New("unexpected")},
	}

	for _, tc := range tcs {
		t.Run(fmt.Sprintf("%d/%d", tc.A, tc.B), func(t *testing.T) {
			require.Equal(t, tc.Q, integer.Divide(tc.A, tc.B), tc.Mark)
			require.Equal(t, tc.Q, integer.MustDivide(tc.A, tc.B), tc.Mark)
			require.Equal(t, tc.Q, integer.DivideOrDefault(tc.A, tc.B, -1), tc.Mark)

			q, err := integer.DivideOrError(tc.A, tc.B)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.Q, q, tc.Mark)
		})
	}
}

func TestDivideByZero(t *testing.T) {
	t.Run("raw", func(t *testing.T) {
		var r interface{}

		func() {
			defer func() {
				r = recover()
			}()

			integer.Divide(10, 0)
		}()

		require.NotNil(t, r)

		_, ok := r.(runtime.Error)
		require.True(t, ok, r)
	})

	t.Run("must", func(t *testing.T) {
		require.PanicsWithValue(t, integer.ErrZeroDivider, func() {
			integer.MustDivide(10, 0)
		})
	})

	t.Run("error", func(t *testing.T) {
		_, err := integer.DivideOrError(10, 0)
		require.Error(t, err)
		require.True(t, pitfalls.ValidationError.Has(err), err)
		require.Contains(t, err.Error(), "divider must not be zero")
	})

	t.Run("default", func(t *testing.T) {
		require.Equal(t, 0, integer.DivideOrDefault(10, 0, 0))
		require.Equal(t, 42, integer.DivideOrDefault(10, 0, 42))
	})
}

func TestRecover(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		err := integer.Recover(func() {
			integer.Divide(10, 2)
		})
		require.NoError(t, err)
	})

	t.Run("runtime", func(t *testing.T) {
		err := integer.Recover(func() {
			integer.Divide(10, 0)
		})
		require.Error(t, err)
		require.True(t, integer.ArithmeticError.Has(err), err)
		require.Contains(t, err.Error(), "divide by zero")

		var rerr runtime.Error
		require.True(t, errors.As(err, &rerr), err)
	})

	t.Run("validation", func(t *testing.T) {
		err := integer.Recover(func() {
			integer.MustDivide(10, 0)
		})
		require.Error(t, err)
		require.True(t, pitfalls.ValidationError.Has(err), err)
		require.False(t, integer.ArithmeticError.Has(err), err)
		require.True(t, errors.Is(err, integer.ErrZeroDivider))
	})

	t.Run("value", func(t *testing.T) {
		err := integer.Recover(func() {
			panic("boom")
		})
		require.Error(t, err)
		require.True(t, integer.Error.Has(err), err)
		require.Contains(t, err.Error(), "boom")
	})
}
