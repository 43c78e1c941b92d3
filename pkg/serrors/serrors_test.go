package serrors_test

import (
	"errors"
	"fmt"
	"testing"

	"commissions/pkg/serrors"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrNotFound,
		serrors.ErrBadRequest,
		serrors.ErrConflict,
		serrors.ErrInternal,
		serrors.ErrTimeout,
		serrors.ErrMisconfigured,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("db down")

	e1 := serrors.With(serrors.ErrNotFound, "payment request %d not found", 42)
	require.Equal(t, "payment request 42 not found", e1.Error())

	e2 := serrors.Wrap(serrors.ErrNotFound, base, "loading placement")
	require.Equal(t, "loading placement: db down", e2.Error())

	e3 := serrors.KindOnly(serrors.ErrConflict)
	require.Equal(t, "CONFLICT", e3.Error())

	var nilErr *serrors.Error
	require.Equal(t, "<nil>", nilErr.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrMisconfigured, base, "resolving commission")

	require.ErrorIs(t, e, serrors.ErrMisconfigured)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrConflict)
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	var k serrors.Kind
	require.ErrorAs(t, e, &k)
	require.Equal(t, serrors.ErrNotFound, k)

	var ce *customError
	require.ErrorAs(t, e, &ce)
	require.Equal(t, base, ce)
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrBadRequest, base, "invalid salary")
	require.Equal(t, serrors.ErrBadRequest, e.Kind())
	require.Equal(t, "invalid salary", e.Message())
	require.Equal(t, base, e.Cause())
}

func TestKindOf(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want serrors.Kind
	}{
		{name: "plain error", err: errors.New("boom"), want: nil},
		{name: "bare sentinel", err: serrors.ErrNotFound, want: serrors.ErrNotFound},
		{name: "semantic error", err: serrors.With(serrors.ErrConflict, "illegal"), want: serrors.ErrConflict},
		{
			name: "wrapped semantic error",
			err:  fmt.Errorf("approving: %w", serrors.With(serrors.ErrMisconfigured, "no rank")),
			want: serrors.ErrMisconfigured,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, serrors.KindOf(tc.err))
		})
	}
}
