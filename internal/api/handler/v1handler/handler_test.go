package v1handler_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"commissions/internal/api/handler/v1handler"
	"commissions/pkg/commission"
	"commissions/pkg/logger"
	"commissions/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Initialize logger to avoid nil pointer deref during tests
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func TestNewError_InternalOnPlainError(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), errors.New("boom"))
	require.Equal(t, 500, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Code)
	require.Equal(t, "internal error", res.Message)
}

func TestNewError_KindSentinelDirect_NotFound(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), serrors.ErrNotFound)
	require.Equal(t, 404, res.StatusCode)
	require.Equal(t, serrors.ErrNotFound.Error(), res.Code)
	require.Equal(t, "resource not found", res.Message)
}

func TestNewError_SemanticWithMessage_BadRequest(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), serrors.With(serrors.ErrBadRequest, "salary must not be negative"))
	require.Equal(t, 400, res.StatusCode)
	require.Equal(t, serrors.ErrBadRequest.Error(), res.Code)
	require.Equal(t, "salary must not be negative", res.Message)
}

func TestNewError_SemanticWrap_Misconfigured(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	err := serrors.Wrap(serrors.ErrMisconfigured, commission.ErrRankMissing, "resolving commission")
	res := h.NewError(context.Background(), fmt.Errorf("payment request: %w", err))
	require.Equal(t, 422, res.StatusCode)
	require.Equal(t, serrors.ErrMisconfigured.Error(), res.Code)
	// Should include provided message, not the cause
	require.Equal(t, "resolving commission", res.Message)
}

func TestNewError_Conflict(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), serrors.KindOnly(serrors.ErrConflict))
	require.Equal(t, 409, res.StatusCode)
	require.Equal(t, "CONFLICT", res.Code)
	require.Equal(t, "conflict", res.Message)
}

func TestNewError_Timeout(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), serrors.Wrap(serrors.ErrTimeout, context.DeadlineExceeded, "loading placement"))
	require.Equal(t, 504, res.StatusCode)
	require.Equal(t, "TIMEOUT", res.Code)
}

func TestNewError_DeadlineExceededIsTimeout(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	ctx, cancel := context.WithTimeout(context.Background(), 0)
	defer cancel()
	<-ctx.Done()

	res := h.NewError(context.Background(), fmt.Errorf("could not update placement: %w", ctx.Err()))
	require.Equal(t, 504, res.StatusCode)
	require.Equal(t, "TIMEOUT", res.Code)
	require.Equal(t, "request timed out", res.Message)

	res = h.NewError(context.Background(), fmt.Errorf("could not update placement: %w", context.Canceled))
	require.Equal(t, 500, res.StatusCode)
}

func TestNewError_InternalKind_HidesMessage(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), serrors.With(serrors.ErrInternal, "db password rejected"))
	require.Equal(t, 500, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Code)
	require.Equal(t, "internal error", res.Message)
}
