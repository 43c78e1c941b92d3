// Package v1handler implements the v1 HTTP API on top of the payment-request
// lifecycle and the payment scheduler.
package v1handler

import (
	"context"
	"errors"
	"net/http"

	"commissions/internal/lifecycle"
	"commissions/internal/scheduler"
	"commissions/pkg/logger"
	"commissions/pkg/serrors"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// Deps are the services the v1 handlers delegate to.
type Deps struct {
	Lifecycle lifecycle.Lifecycle
	Scheduler scheduler.Trigger
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Register mounts the v1 routes on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("PUT /v1/placements/{id}", h.UpdatePlacement)
	mux.HandleFunc("GET /v1/placements/{id}/quote", h.QuotePlacement)
	mux.HandleFunc("GET /v1/payment-requests/{id}", h.GetPaymentRequest)
	mux.HandleFunc("POST /v1/payment-requests/{id}/approve", h.ApprovePaymentRequest)
	mux.HandleFunc("POST /v1/payment-requests/{id}/reject", h.RejectPaymentRequest)
	mux.HandleFunc("POST /v1/payment-requests/{id}/mark-paid", h.MarkPaymentRequestPaid)
	mux.HandleFunc("POST /v1/scheduler/run", h.RunScheduler)
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	StatusCode int
	Code       string
	Message    string
}

var defaultMessages = map[serrors.Kind]string{ //nolint: gochecknoglobals
	serrors.ErrNotFound:      "resource not found",
	serrors.ErrBadRequest:    "bad request",
	serrors.ErrConflict:      "conflict",
	serrors.ErrInternal:      "internal error",
	serrors.ErrTimeout:       "request timed out",
	serrors.ErrMisconfigured: "commission configuration is incomplete",
}

var statusCodes = map[serrors.Kind]int{ //nolint: gochecknoglobals
	serrors.ErrNotFound:      http.StatusNotFound,
	serrors.ErrBadRequest:    http.StatusBadRequest,
	serrors.ErrConflict:      http.StatusConflict,
	serrors.ErrInternal:      http.StatusInternalServerError,
	serrors.ErrTimeout:       http.StatusGatewayTimeout,
	serrors.ErrMisconfigured: http.StatusUnprocessableEntity,
}

// NewError maps err to the response sent to the client. An expired request
// deadline is a timeout. Other errors without a semantic kind are logged and
// reported as internal errors without details.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	kind := serrors.KindOf(err)
	if kind == nil && errors.Is(err, context.DeadlineExceeded) {
		kind = serrors.ErrTimeout
	}
	if kind == nil || kind == serrors.ErrInternal {
		logger.Error(ctx, "request failed", zap.Error(err))

		return &ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Code:       serrors.ErrInternal.Error(),
			Message:    defaultMessages[serrors.ErrInternal],
		}
	}

	msg := defaultMessages[kind]
	var semErr *serrors.Error
	if errors.As(err, &semErr) && semErr.Message() != "" {
		msg = semErr.Message()
	}

	code, ok := statusCodes[kind]
	if !ok {
		code = http.StatusInternalServerError
	}
	if code >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
	}

	return &ErrorResponse{
		StatusCode: code,
		Code:       kind.Error(),
		Message:    msg,
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)

	e := &jx.Encoder{}
	e.ObjStart()
	e.FieldStart("code")
	e.Str(res.Code)
	e.FieldStart("message")
	e.Str(res.Message)
	e.ObjEnd()

	writeJSON(r.Context(), w, res.StatusCode, e)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, e *jx.Encoder) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(e.Bytes()); err != nil {
		logger.Warn(ctx, "could not write response", zap.Error(err))
	}
}
