package v1handler

import (
	"context"
	"net/http"

	"commissions/pkg/domain"

	"github.com/go-faster/jx"
)

type paymentRequestAction func(ctx context.Context, id domain.PaymentRequestID) (*domain.PaymentRequest, error)

func (h *Handler) servePaymentRequest(w http.ResponseWriter, r *http.Request, action paymentRequestAction) {
	id, err := pathUUID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	pr, err := action(r.Context(), domain.PaymentRequestID(id))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	e := &jx.Encoder{}
	encodePaymentRequest(e, pr)
	writeJSON(r.Context(), w, http.StatusOK, e)
}

// GetPaymentRequest returns a payment request by ID.
func (h *Handler) GetPaymentRequest(w http.ResponseWriter, r *http.Request) {
	h.servePaymentRequest(w, r, h.deps.Lifecycle.PaymentRequest)
}

// ApprovePaymentRequest approves a pending payment request.
func (h *Handler) ApprovePaymentRequest(w http.ResponseWriter, r *http.Request) {
	h.servePaymentRequest(w, r, h.deps.Lifecycle.Approve)
}

// RejectPaymentRequest rejects a pending payment request. The body must carry
// a non-empty reason.
func (h *Handler) RejectPaymentRequest(w http.ResponseWriter, r *http.Request) {
	reason, err := decodeRejection(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.servePaymentRequest(w, r, func(ctx context.Context, id domain.PaymentRequestID) (*domain.PaymentRequest, error) {
		return h.deps.Lifecycle.Reject(ctx, id, reason)
	})
}

// MarkPaymentRequestPaid records the payout of an approved payment request.
func (h *Handler) MarkPaymentRequestPaid(w http.ResponseWriter, r *http.Request) {
	h.servePaymentRequest(w, r, h.deps.Lifecycle.MarkPaid)
}
