package v1handler

import (
	"net/http"

	"commissions/pkg/domain"

	"github.com/go-faster/jx"
)

// UpdatePlacement applies a staff edit to a placement and reports the
// commission side effect next to the saved placement. A failed side effect
// does not fail the request.
func (h *Handler) UpdatePlacement(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	change, err := decodePlacementChange(r, domain.PlacementID(id))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	p, outcome, err := h.deps.Lifecycle.UpdatePlacement(r.Context(), change)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	e := &jx.Encoder{}
	e.ObjStart()
	e.FieldStart("placement")
	encodePlacement(e, p)
	e.FieldStart("commission")
	encodeOutcome(e, outcome)
	e.ObjEnd()

	writeJSON(r.Context(), w, http.StatusOK, e)
}

// QuotePlacement returns the commission the placement would earn now.
func (h *Handler) QuotePlacement(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	q, err := h.deps.Lifecycle.Quote(r.Context(), domain.PlacementID(id))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	e := &jx.Encoder{}
	encodeQuote(e, q)
	writeJSON(r.Context(), w, http.StatusOK, e)
}
