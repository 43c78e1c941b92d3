package v1handler

import (
	"net/http"

	"github.com/go-faster/jx"
)

// RunScheduler enqueues an immediate scheduler run. Requests made while a run
// is already queued collapse into it.
func (h *Handler) RunScheduler(w http.ResponseWriter, r *http.Request) {
	enqueued, err := h.deps.Scheduler.RunNow(r.Context())
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	e := &jx.Encoder{}
	e.ObjStart()
	e.FieldStart("enqueued")
	e.Bool(enqueued)
	e.ObjEnd()
	writeJSON(r.Context(), w, http.StatusAccepted, e)
}
