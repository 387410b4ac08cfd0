package v1handler

import (
	"fmt"
	"net/http"

	"domainintel/internal/aggregator"
	"domainintel/pkg/domain"
	"domainintel/pkg/logger"

	"go.uber.org/zap"
)

// RunChecks runs the requested checks and answers with the stored records, or
// queues them when the request is asynchronous.
func (h *Handler) RunChecks(w http.ResponseWriter, r *http.Request) {
	var body CheckRequest
	if err := decode(w, r, &body); err != nil {
		h.writeError(w, r, err)

		return
	}
	req, err := body.toRequest()
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	sess := h.session(r)
	if body.Async {
		added, err := h.deps.Aggregator.Enqueue(r.Context(), sess.ID, req)
		if err != nil {
			h.writeError(w, r, err)

			return
		}
		writeJSON(r.Context(), w, http.StatusAccepted, EnqueueResponse{Enqueued: added})

		return
	}

	batch, err := h.deps.Aggregator.RunChecks(r.Context(), sess, req)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	writeJSON(r.Context(), w, http.StatusOK, batch)
}

// LastRun returns the flattened results of the session's most recent run.
func (h *Handler) LastRun(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, ListResponse[domain.CheckList]{Items: h.session(r).LastRun()})
}

// Export downloads the session's most recent run as a JSON file.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", aggregator.ExportFileName))
	if err := h.deps.Aggregator.Export(w, h.session(r).LastRun()); err != nil {
		logger.Error(r.Context(), "could not export last run", zap.Error(err))
	}
}

// Generate asks the name generator for ideas and returns the available ones.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var body GenerateRequest
	if err := decode(w, r, &body); err != nil {
		h.writeError(w, r, err)

		return
	}

	out, err := h.deps.Aggregator.Generate(r.Context(), aggregator.GenerateRequest{
		Prompt: body.Prompt,
		TLDs:   body.TLDs,
		Count:  body.Count,
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	writeJSON(r.Context(), w, http.StatusOK, out)
}
