package v1handler

import (
	"net/http"
	"strings"
	"time"

	"domainintel/internal/aggregator"
	"domainintel/internal/history"
	"domainintel/pkg/domain"
	"domainintel/pkg/pricing"
	"domainintel/pkg/serrors"
	"domainintel/pkg/storage"

	"github.com/go-chi/chi/v5"
)

func badRequest(err error) error {
	return serrors.With(serrors.ErrBadRequest, "%s", err.Error())
}

// parseFilter reads source, domain, date (YYYY-MM-DD) and kind from the query string.
func parseFilter(r *http.Request) (storage.SearchFilter, error) {
	q := r.URL.Query()

	var f storage.SearchFilter
	src, ok := domain.ParseSource(q.Get("source"))
	if !ok {
		return f, serrors.With(serrors.ErrBadRequest, "unknown source %q", q.Get("source"))
	}
	f.Source = src
	f.Domain = strings.TrimSpace(q.Get("domain"))

	if raw := q.Get("date"); raw != "" {
		d, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return f, serrors.Wrap(serrors.ErrBadRequest, err, "invalid date %q", raw)
		}
		f.Date = d
	}

	if raw := q.Get("kind"); raw != "" {
		kinds, err := domain.ParseCheckKinds(raw)
		if err != nil || len(kinds) != 1 {
			return f, serrors.With(serrors.ErrBadRequest, "invalid kind %q", raw)
		}
		f.Kind = kinds.Sorted()[0]
	}

	return f, nil
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilter(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	entries, err := h.deps.History.History(r.Context(), f)
	if warning, ok := storeWarning(err); ok {
		writeJSON(r.Context(), w, http.StatusOK, ListResponse[[]history.Entry]{Items: []history.Entry{}, Warning: warning})

		return
	}
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	writeJSON(r.Context(), w, http.StatusOK, ListResponse[[]history.Entry]{Items: entries})
}

func (h *Handler) DeleteHistory(w http.ResponseWriter, r *http.Request) {
	n, err := h.deps.History.Delete(r.Context(), chi.URLParam(r, "domain"))
	if warning, ok := storeWarning(err); ok {
		writeJSON(r.Context(), w, http.StatusOK, DeleteResponse{Warning: warning})

		return
	}
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	writeJSON(r.Context(), w, http.StatusOK, DeleteResponse{Deleted: n})
}

func (h *Handler) Generated(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilter(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	entries, err := h.deps.History.AvailableGenerated(r.Context(), f)
	if warning, ok := storeWarning(err); ok {
		writeJSON(r.Context(), w, http.StatusOK,
			ListResponse[[]history.GeneratedEntry]{Items: []history.GeneratedEntry{}, Warning: warning})

		return
	}
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	writeJSON(r.Context(), w, http.StatusOK, ListResponse[[]history.GeneratedEntry]{Items: entries})
}

func (h *Handler) DNSRecords(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilter(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	sets, err := h.deps.History.DNSRecords(r.Context(), f)
	if warning, ok := storeWarning(err); ok {
		writeJSON(r.Context(), w, http.StatusOK,
			ListResponse[map[string]domain.DNSRecordSet]{Items: map[string]domain.DNSRecordSet{}, Warning: warning})

		return
	}
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	writeJSON(r.Context(), w, http.StatusOK, ListResponse[map[string]domain.DNSRecordSet]{Items: sets})
}

// Dashboard lists user-entered records with liveness and starts watching them.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilter(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	entries, err := h.deps.History.Dashboard(r.Context(), h.session(r), f)
	if warning, ok := storeWarning(err); ok {
		writeJSON(r.Context(), w, http.StatusOK,
			ListResponse[[]history.DashboardEntry]{Items: []history.DashboardEntry{}, Warning: warning})

		return
	}
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	writeJSON(r.Context(), w, http.StatusOK, ListResponse[[]history.DashboardEntry]{Items: entries})
}

// RefreshStatus probes the given domains, or the whole session overlay.
func (h *Handler) RefreshStatus(w http.ResponseWriter, r *http.Request) {
	var body RefreshRequest
	if err := decode(w, r, &body); err != nil {
		h.writeError(w, r, err)

		return
	}

	statuses := h.deps.History.RefreshStatus(r.Context(), h.session(r), body.Domains)
	writeJSON(r.Context(), w, http.StatusOK, ListResponse[map[string]domain.LivenessStatus]{Items: statuses})
}

// Quotes returns the registrar suggestions for a domain's TLD.
func (h *Handler) Quotes(w http.ResponseWriter, r *http.Request) {
	name, err := aggregator.NormalizeDomain(chi.URLParam(r, "domain"))
	if err != nil {
		h.writeError(w, r, badRequest(err))

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, QuoteResponse{
		Domain: name,
		TLD:    pricing.TLD(name),
		Items:  h.deps.History.Quote(name),
	})
}
