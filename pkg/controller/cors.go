package controller

import (
	"net/http"
	"strings"
)

//nolint: gochecknoglobals
var (
	corsAllowedHeaders = strings.Join([]string{
		"Accept", "Accept-Encoding", "Cache-Control", "Content-Length", "Content-Type", "Origin",
		requestIDHeader, sessionHeader,
	}, ", ")
	corsAllowedMethods = strings.Join([]string{
		http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions,
	}, ", ")
	corsExposedHeaders = strings.Join([]string{
		requestIDHeader, "Content-Disposition", "Retry-After",
	}, ", ")
)

// WithCORS allows any origin. A request carrying an Origin gets it echoed
// back so credentialed browser calls work; others get "*". OPTIONS requests
// are answered with 204 and never reach next.
func WithCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		if origin := r.Header.Get("Origin"); origin != "" {
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Add("Vary", "Origin")
		} else {
			h.Set("Access-Control-Allow-Origin", "*")
		}
		h.Set("Access-Control-Allow-Headers", corsAllowedHeaders)
		h.Set("Access-Control-Allow-Methods", corsAllowedMethods)
		h.Set("Access-Control-Expose-Headers", corsExposedHeaders)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)

			return
		}

		next.ServeHTTP(w, r)
	})
}
