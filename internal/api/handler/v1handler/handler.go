// Package v1handler serves the /v1 JSON API on top of the aggregator, the
// history read models and the per-session state.
package v1handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"domainintel/internal/aggregator"
	"domainintel/internal/history"
	"domainintel/internal/session"
	"domainintel/pkg/logger"
	"domainintel/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

type Deps struct {
	Aggregator aggregator.Aggregator
	History    *history.Service
	Sessions   *session.Registry
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	if deps.Sessions == nil {
		deps.Sessions = session.NewRegistry()
	}

	return &Handler{deps: deps}
}

// Routes mounts every v1 endpoint on r.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/checks", h.RunChecks)
	r.Get("/checks/last", h.LastRun)
	r.Get("/checks/export", h.Export)
	r.Post("/generate", h.Generate)
	r.Get("/history", h.History)
	r.Delete("/history/{domain}", h.DeleteHistory)
	r.Get("/generated", h.Generated)
	r.Get("/dns-records", h.DNSRecords)
	r.Get("/dashboard", h.Dashboard)
	r.Post("/status/refresh", h.RefreshStatus)
	r.Get("/quotes/{domain}", h.Quotes)
}

// ErrorResponse is the status and body written for a failed request.
type ErrorResponse struct {
	StatusCode int
	Response   Error
}

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type kindStatus struct {
	status  int
	message string
}

//nolint: gochecknoglobals
var kindStatuses = map[serrors.Kind]kindStatus{
	serrors.ErrBadRequest:           {http.StatusBadRequest, "bad request"},
	serrors.ErrUnauthorized:         {http.StatusUnauthorized, "unauthorized"},
	serrors.ErrForbidden:            {http.StatusForbidden, "forbidden"},
	serrors.ErrNotFound:             {http.StatusNotFound, "resource not found"},
	serrors.ErrConflict:             {http.StatusConflict, "conflict"},
	serrors.ErrRateLimited:          {http.StatusTooManyRequests, "rate limit exceeded"},
	serrors.ErrTimeout:              {http.StatusGatewayTimeout, "request timed out"},
	serrors.ErrConfigurationMissing: {http.StatusServiceUnavailable, "integration not configured"},
	serrors.ErrUnavailable:          {http.StatusServiceUnavailable, "service unavailable"},
}

// NewError maps err to an HTTP status using its outermost serrors kind.
// Messages of internal errors are never exposed.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	kind := serrors.KindOf(err)
	m, ok := kindStatuses[kind]
	if !ok {
		logger.Error(ctx, "internal error", zap.Error(err))

		return &ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Response:   Error{Code: serrors.ErrInternal.Error(), Message: "internal error"},
		}
	}

	msg := m.message
	if semantic := serrors.MessageOf(err); semantic != "" {
		msg = semantic
	}
	logger.Warn(ctx, "request failed", zap.Error(err), zap.Int("status", m.status))

	return &ErrorResponse{StatusCode: m.status, Response: Error{Code: kind.Error(), Message: msg}}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)
	writeJSON(r.Context(), w, res.StatusCode, res.Response)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn(ctx, "could not write response", zap.Error(err))
	}
}

func decode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	return nil
}

func (h *Handler) session(r *http.Request) *session.Session {
	return h.deps.Sessions.Get(r.Header.Get(session.Header))
}

// storeWarning reports whether err only means the record store is down, in
// which case read endpoints answer with empty data and a warning.
func storeWarning(err error) (string, bool) {
	if errors.Is(err, serrors.ErrUnavailable) {
		return err.Error(), true
	}

	return "", false
}
