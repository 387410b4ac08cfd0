// Package controller holds the HTTP middlewares shared by every route:
// CORS, access logging with request IDs, per client rate limiting and the
// pprof mux.
package controller
