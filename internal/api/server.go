// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the domain intelligence service.
package api

import (
	_ "embed"
	"fmt"
	"net/http"
	"time"

	"domainintel/internal/api/handler/v1handler"
	"domainintel/internal/config"
	"domainintel/pkg/controller"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	"go.opentelemetry.io/otel"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

//go:embed specs/v1.yaml
var v1Spec []byte

// Options configures the HTTP server. Zero durations keep the net/http
// defaults.
type Options struct {
	Addr              string
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	// RequestTimeout bounds each request through http.TimeoutHandler.
	RequestTimeout time.Duration
	MaxHeaderBytes int
	MetricsPath    string

	// RateLimit and RateBurst throttle /v1 requests per client IP. Zero RateLimit disables it.
	RateLimit float64
	RateBurst int

	// Registry receives the otel exporter and backs MetricsPath. Nil means
	// the prometheus default registry.
	Registry *prometheus.Registry
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		RateLimit:         cfg.HTTP.RateLimit,
		RateBurst:         cfg.HTTP.RateBurst,
	}
}

type Deps struct {
	v1handler.Deps
}

// NewHandler mounts metrics, the OpenAPI document with its Swagger UI, the
// rate limited v1 API and pprof behind the CORS and access log middlewares.
func NewHandler(deps Deps, opts Options) (http.Handler, error) {
	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if opts.Registry != nil {
		registerer, gatherer = opts.Registry, opts.Registry
	}
	if opts.MetricsPath == "" {
		opts.MetricsPath = "/metrics"
	}

	// otel instruments of the aggregator are exported through prometheus
	exp, err := otelprom.New(otelprom.WithRegisterer(registerer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	otel.SetMeterProvider(sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)))

	r := chi.NewRouter()
	r.Handle(opts.MetricsPath, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Get("/specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})

	v1 := v1handler.New(deps.Deps)
	r.Route("/v1", func(r chi.Router) {
		r.Handle("/docs/*", v5emb.New(
			"Domain Intelligence Service",
			"/specs/v1.yaml",
			"/v1/docs/",
		))
		r.Group(func(r chi.Router) {
			r.Use(controller.WithRateLimit(opts.RateLimit, opts.RateBurst))
			v1.Routes(r)
		})
	})

	r.Mount("/debug/pprof", http.StripPrefix("/debug/pprof", controller.PprofMux()))

	return controller.WithLogger(controller.WithCORS(r)), nil
}

// NewServer returns an unstarted *http.Server serving NewHandler.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	handler, err := NewHandler(deps, opts)
	if err != nil {
		return nil, err
	}
	if opts.RequestTimeout > 0 {
		handler = http.TimeoutHandler(handler, opts.RequestTimeout, `{"code":"TIMEOUT","message":"request timed out"}`)
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
