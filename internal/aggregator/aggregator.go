// Package aggregator runs the check providers over a list of domains,
// persists one record per domain and keeps the session's last-run buffer.
package aggregator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"domainintel/internal/session"
	"domainintel/pkg/domain"
	"domainintel/pkg/logger"
	"domainintel/pkg/metrics"
	"domainintel/pkg/provider"
	"domainintel/pkg/serrors"
	"domainintel/pkg/storage"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	// ExportFileName is the suggested name of an exported run.
	ExportFileName = "domain_results.json"

	defaultConcurrency = 5
	instrumentation    = "domainintel/internal/aggregator"
)

// DefaultDNSTypes are queried when a request names no record types.
func DefaultDNSTypes() []string { return []string{"A", "MX", "TXT"} }

type Options struct {
	// Concurrency bounds how many domains are checked at the same time.
	Concurrency int
	// DNSTypes overrides DefaultDNSTypes.
	DNSTypes []string
}

// Providers are the lookups the aggregator fans out to. Names may be nil, in
// which case Generate reports a missing configuration.
type Providers struct {
	Whois  provider.Whois
	DNS    provider.DNS
	RDAP   provider.RDAP
	Threat provider.ThreatIntel
	Names  provider.NameGenerator
}

type aggregator struct {
	options   Options
	providers Providers
	storage   storage.Storage
	now       func() time.Time

	tracer trace.Tracer
	stored metric.Int64Counter
}

func New(st storage.Storage, providers Providers, options Options) Aggregator {
	if options.Concurrency <= 0 {
		options.Concurrency = defaultConcurrency
	}
	if len(options.DNSTypes) == 0 {
		options.DNSTypes = DefaultDNSTypes()
	}

	stored, err := otel.Meter(instrumentation).Int64Counter("domainintel.records.stored",
		metric.WithDescription("Number of search records written to the record store."))
	if err != nil {
		logger.Warn(context.Background(), "could not create stored records counter", zap.Error(err))
	}

	return &aggregator{
		options:   options,
		providers: providers,
		storage:   st,
		now:       time.Now,
		tracer:    otel.Tracer(instrumentation),
		stored:    stored,
	}
}

func parseKinds(names []string) (domain.CheckKinds, error) {
	kinds, err := domain.ParseCheckKinds(names...)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid check kinds")
	}

	return kinds, nil
}

func (a *aggregator) prepare(req Request) ([]string, Request, error) {
	domains := make([]string, 0, len(req.Domains))
	for _, d := range req.Domains {
		if d = strings.TrimSpace(d); d != "" {
			domains = append(domains, d)
		}
	}
	if len(domains) == 0 {
		return nil, req, serrors.With(serrors.ErrBadRequest, "no domains provided")
	}
	if len(req.Kinds) == 0 {
		req.Kinds = domain.CheckKinds{}
		for _, k := range domain.AllKinds {
			req.Kinds[k] = struct{}{}
		}
	}
	types := make([]string, 0, len(req.DNSTypes))
	for _, t := range req.DNSTypes {
		if t = strings.ToUpper(strings.TrimSpace(t)); t != "" {
			types = append(types, t)
		}
	}
	if len(types) == 0 {
		types = a.options.DNSTypes
	}
	req.DNSTypes = types

	return domains, req, nil
}

// forEach calls fn for every index with at most n calls in flight.
func forEach(ctx context.Context, count, n int, fn func(ctx context.Context, i int)) {
	var wg sync.WaitGroup
	sem := make(chan struct{}, n)
	for i := 0; i < count; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			fn(ctx, i)
		}(i)
	}
	wg.Wait()
}

func observe[T domain.CheckResult](name string, fn func() T) T {
	start := time.Now()
	res := fn()
	metrics.ObserveProvider(name, metrics.Outcome(res.Failure()), start)

	return res
}

// check runs the enabled kinds for one domain in domain.AllKinds order.
// Expiration and availability are derived from the WHOIS result of this run.
func (a *aggregator) check(ctx context.Context, name string, req Request) domain.CheckList {
	kinds := req.Kinds
	out := domain.CheckList{}

	var whois domain.WhoisResult
	if kinds.Has(domain.KindWhois) || kinds.Has(domain.KindExpiration) || kinds.Has(domain.KindAvailability) {
		whois = observe("whois", func() domain.WhoisResult { return a.providers.Whois.Lookup(ctx, name) })
	}

	for _, kind := range kinds.Sorted() {
		switch kind {
		case domain.KindWhois:
			out = append(out, whois)
		case domain.KindDNS:
			for _, t := range req.DNSTypes {
				out = append(out, observe("dns", func() domain.DNSResult { return a.providers.DNS.Resolve(ctx, name, t) }))
			}
		case domain.KindExpiration:
			out = append(out, domain.ExpirationFromWhois(whois))
		case domain.KindRDAP:
			out = append(out, observe("rdap", func() domain.RDAPResult { return a.providers.RDAP.Lookup(ctx, name) }))
		case domain.KindDNSSEC:
			out = append(out, observe("dnssec", func() domain.DNSSECResult { return a.providers.DNS.ValidateDNSSEC(ctx, name) }))
		case domain.KindThreat:
			out = append(out, observe("threat", func() domain.ThreatResult { return a.providers.Threat.Profile(ctx, name) }))
		case domain.KindAvailability:
			out = append(out, domain.AvailabilityFromWhois(whois))
		case domain.KindSecurity:
		}
	}

	return out
}

func (a *aggregator) store(ctx context.Context, record domain.SearchRecord) (domain.SearchRecord, error) {
	stored, err := a.storage.Append(ctx, record)
	if err != nil {
		return record, fmt.Errorf("could not store results for %s: %w", record.Domain, err)
	}
	if a.stored != nil {
		a.stored.Add(ctx, 1, metric.WithAttributes(attribute.String("source", string(record.Source))))
	}

	return stored, nil
}

func (a *aggregator) RunChecks(ctx context.Context, sess *session.Session, req Request) (Batch, error) {
	domains, req, err := a.prepare(req)
	if err != nil {
		return Batch{}, err
	}

	ctx, span := a.tracer.Start(ctx, "aggregator.RunChecks", trace.WithAttributes(
		attribute.Int("domains", len(domains)),
		attribute.StringSlice("kinds", kindNames(req.Kinds)),
	))
	defer span.End()

	ctx = logger.WithFields(ctx, zap.Int("domains", len(domains)))
	logger.Info(ctx, "running checks")

	names := make([]string, len(domains))
	warnings := make([][]string, len(domains))
	for i, d := range domains {
		n, err := NormalizeDomain(d)
		if err != nil {
			n = strings.ToLower(d)
			warnings[i] = append(warnings[i], err.Error())
		}
		names[i] = n
	}

	records := make([]domain.SearchRecord, len(domains))
	forEach(ctx, len(names), a.options.Concurrency, func(ctx context.Context, i int) {
		record := domain.SearchRecord{
			Domain:    names[i],
			Timestamp: a.now().UTC(),
			Source:    domain.SourceUserEntered,
			Checks:    a.check(ctx, names[i], req),
		}
		stored, err := a.store(ctx, record)
		if err != nil {
			logger.Warn(ctx, "could not store record", zap.String("domain", names[i]), zap.Error(err))
			warnings[i] = append(warnings[i], err.Error())
		}
		records[i] = stored
	})

	batch := Batch{Records: records}
	for _, w := range warnings {
		batch.Warnings = append(batch.Warnings, w...)
	}
	if sess != nil {
		sess.SetLastRun(batch.Checks())
	}
	span.SetAttributes(attribute.Int("warnings", len(batch.Warnings)))

	return batch, nil
}

func kindNames(kinds domain.CheckKinds) []string {
	out := make([]string, 0, len(kinds))
	for _, k := range kinds.Sorted() {
		out = append(out, string(k))
	}

	return out
}

func (a *aggregator) Generate(ctx context.Context, req GenerateRequest) (Generated, error) {
	if a.providers.Names == nil {
		return Generated{}, serrors.With(serrors.ErrConfigurationMissing, "name generation is not configured")
	}
	tlds := normalizeTLDs(req.TLDs)
	if len(tlds) == 0 {
		tlds = []string{".com"}
	}
	if req.Count <= 0 {
		return Generated{}, serrors.With(serrors.ErrBadRequest, "count must be positive")
	}

	ctx, span := a.tracer.Start(ctx, "aggregator.Generate", trace.WithAttributes(attribute.Int("count", req.Count)))
	defer span.End()

	names, err := a.providers.Names.Generate(ctx, req.Prompt, tlds, req.Count)
	if err != nil {
		return Generated{}, fmt.Errorf("could not generate names: %w", err)
	}

	results := make([]*domain.AvailabilityResult, len(names))
	warnings := make([]string, len(names))
	forEach(ctx, len(names), a.options.Concurrency, func(ctx context.Context, i int) {
		w := observe("whois", func() domain.WhoisResult { return a.providers.Whois.Lookup(ctx, names[i]) })
		avail := domain.AvailabilityFromWhois(w)
		if !avail.Available {
			return
		}
		results[i] = &avail
		if _, err := a.store(ctx, domain.SearchRecord{
			Domain:    names[i],
			Timestamp: a.now().UTC(),
			Source:    domain.SourceGenerated,
			Checks:    domain.CheckList{avail},
		}); err != nil {
			warnings[i] = err.Error()
		}
	})

	out := Generated{Available: []domain.AvailabilityResult{}}
	for i, r := range results {
		if r != nil {
			out.Available = append(out.Available, *r)
		}
		if warnings[i] != "" {
			out.Warnings = append(out.Warnings, warnings[i])
		}
	}
	logger.Info(ctx, "generated domain names",
		zap.Int("suggested", len(names)), zap.Int("available", len(out.Available)))

	return out, nil
}

func (a *aggregator) Enqueue(ctx context.Context, sessionID string, req Request) (bool, error) {
	domains, req, err := a.prepare(req)
	if err != nil {
		return false, err
	}

	added, err := a.storage.AddJob(ctx, RunChecksJob{
		SessionID: sessionID,
		Domains:   domains,
		Kinds:     kindNames(req.Kinds),
		DNSTypes:  req.DNSTypes,
	}, nil)
	if err != nil {
		return false, fmt.Errorf("could not add job: %w", err)
	}

	return added, nil
}

func (a *aggregator) Export(w io.Writer, checks domain.CheckList) error {
	if checks == nil {
		checks = domain.CheckList{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	if err := enc.Encode(checks); err != nil {
		return fmt.Errorf("could not export results: %w", err)
	}

	return nil
}
