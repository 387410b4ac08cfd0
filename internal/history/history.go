// Package history builds the read models over the record store: the search
// history, available generated names with registrar quotes, DNS records and
// the liveness dashboard.
package history

import (
	"context"
	"fmt"
	"strings"
	"time"

	"domainintel/internal/aggregator"
	"domainintel/internal/session"
	"domainintel/pkg/domain"
	"domainintel/pkg/pricing"
	"domainintel/pkg/serrors"
	"domainintel/pkg/storage"
)

// StatusPoller is the part of the poller the dashboard drives.
type StatusPoller interface {
	Refresh(ctx context.Context, overlay *session.Overlay, domains []string) map[string]domain.LivenessStatus
	Watch(ctx context.Context, sess *session.Session, domains []string) bool
}

// Entry is a stored record with its derived summary.
type Entry struct {
	domain.SearchRecord
	Summary domain.Summary `json:"summary"`
}

// Suggestion is a registrar quote flagged when it is the cheapest one.
type Suggestion struct {
	domain.RegistrarQuote
	Recommended bool `json:"recommended"`
}

// GeneratedEntry is an available generated name with its registrar quotes.
type GeneratedEntry struct {
	ID           int64        `json:"id"`
	Domain       string       `json:"domain"`
	Timestamp    time.Time    `json:"search_timestamp"`
	Availability string       `json:"availability"`
	Suggestions  []Suggestion `json:"suggestions"`
}

// DashboardEntry joins a user-entered record with its liveness status.
type DashboardEntry struct {
	ID              int64                  `json:"id"`
	Domain          string                 `json:"domain"`
	Timestamp       time.Time              `json:"search_timestamp"`
	Registrar       string                 `json:"registrar"`
	ExpirationAlert string                 `json:"expiration_alert"`
	ExpiringSoon    bool                   `json:"expiring_soon"`
	Status          string                 `json:"status"`
	Liveness        *domain.LivenessStatus `json:"liveness,omitempty"`
}

type Service struct {
	storage storage.Storage
	pricing pricing.Table
	poller  StatusPoller
	now     func() time.Time
}

func New(st storage.Storage, table pricing.Table, poller StatusPoller) *Service {
	if table == nil {
		table = pricing.Default()
	}

	return &Service{storage: st, pricing: table, poller: poller, now: time.Now}
}

// History returns the matching records with their summaries, ordered by ID.
func (s *Service) History(ctx context.Context, filter storage.SearchFilter) ([]Entry, error) {
	records, err := s.storage.Query(ctx, filter.Normalize())
	if err != nil {
		return nil, fmt.Errorf("could not query history: %w", err)
	}

	now := s.now()
	out := make([]Entry, 0, len(records))
	for _, r := range records {
		out = append(out, Entry{SearchRecord: r, Summary: domain.Summarize(r.Checks, now)})
	}

	return out, nil
}

// Quote returns the registrar suggestions for domainName.
func (s *Service) Quote(domainName string) []Suggestion {
	quotes, best := s.pricing.Quote(domainName)
	out := make([]Suggestion, 0, len(quotes))
	for i, q := range quotes {
		out = append(out, Suggestion{RegistrarQuote: q, Recommended: i == best})
	}

	return out
}

// AvailableGenerated returns the generated names that were available, each
// with its registrar suggestions.
func (s *Service) AvailableGenerated(ctx context.Context, filter storage.SearchFilter) ([]GeneratedEntry, error) {
	records, err := s.storage.QueryAvailableGenerated(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("could not query generated domains: %w", err)
	}

	out := make([]GeneratedEntry, 0, len(records))
	for _, r := range records {
		out = append(out, GeneratedEntry{
			ID:           r.ID,
			Domain:       r.Domain,
			Timestamp:    r.Timestamp,
			Availability: domain.AvailabilityAvailable,
			Suggestions:  s.Quote(r.Domain),
		})
	}

	return out, nil
}

// DNSRecords returns the DNS results of user-entered records grouped by domain.
func (s *Service) DNSRecords(ctx context.Context, filter storage.SearchFilter) (map[string]domain.DNSRecordSet, error) {
	sets, err := s.storage.QueryDNSRecords(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("could not query dns records: %w", err)
	}

	return sets, nil
}

// Dashboard lists user-entered records with the liveness of their domain.
// Domains missing from the session overlay are probed first, then the poller
// is asked to watch the displayed set.
func (s *Service) Dashboard(ctx context.Context, sess *session.Session, filter storage.SearchFilter) ([]DashboardEntry, error) {
	filter.Source = domain.SourceUserEntered
	records, err := s.storage.Query(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("could not query dashboard: %w", err)
	}

	domains := uniqueDomains(records)
	overlay := sess.Overlay()
	if s.poller != nil && len(domains) > 0 {
		if missing := overlay.Missing(domains); len(missing) > 0 {
			s.poller.Refresh(ctx, overlay, missing)
		}
		s.poller.Watch(ctx, sess, domains)
	}

	now := s.now()
	out := make([]DashboardEntry, 0, len(records))
	for _, r := range records {
		sum := domain.Summarize(r.Checks, now)
		e := DashboardEntry{
			ID:              r.ID,
			Domain:          r.Domain,
			Timestamp:       r.Timestamp,
			Registrar:       sum.Registrar,
			ExpirationAlert: sum.ExpirationAlert,
			ExpiringSoon:    sum.ExpiringSoon,
			Status:          "Unknown",
		}
		if st, ok := overlay.Get(r.Domain); ok {
			e.Status = st.Label()
			e.Liveness = &st
		}
		out = append(out, e)
	}

	return out, nil
}

// RefreshStatus probes domains now, or every domain in the overlay when none
// are given.
func (s *Service) RefreshStatus(ctx context.Context, sess *session.Session, domains []string) map[string]domain.LivenessStatus {
	if s.poller == nil {
		return map[string]domain.LivenessStatus{}
	}
	if len(domains) == 0 {
		for d := range sess.Overlay().Snapshot() {
			domains = append(domains, d)
		}
	}

	return s.poller.Refresh(ctx, sess.Overlay(), domains)
}

// Delete removes every record of the given domains. Names are matched in the
// normalized form checks are stored under, and as given for older rows.
func (s *Service) Delete(ctx context.Context, domains ...string) (int64, error) {
	clean := make([]string, 0, len(domains))
	seen := make(map[string]struct{}, len(domains))
	add := func(d string) {
		if _, ok := seen[d]; !ok {
			seen[d] = struct{}{}
			clean = append(clean, d)
		}
	}
	for _, d := range domains {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		if n, err := aggregator.NormalizeDomain(d); err == nil {
			add(n)
		} else {
			add(strings.ToLower(d))
		}
		add(d)
	}
	if len(clean) == 0 {
		return 0, serrors.With(serrors.ErrBadRequest, "no domains provided")
	}

	n, err := s.storage.DeleteByDomain(ctx, clean...)
	if err != nil {
		return 0, fmt.Errorf("could not delete records: %w", err)
	}

	return n, nil
}

func uniqueDomains(records []domain.SearchRecord) []string {
	seen := make(map[string]struct{}, len(records))
	out := make([]string, 0, len(records))
	for _, r := range records {
		if _, ok := seen[r.Domain]; ok {
			continue
		}
		seen[r.Domain] = struct{}{}
		out = append(out, r.Domain)
	}

	return out
}
