package storage

import (
	"context"
	"strings"
	"time"

	"domainintel/pkg/domain"
)

// SearchFilter narrows record queries. All set fields are ANDed.
type SearchFilter struct {
	// Source selects the partition. Empty means domain.SourceUserEntered and
	// domain.SourceAll disables the filter.
	Source domain.Source
	// Domain is a case-insensitive substring of the domain name.
	Domain string
	// Date matches the calendar date of the stored timestamp. Zero disables it.
	Date time.Time
	// Kind keeps only records containing at least one result of this kind.
	Kind domain.CheckKind
}

// SearchStorage persists check runs in the searches table.
type SearchStorage interface {
	// Append stores record and returns it with its generated ID. A zero
	// Timestamp is replaced with the current time, an empty Source with
	// domain.SourceUserEntered.
	Append(ctx context.Context, record domain.SearchRecord) (domain.SearchRecord, error)
	// DeleteByDomain removes every record of the given domains and returns the
	// number of deleted rows.
	DeleteByDomain(ctx context.Context, domains ...string) (int64, error)
	// Query returns matching records ordered by ID.
	Query(ctx context.Context, filter SearchFilter) ([]domain.SearchRecord, error)
	// QueryAvailableGenerated returns Generated records whose availability
	// result is Available. filter.Source and filter.Kind are ignored.
	QueryAvailableGenerated(ctx context.Context, filter SearchFilter) ([]domain.SearchRecord, error)
	// QueryDNSRecords returns the DNS results of User-Entered records grouped by
	// domain. The first matching record of a domain sets ID and Timestamp.
	QueryDNSRecords(ctx context.Context, filter SearchFilter) (map[string]domain.DNSRecordSet, error)
}

// Normalize fills the defaults documented on SearchFilter.
func (f SearchFilter) Normalize() SearchFilter {
	if f.Source == "" {
		f.Source = domain.SourceUserEntered
	}

	return f
}

// Matches reports whether record satisfies every field of the filter. Backends
// that cannot express a field in their query language use it as a post-filter.
func (f SearchFilter) Matches(record domain.SearchRecord) bool {
	f = f.Normalize()
	if f.Source != domain.SourceAll && record.Source != f.Source {
		return false
	}
	if f.Domain != "" && !strings.Contains(strings.ToLower(record.Domain), strings.ToLower(f.Domain)) {
		return false
	}
	if !f.Date.IsZero() && record.Timestamp.Format(time.DateOnly) != f.Date.Format(time.DateOnly) {
		return false
	}
	if f.Kind != "" && !hasKind(record.Checks, f.Kind) {
		return false
	}

	return true
}

func hasKind(checks domain.CheckList, kind domain.CheckKind) bool {
	for _, c := range checks {
		if c.Kind() == kind {
			return true
		}
	}

	return false
}
