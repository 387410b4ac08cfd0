package aggregator

import (
	"context"
	"io"

	"domainintel/internal/session"
	"domainintel/pkg/domain"
)

// Request selects what RunChecks and Enqueue do.
type Request struct {
	Domains []string
	// Kinds enables check families. An empty set enables all of them.
	Kinds domain.CheckKinds
	// DNSTypes are the record types queried when DNS is enabled.
	DNSTypes []string
}

// Batch is the outcome of one RunChecks call. Records follow input order.
type Batch struct {
	Records  []domain.SearchRecord `json:"records"`
	Warnings []string              `json:"warnings,omitempty"`
}

// Checks flattens the results of every record.
func (b Batch) Checks() domain.CheckList {
	out := domain.CheckList{}
	for _, r := range b.Records {
		out = append(out, r.Checks...)
	}

	return out
}

type GenerateRequest struct {
	Prompt string
	TLDs   []string
	Count  int
}

// Generated lists the generated names that turned out to be available.
type Generated struct {
	Available []domain.AvailabilityResult `json:"available"`
	Warnings  []string                    `json:"warnings,omitempty"`
}

//go:generate mockgen -package mockaggregator -source=interface.go -destination=mock/mockaggregator.go *
type Aggregator interface {
	// RunChecks runs every enabled check for each domain, stores one record per
	// domain and replaces the last run of sess.
	RunChecks(ctx context.Context, sess *session.Session, req Request) (Batch, error)
	// Generate asks the name generator for ideas and stores the available ones.
	Generate(ctx context.Context, req GenerateRequest) (Generated, error)
	// Enqueue schedules RunChecks as a background job and reports whether a new
	// job was added.
	Enqueue(ctx context.Context, sessionID string, req Request) (bool, error)
	// Export writes checks as an indented JSON array.
	Export(w io.Writer, checks domain.CheckList) error
}
