package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"domainintel/pkg/domain"
	"domainintel/pkg/logger"

	"go.uber.org/zap"
)

// timestampLayout is the ISO-8601 layout of search_timestamp. The first ten
// characters are always the calendar date.
const timestampLayout = "2006-01-02T15:04:05.000000Z07:00"

// legacyTimestampLayouts cover rows written without a zone offset.
var legacyTimestampLayouts = []string{ //nolint: gochecknoglobals
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

type PgSearch struct {
	ID              int64           `db:"id"               goqu:"skipinsert"`
	Domain          string          `db:"domain"`
	SearchTimestamp string          `db:"search_timestamp"`
	ResultsJSON     json.RawMessage `db:"results_json"`
	Source          string          `db:"source"`
}

func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(timestampLayout, s); err == nil {
		return t, nil
	}
	for _, layout := range legacyTimestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized search timestamp %q", s)
}

func (p *PgSearch) ToDomain() (*domain.SearchRecord, error) {
	ts, err := parseTimestamp(p.SearchTimestamp)
	if err != nil {
		return nil, err
	}

	var checks domain.CheckList
	if len(p.ResultsJSON) > 0 && string(p.ResultsJSON) != "null" {
		if err := json.Unmarshal(p.ResultsJSON, &checks); err != nil {
			return nil, fmt.Errorf("could not unmarshal results of search %d: %w", p.ID, err)
		}
	}

	return &domain.SearchRecord{
		ID:        p.ID,
		Domain:    p.Domain,
		Timestamp: ts,
		Source:    domain.Source(p.Source),
		Checks:    checks,
	}, nil
}

func (p *PgSearch) FromDomain(record domain.SearchRecord) error {
	checks := record.Checks
	if checks == nil {
		checks = domain.CheckList{}
	}
	results, err := json.Marshal(checks)
	if err != nil {
		return fmt.Errorf("could not marshal check results: %w", err)
	}

	*p = PgSearch{
		ID:              record.ID,
		Domain:          record.Domain,
		SearchTimestamp: record.Timestamp.UTC().Format(timestampLayout),
		ResultsJSON:     results,
		Source:          string(record.Source),
	}

	return nil
}

// pgSearchesToDomain converts rows, dropping the ones that cannot be decoded
// so a single damaged row does not hide the rest of the history.
func pgSearchesToDomain(ctx context.Context, rows []PgSearch) []domain.SearchRecord {
	out := make([]domain.SearchRecord, 0, len(rows))
	for _, row := range rows {
		d, err := row.ToDomain()
		if err != nil {
			logger.Warn(ctx, "skipping undecodable search row", zap.Int64("id", row.ID), zap.Error(err))

			continue
		}

		out = append(out, *d)
	}

	return out
}
