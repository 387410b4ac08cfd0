package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"domainintel/pkg/domain"
	"domainintel/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

const (
	searchesTable = "searches"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`) //nolint: gochecknoglobals

// Append inserts a record and returns it as stored.
func (p *PgSQL) Append(ctx context.Context, record domain.SearchRecord) (domain.SearchRecord, error) {
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now()
	}
	if record.Source == "" {
		record.Source = domain.SourceUserEntered
	}

	var row PgSearch
	if err := row.FromDomain(record); err != nil {
		return domain.SearchRecord{}, err
	}

	defer p.lock()()

	var stored PgSearch
	if _, err := p.Builder.Insert(searchesTable).
		Rows(row).
		Returning(goqu.Star()).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return domain.SearchRecord{}, fmt.Errorf("could not store search into pg: %w", err)
	}

	out, err := stored.ToDomain()
	if err != nil {
		return domain.SearchRecord{}, err
	}

	return *out, nil
}

// DeleteByDomain removes all records of the given domains.
func (p *PgSQL) DeleteByDomain(ctx context.Context, domains ...string) (int64, error) {
	if len(domains) == 0 {
		return 0, nil
	}

	defer p.lock()()

	res, err := p.Builder.Delete(searchesTable).
		Where(goqu.C("domain").In(domains)).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not delete searches in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not count deleted searches: %w", err)
	}

	return n, nil
}

// Query returns the records matching filter. The kind filter is evaluated on
// decoded rows so that rows stored without a kind discriminator still match.
func (p *PgSQL) Query(ctx context.Context, filter storage.SearchFilter) ([]domain.SearchRecord, error) {
	filter = filter.Normalize()

	w := commonFilters(filter)
	if filter.Source != domain.SourceAll {
		w = append(w, goqu.C("source").Eq(string(filter.Source)))
	}

	records, err := p.searches(ctx, w)
	if err != nil {
		return nil, err
	}
	if filter.Kind == "" {
		return records, nil
	}

	out := records[:0]
	for _, r := range records {
		if filter.Matches(r) {
			out = append(out, r)
		}
	}

	return out, nil
}

// QueryAvailableGenerated returns Generated records containing an Available
// availability result.
func (p *PgSQL) QueryAvailableGenerated(ctx context.Context, filter storage.SearchFilter) ([]domain.SearchRecord, error) {
	w := append(commonFilters(filter),
		goqu.C("source").Eq(string(domain.SourceGenerated)),
		goqu.L("results_json @> ?::jsonb", `[{"availability":"Available"}]`),
	)

	return p.searches(ctx, w)
}

// QueryDNSRecords returns DNS rows of User-Entered records grouped by domain.
func (p *PgSQL) QueryDNSRecords(ctx context.Context, filter storage.SearchFilter) (map[string]domain.DNSRecordSet, error) {
	w := append(commonFilters(filter),
		goqu.C("source").Eq(string(domain.SourceUserEntered)),
		goqu.L("jsonb_path_exists(results_json, '$[*].record_type')"),
	)

	records, err := p.searches(ctx, w)
	if err != nil {
		return nil, err
	}

	out := make(map[string]domain.DNSRecordSet)
	for _, r := range records {
		set, ok := out[r.Domain]
		if !ok {
			set = domain.DNSRecordSet{ID: r.ID, Timestamp: r.Timestamp, Records: []domain.DNSRecordRow{}}
		}
		for _, c := range r.Checks {
			if dns, ok := c.(domain.DNSResult); ok {
				set.Records = append(set.Records, domain.NewDNSRecordRow(dns))
			}
		}
		out[r.Domain] = set
	}

	return out, nil
}

func commonFilters(filter storage.SearchFilter) []exp.Expression {
	var w []exp.Expression
	if filter.Domain != "" {
		w = append(w, goqu.C("domain").ILike("%"+likeEscaper.Replace(filter.Domain)+"%"))
	}
	if !filter.Date.IsZero() {
		w = append(w, goqu.Func("left", goqu.C("search_timestamp"), 10).Eq(filter.Date.Format(time.DateOnly)))
	}

	return w
}

func (p *PgSQL) searches(ctx context.Context, w []exp.Expression) ([]domain.SearchRecord, error) {
	var rows []PgSearch
	if err := p.Builder.From(searchesTable).
		Where(w...).
		Order(goqu.C("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch searches from pg: %w", err)
	}

	return pgSearchesToDomain(ctx, rows), nil
}
