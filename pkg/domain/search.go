package domain

import "time"

// Source partitions stored records into disjoint query spaces.
type Source string

const (
	SourceUserEntered Source = "User-Entered"
	SourceGenerated   Source = "Generated"

	// SourceAll is only meaningful as a query filter and widens it to every source.
	SourceAll Source = "all"
)

// ParseSource maps a query parameter to a Source. Empty input selects SourceUserEntered.
func ParseSource(s string) (Source, bool) {
	switch Source(s) {
	case "":
		return SourceUserEntered, true
	case SourceUserEntered, SourceGenerated, SourceAll:
		return Source(s), true
	}

	return "", false
}

// SearchRecord is one stored check run for one domain.
type SearchRecord struct {
	ID        int64     `json:"id"`
	Domain    string    `json:"domain"`
	Timestamp time.Time `json:"search_timestamp"`
	Source    Source    `json:"source"`
	Checks    CheckList `json:"results"`
}

// DNSRecordRow is a flattened DNS result ready for display.
type DNSRecordRow struct {
	RecordType string `json:"record_type"`
	Records    string `json:"records"`
	Error      string `json:"error"`
}

// DNSRecordSet groups the DNS rows of a domain under the first matching record.
type DNSRecordSet struct {
	ID        int64          `json:"id"`
	Timestamp time.Time      `json:"search_timestamp"`
	Records   []DNSRecordRow `json:"dns_records"`
}

// NewDNSRecordRow flattens r, substituting NotAvailable for empty values.
func NewDNSRecordRow(r DNSResult) DNSRecordRow {
	row := DNSRecordRow{RecordType: r.RecordType, Records: NotAvailable, Error: NotAvailable}
	if len(r.Records) > 0 {
		row.Records = joinComma(r.Records)
	}
	if r.Error != "" {
		row.Error = r.Error
	}

	return row
}
