package domain

import (
	"strings"
	"time"
)

const (
	// ExpirationLayout is the canonical layout of expiration timestamps.
	ExpirationLayout = "2006-01-02 15:04:05"
	dateLayout       = "2006-01-02"

	// ExpiringSoonWindow is how far ahead an expiration still counts as soon.
	ExpiringSoonWindow = 30 * 24 * time.Hour
)

// expirationLayouts are tried in order when normalizing registry dates.
var expirationLayouts = []string{ //nolint: gochecknoglobals
	time.RFC3339,
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05.0Z",
	"2006-01-02T15:04:05.000Z",
	"2006-01-02T15:04:05-0700",
	ExpirationLayout,
	"2006-01-02 15:04:05 MST",
	"2006-01-02 15:04:05-07",
	dateLayout,
	"2006.01.02",
	"2006/01/02",
	"02-Jan-2006",
	"02.01.2006",
	"January 2 2006",
	"Mon Jan 2 15:04:05 MST 2006",
}

// NormalizeExpiration rewrites a registry date as ExpirationLayout in UTC.
// Unparseable input is returned unchanged; empty input becomes NotAvailable.
func NormalizeExpiration(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == NotAvailable {
		return NotAvailable
	}

	for _, layout := range expirationLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC().Format(ExpirationLayout)
		}
	}

	return raw
}

// ExpiringSoon reports whether alert is a date no later than now plus
// ExpiringSoonWindow. It depends only on its arguments.
func ExpiringSoon(alert string, now time.Time) bool {
	alert = strings.TrimSpace(alert)
	if alert == "" || alert == NotAvailable {
		return false
	}

	t, err := time.Parse(ExpirationLayout, alert)
	if err != nil {
		if t, err = time.Parse(dateLayout, alert); err != nil {
			return false
		}
	}

	return !t.After(now.Add(ExpiringSoonWindow))
}

// Summary is the flattened view of a record shown in the history table.
type Summary struct {
	Registrar       string `json:"registrar"`
	ExpirationAlert string `json:"expiration_alert"`
	DNSSECValid     *bool  `json:"dnssec_valid"`
	Availability    string `json:"availability"`
	ErrorSummary    string `json:"error_summary"`
	ExpiringSoon    bool   `json:"expiring_soon"`
}

// Summarize derives a Summary from the checks of a single record. The first
// result of each kind wins.
func Summarize(checks CheckList, now time.Time) Summary {
	s := Summary{
		Registrar:       NotAvailable,
		ExpirationAlert: NotAvailable,
		Availability:    NotAvailable,
	}

	var (
		seen   = map[CheckKind]bool{}
		errors []string
	)
	for _, c := range checks {
		if e := c.Failure(); e != "" {
			errors = append(errors, e)
		}
		if seen[c.Kind()] {
			continue
		}
		seen[c.Kind()] = true

		switch v := c.(type) {
		case WhoisResult:
			if v.Registrar != "" {
				s.Registrar = v.Registrar
			}
		case ExpirationResult:
			if v.ExpirationAlert != "" {
				s.ExpirationAlert = v.ExpirationAlert
			}
		case DNSSECResult:
			valid := v.Valid
			s.DNSSECValid = &valid
		case AvailabilityResult:
			s.Availability = v.Label()
		case DNSResult, RDAPResult, ThreatResult:
		}
	}

	s.ErrorSummary = joinComma(errors)
	s.ExpiringSoon = ExpiringSoon(s.ExpirationAlert, now)

	return s
}

func joinComma(items []string) string {
	return strings.Join(items, ", ")
}
