package domain

import (
	"strings"
	"time"
)

// ExpirationFromWhois derives the expiration check from a WHOIS result of the
// same run. It never performs a lookup of its own.
func ExpirationFromWhois(w WhoisResult) ExpirationResult {
	res := ExpirationResult{Domain: w.Domain, ExpirationAlert: NotAvailable}

	raw := strings.TrimSpace(w.ExpirationDate)
	if raw == "" || raw == NotAvailable {
		res.Error = "No expiration date available"

		return res
	}

	t, err := time.Parse(ExpirationLayout, raw)
	if err != nil {
		if t, err = time.Parse(dateLayout, raw); err != nil {
			res.Error = "Invalid expiration date format: " + raw

			return res
		}
	}
	res.ExpirationAlert = t.Format(ExpirationLayout)

	return res
}

// AvailabilityFromWhois derives availability from a WHOIS result.
func AvailabilityFromWhois(w WhoisResult) AvailabilityResult {
	return AvailabilityResult{Domain: w.Domain, Available: w.IsAvailable()}
}
