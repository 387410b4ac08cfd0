package aggregator

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/idna"
)

// NormalizeDomain returns the lower-case ASCII form of a user supplied domain.
//   - Surrounding whitespace and a trailing dot are removed
//   - A pasted URL is reduced to its host
//   - Internationalized names are converted to punycode
func NormalizeDomain(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("empty domain")
	}
	if strings.Contains(s, "://") {
		u, err := url.Parse(s)
		if err != nil || u.Hostname() == "" {
			return "", fmt.Errorf("could not parse URL %q", raw)
		}
		s = u.Hostname()
	}
	s = strings.TrimSuffix(s, ".")

	ascii, err := idna.Lookup.ToASCII(s)
	if err != nil {
		return "", fmt.Errorf("invalid domain name %q: %w", raw, err)
	}

	return ascii, nil
}

// normalizeTLDs makes sure every TLD starts with a dot and drops blanks.
func normalizeTLDs(tlds []string) []string {
	out := make([]string, 0, len(tlds))
	for _, t := range tlds {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if !strings.HasPrefix(t, ".") {
			t = "." + t
		}
		out = append(out, t)
	}

	return out
}
