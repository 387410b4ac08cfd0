package whoislookup

import (
	"errors"
	"regexp"
	"strings"

	"domainintel/pkg/domain"
)

// ErrNotRegistered is returned by Parse when the registry reports no match.
var ErrNotRegistered = errors.New("no match for domain")

var (
	reRegistrar = regexp.MustCompile(
		`(?im)^[ \t]*(?:registrar|sponsoring registrar|registrar name|registration service provider)[ \t]*:[ \t]*(\S.*?)[ \t\r]*$`)
	reCreated = regexp.MustCompile(
		`(?im)^[ \t]*(?:creation date|created(?: on)?|registration time|registered on|domain name commencement date)[ \t]*:[ \t]*(\S.*?)[ \t\r]*$`)
	reExpires = regexp.MustCompile(
		`(?im)^[ \t]*(?:registry expiry date|registrar registration expiration date|expiration date|expiry date|expiration time|expires(?: on)?|paid-till)[ \t]*:[ \t]*(\S.*?)[ \t\r]*$`)
	reNameServer = regexp.MustCompile(`(?im)^[ \t]*(?:name ?servers?|nserver)[ \t]*:[ \t]*(\S+)`)
	reStatus     = regexp.MustCompile(`(?im)^[ \t]*(?:domain )?status[ \t]*:[ \t]*(\S+)`)
)

// registeredMarkers indicate a registered domain and are checked before the
// not-found markers, since some registries echo disclaimers containing them.
var registeredMarkers = []string{ //nolint: gochecknoglobals
	"registrar:",
	"registrant:",
	"creation date:",
	"registry expiry date:",
	"name server:",
	"nserver:",
	"domain status:",
}

var notFoundMarkers = []string{ //nolint: gochecknoglobals
	"no match for",
	"not found",
	"no entries found",
	"no data found",
	"status: free",
	"status: available",
	"no object found",
	"object does not exist",
	"nothing found",
	"is available for registration",
	"the queried object does not exist",
	"no such domain",
	"domain name has not been registered",
	"no matching record",
}

func firstMatch(re *regexp.Regexp, raw string) string {
	if m := re.FindStringSubmatch(raw); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}

	return ""
}

func allMatches(re *regexp.Regexp, raw string, normalize func(string) string) []string {
	out := []string{}
	seen := map[string]bool{}
	for _, m := range re.FindAllStringSubmatch(raw, -1) {
		v := normalize(strings.TrimSpace(m[1]))
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}

	return out
}

func isRegistered(lower string) bool {
	for _, m := range registeredMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}

	return false
}

func isNotFound(lower string) bool {
	for _, m := range notFoundMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}

	return false
}

func orNotAvailable(s string) string {
	if s == "" {
		return domain.NotAvailable
	}

	return s
}

// Parse extracts registration fields from a raw WHOIS response. Dates are
// normalized with domain.NormalizeExpiration.
func Parse(domainName, raw string) (domain.WhoisResult, error) {
	lower := strings.ToLower(raw)
	if strings.TrimSpace(raw) == "" || (!isRegistered(lower) && isNotFound(lower)) {
		return domain.WhoisResult{}, ErrNotRegistered
	}

	return domain.WhoisResult{
		Domain:         domainName,
		Registrar:      orNotAvailable(firstMatch(reRegistrar, raw)),
		CreationDate:   domain.NormalizeExpiration(firstMatch(reCreated, raw)),
		ExpirationDate: domain.NormalizeExpiration(firstMatch(reExpires, raw)),
		NameServers:    allMatches(reNameServer, raw, strings.ToLower),
		Status:         allMatches(reStatus, raw, func(s string) string { return s }),
	}, nil
}
