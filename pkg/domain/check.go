package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NotAvailable is the placeholder used for string fields a provider could not fill.
const NotAvailable = "N/A"

// CheckKind names a family of check results.
type CheckKind string

const (
	KindWhois        CheckKind = "whois"
	KindDNS          CheckKind = "dns"
	KindExpiration   CheckKind = "expiration"
	KindRDAP         CheckKind = "rdap"
	KindDNSSEC       CheckKind = "dnssec"
	KindThreat       CheckKind = "threat"
	KindAvailability CheckKind = "availability"

	// KindSecurity is an alias accepted on input which expands to DNSSEC and threat intel.
	KindSecurity CheckKind = "security"
)

// AllKinds lists every concrete kind in the order the aggregator runs them.
var AllKinds = []CheckKind{ //nolint: gochecknoglobals
	KindWhois, KindDNS, KindExpiration, KindRDAP, KindDNSSEC, KindThreat, KindAvailability,
}

// CheckKinds is a set of enabled check kinds.
type CheckKinds map[CheckKind]struct{}

// ParseCheckKinds converts user supplied names into a set. The "security" alias
// is expanded and unknown names are rejected.
func ParseCheckKinds(names ...string) (CheckKinds, error) {
	out := CheckKinds{}
	for _, n := range names {
		k := CheckKind(strings.ToLower(strings.TrimSpace(n)))
		switch k {
		case "":
			continue
		case KindSecurity:
			out[KindDNSSEC] = struct{}{}
			out[KindThreat] = struct{}{}
		case KindWhois, KindDNS, KindExpiration, KindRDAP, KindDNSSEC, KindThreat, KindAvailability:
			out[k] = struct{}{}
		default:
			return nil, fmt.Errorf("unknown check kind %q", n)
		}
	}

	return out, nil
}

// Has reports whether k is enabled.
func (c CheckKinds) Has(k CheckKind) bool {
	_, ok := c[k]

	return ok
}

// Sorted returns the enabled kinds in AllKinds order.
func (c CheckKinds) Sorted() []CheckKind {
	out := make([]CheckKind, 0, len(c))
	for _, k := range AllKinds {
		if c.Has(k) {
			out = append(out, k)
		}
	}

	return out
}

// CheckResult is the output of a single provider call. The concrete types below
// are the only implementations; consumers switch on the concrete type.
type CheckResult interface {
	Kind() CheckKind
	Target() string
	Failure() string
	isCheckResult()
}

// WhoisResult holds the registration data returned by a WHOIS lookup.
type WhoisResult struct {
	Domain         string   `json:"domain"`
	Registrar      string   `json:"registrar"`
	CreationDate   string   `json:"creation_date"`
	ExpirationDate string   `json:"expiration_date"`
	NameServers    []string `json:"name_servers"`
	Status         []string `json:"status"`
	Error          string   `json:"error,omitempty"`
}

// NewFailedWhois returns a WHOIS result with every field at its placeholder value.
func NewFailedWhois(domainName, reason string) WhoisResult {
	return WhoisResult{
		Domain:         domainName,
		Registrar:      NotAvailable,
		CreationDate:   NotAvailable,
		ExpirationDate: NotAvailable,
		NameServers:    []string{},
		Status:         []string{},
		Error:          reason,
	}
}

// IsAvailable reports whether the domain looks unregistered: either the lookup
// failed or no registrar was found.
func (w WhoisResult) IsAvailable() bool {
	return w.Error != "" || w.Registrar == NotAvailable || w.Registrar == ""
}

// DNSResult holds the answers for a single record type.
type DNSResult struct {
	Domain     string   `json:"domain"`
	RecordType string   `json:"record_type"`
	Records    []string `json:"records"`
	Error      string   `json:"error,omitempty"`
}

// ExpirationResult carries the normalized expiration timestamp used for alerts.
type ExpirationResult struct {
	Domain          string `json:"domain"`
	ExpirationAlert string `json:"expiration_alert"`
	Error           string `json:"error,omitempty"`
}

// RDAPResult holds the registrar and status reported by an RDAP server.
type RDAPResult struct {
	Domain    string   `json:"domain"`
	Registrar string   `json:"rdap_registrar"`
	Status    []string `json:"rdap_status"`
	Error     string   `json:"error,omitempty"`
}

// DNSSECResult reports whether the DNSKEY set validated against the DS set.
type DNSSECResult struct {
	Domain string `json:"domain"`
	Valid  bool   `json:"dnssec_valid"`
	Error  string `json:"error,omitempty"`
}

// ThreatInfo is the risk data returned by the threat intelligence provider.
type ThreatInfo struct {
	RiskScore *float64 `json:"risk_score,omitempty"`
	Profile   string   `json:"threat_profile,omitempty"`
}

// UnmarshalJSON accepts rows written by older versions, where a missing score
// was stored as the string "N/A" and the profile could be an object. A score
// that is not a number decodes to nil and a non-string profile keeps its JSON
// text.
func (t *ThreatInfo) UnmarshalJSON(b []byte) error {
	var raw struct {
		RiskScore json.RawMessage `json:"risk_score"`
		Profile   json.RawMessage `json:"threat_profile"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("could not decode threat info: %w", err)
	}

	*t = ThreatInfo{RiskScore: lenientFloat(raw.RiskScore)}
	if len(raw.Profile) > 0 && string(raw.Profile) != "null" {
		if err := json.Unmarshal(raw.Profile, &t.Profile); err != nil {
			t.Profile = string(raw.Profile)
		}
	}

	return nil
}

func lenientFloat(raw json.RawMessage) *float64 {
	if len(raw) == 0 {
		return nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return &f
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return &f
		}
	}

	return nil
}

// ThreatResult wraps ThreatInfo. Info is nil whenever Error is set.
type ThreatResult struct {
	Domain string      `json:"domain"`
	Info   *ThreatInfo `json:"threat_info"`
	Error  string      `json:"error,omitempty"`
}

// AvailabilityResult is derived from a WHOIS result.
type AvailabilityResult struct {
	Domain    string `json:"domain"`
	Available bool   `json:"-"`
}

const (
	AvailabilityAvailable    = "Available"
	AvailabilityNotAvailable = "Not Available"
)

// Label returns the human readable availability.
func (a AvailabilityResult) Label() string {
	if a.Available {
		return AvailabilityAvailable
	}

	return AvailabilityNotAvailable
}

func (WhoisResult) Kind() CheckKind        { return KindWhois }
func (DNSResult) Kind() CheckKind          { return KindDNS }
func (ExpirationResult) Kind() CheckKind   { return KindExpiration }
func (RDAPResult) Kind() CheckKind         { return KindRDAP }
func (DNSSECResult) Kind() CheckKind       { return KindDNSSEC }
func (ThreatResult) Kind() CheckKind       { return KindThreat }
func (AvailabilityResult) Kind() CheckKind { return KindAvailability }

func (r WhoisResult) Target() string        { return r.Domain }
func (r DNSResult) Target() string          { return r.Domain }
func (r ExpirationResult) Target() string   { return r.Domain }
func (r RDAPResult) Target() string         { return r.Domain }
func (r DNSSECResult) Target() string       { return r.Domain }
func (r ThreatResult) Target() string       { return r.Domain }
func (r AvailabilityResult) Target() string { return r.Domain }

func (r WhoisResult) Failure() string      { return r.Error }
func (r DNSResult) Failure() string        { return r.Error }
func (r ExpirationResult) Failure() string { return r.Error }
func (r RDAPResult) Failure() string       { return r.Error }
func (r DNSSECResult) Failure() string     { return r.Error }
func (r ThreatResult) Failure() string     { return r.Error }
func (AvailabilityResult) Failure() string { return "" }

func (WhoisResult) isCheckResult()        {}
func (DNSResult) isCheckResult()          {}
func (ExpirationResult) isCheckResult()   {}
func (RDAPResult) isCheckResult()         {}
func (DNSSECResult) isCheckResult()       {}
func (ThreatResult) isCheckResult()       {}
func (AvailabilityResult) isCheckResult() {}
