package domain

import (
	"encoding/json"
	"fmt"
)

// CheckList is an ordered list of heterogeneous check results. It serializes to
// a JSON array where every element carries a "kind" discriminator next to the
// result's own fields.
type CheckList []CheckResult

type availabilityJSON struct {
	Kind         CheckKind `json:"kind"`
	Domain       string    `json:"domain"`
	Availability string    `json:"availability"`
}

func encodeCheck(r CheckResult) (any, error) {
	switch v := r.(type) {
	case WhoisResult:
		return struct {
			Kind CheckKind `json:"kind"`
			WhoisResult
		}{KindWhois, v}, nil
	case DNSResult:
		return struct {
			Kind CheckKind `json:"kind"`
			DNSResult
		}{KindDNS, v}, nil
	case ExpirationResult:
		return struct {
			Kind CheckKind `json:"kind"`
			ExpirationResult
		}{KindExpiration, v}, nil
	case RDAPResult:
		return struct {
			Kind CheckKind `json:"kind"`
			RDAPResult
		}{KindRDAP, v}, nil
	case DNSSECResult:
		return struct {
			Kind CheckKind `json:"kind"`
			DNSSECResult
		}{KindDNSSEC, v}, nil
	case ThreatResult:
		return struct {
			Kind CheckKind `json:"kind"`
			ThreatResult
		}{KindThreat, v}, nil
	case AvailabilityResult:
		return availabilityJSON{Kind: KindAvailability, Domain: v.Domain, Availability: v.Label()}, nil
	default:
		return nil, fmt.Errorf("unsupported check result %T", r)
	}
}

// MarshalJSON implements json.Marshaler.
func (l CheckList) MarshalJSON() ([]byte, error) {
	out := make([]any, 0, len(l))
	for _, r := range l {
		v, err := encodeCheck(r)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return json.Marshal(out)
}

// inferKind guesses the kind of an element written without a discriminator,
// which is how rows were stored before the "kind" field existed.
func inferKind(fields map[string]json.RawMessage) (CheckKind, bool) {
	if raw, ok := fields["kind"]; ok {
		var k CheckKind
		if err := json.Unmarshal(raw, &k); err == nil && k != "" {
			return k, true
		}
	}

	probes := []struct {
		key  string
		kind CheckKind
	}{
		{"record_type", KindDNS},
		{"rdap_registrar", KindRDAP},
		{"dnssec_valid", KindDNSSEC},
		{"threat_info", KindThreat},
		{"expiration_alert", KindExpiration},
		{"availability", KindAvailability},
		{"registrar", KindWhois},
	}
	for _, p := range probes {
		if _, ok := fields[p.key]; ok {
			return p.kind, true
		}
	}

	return "", false
}

func decodeCheck(raw json.RawMessage) (CheckResult, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("could not decode check result: %w", err)
	}

	kind, ok := inferKind(fields)
	if !ok {
		return nil, fmt.Errorf("could not determine kind of check result: %s", raw)
	}

	switch kind {
	case KindWhois:
		return decodeAs[WhoisResult](kind, raw)
	case KindDNS:
		return decodeAs[DNSResult](kind, raw)
	case KindExpiration:
		return decodeAs[ExpirationResult](kind, raw)
	case KindRDAP:
		return decodeAs[RDAPResult](kind, raw)
	case KindDNSSEC:
		return decodeAs[DNSSECResult](kind, raw)
	case KindThreat:
		return decodeAs[ThreatResult](kind, raw)
	case KindAvailability:
		var v availabilityJSON
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("could not decode availability result: %w", err)
		}

		return AvailabilityResult{Domain: v.Domain, Available: v.Availability == AvailabilityAvailable}, nil
	case KindSecurity:
		return nil, fmt.Errorf("%q is not a result kind", kind)
	default:
		return nil, fmt.Errorf("unknown check result kind %q", kind)
	}
}

func decodeAs[T CheckResult](kind CheckKind, raw json.RawMessage) (CheckResult, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("could not decode %s result: %w", kind, err)
	}

	return v, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *CheckList) UnmarshalJSON(b []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(b, &raws); err != nil {
		return fmt.Errorf("could not decode check list: %w", err)
	}

	out := make(CheckList, 0, len(raws))
	for _, raw := range raws {
		r, err := decodeCheck(raw)
		if err != nil {
			return err
		}
		out = append(out, r)
	}
	*l = out

	return nil
}
