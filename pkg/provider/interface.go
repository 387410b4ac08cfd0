// Package provider defines the check providers. Each backend lives in its own
// sub-package. Lookup failures are reported in the Error field of the returned
// result instead of as Go errors, so a failing provider never aborts a batch.
//
//go:generate mockgen -package mockprovider -source=interface.go -destination=mock/mockprovider.go *
package provider

import (
	"context"

	"domainintel/pkg/domain"
)

// Whois looks up registration data.
type Whois interface {
	Lookup(ctx context.Context, domainName string) domain.WhoisResult
}

// DNS resolves records and validates DNSSEC.
type DNS interface {
	// Resolve queries a single record type, e.g. "A" or "MX".
	Resolve(ctx context.Context, domainName, recordType string) domain.DNSResult
	// ValidateDNSSEC checks the DNSKEY set of the zone against its DS set.
	ValidateDNSSEC(ctx context.Context, domainName string) domain.DNSSECResult
}

// RDAP looks up registration data over RDAP.
type RDAP interface {
	Lookup(ctx context.Context, domainName string) domain.RDAPResult
}

// ThreatIntel returns the risk profile of a domain.
type ThreatIntel interface {
	Profile(ctx context.Context, domainName string) domain.ThreatResult
}

// NameGenerator suggests domain names. Unlike the lookup providers it returns
// an error, because there is no per-domain result to carry it.
type NameGenerator interface {
	// Generate returns at most count names that end with one of tlds.
	Generate(ctx context.Context, prompt string, tlds []string, count int) ([]string, error)
}

// Liveness probes whether a domain serves a website.
type Liveness interface {
	Probe(ctx context.Context, domainName string) domain.LivenessStatus
}
