package dnsresolver

import (
	"context"
	"errors"
	"strings"
	"time"

	"domainintel/pkg/domain"

	"github.com/miekg/dns"
)

const (
	msgNotEnabled       = "DNSSEC not enabled (no DNSKEY or DS records found)"
	msgValidationFailed = "DNSSEC validation failed"
)

var (
	errNoRecords        = errors.New(msgNotEnabled)
	errValidationFailed = errors.New(msgValidationFailed)
)

// ValidateDNSSEC checks that at least one DS record of the zone matches a
// DNSKEY and that the DNSKEY set carries a currently valid signature made by
// that key.
func (r *Resolver) ValidateDNSSEC(ctx context.Context, domainName string) domain.DNSSECResult {
	res := domain.DNSSECResult{Domain: domainName}
	if err := r.validate(ctx, dns.Fqdn(domainName), time.Now()); err != nil {
		res.Error = err.Error()

		return res
	}
	res.Valid = true

	return res
}

func (r *Resolver) fetch(ctx context.Context, name string, qtype uint16) ([]dns.RR, error) {
	resp, err := r.exchange(ctx, name, qtype, true)
	if err != nil {
		return nil, err
	}
	switch resp.Rcode {
	case dns.RcodeSuccess:
	case dns.RcodeNameError:
		return nil, errNoRecords
	default:
		return nil, errors.New("DNS query for " + name + " failed: " + dns.RcodeToString[resp.Rcode])
	}

	return resp.Answer, nil
}

func (r *Resolver) validate(ctx context.Context, name string, now time.Time) error {
	keyAnswer, err := r.fetch(ctx, name, dns.TypeDNSKEY)
	if err != nil {
		return err
	}
	dsAnswer, err := r.fetch(ctx, name, dns.TypeDS)
	if err != nil {
		return err
	}

	var (
		keys      []*dns.DNSKEY
		keySet    []dns.RR
		sigs      []*dns.RRSIG
		dsRecords []*dns.DS
	)
	for _, rr := range keyAnswer {
		switch v := rr.(type) {
		case *dns.DNSKEY:
			keys = append(keys, v)
			keySet = append(keySet, v)
		case *dns.RRSIG:
			if v.TypeCovered == dns.TypeDNSKEY {
				sigs = append(sigs, v)
			}
		}
	}
	for _, rr := range dsAnswer {
		if ds, ok := rr.(*dns.DS); ok {
			dsRecords = append(dsRecords, ds)
		}
	}
	if len(keys) == 0 || len(dsRecords) == 0 {
		return errNoRecords
	}

	trusted := trustedKeys(keys, dsRecords)
	if len(trusted) == 0 {
		return errValidationFailed
	}

	for _, sig := range sigs {
		key, ok := trusted[sig.KeyTag]
		if !ok || key.Algorithm != sig.Algorithm {
			continue
		}
		if !sig.ValidityPeriod(now) {
			continue
		}
		if err := sig.Verify(key, keySet); err == nil {
			return nil
		}
	}

	return errValidationFailed
}

// trustedKeys returns the keys whose digest matches one of the DS records, by key tag.
func trustedKeys(keys []*dns.DNSKEY, dsRecords []*dns.DS) map[uint16]*dns.DNSKEY {
	out := make(map[uint16]*dns.DNSKEY)
	for _, ds := range dsRecords {
		for _, key := range keys {
			if key.KeyTag() != ds.KeyTag || key.Algorithm != ds.Algorithm {
				continue
			}
			computed := key.ToDS(ds.DigestType)
			if computed != nil && strings.EqualFold(computed.Digest, ds.Digest) {
				out[ds.KeyTag] = key
			}
		}
	}

	return out
}
