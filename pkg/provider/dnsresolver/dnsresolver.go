// Package dnsresolver implements provider.DNS with miekg/dns, querying a single
// configured recursive resolver.
package dnsresolver

import (
	"context"
	"fmt"
	"strings"
	"time"

	"domainintel/pkg/domain"
	"domainintel/pkg/provider"

	"github.com/miekg/dns"
)

const (
	DefaultServer  = "8.8.8.8:53"
	defaultTimeout = 5 * time.Second
	ednsBufferSize = 4096
)

type Options struct {
	// Server is the resolver address in host:port form.
	Server  string
	Timeout time.Duration
}

type Resolver struct {
	client *dns.Client
	server string
}

var _ provider.DNS = (*Resolver)(nil)

func New(options Options) *Resolver {
	if options.Server == "" {
		options.Server = DefaultServer
	}
	if options.Timeout <= 0 {
		options.Timeout = defaultTimeout
	}

	return &Resolver{
		client: &dns.Client{Timeout: options.Timeout},
		server: options.Server,
	}
}

func (r *Resolver) exchange(ctx context.Context, name string, qtype uint16, dnssec bool) (*dns.Msg, error) {
	msg := new(dns.Msg)
	msg.SetQuestion(name, qtype)
	msg.RecursionDesired = true
	if dnssec {
		msg.SetEdns0(ednsBufferSize, true)
	}

	resp, _, err := r.client.ExchangeContext(ctx, msg, r.server)
	if err != nil {
		return nil, fmt.Errorf("could not query %s %s: %w", name, dns.TypeToString[qtype], err)
	}
	// retry truncated answers over TCP
	if resp.Truncated {
		tcp := *r.client
		tcp.Net = "tcp"
		if resp, _, err = tcp.ExchangeContext(ctx, msg, r.server); err != nil {
			return nil, fmt.Errorf("could not query %s %s over tcp: %w", name, dns.TypeToString[qtype], err)
		}
	}

	return resp, nil
}

// rdata renders the data part of rr, e.g. "10 mx.example.com." for MX.
func rdata(rr dns.RR) string {
	return strings.TrimSpace(strings.TrimPrefix(rr.String(), rr.Header().String()))
}

func (r *Resolver) Resolve(ctx context.Context, domainName, recordType string) domain.DNSResult {
	recordType = strings.ToUpper(strings.TrimSpace(recordType))
	res := domain.DNSResult{Domain: domainName, RecordType: recordType, Records: []string{}}

	qtype, ok := dns.StringToType[recordType]
	if !ok {
		res.Error = fmt.Sprintf("unsupported record type %q", recordType)

		return res
	}

	name := dns.Fqdn(domainName)
	resp, err := r.exchange(ctx, name, qtype, false)
	if err != nil {
		res.Error = err.Error()

		return res
	}

	switch resp.Rcode {
	case dns.RcodeSuccess:
	case dns.RcodeNameError:
		res.Error = fmt.Sprintf("The DNS query name does not exist: %s", name)

		return res
	default:
		res.Error = fmt.Sprintf("DNS query for %s failed: %s", name, dns.RcodeToString[resp.Rcode])

		return res
	}

	for _, rr := range resp.Answer {
		if rr.Header().Rrtype == qtype {
			res.Records = append(res.Records, rdata(rr))
		}
	}
	if len(res.Records) == 0 {
		res.Error = fmt.Sprintf("The DNS response does not contain an answer to the question: %s IN %s", name, recordType)
	}

	return res
}
