package whoislookup_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"domainintel/pkg/cache"
	"domainintel/pkg/domain"
	"domainintel/pkg/logger"
	"domainintel/pkg/provider/whoislookup"

	"github.com/stretchr/testify/require"
)

const verisignResponse = `   Domain Name: EXAMPLE.COM
   Registry Domain ID: 2336799_DOMAIN_COM-VRSN
   Registrar WHOIS Server: whois.iana.org
   Registrar URL: http://res-dom.iana.org
   Updated Date: 2024-08-14T07:01:34Z
   Creation Date: 1995-08-14T04:00:00Z
   Registry Expiry Date: 2025-08-13T04:00:00Z
   Registrar: RESERVED-Internet Assigned Numbers Authority
   Registrar IANA ID: 376
   Domain Status: clientDeleteProhibited https://icann.org/epp#clientDeleteProhibited
   Domain Status: clientTransferProhibited https://icann.org/epp#clientTransferProhibited
   Name Server: A.IANA-SERVERS.NET
   Name Server: B.IANA-SERVERS.NET
   DNSSEC: signedDelegation
>>> Last update of whois database: 2024-09-01T10:00:00Z <<<
`

const notFoundResponse = `No match for "SURELY-FREE-NAME-123.COM".
>>> Last update of whois database: 2024-09-01T10:00:00Z <<<
`

type fakeQuerier struct {
	mu      sync.Mutex
	calls   int
	servers []string
	raw     string
	err     error
	delay   time.Duration
}

func (f *fakeQuerier) Whois(_ string, servers ...string) (string, error) {
	f.mu.Lock()
	f.calls++
	f.servers = servers
	f.mu.Unlock()
	time.Sleep(f.delay)

	return f.raw, f.err
}

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func TestParse(t *testing.T) {
	res, err := whoislookup.Parse("example.com", verisignResponse)
	require.NoError(t, err)
	require.Equal(t, domain.WhoisResult{
		Domain:         "example.com",
		Registrar:      "RESERVED-Internet Assigned Numbers Authority",
		CreationDate:   "1995-08-14 04:00:00",
		ExpirationDate: "2025-08-13 04:00:00",
		NameServers:    []string{"a.iana-servers.net", "b.iana-servers.net"},
		Status:         []string{"clientDeleteProhibited", "clientTransferProhibited"},
	}, res)
}

func TestParseRegionalFormats(t *testing.T) {
	cn := "Domain Name: example.cn\nSponsoring Registrar: Alibaba Cloud\nRegistration Time: 2003-03-17 12:20:05\n" +
		"Expiration Time: 2026-03-17 12:48:36\nName Server: ns1.example.cn\nDomain Status: ok\n"
	res, err := whoislookup.Parse("example.cn", cn)
	require.NoError(t, err)
	require.Equal(t, "Alibaba Cloud", res.Registrar)
	require.Equal(t, "2003-03-17 12:20:05", res.CreationDate)
	require.Equal(t, "2026-03-17 12:48:36", res.ExpirationDate)
	require.Equal(t, []string{"ns1.example.cn"}, res.NameServers)

	ru := "domain: EXAMPLE.RU\nnserver: ns1.example.ru.\nstate: REGISTERED\nregistrar: RU-CENTER-RU\n" +
		"created: 2001-01-01T00:00:00Z\npaid-till: 2026-01-01T00:00:00Z\n"
	res, err = whoislookup.Parse("example.ru", ru)
	require.NoError(t, err)
	require.Equal(t, "RU-CENTER-RU", res.Registrar)
	require.Equal(t, "2026-01-01 00:00:00", res.ExpirationDate)
	require.Equal(t, []string{"ns1.example.ru."}, res.NameServers)
}

func TestParseMissingFields(t *testing.T) {
	res, err := whoislookup.Parse("odd.io", "Domain Name: odd.io\nRegistrant: someone\n")
	require.NoError(t, err)
	require.Equal(t, domain.NotAvailable, res.Registrar)
	require.Equal(t, domain.NotAvailable, res.ExpirationDate)
	require.Empty(t, res.NameServers)
	require.NotNil(t, res.NameServers)
	require.True(t, res.IsAvailable())
}

func TestParseNotRegistered(t *testing.T) {
	_, err := whoislookup.Parse("surely-free-name-123.com", notFoundResponse)
	require.ErrorIs(t, err, whoislookup.ErrNotRegistered)

	_, err = whoislookup.Parse("x.com", "   ")
	require.ErrorIs(t, err, whoislookup.ErrNotRegistered)
}

func TestLookup(t *testing.T) {
	q := &fakeQuerier{raw: verisignResponse}
	c := whoislookup.NewWithQuerier(q, whoislookup.Options{Server: "whois.verisign-grs.com"}, nil)

	res := c.Lookup(context.Background(), "example.com")
	require.Empty(t, res.Error)
	require.Equal(t, "RESERVED-Internet Assigned Numbers Authority", res.Registrar)
	require.Equal(t, []string{"whois.verisign-grs.com"}, q.servers)
}

func TestLookupFailures(t *testing.T) {
	tests := []struct {
		name    string
		querier *fakeQuerier
		want    string
	}{
		{
			name:    "transport error",
			querier: &fakeQuerier{err: errors.New("dial tcp: i/o timeout")},
			want:    "WHOIS lookup failed: dial tcp: i/o timeout",
		},
		{
			name:    "not registered",
			querier: &fakeQuerier{raw: notFoundResponse},
			want:    "WHOIS lookup failed: no match for domain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := whoislookup.NewWithQuerier(tt.querier, whoislookup.Options{}, nil)
			res := c.Lookup(context.Background(), "surely-free-name-123.com")
			require.Equal(t, domain.NewFailedWhois("surely-free-name-123.com", tt.want), res)
			require.True(t, res.IsAvailable())
		})
	}
}

func TestLookupContextCancelled(t *testing.T) {
	q := &fakeQuerier{raw: verisignResponse, delay: time.Second}
	c := whoislookup.NewWithQuerier(q, whoislookup.Options{}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	res := c.Lookup(ctx, "example.com")
	require.Contains(t, res.Error, "WHOIS lookup failed: context deadline exceeded")
}

func TestLookupUsesCache(t *testing.T) {
	q := &fakeQuerier{raw: verisignResponse}
	c := whoislookup.NewWithQuerier(q, whoislookup.Options{CacheTTL: time.Minute}, cache.NewMemory(0))

	first := c.Lookup(context.Background(), "Example.com")
	second := c.Lookup(context.Background(), "example.com")
	require.Equal(t, first.Registrar, second.Registrar)
	require.Equal(t, 1, q.calls)
}
