package aggregator_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"domainintel/internal/aggregator"
	"domainintel/internal/session"
	"domainintel/pkg/domain"
	"domainintel/pkg/logger"
	mockprovider "domainintel/pkg/provider/mock"
	"domainintel/pkg/serrors"
	"domainintel/pkg/storage"
	mockstorage "domainintel/pkg/storage/mock"
	"domainintel/pkg/storage/noop"

	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

type fixture struct {
	whois  *mockprovider.MockWhois
	dns    *mockprovider.MockDNS
	rdap   *mockprovider.MockRDAP
	threat *mockprovider.MockThreatIntel
	names  *mockprovider.MockNameGenerator
	store  *mockstorage.MockStorage
	agg    aggregator.Aggregator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		whois:  mockprovider.NewMockWhois(ctrl),
		dns:    mockprovider.NewMockDNS(ctrl),
		rdap:   mockprovider.NewMockRDAP(ctrl),
		threat: mockprovider.NewMockThreatIntel(ctrl),
		names:  mockprovider.NewMockNameGenerator(ctrl),
		store:  mockstorage.NewMockStorage(ctrl),
	}
	f.agg = aggregator.New(f.store, aggregator.Providers{
		Whois:  f.whois,
		DNS:    f.dns,
		RDAP:   f.rdap,
		Threat: f.threat,
		Names:  f.names,
	}, aggregator.Options{Concurrency: 2})

	return f
}

func registered(name string) domain.WhoisResult {
	return domain.WhoisResult{
		Domain:         name,
		Registrar:      "Example Registrar",
		CreationDate:   "1995-08-14 04:00:00",
		ExpirationDate: "2030-08-13 04:00:00",
		NameServers:    []string{"a.iana-servers.net"},
		Status:         []string{"clientDeleteProhibited"},
	}
}

// appendWithIDs stores records with increasing ids.
func appendWithIDs(f *fixture) *[]domain.SearchRecord {
	var (
		mu     sync.Mutex
		stored []domain.SearchRecord
	)
	f.store.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r domain.SearchRecord) (domain.SearchRecord, error) {
			mu.Lock()
			defer mu.Unlock()
			r.ID = int64(len(stored) + 1)
			stored = append(stored, r)

			return r, nil
		}).AnyTimes()

	return &stored
}

func kinds(t *testing.T, names ...string) domain.CheckKinds {
	t.Helper()
	k, err := domain.ParseCheckKinds(names...)
	require.NoError(t, err)

	return k
}

func TestAggregator_RunChecks_AllKinds(t *testing.T) {
	f := newFixture(t)
	stored := appendWithIDs(f)
	sess := session.New("s1")

	f.whois.EXPECT().Lookup(gomock.Any(), "example.com").Return(registered("example.com")).Times(1)
	for _, rt := range []string{"A", "MX", "TXT"} {
		f.dns.EXPECT().Resolve(gomock.Any(), "example.com", rt).
			Return(domain.DNSResult{Domain: "example.com", RecordType: rt, Records: []string{"x"}})
	}
	f.rdap.EXPECT().Lookup(gomock.Any(), "example.com").
		Return(domain.RDAPResult{Domain: "example.com", Registrar: "Example Registrar", Status: []string{"active"}})
	f.dns.EXPECT().ValidateDNSSEC(gomock.Any(), "example.com").
		Return(domain.DNSSECResult{Domain: "example.com", Valid: true})
	f.threat.EXPECT().Profile(gomock.Any(), "example.com").
		Return(domain.ThreatResult{Domain: "example.com", Error: "DomainTools credentials missing"})

	batch, err := f.agg.RunChecks(context.Background(), sess, aggregator.Request{Domains: []string{" Example.COM "}})
	require.NoError(t, err)
	require.Empty(t, batch.Warnings)
	require.Len(t, batch.Records, 1)

	rec := batch.Records[0]
	require.Equal(t, int64(1), rec.ID)
	require.Equal(t, "example.com", rec.Domain)
	require.Equal(t, domain.SourceUserEntered, rec.Source)
	require.False(t, rec.Timestamp.IsZero())

	var got []domain.CheckKind
	for _, c := range rec.Checks {
		got = append(got, c.Kind())
	}
	require.Equal(t, []domain.CheckKind{
		domain.KindWhois,
		domain.KindDNS, domain.KindDNS, domain.KindDNS,
		domain.KindExpiration,
		domain.KindRDAP,
		domain.KindDNSSEC,
		domain.KindThreat,
		domain.KindAvailability,
	}, got)
	require.Equal(t, domain.ExpirationResult{Domain: "example.com", ExpirationAlert: "2030-08-13 04:00:00"}, rec.Checks[4])
	require.Equal(t, domain.AvailabilityResult{Domain: "example.com", Available: false}, rec.Checks[8])

	require.Len(t, *stored, 1)
	require.Equal(t, rec.Checks, sess.LastRun())
}

func TestAggregator_RunChecks_PreservesOrder(t *testing.T) {
	f := newFixture(t)
	appendWithIDs(f)
	sess := session.New("s1")

	domains := []string{"c.com", "a.com", "", "b.com", "a.com"}
	f.whois.EXPECT().Lookup(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, name string) domain.WhoisResult {
			return registered(name)
		}).Times(4)

	batch, err := f.agg.RunChecks(context.Background(), sess, aggregator.Request{
		Domains: domains,
		Kinds:   kinds(t, "whois"),
	})
	require.NoError(t, err)
	require.Len(t, batch.Records, 4)
	for i, want := range []string{"c.com", "a.com", "b.com", "a.com"} {
		require.Equal(t, want, batch.Records[i].Domain)
		require.Equal(t, want, batch.Records[i].Checks[0].Target())
	}
	require.Len(t, sess.LastRun(), 4)
}

func TestAggregator_RunChecks_DNSTypes(t *testing.T) {
	f := newFixture(t)
	appendWithIDs(f)

	f.dns.EXPECT().Resolve(gomock.Any(), "example.com", "AAAA").
		Return(domain.DNSResult{Domain: "example.com", RecordType: "AAAA", Records: []string{}, Error: "no answer"})
	f.dns.EXPECT().Resolve(gomock.Any(), "example.com", "NS").
		Return(domain.DNSResult{Domain: "example.com", RecordType: "NS", Records: []string{"ns1."}})

	batch, err := f.agg.RunChecks(context.Background(), nil, aggregator.Request{
		Domains:  []string{"example.com"},
		Kinds:    kinds(t, "dns"),
		DNSTypes: []string{"aaaa", " ", "NS"},
	})
	require.NoError(t, err)
	require.Len(t, batch.Records[0].Checks, 2)
	require.Equal(t, "no answer", batch.Records[0].Checks[0].Failure())
}

func TestAggregator_RunChecks_SecurityAliasAndWhoisReuse(t *testing.T) {
	f := newFixture(t)
	appendWithIDs(f)

	f.whois.EXPECT().Lookup(gomock.Any(), "free.com").
		Return(domain.NewFailedWhois("free.com", "WHOIS lookup failed: no match for domain")).Times(1)
	f.dns.EXPECT().ValidateDNSSEC(gomock.Any(), "free.com").
		Return(domain.DNSSECResult{Domain: "free.com", Error: "DNSSEC not enabled (no DNSKEY or DS records found)"})
	f.threat.EXPECT().Profile(gomock.Any(), "free.com").Return(domain.ThreatResult{Domain: "free.com"})

	batch, err := f.agg.RunChecks(context.Background(), nil, aggregator.Request{
		Domains: []string{"free.com"},
		Kinds:   kinds(t, "expiration", "availability", "security"),
	})
	require.NoError(t, err)

	checks := batch.Records[0].Checks
	require.Len(t, checks, 4)
	require.Equal(t, domain.ExpirationResult{
		Domain:          "free.com",
		ExpirationAlert: domain.NotAvailable,
		Error:           "No expiration date available",
	}, checks[0])
	require.Equal(t, domain.KindDNSSEC, checks[1].Kind())
	require.Equal(t, domain.KindThreat, checks[2].Kind())
	require.Equal(t, domain.AvailabilityResult{Domain: "free.com", Available: true}, checks[3])
}

func TestAggregator_RunChecks_EmptyInput(t *testing.T) {
	f := newFixture(t)
	sess := session.New("s1")
	sess.SetLastRun(domain.CheckList{domain.DNSResult{Domain: "keep.com"}})

	for _, domains := range [][]string{nil, {}, {"", "   "}} {
		_, err := f.agg.RunChecks(context.Background(), sess, aggregator.Request{Domains: domains})
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	}
	require.Len(t, sess.LastRun(), 1)
}

func TestAggregator_RunChecks_StoreFailureBecomesWarning(t *testing.T) {
	f := newFixture(t)
	sess := session.New("s1")

	f.whois.EXPECT().Lookup(gomock.Any(), "example.com").Return(registered("example.com"))
	f.store.EXPECT().Append(gomock.Any(), gomock.Any()).Return(domain.SearchRecord{}, errors.New("disk full"))

	batch, err := f.agg.RunChecks(context.Background(), sess, aggregator.Request{
		Domains: []string{"example.com"},
		Kinds:   kinds(t, "whois"),
	})
	require.NoError(t, err)
	require.Len(t, batch.Warnings, 1)
	require.Contains(t, batch.Warnings[0], "disk full")
	require.Equal(t, int64(0), batch.Records[0].ID)
	require.Len(t, sess.LastRun(), 1)
}

func TestAggregator_RunChecks_NoopStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	whois := mockprovider.NewMockWhois(ctrl)
	whois.EXPECT().Lookup(gomock.Any(), "example.com").Return(registered("example.com"))

	agg := aggregator.New(noop.Storage{}, aggregator.Providers{Whois: whois}, aggregator.Options{})
	batch, err := agg.RunChecks(context.Background(), nil, aggregator.Request{
		Domains: []string{"example.com"},
		Kinds:   kinds(t, "availability"),
	})
	require.NoError(t, err)
	require.Len(t, batch.Warnings, 1)
	require.Contains(t, batch.Warnings[0], "record store unavailable")
}

func TestAggregator_RunChecks_InvalidNameStillChecked(t *testing.T) {
	f := newFixture(t)
	appendWithIDs(f)

	f.whois.EXPECT().Lookup(gomock.Any(), "bad_name!.com").Return(domain.NewFailedWhois("bad_name!.com", "WHOIS lookup failed"))

	batch, err := f.agg.RunChecks(context.Background(), nil, aggregator.Request{
		Domains: []string{"Bad_Name!.com"},
		Kinds:   kinds(t, "whois"),
	})
	require.NoError(t, err)
	require.Len(t, batch.Warnings, 1)
	require.Equal(t, "bad_name!.com", batch.Records[0].Domain)
}

func TestAggregator_Generate(t *testing.T) {
	f := newFixture(t)
	stored := appendWithIDs(f)

	f.names.EXPECT().Generate(gomock.Any(), "AI startup", []string{".com", ".ai"}, 3).
		Return([]string{"taken.com", "free.ai", "free.com"}, nil)
	f.whois.EXPECT().Lookup(gomock.Any(), "taken.com").Return(registered("taken.com"))
	f.whois.EXPECT().Lookup(gomock.Any(), "free.ai").Return(domain.NewFailedWhois("free.ai", "no match"))
	f.whois.EXPECT().Lookup(gomock.Any(), "free.com").
		Return(domain.WhoisResult{Domain: "free.com", Registrar: domain.NotAvailable})

	out, err := f.agg.Generate(context.Background(), aggregator.GenerateRequest{
		Prompt: "AI startup",
		TLDs:   []string{"com", ".AI"},
		Count:  3,
	})
	require.NoError(t, err)
	require.Equal(t, []domain.AvailabilityResult{
		{Domain: "free.ai", Available: true},
		{Domain: "free.com", Available: true},
	}, out.Available)

	require.Len(t, *stored, 2)
	for _, r := range *stored {
		require.Equal(t, domain.SourceGenerated, r.Source)
		require.Len(t, r.Checks, 1)
		require.Equal(t, domain.KindAvailability, r.Checks[0].Kind())
	}
}

func TestAggregator_Generate_Errors(t *testing.T) {
	f := newFixture(t)

	f.names.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, serrors.With(serrors.ErrConfigurationMissing, "Gemini API key missing"))
	_, err := f.agg.Generate(context.Background(), aggregator.GenerateRequest{Prompt: "x", Count: 2})
	require.ErrorIs(t, err, serrors.ErrConfigurationMissing)

	_, err = f.agg.Generate(context.Background(), aggregator.GenerateRequest{Prompt: "x"})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	agg := aggregator.New(noop.Storage{}, aggregator.Providers{}, aggregator.Options{})
	_, err = agg.Generate(context.Background(), aggregator.GenerateRequest{Prompt: "x", Count: 1})
	require.ErrorIs(t, err, serrors.ErrConfigurationMissing)
}

func TestAggregator_Enqueue(t *testing.T) {
	f := newFixture(t)

	f.store.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
		func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
			job, ok := args.(aggregator.RunChecksJob)
			require.True(t, ok)
			require.Equal(t, "s1", job.SessionID)
			require.Equal(t, []string{"example.com"}, job.Domains)
			require.Equal(t, []string{"whois", "dns"}, job.Kinds)
			require.Equal(t, []string{"A", "MX", "TXT"}, job.DNSTypes)

			return true, nil
		})

	added, err := f.agg.Enqueue(context.Background(), "s1", aggregator.Request{
		Domains: []string{"example.com", " "},
		Kinds:   kinds(t, "dns", "whois"),
	})
	require.NoError(t, err)
	require.True(t, added)

	_, err = f.agg.Enqueue(context.Background(), "s1", aggregator.Request{})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestAggregator_Enqueue_StoreError(t *testing.T) {
	f := newFixture(t)
	f.store.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, storage.Unavailable("add job"))

	_, err := f.agg.Enqueue(context.Background(), "s1", aggregator.Request{Domains: []string{"example.com"}})
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}

func TestRunChecksJob(t *testing.T) {
	job := aggregator.RunChecksJob{Domains: []string{"a.com"}, Kinds: []string{"security"}}
	require.Equal(t, "RunChecksJob", job.Kind())
	require.Equal(t, 1, job.InsertOpts().MaxAttempts)
	require.True(t, job.InsertOpts().UniqueOpts.ByArgs)

	req, err := job.Request()
	require.NoError(t, err)
	require.True(t, req.Kinds.Has(domain.KindDNSSEC))
	require.True(t, req.Kinds.Has(domain.KindThreat))

	_, err = aggregator.RunChecksJob{Kinds: []string{"bogus"}}.Request()
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestAggregator_Export(t *testing.T) {
	agg := aggregator.New(noop.Storage{}, aggregator.Providers{}, aggregator.Options{})

	var buf bytes.Buffer
	require.NoError(t, agg.Export(&buf, domain.CheckList{
		domain.DNSResult{Domain: "example.com", RecordType: "A", Records: []string{"1.2.3.4"}},
		domain.AvailabilityResult{Domain: "example.com", Available: true},
	}))
	require.True(t, strings.HasPrefix(buf.String(), "[\n    {\n        \"kind\": \"dns\""), buf.String())

	var back domain.CheckList
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	require.Len(t, back, 2)

	buf.Reset()
	require.NoError(t, agg.Export(&buf, nil))
	require.Equal(t, "[]\n", buf.String())
	require.Equal(t, "domain_results.json", aggregator.ExportFileName)
}
