package history_test

import (
	"context"
	"testing"
	"time"

	"domainintel/internal/history"
	"domainintel/internal/session"
	"domainintel/pkg/domain"
	"domainintel/pkg/logger"
	"domainintel/pkg/pricing"
	"domainintel/pkg/serrors"
	"domainintel/pkg/storage"
	mockstorage "domainintel/pkg/storage/mock"
	"domainintel/pkg/storage/noop"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

type fakePoller struct {
	refreshed [][]string
	watched   [][]string
}

func (f *fakePoller) Refresh(_ context.Context, overlay *session.Overlay, domains []string) map[string]domain.LivenessStatus {
	f.refreshed = append(f.refreshed, domains)
	out := map[string]domain.LivenessStatus{}
	for _, d := range domains {
		code := 200
		st := domain.LivenessStatus{Domain: d, Live: true, HTTPCode: &code, CheckedAt: time.Now()}
		overlay.Set(st)
		out[d] = st
	}

	return out
}

func (f *fakePoller) Watch(_ context.Context, _ *session.Session, domains []string) bool {
	f.watched = append(f.watched, domains)

	return true
}

func record(id int64, name string, checks ...domain.CheckResult) domain.SearchRecord {
	return domain.SearchRecord{
		ID:        id,
		Domain:    name,
		Timestamp: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		Source:    domain.SourceUserEntered,
		Checks:    checks,
	}
}

func TestService_History(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	st.EXPECT().Query(gomock.Any(), storage.SearchFilter{Source: domain.SourceUserEntered, Domain: "exa"}).
		Return([]domain.SearchRecord{
			record(1, "example.com",
				domain.WhoisResult{Domain: "example.com", Registrar: "IANA"},
				domain.ExpirationResult{Domain: "example.com", ExpirationAlert: "2000-01-01 00:00:00"},
				domain.DNSResult{Domain: "example.com", RecordType: "A", Error: "timeout"},
			),
		}, nil)

	svc := history.New(st, nil, nil)
	entries, err := svc.History(context.Background(), storage.SearchFilter{Domain: "exa"})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "IANA", entries[0].Summary.Registrar)
	require.True(t, entries[0].Summary.ExpiringSoon)
	require.Equal(t, "timeout", entries[0].Summary.ErrorSummary)
}

func TestService_History_Unavailable(t *testing.T) {
	svc := history.New(noop.Storage{}, nil, nil)
	_, err := svc.History(context.Background(), storage.SearchFilter{})
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}

func TestService_AvailableGenerated(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	gen := record(7, "brainy.ai", domain.AvailabilityResult{Domain: "brainy.ai", Available: true})
	gen.Source = domain.SourceGenerated
	st.EXPECT().QueryAvailableGenerated(gomock.Any(), gomock.Any()).Return([]domain.SearchRecord{gen}, nil)

	svc := history.New(st, pricing.Default(), nil)
	entries, err := svc.AvailableGenerated(context.Background(), storage.SearchFilter{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "brainy.ai", entries[0].Domain)
	require.Equal(t, "Available", entries[0].Availability)
	require.Len(t, entries[0].Suggestions, 5)

	var recommended []string
	for _, s := range entries[0].Suggestions {
		if s.Recommended {
			recommended = append(recommended, s.Registrar)
		}
	}
	require.Equal(t, []string{"Cloudflare"}, recommended)
}

func TestService_DNSRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	want := map[string]domain.DNSRecordSet{"example.com": {ID: 1, Records: []domain.DNSRecordRow{{RecordType: "A"}}}}
	st.EXPECT().QueryDNSRecords(gomock.Any(), gomock.Any()).Return(want, nil)

	got, err := history.New(st, nil, nil).DNSRecords(context.Background(), storage.SearchFilter{})
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestService_Dashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	st.EXPECT().Query(gomock.Any(), storage.SearchFilter{Source: domain.SourceUserEntered}).
		Return([]domain.SearchRecord{
			record(1, "a.com", domain.WhoisResult{Domain: "a.com", Registrar: "R"}),
			record(2, "b.com"),
			record(3, "a.com"),
		}, nil)

	p := &fakePoller{}
	sess := session.New("s1")
	code := 500
	sess.Overlay().Set(domain.LivenessStatus{Domain: "b.com", HTTPCode: &code})

	svc := history.New(st, nil, p)
	entries, err := svc.Dashboard(context.Background(), sess, storage.SearchFilter{Source: domain.SourceAll})
	require.NoError(t, err)
	require.Len(t, entries, 3)

	require.Equal(t, [][]string{{"a.com"}}, p.refreshed)
	require.Equal(t, [][]string{{"a.com", "b.com"}}, p.watched)

	require.Equal(t, "Live", entries[0].Status)
	require.Equal(t, "R", entries[0].Registrar)
	require.Equal(t, "Down", entries[1].Status)
	require.Equal(t, domain.NotAvailable, entries[1].Registrar)
	require.NotNil(t, entries[2].Liveness)
}

func TestService_Dashboard_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	st.EXPECT().Query(gomock.Any(), gomock.Any()).Return(nil, nil)

	p := &fakePoller{}
	entries, err := history.New(st, nil, p).Dashboard(context.Background(), session.New("s1"), storage.SearchFilter{})
	require.NoError(t, err)
	require.Empty(t, entries)
	require.Empty(t, p.refreshed)
	require.Empty(t, p.watched)
}

func TestService_RefreshStatus(t *testing.T) {
	p := &fakePoller{}
	sess := session.New("s1")
	sess.Overlay().Set(domain.LivenessStatus{Domain: "known.com"})

	svc := history.New(noop.Storage{}, nil, p)
	got := svc.RefreshStatus(context.Background(), sess, []string{"new.com"})
	require.Contains(t, got, "new.com")

	got = svc.RefreshStatus(context.Background(), sess, nil)
	require.Len(t, got, 2)

	require.Empty(t, history.New(noop.Storage{}, nil, nil).RefreshStatus(context.Background(), sess, nil))
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	st.EXPECT().DeleteByDomain(gomock.Any(), "a.com", "b.com").Return(int64(3), nil)

	svc := history.New(st, nil, nil)
	n, err := svc.Delete(context.Background(), " a.com ", "", "b.com")
	require.NoError(t, err)
	require.Equal(t, int64(3), n)

	_, err = svc.Delete(context.Background(), " ")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestService_Delete_MatchesStoredForm(t *testing.T) {
	tests := []struct {
		in   string
		want []any
	}{
		{in: "Example.com", want: []any{"example.com", "Example.com"}},
		{in: "https://Shop.Example.com/path", want: []any{"shop.example.com", "https://Shop.Example.com/path"}},
		{in: "bücher.de", want: []any{"xn--bcher-kva.de", "bücher.de"}},
		{in: "example.com.", want: []any{"example.com", "example.com."}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			st := mockstorage.NewMockStorage(ctrl)
			st.EXPECT().DeleteByDomain(gomock.Any(), tt.want...).Return(int64(1), nil)

			n, err := history.New(st, nil, nil).Delete(context.Background(), tt.in)
			require.NoError(t, err)
			require.Equal(t, int64(1), n)
		})
	}
}

func TestService_Quote(t *testing.T) {
	svc := history.New(noop.Storage{}, nil, nil)
	suggestions := svc.Quote("example.com")
	require.Len(t, suggestions, 5)
	require.True(t, suggestions[2].Recommended)
	require.Equal(t, "Cloudflare", suggestions[2].Registrar)
}
