package poller_test

import (
	"context"
	"fmt"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"domainintel/internal/poller"
	"domainintel/internal/session"
	"domainintel/pkg/domain"
	"domainintel/pkg/logger"
	mockprovider "domainintel/pkg/provider/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

type countingProber struct {
	calls atomic.Int64
}

func (c *countingProber) Probe(_ context.Context, d string) domain.LivenessStatus {
	c.calls.Add(1)
	code := 200

	return domain.LivenessStatus{Domain: d, Live: true, HTTPCode: &code, CheckedAt: time.Now()}
}

// tickProber stamps every field of a status with the same call number, so a
// status mixing two calls is detectable.
type tickProber struct {
	base  time.Time
	ticks atomic.Int64
}

func (p *tickProber) Probe(_ context.Context, d string) domain.LivenessStatus {
	n := int(p.ticks.Add(1))

	return domain.LivenessStatus{
		Domain:    d,
		Live:      n%2 == 0,
		HTTPCode:  &n,
		Error:     strconv.Itoa(n),
		CheckedAt: p.base.Add(time.Duration(n) * time.Second),
	}
}

func TestWatchKey(t *testing.T) {
	require.Equal(t, poller.WatchKey([]string{"a.com", "b.com"}), poller.WatchKey([]string{"b.com", "a.com", "a.com"}))
	require.NotEqual(t, poller.WatchKey([]string{"a.com"}), poller.WatchKey([]string{"a.com", "b.com"}))
}

func TestPoller_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	prober := mockprovider.NewMockLiveness(ctrl)
	code := 503
	prober.EXPECT().Probe(gomock.Any(), "up.com").
		Return(domain.LivenessStatus{Domain: "up.com", Live: true, CheckedAt: time.Now()})
	prober.EXPECT().Probe(gomock.Any(), "down.com").
		Return(domain.LivenessStatus{Domain: "down.com", HTTPCode: &code, CheckedAt: time.Now()})

	p := poller.New(prober, poller.Options{Concurrency: 1})
	overlay := session.NewOverlay()
	overlay.Set(domain.LivenessStatus{Domain: "down.com", Live: true})

	got := p.Refresh(context.Background(), overlay, []string{"up.com", "down.com", "up.com"})
	require.Len(t, got, 2)
	require.True(t, got["up.com"].Live)
	require.False(t, got["down.com"].Live)

	st, ok := overlay.Get("down.com")
	require.True(t, ok)
	require.False(t, st.Live)
	require.Equal(t, 503, *st.HTTPCode)
}

func TestPoller_Watch_Repeats(t *testing.T) {
	prober := &countingProber{}
	p := poller.New(prober, poller.Options{Interval: 20 * time.Millisecond})
	defer p.Stop()

	sess := session.New("s1")
	require.True(t, p.Watch(context.Background(), sess, []string{"a.com", "b.com"}))
	require.True(t, p.Watching("s1"))

	require.Eventually(t, func() bool { return prober.calls.Load() >= 4 }, 2*time.Second, 10*time.Millisecond)
	_, ok := sess.Overlay().Get("a.com")
	require.True(t, ok)
}

func TestPoller_Watch_SameSetKeepsTask(t *testing.T) {
	p := poller.New(&countingProber{}, poller.Options{Interval: time.Hour})
	defer p.Stop()

	sess := session.New("s1")
	require.True(t, p.Watch(context.Background(), sess, []string{"a.com", "b.com"}))
	require.False(t, p.Watch(context.Background(), sess, []string{"b.com", "a.com"}))
	require.True(t, p.Watch(context.Background(), sess, []string{"c.com"}))

	other := session.New("s2")
	require.True(t, p.Watch(context.Background(), other, []string{"c.com"}))
}

func TestPoller_Watch_EmptyCancels(t *testing.T) {
	p := poller.New(&countingProber{}, poller.Options{Interval: time.Hour})
	defer p.Stop()

	sess := session.New("s1")
	require.True(t, p.Watch(context.Background(), sess, []string{"a.com"}))
	require.False(t, p.Watch(context.Background(), sess, nil))
	require.False(t, p.Watching("s1"))
}

func TestPoller_Watch_OutlivesRequestContext(t *testing.T) {
	prober := &countingProber{}
	p := poller.New(prober, poller.Options{Interval: 20 * time.Millisecond})
	defer p.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	require.True(t, p.Watch(ctx, session.New("s1"), []string{"a.com"}))
	cancel()

	require.Eventually(t, func() bool { return prober.calls.Load() >= 2 }, 2*time.Second, 10*time.Millisecond)
}

func TestPoller_Stop(t *testing.T) {
	prober := &countingProber{}
	p := poller.New(prober, poller.Options{Interval: 10 * time.Millisecond})

	sess := session.New("s1")
	require.True(t, p.Watch(context.Background(), sess, []string{"a.com"}))
	require.Eventually(t, func() bool { return prober.calls.Load() >= 1 }, 2*time.Second, 5*time.Millisecond)

	p.Stop()
	after := prober.calls.Load()
	time.Sleep(50 * time.Millisecond)
	require.Equal(t, after, prober.calls.Load())

	require.False(t, p.Watch(context.Background(), sess, []string{"b.com"}))
	require.False(t, p.Watching("s1"))
}

func TestPoller_Watch_OverlayEntriesComeFromOneTick(t *testing.T) {
	prober := &tickProber{base: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	p := poller.New(prober, poller.Options{Interval: 5 * time.Millisecond})
	defer p.Stop()

	sess := session.New("s1")
	require.True(t, p.Watch(context.Background(), sess, []string{"a.com"}))

	var (
		last     time.Time
		distinct int
	)
	deadline := time.Now().Add(5 * time.Second)
	for distinct < 3 && time.Now().Before(deadline) {
		st, ok := sess.Overlay().Get("a.com")
		if !ok {
			time.Sleep(time.Millisecond)

			continue
		}

		require.NotNil(t, st.HTTPCode)
		n := *st.HTTPCode
		require.Equal(t, prober.base.Add(time.Duration(n)*time.Second), st.CheckedAt, "fields of tick %d", n)
		require.Equal(t, n%2 == 0, st.Live, "fields of tick %d", n)
		require.Equal(t, strconv.Itoa(n), st.Error, "fields of tick %d", n)

		require.False(t, st.CheckedAt.Before(last), "CheckedAt went backwards")
		if st.CheckedAt.After(last) {
			distinct++
			last = st.CheckedAt
		}
	}
	require.GreaterOrEqual(t, distinct, 3, "expected successive ticks with newer CheckedAt")
}

func TestPoller_Watch_EndsWhenSessionEvicted(t *testing.T) {
	prober := &countingProber{}
	p := poller.New(prober, poller.Options{Interval: time.Hour})
	defer p.Stop()

	reg := session.NewRegistryWithOptions(session.Options{MaxSessions: 5})
	for i := range 200 {
		p.Watch(context.Background(), reg.Get(fmt.Sprintf("sess-%d", i)), []string{"a.com"})
	}

	require.Equal(t, 5, reg.Len())
	require.Eventually(t, func() bool { return p.Tasks() <= 5 }, 2*time.Second, 5*time.Millisecond)
	require.True(t, p.Watching("sess-199"))
	require.False(t, p.Watching("sess-0"))
}

func TestPoller_Watch_ClosedSessionIgnored(t *testing.T) {
	p := poller.New(&countingProber{}, poller.Options{Interval: time.Hour})
	defer p.Stop()

	sess := session.New("gone")
	sess.Close()
	require.False(t, p.Watch(context.Background(), sess, []string{"a.com"}))
	require.False(t, p.Watching("gone"))
}

func TestPoller_Watch_RecreatedSessionGetsNewTask(t *testing.T) {
	p := poller.New(&countingProber{}, poller.Options{Interval: time.Hour})
	defer p.Stop()

	old := session.New("s1")
	require.True(t, p.Watch(context.Background(), old, []string{"a.com"}))
	old.Close()

	fresh := session.New("s1")
	require.True(t, p.Watch(context.Background(), fresh, []string{"a.com"}))
	require.True(t, p.Watching("s1"))
}
