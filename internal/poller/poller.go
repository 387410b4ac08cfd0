// Package poller keeps the liveness overlay of each session fresh. Every
// watched session owns one repeating task that re-probes its domain set.
package poller

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"domainintel/internal/session"
	"domainintel/pkg/domain"
	"domainintel/pkg/logger"
	"domainintel/pkg/metrics"
	"domainintel/pkg/provider"

	"github.com/zeebo/xxh3"
	"go.uber.org/zap"
)

const (
	DefaultInterval    = 180 * time.Second
	defaultConcurrency = 10
)

type Options struct {
	// Interval is the pause between the end of one refresh and the next.
	Interval    time.Duration
	Concurrency int
}

type task struct {
	key     uint64
	session *session.Session
	cancel  context.CancelFunc
	done    chan struct{}
}

type Poller struct {
	options Options
	prober  provider.Liveness

	mu      sync.Mutex
	tasks   map[string]*task
	stopped bool
}

func New(prober provider.Liveness, options Options) *Poller {
	if options.Interval <= 0 {
		options.Interval = DefaultInterval
	}
	if options.Concurrency <= 0 {
		options.Concurrency = defaultConcurrency
	}

	return &Poller{options: options, prober: prober, tasks: map[string]*task{}}
}

// WatchKey identifies a domain set regardless of order and duplicates.
func WatchKey(domains []string) uint64 {
	set := make(map[string]struct{}, len(domains))
	for _, d := range domains {
		set[d] = struct{}{}
	}
	sorted := make([]string, 0, len(set))
	for d := range set {
		sorted = append(sorted, d)
	}
	sort.Strings(sorted)

	return xxh3.HashString(strings.Join(sorted, "\n"))
}

// Refresh probes domains with bounded parallelism and writes each status to
// overlay as a whole entry. It returns the new statuses.
func (p *Poller) Refresh(ctx context.Context, overlay *session.Overlay, domains []string) map[string]domain.LivenessStatus {
	out := make(map[string]domain.LivenessStatus, len(domains))
	var (
		mu   sync.Mutex
		wg   sync.WaitGroup
		sem  = make(chan struct{}, p.options.Concurrency)
		seen = make(map[string]struct{}, len(domains))
	)
	for _, d := range domains {
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}

		wg.Add(1)
		go func(d string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			start := time.Now()
			st := p.prober.Probe(ctx, d)
			metrics.ObserveProvider("httpprobe", metrics.Outcome(st.Error), start)
			metrics.LivenessProbes.WithLabelValues(st.Label()).Inc()
			if overlay != nil {
				overlay.Set(st)
			}

			mu.Lock()
			out[d] = st
			mu.Unlock()
		}(d)
	}
	wg.Wait()

	return out
}

// Watch makes sure sess has a task refreshing domains every interval. The
// same set keeps the running task; a different set replaces it and an empty
// set just cancels it. A task ends on its own once sess is evicted from its
// registry, and closed sessions are never watched. It reports whether a new
// task was started.
func (p *Poller) Watch(ctx context.Context, sess *session.Session, domains []string) bool {
	key := WatchKey(domains)

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped || sess.Closed() {
		return false
	}
	if cur, ok := p.tasks[sess.ID]; ok {
		if cur.key == key && cur.session == sess && len(domains) > 0 {
			return false
		}
		cur.cancel()
		delete(p.tasks, sess.ID)
	}
	if len(domains) == 0 {
		metrics.WatchedSessions.Set(float64(len(p.tasks)))

		return false
	}

	list := append([]string(nil), domains...)
	taskCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	taskCtx = logger.WithFields(taskCtx, zap.String("session", sess.ID), zap.Int("domains", len(list)))
	t := &task{key: key, session: sess, cancel: cancel, done: make(chan struct{})}
	p.tasks[sess.ID] = t
	metrics.WatchedSessions.Set(float64(len(p.tasks)))

	go p.run(taskCtx, t, list)

	return true
}

func (p *Poller) run(ctx context.Context, t *task, domains []string) {
	defer close(t.done)
	defer t.cancel()
	logger.Debug(ctx, "status poller started")

	timer := time.NewTimer(p.options.Interval)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			logger.Debug(ctx, "status poller stopped")

			return
		case <-t.session.Done():
			p.forget(t)
			logger.Debug(ctx, "status poller stopped, session evicted")

			return
		case <-timer.C:
		}

		p.Refresh(ctx, t.session.Overlay(), domains)
		timer.Reset(p.options.Interval)
	}
}

func (p *Poller) forget(t *task) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if cur, ok := p.tasks[t.session.ID]; ok && cur == t {
		delete(p.tasks, t.session.ID)
		metrics.WatchedSessions.Set(float64(len(p.tasks)))
	}
}

// Tasks returns the number of running tasks.
func (p *Poller) Tasks() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.tasks)
}

// Watching reports whether sess has a running task.
func (p *Poller) Watching(sessionID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.tasks[sessionID]

	return ok
}

// Stop cancels every task and waits for them to exit. Later Watch calls are
// ignored.
func (p *Poller) Stop() {
	p.mu.Lock()
	p.stopped = true
	tasks := p.tasks
	p.tasks = map[string]*task{}
	p.mu.Unlock()

	for _, t := range tasks {
		t.cancel()
	}
	for _, t := range tasks {
		<-t.done
	}
	metrics.WatchedSessions.Set(0)
}
