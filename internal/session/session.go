// Package session holds per-client state: the results of the last check run
// and the liveness overlay refreshed by the status poller.
package session

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"domainintel/pkg/domain"
)

const (
	// DefaultID is used when a client does not send a session header.
	DefaultID = "default"
	// Header carries the session id on API requests.
	Header = "X-Session-Id"
)

type Session struct {
	ID string

	mu      sync.Mutex
	lastRun domain.CheckList
	overlay *Overlay

	done      chan struct{}
	closeOnce sync.Once
}

func New(id string) *Session {
	return &Session{ID: id, lastRun: domain.CheckList{}, overlay: NewOverlay(), done: make(chan struct{})}
}

// Done is closed once the session has been evicted from its registry.
func (s *Session) Done() <-chan struct{} { return s.done }

// Close marks the session as evicted. It is safe to call more than once.
func (s *Session) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

// Closed reports whether Close was called.
func (s *Session) Closed() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// LastRun returns a copy of the results of the latest check run.
func (s *Session) LastRun() domain.CheckList {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(domain.CheckList, len(s.lastRun))
	copy(out, s.lastRun)

	return out
}

// SetLastRun replaces the last-run buffer.
func (s *Session) SetLastRun(checks domain.CheckList) {
	cp := make(domain.CheckList, len(checks))
	copy(cp, checks)

	s.mu.Lock()
	s.lastRun = cp
	s.mu.Unlock()
}

func (s *Session) Overlay() *Overlay { return s.overlay }

// Overlay maps domains to their latest liveness status. Entries are always
// replaced whole.
type Overlay struct {
	mu      sync.RWMutex
	entries map[string]domain.LivenessStatus
}

func NewOverlay() *Overlay {
	return &Overlay{entries: map[string]domain.LivenessStatus{}}
}

func (o *Overlay) Get(domainName string) (domain.LivenessStatus, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	st, ok := o.entries[domainName]

	return st, ok
}

func (o *Overlay) Set(statuses ...domain.LivenessStatus) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, st := range statuses {
		o.entries[st.Domain] = st
	}
}

// Snapshot returns a copy of all entries.
func (o *Overlay) Snapshot() map[string]domain.LivenessStatus {
	o.mu.RLock()
	defer o.mu.RUnlock()

	out := make(map[string]domain.LivenessStatus, len(o.entries))
	for k, v := range o.entries {
		out[k] = v
	}

	return out
}

// Missing returns the domains without an entry, in input order.
func (o *Overlay) Missing(domains []string) []string {
	o.mu.RLock()
	defer o.mu.RUnlock()

	var out []string
	for _, d := range domains {
		if _, ok := o.entries[d]; !ok {
			out = append(out, d)
		}
	}

	return out
}

const (
	DefaultIdleTTL     = 30 * time.Minute
	DefaultMaxSessions = 1000
)

// Options bounds the number of sessions a Registry keeps.
type Options struct {
	// IdleTTL evicts sessions not requested for this long.
	IdleTTL time.Duration
	// MaxSessions caps the registry. Creating one more evicts the least
	// recently used session.
	MaxSessions int
}

// Registry creates sessions on first use and evicts idle ones.
type Registry struct {
	options Options
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*entry
}

type entry struct {
	session  *Session
	lastSeen time.Time
}

// NewRegistry returns a registry with DefaultIdleTTL and DefaultMaxSessions.
func NewRegistry() *Registry {
	return NewRegistryWithOptions(Options{})
}

// NewRegistryWithOptions fills zero options with the defaults.
func NewRegistryWithOptions(options Options) *Registry {
	if options.IdleTTL <= 0 {
		options.IdleTTL = DefaultIdleTTL
	}
	if options.MaxSessions <= 0 {
		options.MaxSessions = DefaultMaxSessions
	}

	return &Registry{options: options, now: time.Now, sessions: map[string]*entry{}}
}

// Get returns the session with id, creating it if needed, and marks it as
// used. A blank id selects DefaultID.
func (r *Registry) Get(id string) *Session {
	id = strings.TrimSpace(id)
	if id == "" {
		id = DefaultID
	}

	r.mu.Lock()
	now := r.now()
	e, ok := r.sessions[id]
	if ok {
		e.lastSeen = now
		r.mu.Unlock()

		return e.session
	}

	r.expireLocked(now)
	if len(r.sessions) >= r.options.MaxSessions {
		r.evictOldestLocked()
	}
	e = &entry{session: New(id), lastSeen: now}
	r.sessions[id] = e
	r.mu.Unlock()

	return e.session
}

// Expire evicts every session idle for longer than IdleTTL and returns their
// ids. Evicted sessions are closed, which stops their status polling.
func (r *Registry) Expire() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.expireLocked(r.now())
}

// Run calls Expire every half IdleTTL until ctx is done.
func (r *Registry) Run(ctx context.Context) {
	ticker := time.NewTicker(r.options.IdleTTL / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Expire()
		}
	}
}

func (r *Registry) expireLocked(now time.Time) []string {
	var evicted []string
	for id, e := range r.sessions {
		if now.Sub(e.lastSeen) > r.options.IdleTTL {
			delete(r.sessions, id)
			e.session.Close()
			evicted = append(evicted, id)
		}
	}
	sort.Strings(evicted)

	return evicted
}

func (r *Registry) evictOldestLocked() string {
	var (
		oldest string
		seen   time.Time
	)
	for id, e := range r.sessions {
		if oldest == "" || e.lastSeen.Before(seen) {
			oldest, seen = id, e.lastSeen
		}
	}
	if e, ok := r.sessions[oldest]; ok {
		delete(r.sessions, oldest)
		e.session.Close()
	}

	return oldest
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.sessions)
}

// IDs returns the ids of all known sessions, sorted.
func (r *Registry) IDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, 0, len(r.sessions))
	for id := range r.sessions {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}
