// Package session scopes navigation state and backing-client caches to
// individual MCP sessions. Two concurrent HTTP sessions presenting
// different credentials never share a machine or a client handle.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/wyre-technology/syncro-mcp/internal/creds"
	"github.com/wyre-technology/syncro-mcp/internal/logging"
	"github.com/wyre-technology/syncro-mcp/internal/nav"
	"github.com/wyre-technology/syncro-mcp/internal/registry"
	"github.com/wyre-technology/syncro-mcp/pkg/domain"
	"github.com/wyre-technology/syncro-mcp/pkg/ports"
)

// Session is one logical MCP session: its navigation machine and its
// credential-scoped client cache.
type Session struct {
	ID      string
	Machine *nav.Machine
	Clients *creds.Cache

	mu         sync.Mutex
	lastActive time.Time
}

// Touch records activity, deferring idle eviction.
func (s *Session) Touch() {
	s.mu.Lock()
	s.lastActive = time.Now()
	s.mu.Unlock()
}

// LastActive returns the time of the most recent activity.
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// Manager owns the session map. Idle sessions are evicted by a
// background loop; their persisted navigation state stays in the store
// so a returning session resumes where it left off.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	registry *registry.Registry
	resolver *creds.Resolver
	store    ports.SessionStore
	factory  creds.Factory

	timeout time.Duration
	logger  *slog.Logger

	stop     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// Option configures the Manager.
type Option func(*Manager)

// WithTimeout sets the idle eviction timeout. Zero disables eviction.
func WithTimeout(d time.Duration) Option {
	return func(m *Manager) {
		m.timeout = d
	}
}

// WithLogger configures a logger for internal events.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithClientFactory replaces the Syncro client constructor. Tests use
// this to point clients at a local server.
func WithClientFactory(f creds.Factory) Option {
	return func(m *Manager) {
		m.factory = f
	}
}

// NewManager creates a manager backed by the given store.
func NewManager(reg *registry.Registry, resolver *creds.Resolver, store ports.SessionStore, opts ...Option) *Manager {
	m := &Manager{
		sessions: make(map[string]*Session),
		registry: reg,
		resolver: resolver,
		store:    store,
		logger:   logging.NewNop(),
		stop:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.timeout > 0 {
		m.wg.Add(1)
		go m.cleanupLoop()
	}
	return m
}

// GetOrCreate returns the session for an ID, creating it at root (or
// restoring its persisted navigation position) on first sight.
func (m *Manager) GetOrCreate(ctx context.Context, id string) *Session {
	m.mu.Lock()
	if sess, ok := m.sessions[id]; ok {
		m.mu.Unlock()
		sess.Touch()
		return sess
	}

	sess := &Session{
		ID:      id,
		Machine: nav.New(m.registry, m.resolver),
		Clients: creds.NewCache(m.resolver, m.factory),
	}
	sess.Touch()
	m.sessions[id] = sess
	m.mu.Unlock()

	if state, err := m.store.Load(ctx, id); err == nil {
		sess.Machine.Restore(state)
	} else if !errors.Is(err, domain.ErrSessionNotFound) {
		m.logger.Warn("failed to restore session state", "session", id, "err", err)
	}

	return sess
}

// Persist writes the session's current navigation position to the store.
func (m *Manager) Persist(ctx context.Context, sess *Session) {
	if err := m.store.Save(ctx, sess.ID, sess.Machine.Snapshot()); err != nil {
		m.logger.Warn("failed to persist session state", "session", sess.ID, "err", err)
	}
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Stop terminates the cleanup loop.
func (m *Manager) Stop() {
	m.stopOnce.Do(func() {
		close(m.stop)
	})
	m.wg.Wait()
}

func (m *Manager) cleanupLoop() {
	defer m.wg.Done()

	ticker := time.NewTicker(m.timeout / 2)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			m.evictIdle()
		}
	}
}

// evictIdle drops sessions whose last activity is older than the
// timeout. The persisted state is kept so the session can resume.
func (m *Manager) evictIdle() {
	cutoff := time.Now().Add(-m.timeout)

	m.mu.Lock()
	defer m.mu.Unlock()
	for id, sess := range m.sessions {
		if sess.LastActive().Before(cutoff) {
			delete(m.sessions, id)
			m.logger.Debug("evicted idle session", "session", id)
		}
	}
}
