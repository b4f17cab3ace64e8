package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/averycrespi/calc-mcp/internal/calc"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/server"
)

// DefaultID is the session used by callers without an MCP client session
const DefaultID = "default"

var _ types.Sessions = &Manager{}

// Factory creates the calculator for a new session
type Factory func() *calc.Calculator

// Session is one calculator guarded by its own lock
type Session struct {
	id   string
	calc *calc.Calculator
	mu   sync.Mutex
}

// ID returns the session ID
func (s *Session) ID() string {
	return s.id
}

// Manager manages one calculator per session
type Manager struct {
	factory  Factory
	sessions map[string]*Session
	mu       sync.RWMutex
}

// NewManager creates a new session manager
func NewManager(factory Factory) *Manager {
	if factory == nil {
		factory = func() *calc.Calculator { return calc.New() }
	}

	return &Manager{
		factory:  factory,
		sessions: make(map[string]*Session),
	}
}

// IDFromContext returns the MCP client session ID carried by ctx
func IDFromContext(ctx context.Context) string {
	if clientSession := server.ClientSessionFromContext(ctx); clientSession != nil {
		if id := clientSession.SessionID(); id != "" {
			return id
		}
	}
	return DefaultID
}

// Get returns the session with the given ID, creating it if needed
func (m *Manager) Get(id string) *Session {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if ok {
		return s
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[id]; ok {
		return s
	}

	slog.Debug("Creating calculator session", "session_id", id)
	s = &Session{
		id:   id,
		calc: m.factory(),
	}
	m.sessions[id] = s
	return s
}

// Do runs fn with exclusive access to the calculator of the session in ctx
func (m *Manager) Do(ctx context.Context, fn func(c *calc.Calculator) error) error {
	s := m.Get(IDFromContext(ctx))

	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(s.calc)
}

// Drop discards the session with the given ID
func (m *Manager) Drop(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return false
	}

	slog.Debug("Dropping calculator session", "session_id", id)
	delete(m.sessions, id)
	return true
}

// IDs returns the IDs of every live session
func (m *Manager) IDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return ids
}

// Len returns the number of live sessions
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.sessions)
}
