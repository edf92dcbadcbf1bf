package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"careermate/internal/agent"
	"careermate/internal/backend"
	"careermate/internal/router"
	"careermate/internal/specialist"
	"careermate/pkg/log"
)

// Manager creates and looks up sessions. Sessions expire after the TTL or
// when the cache evicts the least recently used entry; an expired session
// is simply recreated on the next request, nothing is persisted.
type Manager struct {
	cache *expirable.LRU[string, *Session]

	router         router.Router
	registry       *agent.ToolRegistry
	backend        backend.Backend
	handlers       []specialist.Handler
	maxQueryLength int
	l              log.Logger
}

// ManagerConfig bounds the session cache.
type ManagerConfig struct {
	TTL            time.Duration
	CacheSize      int
	MaxQueryLength int
}

// NewManager creates a new Manager.
// Convention: Factory function returns concrete type (not interface) for internal packages
func NewManager(cfg ManagerConfig, r router.Router, registry *agent.ToolRegistry, b backend.Backend, handlers []specialist.Handler, l log.Logger) *Manager {
	return &Manager{
		cache:          expirable.NewLRU[string, *Session](cfg.CacheSize, nil, cfg.TTL),
		router:         r,
		registry:       registry,
		backend:        b,
		handlers:       handlers,
		maxQueryLength: cfg.MaxQueryLength,
		l:              l,
	}
}

// Create starts a new session and returns it.
func (m *Manager) Create() *Session {
	s := New(uuid.NewString(), m.router, m.registry, m.backend, m.handlers, m.maxQueryLength, m.l)
	m.cache.Add(s.ID, s)
	return s
}

// Get returns the session with the given ID, or ErrSessionNotFound when it
// never existed or has expired.
func (m *Manager) Get(id string) (*Session, error) {
	s, ok := m.cache.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// GetOrCreate returns the session with the given ID, creating a fresh one
// when the ID is empty or no longer cached.
func (m *Manager) GetOrCreate(id string) *Session {
	if id != "" {
		if s, ok := m.cache.Get(id); ok {
			return s
		}
	}
	return m.Create()
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	return m.cache.Len()
}
