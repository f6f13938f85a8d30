package practice

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

type entry struct {
	controller *Controller
	lastActive time.Time
}

// Manager tracks the live controllers, one per browser session, keyed by a
// generated id. Sessions live only in memory: a restart forgets them, and
// idle ones are swept after the TTL.
type Manager struct {
	mu       sync.Mutex
	scorer   Scorer
	sessions map[string]*entry
	ttl      time.Duration
}

func NewManager(scorer Scorer, ttl time.Duration) *Manager {
	return &Manager{
		scorer:   scorer,
		sessions: make(map[string]*entry),
		ttl:      ttl,
	}
}

// Create registers a new controller and returns its id. onChange receives a
// state snapshot after every transition, including the async submitting to
// result edge.
func (m *Manager) Create(onChange func(StateView)) (string, *Controller) {
	c := NewController(m.scorer)
	if onChange != nil {
		c.SetOnChange(onChange)
	}

	id := uuid.NewString()
	m.mu.Lock()
	m.sessions[id] = &entry{controller: c, lastActive: time.Now()}
	m.mu.Unlock()
	return id, c
}

func (m *Manager) Get(id string) (*Controller, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.sessions[id]
	if !ok {
		return nil, ErrNoActiveSession
	}
	e.lastActive = time.Now()
	return e.controller, nil
}

// Remove cancels and forgets a session. Safe to call for unknown ids.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	e, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if ok {
		// Cancel bumps the generation, so an in-flight scoring call
		// resolving later becomes a no-op.
		e.controller.Cancel()
	}
}

// StartSweeper drops idle sessions every interval until stop is closed.
func (m *Manager) StartSweeper(interval time.Duration, stop <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.sweep()
			case <-stop:
				return
			}
		}
	}()
}

func (m *Manager) sweep() {
	cutoff := time.Now().Add(-m.ttl)

	m.mu.Lock()
	var expired []*entry
	for id, e := range m.sessions {
		if e.lastActive.Before(cutoff) {
			expired = append(expired, e)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, e := range expired {
		e.controller.Cancel()
	}
	if len(expired) > 0 {
		log.Printf("practice: swept %d idle sessions", len(expired))
	}
}

func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
