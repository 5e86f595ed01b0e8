package httpsrv

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tutils/trand"
	"github.com/tutils/trand/rng/xlcg"
)

// ErrSessionNotFound means no session has the requested id
var ErrSessionNotFound = errors.New("session not found")

// Session is one seeded generator
type Session struct {
	ID      string    `json:"id"`
	Seed    int64     `json:"seed"`
	State   int64     `json:"state"`
	Created time.Time `json:"created"`

	gen *trand.SyncGenerator
}

// SessionManager manages generator sessions
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewSessionManager creates a new session manager
func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*Session),
	}
}

// Create starts a session from seed
func (sm *SessionManager) Create(seed int64, now time.Time) *Session {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	id := uuid.New().String()[:8]
	for sm.sessions[id] != nil {
		id = uuid.New().String()[:8]
	}

	s := &Session{
		ID:      id,
		Seed:    seed,
		Created: now,
		gen:     trand.NewSyncGenerator(xlcg.NewWithSeed(seed)),
	}
	sm.sessions[id] = s
	return s
}

// Get returns the session with id
func (sm *SessionManager) Get(id string) (*Session, error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	s, ok := sm.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return s, nil
}

// Delete removes the session with id
func (sm *SessionManager) Delete(id string) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, ok := sm.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	delete(sm.sessions, id)
	return nil
}

// List returns snapshots of all sessions, oldest first
func (sm *SessionManager) List() []Session {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	list := make([]Session, 0, len(sm.sessions))
	for _, s := range sm.sessions {
		list = append(list, s.snapshot())
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].Created.Equal(list[j].Created) {
			return list[i].Created.Before(list[j].Created)
		}
		return list[i].ID < list[j].ID
	})
	return list
}

// Len returns the number of sessions
func (sm *SessionManager) Len() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return len(sm.sessions)
}

func (s *Session) snapshot() Session {
	return Session{
		ID:      s.ID,
		Seed:    s.Seed,
		State:   s.gen.State(),
		Created: s.Created,
	}
}
