package repo

import (
	"sync"

	"github.com/google/uuid"

	"GameBot/model"
)

// SessionStore owns every session for the lifetime of the process.
// Sessions are kept in memory only and are never evicted; mutation of a
// session's signup state goes through the quorum engine, never through
// the store.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*model.Session
	catalog  model.Catalog
}

// NewSessionStore creates an empty store for sessions offering the
// given catalog.
func NewSessionStore(catalog model.Catalog) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*model.Session),
		catalog:  catalog,
	}
}

// Create allocates a new open session with an empty signup list for
// every catalog option.
func (s *SessionStore) Create(scheduledTime string) *model.Session {
	signups := make(map[string][]string, len(s.catalog))
	for _, opt := range s.catalog {
		signups[opt.ID] = []string{}
	}

	session := &model.Session{
		ID:            newSessionID(),
		ScheduledTime: scheduledTime,
		Signups:       signups,
		Status:        model.StatusOpen,
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return session
}

// Find looks up a session by id.
func (s *SessionStore) Find(id string) (*model.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, model.ErrSessionDoesNotExist
	}
	return session, nil
}

// newSessionID returns a time-ordered unique id, so concurrent sessions
// sort by creation time in logs.
func newSessionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
