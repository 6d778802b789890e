package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"golang.org/x/sync/semaphore"

	"github.com/jonathan/linkedin-cv/internal/i18n"
	"github.com/jonathan/linkedin-cv/internal/template"
)

// Store is the in-memory session registry.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	now      func() time.Time
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

// Create registers a fresh session with an empty resume slot and the default
// render preferences.
func (st *Store) Create() *Session {
	s := &Session{
		ID:        uuid.NewString(),
		CreatedAt: st.now(),
		prefs: Preferences{
			TemplateID: template.DefaultID,
			Language:   i18n.English,
		},
		busy: semaphore.NewWeighted(1),
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[s.ID] = s
	return s
}

// Get looks up a session by id.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}

// Delete removes a session. Deleting an unknown id is a no-op.
func (st *Store) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// PurgeOlderThan drops sessions created before the cutoff age and returns how
// many were removed. A session busy with an extraction is kept for the next
// sweep.
func (st *Store) PurgeOlderThan(age time.Duration) int {
	cutoff := st.now().Add(-age)

	st.mu.Lock()
	defer st.mu.Unlock()
	removed := 0
	for id, s := range st.sessions {
		if s.CreatedAt.Before(cutoff) && !s.Busy() {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}
