package seats

import (
	"context"
	"fmt"
	"sync"
	"time"

	"boxoffice/internal/shared/apperr"
)

// Session binds a selection to an event for one shopper.
type Session struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	Selection Selection `json:"selection"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store keeps sessions for a limited time. Save refreshes the expiry.
type Store interface {
	Save(ctx context.Context, session Session) error
	Load(ctx context.Context, id string) (Session, error)
	Delete(ctx context.Context, id string) error
}

func sessionNotFound(id string) error {
	return fmt.Errorf("%w: selection session %q", apperr.ErrNotFound, id)
}

type memoryEntry struct {
	session   Session
	expiresAt time.Time
}

type memoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryStore keeps sessions in process memory. Expired sessions are
// dropped lazily on access.
func NewMemoryStore(ttl time.Duration) Store {
	return newMemoryStore(ttl, time.Now)
}

func newMemoryStore(ttl time.Duration, now func() time.Time) *memoryStore {
	return &memoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     now,
	}
}

func (m *memoryStore) Save(_ context.Context, session Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.evictExpired(now)
	m.entries[session.ID] = memoryEntry{session: session, expiresAt: now.Add(m.ttl)}
	return nil
}

func (m *memoryStore) Load(_ context.Context, id string) (Session, error) {
	m.mu.RLock()
	entry, ok := m.entries[id]
	m.mu.RUnlock()

	if !ok || !m.now().Before(entry.expiresAt) {
		return Session{}, sessionNotFound(id)
	}
	return entry.session, nil
}

func (m *memoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.evictExpired(m.now())
	if _, ok := m.entries[id]; !ok {
		return sessionNotFound(id)
	}
	delete(m.entries, id)
	return nil
}

// evictExpired must be called with mu held.
func (m *memoryStore) evictExpired(now time.Time) {
	for id, entry := range m.entries {
		if !now.Before(entry.expiresAt) {
			delete(m.entries, id)
		}
	}
}
