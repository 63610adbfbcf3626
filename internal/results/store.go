// Package results holds generated workbooks between the request that
// produced them and the download that fetches them. Entries are keyed by an
// opaque token so concurrent requests never clobber each other.
package results

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Entry is one stored download.
type Entry struct {
	Filename    string
	ContentType string
	Data        []byte
	createdAt   time.Time
}

// Store is an in-memory, TTL-bounded token store. Safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	entries map[string]Entry
	ttl     time.Duration
	now     func() time.Time
}

// NewStore creates a store whose entries expire after ttl.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		entries: make(map[string]Entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Put stores a download and returns its token.
func (s *Store) Put(filename, contentType string, data []byte) string {
	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()
	s.entries[token] = Entry{
		Filename:    filename,
		ContentType: contentType,
		Data:        data,
		createdAt:   s.now(),
	}
	return token
}

// Get returns the entry for token, if present and not expired.
func (s *Store) Get(token string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[token]
	if !ok || s.expired(e) {
		return Entry{}, false
	}
	return e, true
}

// Len reports the number of live entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, e := range s.entries {
		if !s.expired(e) {
			n++
		}
	}
	return n
}

func (s *Store) expired(e Entry) bool {
	return s.ttl > 0 && s.now().Sub(e.createdAt) > s.ttl
}

// sweepLocked drops expired entries; callers hold the write lock.
func (s *Store) sweepLocked() {
	for token, e := range s.entries {
		if s.expired(e) {
			delete(s.entries, token)
		}
	}
}
