package store

import (
	"sync"

	"github.com/priyanshu-sharma/financial-anomaly-detector/dto"
)

// SessionStore is the append-only collection of processed documents for
// the current session. It starts empty, grows by one record per upload
// and is emptied only by an explicit Clear. The mutex covers concurrent
// HTTP requests; within one batch there is a single writer.
type SessionStore struct {
	mu      sync.Mutex
	records []dto.DocumentRecord
}

func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// Append adds a record to the end of the store.
func (s *SessionStore) Append(rec dto.DocumentRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
}

// ContainsHash reports whether any stored record carries the given
// content hash. The caller runs this before appending the new record,
// so a document never matches itself.
func (s *SessionStore) ContainsHash(hash string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.records {
		if rec.ContentHash == hash {
			return true
		}
	}
	return false
}

// Records returns a copy of the stored records in append order.
func (s *SessionStore) Records() []dto.DocumentRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]dto.DocumentRecord, len(s.records))
	copy(out, s.records)
	return out
}

func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Clear resets the store to empty.
func (s *SessionStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
}
