package suggest

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// defaultSessionCapacity bounds the number of concurrently buffered
// sessions. Sessions are ephemeral by contract (spec.md section 3/5), so
// eviction under pressure never affects correctness: an evicted session id
// simply starts a fresh empty buffer on its next feed.
const defaultSessionCapacity = 4096

// sessionStore holds per-session text buffers in a bounded LRU cache.
type sessionStore struct {
	buffers *lru.Cache[string, string]
}

func newSessionStore(capacity int) *sessionStore {
	if capacity <= 0 {
		capacity = defaultSessionCapacity
	}
	cache, err := lru.New[string, string](capacity)
	if err != nil {
		// Only returns an error for a non-positive size, which is excluded
		// above; unreachable in practice.
		cache, _ = lru.New[string, string](defaultSessionCapacity)
	}
	return &sessionStore{buffers: cache}
}

// append appends delta to the session's buffer, creating it if absent, and
// returns the buffer's new contents.
func (s *sessionStore) append(sessionID, delta string) string {
	existing, _ := s.buffers.Get(sessionID)
	updated := existing + delta
	s.buffers.Add(sessionID, updated)
	return updated
}

// replace wholesale-replaces the session's buffer and returns it.
func (s *sessionStore) replace(sessionID, text string) string {
	s.buffers.Add(sessionID, text)
	return text
}

// reset drops a session's buffer. Idempotent.
func (s *sessionStore) reset(sessionID string) {
	s.buffers.Remove(sessionID)
}
