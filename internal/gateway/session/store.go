// Package session holds each browser session's single most recent trace.
// A new trace for a session overwrites the previous one; there is no
// history. The LRU bound caps the number of concurrent sessions tracked,
// not results per session.
package session

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"synapse/internal/trace"
)

const maxSessions = 1024

type Store struct {
	cache *lru.Cache[string, *trace.Trace]
}

func NewStore() *Store {
	// lru.New only errors on a non-positive size.
	cache, err := lru.New[string, *trace.Trace](maxSessions)
	if err != nil {
		panic(err)
	}
	return &Store{cache: cache}
}

// Put records the session's most recent trace, replacing any prior one.
func (s *Store) Put(sessionID string, tr *trace.Trace) {
	s.cache.Add(sessionID, tr)
}

// Latest returns the session's most recent trace, if any.
func (s *Store) Latest(sessionID string) (*trace.Trace, bool) {
	return s.cache.Get(sessionID)
}
