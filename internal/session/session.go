// Package session holds per-conversation state: the exchange history and
// the last entity mentioned, used to resolve pronouns on the next turn.
package session

import (
	"time"

	cache "github.com/patrickmn/go-cache"
)

// Exchange is one question/answer turn. Created per turn, appended to the
// history, never mutated.
type Exchange struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// State is owned by exactly one conversation session.
type State struct {
	History    []Exchange `json:"history"`
	LastEntity string     `json:"last_entity,omitempty"`
}

// Store keeps session state in memory with a TTL; expired sessions are
// purged by the cache janitor.
type Store struct {
	cache *cache.Cache
}

func NewStore(ttl time.Duration) *Store {
	return &Store{cache: cache.New(ttl, 10*time.Minute)}
}

func (s *Store) Get(id string) (*State, bool) {
	if x, found := s.cache.Get(id); found {
		return x.(*State), true
	}
	return nil, false
}

// GetOrCreate returns the session's state, creating empty state on first
// interaction.
func (s *Store) GetOrCreate(id string) *State {
	if st, found := s.Get(id); found {
		return st
	}
	st := &State{}
	s.cache.Set(id, st, cache.DefaultExpiration)
	return st
}

func (s *Store) Save(id string, st *State) {
	s.cache.Set(id, st, cache.DefaultExpiration)
}

// Reset clears history and last entity. Idempotent: resetting an unknown
// session is a no-op.
func (s *Store) Reset(id string) {
	s.cache.Delete(id)
}
