// Package session keeps per-conversation state: the sticky language
// preference set via an explicit command, and the active complaint
// ticket. Everything else in a turn is stateless.
package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/barakahq/supportbot/internal/lang"
)

type State struct {
	ID            string
	PreferredLang lang.Code
	ActiveTicket  int64
}

// Store is an expirable in-memory session table. Sessions that go quiet
// simply age out; a fresh one is minted on the next message.
type Store struct {
	cache *expirable.LRU[string, State]
}

func NewStore(size int, ttl time.Duration) *Store {
	if size <= 0 {
		size = 4096
	}
	return &Store{cache: expirable.NewLRU[string, State](size, nil, ttl)}
}

// Get returns the session for id, minting a new one when id is unknown
// or empty. The returned state is a value; mutations go through Put.
func (s *Store) Get(id string) State {
	if id != "" {
		if state, ok := s.cache.Get(id); ok {
			return state
		}
	}
	state := State{ID: uuid.NewString()}
	s.cache.Add(state.ID, state)
	return state
}

func (s *Store) Put(state State) {
	if state.ID == "" {
		return
	}
	s.cache.Add(state.ID, state)
}
