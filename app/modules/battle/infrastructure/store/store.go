// Package battlestore keeps interactive battle state in process memory.
// Access to a given battle id is serialized so two concurrent turn requests
// cannot interleave HP updates or log appends; distinct battles proceed in
// parallel.
package battlestore

import (
	"errors"
	"sync"

	battledomain "github.com/Clone-Wars-Club/arena-bot/app/modules/battle/domain"
)

// ErrNotFound is returned when a battle id is absent from the store.
var ErrNotFound = errors.New("battle not found")

// Store holds active interactive battles.
type Store interface {
	// Put registers a new battle.
	Put(state *battledomain.State)
	// Get returns a snapshot-free reference for read-only use.
	Get(id string) (*battledomain.State, error)
	// Update runs fn while holding the battle's lock. When fn leaves the
	// battle finished, the entry is removed on the way out.
	Update(id string, fn func(state *battledomain.State) error) (*battledomain.State, error)
	// Remove drops a battle regardless of its state.
	Remove(id string)
}

type entry struct {
	mu    sync.Mutex
	state *battledomain.State
}

// InMemory implements Store with a mutex per battle.
type InMemory struct {
	mu      sync.RWMutex
	battles map[string]*entry
}

// NewInMemory creates an empty in-memory battle store.
func NewInMemory() *InMemory {
	return &InMemory{battles: make(map[string]*entry)}
}

// Put registers a new battle.
func (s *InMemory) Put(state *battledomain.State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.battles[state.ID] = &entry{state: state}
}

// Get returns the battle for the given id.
func (s *InMemory) Get(id string) (*battledomain.State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.battles[id]
	if !ok {
		return nil, ErrNotFound
	}
	return e.state, nil
}

// Update runs fn under the battle's own lock, removing the battle when fn
// leaves it finished.
func (s *InMemory) Update(id string, fn func(state *battledomain.State) error) (*battledomain.State, error) {
	s.mu.RLock()
	e, ok := s.battles[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := fn(e.state); err != nil {
		return nil, err
	}

	if e.state.Finished {
		s.Remove(id)
	}
	return e.state, nil
}

// Remove drops a battle.
func (s *InMemory) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.battles, id)
}
