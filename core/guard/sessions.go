package guard

import (
	"sort"
	"sync"
)

// Sessions tracks which actor holds each spawner's interaction lock.
// Spawners are independent: the map lock is only held for the lookup.
type Sessions struct {
	mu     sync.Mutex
	owners map[string]string
}

// NewSessions creates an empty session table.
func NewSessions() *Sessions {
	return &Sessions{owners: make(map[string]string)}
}

// Lock acquires spawner for actor. It succeeds when the spawner is free or
// already held by actor, and returns false without any change otherwise.
func (s *Sessions) Lock(spawner, actor string) bool {
	if spawner == "" || actor == "" {
		panic("guard: lock with empty spawner or actor")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if owner, ok := s.owners[spawner]; ok {
		return owner == actor
	}
	s.owners[spawner] = actor
	return true
}

// Unlock releases spawner if actor owns it. Calls by non-owners are ignored
// and return false.
func (s *Sessions) Unlock(spawner, actor string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if owner, ok := s.owners[spawner]; ok && owner == actor {
		delete(s.owners, spawner)
		return true
	}
	return false
}

// Owner returns the actor holding spawner.
func (s *Sessions) Owner(spawner string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	owner, ok := s.owners[spawner]
	return owner, ok
}

// IsOwner reports whether actor holds spawner.
func (s *Sessions) IsOwner(spawner, actor string) bool {
	owner, ok := s.Owner(spawner)
	return ok && owner == actor
}

// ReleaseActor ends every session of actor (UI closed, disconnect) and returns
// the released spawner ids in sorted order.
func (s *Sessions) ReleaseActor(actor string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var released []string
	for spawner, owner := range s.owners {
		if owner == actor {
			delete(s.owners, spawner)
			released = append(released, spawner)
		}
	}
	sort.Strings(released)
	return released
}

// Forget drops the lock of a destroyed spawner regardless of owner.
func (s *Sessions) Forget(spawner string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.owners, spawner)
}

// Len returns the number of held locks.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.owners)
}
