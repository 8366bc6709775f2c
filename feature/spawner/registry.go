package spawner

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"spawner-loot/core/loot"
)

// Spawner is a live spawner and its accumulator.
type Spawner struct {
	ID        string
	Kind      string
	CreatedAt time.Time
	Loot      *loot.Accumulator

	// persist orders saves against destruction; destroyed is set under it
	persist   sync.Mutex
	destroyed bool
}

// Registry holds the live spawners.
type Registry struct {
	mu       sync.RWMutex
	spawners map[string]*Spawner
	sizes    loot.StackSizer
}

// NewRegistry creates an empty registry; accumulators size stacks with sizes.
func NewRegistry(sizes loot.StackSizer) *Registry {
	return &Registry{spawners: make(map[string]*Spawner), sizes: sizes}
}

// Create adds a spawner with an empty accumulator.
func (r *Registry) Create(id, kind string, createdAt time.Time) (*Spawner, error) {
	if kind == "" {
		return nil, ErrInvalidKind
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.spawners[id]; ok {
		return nil, fmt.Errorf("%w: %s", ErrExists, id)
	}
	sp := &Spawner{ID: id, Kind: kind, CreatedAt: createdAt, Loot: loot.New(r.sizes)}
	r.spawners[id] = sp
	return sp, nil
}

// Get returns the spawner with id.
func (r *Registry) Get(id string) (*Spawner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sp, ok := r.spawners[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return sp, nil
}

// Destroy removes the spawner. Its accumulator is discarded with it.
func (r *Registry) Destroy(id string) (*Spawner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sp, ok := r.spawners[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	delete(r.spawners, id)
	return sp, nil
}

// List returns the live spawners ordered by id.
func (r *Registry) List() []*Spawner {
	r.mu.RLock()
	out := make([]*Spawner, 0, len(r.spawners))
	for _, sp := range r.spawners {
		out = append(out, sp)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of live spawners.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.spawners)
}
