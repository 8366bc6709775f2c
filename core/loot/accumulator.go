package loot

import (
	"math"
	"sort"
	"sync"

	"spawner-loot/core/utils"
)

// DefaultMaxStack is used when no StackSizer is configured.
const DefaultMaxStack = 64

// StackSizer resolves the per-kind stack cap (64 for most kinds, 1 for
// unstackable kinds). Values below 1 are treated as 1.
type StackSizer interface {
	MaxStack(kind string) int
}

// StackSizerFunc adapts a function to StackSizer.
type StackSizerFunc func(kind string) int

// MaxStack implements StackSizer.
func (f StackSizerFunc) MaxStack(kind string) int { return f(kind) }

// Entry is one consolidated signature and its count. Count is never 0 inside
// an Accumulator.
type Entry struct {
	Signature  Signature  `json:"signature"`
	Attributes Attributes `json:"attributes"`
	Count      uint64     `json:"count"`
}

// Accumulator is the per-spawner signature→count store.
//
// Mutations are serialised by a single write lock; reads share a read lock and
// never observe a half-applied mutation. Entries are kept sorted by
// Signature.Less so iteration order is stable between reads.
type Accumulator struct {
	mu      sync.RWMutex
	sizes   StackSizer
	entries map[Signature]*Entry
	order   []Signature
	version uint64
}

// New creates an empty accumulator.
func New(sizes StackSizer) *Accumulator {
	return &Accumulator{
		sizes:   sizes,
		entries: make(map[Signature]*Entry),
	}
}

// AccumulateUnit adds a dropped unit. See Accumulate.
func (a *Accumulator) AccumulateUnit(u Unit) (added uint64, saturated bool) {
	if u.Count < 0 {
		panic("loot: negative unit count")
	}
	return a.Accumulate(SignatureOf(u), u.Attributes, uint64(u.Count))
}

// Accumulate adds n units of sig. Counts saturate at math.MaxUint64: added is
// what was actually stored and saturated reports that some units were dropped.
func (a *Accumulator) Accumulate(sig Signature, attrs Attributes, n uint64) (added uint64, saturated bool) {
	sig.Kind = NormalizeKind(sig.Kind)
	if sig.Kind == "" {
		panic("loot: accumulate with empty signature kind")
	}
	if n == 0 {
		return 0, false
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	return a.addLocked(sig, attrs, n)
}

func (a *Accumulator) addLocked(sig Signature, attrs Attributes, n uint64) (uint64, bool) {
	e, ok := a.entries[sig]
	if !ok {
		e = &Entry{Signature: sig, Attributes: attrs.Clone()}
		a.entries[sig] = e
		i := sort.Search(len(a.order), func(i int) bool { return !a.order[i].Less(sig) })
		a.order = append(a.order, Signature{})
		copy(a.order[i+1:], a.order[i:])
		a.order[i] = sig
	}

	room := math.MaxUint64 - e.Count
	saturated := false
	if n > room {
		n = room
		saturated = true
	}
	e.Count += n
	if n > 0 {
		a.version++
	}
	return n, saturated
}

// takeLocked removes up to n units of sig and deletes the entry at zero.
func (a *Accumulator) takeLocked(sig Signature, n uint64) uint64 {
	e, ok := a.entries[sig]
	if !ok || n == 0 {
		return 0
	}
	if n > e.Count {
		n = e.Count
	}
	e.Count -= n
	if e.Count == 0 {
		delete(a.entries, sig)
		i := sort.Search(len(a.order), func(i int) bool { return !a.order[i].Less(sig) })
		a.order = append(a.order[:i], a.order[i+1:]...)
	}
	a.version++
	return n
}

// Restore replaces the content with the given entries, as read back from
// persistence. Signatures are recomputed from kind and attributes, duplicates
// merged and zero counts dropped.
func (a *Accumulator) Restore(entries []Entry) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.entries = make(map[Signature]*Entry, len(entries))
	a.order = a.order[:0]
	for _, e := range entries {
		if NormalizeKind(e.Signature.Kind) == "" {
			panic("loot: restore entry with empty signature kind")
		}
		if e.Count == 0 {
			continue
		}
		// stored fingerprints are not trusted
		a.addLocked(NewSignature(e.Signature.Kind, e.Attributes), e.Attributes, e.Count)
	}
	a.version++
}

// Entries returns a copy of all entries in iteration order.
func (a *Accumulator) Entries() []Entry {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]Entry, 0, len(a.order))
	for _, sig := range a.order {
		e := a.entries[sig]
		out = append(out, Entry{Signature: e.Signature, Attributes: e.Attributes.Clone(), Count: e.Count})
	}
	return out
}

// Get returns the count stored for sig, 0 when absent.
func (a *Accumulator) Get(sig Signature) uint64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if e, ok := a.entries[sig]; ok {
		return e.Count
	}
	return 0
}

// Len returns the number of distinct signatures.
func (a *Accumulator) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.order)
}

// TotalUnits returns the sum of all counts, saturating at math.MaxUint64.
func (a *Accumulator) TotalUnits() uint64 {
	a.mu.RLock()
	defer a.mu.RUnlock()

	var total uint64
	for _, e := range a.entries {
		total = utils.SaturatingAdd(total, e.Count)
	}
	return total
}

// Version increases on every mutation that changed the content.
func (a *Accumulator) Version() uint64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.version
}

// MaxStack returns the effective stack cap for kind.
func (a *Accumulator) MaxStack(kind string) int {
	if a.sizes == nil {
		return DefaultMaxStack
	}
	if m := a.sizes.MaxStack(kind); m > 1 {
		return m
	}
	return 1
}
