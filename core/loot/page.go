package loot

import (
	"iter"

	"spawner-loot/core/utils"
)

// PageSize is the number of virtual stacks shown per page.
const PageSize = 45

// VirtualStack is one chunk of a signature's count, no larger than its kind's
// stack cap. It exists only for paging and transfer math.
type VirtualStack struct {
	Signature  Signature  `json:"signature"`
	Attributes Attributes `json:"attributes"`
	Units      int        `json:"units"`
}

// Page is a window of up to PageSize virtual stacks.
type Page struct {
	Number     int            `json:"number"`
	TotalPages int            `json:"total_pages"`
	Stacks     []VirtualStack `json:"stacks"`
}

// StacksFor returns how many stacks count units occupy at maxStack per stack.
func StacksFor(count uint64, maxStack int) uint64 {
	if maxStack < 1 {
		maxStack = 1
	}
	return utils.CeilDiv(count, uint64(maxStack))
}

// PagesFor returns max(1, ceil(stacks/PageSize)).
func PagesFor(stacks uint64) int {
	if stacks == 0 {
		return 1
	}
	return int(utils.CeilDiv(stacks, PageSize))
}

// ClampPage clamps page into [1, total]. Callers re-clamp a remembered page
// after a mutation shrank the accumulator.
func ClampPage(page, total int) int {
	if total < 1 {
		total = 1
	}
	if page < 1 {
		return 1
	}
	if page > total {
		return total
	}
	return page
}

// TotalStacks returns the number of virtual stacks across all entries.
func (a *Accumulator) TotalStacks() uint64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.totalStacksLocked()
}

func (a *Accumulator) totalStacksLocked() uint64 {
	var total uint64
	for _, e := range a.entries {
		total = utils.SaturatingAdd(total, StacksFor(e.Count, a.MaxStack(e.Signature.Kind)))
	}
	return total
}

// TotalPages returns max(1, ceil(TotalStacks/PageSize)).
func (a *Accumulator) TotalPages() int {
	return PagesFor(a.TotalStacks())
}

// Page returns page n (1-based) computed from the current state. An
// out-of-range page yields ok=false and an empty page; it is never clamped.
func (a *Accumulator) Page(n int) (Page, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	total := PagesFor(a.totalStacksLocked())
	page := Page{Number: n, TotalPages: total, Stacks: []VirtualStack{}}
	if n < 1 || n > total {
		return page, false
	}

	skip := uint64(n-1) * PageSize
	for _, sig := range a.order {
		if len(page.Stacks) == PageSize {
			break
		}
		e := a.entries[sig]
		size := a.MaxStack(sig.Kind)
		stacks := StacksFor(e.Count, size)
		if skip >= stacks {
			skip -= stacks
			continue
		}

		attrs := e.Attributes.Clone()
		for i := skip; i < stacks && len(page.Stacks) < PageSize; i++ {
			page.Stacks = append(page.Stacks, VirtualStack{
				Signature:  sig,
				Attributes: attrs,
				Units:      chunkUnits(e.Count, size, i),
			})
		}
		skip = 0
	}
	return page, true
}

// SlotAt resolves a slot index (0..PageSize-1) on page n to its virtual stack.
func (a *Accumulator) SlotAt(n, slot int) (VirtualStack, bool) {
	if slot < 0 || slot >= PageSize {
		return VirtualStack{}, false
	}
	page, ok := a.Page(n)
	if !ok || slot >= len(page.Stacks) {
		return VirtualStack{}, false
	}
	return page.Stacks[slot], true
}

// VirtualStacks returns a restartable sequence over every virtual stack in
// iteration order. Each range over it walks a snapshot taken when the range
// starts, so the accumulator is never locked while the caller's loop runs.
func (a *Accumulator) VirtualStacks() iter.Seq[VirtualStack] {
	return func(yield func(VirtualStack) bool) {
		for _, e := range a.Entries() {
			size := a.MaxStack(e.Signature.Kind)
			stacks := StacksFor(e.Count, size)
			for i := uint64(0); i < stacks; i++ {
				if !yield(VirtualStack{Signature: e.Signature, Attributes: e.Attributes, Units: chunkUnits(e.Count, size, i)}) {
					return
				}
			}
		}
	}
}

// chunkUnits returns the size of the i-th chunk of count split by size.
func chunkUnits(count uint64, size int, i uint64) int {
	rest := count - i*uint64(size)
	if rest > uint64(size) {
		return size
	}
	return int(rest)
}
