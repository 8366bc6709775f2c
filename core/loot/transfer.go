package loot

import (
	"spawner-loot/core/utils"
)

// TransferRequest selects what MoveToSink may move: one signature or all of
// them, and at most Count units.
type TransferRequest struct {
	Signature *Signature
	Count     uint64
}

// AllSignatures requests up to n units of any signature.
func AllSignatures(n uint64) TransferRequest {
	return TransferRequest{Count: n}
}

// OnlySignature requests up to n units of sig.
func OnlySignature(sig Signature, n uint64) TransferRequest {
	return TransferRequest{Signature: &sig, Count: n}
}

// TransferResult reports the outcome of MoveToSink.
type TransferResult struct {
	// Moved is the number of units taken from the accumulator and placed in the sink.
	Moved uint64 `json:"moved"`
	// RemainderExhausted is true when nothing eligible is left in the accumulator.
	RemainderExhausted bool `json:"remainder_exhausted"`
	// SinkFull is true when a signature could not be placed because the sink had
	// no empty slot and no same-signature slot with room.
	SinkFull bool `json:"sink_full"`
}

// MoveToSink moves units into sink in iteration order. For every signature it
// fills existing same-signature slots first, then the first empty slots. It
// stops at the request count, or at the first signature that does not fit;
// later signatures are not tried even if they would fit.
func (a *Accumulator) MoveToSink(sink Sink, req TransferRequest) TransferResult {
	if sink == nil {
		panic("loot: move to nil sink")
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.moveLocked(sink, req)
}

// TryMoveToSink is MoveToSink without waiting: when another mutation holds the
// accumulator it returns ok=false and changes nothing. Siphon ticks use it so a
// busy spawner just skips a cycle.
func (a *Accumulator) TryMoveToSink(sink Sink, req TransferRequest) (TransferResult, bool) {
	if sink == nil {
		panic("loot: move to nil sink")
	}
	if !a.mu.TryLock() {
		return TransferResult{}, false
	}
	defer a.mu.Unlock()
	return a.moveLocked(sink, req), true
}

func (a *Accumulator) moveLocked(sink Sink, req TransferRequest) TransferResult {
	var candidates []Signature
	if req.Signature != nil {
		if _, ok := a.entries[*req.Signature]; ok {
			candidates = []Signature{*req.Signature}
		}
	} else {
		candidates = append(candidates, a.order...)
	}

	var res TransferResult
	budget := req.Count
	for _, sig := range candidates {
		if budget == 0 {
			break
		}
		e := a.entries[sig]
		want := utils.MinUint64(budget, e.Count)
		placed := place(sink, sig, e.Attributes, a.sinkStack(sink, sig.Kind), want)
		a.takeLocked(sig, placed)
		res.Moved += placed
		budget -= placed
		if placed < want {
			res.SinkFull = true
			break
		}
	}

	if req.Signature != nil {
		_, left := a.entries[*req.Signature]
		res.RemainderExhausted = !left
	} else {
		res.RemainderExhausted = len(a.order) == 0
	}
	return res
}

// sinkStack is the per-slot cap for kind inside sink.
func (a *Accumulator) sinkStack(sink Sink, kind string) int {
	size := a.MaxStack(kind)
	if l, ok := sink.(StackLimiter); ok {
		if m := l.MaxStack(kind); m > 0 && m < size {
			size = m
		}
	}
	return size
}

// place puts up to want units of sig into sink and returns how many fit.
func place(sink Sink, sig Signature, attrs Attributes, size int, want uint64) uint64 {
	var placed uint64
	n := sink.Len()

	for i := 0; i < n && placed < want; i++ {
		s := sink.At(i)
		if s.IsEmpty() || s.Signature != sig || s.Count >= size {
			continue
		}
		add := utils.MinUint64(uint64(size-s.Count), want-placed)
		s.Count += int(add)
		sink.Put(i, s)
		placed += add
	}

	for i := 0; i < n && placed < want; i++ {
		if !sink.At(i).IsEmpty() {
			continue
		}
		add := utils.MinUint64(uint64(size), want-placed)
		sink.Put(i, Stack{Signature: sig, Attributes: attrs.Clone(), Count: int(add)})
		placed += add
	}
	return placed
}

// RemoveBySignature removes min(n, count) units of sig and returns the amount
// removed. Unknown signatures remove nothing.
func (a *Accumulator) RemoveBySignature(sig Signature, n uint64) uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.takeLocked(sig, n)
}

// Appraisal is an appraiser's decision for one entry: how many units to
// remove and what each is worth.
type Appraisal struct {
	Units     uint64
	UnitPrice float64
}

// Appraiser decides per entry what a bulk removal takes. It is called with
// the accumulator locked and must not call back into it.
type Appraiser func(e Entry) Appraisal

// ManifestLine is one signature removed by RemoveAll.
type ManifestLine struct {
	Signature  Signature  `json:"signature"`
	Attributes Attributes `json:"attributes"`
	Units      uint64     `json:"units"`
	UnitPrice  float64    `json:"unit_price"`
	Value      float64    `json:"value"`
}

// Manifest is the source of truth for settling a bulk removal.
type Manifest struct {
	Lines []ManifestLine `json:"lines"`
	Units uint64         `json:"units"`
	Value float64        `json:"value"`
}

// Empty reports whether nothing was removed.
func (m Manifest) Empty() bool {
	return len(m.Lines) == 0
}

// RemoveAll removes what appraise selects from every entry and returns the
// manifest. Removal and manifest construction happen under one lock, so the
// manifest always matches the post-removal state.
func (a *Accumulator) RemoveAll(appraise Appraiser) Manifest {
	a.mu.Lock()
	defer a.mu.Unlock()

	m := Manifest{Lines: []ManifestLine{}}
	for _, sig := range append([]Signature(nil), a.order...) {
		e := a.entries[sig]
		ap := appraise(Entry{Signature: e.Signature, Attributes: e.Attributes.Clone(), Count: e.Count})
		if ap.Units == 0 {
			continue
		}
		attrs := e.Attributes.Clone()
		removed := a.takeLocked(sig, ap.Units)
		value := float64(removed) * ap.UnitPrice
		m.Lines = append(m.Lines, ManifestLine{
			Signature:  sig,
			Attributes: attrs,
			Units:      removed,
			UnitPrice:  ap.UnitPrice,
			Value:      value,
		})
		m.Units = utils.SaturatingAdd(m.Units, removed)
		m.Value += value
	}
	return m
}

// Return puts the units of a manifest back, used when settlement fails.
func (a *Accumulator) Return(m Manifest) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, l := range m.Lines {
		if l.Units > 0 {
			a.addLocked(l.Signature, l.Attributes, l.Units)
		}
	}
}
