package loot_test

import (
	"math"
	"sync"
	"testing"

	"spawner-loot/core/loot"

	"github.com/stretchr/testify/assert"
)

// sizes mimics the catalog: 64 by default, 16 for pearls, 1 for swords.
var sizes = loot.StackSizerFunc(func(kind string) int {
	switch kind {
	case "ENDER_PEARL":
		return 16
	case "IRON_SWORD":
		return 1
	default:
		return 64
	}
})

var (
	bone  = loot.Signature{Kind: "BONE"}
	arrow = loot.Signature{Kind: "ARROW"}
	pearl = loot.Signature{Kind: "ENDER_PEARL"}
	sword = loot.Signature{Kind: "IRON_SWORD"}
)

func TestAccumulate(t *testing.T) {
	t.Run("Consolidates", func(t *testing.T) {
		acc := loot.New(sizes)
		acc.AccumulateUnit(loot.Unit{Kind: "BONE", Count: 3})
		acc.AccumulateUnit(loot.Unit{Kind: "BONE", Count: 4})
		assert.Equal(t, uint64(7), acc.Get(bone))
		assert.Equal(t, 1, acc.Len())
	})

	t.Run("ZeroIsNoop", func(t *testing.T) {
		acc := loot.New(sizes)
		added, saturated := acc.Accumulate(bone, loot.Attributes{}, 0)
		assert.Zero(t, added)
		assert.False(t, saturated)
		assert.Zero(t, acc.Len())
		assert.Zero(t, acc.Version())
	})

	t.Run("Saturates", func(t *testing.T) {
		acc := loot.New(sizes)
		acc.Accumulate(bone, loot.Attributes{}, math.MaxUint64-5)
		added, saturated := acc.Accumulate(bone, loot.Attributes{}, 10)
		assert.Equal(t, uint64(5), added)
		assert.True(t, saturated)
		assert.Equal(t, uint64(math.MaxUint64), acc.Get(bone))

		added, saturated = acc.Accumulate(bone, loot.Attributes{}, 1)
		assert.Zero(t, added)
		assert.True(t, saturated)
		assert.Equal(t, uint64(math.MaxUint64), acc.TotalUnits())
	})

	t.Run("NegativeUnitPanics", func(t *testing.T) {
		acc := loot.New(sizes)
		assert.Panics(t, func() { acc.AccumulateUnit(loot.Unit{Kind: "BONE", Count: -1}) })
	})

	t.Run("EmptyKindPanics", func(t *testing.T) {
		acc := loot.New(sizes)
		assert.Panics(t, func() { acc.Accumulate(loot.Signature{}, loot.Attributes{}, 1) })
	})

	t.Run("KindNormalized", func(t *testing.T) {
		acc := loot.New(sizes)
		acc.Accumulate(loot.Signature{Kind: "bone"}, loot.Attributes{}, 2)
		acc.AccumulateUnit(loot.Unit{Kind: " Bone ", Count: 3})
		assert.Equal(t, []loot.Entry{{Signature: bone, Count: 5}}, acc.Entries())
	})

	t.Run("AttributesAreCopied", func(t *testing.T) {
		acc := loot.New(sizes)
		attrs := loot.Attributes{Lore: []string{"a"}, Enchantments: map[string]int{"sharpness": 1}}
		sig := loot.NewSignature("IRON_SWORD", attrs)
		acc.Accumulate(sig, attrs, 1)
		attrs.Lore[0] = "changed"
		attrs.Enchantments["sharpness"] = 5

		got := acc.Entries()[0].Attributes
		assert.Equal(t, []string{"a"}, got.Lore)
		assert.Equal(t, 1, got.Enchantments["sharpness"])
	})
}

func TestEntriesDeterministicOrder(t *testing.T) {
	acc := loot.New(sizes)
	for _, sig := range []loot.Signature{pearl, bone, sword, arrow} {
		acc.Accumulate(sig, loot.Attributes{}, 1)
	}

	var kinds []string
	for _, e := range acc.Entries() {
		kinds = append(kinds, e.Signature.Kind)
	}
	assert.Equal(t, []string{"ARROW", "BONE", "ENDER_PEARL", "IRON_SWORD"}, kinds)
	assert.Equal(t, acc.Entries(), acc.Entries())
}

func TestRestore(t *testing.T) {
	acc := loot.New(sizes)
	acc.Accumulate(arrow, loot.Attributes{}, 9)

	acc.Restore([]loot.Entry{
		{Signature: bone, Count: 5},
		{Signature: bone, Count: 6},
		{Signature: pearl, Count: 0},
	})

	assert.Equal(t, []loot.Entry{{Signature: bone, Count: 11}}, acc.Entries())
	assert.Zero(t, acc.Get(arrow))
	assert.Panics(t, func() { acc.Restore([]loot.Entry{{Count: 1}}) })

	t.Run("RecomputesSignatures", func(t *testing.T) {
		attrs := loot.Attributes{DisplayName: "Lucky"}
		acc := loot.New(sizes)
		acc.Restore([]loot.Entry{
			{Signature: loot.Signature{Kind: "bone", Fingerprint: 7}, Count: 2},
			{Signature: loot.Signature{Kind: "BONE", Fingerprint: 1}, Attributes: attrs, Count: 3},
		})

		acc.Accumulate(bone, loot.Attributes{}, 1)
		acc.AccumulateUnit(loot.Unit{Kind: "bone", Attributes: attrs, Count: 1})
		assert.Equal(t, 2, acc.Len())
		assert.Equal(t, uint64(3), acc.Get(bone))
		assert.Equal(t, uint64(4), acc.Get(loot.NewSignature("BONE", attrs)))
	})
}

func TestVersion(t *testing.T) {
	acc := loot.New(sizes)
	v0 := acc.Version()
	acc.Accumulate(bone, loot.Attributes{}, 1)
	v1 := acc.Version()
	assert.Greater(t, v1, v0)

	acc.RemoveBySignature(arrow, 5)
	assert.Equal(t, v1, acc.Version(), "removing nothing is not a mutation")

	acc.RemoveBySignature(bone, 1)
	assert.Greater(t, acc.Version(), v1)
}

func TestMaxStackFallbacks(t *testing.T) {
	assert.Equal(t, loot.DefaultMaxStack, loot.New(nil).MaxStack("BONE"))
	acc := loot.New(loot.StackSizerFunc(func(string) int { return 0 }))
	assert.Equal(t, 1, acc.MaxStack("BONE"))
}

func TestConcurrentConservation(t *testing.T) {
	acc := loot.New(sizes)
	const workers = 8
	const rounds = 500

	var wg sync.WaitGroup
	var mu sync.Mutex
	var removed uint64

	for w := 0; w < workers; w++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				acc.Accumulate(bone, loot.Attributes{}, 3)
				acc.Accumulate(pearl, loot.Attributes{}, 1)
			}
		}()
		go func() {
			defer wg.Done()
			var local uint64
			for i := 0; i < rounds; i++ {
				local += acc.RemoveBySignature(bone, 2)
				page, ok := acc.Page(1)
				if assert.True(t, ok) {
					for _, s := range page.Stacks {
						assert.Positive(t, s.Units)
					}
				}
			}
			mu.Lock()
			removed += local
			mu.Unlock()
		}()
	}
	wg.Wait()

	total := uint64(workers * rounds * 4)
	assert.Equal(t, total-removed, acc.TotalUnits())
	for _, e := range acc.Entries() {
		assert.NotZero(t, e.Count)
	}
}
