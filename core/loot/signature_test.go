package loot_test

import (
	"testing"

	"spawner-loot/core/loot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignatureOf(t *testing.T) {
	t.Run("CountIgnored", func(t *testing.T) {
		a := loot.SignatureOf(loot.Unit{Kind: "BONE", Count: 1})
		b := loot.SignatureOf(loot.Unit{Kind: "BONE", Count: 64})
		assert.Equal(t, a, b)
	})

	t.Run("PlainUnitHasZeroFingerprint", func(t *testing.T) {
		sig := loot.SignatureOf(loot.Unit{Kind: "ARROW"})
		assert.Equal(t, loot.Signature{Kind: "ARROW"}, sig)
	})

	t.Run("EnchantmentOrderIrrelevant", func(t *testing.T) {
		a := loot.NewSignature("BOW", loot.Attributes{Enchantments: map[string]int{"power": 2, "flame": 1}})
		b := loot.NewSignature("BOW", loot.Attributes{Enchantments: map[string]int{"flame": 1, "power": 2}})
		assert.Equal(t, a, b)
		assert.NotZero(t, a.Fingerprint)
	})

	t.Run("AttributesDistinguish", func(t *testing.T) {
		base := loot.Attributes{DisplayName: "Bone"}
		tests := []struct {
			name  string
			attrs loot.Attributes
		}{
			{"DisplayName", loot.Attributes{DisplayName: "Bones"}},
			{"Lore", loot.Attributes{DisplayName: "Bone", Lore: []string{"old"}}},
			{"Durability", loot.Attributes{DisplayName: "Bone", Durability: 3}},
			{"Variant", loot.Attributes{DisplayName: "Bone", Variant: "white"}},
			{"Unbreakable", loot.Attributes{DisplayName: "Bone", Unbreakable: true}},
			{"Enchantment", loot.Attributes{DisplayName: "Bone", Enchantments: map[string]int{"mending": 1}}},
		}
		want := loot.NewSignature("BONE", base)
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				assert.NotEqual(t, want, loot.NewSignature("BONE", tt.attrs))
			})
		}
	})

	t.Run("LoreBoundaries", func(t *testing.T) {
		a := loot.NewSignature("PAPER", loot.Attributes{Lore: []string{"ab", "c"}})
		b := loot.NewSignature("PAPER", loot.Attributes{Lore: []string{"a", "bc"}})
		assert.NotEqual(t, a, b)
	})

	t.Run("KindDistinguishes", func(t *testing.T) {
		attrs := loot.Attributes{DisplayName: "x"}
		assert.NotEqual(t, loot.NewSignature("A", attrs), loot.NewSignature("B", attrs))
	})

	t.Run("KindCaseAndSpaceIgnored", func(t *testing.T) {
		attrs := loot.Attributes{Durability: 2}
		want := loot.NewSignature("BONE", attrs)
		for _, kind := range []string{"bone", " Bone", "BONE\t"} {
			assert.Equal(t, want, loot.SignatureOf(loot.Unit{Kind: kind, Attributes: attrs}), kind)
		}
	})

	t.Run("EmptyKindPanics", func(t *testing.T) {
		assert.Panics(t, func() { loot.SignatureOf(loot.Unit{}) })
		assert.Panics(t, func() { loot.SignatureOf(loot.Unit{Kind: "  "}) })
	})
}

func TestNormalizeKind(t *testing.T) {
	assert.Equal(t, "ENDER_PEARL", loot.NormalizeKind(" ender_pearl "))
	assert.Equal(t, "BONE", loot.NormalizeKind("BONE"))
	assert.Empty(t, loot.NormalizeKind(" "))
}

func TestSignatureStringRoundTrip(t *testing.T) {
	sigs := []loot.Signature{
		{Kind: "BONE"},
		loot.NewSignature("BOW", loot.Attributes{Enchantments: map[string]int{"power": 5}}),
	}
	for _, sig := range sigs {
		got, err := loot.ParseSignature(sig.String())
		require.NoError(t, err)
		assert.Equal(t, sig, got)
	}

	_, err := loot.ParseSignature("")
	assert.Error(t, err)
	_, err = loot.ParseSignature("BOW#zz")
	assert.Error(t, err)
	_, err = loot.ParseSignature("#12")
	assert.Error(t, err)
	_, err = loot.ParseSignature(" #12")
	assert.Error(t, err)

	got, err := loot.ParseSignature("bow#1f")
	require.NoError(t, err)
	assert.Equal(t, loot.Signature{Kind: "BOW", Fingerprint: 0x1f}, got)
}

func TestSignatureLess(t *testing.T) {
	assert.True(t, loot.Signature{Kind: "A"}.Less(loot.Signature{Kind: "B"}))
	assert.True(t, loot.Signature{Kind: "A", Fingerprint: 1}.Less(loot.Signature{Kind: "A", Fingerprint: 2}))
	assert.False(t, loot.Signature{Kind: "A"}.Less(loot.Signature{Kind: "A"}))
}
