package catalog_test

import (
	"errors"
	"testing"

	"spawner-loot/core/catalog"
	"spawner-loot/core/loot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
default_max_stack: 64
kinds:
  bone:
    price: 0.5
  ENDER_PEARL:
    max_stack: 16
    price: 4
  IRON_SWORD:
    max_stack: 1
`

func TestParse(t *testing.T) {
	c, err := catalog.Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, 3, c.Len())
	assert.True(t, c.Known("BONE"))
	assert.True(t, c.Known("bone"))
	assert.False(t, c.Known("ARROW"))

	assert.Equal(t, 64, c.MaxStack("BONE"))
	assert.Equal(t, 16, c.MaxStack("ENDER_PEARL"))
	assert.Equal(t, 1, c.MaxStack("IRON_SWORD"))
	assert.Equal(t, 64, c.MaxStack("ARROW"))

	price, ok := c.Price("BONE")
	assert.True(t, ok)
	assert.Equal(t, 0.5, price)
	_, ok = c.Price("IRON_SWORD")
	assert.False(t, ok)

	item, err := c.Lookup("ender_pearl")
	require.NoError(t, err)
	assert.Equal(t, catalog.Item{MaxStack: 16, Price: 4}, item)

	_, err = c.Lookup("ARROW")
	assert.True(t, errors.Is(err, catalog.ErrUnknownKind))
}

func TestParseDefaultPrice(t *testing.T) {
	c, err := catalog.Parse([]byte("default_price: 0.1\nkinds:\n  BONE: {price: 2}\n"))
	require.NoError(t, err)

	price, ok := c.Price("ARROW")
	assert.True(t, ok)
	assert.Equal(t, 0.1, price)
	price, _ = c.Price("BONE")
	assert.Equal(t, 2.0, price)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"Malformed", "kinds: ["},
		{"NegativeDefaultStack", "default_max_stack: -1"},
		{"NegativeDefaultPrice", "default_price: -2"},
		{"NegativePrice", "kinds:\n  BONE: {price: -1}\n"},
		{"NegativeStack", "kinds:\n  BONE: {max_stack: -1}\n"},
		{"CaseDuplicate", "kinds:\n  BONE: {}\n  bone: {}\n"},
		{"EmptyKind", "kinds:\n  ' ': {}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestAppraiser(t *testing.T) {
	c, err := catalog.Parse([]byte(sample))
	require.NoError(t, err)

	acc := loot.New(c)
	acc.Accumulate(loot.Signature{Kind: "BONE"}, loot.Attributes{}, 10)
	acc.Accumulate(loot.Signature{Kind: "IRON_SWORD"}, loot.Attributes{}, 2)

	m := acc.RemoveAll(c.Appraiser())
	assert.Equal(t, uint64(10), m.Units)
	assert.InDelta(t, 5.0, m.Value, 1e-9)
	assert.Equal(t, uint64(2), acc.Get(loot.Signature{Kind: "IRON_SWORD"}), "unpriced kinds stay")
}

func TestEmpty(t *testing.T) {
	c := catalog.Empty()
	assert.Equal(t, loot.DefaultMaxStack, c.MaxStack("ANY"))
	_, ok := c.Price("ANY")
	assert.False(t, ok)
}
