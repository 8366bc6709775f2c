package catalog

import (
	"errors"
	"fmt"

	"spawner-loot/core/loot"

	"gopkg.in/yaml.v3"
)

// ErrUnknownKind is returned by Lookup for kinds missing from the catalog.
var ErrUnknownKind = errors.New("unknown item kind")

// Item is the catalog entry of one kind.
type Item struct {
	MaxStack int     `yaml:"max_stack" json:"max_stack"`
	Price    float64 `yaml:"price" json:"price"`
}

type document struct {
	DefaultMaxStack int             `yaml:"default_max_stack"`
	DefaultPrice    float64         `yaml:"default_price"`
	Kinds           map[string]Item `yaml:"kinds"`
}

// Catalog is an immutable parsed catalog.
type Catalog struct {
	defaultMaxStack int
	defaultPrice    float64
	kinds           map[string]Item
}

// Empty returns a catalog with no kinds, a default stack of 64 and no prices.
func Empty() *Catalog {
	return &Catalog{defaultMaxStack: loot.DefaultMaxStack, kinds: map[string]Item{}}
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	c := Empty()
	if doc.DefaultMaxStack < 0 {
		return nil, fmt.Errorf("default_max_stack must not be negative, got %d", doc.DefaultMaxStack)
	}
	if doc.DefaultMaxStack > 0 {
		c.defaultMaxStack = doc.DefaultMaxStack
	}
	if doc.DefaultPrice < 0 {
		return nil, fmt.Errorf("default_price must not be negative, got %v", doc.DefaultPrice)
	}
	c.defaultPrice = doc.DefaultPrice

	for name, item := range doc.Kinds {
		kind := loot.NormalizeKind(name)
		if kind == "" {
			return nil, fmt.Errorf("catalog contains an empty kind")
		}
		if item.MaxStack < 0 || item.Price < 0 {
			return nil, fmt.Errorf("kind %s: max_stack and price must not be negative", kind)
		}
		if _, dup := c.kinds[kind]; dup {
			return nil, fmt.Errorf("kind %s listed twice", kind)
		}
		c.kinds[kind] = item
	}
	return c, nil
}

// Len returns the number of listed kinds.
func (c *Catalog) Len() int { return len(c.kinds) }

// Lookup returns the resolved entry of kind.
func (c *Catalog) Lookup(kind string) (Item, error) {
	item, ok := c.kinds[loot.NormalizeKind(kind)]
	if !ok {
		return Item{}, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	item.MaxStack = c.MaxStack(kind)
	item.Price, _ = c.Price(kind)
	return item, nil
}

// Known reports whether kind is listed.
func (c *Catalog) Known(kind string) bool {
	_, ok := c.kinds[loot.NormalizeKind(kind)]
	return ok
}

// MaxStack implements loot.StackSizer.
func (c *Catalog) MaxStack(kind string) int {
	if item, ok := c.kinds[loot.NormalizeKind(kind)]; ok && item.MaxStack > 0 {
		return item.MaxStack
	}
	return c.defaultMaxStack
}

// Price returns the unit price of kind; false means unsellable.
func (c *Catalog) Price(kind string) (float64, bool) {
	if item, ok := c.kinds[loot.NormalizeKind(kind)]; ok && item.Price > 0 {
		return item.Price, true
	}
	if c.defaultPrice > 0 {
		return c.defaultPrice, true
	}
	return 0, false
}

// Appraiser sells every unit of a sellable kind at its catalog price.
func (c *Catalog) Appraiser() loot.Appraiser {
	return func(e loot.Entry) loot.Appraisal {
		price, ok := c.Price(e.Signature.Kind)
		if !ok {
			return loot.Appraisal{}
		}
		return loot.Appraisal{Units: e.Count, UnitPrice: price}
	}
}
