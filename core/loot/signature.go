package loot

import (
	"encoding/binary"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Attributes describes everything about a resource unit besides its kind and
// count that decides whether two units can share a stack.
type Attributes struct {
	// DisplayName is the custom display text, empty for the vanilla name.
	DisplayName string `json:"display_name,omitempty"`
	// Lore holds the tooltip lines in order.
	Lore []string `json:"lore,omitempty"`
	// Enchantments maps enchantment key to level.
	Enchantments map[string]int `json:"enchantments,omitempty"`
	// Durability is the damage value for tools and armour.
	Durability int `json:"durability,omitempty"`
	// Variant carries potion type, dye colour and similar variant data.
	Variant string `json:"variant,omitempty"`
	// Unbreakable marks items that do not take damage.
	Unbreakable bool `json:"unbreakable,omitempty"`
}

// IsZero reports whether the attributes carry no data.
func (a Attributes) IsZero() bool {
	return a.DisplayName == "" && len(a.Lore) == 0 && len(a.Enchantments) == 0 &&
		a.Durability == 0 && a.Variant == "" && !a.Unbreakable
}

// Clone returns a deep copy so stored attributes never alias caller memory.
func (a Attributes) Clone() Attributes {
	out := a
	if a.Lore != nil {
		out.Lore = append([]string(nil), a.Lore...)
	}
	if a.Enchantments != nil {
		out.Enchantments = make(map[string]int, len(a.Enchantments))
		for k, v := range a.Enchantments {
			out.Enchantments[k] = v
		}
	}
	return out
}

// Unit is a stack of resource units as produced by a spawner drop.
type Unit struct {
	Kind       string     `json:"kind"`
	Attributes Attributes `json:"attributes"`
	Count      int        `json:"count"`
}

// Signature is the identity key of a resource unit. Two units are fungible
// iff their signatures are equal. It is comparable and used as a map key.
type Signature struct {
	Kind        string `json:"kind"`
	Fingerprint uint64 `json:"fingerprint"`
}

// Less orders signatures by kind, then fingerprint.
func (s Signature) Less(o Signature) bool {
	if s.Kind != o.Kind {
		return s.Kind < o.Kind
	}
	return s.Fingerprint < o.Fingerprint
}

// String renders the signature as KIND or KIND#fingerprint.
func (s Signature) String() string {
	if s.Fingerprint == 0 {
		return s.Kind
	}
	return s.Kind + "#" + strconv.FormatUint(s.Fingerprint, 16)
}

// ParseSignature is the inverse of Signature.String.
func ParseSignature(v string) (Signature, error) {
	for i := len(v) - 1; i >= 0; i-- {
		if v[i] != '#' {
			continue
		}
		fp, err := strconv.ParseUint(v[i+1:], 16, 64)
		if err != nil {
			return Signature{}, fmt.Errorf("invalid signature fingerprint %q: %w", v, err)
		}
		kind := NormalizeKind(v[:i])
		if kind == "" {
			return Signature{}, fmt.Errorf("invalid signature %q: empty kind", v)
		}
		return Signature{Kind: kind, Fingerprint: fp}, nil
	}
	kind := NormalizeKind(v)
	if kind == "" {
		return Signature{}, fmt.Errorf("invalid signature: empty kind")
	}
	return Signature{Kind: kind}, nil
}

// NormalizeKind is the canonical form of an item kind: trimmed and upper case.
// "bone", " Bone" and "BONE" are one kind.
func NormalizeKind(kind string) string {
	return strings.ToUpper(strings.TrimSpace(kind))
}

// SignatureOf computes the signature of a unit. The count never takes part.
func SignatureOf(u Unit) Signature {
	return NewSignature(u.Kind, u.Attributes)
}

// NewSignature computes the signature for a kind and attribute set. The kind
// is normalized first. Plain units (zero attributes) always get fingerprint 0.
func NewSignature(kind string, attrs Attributes) Signature {
	kind = NormalizeKind(kind)
	if kind == "" {
		panic("loot: signature with empty kind")
	}
	if attrs.IsZero() {
		return Signature{Kind: kind}
	}
	return Signature{Kind: kind, Fingerprint: fingerprint(attrs)}
}

// fingerprint hashes a canonical encoding of the attributes: fields in a
// fixed order, strings length prefixed, enchantments sorted by key.
func fingerprint(a Attributes) uint64 {
	d := xxhash.New()
	buf := make([]byte, 0, 64)

	writeString := func(tag byte, s string) {
		buf = append(buf[:0], tag)
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(s)))
		_, _ = d.Write(buf)
		_, _ = d.WriteString(s)
	}
	writeInt := func(tag byte, v int64) {
		buf = append(buf[:0], tag)
		buf = binary.LittleEndian.AppendUint64(buf, uint64(v))
		_, _ = d.Write(buf)
	}

	writeString('n', a.DisplayName)
	writeInt('L', int64(len(a.Lore)))
	for _, line := range a.Lore {
		writeString('l', line)
	}

	keys := make([]string, 0, len(a.Enchantments))
	for k := range a.Enchantments {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	writeInt('E', int64(len(keys)))
	for _, k := range keys {
		writeString('e', k)
		writeInt('v', int64(a.Enchantments[k]))
	}

	writeInt('d', int64(a.Durability))
	writeString('t', a.Variant)
	if a.Unbreakable {
		writeInt('u', 1)
	} else {
		writeInt('u', 0)
	}

	sum := d.Sum64()
	if sum == 0 {
		// 0 is reserved for plain units
		sum = 1
	}
	return sum
}
