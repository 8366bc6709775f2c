package loot

// Stack is the content of one sink slot. A slot with Count <= 0 is empty.
type Stack struct {
	Signature  Signature  `json:"signature"`
	Attributes Attributes `json:"attributes"`
	Count      int        `json:"count"`
}

// IsEmpty reports whether the slot holds nothing.
func (s Stack) IsEmpty() bool {
	return s.Count <= 0
}

// Sink is a bounded external container with a fixed number of slots, such as
// a player inventory or a hopper.
type Sink interface {
	// Len returns the fixed slot count.
	Len() int
	// At returns the content of slot i.
	At(i int) Stack
	// Put replaces the content of slot i.
	Put(i int, s Stack)
}

// StackLimiter is implemented by sinks that cap stacks below the kind's
// catalog size (for example a container limited to 16 per slot).
type StackLimiter interface {
	MaxStack(kind string) int
}

// Container is an in-memory fixed-size Sink. It is not safe for concurrent use;
// the transfer engine only touches it while holding the accumulator lock.
type Container struct {
	slots    []Stack
	maxStack int
}

// NewContainer creates a container with size empty slots. maxStack > 0 caps
// every slot; 0 leaves the catalog size in charge.
func NewContainer(size, maxStack int) *Container {
	if size < 0 {
		panic("loot: negative container size")
	}
	return &Container{slots: make([]Stack, size), maxStack: maxStack}
}

// ContainerOf wraps existing slot content, e.g. an inventory sent by a client.
func ContainerOf(slots []Stack, maxStack int) *Container {
	c := NewContainer(len(slots), maxStack)
	copy(c.slots, slots)
	return c
}

// Len implements Sink.
func (c *Container) Len() int { return len(c.slots) }

// At implements Sink.
func (c *Container) At(i int) Stack { return c.slots[i] }

// Put implements Sink.
func (c *Container) Put(i int, s Stack) { c.slots[i] = s }

// MaxStack implements StackLimiter.
func (c *Container) MaxStack(string) int { return c.maxStack }

// Slots returns a copy of the slot content.
func (c *Container) Slots() []Stack {
	return append([]Stack(nil), c.slots...)
}

// Units returns the total number of units held.
func (c *Container) Units() uint64 {
	var n uint64
	for _, s := range c.slots {
		if !s.IsEmpty() {
			n += uint64(s.Count)
		}
	}
	return n
}

// Drain empties the container and returns what it held.
func (c *Container) Drain() []Stack {
	var out []Stack
	for i, s := range c.slots {
		if !s.IsEmpty() {
			out = append(out, s)
		}
		c.slots[i] = Stack{}
	}
	return out
}
