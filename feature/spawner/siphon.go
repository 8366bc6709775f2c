package spawner

import (
	"context"
	"sync"

	"spawner-loot/core/loot"
	"spawner-loot/core/siphon"
)

// siphonTask moves up to batch units per cycle into a hopper-like buffer.
// The buffer has its own lock: cycles and drains of one siphon never overlap.
type siphonTask struct {
	id     string
	acc    *loot.Accumulator
	batch  uint64
	mu     sync.Mutex
	buffer *loot.Container
	slots  int
}

func newSiphonTask(id string, acc *loot.Accumulator, slots int, batch uint64) *siphonTask {
	return &siphonTask{id: id, acc: acc, batch: batch, buffer: loot.NewContainer(slots, 0), slots: slots}
}

// Run implements siphon.Task.
func (t *siphonTask) Run(context.Context) siphon.Outcome {
	t.mu.Lock()
	defer t.mu.Unlock()

	res, ok := t.acc.TryMoveToSink(t.buffer, loot.AllSignatures(t.batch))
	if !ok {
		return siphon.Outcome{Busy: true}
	}
	return siphon.Outcome{Moved: res.Moved, Full: res.SinkFull}
}

// drain empties the buffer, handing its content downstream.
func (t *siphonTask) drain() []loot.Stack {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.buffer.Drain()
}

func (t *siphonTask) units() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.buffer.Units()
}
