package siphon

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"spawner-loot/core/metrics"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

// Key identifies one spawner/siphon pair.
type Key struct {
	Spawner string `json:"spawner"`
	Siphon  string `json:"siphon"`
}

// Outcome is the result of one task cycle.
type Outcome struct {
	Moved uint64
	// Busy means the spawner was mutating and the cycle did nothing.
	Busy bool
	// Full means the siphon could not take more.
	Full bool
}

// Task is one recurring siphon transfer.
type Task interface {
	Run(ctx context.Context) Outcome
}

// TaskFunc adapts a function to Task.
type TaskFunc func(ctx context.Context) Outcome

// Run calls f.
func (f TaskFunc) Run(ctx context.Context) Outcome { return f(ctx) }

// Config tunes a Scheduler.
type Config struct {
	Interval time.Duration
	Workers  int
}

type entry struct {
	task    Task
	ctx     context.Context
	cancel  context.CancelFunc
	running atomic.Bool
	wg      sync.WaitGroup
}

// Scheduler runs registered tasks every interval.
type Scheduler struct {
	interval time.Duration
	pool     *semaphore.Weighted
	logger   *zap.Logger

	mu      sync.Mutex
	tasks   map[Key]*entry
	baseCtx context.Context
	stop    context.CancelFunc
	done    chan struct{}
}

// New creates a Scheduler. Non-positive values fall back to one second and
// one worker.
func New(cfg Config, logger *zap.Logger) *Scheduler {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Second
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		interval: cfg.Interval,
		pool:     semaphore.NewWeighted(int64(cfg.Workers)),
		logger:   logger,
		tasks:    make(map[Key]*entry),
		baseCtx:  context.Background(),
	}
}

// Start begins ticking until ctx is done or Stop is called. Starting twice is a no-op.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	if s.done != nil {
		s.mu.Unlock()
		return
	}
	ctx, s.stop = context.WithCancel(ctx)
	s.baseCtx = ctx
	s.done = make(chan struct{})
	for _, e := range s.tasks {
		e.ctx, e.cancel = context.WithCancel(ctx)
	}
	s.mu.Unlock()

	go s.loop(ctx)
}

func (s *Scheduler) loop(ctx context.Context) {
	defer close(s.done)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Tick()
		}
	}
}

// Tick dispatches one cycle of every task without waiting for them.
func (s *Scheduler) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, e := range s.tasks {
		if !e.running.CompareAndSwap(false, true) {
			metrics.Skipped("running")
			continue
		}
		if !s.pool.TryAcquire(1) {
			e.running.Store(false)
			metrics.Skipped("pool")
			continue
		}
		e.wg.Add(1)
		go s.run(e.ctx, key, e)
	}
}

func (s *Scheduler) run(ctx context.Context, key Key, e *entry) {
	defer e.wg.Done()
	defer e.running.Store(false)
	defer s.pool.Release(1)

	if ctx.Err() != nil {
		return
	}
	out := e.task.Run(ctx)
	switch {
	case out.Busy:
		metrics.Skipped("busy")
	case out.Moved > 0:
		metrics.Moved(metrics.ConsumerSiphon, out.Moved)
		s.logger.Debug("Siphon cycle",
			zap.String("spawner", key.Spawner),
			zap.String("siphon", key.Siphon),
			zap.Uint64("moved", out.Moved),
			zap.Bool("full", out.Full))
	}
}

// Add registers task under key. A key already registered returns false.
func (s *Scheduler) Add(key Key, task Task) bool {
	if task == nil {
		panic("siphon: nil task")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[key]; ok {
		return false
	}
	e := &entry{task: task}
	e.ctx, e.cancel = context.WithCancel(s.baseCtx)
	s.tasks[key] = e
	metrics.SetActiveSiphons(len(s.tasks))
	return true
}

// Cancel removes key and waits for its in-flight cycle. Unknown keys are ignored.
func (s *Scheduler) Cancel(key Key) bool {
	s.mu.Lock()
	e, ok := s.tasks[key]
	if ok {
		delete(s.tasks, key)
		metrics.SetActiveSiphons(len(s.tasks))
	}
	s.mu.Unlock()

	if !ok {
		return false
	}
	e.cancel()
	e.wg.Wait()
	return true
}

// CancelSpawner removes every task of spawner and returns how many were removed.
func (s *Scheduler) CancelSpawner(spawner string) int {
	s.mu.Lock()
	var removed []*entry
	for key, e := range s.tasks {
		if key.Spawner == spawner {
			delete(s.tasks, key)
			removed = append(removed, e)
		}
	}
	metrics.SetActiveSiphons(len(s.tasks))
	s.mu.Unlock()

	for _, e := range removed {
		e.cancel()
		e.wg.Wait()
	}
	return len(removed)
}

// Keys returns the registered keys in order.
func (s *Scheduler) Keys() []Key {
	s.mu.Lock()
	keys := make([]Key, 0, len(s.tasks))
	for k := range s.tasks {
		keys = append(keys, k)
	}
	s.mu.Unlock()

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Spawner != keys[j].Spawner {
			return keys[i].Spawner < keys[j].Spawner
		}
		return keys[i].Siphon < keys[j].Siphon
	})
	return keys
}

// Stop halts the ticker, cancels every task and waits for in-flight cycles.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	stop, done := s.stop, s.done
	tasks := s.tasks
	s.tasks = make(map[Key]*entry)
	metrics.SetActiveSiphons(0)
	s.mu.Unlock()

	if stop != nil {
		stop()
		<-done
	}
	for _, e := range tasks {
		e.cancel()
		e.wg.Wait()
	}
}
