// Package siphon schedules the periodic hopper-like transfers out of spawners.
//
// # Scheduling
//
// A Scheduler owns one ticker. On every tick each registered Task gets a
// worker from a fixed-size semaphore pool and runs once. A task still running
// from the previous tick, a full pool, or a task reporting Busy skips the
// cycle; nothing queues up behind a busy spawner.
//
// # Cancellation
//
// Cancel and CancelSpawner remove tasks and wait for their in-flight cycle,
// so after they return no further transfer into the removed siphon happens.
package siphon
