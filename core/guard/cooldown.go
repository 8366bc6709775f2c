package guard

import (
	"sync/atomic"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

// DefaultCooldown is the interval between two accepted interactions of one actor.
const DefaultCooldown = 250 * time.Millisecond

// Cooldown rejects interactions of an actor that interacted within the last
// interval. Keys expire with the interval, so memory stays bounded by the
// number of actors active in one interval.
type Cooldown struct {
	interval time.Duration
	cache    *ttlcache.Cache[string, time.Time]
	started  atomic.Bool
	stopped  atomic.Bool
}

// NewCooldown creates a cooldown. An interval <= 0 disables it.
func NewCooldown(interval time.Duration) *Cooldown {
	return &Cooldown{
		interval: interval,
		cache: ttlcache.New[string, time.Time](
			ttlcache.WithTTL[string, time.Time](interval),
			ttlcache.WithDisableTouchOnHit[string, time.Time](),
		),
	}
}

// Allow records an interaction of actor and reports whether it is accepted.
// The check and the record are one atomic step.
func (c *Cooldown) Allow(actor string) bool {
	if c.interval <= 0 {
		return true
	}
	item, found := c.cache.GetOrSet(actor, time.Now())
	if found && item.IsExpired() {
		// not swept yet
		c.cache.Set(actor, time.Now(), ttlcache.DefaultTTL)
		return true
	}
	return !found
}

// Reset forgets actor, e.g. on disconnect.
func (c *Cooldown) Reset(actor string) {
	c.cache.Delete(actor)
}

// Sweep removes expired entries now.
func (c *Cooldown) Sweep() {
	c.cache.DeleteExpired()
}

// Len returns the number of tracked actors, including expired ones not yet swept.
func (c *Cooldown) Len() int {
	return c.cache.Len()
}

// Interval returns the configured interval.
func (c *Cooldown) Interval() time.Duration {
	return c.interval
}

// Start runs the expiry sweeper in the background until Stop.
func (c *Cooldown) Start() {
	if c.started.CompareAndSwap(false, true) {
		go c.cache.Start()
	}
}

// Stop halts the sweeper. It is safe to call multiple times.
func (c *Cooldown) Stop() {
	if c.started.Load() && c.stopped.CompareAndSwap(false, true) {
		c.cache.Stop()
	}
}
