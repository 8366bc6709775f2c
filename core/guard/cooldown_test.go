package guard_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"spawner-loot/core/guard"

	"github.com/stretchr/testify/assert"
)

func TestCooldown(t *testing.T) {
	t.Run("RejectsWithinInterval", func(t *testing.T) {
		c := guard.NewCooldown(time.Hour)
		assert.True(t, c.Allow("alice"))
		assert.False(t, c.Allow("alice"))
		assert.True(t, c.Allow("bob"), "actors are independent")
	})

	t.Run("AllowsAfterInterval", func(t *testing.T) {
		c := guard.NewCooldown(20 * time.Millisecond)
		assert.True(t, c.Allow("alice"))
		assert.Eventually(t, func() bool { return c.Allow("alice") }, time.Second, 5*time.Millisecond)
	})

	t.Run("RejectedCallDoesNotExtend", func(t *testing.T) {
		c := guard.NewCooldown(50 * time.Millisecond)
		start := time.Now()
		assert.True(t, c.Allow("alice"))
		for time.Since(start) < 30*time.Millisecond {
			c.Allow("alice")
			time.Sleep(5 * time.Millisecond)
		}
		assert.Eventually(t, func() bool { return c.Allow("alice") }, 200*time.Millisecond, 5*time.Millisecond)
	})

	t.Run("Disabled", func(t *testing.T) {
		c := guard.NewCooldown(0)
		assert.True(t, c.Allow("alice"))
		assert.True(t, c.Allow("alice"))
	})

	t.Run("Reset", func(t *testing.T) {
		c := guard.NewCooldown(time.Hour)
		c.Allow("alice")
		c.Reset("alice")
		assert.True(t, c.Allow("alice"))
	})

	t.Run("SweepBoundsMemory", func(t *testing.T) {
		c := guard.NewCooldown(10 * time.Millisecond)
		for _, a := range []string{"a", "b", "c"} {
			c.Allow(a)
		}
		assert.Equal(t, 3, c.Len())
		time.Sleep(30 * time.Millisecond)
		c.Sweep()
		assert.Zero(t, c.Len())
	})

	t.Run("ConcurrentSingleAccept", func(t *testing.T) {
		c := guard.NewCooldown(time.Hour)
		var accepted atomic.Int32
		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if c.Allow("alice") {
					accepted.Add(1)
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, int32(1), accepted.Load())
	})

	t.Run("StartStop", func(t *testing.T) {
		c := guard.NewCooldown(guard.DefaultCooldown)
		c.Start()
		c.Start()
		c.Stop()
		c.Stop()
		assert.Equal(t, guard.DefaultCooldown, c.Interval())
	})
}
