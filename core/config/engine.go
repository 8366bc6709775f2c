package config

import (
	"time"

	"spawner-loot/core/loot"
)

// Engine holds the tuning of the loot engine.
type Engine struct {
	// PageSize is fixed; it is exposed for clients only.
	PageSize int `mapstructure:"page_size" default:"45"`
	// CooldownMs is the per-actor interaction interval.
	CooldownMs int `mapstructure:"cooldown_ms" default:"250"`
	// CooldownSweepMs is how often expired cooldown entries are swept.
	CooldownSweepMs int `mapstructure:"cooldown_sweep_ms" default:"5000"`
	// SiphonIntervalMs is the period of siphon cycles.
	SiphonIntervalMs int `mapstructure:"siphon_interval_ms" default:"400"`
	// SiphonBatch is the number of units one siphon moves per cycle.
	SiphonBatch int `mapstructure:"siphon_batch" default:"64"`
	// SiphonWorkers bounds concurrently running siphon cycles.
	SiphonWorkers int `mapstructure:"siphon_workers" default:"4"`
	// SaveIntervalSeconds is the period of the background persist; 0 disables it.
	SaveIntervalSeconds int `mapstructure:"save_interval_seconds" default:"60"`
}

// Cooldown returns the cooldown interval.
func (e Engine) Cooldown() time.Duration {
	return time.Duration(e.CooldownMs) * time.Millisecond
}

// CooldownSweep returns the sweep period, at least one second.
func (e Engine) CooldownSweep() time.Duration {
	if e.CooldownSweepMs <= 0 {
		return time.Second
	}
	return time.Duration(e.CooldownSweepMs) * time.Millisecond
}

// SiphonInterval returns the siphon period.
func (e Engine) SiphonInterval() time.Duration {
	return time.Duration(e.SiphonIntervalMs) * time.Millisecond
}

// SaveInterval returns the persist period, zero when disabled.
func (e Engine) SaveInterval() time.Duration {
	if e.SaveIntervalSeconds <= 0 {
		return 0
	}
	return time.Duration(e.SaveIntervalSeconds) * time.Second
}

// Batch returns the per-cycle siphon amount, at least one.
func (e Engine) Batch() uint64 {
	if e.SiphonBatch <= 0 {
		return 1
	}
	return uint64(e.SiphonBatch)
}

// PageSizeValid reports whether the configured page size matches the engine.
func (e Engine) PageSizeValid() bool {
	return e.PageSize == 0 || e.PageSize == loot.PageSize
}
