// Package metrics holds the Prometheus collectors of the loot engine.
//
// Collectors are registered on the default registry once, by Init. Every
// helper calls Init itself, so packages can record without wiring order.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Consumers of moved units.
const (
	ConsumerPlayer = "player"
	ConsumerSiphon = "siphon"
)

var (
	UnitsAccumulated   prometheus.Counter
	UnitsMoved         *prometheus.CounterVec
	UnitsSold          prometheus.Counter
	SaleValue          prometheus.Counter
	Saturations        prometheus.Counter
	LockContention     *prometheus.CounterVec
	CooldownRejections prometheus.Counter
	SiphonSkipped      *prometheus.CounterVec
	LiveSpawners       prometheus.Gauge
	ActiveSiphons      prometheus.Gauge

	// only init the metrics once
	initOnce sync.Once
)

// Init registers the collectors.
func Init() {
	initOnce.Do(initMetrics)
}

func initMetrics() {
	UnitsAccumulated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spawner_loot_units_accumulated_total",
		Help: "Units added to spawner accumulators",
	})
	UnitsMoved = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spawner_loot_units_moved_total",
		Help: "Units moved out of accumulators into sinks",
	}, []string{"consumer"})
	UnitsSold = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spawner_loot_units_sold_total",
		Help: "Units removed by sell-all and settled",
	})
	SaleValue = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spawner_loot_sale_value_total",
		Help: "Currency deposited for sold units",
	})
	Saturations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spawner_loot_saturations_total",
		Help: "Accumulate calls that hit the counter ceiling",
	})
	LockContention = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spawner_loot_lock_contention_total",
		Help: "Rejected interactions because a lock was held",
	}, []string{"lock"})
	CooldownRejections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spawner_loot_cooldown_rejections_total",
		Help: "Interactions rejected by the per-actor cooldown",
	})
	SiphonSkipped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spawner_loot_siphon_skipped_total",
		Help: "Siphon cycles skipped",
	}, []string{"reason"})
	LiveSpawners = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "spawner_loot_live_spawners",
		Help: "Spawners currently loaded",
	})
	ActiveSiphons = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "spawner_loot_active_siphons",
		Help: "Siphons currently scheduled",
	})
}

// Moved records n units moved by consumer.
func Moved(consumer string, n uint64) {
	Init()
	if n > 0 {
		UnitsMoved.WithLabelValues(consumer).Add(float64(n))
	}
}

// Accumulated records n produced units and whether the counter saturated.
func Accumulated(n uint64, saturated bool) {
	Init()
	UnitsAccumulated.Add(float64(n))
	if saturated {
		Saturations.Inc()
	}
}

// Sold records a settled sale.
func Sold(units uint64, value float64) {
	Init()
	UnitsSold.Add(float64(units))
	SaleValue.Add(value)
}

// Contended records an interaction rejected by lock ("session" or "mutation").
func Contended(lock string) {
	Init()
	LockContention.WithLabelValues(lock).Inc()
}

// CooledDown records a cooldown rejection.
func CooledDown() {
	Init()
	CooldownRejections.Inc()
}

// Skipped records a skipped siphon cycle ("pool" or "busy").
func Skipped(reason string) {
	Init()
	SiphonSkipped.WithLabelValues(reason).Inc()
}

// SetLiveSpawners sets the live spawner gauge.
func SetLiveSpawners(n int) {
	Init()
	LiveSpawners.Set(float64(n))
}

// SetActiveSiphons sets the scheduled siphon gauge.
func SetActiveSiphons(n int) {
	Init()
	ActiveSiphons.Set(float64(n))
}

// Handler serves the default registry.
func Handler() http.Handler {
	Init()
	return promhttp.Handler()
}
