package arena

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	attacksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "parley",
			Subsystem: "arena",
			Name:      "attacks_total",
			Help:      "Total attacks, labeled by outcome",
		},
		[]string{"outcome"},
	)

	damagePerHit = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "parley",
			Subsystem: "arena",
			Name:      "damage_per_hit",
			Help:      "Damage dealt per landed attack",
			Buckets:   prometheus.LinearBuckets(1, 2, 10),
		},
	)

	fightsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "parley",
			Subsystem: "arena",
			Name:      "fights_total",
			Help:      "Completed fights, labeled by winner",
		},
		[]string{"winner"},
	)

	roundsPerFight = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "parley",
			Subsystem: "arena",
			Name:      "rounds_per_fight",
			Help:      "Rounds needed to finish a fight",
			Buckets:   prometheus.LinearBuckets(1, 5, 10),
		},
	)
)

func init() {
	prometheus.MustRegister(attacksTotal, damagePerHit, fightsTotal, roundsPerFight)
}

// MetricsObserver exports fight activity as Prometheus metrics. Subscribe
// one to the engine's manager and scrape /metrics.
type MetricsObserver struct{}

// HandleAttackLanded counts the hit and observes its damage
func (MetricsObserver) HandleAttackLanded(e AttackLanded) {
	attacksTotal.WithLabelValues("landed").Inc()
	damagePerHit.Observe(float64(e.Damage))
}

// HandleAttackMissed counts the miss
func (MetricsObserver) HandleAttackMissed(e AttackMissed) {
	attacksTotal.WithLabelValues("missed").Inc()
}

// HandleFightEnded counts the fight under its winner
func (MetricsObserver) HandleFightEnded(e FightEnded) {
	fightsTotal.WithLabelValues(e.Winner).Inc()
	roundsPerFight.Observe(float64(e.Rounds))
}
