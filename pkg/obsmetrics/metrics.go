// Package obsmetrics instruments the process manager with Prometheus
// counters, following the pack's promauto.NewCounterVec idiom.
package obsmetrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	nodesVisitedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hibou_nodes_visited_total",
			Help: "Total process-manager nodes visited during a run",
		},
		[]string{"mode"}, // analyze, explore
	)

	nodesFilteredTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hibou_nodes_filtered_total",
			Help: "Total nodes eliminated by a filter, by reason",
		},
		[]string{"reason"}, // max-depth, max-loop-instantiation, max-node-count
	)

	memoizationHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hibou_memoization_hits_total",
			Help: "Total nodes folded in from the memoization cache",
		},
	)

	verdictsReachedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hibou_verdicts_reached_total",
			Help: "Total leaf/proven verdicts reached, by kind",
		},
		[]string{"kind"}, // Cov, GloPref, MultiPref, Slice, Inconc, Out
	)
)

// RecordNodeVisit increments the visited-node counter for mode
// ("analyze" or "explore").
func RecordNodeVisit(mode string) {
	nodesVisitedTotal.WithLabelValues(mode).Inc()
}

// RecordNodeFiltered increments the filtered-node counter for reason.
func RecordNodeFiltered(reason string) {
	nodesFilteredTotal.WithLabelValues(reason).Inc()
}

// RecordMemoizationHit increments the memoization-hit counter.
func RecordMemoizationHit() {
	memoizationHitsTotal.Inc()
}

// RecordVerdict increments the reached-verdict counter for kind.
func RecordVerdict(kind string) {
	verdictsReachedTotal.WithLabelValues(kind).Inc()
}
