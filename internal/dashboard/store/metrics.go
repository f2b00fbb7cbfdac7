package store

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Refresh outcomes
const (
	outcomeApplied   = "applied"
	outcomeDiscarded = "discarded"
	outcomeFailed    = "failed"
)

var (
	refreshTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_store_refresh_total",
			Help: "Backend fetches issued by the entity store, by outcome",
		},
		[]string{"kind", "outcome"},
	)

	refreshShared = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_store_refresh_shared_total",
			Help: "Refresh calls that shared an in-flight fetch",
		},
		[]string{"kind"},
	)
)
