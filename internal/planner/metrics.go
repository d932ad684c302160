package planner

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	opsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dayplan_store_operations_total",
			Help: "Total number of planner store mutations",
		},
		[]string{"entity", "op", "status"},
	)

	saveTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dayplan_slot_writes_total",
			Help: "Total number of slot writes",
		},
		[]string{"slot", "status"},
	)
)

func observe(entity, op string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	opsTotal.WithLabelValues(entity, op, status).Inc()
}
