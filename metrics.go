package ingwaz

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeLabel = "outcome"

	outcomeStored  = "stored"
	outcomeDropped = "dropped"
)

var (
	ingwazInsertCountTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ingwaz_insert_count_total",
		Help: "The total number of insertions, by outcome.",
	}, []string{outcomeLabel})

	ingwazQueryCountTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ingwaz_query_count_total",
		Help: "The total number of queries.",
	})

	ingwazResetCountTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ingwaz_reset_count_total",
		Help: "The total number of resets.",
	})
)

func instrumentCountInsert(stored bool) {
	outcome := outcomeStored
	if !stored {
		outcome = outcomeDropped
	}

	ingwazInsertCountTotal.
		With(prometheus.Labels{outcomeLabel: outcome}).
		Inc()
}

func instrumentCountQuery() {
	ingwazQueryCountTotal.Inc()
}

func instrumentCountReset() {
	ingwazResetCountTotal.Inc()
}
