package orthtree

import (
	"time"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/orthtree/featureflag"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	treeLabel    = "tree"
	resultLabel  = "result"
	errTypeLabel = "error_type"

	resultSuccess = "success"
	resultFailure = "failure"
)

var (
	generationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "orthtree_generations_total",
		Help: "The number of tree generations.",
	}, []string{
		treeLabel,
		resultLabel,
		errTypeLabel,
	})

	nodeCount = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "orthtree_nodes",
		Help: "The number of nodes of the last generated tree.",
	}, []string{treeLabel})

	generatedNodesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "orthtree_generated_nodes_total",
		Help: "The total number of nodes generated.",
	}, []string{treeLabel})

	generationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "orthtree_generation_duration_seconds",
		Help:    "The time taken to generate a tree.",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
	}, []string{
		treeLabel,
		resultLabel,
	})
)

func (t *Tree[T]) instrumentGeneration(nodes int, elapsed time.Duration) {
	t.flags.IfNotSet(featureflag.FlagDisableMetrics, func() {
		generationsTotal.
			With(prometheus.Labels{
				treeLabel:    t.name,
				resultLabel:  resultSuccess,
				errTypeLabel: "",
			}).
			Inc()

		nodeCount.
			With(prometheus.Labels{treeLabel: t.name}).
			Set(float64(nodes))

		generatedNodesTotal.
			With(prometheus.Labels{treeLabel: t.name}).
			Add(float64(nodes))

		generationDuration.
			With(prometheus.Labels{
				treeLabel:   t.name,
				resultLabel: resultSuccess,
			}).
			Observe(elapsed.Seconds())
	})
}

func (t *Tree[T]) instrumentGenerationFailure(err error, elapsed time.Duration) {
	t.flags.IfNotSet(featureflag.FlagDisableMetrics, func() {
		generationsTotal.
			With(prometheus.Labels{
				treeLabel:    t.name,
				resultLabel:  resultFailure,
				errTypeLabel: errors.Type(err),
			}).
			Inc()

		generationDuration.
			With(prometheus.Labels{
				treeLabel:   t.name,
				resultLabel: resultFailure,
			}).
			Observe(elapsed.Seconds())
	})
}
