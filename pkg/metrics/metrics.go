package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	DocumentsSaved = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "docstore", Name: "documents_saved_total", Help: "Number of saved documents by path (insert or update)."},
		[]string{"path"},
	)
	DocumentLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "docstore", Name: "document_lookups_total", Help: "Number of lookups by id by result (hit or miss)."},
		[]string{"result"},
	)
	Searches = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "docstore", Name: "document_searches_total", Help: "Number of searches executed."},
	)
	SearchMatches = prometheus.NewHistogram(
		prometheus.HistogramOpts{Namespace: "docstore", Name: "document_search_matches", Help: "Documents matched per search.", Buckets: []float64{0, 1, 5, 10, 50, 100, 500, 1000}},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(DocumentsSaved)
	reg.MustRegister(DocumentLookups)
	reg.MustRegister(Searches)
	reg.MustRegister(SearchMatches)
}
