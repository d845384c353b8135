package search

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// searchesTotal counts finished or rejected searches by outcome.
	searchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wavepath_searches_total",
		Help: "Total searches by outcome",
	}, []string{"outcome"})

	// activeSearches is 1 while a controller's worker runs.
	activeSearches = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "wavepath_active_searches",
		Help: "Searches currently running",
	})

	searchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "wavepath_search_duration_seconds",
		Help:    "Wall-clock search duration including pacing delays",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 16), // 1ms to ~33s
	})

	searchRounds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "wavepath_search_rounds",
		Help:    "Completed BFS rounds per search",
		Buckets: prometheus.ExponentialBuckets(1, 2, 12),
	})

	pathLength = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "wavepath_path_length",
		Help:    "Hops from start to finish on reached searches",
		Buckets: prometheus.ExponentialBuckets(1, 2, 12),
	})

	// rejectedEdits counts edits refused because a search owned the grid.
	rejectedEdits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wavepath_rejected_edits_total",
		Help: "Grid edits rejected while a search was running",
	}, []string{"op"})
)
