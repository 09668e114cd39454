package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "yumzy_http_requests_total",
			Help: "Total HTTP requests by method, path and status.",
		},
		[]string{"method", "path", "status"},
	)

	SearchesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "yumzy_recipe_searches_total",
			Help: "Total recipe catalog searches.",
		},
	)

	RatingsSubmittedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "yumzy_ratings_submitted_total",
			Help: "Total rating submissions (inserts and updates).",
		},
	)

	FavoritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "yumzy_favorites_total",
			Help: "Total favorite mutations by action.",
		},
		[]string{"action"},
	)

	RecipeViewsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "yumzy_recipe_views_total",
			Help: "Total recipe view increments recorded.",
		},
	)

	RecipeSharesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "yumzy_recipe_shares_total",
			Help: "Total recipe shares recorded by platform.",
		},
		[]string{"platform"},
	)
)

// Serve exposes /metrics on its own listener so scrapes never compete with
// API traffic. Blocks; run in a goroutine.
func Serve(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	if err := http.ListenAndServe(addr, mux); err != nil {
		logrus.WithError(err).Error("metrics server stopped")
	}
}
