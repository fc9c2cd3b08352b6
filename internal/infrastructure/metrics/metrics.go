package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service's Prometheus collectors. A nil *Metrics is valid
// and turns every recording call into a no-op.
type Metrics struct {
	registry *prometheus.Registry

	recommendationRequests prometheus.Counter
	balanceRequests        prometheus.Counter
	forecastRequests       prometheus.Counter
	scoredCandidates       prometheus.Counter
	excludedCandidates     prometheus.Counter
	cacheHits              prometheus.Counter
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	m := &Metrics{
		registry: reg,
		recommendationRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "teamalign_recommendation_requests_total",
			Help: "Assignee recommendation requests served.",
		}),
		balanceRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "teamalign_balance_requests_total",
			Help: "Workload balance requests served.",
		}),
		forecastRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "teamalign_forecast_requests_total",
			Help: "Capacity forecast requests served.",
		}),
		scoredCandidates: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "teamalign_scored_candidates_total",
			Help: "Candidates scored by the recommendation ranker.",
		}),
		excludedCandidates: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "teamalign_excluded_candidates_total",
			Help: "Candidates excluded as unscoreable.",
		}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "teamalign_cache_hits_total",
			Help: "Results served from the Redis cache.",
		}),
	}

	reg.MustRegister(
		m.recommendationRequests,
		m.balanceRequests,
		m.forecastRequests,
		m.scoredCandidates,
		m.excludedCandidates,
		m.cacheHits,
	)

	return m
}

func (m *Metrics) Handler() http.Handler {
	if m == nil || m.registry == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) IncRecommendationRequests() {
	if m != nil {
		m.recommendationRequests.Inc()
	}
}

func (m *Metrics) IncBalanceRequests() {
	if m != nil {
		m.balanceRequests.Inc()
	}
}

func (m *Metrics) IncForecastRequests() {
	if m != nil {
		m.forecastRequests.Inc()
	}
}

func (m *Metrics) AddScoredCandidates(n int) {
	if m != nil && n > 0 {
		m.scoredCandidates.Add(float64(n))
	}
}

func (m *Metrics) AddExcludedCandidates(n int) {
	if m != nil && n > 0 {
		m.excludedCandidates.Add(float64(n))
	}
}

func (m *Metrics) IncCacheHits() {
	if m != nil {
		m.cacheHits.Inc()
	}
}
