package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the service collectors. A nil *Metrics is valid and records
// nothing, which keeps tests free of registry setup.
type Metrics struct {
	httpRequests   *prometheus.CounterVec
	httpLatency    *prometheus.HistogramVec
	httpInflight   prometheus.Gauge
	trackedEvents  *prometheus.CounterVec
	contracts      *prometheus.CounterVec
	lineLinks      *prometheus.CounterVec
	galleryUploads *prometheus.CounterVec
	cacheLookups   *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		httpInflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "http_requests_inflight",
			Help: "HTTP requests currently being served",
		}),
		trackedEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "estimate_events_tracked_total",
			Help: "Engagement events recorded by type and outcome",
		}, []string{"event_type", "status"}),
		contracts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "estimate_contract_submissions_total",
			Help: "Contract submissions by outcome",
		}, []string{"status"}),
		lineLinks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "estimate_line_links_total",
			Help: "LINE identity link attempts by outcome",
		}, []string{"status"}),
		galleryUploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "estimate_gallery_uploads_total",
			Help: "Gallery image uploads by outcome",
		}, []string{"status"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "estimate_cache_lookups_total",
			Help: "Token cache lookups by result",
		}, []string{"result"}),
	}

	for _, c := range []prometheus.Collector{
		m.httpRequests, m.httpLatency, m.httpInflight, m.trackedEvents,
		m.contracts, m.lineLinks, m.galleryUploads, m.cacheLookups,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) InflightInc() {
	if m != nil {
		m.httpInflight.Inc()
	}
}

func (m *Metrics) InflightDec() {
	if m != nil {
		m.httpInflight.Dec()
	}
}

func (m *Metrics) ObserveHTTP(method, route, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, status).Inc()
	m.httpLatency.WithLabelValues(method, route).Observe(d.Seconds())
}

// EventTracked expects an already bounded event label.
func (m *Metrics) EventTracked(eventLabel, status string) {
	if m != nil {
		m.trackedEvents.WithLabelValues(eventLabel, status).Inc()
	}
}

func (m *Metrics) ContractSubmitted(status string) {
	if m != nil {
		m.contracts.WithLabelValues(status).Inc()
	}
}

func (m *Metrics) LineLinked(status string) {
	if m != nil {
		m.lineLinks.WithLabelValues(status).Inc()
	}
}

func (m *Metrics) GalleryUploaded(status string) {
	if m != nil {
		m.galleryUploads.WithLabelValues(status).Inc()
	}
}

func (m *Metrics) CacheLookup(result string) {
	if m != nil {
		m.cacheLookups.WithLabelValues(result).Inc()
	}
}
