package campaign

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts campaign sync events. A nil *Metrics is a no-op so unit
// tests can construct the service without touching the default registry.
type Metrics struct {
	campaignsSynced *prometheus.CounterVec
	profilesFailed  prometheus.Counter
}

func NewMetrics() *Metrics {
	m := &Metrics{
		campaignsSynced: prometheus.NewCounterVec(prometheus.CounterOpts{
			Subsystem: "campaign",
			Name:      "synced_total",
			Help:      "Campaign metadata rows upserted per ad product.",
		}, []string{"ad_product"}),
		profilesFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Subsystem: "campaign",
			Name:      "sync_profile_failures_total",
			Help:      "Profiles whose campaign sync failed outright.",
		}),
	}
	prometheus.MustRegister(m.campaignsSynced, m.profilesFailed)
	return m
}

func (m *Metrics) AddSynced(adProduct string, n int) {
	if m == nil {
		return
	}
	m.campaignsSynced.WithLabelValues(adProduct).Add(float64(n))
}

func (m *Metrics) IncProfileFailed() {
	if m == nil {
		return
	}
	m.profilesFailed.Inc()
}
