package report

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts report lifecycle events. A nil *Metrics is a no-op so unit
// tests can construct the service without touching the default registry.
type Metrics struct {
	reportsCreated       *prometheus.CounterVec
	duplicatesReconciled prometheus.Counter
	reportsProcessed     *prometheus.CounterVec
	rowsUpserted         *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		reportsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Subsystem: "report",
			Name:      "created_total",
			Help:      "Reports accepted by the Amazon reporting API.",
		}, []string{"ad_product"}),
		duplicatesReconciled: prometheus.NewCounter(prometheus.CounterOpts{
			Subsystem: "report",
			Name:      "duplicates_reconciled_total",
			Help:      "Duplicate submissions reconciled against existing reports.",
		}),
		reportsProcessed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Subsystem: "report",
			Name:      "processed_total",
			Help:      "Report processing attempts by outcome.",
		}, []string{"outcome"}),
		rowsUpserted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Subsystem: "report",
			Name:      "rows_upserted_total",
			Help:      "Campaign fact rows upserted per ad product.",
		}, []string{"ad_product"}),
	}
	prometheus.MustRegister(m.reportsCreated, m.duplicatesReconciled, m.reportsProcessed, m.rowsUpserted)
	return m
}

func (m *Metrics) IncCreated(adProduct string) {
	if m == nil {
		return
	}
	m.reportsCreated.WithLabelValues(adProduct).Inc()
}

func (m *Metrics) IncDuplicateReconciled() {
	if m == nil {
		return
	}
	m.duplicatesReconciled.Inc()
}

func (m *Metrics) IncProcessed(outcome string) {
	if m == nil {
		return
	}
	m.reportsProcessed.WithLabelValues(outcome).Inc()
}

func (m *Metrics) AddRowsUpserted(adProduct string, n int) {
	if m == nil {
		return
	}
	m.rowsUpserted.WithLabelValues(adProduct).Add(float64(n))
}
