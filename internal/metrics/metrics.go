package metrics

import (
	"encoding/json"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service counters on a private registry. A nil *Metrics
// is valid and records nothing.
type Metrics struct {
	registry     *prometheus.Registry
	calculations *prometheus.CounterVec
	calcErrors   *prometheus.CounterVec
	reports      *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lca_calculations_total",
			Help: "Successful impact calculations by material and energy source.",
		}, []string{"material", "energy_source"}),
		calcErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lca_calculation_errors_total",
			Help: "Rejected calculation requests by error kind.",
		}, []string{"kind"}),
		reports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lca_reports_total",
			Help: "PDF report renders by outcome.",
		}, []string{"outcome"}),
	}
	m.registry.MustRegister(m.calculations, m.calcErrors, m.reports)
	return m
}

func (m *Metrics) Calculation(material, energySource string) {
	if m == nil {
		return
	}
	m.calculations.WithLabelValues(material, energySource).Inc()
}

func (m *Metrics) CalculationError(kind string) {
	if m == nil {
		return
	}
	m.calcErrors.WithLabelValues(kind).Inc()
}

func (m *Metrics) Report(ok bool) {
	if m == nil {
		return
	}
	outcome := "ok"
	if !ok {
		outcome = "error"
	}
	m.reports.WithLabelValues(outcome).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
