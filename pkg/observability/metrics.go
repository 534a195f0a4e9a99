package observability

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/plangen/pkg/encoding"
)

// Outcome labels.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// LabelUnknown replaces label values that did not resolve to a registered
// domain or a known mode, so request input cannot mint new series.
const LabelUnknown = "unknown"

// Metrics groups the collectors updated on every generation.
type Metrics struct {
	generations  *prometheus.CounterVec
	formulaBytes *prometheus.HistogramVec
	propositions *prometheus.GaugeVec
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg leaves them unregistered, which is convenient in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		generations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "plangen_generations_total",
				Help: "Total number of encodings generated",
			},
			[]string{"domain", "mode", "outcome"},
		),
		formulaBytes: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "plangen_formula_bytes",
				Help:    "Length of generated formulas in bytes",
				Buckets: prometheus.ExponentialBuckets(256, 4, 10),
			},
			[]string{"domain", "mode"},
		),
		propositions: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "plangen_last_propositions",
				Help: "Number of propositions in the last generated partition",
			},
			[]string{"domain", "class"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.generations, m.formulaBytes, m.propositions)
	}
	return m
}

// Observe records a successful generation.
func (m *Metrics) Observe(enc *encoding.Encoding) {
	if m == nil {
		return
	}
	m.generations.WithLabelValues(enc.Domain, string(enc.Mode), OutcomeOK).Inc()
	m.formulaBytes.WithLabelValues(enc.Domain, string(enc.Mode)).Observe(float64(len(enc.Formula)))
	m.propositions.WithLabelValues(enc.Domain, "environment").Set(float64(len(enc.Partition.Inputs)))
	m.propositions.WithLabelValues(enc.Domain, "agent").Set(float64(len(enc.Partition.Outputs)))
}

// Failed records a generation that returned an error. Callers pass
// LabelUnknown for names that were never resolved.
func (m *Metrics) Failed(domainName string, mode encoding.Mode) {
	if m == nil {
		return
	}
	m.generations.WithLabelValues(domainName, string(mode), OutcomeError).Inc()
}
