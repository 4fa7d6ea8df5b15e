package session

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts wizard events. A nil *Metrics records nothing.
type Metrics struct {
	Events      *prometheus.CounterVec
	StepReached *prometheus.CounterVec
	Submissions *prometheus.CounterVec
	ActiveStep  prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg when it is
// not nil. Labels are bounded by the event kinds and step ids; ActiveStep is a
// single gauge holding the step of the session that moved last.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Events: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "brandsocial_events_total",
				Help: "Wizard events processed by kind and result",
			},
			[]string{"event", "result"},
		),
		StepReached: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "brandsocial_step_reached_total",
				Help: "Times each step became the current step",
			},
			[]string{"step"},
		),
		Submissions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "brandsocial_submissions_total",
				Help: "Completed brand profiles handed to the sink by result",
			},
			[]string{"result"},
		),
		ActiveStep: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "brandsocial_active_step",
				Help: "Zero-based index of the step most recently reached",
			},
		),
	}

	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.Events, m.StepReached, m.Submissions, m.ActiveStep} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) event(kind string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.Events.WithLabelValues(kind, result).Inc()
}

func (m *Metrics) step(stepID string, index int) {
	if m == nil {
		return
	}
	m.StepReached.WithLabelValues(stepID).Inc()
	m.ActiveStep.Set(float64(index))
}

func (m *Metrics) submission(err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.Submissions.WithLabelValues(result).Inc()
}

func eventName(ev Event) string {
	switch ev.(type) {
	case FieldChanged:
		return "field_changed"
	case Advance:
		return "advance"
	case Retreat:
		return "retreat"
	case Complete:
		return "complete"
	default:
		return "unknown"
	}
}
