package session

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/goliatone/go-brandsocial/pkg/brand"
)

func TestMetrics_CountsEventsAndSteps(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics, err := NewMetrics(reg)
	if err != nil {
		t.Fatalf("new metrics: %v", err)
	}

	s := mustSession(t, WithID("m-1"), WithMetrics(metrics), WithSink(&recordingSink{}))
	dispatchAll(t, s,
		FieldChanged{Update: brand.UpdateScalar{Field: brand.FieldName, Value: "Acme"}},
		Advance{}, Advance{}, Retreat{},
		Retreat{}, Retreat{},
		Complete{},
	)

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"field_changed", testutil.ToFloat64(metrics.Events.WithLabelValues("field_changed", "ok")), 1},
		{"advance", testutil.ToFloat64(metrics.Events.WithLabelValues("advance", "ok")), 2},
		{"retreat", testutil.ToFloat64(metrics.Events.WithLabelValues("retreat", "ok")), 3},
		{"complete", testutil.ToFloat64(metrics.Events.WithLabelValues("complete", "ok")), 1},
		{"basics reached", testutil.ToFloat64(metrics.StepReached.WithLabelValues("basics")), 2},
		{"mission reached", testutil.ToFloat64(metrics.StepReached.WithLabelValues("mission")), 2},
		{"audience reached", testutil.ToFloat64(metrics.StepReached.WithLabelValues("audience")), 1},
		{"submissions", testutil.ToFloat64(metrics.Submissions.WithLabelValues("ok")), 1},
		{"active step", testutil.ToFloat64(metrics.ActiveStep), 0},
	}
	for _, check := range checks {
		if check.got != check.want {
			t.Errorf("%s: want %v, got %v", check.name, check.want, check.got)
		}
	}
}

func TestMetrics_RecordsFailures(t *testing.T) {
	metrics, err := NewMetrics(nil)
	if err != nil {
		t.Fatalf("new metrics: %v", err)
	}

	s := mustSession(t, WithMetrics(metrics), WithSink(&recordingSink{err: errors.New("disk full")}))
	if err := s.Dispatch(context.Background(), Complete{}); err == nil {
		t.Fatalf("expected sink failure")
	}
	if err := s.Dispatch(context.Background(), FieldChanged{
		Update: brand.UpdateListElement{Field: brand.FieldValues, Index: 9, Value: "x"},
	}); err == nil {
		t.Fatalf("expected out of range update to fail")
	}

	if got := testutil.ToFloat64(metrics.Submissions.WithLabelValues("error")); got != 1 {
		t.Fatalf("expected one failed submission, got %v", got)
	}
	if got := testutil.ToFloat64(metrics.Events.WithLabelValues("complete", "error")); got != 1 {
		t.Fatalf("expected one failed complete event, got %v", got)
	}
	if got := testutil.ToFloat64(metrics.Events.WithLabelValues("field_changed", "error")); got != 1 {
		t.Fatalf("expected one failed field event, got %v", got)
	}
}

func TestNewMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := NewMetrics(reg); err != nil {
		t.Fatalf("first registration: %v", err)
	}
	if _, err := NewMetrics(reg); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
}

func TestMetrics_NilIsNoop(t *testing.T) {
	s := mustSession(t)
	dispatchAll(t, s, Advance{}, Retreat{})
}

func TestMetrics_ActiveStepIsOneSeries(t *testing.T) {
	metrics, err := NewMetrics(nil)
	if err != nil {
		t.Fatalf("new metrics: %v", err)
	}

	first := mustSession(t, WithMetrics(metrics))
	second := mustSession(t, WithMetrics(metrics))
	dispatchAll(t, first, Advance{}, Advance{})
	dispatchAll(t, second, Advance{})

	if got := testutil.CollectAndCount(metrics.ActiveStep); got != 1 {
		t.Fatalf("expected a single active step series, got %d", got)
	}
	if got := testutil.ToFloat64(metrics.ActiveStep); got != 1 {
		t.Fatalf("expected the last reached step, got %v", got)
	}
}
