package session

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-brandsocial/pkg/brand"
	"github.com/goliatone/go-brandsocial/pkg/wizard"
)

type recordingSink struct {
	records []brand.Brand
	err     error
}

func (r *recordingSink) Submit(_ context.Context, record brand.Brand) error {
	if r.err != nil {
		return r.err
	}
	r.records = append(r.records, record)
	return nil
}

func mustSession(t *testing.T, options ...Option) *Session {
	t.Helper()
	s, err := New(options...)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return s
}

func dispatchAll(t *testing.T, s *Session, events ...Event) {
	t.Helper()
	for _, ev := range events {
		if err := s.Dispatch(context.Background(), ev); err != nil {
			t.Fatalf("dispatch %T: %v", ev, err)
		}
	}
}

func TestSession_AcmeScenario(t *testing.T) {
	sink := &recordingSink{}
	s := mustSession(t, WithSink(sink))

	dispatchAll(t, s,
		FieldChanged{Update: brand.UpdateScalar{Field: brand.FieldName, Value: "Acme"}},
		Advance{}, Advance{}, Advance{}, Advance{},
		Complete{},
	)

	if got := s.Sequencer().Index(); got != 4 {
		t.Fatalf("expected cursor 4, got %d", got)
	}
	if len(sink.records) != 1 {
		t.Fatalf("expected one submission, got %d", len(sink.records))
	}

	want := brand.New()
	want.Name = "Acme"
	if diff := cmp.Diff(want, sink.records[0]); diff != "" {
		t.Fatalf("submitted record mismatch (-want +got):\n%s", diff)
	}
	if s.Submitted() != 1 {
		t.Fatalf("expected submitted count 1, got %d", s.Submitted())
	}
}

func TestSession_BoundaryNavigation(t *testing.T) {
	s := mustSession(t)
	dispatchAll(t, s, Retreat{})
	if got := s.Sequencer().Index(); got != 0 {
		t.Fatalf("retreat at 0 moved cursor to %d", got)
	}

	dispatchAll(t, s, Advance{}, Advance{}, Advance{}, Advance{}, Advance{})
	if got := s.Sequencer().Index(); got != 4 {
		t.Fatalf("advance past last moved cursor to %d", got)
	}
}

func TestSession_EditableAfterComplete(t *testing.T) {
	sink := &recordingSink{}
	s := mustSession(t, WithSink(sink))
	dispatchAll(t, s,
		Advance{}, Advance{}, Advance{}, Advance{},
		Complete{},
		Retreat{},
		FieldChanged{Update: brand.UpdateListElement{Field: brand.FieldValues, Index: 0, Value: "candour"}},
	)
	if got := s.Sequencer().Index(); got != 3 {
		t.Fatalf("expected cursor 3, got %d", got)
	}
	if got := s.Record().Values; !cmp.Equal(got, []string{"candour"}) {
		t.Fatalf("unexpected values %v", got)
	}
}

func TestSession_OutOfRangeListUpdateRejected(t *testing.T) {
	s := mustSession(t)
	err := s.Dispatch(context.Background(), FieldChanged{
		Update: brand.UpdateListElement{Field: brand.FieldValues, Index: 1, Value: "extra"},
	})
	if !errors.Is(err, brand.ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	if diff := cmp.Diff([]string{""}, s.Record().Values); diff != "" {
		t.Fatalf("values changed (-want +got):\n%s", diff)
	}
}

func TestSession_CompletePropagatesSinkError(t *testing.T) {
	boom := errors.New("boom")
	s := mustSession(t, WithSink(&recordingSink{err: boom}))
	if err := s.Dispatch(context.Background(), Complete{}); !errors.Is(err, boom) {
		t.Fatalf("expected sink error, got %v", err)
	}
	if s.Submitted() != 0 {
		t.Fatalf("failed submission counted")
	}
}

func TestSession_NilEvent(t *testing.T) {
	s := mustSession(t)
	if err := s.Dispatch(context.Background(), nil); err == nil {
		t.Fatalf("expected error for nil event")
	}
}

func TestSession_ViewFirstStep(t *testing.T) {
	s := mustSession(t, WithID("fixed"), WithPrefill(brand.Brand{Name: "Acme"}))
	view := s.View()

	if view.SessionID != "fixed" || view.Index != 0 || view.Total != 5 {
		t.Fatalf("unexpected view header: %+v", view)
	}
	if view.CanRetreat {
		t.Fatalf("first step must not allow retreat")
	}
	if view.PrimaryAction != ActionNext {
		t.Fatalf("expected next action, got %s", view.PrimaryAction)
	}

	want := []FieldView{
		{Field: brand.FieldName, Path: "name", Label: "What is your business or brand name?", Control: wizard.ControlInput, Value: "Acme", Index: -1},
		{Field: brand.FieldIndustry, Path: "industry", Label: "What industry does your brand serve?", Control: wizard.ControlInput, Value: "", Index: -1},
	}
	if diff := cmp.Diff(want, view.Fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}

	if len(view.Indicator) != 5 || view.Indicator[0].Status != wizard.StatusCurrent || view.Indicator[4].Connector {
		t.Fatalf("unexpected indicator: %+v", view.Indicator)
	}
}

func TestSession_ViewListStepExpandsElements(t *testing.T) {
	prefill := brand.New()
	prefill.Values = []string{"honesty", "craft"}
	s := mustSession(t, WithPrefill(prefill))
	dispatchAll(t, s, Advance{}, Advance{}, Advance{})

	view := s.View()
	if view.Step.ID != "values" {
		t.Fatalf("expected values step, got %q", view.Step.ID)
	}
	if len(view.Fields) != 2 {
		t.Fatalf("expected one control per element, got %d", len(view.Fields))
	}
	if view.Fields[1].Path != "values.1" || view.Fields[1].Value != "craft" {
		t.Fatalf("unexpected second element: %+v", view.Fields[1])
	}

	upd := view.Fields[1].Update("care")
	if diff := cmp.Diff(brand.Update(brand.UpdateListElement{Field: brand.FieldValues, Index: 1, Value: "care"}), upd); diff != "" {
		t.Fatalf("update mismatch (-want +got):\n%s", diff)
	}
	if view.Indicator[2].Status != wizard.StatusCompleted {
		t.Fatalf("expected earlier steps completed")
	}
}

func TestSession_ViewLastStepOffersComplete(t *testing.T) {
	s := mustSession(t)
	dispatchAll(t, s, Advance{}, Advance{}, Advance{}, Advance{})
	view := s.View()
	if view.PrimaryAction != ActionComplete || !view.CanRetreat {
		t.Fatalf("unexpected last step actions: %+v", view)
	}
	if view.Fields[0].Field != brand.FieldUniqueValueProposition || view.Fields[0].Control != wizard.ControlTextArea {
		t.Fatalf("unexpected uvp field: %+v", view.Fields[0])
	}
}

func TestSession_GeneratesID(t *testing.T) {
	a := mustSession(t)
	b := mustSession(t)
	if a.ID() == "" || a.ID() == b.ID() {
		t.Fatalf("expected distinct generated ids, got %q and %q", a.ID(), b.ID())
	}
}
