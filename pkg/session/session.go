package session

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-brandsocial/pkg/brand"
	"github.com/goliatone/go-brandsocial/pkg/wizard"
)

// Option configures a Session.
type Option func(*config)

type config struct {
	id      string
	steps   []wizard.Step
	store   []brand.Option
	logger  zerolog.Logger
	metrics *Metrics
}

// WithID pins the session identifier instead of generating one.
func WithID(id string) Option {
	return func(cfg *config) {
		if id != "" {
			cfg.id = id
		}
	}
}

// WithSteps replaces the default step catalogue.
func WithSteps(steps []wizard.Step) Option {
	return func(cfg *config) {
		if len(steps) > 0 {
			cfg.steps = steps
		}
	}
}

// WithSink sets where Complete delivers the record.
func WithSink(sink brand.Sink) Option {
	return func(cfg *config) {
		cfg.store = append(cfg.store, brand.WithSink(sink))
	}
}

// WithPrefill seeds the record.
func WithPrefill(record brand.Brand) Option {
	return func(cfg *config) {
		cfg.store = append(cfg.store, brand.WithInitial(record))
	}
}

// WithLogger attaches a logger for event tracing.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// WithMetrics records events and step transitions on m.
func WithMetrics(m *Metrics) Option {
	return func(cfg *config) {
		cfg.metrics = m
	}
}

// Session owns the two state cells of one wizard run: the step cursor and the
// brand record. Events are processed one at a time; a Session is not safe for
// concurrent use.
type Session struct {
	id        string
	sequencer *wizard.Sequencer
	store     *brand.Store
	logger    zerolog.Logger
	metrics   *Metrics
	submitted int
}

// New constructs a session on the first step with the default record.
func New(options ...Option) (*Session, error) {
	cfg := config{
		logger: zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.id == "" {
		cfg.id = uuid.NewString()
	}
	if len(cfg.steps) == 0 {
		cfg.steps = wizard.DefaultSteps()
	}

	seq, err := wizard.NewSequencer(cfg.steps)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	s := &Session{
		id:        cfg.id,
		sequencer: seq,
		store:     brand.NewStore(cfg.store...),
		logger:    cfg.logger.With().Str("session_id", cfg.id).Logger(),
		metrics:   cfg.metrics,
	}
	s.metrics.step(seq.Current().ID, seq.Index())
	return s, nil
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Sequencer exposes the step cursor.
func (s *Session) Sequencer() *wizard.Sequencer {
	return s.sequencer
}

// Store exposes the record store.
func (s *Session) Store() *brand.Store {
	return s.store
}

// Record returns a copy of the current record.
func (s *Session) Record() brand.Brand {
	return s.store.Record()
}

// Submitted reports how many times Complete delivered the record.
func (s *Session) Submitted() int {
	return s.submitted
}

// Dispatch applies one rendering event. Navigation never fails; field updates
// fail only for malformed updates; Complete fails when the sink does.
func (s *Session) Dispatch(ctx context.Context, ev Event) error {
	before := s.sequencer.Index()
	err := s.dispatch(ctx, ev)
	s.metrics.event(eventName(ev), err)
	if after := s.sequencer.Index(); after != before {
		s.metrics.step(s.sequencer.Current().ID, after)
	}
	return err
}

func (s *Session) dispatch(ctx context.Context, ev Event) error {
	switch e := ev.(type) {
	case FieldChanged:
		if err := s.store.Update(e.Update); err != nil {
			return fmt.Errorf("session: %w", err)
		}
		s.logger.Debug().Str("field", string(e.Update.Target())).Msg("field updated")
	case Advance:
		s.sequencer.Advance()
		s.logger.Debug().Int("step", s.sequencer.Index()).Msg("advanced")
	case Retreat:
		s.sequencer.Retreat()
		s.logger.Debug().Int("step", s.sequencer.Index()).Msg("retreated")
	case Complete:
		if err := ctx.Err(); err != nil {
			return err
		}
		err := s.store.Submit(ctx)
		s.metrics.submission(err)
		if err != nil {
			return fmt.Errorf("session: %w", err)
		}
		s.submitted++
		s.logger.Info().Int("step", s.sequencer.Index()).Msg("brand profile submitted")
	case nil:
		return fmt.Errorf("session: nil event")
	default:
		return fmt.Errorf("session: unsupported event %T", ev)
	}
	return nil
}

// View projects the current step and record for rendering.
func (s *Session) View() StepView {
	seq := s.sequencer
	step := seq.Current()
	steps := seq.Steps()

	indicator := make([]IndicatorItem, 0, len(steps))
	for i, item := range steps {
		indicator = append(indicator, IndicatorItem{
			ID:        item.ID,
			Number:    i + 1,
			Title:     item.Title,
			Status:    seq.Status(i),
			Connector: i < len(steps)-1,
		})
	}

	action := ActionNext
	if seq.IsLast() {
		action = ActionComplete
	}

	return StepView{
		SessionID:     s.id,
		Step:          step,
		Index:         seq.Index(),
		Total:         seq.Len(),
		Fields:        buildFields(step, s.store.Record()),
		Indicator:     indicator,
		CanRetreat:    !seq.IsFirst(),
		PrimaryAction: action,
	}
}
