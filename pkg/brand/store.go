package brand

import (
	"context"
	"errors"
	"fmt"
)

// Sink receives the completed record. Implementations live in pkg/submit.
type Sink interface {
	Submit(ctx context.Context, record Brand) error
}

// Option configures a Store.
type Option func(*Store)

// WithSink overrides where Submit delivers the record.
func WithSink(sink Sink) Option {
	return func(s *Store) {
		if sink != nil {
			s.sink = sink
		}
	}
}

// WithInitial seeds the store with a prefilled record. Missing lists are
// replaced with their defaults.
func WithInitial(record Brand) Option {
	return func(s *Store) {
		s.record = record.Normalize()
	}
}

// Store owns the single brand record of a wizard session.
type Store struct {
	record Brand
	sink   Sink
}

// NewStore constructs a store holding the default record.
func NewStore(options ...Option) *Store {
	s := &Store{record: New()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// Record returns a copy of the current record.
func (s *Store) Record() Brand {
	return s.record.Clone()
}

// Update replaces the addressed field. On error the record is unchanged.
func (s *Store) Update(u Update) error {
	next, err := Apply(s.record, u)
	if err != nil {
		return err
	}
	s.record = next
	return nil
}

// Set is a convenience wrapper around ParsePath and Update.
func (s *Store) Set(path, value string) error {
	u, err := ParsePath(path, value)
	if err != nil {
		return err
	}
	return s.Update(u)
}

// Submit hands the current record to the sink without validating or
// transforming it.
func (s *Store) Submit(ctx context.Context) error {
	if s.sink == nil {
		return errors.New("brand: no sink configured")
	}
	if err := s.sink.Submit(ctx, s.Record()); err != nil {
		return fmt.Errorf("brand: submit: %w", err)
	}
	return nil
}
