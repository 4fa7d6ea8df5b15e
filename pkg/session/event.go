package session

import "github.com/goliatone/go-brandsocial/pkg/brand"

// Event is an input from the rendering layer. The set is closed.
type Event interface {
	event()
}

// FieldChanged carries a new value for one field.
type FieldChanged struct {
	Update brand.Update
}

// Advance is the "Next" button.
type Advance struct{}

// Retreat is the "Previous" button.
type Retreat struct{}

// Complete is the "Complete" button shown on the last step.
type Complete struct{}

func (FieldChanged) event() {}
func (Advance) event()      {}
func (Retreat) event()      {}
func (Complete) event()     {}

// Action names the primary navigation button for a step.
type Action string

const (
	ActionNext     Action = "next"
	ActionComplete Action = "complete"
)
