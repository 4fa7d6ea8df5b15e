package wizard

import "errors"

// Sequencer is a bounded cursor over an ordered step list. Moves past either
// end are silent no-ops.
type Sequencer struct {
	steps  []Step
	cursor int
}

// NewSequencer constructs a sequencer positioned on the first step.
func NewSequencer(steps []Step) (*Sequencer, error) {
	if len(steps) == 0 {
		return nil, errors.New("wizard: at least one step is required")
	}
	return &Sequencer{steps: append([]Step(nil), steps...)}, nil
}

// Advance moves to the next step unless already on the last one.
func (s *Sequencer) Advance() {
	if s.cursor < len(s.steps)-1 {
		s.cursor++
	}
}

// Retreat moves to the previous step unless already on the first one.
func (s *Sequencer) Retreat() {
	if s.cursor > 0 {
		s.cursor--
	}
}

// Current returns the descriptor under the cursor.
func (s *Sequencer) Current() Step {
	return s.steps[s.cursor]
}

// Index reports the cursor position.
func (s *Sequencer) Index() int {
	return s.cursor
}

// Len reports the number of steps.
func (s *Sequencer) Len() int {
	return len(s.steps)
}

func (s *Sequencer) IsFirst() bool {
	return s.cursor == 0
}

func (s *Sequencer) IsLast() bool {
	return s.cursor == len(s.steps)-1
}

// Steps returns a copy of the ordered descriptors.
func (s *Sequencer) Steps() []Step {
	return append([]Step(nil), s.steps...)
}

// Status classifies step i relative to the cursor.
func (s *Sequencer) Status(i int) Status {
	switch {
	case i < s.cursor:
		return StatusCompleted
	case i == s.cursor:
		return StatusCurrent
	default:
		return StatusUpcoming
	}
}
