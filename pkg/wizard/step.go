package wizard

import "github.com/goliatone/go-brandsocial/pkg/brand"

// Control selects how a field is presented.
type Control string

const (
	// ControlInput is a single-line text input.
	ControlInput Control = "input"
	// ControlTextArea is a multi-line text input.
	ControlTextArea Control = "textarea"
	// ControlList renders one single-line input per existing list element.
	ControlList Control = "list"
)

// Step is the static descriptor of one wizard page.
type Step struct {
	ID          string      `json:"id" yaml:"id"`
	Title       string      `json:"title" yaml:"title"`
	Description string      `json:"description" yaml:"description"`
	Fields      []FieldSpec `json:"fields,omitempty" yaml:"fields"`
}

// FieldSpec binds a brand field to a label and a control on a step.
type FieldSpec struct {
	Path    brand.Field `json:"path" yaml:"path"`
	Label   string      `json:"label" yaml:"label"`
	Control Control     `json:"control" yaml:"control"`
}

// Status describes a step relative to the cursor.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusCurrent   Status = "current"
	StatusUpcoming  Status = "upcoming"
)
