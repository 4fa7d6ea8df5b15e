package session

import (
	"github.com/goliatone/go-brandsocial/pkg/brand"
	"github.com/goliatone/go-brandsocial/pkg/wizard"
)

// StepView is everything a renderer needs to draw the current step.
type StepView struct {
	SessionID     string          `json:"sessionId"`
	Step          wizard.Step     `json:"step"`
	Index         int             `json:"index"`
	Total         int             `json:"total"`
	Fields        []FieldView     `json:"fields"`
	Indicator     []IndicatorItem `json:"indicator"`
	CanRetreat    bool            `json:"canRetreat"`
	PrimaryAction Action          `json:"primaryAction"`
}

// FieldView is one rendered control. List fields expand into one FieldView
// per element, each with its own element Path.
type FieldView struct {
	Field   brand.Field    `json:"field"`
	Path    string         `json:"path"`
	Label   string         `json:"label"`
	Control wizard.Control `json:"control"`
	Value   string         `json:"value"`
	Index   int            `json:"index"`
}

// Update builds the typed update this control emits for a new value.
func (f FieldView) Update(value string) brand.Update {
	switch {
	case f.Field.IsList():
		return brand.UpdateListElement{Field: f.Field, Index: f.Index, Value: value}
	case f.Field.IsNested():
		return brand.UpdateNestedScalar{Field: f.Field, Value: value}
	default:
		return brand.UpdateScalar{Field: f.Field, Value: value}
	}
}

// IndicatorItem is one bubble of the step indicator.
type IndicatorItem struct {
	ID     string        `json:"id"`
	Number int           `json:"number"`
	Title  string        `json:"title"`
	Status wizard.Status `json:"status"`
	// Connector is false for the last bubble.
	Connector bool `json:"connector"`
}

func buildFields(step wizard.Step, record brand.Brand) []FieldView {
	var out []FieldView
	for _, spec := range step.Fields {
		if spec.Control == wizard.ControlList {
			values, _ := record.List(spec.Path)
			for i, value := range values {
				out = append(out, FieldView{
					Field:   spec.Path,
					Path:    brand.ElementPath(spec.Path, i),
					Label:   spec.Label,
					Control: spec.Control,
					Value:   value,
					Index:   i,
				})
			}
			continue
		}
		value, _ := record.Scalar(spec.Path)
		out = append(out, FieldView{
			Field:   spec.Path,
			Path:    string(spec.Path),
			Label:   spec.Label,
			Control: spec.Control,
			Value:   value,
			Index:   -1,
		})
	}
	return out
}
