package brand

import "fmt"

// Field addresses one editable location inside a Brand using the same dotted
// names the JSON payload uses.
type Field string

const (
	FieldName                   Field = "name"
	FieldIndustry               Field = "industry"
	FieldMission                Field = "mission"
	FieldVision                 Field = "vision"
	FieldLongTermVision         Field = "longTermVision"
	FieldUniqueValueProposition Field = "uniqueValueProposition"
	FieldValues                 Field = "values"
	FieldDemographics           Field = "targetAudience.demographics"
	FieldInterests              Field = "targetAudience.interests"
	FieldPainPoints             Field = "targetAudience.painPoints"
)

// Update is a single field replacement. The set of implementations is closed.
type Update interface {
	apply(*Brand) error
	// Target reports the field the update writes to.
	Target() Field
}

// UpdateScalar replaces a top-level string field.
type UpdateScalar struct {
	Field Field
	Value string
}

// UpdateNestedScalar replaces a string field inside a nested record.
type UpdateNestedScalar struct {
	Field Field
	Value string
}

// UpdateListElement replaces the element at Index of a list field. The list
// length never changes.
type UpdateListElement struct {
	Field Field
	Index int
	Value string
}

func (u UpdateScalar) Target() Field       { return u.Field }
func (u UpdateNestedScalar) Target() Field { return u.Field }
func (u UpdateListElement) Target() Field  { return u.Field }

func (u UpdateScalar) apply(b *Brand) error {
	switch u.Field {
	case FieldName:
		b.Name = u.Value
	case FieldIndustry:
		b.Industry = u.Value
	case FieldMission:
		b.Mission = u.Value
	case FieldVision:
		b.Vision = u.Value
	case FieldLongTermVision:
		b.LongTermVision = u.Value
	case FieldUniqueValueProposition:
		b.UniqueValueProposition = u.Value
	default:
		return fmt.Errorf("%w: %q is not a scalar field", ErrUnknownField, u.Field)
	}
	return nil
}

func (u UpdateNestedScalar) apply(b *Brand) error {
	switch u.Field {
	case FieldDemographics:
		b.TargetAudience.Demographics = u.Value
	default:
		return fmt.Errorf("%w: %q is not a nested scalar field", ErrUnknownField, u.Field)
	}
	return nil
}

func (u UpdateListElement) apply(b *Brand) error {
	var list *[]string
	switch u.Field {
	case FieldValues:
		list = &b.Values
	case FieldInterests:
		list = &b.TargetAudience.Interests
	case FieldPainPoints:
		list = &b.TargetAudience.PainPoints
	default:
		return fmt.Errorf("%w: %q is not a list field", ErrUnknownField, u.Field)
	}
	if u.Index < 0 || u.Index >= len(*list) {
		return fmt.Errorf("%w: %s[%d] (len %d)", ErrIndexOutOfRange, u.Field, u.Index, len(*list))
	}
	next := cloneStrings(*list)
	next[u.Index] = u.Value
	*list = next
	return nil
}

// Apply returns a copy of b with the update applied. The input value is never
// modified; on error the returned record equals b.
func Apply(b Brand, u Update) (Brand, error) {
	if u == nil {
		return b, fmt.Errorf("%w: nil update", ErrUnknownField)
	}
	next := b
	if err := u.apply(&next); err != nil {
		return b, err
	}
	return next, nil
}

// Scalar reads a string field (top-level or nested).
func (b Brand) Scalar(field Field) (string, bool) {
	switch field {
	case FieldName:
		return b.Name, true
	case FieldIndustry:
		return b.Industry, true
	case FieldMission:
		return b.Mission, true
	case FieldVision:
		return b.Vision, true
	case FieldLongTermVision:
		return b.LongTermVision, true
	case FieldUniqueValueProposition:
		return b.UniqueValueProposition, true
	case FieldDemographics:
		return b.TargetAudience.Demographics, true
	default:
		return "", false
	}
}

// List reads a list field. The returned slice is a copy.
func (b Brand) List(field Field) ([]string, bool) {
	switch field {
	case FieldValues:
		return cloneStrings(b.Values), true
	case FieldInterests:
		return cloneStrings(b.TargetAudience.Interests), true
	case FieldPainPoints:
		return cloneStrings(b.TargetAudience.PainPoints), true
	default:
		return nil, false
	}
}

// IsList reports whether field addresses a list.
func (f Field) IsList() bool {
	switch f {
	case FieldValues, FieldInterests, FieldPainPoints:
		return true
	default:
		return false
	}
}

// IsNested reports whether field lives inside TargetAudience.
func (f Field) IsNested() bool {
	switch f {
	case FieldDemographics, FieldInterests, FieldPainPoints:
		return true
	default:
		return false
	}
}
