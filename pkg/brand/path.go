package brand

import (
	"fmt"
	"strconv"
	"strings"
)

var knownFields = map[Field]struct{}{
	FieldName:                   {},
	FieldIndustry:               {},
	FieldMission:                {},
	FieldVision:                 {},
	FieldLongTermVision:         {},
	FieldUniqueValueProposition: {},
	FieldValues:                 {},
	FieldDemographics:           {},
	FieldInterests:              {},
	FieldPainPoints:             {},
}

// ParseField validates a dotted field name such as "targetAudience.demographics".
func ParseField(raw string) (Field, error) {
	field := Field(strings.TrimSpace(raw))
	if _, ok := knownFields[field]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, raw)
	}
	return field, nil
}

// ParsePath converts a dotted path into a typed update. List elements carry a
// trailing numeric segment ("values.2"); a list field without an index is
// rejected.
func ParsePath(path, value string) (Update, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	name := trimmed
	index, indexed := 0, false
	if dot := strings.LastIndex(trimmed, "."); dot > 0 {
		if idx, err := strconv.Atoi(trimmed[dot+1:]); err == nil {
			name, index, indexed = trimmed[:dot], idx, true
		}
	}

	field, err := ParseField(name)
	if err != nil {
		return nil, err
	}

	switch {
	case field.IsList():
		if !indexed {
			return nil, fmt.Errorf("%w: %q needs an element index", ErrInvalidPath, path)
		}
		if index < 0 {
			return nil, fmt.Errorf("%w: %q has a negative element index", ErrIndexOutOfRange, path)
		}
		return UpdateListElement{Field: field, Index: index, Value: value}, nil
	case indexed:
		return nil, fmt.Errorf("%w: %q is not a list", ErrInvalidPath, path)
	case field.IsNested():
		return UpdateNestedScalar{Field: field, Value: value}, nil
	default:
		return UpdateScalar{Field: field, Value: value}, nil
	}
}

// ElementPath formats the dotted path of a list element.
func ElementPath(field Field, index int) string {
	return string(field) + "." + strconv.Itoa(index)
}
