package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-brandsocial/pkg/brand"
)

// ErrInvalidRecord wraps schema violations found in a brand payload.
var ErrInvalidRecord = errors.New("schema: invalid brand record")

var (
	brandSchemaOnce sync.Once
	brandSchema     *openapi3.Schema
)

func cachedBrandSchema() *openapi3.Schema {
	brandSchemaOnce.Do(func() {
		brandSchema = BrandSchema()
	})
	return brandSchema
}

// ValidateValue checks a decoded JSON value (maps, slices, strings) against
// the brand schema.
func ValidateValue(value any) error {
	if err := cachedBrandSchema().VisitJSON(value); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	return nil
}

// DecodeRecord parses a JSON or YAML brand payload, rejects anything the
// schema does not describe, and returns the normalized record. Missing
// fields keep their defaults.
func DecodeRecord(data []byte) (brand.Brand, error) {
	if len(data) == 0 {
		return brand.Brand{}, errors.New("schema: brand payload is empty")
	}

	var generic any
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return brand.Brand{}, fmt.Errorf("schema: parse brand payload: %w", err)
	}
	// Round-trip through JSON so YAML scalars take the shapes the validator
	// expects.
	canonical, err := json.Marshal(generic)
	if err != nil {
		return brand.Brand{}, fmt.Errorf("schema: normalise brand payload: %w", err)
	}
	var value any
	if err := json.Unmarshal(canonical, &value); err != nil {
		return brand.Brand{}, fmt.Errorf("schema: normalise brand payload: %w", err)
	}
	if err := ValidateValue(value); err != nil {
		return brand.Brand{}, err
	}

	record := brand.New()
	if err := json.Unmarshal(canonical, &record); err != nil {
		return brand.Brand{}, fmt.Errorf("schema: decode brand payload: %w", err)
	}
	return record.Normalize(), nil
}
