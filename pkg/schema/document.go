// Package schema describes the brand record as an OpenAPI 3 document and
// checks raw brand payloads against it.
package schema

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"
)

// Document identifiers.
const (
	Version      = "3.0.3"
	BrandRef     = "#/components/schemas/Brand"
	BrandPath    = "/brands"
	SubmitOpID   = "submitBrand"
	unusedSuffix = " Present in the record but not collected by the wizard."
)

// Option tweaks the generated document.
type Option func(*options)

type options struct {
	title      string
	version    string
	serverURLs []string
}

// WithTitle overrides info.title.
func WithTitle(title string) Option {
	return func(o *options) {
		if trimmed := strings.TrimSpace(title); trimmed != "" {
			o.title = trimmed
		}
	}
}

// WithVersion overrides info.version.
func WithVersion(version string) Option {
	return func(o *options) {
		if trimmed := strings.TrimSpace(version); trimmed != "" {
			o.version = trimmed
		}
	}
}

// WithServer adds a server URL.
func WithServer(url string) Option {
	return func(o *options) {
		if trimmed := strings.TrimSpace(url); trimmed != "" {
			o.serverURLs = append(o.serverURLs, trimmed)
		}
	}
}

// BrandSchema returns the schema of a submitted brand record. Unknown
// properties are rejected at every level.
func BrandSchema() *openapi3.Schema {
	stringList := func(description string) *openapi3.Schema {
		return described(openapi3.NewArraySchema().WithItems(openapi3.NewStringSchema()), description)
	}

	audience := openapi3.NewObjectSchema().
		WithProperty("demographics", described(openapi3.NewStringSchema(), "Who the brand serves.")).
		WithProperty("interests", stringList("Audience interests."+unusedSuffix)).
		WithProperty("painPoints", stringList("Audience pain points."+unusedSuffix)).
		WithoutAdditionalProperties()

	pillar := openapi3.NewObjectSchema().
		WithProperty("name", openapi3.NewStringSchema()).
		WithProperty("description", openapi3.NewStringSchema()).
		WithProperty("topics", stringList("Topics covered by the pillar.")).
		WithoutAdditionalProperties()

	brand := openapi3.NewObjectSchema().
		WithProperty("name", described(openapi3.NewStringSchema(), "Business or brand name.")).
		WithProperty("industry", described(openapi3.NewStringSchema(), "Industry the brand serves.")).
		WithProperty("mission", described(openapi3.NewStringSchema(), "Mission statement.")).
		WithProperty("vision", described(openapi3.NewStringSchema(), "Vision for the future.")).
		WithProperty("longTermVision", described(openapi3.NewStringSchema(), "Long-term vision."+unusedSuffix)).
		WithProperty("values", stringList("Core values, one per entry.")).
		WithProperty("targetAudience", described(audience, "Target audience.")).
		WithProperty("uniqueValueProposition", described(openapi3.NewStringSchema(), "What sets the brand apart.")).
		WithProperty("contentPillars", described(openapi3.NewArraySchema().WithItems(pillar), "Content pillars."+unusedSuffix)).
		WithoutAdditionalProperties()
	brand.Title = "Brand"
	return brand
}

func described(s *openapi3.Schema, description string) *openapi3.Schema {
	s.Description = description
	return s
}

// Document builds the OpenAPI document for brand submission.
func Document(opts ...Option) *openapi3.T {
	cfg := options{title: "Brand Social", version: "1.0.0"}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	brandSchema := BrandSchema()
	brandRef := &openapi3.SchemaRef{Ref: BrandRef, Value: brandSchema}

	accepted := openapi3.NewResponse().
		WithDescription("Brand profile accepted.").
		WithJSONSchemaRef(brandRef)

	operation := openapi3.NewOperation()
	operation.OperationID = SubmitOpID
	operation.Summary = "Submit a completed brand profile"
	operation.RequestBody = &openapi3.RequestBodyRef{
		Value: openapi3.NewRequestBody().WithRequired(true).WithJSONSchemaRef(brandRef),
	}
	operation.Responses = openapi3.NewResponses(
		openapi3.WithStatus(201, &openapi3.ResponseRef{Value: accepted}),
	)

	paths := openapi3.NewPaths()
	paths.Set(BrandPath, &openapi3.PathItem{Post: operation})

	doc := &openapi3.T{
		OpenAPI: Version,
		Info: &openapi3.Info{
			Title:   cfg.title,
			Version: cfg.version,
		},
		Paths: paths,
		Components: &openapi3.Components{
			Schemas: openapi3.Schemas{
				"Brand": openapi3.NewSchemaRef("", brandSchema),
			},
		},
	}
	for _, url := range cfg.serverURLs {
		doc.Servers = append(doc.Servers, &openapi3.Server{URL: url})
	}
	return doc
}

// Encode serialises doc as "json" or "yaml".
func Encode(doc *openapi3.T, format string) ([]byte, error) {
	if doc == nil {
		return nil, errors.New("schema: document is nil")
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("schema: encode json: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json":
		return append(data, '\n'), nil
	case "yaml", "yml":
		var generic any
		if err := json.Unmarshal(data, &generic); err != nil {
			return nil, fmt.Errorf("schema: decode json: %w", err)
		}
		out, err := yaml.Marshal(generic)
		if err != nil {
			return nil, fmt.Errorf("schema: encode yaml: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("schema: unsupported format %q", format)
	}
}

// Load parses and validates an OpenAPI document (JSON or YAML).
func Load(ctx context.Context, data []byte) (*openapi3.T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New("schema: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("schema: load document: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("schema: validate: %w", err)
	}
	return doc, nil
}
