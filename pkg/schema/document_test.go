package schema_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-brandsocial/pkg/brand"
	"github.com/goliatone/go-brandsocial/pkg/schema"
)

func TestDocument_Validates(t *testing.T) {
	doc := schema.Document(schema.WithTitle("Acme Brands"), schema.WithServer("https://api.example.com"))
	if err := doc.Validate(context.Background()); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if doc.Info.Title != "Acme Brands" {
		t.Fatalf("unexpected title %q", doc.Info.Title)
	}
	item := doc.Paths.Find(schema.BrandPath)
	if item == nil || item.Post == nil || item.Post.OperationID != schema.SubmitOpID {
		t.Fatalf("expected POST %s operation", schema.BrandPath)
	}
	brandSchema := doc.Components.Schemas["Brand"].Value
	for _, prop := range []string{"name", "industry", "mission", "vision", "longTermVision", "values", "targetAudience", "uniqueValueProposition", "contentPillars"} {
		if _, ok := brandSchema.Properties[prop]; !ok {
			t.Fatalf("missing property %q", prop)
		}
	}
}

func TestEncode_RoundTripsThroughLoader(t *testing.T) {
	for _, format := range []string{"json", "yaml"} {
		t.Run(format, func(t *testing.T) {
			data, err := schema.Encode(schema.Document(), format)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			if format == "json" && !strings.Contains(string(data), `"$ref": "#/components/schemas/Brand"`) {
				t.Fatalf("expected request body to reference the Brand component:\n%s", data)
			}

			loaded, err := schema.Load(context.Background(), data)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if loaded.Components.Schemas["Brand"] == nil {
				t.Fatalf("expected Brand component after load")
			}
		})
	}

	if _, err := schema.Encode(schema.Document(), "xml"); err == nil {
		t.Fatalf("expected unsupported format error")
	}
	if _, err := schema.Encode(nil, "json"); err == nil {
		t.Fatalf("expected nil document error")
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := schema.Load(context.Background(), nil); err == nil {
		t.Fatalf("expected empty payload error")
	}
	if _, err := schema.Load(context.Background(), []byte(`{"openapi": "3.0.3"}`)); err == nil {
		t.Fatalf("expected validation error for missing info")
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := schema.Load(ctx, []byte("{}")); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestDecodeRecord(t *testing.T) {
	yamlPayload := []byte(`
name: Acme
values: [Care, Grit]
targetAudience:
  demographics: Hikers
`)
	got, err := schema.DecodeRecord(yamlPayload)
	if err != nil {
		t.Fatalf("decode yaml: %v", err)
	}
	want := brand.New()
	want.Name = "Acme"
	want.Values = []string{"Care", "Grit"}
	want.TargetAudience.Demographics = "Hikers"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("record mismatch (-want +got):\n%s", diff)
	}

	jsonPayload := []byte(`{"mission": "Equip adventurers", "contentPillars": []}`)
	got, err = schema.DecodeRecord(jsonPayload)
	if err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if got.Mission != "Equip adventurers" || len(got.Values) != 1 {
		t.Fatalf("unexpected record %+v", got)
	}
}

func TestDecodeRecord_RejectsUnknownAndMistyped(t *testing.T) {
	cases := map[string]string{
		"unknown field":  `{"mision": "typo"}`,
		"nested unknown": `{"targetAudience": {"age": "30"}}`,
		"wrong type":     `{"values": "Care"}`,
		"not an object":  `["Acme"]`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := schema.DecodeRecord([]byte(payload)); !errors.Is(err, schema.ErrInvalidRecord) {
				t.Fatalf("expected ErrInvalidRecord, got %v", err)
			}
		})
	}
	if _, err := schema.DecodeRecord(nil); err == nil {
		t.Fatalf("expected empty payload error")
	}
}
