// Package testsupport holds helpers shared by package tests: brand fixtures
// and output capture.
package testsupport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"testing"

	"github.com/goliatone/go-brandsocial/pkg/brand"
)

// SampleBrand returns a fully populated record used across renderer tests.
func SampleBrand() brand.Brand {
	record := brand.New()
	record.Name = "Acme"
	record.Industry = "Outdoor gear"
	record.Mission = "Equip every weekend adventurer."
	record.Vision = "A trail for everyone."
	record.TargetAudience.Demographics = "Urban professionals, 25-40"
	record.Values = []string{"Durability", "Care"}
	record.UniqueValueProposition = "Lifetime repairs."
	return record
}

// LoadBrand reads a JSON brand fixture.
func LoadBrand(path string) (brand.Brand, error) {
	if path == "" {
		return brand.Brand{}, errors.New("testsupport: brand path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return brand.Brand{}, fmt.Errorf("testsupport: read brand: %w", err)
	}
	var out brand.Brand
	if err := json.Unmarshal(data, &out); err != nil {
		return brand.Brand{}, fmt.Errorf("testsupport: unmarshal brand: %w", err)
	}
	return out.Normalize(), nil
}

// MustLoadBrand is LoadBrand for tests.
func MustLoadBrand(t *testing.T, path string) brand.Brand {
	t.Helper()

	record, err := LoadBrand(path)
	if err != nil {
		t.Fatalf("load brand: %v", err)
	}
	return record
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
