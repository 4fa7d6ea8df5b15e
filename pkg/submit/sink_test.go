package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-brandsocial/pkg/brand"
)

func sampleRecord() brand.Brand {
	record := brand.New()
	record.Name = "Acme"
	record.Values = []string{"craft", "care"}
	record.TargetAudience.Demographics = "makers"
	return record
}

func TestLogSink_LogsRecord(t *testing.T) {
	var buf bytes.Buffer
	sink := NewLogSink(zerolog.New(&buf))

	if err := sink.Submit(context.Background(), sampleRecord()); err != nil {
		t.Fatalf("submit: %v", err)
	}

	var entry struct {
		Level   string      `json:"level"`
		Message string      `json:"message"`
		Brand   brand.Brand `json:"brand"`
	}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if entry.Level != "info" || entry.Message != "Brand profile completed" {
		t.Fatalf("unexpected log entry: %+v", entry)
	}
	if diff := cmp.Diff(sampleRecord(), entry.Brand); diff != "" {
		t.Fatalf("logged record mismatch (-want +got):\n%s", diff)
	}
}

func TestWriterSink_JSONAndYAML(t *testing.T) {
	var jsonBuf, yamlBuf bytes.Buffer

	jsonSink, err := NewWriterSink(&jsonBuf, FormatJSON)
	if err != nil {
		t.Fatalf("json sink: %v", err)
	}
	yamlSink, err := NewWriterSink(&yamlBuf, FormatYAML)
	if err != nil {
		t.Fatalf("yaml sink: %v", err)
	}

	sink := Multi(jsonSink, nil, yamlSink)
	if err := sink.Submit(context.Background(), sampleRecord()); err != nil {
		t.Fatalf("submit: %v", err)
	}

	var fromJSON brand.Brand
	if err := json.Unmarshal(jsonBuf.Bytes(), &fromJSON); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	var fromYAML brand.Brand
	if err := yaml.Unmarshal(yamlBuf.Bytes(), &fromYAML); err != nil {
		t.Fatalf("decode yaml: %v", err)
	}
	if diff := cmp.Diff(fromJSON, fromYAML); diff != "" {
		t.Fatalf("json and yaml payloads differ (-json +yaml):\n%s", diff)
	}
	if !strings.Contains(jsonBuf.String(), `"uniqueValueProposition": ""`) {
		t.Fatalf("json payload should keep empty fields:\n%s", jsonBuf.String())
	}
}

func TestNewWriterSink_RejectsLogFormat(t *testing.T) {
	if _, err := NewWriterSink(&bytes.Buffer{}, FormatLog); err == nil {
		t.Fatalf("expected error for log format")
	}
	if _, err := NewWriterSink(nil, FormatJSON); err == nil {
		t.Fatalf("expected error for nil writer")
	}
}

func TestFileSink_FormatFromExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "brand.yaml")

	sink, err := NewFileSink(path, "")
	if err != nil {
		t.Fatalf("file sink: %v", err)
	}
	if err := sink.Submit(context.Background(), sampleRecord()); err != nil {
		t.Fatalf("submit: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var got brand.Brand
	if err := yaml.Unmarshal(data, &got); err != nil {
		t.Fatalf("decode yaml: %v", err)
	}
	if got.Name != "Acme" || got.TargetAudience.Demographics != "makers" {
		t.Fatalf("unexpected record: %+v", got)
	}
}

func TestMulti_StopsOnError(t *testing.T) {
	boom := errors.New("boom")
	called := false
	sink := Multi(
		SinkFunc(func(context.Context, brand.Brand) error { return boom }),
		SinkFunc(func(context.Context, brand.Brand) error { called = true; return nil }),
	)
	if err := sink.Submit(context.Background(), brand.New()); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if called {
		t.Fatalf("second sink should not run after failure")
	}
}

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{"": FormatLog, "JSON": FormatJSON, " yml ": FormatYAML, "log": FormatLog}
	for raw, want := range cases {
		got, err := ParseFormat(raw)
		if err != nil || got != want {
			t.Fatalf("%q: got %q, %v", raw, got, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Fatalf("expected error for xml")
	}
}

func TestSinks_HonourCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := NewLogSink(zerolog.Nop()).Submit(ctx, brand.New()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
