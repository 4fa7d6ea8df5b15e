// Package submit provides destinations for the completed brand record. The
// default LogSink mirrors the wizard's original behaviour of logging the
// record and discarding it.
package submit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-brandsocial/pkg/brand"
)

// Format selects how a WriterSink serializes the record.
type Format string

const (
	FormatLog  Format = "log"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat normalises a user supplied format name.
func ParseFormat(raw string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(raw))); f {
	case "":
		return FormatLog, nil
	case FormatLog, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("submit: unknown format %q", raw)
	}
}

// SinkFunc adapts a function to brand.Sink.
type SinkFunc func(ctx context.Context, record brand.Brand) error

// Submit calls fn.
func (fn SinkFunc) Submit(ctx context.Context, record brand.Brand) error {
	return fn(ctx, record)
}

// LogSink logs the record at info level.
type LogSink struct {
	logger zerolog.Logger
}

// NewLogSink constructs a LogSink writing through logger.
func NewLogSink(logger zerolog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Submit logs the completed profile.
func (s *LogSink) Submit(ctx context.Context, record brand.Brand) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.logger.Info().Interface("brand", record).Msg("Brand profile completed")
	return nil
}

// WriterSink encodes the record onto an io.Writer.
type WriterSink struct {
	out    io.Writer
	format Format
}

// NewWriterSink constructs a sink for JSON or YAML output.
func NewWriterSink(out io.Writer, format Format) (*WriterSink, error) {
	if out == nil {
		return nil, errors.New("submit: writer is nil")
	}
	switch format {
	case FormatJSON, FormatYAML:
	default:
		return nil, fmt.Errorf("submit: writer sink does not support format %q", format)
	}
	return &WriterSink{out: out, format: format}, nil
}

// Submit writes the encoded record.
func (s *WriterSink) Submit(ctx context.Context, record brand.Brand) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return encode(s.out, s.format, record)
}

// FileSink writes the encoded record to a file, replacing earlier content.
type FileSink struct {
	path   string
	format Format
}

// NewFileSink constructs a FileSink. The format defaults to the file
// extension (.yaml/.yml for YAML, JSON otherwise).
func NewFileSink(path string, format Format) (*FileSink, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("submit: file path is required")
	}
	if format == "" || format == FormatLog {
		format = formatFromExt(path)
	}
	return &FileSink{path: path, format: format}, nil
}

// Submit writes the record to disk.
func (s *FileSink) Submit(ctx context.Context, record brand.Brand) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("submit: mkdir %s: %w", filepath.Dir(s.path), err)
	}
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("submit: create %s: %w", s.path, err)
	}
	if err := encode(f, s.format, record); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("submit: close %s: %w", s.path, err)
	}
	return nil
}

// Multi fans a submission out to every sink in order, stopping at the first
// failure.
func Multi(sinks ...brand.Sink) brand.Sink {
	filtered := make([]brand.Sink, 0, len(sinks))
	for _, sink := range sinks {
		if sink != nil {
			filtered = append(filtered, sink)
		}
	}
	return SinkFunc(func(ctx context.Context, record brand.Brand) error {
		for _, sink := range filtered {
			if err := sink.Submit(ctx, record); err != nil {
				return err
			}
		}
		return nil
	})
}

func encode(out io.Writer, format Format, record brand.Brand) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(record); err != nil {
			return fmt.Errorf("submit: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("submit: encode yaml: %w", err)
		}
	default:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(record); err != nil {
			return fmt.Errorf("submit: encode json: %w", err)
		}
	}
	return nil
}

func formatFromExt(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}
