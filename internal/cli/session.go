package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goliatone/go-brandsocial/pkg/brand"
	"github.com/goliatone/go-brandsocial/pkg/schema"
	"github.com/goliatone/go-brandsocial/pkg/session"
	"github.com/goliatone/go-brandsocial/pkg/submit"
)

// sink builds the submission destination from output.format/output.path.
// Non-log formats without a path go to stdout.
func (a *app) sink(stdout io.Writer) (brand.Sink, error) {
	format, err := submit.ParseFormat(a.cfg.Output.Format)
	if err != nil {
		return nil, err
	}
	path := strings.TrimSpace(a.cfg.Output.Path)

	switch {
	case path != "":
		fileSink, err := submit.NewFileSink(path, format)
		if err != nil {
			return nil, err
		}
		return submit.Multi(fileSink, submit.SinkFunc(func(_ context.Context, _ brand.Brand) error {
			a.logger.Info().Str("path", path).Msg("brand profile written")
			return nil
		})), nil
	case format == submit.FormatLog:
		return submit.NewLogSink(a.logger), nil
	default:
		return submit.NewWriterSink(stdout, format)
	}
}

// newSession builds a session from the configured catalogue, an optional
// prefill file and the configured sink.
func (a *app) newSession(prefillPath string, stdout io.Writer) (*session.Session, error) {
	steps, err := a.steps()
	if err != nil {
		return nil, err
	}
	sink, err := a.sink(stdout)
	if err != nil {
		return nil, err
	}

	opts := []session.Option{
		session.WithSteps(steps),
		session.WithSink(sink),
		session.WithLogger(a.logger),
		session.WithMetrics(a.metrics),
	}
	if prefillPath != "" {
		record, err := loadPrefill(prefillPath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, session.WithPrefill(record))
	}
	return session.New(opts...)
}

func loadPrefill(path string) (brand.Brand, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return brand.Brand{}, fmt.Errorf("cli: read prefill: %w", err)
	}
	record, err := schema.DecodeRecord(data)
	if err != nil {
		return brand.Brand{}, fmt.Errorf("cli: prefill %s: %w", path, err)
	}
	return record, nil
}
