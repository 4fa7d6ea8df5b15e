package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/goliatone/go-brandsocial/pkg/brand"
	"github.com/goliatone/go-brandsocial/pkg/session"
	"github.com/goliatone/go-brandsocial/pkg/wizard"
)

type navigation int

const (
	navPrevious navigation = iota
	navNext
	navComplete
)

// Runner drives a session from the terminal: it prints the current step,
// prompts every field, then asks where to go next until the user completes
// the wizard.
type Runner struct {
	driver  PromptDriver
	out     io.Writer
	theme   Theme
	labels  Labels
	summary bool
}

// New constructs a runner with defaults (survey driver, stdout).
func New(options ...Option) (*Runner, error) {
	r := &Runner{
		theme: Theme{
			DoneMarker:    "✓",
			StepSeparator: " ─ ",
		},
		labels: Labels{
			Previous: "Previous",
			Next:     "Next",
			Complete: "Complete",
		},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.driver == nil {
		r.driver = newSurveyDriver(r.out)
	}
	return r, nil
}

// Run loops over the wizard until Complete succeeds, the context is done or
// the driver fails (ErrAborted on Ctrl+C).
func (r *Runner) Run(ctx context.Context, s *session.Session) error {
	if ctx == nil {
		return errors.New("tui: context is required")
	}
	if s == nil {
		return errors.New("tui: session is nil")
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		view := s.View()
		if err := r.printHeader(ctx, view); err != nil {
			return err
		}

		for _, field := range view.Fields {
			value, err := r.promptField(ctx, field)
			if err != nil {
				return err
			}
			if value == field.Value {
				continue
			}
			if err := s.Dispatch(ctx, session.FieldChanged{Update: field.Update(value)}); err != nil {
				return err
			}
		}

		nav, err := r.promptNavigation(ctx, view)
		if err != nil {
			return err
		}

		switch nav {
		case navPrevious:
			err = s.Dispatch(ctx, session.Retreat{})
		case navNext:
			err = s.Dispatch(ctx, session.Advance{})
		case navComplete:
			if err := s.Dispatch(ctx, session.Complete{}); err != nil {
				return err
			}
			return r.printSummary(ctx, s.Record())
		}
		if err != nil {
			return err
		}
	}
}

func (r *Runner) printHeader(ctx context.Context, view session.StepView) error {
	lines := []string{
		r.indicatorLine(view),
		"",
		fmt.Sprintf("%s (%d/%d)", view.Step.Title, view.Index+1, view.Total),
		view.Step.Description,
	}
	for _, line := range lines {
		if err := r.driver.Info(ctx, r.theme.InfoPrefix+line); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) indicatorLine(view session.StepView) string {
	parts := make([]string, 0, len(view.Indicator))
	for _, item := range view.Indicator {
		switch item.Status {
		case wizard.StatusCompleted:
			parts = append(parts, fmt.Sprintf("[%s]", r.theme.DoneMarker))
		case wizard.StatusCurrent:
			parts = append(parts, fmt.Sprintf("(%d)", item.Number))
		default:
			parts = append(parts, fmt.Sprintf(" %d ", item.Number))
		}
	}
	return strings.Join(parts, r.theme.StepSeparator)
}

func (r *Runner) promptField(ctx context.Context, field session.FieldView) (string, error) {
	switch field.Control {
	case wizard.ControlTextArea:
		return r.driver.TextArea(ctx, TextAreaConfig{
			Message: field.Label,
			Default: field.Value,
		})
	case wizard.ControlList:
		return r.driver.Input(ctx, InputConfig{
			Message: fmt.Sprintf("%s (#%d)", field.Label, field.Index+1),
			Default: field.Value,
			Help:    fmt.Sprintf("Edits %s", field.Path),
		})
	default:
		return r.driver.Input(ctx, InputConfig{
			Message: field.Label,
			Default: field.Value,
		})
	}
}

func (r *Runner) promptNavigation(ctx context.Context, view session.StepView) (navigation, error) {
	var (
		options []string
		actions []navigation
	)
	if view.CanRetreat {
		options = append(options, r.labels.Previous)
		actions = append(actions, navPrevious)
	}
	if view.PrimaryAction == session.ActionComplete {
		options = append(options, r.labels.Complete)
		actions = append(actions, navComplete)
	} else {
		options = append(options, r.labels.Next)
		actions = append(actions, navNext)
	}

	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      "Continue",
		Options:      options,
		DefaultIndex: len(options) - 1,
	})
	if err != nil {
		return 0, err
	}
	if idx < 0 || idx >= len(actions) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidSelection, idx)
	}
	return actions[idx], nil
}

func (r *Runner) printSummary(ctx context.Context, record brand.Brand) error {
	if !r.summary {
		return nil
	}
	text, err := prettyRecord(record)
	if err != nil {
		return fmt.Errorf("tui: summary: %w", err)
	}
	return r.driver.Info(ctx, text)
}

func prettyRecord(record brand.Brand) (string, error) {
	payload, err := json.Marshal(record)
	if err != nil {
		return "", err
	}
	var values map[string]any
	if err := json.Unmarshal(payload, &values); err != nil {
		return "", err
	}
	var b strings.Builder
	writePretty(&b, "", values)
	return strings.TrimRight(b.String(), "\n"), nil
}

func writePretty(b *strings.Builder, prefix string, value any) {
	switch v := value.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			next := key
			if prefix != "" {
				next = prefix + "." + key
			}
			writePretty(b, next, v[key])
		}
	case []any:
		for idx, val := range v {
			next := fmt.Sprintf("%s[%d]", prefix, idx)
			writePretty(b, next, val)
		}
	default:
		if prefix != "" {
			fmt.Fprintf(b, "%s=%v\n", prefix, v)
		}
	}
}
