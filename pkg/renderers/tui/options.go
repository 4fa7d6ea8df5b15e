package tui

import "io"

// Theme captures optional formatting hints the runner applies when printing
// messages. Keep minimal to avoid coupling the loop to ANSI specifics.
type Theme struct {
	InfoPrefix    string
	DoneMarker    string
	StepSeparator string
}

// Labels are the navigation choices shown after each step.
type Labels struct {
	Previous string
	Next     string
	Complete string
}

// Option configures the TUI runner.
type Option func(*Runner)

// WithPromptDriver overrides the prompt driver used by the runner.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Runner) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutput directs the default survey driver's informational output.
func WithOutput(out io.Writer) Option {
	return func(r *Runner) {
		r.out = out
	}
}

// WithTheme applies optional message prefixes and markers.
func WithTheme(theme Theme) Option {
	return func(r *Runner) {
		r.theme = theme
	}
}

// WithLabels overrides the navigation labels.
func WithLabels(labels Labels) Option {
	return func(r *Runner) {
		if labels.Previous != "" {
			r.labels.Previous = labels.Previous
		}
		if labels.Next != "" {
			r.labels.Next = labels.Next
		}
		if labels.Complete != "" {
			r.labels.Complete = labels.Complete
		}
	}
}

// WithSummary prints the submitted record after completion.
func WithSummary(enabled bool) Option {
	return func(r *Runner) {
		r.summary = enabled
	}
}
