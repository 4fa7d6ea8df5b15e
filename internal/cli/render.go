package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	brandsocial "github.com/goliatone/go-brandsocial"
	"github.com/goliatone/go-brandsocial/pkg/render"
	"github.com/goliatone/go-brandsocial/pkg/renderers/html"
	"github.com/goliatone/go-brandsocial/pkg/session"
	"github.com/goliatone/go-brandsocial/pkg/wizard"
)

func newRenderCommand(a *app) *cobra.Command {
	var (
		step     string
		prefill  string
		renderer string
		out      string
		action   string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one wizard step as HTML or JSON",
		Example: `  brandsocial render --step values --prefill brand.yaml > values.html
  brandsocial render --step 5 --renderer json --variant dark`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			s, err := a.newSession(prefill, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			target, err := stepIndex(s.Sequencer().Steps(), step)
			if err != nil {
				return err
			}
			for s.Sequencer().Index() < target {
				if err := s.Dispatch(ctx, session.Advance{}); err != nil {
					return err
				}
			}

			selector, err := html.NewSelector(a.cfg.Theme.Name, a.cfg.Theme.Variant)
			if err != nil {
				return err
			}
			themeCfg, err := html.ResolveTheme(selector, a.cfg.Theme.Name, a.cfg.Theme.Variant)
			if err != nil {
				return err
			}

			registry, err := brandsocial.NewRegistry()
			if err != nil {
				return err
			}
			payload, contentType, err := registry.Render(ctx, renderer, s.View(), render.RenderOptions{
				Action: action,
				Theme:  themeCfg,
			})
			if err != nil {
				return err
			}
			a.logger.Debug().
				Str("step", s.Sequencer().Current().ID).
				Str("content_type", contentType).
				Int("bytes", len(payload)).
				Msg("step rendered")

			if out == "" {
				_, err = cmd.OutOrStdout().Write(payload)
				return err
			}
			if err := os.WriteFile(out, payload, 0o644); err != nil {
				return fmt.Errorf("cli: write %s: %w", out, err)
			}
			a.logger.Info().Str("path", out).Msg("step written")
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&step, "step", "", "step id or 1-based number (default first step)")
	flags.StringVar(&prefill, "prefill", "", "JSON or YAML brand record used as field values")
	flags.StringVar(&renderer, "renderer", "html", "renderer name (html, json)")
	flags.StringVarP(&out, "out", "o", "", "output file (stdout if empty)")
	flags.StringVar(&action, "action", "", "form action URL")
	return cmd
}

// stepIndex resolves a step id or 1-based number. Empty means the first step.
func stepIndex(steps []wizard.Step, ref string) (int, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return 0, nil
	}
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(steps) {
			return 0, fmt.Errorf("cli: step %d out of range 1-%d", n, len(steps))
		}
		return n - 1, nil
	}
	for i, st := range steps {
		if st.ID == ref {
			return i, nil
		}
	}
	return 0, fmt.Errorf("cli: unknown step %q", ref)
}
