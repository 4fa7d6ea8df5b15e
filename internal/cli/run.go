package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-brandsocial/pkg/renderers/tui"
)

func newRunCommand(a *app) *cobra.Command {
	var (
		prefill string
		summary bool
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the wizard interactively in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.newSession(prefill, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			opts := []tui.Option{
				tui.WithOutput(cmd.OutOrStdout()),
				tui.WithSummary(summary),
			}
			if a.promptDriver != nil {
				opts = append(opts, tui.WithPromptDriver(a.promptDriver))
			}
			runner, err := tui.New(opts...)
			if err != nil {
				return err
			}

			a.logger.Info().Str("session_id", s.ID()).Msg("wizard started")
			err = runner.Run(cmd.Context(), s)
			if errors.Is(err, tui.ErrAborted) {
				a.logger.Warn().Str("session_id", s.ID()).Int("step", s.Sequencer().Index()).Msg("wizard aborted")
				return nil
			}
			return err
		},
	}
	cmd.Flags().StringVar(&prefill, "prefill", "", "JSON or YAML brand record used as starting values")
	cmd.Flags().BoolVar(&summary, "summary", false, "print the collected record when the wizard completes")
	return cmd
}
