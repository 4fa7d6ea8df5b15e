package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newStepsCommand(a *app) *cobra.Command {
	var asYAML bool
	cmd := &cobra.Command{
		Use:   "steps",
		Short: "List the wizard steps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			steps, err := a.steps()
			if err != nil {
				return err
			}

			if asYAML {
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent(2)
				if err := enc.Encode(map[string]any{"steps": steps}); err != nil {
					return fmt.Errorf("cli: encode steps: %w", err)
				}
				return enc.Close()
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "#\tID\tTITLE\tFIELDS")
			for i, st := range steps {
				fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", i+1, st.ID, st.Title, len(st.Fields))
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the catalogue as YAML")
	return cmd
}
