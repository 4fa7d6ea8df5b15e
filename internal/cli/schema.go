package cli

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-brandsocial/pkg/schema"
)

func newSchemaCommand(a *app) *cobra.Command {
	var (
		format string
		server string
	)
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the OpenAPI document describing a submitted brand record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc := schema.Document(schema.WithServer(server))
			if err := doc.Validate(cmd.Context()); err != nil {
				return err
			}
			data, err := schema.Encode(doc, format)
			if err != nil {
				return err
			}
			a.logger.Debug().Str("format", format).Msg("schema encoded")
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVar(&format, "format", "yaml", "json or yaml")
	cmd.Flags().StringVar(&server, "server", "", "server URL added to the document")
	return cmd
}
