package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/myenglish-errorgen/internal/app"
)

func versionCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validFormat(format); err != nil {
				return err
			}
			if format != formatText {
				return encode(cmd.OutOrStdout(), format, app.BuildInfo())
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), app.BuildVersion())
			return err
		},
	}
	cmd.Flags().StringVar(&format, "format", formatText, "output format: text, json or yaml")

	return cmd
}
