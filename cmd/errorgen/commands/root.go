// Package commands provides the errorgen CLI commands.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/myenglish-errorgen/internal/app"
)

// Root returns the errorgen command tree.
func Root() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "errorgen",
		Short: "Error-correction exercise generator",
		Long: `Error-correction exercise generator

Generates random English paragraphs, injects typical learner mistakes and
prints both the error text and the answer text with altered words marked
<bold>...</bold>.

Available commands:
  generate  - Generate exercises
  words     - Show the loaded word lists
  version   - Show build information`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config file (default: $ERRORGEN_CONFIG_PATH or ./errorgen.yaml)")

	loadApp := func(cmd *cobra.Command) (*app.App, error) {
		return app.New(configPath, cmd.ErrOrStderr())
	}

	rootCmd.AddCommand(generateCmd(loadApp))
	rootCmd.AddCommand(wordsCmd(loadApp))
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

type appLoader func(cmd *cobra.Command) (*app.App, error)
