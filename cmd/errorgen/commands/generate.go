package commands

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/myenglish-errorgen/internal/exercise"
	"github.com/heartmarshall/myenglish-errorgen/internal/render"
	"github.com/heartmarshall/myenglish-errorgen/pkg/ctxutil"
)

func generateCmd(loadApp appLoader) *cobra.Command {
	var (
		seed   int64
		count  int
		format string
		lines  bool
		plain  bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate exercises",
		Long: `Generate one or more exercises.

Exercise i uses seed+i, so a run is reproducible from its first seed. With
--seed 0 the configured seed is used, and a time-based seed if none is
configured.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validFormat(format); err != nil {
				return err
			}
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}

			ctx := ctxutil.WithRunID(cmd.Context(), uuid.NewString())
			exercises, err := a.Pipeline.GenerateBatch(ctx, count, a.Seed(seed))
			if err != nil {
				a.Log.Error("generation failed", slog.String("error", err.Error()))
				return err
			}

			if plain {
				for i := range exercises {
					exercises[i].AnswerText = render.PlainText(exercises[i].AnswerText)
				}
			}
			if format != formatText {
				return encode(cmd.OutOrStdout(), format, exercises)
			}
			return writeText(cmd.OutOrStdout(), exercises, lines, plain)
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "first random seed (0: configured or time-based)")
	cmd.Flags().IntVar(&count, "count", 1, "number of exercises")
	cmd.Flags().StringVar(&format, "format", formatText, "output format: text, json or yaml")
	cmd.Flags().BoolVar(&lines, "lines", false, "print one sentence per line (text format)")
	cmd.Flags().BoolVar(&plain, "plain", false, "strip <bold> markup from the answer")

	return cmd
}

func writeText(w io.Writer, exercises []exercise.Exercise, lines, plain bool) error {
	var b strings.Builder
	for i, ex := range exercises {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "# Exercise %d (seed %d, %s)\n", i+1, ex.Seed, ex.ID)

		errorText, answerText := ex.ErrorText, ex.AnswerText
		if lines {
			errorText = strings.Join(render.Lines(ex.Error), "\n")
			answerText = strings.Join(render.Lines(ex.Answer), "\n")
			if plain {
				answerText = render.PlainText(answerText)
			}
		}
		fmt.Fprintf(&b, "Errors (%d):\n%s\n", ex.ErrorCount, errorText)
		fmt.Fprintf(&b, "Answer:\n%s\n", answerText)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
