package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/myenglish-errorgen/internal/lexicon"
	"github.com/heartmarshall/myenglish-errorgen/internal/word"
)

type wordLists struct {
	Stats       lexicon.Stats `json:"stats" yaml:"stats"`
	Nouns       []string      `json:"nouns,omitempty" yaml:"nouns,omitempty"`
	Uncountable []string      `json:"uncountable,omitempty" yaml:"uncountable,omitempty"`
	Proper      []string      `json:"proper,omitempty" yaml:"proper,omitempty"`
	Verbs       []string      `json:"verbs,omitempty" yaml:"verbs,omitempty"`
}

func wordsCmd(loadApp appLoader) *cobra.Command {
	var (
		format string
		list   bool
	)

	cmd := &cobra.Command{
		Use:   "words",
		Short: "Show the loaded word lists",
		Long:  `Show word-list statistics. Use --list to print every entry.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validFormat(format); err != nil {
				return err
			}
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}

			out := wordLists{Stats: a.Lexicon.Stats()}
			if list {
				out.Nouns = nounBases(a.Lexicon.Nouns)
				out.Uncountable = nounBases(a.Lexicon.Uncountable)
				out.Proper = nounBases(a.Lexicon.Proper)
				for _, v := range a.Lexicon.Verbs {
					out.Verbs = append(out.Verbs, v.String())
				}
			}

			if format != formatText {
				return encode(cmd.OutOrStdout(), format, out)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "nouns: %d\nuncountable: %d\nproper: %d\nverbs: %d\n",
				out.Stats.Nouns, out.Stats.Uncountable, out.Stats.Proper, out.Stats.Verbs)
			if list {
				fmt.Fprintf(w, "\nnouns: %s\n", strings.Join(out.Nouns, ", "))
				fmt.Fprintf(w, "uncountable: %s\n", strings.Join(out.Uncountable, ", "))
				fmt.Fprintf(w, "proper: %s\n", strings.Join(out.Proper, ", "))
				fmt.Fprintf(w, "verbs:\n  %s\n", strings.Join(out.Verbs, "\n  "))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", formatText, "output format: text, json or yaml")
	cmd.Flags().BoolVar(&list, "list", false, "print every word")

	return cmd
}

func nounBases(nouns []word.Noun) []string {
	out := make([]string, len(nouns))
	for i, n := range nouns {
		out[i] = n.Base()
	}
	return out
}
