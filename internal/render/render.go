// Package render assembles words into display text. Bold words are wrapped
// in <bold>...</bold>, the only markup handed to document renderers.
package render

import (
	"strings"

	"github.com/heartmarshall/myenglish-errorgen/internal/sentence"
	"github.com/heartmarshall/myenglish-errorgen/internal/tags"
	"github.com/heartmarshall/myenglish-errorgen/internal/word"
)

const (
	BoldOpen  = "<bold>"
	BoldClose = "</bold>"
)

// ConnectWords joins word values with single spaces. Punctuation attaches to
// the preceding word.
func ConnectWords(words []word.Word) string {
	var b strings.Builder
	for i, w := range words {
		text := w.Value()
		if w.HasTags(tags.Bold) {
			text = BoldOpen + text + BoldClose
		}
		if i > 0 && w.Kind() != word.KindPunctuation {
			b.WriteByte(' ')
		}
		b.WriteString(text)
	}
	return strings.TrimSpace(b.String())
}

// Sentence renders one sentence.
func Sentence(s sentence.Sentence) string {
	return ConnectWords(s.Words())
}

// Paragraph renders all sentences separated by single spaces.
func Paragraph(p sentence.Paragraph) string {
	return strings.Join(Lines(p), " ")
}

// Lines renders one string per sentence.
func Lines(p sentence.Paragraph) []string {
	out := make([]string, 0, p.Len())
	for _, s := range p.Sentences() {
		out = append(out, Sentence(s))
	}
	return out
}

var stripper = strings.NewReplacer(BoldOpen, "", BoldClose, "")

// PlainText removes bold markup.
func PlainText(text string) string {
	return stripper.Replace(text)
}
