package sentence

import (
	"fmt"
	"iter"
	"slices"

	"github.com/heartmarshall/myenglish-errorgen/internal/tags"
	"github.com/heartmarshall/myenglish-errorgen/internal/word"
)

// Position addresses one word inside a paragraph.
type Position struct {
	Sentence int
	Word     int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Sentence, p.Word)
}

// Paragraph is an ordered, immutable list of sentences plus lifecycle tags
// (RAW, GRAMMATICAL, error categories...).
type Paragraph struct {
	sentences []Sentence
	tags      tags.Set
}

// NewParagraph copies sentences into a new paragraph.
func NewParagraph(sentences []Sentence, ts ...tags.Tag) Paragraph {
	return Paragraph{sentences: slices.Clone(sentences), tags: tags.New(ts...)}
}

func (p Paragraph) Len() int                { return len(p.sentences) }
func (p Paragraph) Sentence(i int) Sentence { return p.sentences[i] }
func (p Paragraph) Sentences() []Sentence   { return slices.Clone(p.sentences) }
func (p Paragraph) Tags() tags.Set          { return p.tags }

// Get returns the word at pos.
func (p Paragraph) Get(pos Position) word.Word {
	return p.sentences[pos.Sentence].Get(pos.Word)
}

// WithTags replaces the status tags.
func (p Paragraph) WithTags(ts tags.Set) Paragraph {
	p.sentences = slices.Clone(p.sentences)
	p.tags = ts
	return p
}

// AddTags returns a paragraph with ts added to its status tags.
func (p Paragraph) AddTags(ts ...tags.Tag) Paragraph {
	return p.WithTags(p.tags.Add(ts...))
}

// SetSentence returns a paragraph with sentence i replaced.
func (p Paragraph) SetSentence(i int, s Sentence) Paragraph {
	out := slices.Clone(p.sentences)
	out[i] = s
	return Paragraph{sentences: out, tags: p.tags}
}

// Set returns a paragraph with one word replaced.
func (p Paragraph) Set(s, w int, wd word.Word) Paragraph {
	return p.SetSentence(s, p.sentences[s].Set(w, wd))
}

// SetAt is Set addressed by Position.
func (p Paragraph) SetAt(pos Position, wd word.Word) Paragraph {
	return p.Set(pos.Sentence, pos.Word, wd)
}

// IndexedAllWords lazily walks every word in sentence then word order.
func (p Paragraph) IndexedAllWords() iter.Seq2[Position, word.Word] {
	return func(yield func(Position, word.Word) bool) {
		for si, s := range p.sentences {
			for wi, w := range s.words {
				if !yield(Position{Sentence: si, Word: wi}, w) {
					return
				}
			}
		}
	}
}

// Find returns every position holding a word structurally equal to w.
func (p Paragraph) Find(w word.Word) []Position {
	return p.FindFunc(func(other word.Word) bool { return other == w })
}

// FindFunc returns every position whose word satisfies fn.
func (p Paragraph) FindFunc(fn func(word.Word) bool) []Position {
	var out []Position
	for pos, w := range p.IndexedAllWords() {
		if fn(w) {
			out = append(out, pos)
		}
	}
	return out
}

// Equal compares sentences and tags.
func (p Paragraph) Equal(other Paragraph) bool {
	return p.tags == other.tags && slices.EqualFunc(p.sentences, other.sentences, Sentence.Equal)
}

// WordCount is the total number of words.
func (p Paragraph) WordCount() int {
	n := 0
	for _, s := range p.sentences {
		n += s.Len()
	}
	return n
}
