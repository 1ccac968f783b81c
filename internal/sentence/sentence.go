// Package sentence provides immutable containers for words: Sentence is an
// ordered word list, Paragraph an ordered list of sentences with status tags.
// Mutators return new values and never touch the receiver.
package sentence

import (
	"iter"
	"slices"
	"strings"

	"github.com/heartmarshall/myenglish-errorgen/internal/word"
)

// Sentence is an ordered, immutable sequence of words.
type Sentence struct {
	words []word.Word
}

// New copies words into a new sentence.
func New(words ...word.Word) Sentence {
	return Sentence{words: slices.Clone(words)}
}

func (s Sentence) Len() int { return len(s.words) }

// Get panics on an out-of-range index, like slice indexing.
func (s Sentence) Get(i int) word.Word { return s.words[i] }

// Words returns a copy of the words.
func (s Sentence) Words() []word.Word { return slices.Clone(s.words) }

// All iterates index/word pairs.
func (s Sentence) All() iter.Seq2[int, word.Word] {
	return func(yield func(int, word.Word) bool) {
		for i, w := range s.words {
			if !yield(i, w) {
				return
			}
		}
	}
}

// Set returns a sentence with the word at i replaced.
func (s Sentence) Set(i int, w word.Word) Sentence {
	out := slices.Clone(s.words)
	out[i] = w
	return Sentence{words: out}
}

// Insert returns a sentence with ws inserted before index i.
func (s Sentence) Insert(i int, ws ...word.Word) Sentence {
	out := make([]word.Word, 0, len(s.words)+len(ws))
	out = append(out, s.words[:i]...)
	out = append(out, ws...)
	out = append(out, s.words[i:]...)
	return Sentence{words: out}
}

// Delete returns a sentence without the word at i.
func (s Sentence) Delete(i int) Sentence {
	out := make([]word.Word, 0, len(s.words)-1)
	out = append(out, s.words[:i]...)
	out = append(out, s.words[i+1:]...)
	return Sentence{words: out}
}

// Map returns a sentence with fn applied to every word.
func (s Sentence) Map(fn func(i int, w word.Word) word.Word) Sentence {
	out := make([]word.Word, len(s.words))
	for i, w := range s.words {
		out[i] = fn(i, w)
	}
	return Sentence{words: out}
}

// VerbIndex is the index of the first Verb or BeVerb, or -1.
func (s Sentence) VerbIndex() int {
	return slices.IndexFunc(s.words, word.IsVerbLike)
}

// SubjectIndex is the index of the word immediately before the main verb, or
// -1 when there is no verb or the verb opens the sentence.
func (s Sentence) SubjectIndex() int {
	v := s.VerbIndex()
	if v < 1 {
		return -1
	}
	return v - 1
}

// Subject returns the subject word and whether one exists.
func (s Sentence) Subject() (word.Word, bool) {
	i := s.SubjectIndex()
	if i < 0 {
		return nil, false
	}
	return s.words[i], true
}

// Index returns the first index whose word satisfies fn, or -1.
func (s Sentence) Index(fn func(word.Word) bool) int {
	return slices.IndexFunc(s.words, fn)
}

// Last is the final word, or nil for an empty sentence.
func (s Sentence) Last() word.Word {
	if len(s.words) == 0 {
		return nil
	}
	return s.words[len(s.words)-1]
}

// Equal compares word by word.
func (s Sentence) Equal(other Sentence) bool {
	return slices.Equal(s.words, other.words)
}

// String joins values with spaces. Use package render for display text.
func (s Sentence) String() string {
	parts := make([]string, len(s.words))
	for i, w := range s.words {
		parts[i] = w.Value()
	}
	return strings.Join(parts, " ")
}
