// Package lexicon loads noun and verb word lists into the word model.
// Pure parsing: readers or file paths in, word values out.
package lexicon

import (
	"fmt"

	"github.com/heartmarshall/myenglish-errorgen/internal/word"
)

// VerbTemplate describes a verb's valency: how many objects it takes and
// which preposition or separable particle goes with it.
type VerbTemplate struct {
	// Verb is a word.Verb, or a word.BeVerb for the copula.
	Verb        word.Word
	Preposition string
	Particle    string
	// Objects is 0, 1 or 2.
	Objects int
	// InsertPreposition places the preposition between two objects
	// ("give the ball to the dog") instead of after the verb.
	InsertPreposition bool
}

// HasPreposition reports whether the template carries a preposition.
func (t VerbTemplate) HasPreposition() bool { return t.Preposition != "" }

// HasParticle reports whether the template carries a separable particle.
func (t VerbTemplate) HasParticle() bool { return t.Particle != "" }

func (t VerbTemplate) String() string {
	return fmt.Sprintf("%s [prep=%q particle=%q objects=%d insert=%t]",
		t.Verb.Value(), t.Preposition, t.Particle, t.Objects, t.InsertPreposition)
}

// Lexicon is the full set of words a generator draws from.
type Lexicon struct {
	Nouns       []word.Noun
	Uncountable []word.Noun
	Proper      []word.Noun
	Verbs       []VerbTemplate
}

// AllNouns merges countable, uncountable and proper nouns into one pool.
func (l Lexicon) AllNouns() []word.Noun {
	out := make([]word.Noun, 0, len(l.Nouns)+len(l.Uncountable)+len(l.Proper))
	out = append(out, l.Nouns...)
	out = append(out, l.Uncountable...)
	out = append(out, l.Proper...)
	return out
}

// Stats summarizes list sizes for logs and the CLI.
type Stats struct {
	Nouns       int `json:"nouns" yaml:"nouns"`
	Uncountable int `json:"uncountable" yaml:"uncountable"`
	Proper      int `json:"proper" yaml:"proper"`
	Verbs       int `json:"verbs" yaml:"verbs"`
}

func (l Lexicon) Stats() Stats {
	return Stats{
		Nouns:       len(l.Nouns),
		Uncountable: len(l.Uncountable),
		Proper:      len(l.Proper),
		Verbs:       len(l.Verbs),
	}
}
