// Package word implements the immutable word model: plain words, nouns,
// verbs, the copula, pronouns and punctuation. Every transformation returns a
// new value; the receiver is never modified.
package word

import (
	"unicode"
	"unicode/utf8"

	"github.com/heartmarshall/myenglish-errorgen/internal/tags"
)

// Kind identifies the concrete variant behind a Word.
type Kind uint8

const (
	KindBasic Kind = iota + 1
	KindNoun
	KindVerb
	KindBeVerb
	KindPronoun
	KindPunctuation
)

func (k Kind) String() string {
	switch k {
	case KindBasic:
		return "BASIC"
	case KindNoun:
		return "NOUN"
	case KindVerb:
		return "VERB"
	case KindBeVerb:
		return "BE_VERB"
	case KindPronoun:
		return "PRONOUN"
	case KindPunctuation:
		return "PUNCTUATION"
	}
	return "UNKNOWN"
}

// Word is the closed set of word variants. Values are comparable with ==,
// which compares the concrete type, surface state and tags.
type Word interface {
	Kind() Kind
	// Value is the surface form without markup, e.g. "the dogs" or "doesn't play".
	Value() string
	Tags() tags.Set
	HasTags(ts ...tags.Tag) bool
	Capitalize() Word
	DeCapitalize() Word
	Bold() Word

	sealed()
}

// IsVerbLike reports whether w is a main verb or a copula.
func IsVerbLike(w Word) bool {
	k := w.Kind()
	return k == KindVerb || k == KindBeVerb
}

// IsNominal reports whether w can fill a subject or object slot.
func IsNominal(w Word) bool {
	k := w.Kind()
	return k == KindNoun || k == KindPronoun
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsLower(r) {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

func applyCase(s string, capital bool) string {
	if capital {
		return upperFirst(s)
	}
	return s
}

// Basic is a word with no grammar of its own: prepositions, particles and
// anything else the generator passes through verbatim.
type Basic struct {
	value   string
	capital bool
	tags    tags.Set
}

var _ Word = Basic{}

// New returns a plain word.
func New(value string, ts ...tags.Tag) Basic {
	return Basic{value: value, tags: tags.New(ts...)}
}

// NewPreposition returns a word tagged PREPOSITION.
func NewPreposition(value string) Basic {
	return New(value, tags.Preposition)
}

// NewParticle returns a phrasal-verb particle tagged SEPARABLE_PARTICLE.
func NewParticle(value string) Basic {
	return New(value, tags.SeparableParticle)
}

func (b Basic) Kind() Kind                  { return KindBasic }
func (b Basic) Value() string               { return applyCase(b.value, b.capital) }
func (b Basic) Tags() tags.Set              { return b.tags }
func (b Basic) HasTags(ts ...tags.Tag) bool { return b.tags.Has(ts...) }
func (b Basic) sealed()                     {}

func (b Basic) Capitalize() Word {
	b.capital = true
	return b
}

func (b Basic) DeCapitalize() Word {
	b.capital = false
	b.value = lowerFirst(b.value)
	return b
}

func (b Basic) Bold() Word {
	b.tags = b.tags.Add(tags.Bold)
	return b
}

func (b Basic) String() string { return b.Value() }
