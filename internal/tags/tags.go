// Package tags holds the grammatical and lifecycle markers carried by words
// and paragraphs.
package tags

import "strings"

// Tag is a single grammatical or status marker.
type Tag uint8

// Word-level tags.
const (
	Plural Tag = iota + 1
	Definite
	Indefinite
	Proper
	Uncountable
	ThirdPerson
	FirstPerson
	Past
	Negative
	Preposition
	SeparableParticle
	Bold

	// Paragraph-level status tags.
	Raw
	HasPlurals
	HasNegatives
	Grammatical
	SimplePresent
	SimplePast
	HasErrors
	NounErrors
	PronounErrors
	VerbErrors
	IsDoErrors
	PrepositionErrors
	PunctuationErrors

	maxTag
)

var tagNames = [maxTag]string{
	Plural:            "PLURAL",
	Definite:          "DEFINITE",
	Indefinite:        "INDEFINITE",
	Proper:            "PROPER",
	Uncountable:       "UNCOUNTABLE",
	ThirdPerson:       "THIRD_PERSON",
	FirstPerson:       "FIRST_PERSON",
	Past:              "PAST",
	Negative:          "NEGATIVE",
	Preposition:       "PREPOSITION",
	SeparableParticle: "SEPARABLE_PARTICLE",
	Bold:              "BOLD",
	Raw:               "RAW",
	HasPlurals:        "HAS_PLURALS",
	HasNegatives:      "HAS_NEGATIVES",
	Grammatical:       "GRAMMATICAL",
	SimplePresent:     "SIMPLE_PRESENT",
	SimplePast:        "SIMPLE_PAST",
	HasErrors:         "HAS_ERRORS",
	NounErrors:        "NOUN_ERRORS",
	PronounErrors:     "PRONOUN_ERRORS",
	VerbErrors:        "VERB_ERRORS",
	IsDoErrors:        "IS_DO_ERRORS",
	PrepositionErrors: "PREPOSITION_ERRORS",
	PunctuationErrors: "PUNCTUATION_ERRORS",
}

func (t Tag) String() string {
	if !t.IsValid() {
		return "UNKNOWN"
	}
	return tagNames[t]
}

func (t Tag) IsValid() bool {
	return t > 0 && t < maxTag
}

// Parse returns the tag with the given name.
func Parse(name string) (Tag, bool) {
	for t := Tag(1); t < maxTag; t++ {
		if tagNames[t] == name {
			return t, true
		}
	}
	return 0, false
}

// Set is an immutable set of tags. The zero value is the empty set.
// Sets are comparable with ==, and equality ignores insertion order.
type Set uint64

// New builds a set from the given tags. Duplicates collapse.
func New(ts ...Tag) Set {
	var s Set
	for _, t := range ts {
		if t.IsValid() {
			s |= 1 << t
		}
	}
	return s
}

// Add returns a new set that also contains ts.
func (s Set) Add(ts ...Tag) Set {
	return s | New(ts...)
}

// Remove returns a new set without ts.
func (s Set) Remove(ts ...Tag) Set {
	return s &^ New(ts...)
}

// Has reports whether every one of ts is in the set.
func (s Set) Has(ts ...Tag) bool {
	m := New(ts...)
	return s&m == m
}

// HasAny reports whether at least one of ts is in the set.
func (s Set) HasAny(ts ...Tag) bool {
	return s&New(ts...) != 0
}

func (s Set) Len() int {
	n := 0
	for t := Tag(1); t < maxTag; t++ {
		if s.Has(t) {
			n++
		}
	}
	return n
}

func (s Set) IsEmpty() bool { return s == 0 }

// Tags lists the members in declaration order.
func (s Set) Tags() []Tag {
	var out []Tag
	for t := Tag(1); t < maxTag; t++ {
		if s.Has(t) {
			out = append(out, t)
		}
	}
	return out
}

func (s Set) String() string {
	names := make([]string, 0, s.Len())
	for _, t := range s.Tags() {
		names = append(names, t.String())
	}
	return "{" + strings.Join(names, ", ") + "}"
}
