package errormaker

import (
	"github.com/heartmarshall/myenglish-errorgen/internal/tags"
)

// Stage is one error category. Stages run in the order returned by Stages.
type Stage uint8

const (
	StageNoun Stage = iota + 1
	StagePronoun
	StageVerb
	StageIsDo
	StagePreposition
	StagePunctuation
)

// Stages lists every stage in canonical order.
func Stages() []Stage {
	return []Stage{StageNoun, StagePronoun, StageVerb, StageIsDo, StagePreposition, StagePunctuation}
}

func (s Stage) String() string {
	switch s {
	case StageNoun:
		return "noun"
	case StagePronoun:
		return "pronoun"
	case StageVerb:
		return "verb"
	case StageIsDo:
		return "is_do"
	case StagePreposition:
		return "preposition"
	case StagePunctuation:
		return "punctuation"
	}
	return "unknown"
}

func (s Stage) IsValid() bool {
	return s >= StageNoun && s <= StagePunctuation
}

// Tag is the paragraph tag recorded once the stage has run.
func (s Stage) Tag() tags.Tag {
	switch s {
	case StageNoun:
		return tags.NounErrors
	case StagePronoun:
		return tags.PronounErrors
	case StageVerb:
		return tags.VerbErrors
	case StageIsDo:
		return tags.IsDoErrors
	case StagePreposition:
		return tags.PrepositionErrors
	case StagePunctuation:
		return tags.PunctuationErrors
	}
	return tags.HasErrors
}

// Probabilities holds an independent per-token error probability for each
// stage. A zero probability skips the stage entirely.
type Probabilities struct {
	Noun        float64 `json:"noun" yaml:"noun"`
	Pronoun     float64 `json:"pronoun" yaml:"pronoun"`
	Verb        float64 `json:"verb" yaml:"verb"`
	IsDo        float64 `json:"is_do" yaml:"is_do"`
	Preposition float64 `json:"preposition" yaml:"preposition"`
	Punctuation float64 `json:"punctuation" yaml:"punctuation"`
}

// For returns the probability configured for s.
func (p Probabilities) For(s Stage) float64 {
	switch s {
	case StageNoun:
		return p.Noun
	case StagePronoun:
		return p.Pronoun
	case StageVerb:
		return p.Verb
	case StageIsDo:
		return p.IsDo
	case StagePreposition:
		return p.Preposition
	case StagePunctuation:
		return p.Punctuation
	}
	return 0
}

// All returns Probabilities with every stage set to p.
func All(p float64) Probabilities {
	return Probabilities{Noun: p, Pronoun: p, Verb: p, IsDo: p, Preposition: p, Punctuation: p}
}
