package errormaker

import (
	"github.com/heartmarshall/myenglish-errorgen/internal/generate"
	"github.com/heartmarshall/myenglish-errorgen/internal/tags"
	"github.com/heartmarshall/myenglish-errorgen/internal/word"
)

type nounChoice = generate.Weighted[word.Noun]

// NounError draws a wrong article or number for n. The most common learner
// slip carries weight 3, the others weight 1. The result equals n when the
// noun is in a state no rule covers.
func NounError(n word.Noun, rng generate.Rand) word.Noun {
	choices := nounChoices(n)
	if len(choices) == 0 {
		return n
	}
	return generate.Pick(rng, choices...)
}

func nounChoices(n word.Noun) []nounChoice {
	plural := n.HasTags(tags.Plural)
	switch {
	case n.HasTags(tags.Proper):
		return []nounChoice{{Value: n.Definite(), Weight: 3}, {Value: n.Indefinite(), Weight: 1}}
	case n.HasTags(tags.Uncountable):
		return []nounChoice{{Value: n.Indefinite(), Weight: 3}, {Value: n.Plural(), Weight: 1}}
	case n.HasTags(tags.Indefinite) && !plural:
		return []nounChoice{
			{Value: n.Bare(), Weight: 3},
			{Value: n.Plural(), Weight: 1}, // "a dogs"
			{Value: n.Bare().Plural(), Weight: 1},
		}
	case n.HasTags(tags.Definite) && !plural:
		return []nounChoice{
			{Value: n.Bare(), Weight: 3},
			{Value: n.Indefinite(), Weight: 1},
			{Value: n.Plural(), Weight: 1},
		}
	case n.HasTags(tags.Definite) && plural:
		return []nounChoice{
			{Value: n.Singular(), Weight: 3},
			{Value: n.Singular().Indefinite(), Weight: 1},
			{Value: n.Singular().Bare(), Weight: 1},
		}
	case plural:
		return []nounChoice{
			{Value: n.Singular(), Weight: 3},
			{Value: n.Singular().Indefinite(), Weight: 1},
			{Value: n.Indefinite(), Weight: 1},
		}
	}
	return nil
}

// NounErrors alters article or number of each noun with probability p.
func (m *ErrorMaker) NounErrors(p float64) {
	for pos, w := range m.errors.IndexedAllWords() {
		n, ok := w.(word.Noun)
		if !ok || len(nounChoices(n)) == 0 {
			continue
		}
		if !generate.Chance(m.rng, p) {
			continue
		}
		if alt := NounError(n, m.rng); alt != n {
			m.set(pos.Sentence, pos.Word, alt, StageNoun)
		}
	}
	m.finish(StageNoun)
}

// PronounError swaps subject and object case. "you" and "it" are returned
// unchanged because both cases look the same.
func PronounError(p word.Pronoun) word.Pronoun {
	if !p.HasDistinctCases() {
		return p
	}
	if p.IsObjectForm() {
		return p.SubjectForm()
	}
	return p.ObjectForm()
}

// PronounErrors swaps the case of each eligible pronoun with probability p.
func (m *ErrorMaker) PronounErrors(p float64) {
	for pos, w := range m.errors.IndexedAllWords() {
		pr, ok := w.(word.Pronoun)
		if !ok || !pr.HasDistinctCases() {
			continue
		}
		if !generate.Chance(m.rng, p) {
			continue
		}
		if alt := PronounError(pr); alt != pr {
			m.set(pos.Sentence, pos.Word, alt, StagePronoun)
		}
	}
	m.finish(StagePronoun)
}
