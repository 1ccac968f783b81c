package errormaker

import (
	"slices"

	"github.com/heartmarshall/myenglish-errorgen/internal/generate"
	"github.com/heartmarshall/myenglish-errorgen/internal/sentence"
	"github.com/heartmarshall/myenglish-errorgen/internal/tags"
	"github.com/heartmarshall/myenglish-errorgen/internal/word"
)

// FindSubject locates the subject for error stages. It prefers the nearest
// noun or pronoun before the main verb; failing that it takes the word in
// front of the first copula. It returns -1 when neither exists.
func FindSubject(s sentence.Sentence) int {
	if v := s.VerbIndex(); v > 0 {
		for i := v - 1; i >= 0; i-- {
			if word.IsNominal(s.Get(i)) {
				return i
			}
		}
	}
	if b := s.Index(func(w word.Word) bool { return w.Kind() == word.KindBeVerb }); b > 0 {
		return b - 1
	}
	return -1
}

// PrepositionErrors moves a preposition and its object to directly after the
// subject ("he to the dog listens") with probability p per sentence. The move
// counts as one error, marked on the preposition.
func (m *ErrorMaker) PrepositionErrors(p float64) {
	for si, s := range m.errors.Sentences() {
		pi := prepositionWithObject(s)
		if pi < 0 {
			continue
		}
		subject := FindSubject(s)
		if subject < 0 || subject+1 >= pi {
			continue
		}
		if !generate.Chance(m.rng, p) {
			continue
		}

		moved := []word.Word{s.Get(pi), s.Get(pi + 1)}
		next := s.Delete(pi + 1).Delete(pi).Insert(subject+1, moved...)

		origins := slices.Clone(m.origins[si])
		movedOrigins := []int{origins[pi], origins[pi+1]}
		origins = slices.Delete(origins, pi, pi+2)
		origins = slices.Insert(origins, subject+1, movedOrigins...)

		m.replaceSentence(si, next, origins)
		m.mark(si, subject+1, StagePreposition)
	}
	m.finish(StagePreposition)
}

// prepositionWithObject is the index of the first preposition directly
// followed by a noun or pronoun after the main verb, or -1.
func prepositionWithObject(s sentence.Sentence) int {
	v := s.VerbIndex()
	if v < 0 {
		return -1
	}
	for i := v + 1; i+1 < s.Len(); i++ {
		if s.Get(i).HasTags(tags.Preposition) && word.IsNominal(s.Get(i+1)) {
			return i
		}
	}
	return -1
}

// PunctuationErrors turns the final punctuation of every sentence but the
// last into a comma with probability p. The following sentence then starts
// in lower case, which is marked as well when it changes the text.
func (m *ErrorMaker) PunctuationErrors(p float64) {
	for si := 0; si < m.errors.Len()-1; si++ {
		s := m.errors.Sentence(si)
		if s.Len() == 0 {
			continue
		}
		last := s.Len() - 1
		end, ok := s.Get(last).(word.Punctuation)
		if !ok || !end.EndsSentence() {
			continue
		}
		if !generate.Chance(m.rng, p) {
			continue
		}
		m.set(si, last, word.Comma, StagePunctuation)

		next := m.errors.Sentence(si + 1)
		if next.Len() == 0 {
			continue
		}
		first := next.Get(0)
		if lowered := first.DeCapitalize(); lowered.Value() != first.Value() {
			m.set(si+1, 0, lowered, StagePunctuation)
		} else if lowered != first {
			m.errors = m.errors.Set(si+1, 0, lowered)
		}
	}
	m.finish(StagePunctuation)
}
