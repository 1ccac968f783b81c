package errormaker

import (
	"slices"

	"github.com/heartmarshall/myenglish-errorgen/internal/generate"
	"github.com/heartmarshall/myenglish-errorgen/internal/tags"
	"github.com/heartmarshall/myenglish-errorgen/internal/word"
)

type verbChoice = generate.Weighted[word.Verb]

// VerbError draws a wrong tense or agreement form for v, keeping negation.
// thirdPerson describes the subject, which matters for past verbs only.
//
//	third person present: bare 3, past 1, past+s 1
//	past:                 bare 1, third person 3 (bare 3, third 1 otherwise)
//	anything else:        third person 3, past 1
func VerbError(v word.Verb, thirdPerson bool, rng generate.Rand) word.Verb {
	base := v.ToBaseVerb()
	if v.HasTags(tags.Negative) {
		base = base.Negative()
	}

	var choices []verbChoice
	switch {
	case v.HasTags(tags.Past):
		bare, third := 3, 1
		if thirdPerson {
			bare, third = 1, 3
		}
		choices = []verbChoice{{Value: base, Weight: bare}, {Value: base.ThirdPerson(), Weight: third}}
	case v.HasTags(tags.ThirdPerson):
		choices = []verbChoice{
			{Value: base, Weight: 3},
			{Value: base.PastTense(), Weight: 1},
			{Value: base.PastTense().ThirdPerson(), Weight: 1},
		}
	default:
		choices = []verbChoice{{Value: base.ThirdPerson(), Weight: 3}, {Value: base.PastTense(), Weight: 1}}
	}
	return generate.Pick(rng, choices...)
}

var bePersons = []func(word.BeVerb) word.BeVerb{
	word.BeVerb.FirstPerson,
	word.BeVerb.ThirdPerson,
	word.BeVerb.PluralPerson,
}

// BeError picks a copula form of the wrong person: one of the other two of
// am/is/are, or the other of was/were.
func BeError(b word.BeVerb, rng generate.Rand) word.BeVerb {
	past := b.HasTags(tags.Past)
	out := word.NewBeVerb()

	switch {
	case past && b.HasTags(tags.Plural):
		out = out.ThirdPerson()
	case past:
		out = out.PluralPerson()
	default:
		var others []func(word.BeVerb) word.BeVerb
		for i, person := range []tags.Tag{tags.FirstPerson, tags.ThirdPerson, tags.Plural} {
			if !b.HasTags(person) {
				others = append(others, bePersons[i])
			}
		}
		out = others[rng.Intn(len(others))](out)
	}

	if past {
		out = out.PastTense()
	}
	if b.HasTags(tags.Negative) {
		out = out.Negative()
	}
	return out
}

// VerbErrors alters each verb with probability p. Copulas get a wrong
// person, main verbs a wrong tense or agreement.
func (m *ErrorMaker) VerbErrors(p float64) {
	for pos, w := range m.errors.IndexedAllWords() {
		if !word.IsVerbLike(w) {
			continue
		}
		if !generate.Chance(m.rng, p) {
			continue
		}

		var alt word.Word
		switch v := w.(type) {
		case word.Verb:
			alt = VerbError(v, m.thirdPersonSubject(pos.Sentence), m.rng)
		case word.BeVerb:
			alt = BeError(v, m.rng)
		}
		if alt != nil && alt != w {
			m.set(pos.Sentence, pos.Word, alt, StageVerb)
		}
	}
	m.finish(StageVerb)
}

func (m *ErrorMaker) thirdPersonSubject(s int) bool {
	src := m.sourceSentence(s)
	i := FindSubject(src)
	return i >= 0 && word.IsThirdPersonSingular(src.Get(i))
}

// IsDoErrors replaces a main verb with "be + bare verb" ("he is like") with
// probability p. The copula agrees with the grammatical subject and keeps
// the verb's tense and negation. Sentences whose main verb is a copula are
// skipped.
func (m *ErrorMaker) IsDoErrors(p float64) {
	for si, s := range m.errors.Sentences() {
		vi := s.VerbIndex()
		if vi < 0 {
			continue
		}
		v, ok := s.Get(vi).(word.Verb)
		if !ok {
			continue
		}
		if !generate.Chance(m.rng, p) {
			continue
		}

		var subject word.Word
		src := m.sourceSentence(si)
		if i := FindSubject(src); i >= 0 {
			subject = src.Get(i)
		}
		be := word.BeVerbFor(subject, v.HasTags(tags.Past), v.HasTags(tags.Negative))

		next := s.Set(vi, be).Insert(vi+1, v.ToBaseVerb())
		origins := slices.Insert(slices.Clone(m.origins[si]), vi+1, m.origins[si][vi])
		m.replaceSentence(si, next, origins)
		m.mark(si, vi, StageIsDo)
	}
	m.finish(StageIsDo)
}
