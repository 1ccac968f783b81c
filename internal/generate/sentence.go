// Package generate builds raw, uninflected sentences and paragraphs from
// word lists. Every draw goes through an injected Rand, so a seed fully
// determines the output.
package generate

import (
	"github.com/heartmarshall/myenglish-errorgen/internal/domain"
	"github.com/heartmarshall/myenglish-errorgen/internal/lexicon"
	"github.com/heartmarshall/myenglish-errorgen/internal/sentence"
	"github.com/heartmarshall/myenglish-errorgen/internal/word"
)

// maxRetries bounds every best-effort redraw loop.
const maxRetries = 100

var endings = []word.Punctuation{word.Period, word.Period, word.Exclamation}

// SentenceGenerator draws single sentences. It is not safe for concurrent
// use because it shares one Rand.
type SentenceGenerator struct {
	verbs []lexicon.VerbTemplate
	nouns []word.Noun
	rng   Rand
}

// NewSentenceGenerator fails with domain.ErrConfiguration when either list
// is empty.
func NewSentenceGenerator(verbs []lexicon.VerbTemplate, nouns []word.Noun, rng Rand) (*SentenceGenerator, error) {
	if len(verbs) == 0 {
		return nil, domain.ConfigurationError("verb list is empty")
	}
	if len(nouns) == 0 {
		return nil, domain.ConfigurationError("noun list is empty")
	}
	return &SentenceGenerator{verbs: verbs, nouns: nouns, rng: rng}, nil
}

// Subject returns a subject-case pronoun with probability p, otherwise a
// random noun.
func (g *SentenceGenerator) Subject(p float64) word.Word {
	if Chance(g.rng, p) {
		return g.pronoun().SubjectForm()
	}
	return g.noun()
}

// Object returns an object-case pronoun with probability p, otherwise a
// random noun.
func (g *SentenceGenerator) Object(p float64) word.Word {
	if Chance(g.rng, p) {
		return g.pronoun().ObjectForm()
	}
	return g.noun()
}

func (g *SentenceGenerator) pronoun() word.Pronoun {
	all := word.Pronouns()
	return all[g.rng.Intn(len(all))]
}

func (g *SentenceGenerator) noun() word.Noun {
	return g.nouns[g.rng.Intn(len(g.nouns))]
}

// Sentence returns subject + predicate.
func (g *SentenceGenerator) Sentence(p float64) sentence.Sentence {
	subject := g.Subject(p)
	return sentence.New(append([]word.Word{subject}, g.Predicate(p)...)...)
}

// Predicate returns a random verb with its objects, preposition or particle,
// and terminal punctuation.
func (g *SentenceGenerator) Predicate(p float64) []word.Word {
	tmpl := g.verbs[g.rng.Intn(len(g.verbs))]
	return g.PredicateFor(tmpl, p)
}

// PredicateFor fills the object slots of tmpl. Only the first object may be a
// pronoun; later objects differ from earlier ones unless the retry budget
// runs out.
func (g *SentenceGenerator) PredicateFor(tmpl lexicon.VerbTemplate, p float64) []word.Word {
	objects := make([]word.Word, 0, tmpl.Objects)
	for i := 0; i < tmpl.Objects; i++ {
		prob := p
		if i > 0 {
			prob = 0
		}
		obj := g.Object(prob)
		for attempt := 0; attempt < maxRetries && CollidesAny(objects, obj); attempt++ {
			obj = g.Object(prob)
		}
		objects = append(objects, obj)
	}

	words := arrange(tmpl, objects)
	return append(words, endings[g.rng.Intn(len(endings))])
}

func arrange(tmpl lexicon.VerbTemplate, objects []word.Word) []word.Word {
	words := []word.Word{tmpl.Verb}

	var prep, particle word.Word
	if tmpl.HasPreposition() {
		prep = word.NewPreposition(tmpl.Preposition)
	}
	if tmpl.HasParticle() {
		particle = word.NewParticle(tmpl.Particle)
	}

	switch {
	case len(objects) == 0:
		if particle != nil {
			words = append(words, particle)
		}
	case particle != nil && prep == nil && objects[0].Kind() == word.KindPronoun:
		// "pick it up"
		words = append(words, objects[0], particle)
		words = append(words, objects[1:]...)
	case prep != nil && tmpl.InsertPreposition && len(objects) == 2:
		if particle != nil {
			words = append(words, particle)
		}
		words = append(words, objects[0], prep, objects[1])
	default:
		if particle != nil {
			words = append(words, particle)
		}
		if prep != nil {
			words = append(words, prep)
		}
		words = append(words, objects...)
	}
	return words
}

// Collides reports whether a and b denote the same referent: equal words,
// or two case forms of one pronoun.
func Collides(a, b word.Word) bool {
	if a == b {
		return true
	}
	pa, okA := a.(word.Pronoun)
	pb, okB := b.(word.Pronoun)
	return okA && okB && pa.IsPair(pb)
}

// CollidesAny reports whether w collides with any of ws.
func CollidesAny(ws []word.Word, w word.Word) bool {
	for _, x := range ws {
		if Collides(x, w) {
			return true
		}
	}
	return false
}
