// Package grammar turns RAW paragraphs into GRAMMATICAL ones: number and
// articles for countable nouns, negation, tense and subject-verb agreement,
// and sentence-initial capitals.
package grammar

import (
	"fmt"

	"github.com/heartmarshall/myenglish-errorgen/internal/domain"
	"github.com/heartmarshall/myenglish-errorgen/internal/generate"
	"github.com/heartmarshall/myenglish-errorgen/internal/sentence"
	"github.com/heartmarshall/myenglish-errorgen/internal/tags"
	"github.com/heartmarshall/myenglish-errorgen/internal/word"
)

// Tense is the simple tense applied to every main verb.
type Tense string

const (
	TensePresent Tense = "present"
	TensePast    Tense = "past"
)

func (t Tense) String() string { return string(t) }

func (t Tense) IsValid() bool {
	return t == TensePresent || t == TensePast
}

// Tag is the paragraph tag recorded for the tense.
func (t Tense) Tag() tags.Tag {
	if t == TensePast {
		return tags.SimplePast
	}
	return tags.SimplePresent
}

// Options holds the grammaticalization parameters. Probabilities are clamped
// to [0, 1].
type Options struct {
	Tense               Tense
	PluralProbability   float64
	NegativeProbability float64
}

func (o Options) Validate() error {
	if !o.Tense.IsValid() {
		return domain.ConfigurationError("unknown tense %q", o.Tense)
	}
	return nil
}

// Grammaticalizer applies Options with draws from one Rand. It is not safe
// for concurrent use.
type Grammaticalizer struct {
	opts Options
	rng  generate.Rand
}

func New(opts Options, rng generate.Rand) (*Grammaticalizer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Grammaticalizer{opts: opts, rng: rng}, nil
}

// Grammaticalize returns a GRAMMATICAL copy of a RAW paragraph. Plural and
// negative assignment run first unless the paragraph already carries
// HAS_PLURALS or HAS_NEGATIVES.
func (g *Grammaticalizer) Grammaticalize(p sentence.Paragraph) (sentence.Paragraph, error) {
	if err := requireRaw(p); err != nil {
		return sentence.Paragraph{}, err
	}

	var err error
	if !p.Tags().Has(tags.HasPlurals) {
		if p, err = g.AssignPlurals(p); err != nil {
			return sentence.Paragraph{}, err
		}
	}
	if !p.Tags().Has(tags.HasNegatives) {
		if p, err = g.AssignNegatives(p); err != nil {
			return sentence.Paragraph{}, err
		}
	}

	p = assignArticles(p)
	p = g.applyTense(p)
	p = capitalizeSentences(p)

	return p.WithTags(tags.New(tags.Grammatical, g.opts.Tense.Tag())), nil
}

// AssignPlurals draws plural number once per distinct countable lemma and
// applies it to every occurrence. Proper and uncountable nouns are never
// pluralized.
func (g *Grammaticalizer) AssignPlurals(p sentence.Paragraph) (sentence.Paragraph, error) {
	if err := requireRaw(p); err != nil {
		return sentence.Paragraph{}, err
	}
	if p.Tags().Has(tags.HasPlurals) {
		return sentence.Paragraph{}, fmt.Errorf("%w: plurals already assigned", domain.ErrAlreadyGrammatical)
	}

	plural := make(map[word.Noun]bool)
	for _, base := range countableLemmas(p) {
		plural[base] = generate.Chance(g.rng, g.opts.PluralProbability)
	}

	for pos, w := range p.IndexedAllWords() {
		n, ok := w.(word.Noun)
		if !ok || !n.IsCountable() || !plural[n.ToBaseNoun()] {
			continue
		}
		p = p.SetAt(pos, n.Plural())
	}
	return p.AddTags(tags.HasPlurals), nil
}

// AssignNegatives negates each verb by an independent draw.
func (g *Grammaticalizer) AssignNegatives(p sentence.Paragraph) (sentence.Paragraph, error) {
	if err := requireRaw(p); err != nil {
		return sentence.Paragraph{}, err
	}
	if p.Tags().Has(tags.HasNegatives) {
		return sentence.Paragraph{}, fmt.Errorf("%w: negatives already assigned", domain.ErrAlreadyGrammatical)
	}

	for pos, w := range p.IndexedAllWords() {
		if !word.IsVerbLike(w) {
			continue
		}
		if !generate.Chance(g.rng, g.opts.NegativeProbability) {
			continue
		}
		switch v := w.(type) {
		case word.Verb:
			p = p.SetAt(pos, v.Negative())
		case word.BeVerb:
			p = p.SetAt(pos, v.Negative())
		}
	}
	return p.AddTags(tags.HasNegatives), nil
}

func requireRaw(p sentence.Paragraph) error {
	if !p.Tags().Has(tags.Raw) || p.Tags().Has(tags.Grammatical) {
		return fmt.Errorf("%w: tags %s", domain.ErrAlreadyGrammatical, p.Tags())
	}
	return nil
}

// countableLemmas lists distinct countable base nouns in paragraph order.
func countableLemmas(p sentence.Paragraph) []word.Noun {
	var (
		out  []word.Noun
		seen = make(map[word.Noun]bool)
	)
	for _, w := range p.IndexedAllWords() {
		n, ok := w.(word.Noun)
		if !ok || !n.IsCountable() {
			continue
		}
		base := n.ToBaseNoun()
		if !seen[base] {
			seen[base] = true
			out = append(out, base)
		}
	}
	return out
}

// assignArticles gives the first occurrence of each countable lemma an
// indefinite article (bare when plural) and every later occurrence "the".
func assignArticles(p sentence.Paragraph) sentence.Paragraph {
	seen := make(map[word.Noun]bool)
	for pos, w := range p.IndexedAllWords() {
		n, ok := w.(word.Noun)
		if !ok || !n.IsCountable() {
			continue
		}
		base := n.ToBaseNoun()
		switch {
		case seen[base]:
			n = n.Definite()
		case n.HasTags(tags.Plural):
			n = n.Bare()
		default:
			n = n.Indefinite()
		}
		seen[base] = true
		p = p.SetAt(pos, n)
	}
	return p
}

func (g *Grammaticalizer) applyTense(p sentence.Paragraph) sentence.Paragraph {
	for i, s := range p.Sentences() {
		idx := s.VerbIndex()
		if idx < 0 {
			continue
		}
		subject, _ := s.Subject()
		p = p.SetSentence(i, s.Set(idx, Conjugate(s.Get(idx), subject, g.opts.Tense)))
	}
	return p
}

// Conjugate inflects a verb for subject and tense. A nil subject leaves a
// present-tense main verb bare. Non-verbs are returned unchanged.
func Conjugate(w, subject word.Word, tense Tense) word.Word {
	switch v := w.(type) {
	case word.Verb:
		if tense == TensePast {
			return v.PastTense()
		}
		if subject != nil && word.IsThirdPersonSingular(subject) {
			return v.ThirdPerson()
		}
		return v
	case word.BeVerb:
		return word.BeVerbFor(subject, tense == TensePast, v.HasTags(tags.Negative))
	}
	return w
}

func capitalizeSentences(p sentence.Paragraph) sentence.Paragraph {
	for i, s := range p.Sentences() {
		if s.Len() == 0 {
			continue
		}
		p = p.SetSentence(i, s.Set(0, s.Get(0).Capitalize()))
	}
	return p
}

// Revert strips all inflection, returning a RAW paragraph that can be
// grammaticalized again.
func Revert(p sentence.Paragraph) sentence.Paragraph {
	for i, s := range p.Sentences() {
		p = p.SetSentence(i, s.Map(func(_ int, w word.Word) word.Word {
			return toBase(w)
		}))
	}
	return p.WithTags(tags.New(tags.Raw))
}

func toBase(w word.Word) word.Word {
	switch v := w.(type) {
	case word.Noun:
		return v.ToBaseNoun()
	case word.Verb:
		return v.ToBaseVerb()
	case word.BeVerb:
		return v.ToBaseVerb()
	}
	return word.Unbold(w.DeCapitalize())
}
