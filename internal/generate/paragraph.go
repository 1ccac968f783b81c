package generate

import (
	"fmt"

	"github.com/heartmarshall/myenglish-errorgen/internal/domain"
	"github.com/heartmarshall/myenglish-errorgen/internal/sentence"
	"github.com/heartmarshall/myenglish-errorgen/internal/tags"
	"github.com/heartmarshall/myenglish-errorgen/internal/word"
)

// Mode selects how sentence subjects are chosen.
type Mode string

const (
	// ModePool draws every subject from a fixed pool of distinct subjects.
	ModePool Mode = "pool"
	// ModeChain takes each subject from the last object of the previous
	// sentence.
	ModeChain Mode = "chain"
)

func (m Mode) String() string { return string(m) }

func (m Mode) IsValid() bool {
	return m == ModePool || m == ModeChain
}

// Options configures one paragraph.
type Options struct {
	Mode               Mode
	Sentences          int
	PoolSize           int
	PronounProbability float64
}

// ParagraphGenerator assembles RAW paragraphs out of generated sentences.
type ParagraphGenerator struct {
	sentences *SentenceGenerator
	rng       Rand
	fallbacks int
}

func NewParagraphGenerator(sentences *SentenceGenerator) *ParagraphGenerator {
	return &ParagraphGenerator{sentences: sentences, rng: sentences.rng}
}

// Fallbacks is the number of predicates accepted despite a subject collision
// during the last Paragraph call.
func (g *ParagraphGenerator) Fallbacks() int { return g.fallbacks }

// Paragraph generates a RAW paragraph. Pool exhaustion is reported as
// domain.ErrPoolSize.
func (g *ParagraphGenerator) Paragraph(opts Options) (sentence.Paragraph, error) {
	g.fallbacks = 0
	if opts.Sentences <= 0 {
		return sentence.Paragraph{}, domain.ConfigurationError("sentence count must be positive, got %d", opts.Sentences)
	}

	var (
		sentences []sentence.Sentence
		err       error
	)
	switch opts.Mode {
	case ModePool:
		sentences, err = g.pool(opts)
	case ModeChain:
		sentences = g.chain(opts)
	default:
		return sentence.Paragraph{}, domain.ConfigurationError("unknown paragraph mode %q", opts.Mode)
	}
	if err != nil {
		return sentence.Paragraph{}, err
	}
	return sentence.NewParagraph(sentences, tags.Raw), nil
}

// SubjectPool draws size distinct subjects. Pronoun case forms count as one
// subject.
func (g *ParagraphGenerator) SubjectPool(size int, p float64) ([]word.Word, error) {
	if size <= 0 {
		return nil, domain.ConfigurationError("pool size must be positive, got %d", size)
	}
	pool := make([]word.Word, 0, size)
	budget := maxRetries + size
	for attempt := 0; len(pool) < size; attempt++ {
		if attempt >= budget {
			return nil, fmt.Errorf("%w: drew %d of %d distinct subjects in %d attempts",
				domain.ErrPoolSize, len(pool), size, budget)
		}
		s := g.sentences.Subject(p)
		if !CollidesAny(pool, s) {
			pool = append(pool, s)
		}
	}
	return pool, nil
}

func (g *ParagraphGenerator) pool(opts Options) ([]sentence.Sentence, error) {
	pool, err := g.SubjectPool(opts.PoolSize, opts.PronounProbability)
	if err != nil {
		return nil, err
	}

	out := make([]sentence.Sentence, 0, opts.Sentences)
	budget := maxRetries + opts.Sentences
	for attempt := 0; len(out) < opts.Sentences; attempt++ {
		if attempt >= budget {
			return nil, fmt.Errorf("%w: every subject collides with its predicate after %d attempts",
				domain.ErrPoolSize, budget)
		}
		subject := pool[g.rng.Intn(len(pool))]
		predicate := g.sentences.Predicate(opts.PronounProbability)
		if CollidesAny(predicate, subject) {
			continue
		}
		out = append(out, sentence.New(append([]word.Word{subject}, predicate...)...))
	}
	return out, nil
}

func (g *ParagraphGenerator) chain(opts Options) []sentence.Sentence {
	out := make([]sentence.Sentence, 0, opts.Sentences)
	subject := g.sentences.Subject(opts.PronounProbability)
	for len(out) < opts.Sentences {
		predicate := g.sentences.Predicate(opts.PronounProbability)
		for attempt := 0; attempt < maxRetries && CollidesAny(predicate, subject); attempt++ {
			predicate = g.sentences.Predicate(opts.PronounProbability)
		}
		if CollidesAny(predicate, subject) {
			g.fallbacks++
		}

		s := sentence.New(append([]word.Word{subject}, predicate...)...)
		out = append(out, s)
		subject = g.nextSubject(s, opts.PronounProbability)
	}
	return out
}

// nextSubject continues the chain from the token before the terminal
// punctuation.
func (g *ParagraphGenerator) nextSubject(s sentence.Sentence, p float64) word.Word {
	if s.Len() >= 2 {
		switch w := s.Get(s.Len() - 2).(type) {
		case word.Pronoun:
			return w.SubjectForm()
		case word.Noun:
			return w
		}
	}
	return g.sentences.Subject(p)
}
