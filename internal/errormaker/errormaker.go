// Package errormaker injects learner-style grammatical errors into a copy of
// a GRAMMATICAL paragraph and marks every altered token in the answer.
package errormaker

import (
	"fmt"
	"slices"

	"github.com/heartmarshall/myenglish-errorgen/internal/domain"
	"github.com/heartmarshall/myenglish-errorgen/internal/generate"
	"github.com/heartmarshall/myenglish-errorgen/internal/sentence"
	"github.com/heartmarshall/myenglish-errorgen/internal/tags"
	"github.com/heartmarshall/myenglish-errorgen/internal/word"
)

// ErrorMaker holds the grammatical source, a running error paragraph and the
// set of answer positions altered so far. Stages may run in any order and
// more than once; a position is counted by the first stage that alters it.
type ErrorMaker struct {
	source sentence.Paragraph
	errors sentence.Paragraph
	// origins[s][i] is the source index of error word i in sentence s, or -1.
	origins [][]int
	marks   map[sentence.Position]Stage
	ran     tags.Set
	rng     generate.Rand
}

// New fails with domain.ErrConfiguration unless p is GRAMMATICAL.
func New(p sentence.Paragraph, rng generate.Rand) (*ErrorMaker, error) {
	if !p.Tags().Has(tags.Grammatical) {
		return nil, fmt.Errorf("%w: error injection needs a grammatical paragraph, got %s",
			domain.ErrConfiguration, p.Tags())
	}
	m := &ErrorMaker{
		source: p,
		marks:  make(map[sentence.Position]Stage),
		rng:    rng,
	}
	m.Reset()
	return m, nil
}

// Reset restores the error paragraph to the grammatical source. Marks made
// by earlier stages stay in the answer.
func (m *ErrorMaker) Reset() {
	m.errors = m.source
	m.origins = make([][]int, m.source.Len())
	for i, s := range m.source.Sentences() {
		m.origins[i] = make([]int, s.Len())
		for j := range m.origins[i] {
			m.origins[i][j] = j
		}
	}
}

// Run executes one stage with per-token probability p.
func (m *ErrorMaker) Run(stage Stage, p float64) {
	switch stage {
	case StageNoun:
		m.NounErrors(p)
	case StagePronoun:
		m.PronounErrors(p)
	case StageVerb:
		m.VerbErrors(p)
	case StageIsDo:
		m.IsDoErrors(p)
	case StagePreposition:
		m.PrepositionErrors(p)
	case StagePunctuation:
		m.PunctuationErrors(p)
	}
}

// ErrorParagraph returns the paragraph with all injected errors.
func (m *ErrorMaker) ErrorParagraph() sentence.Paragraph {
	return m.errors.WithTags(m.resultTags())
}

// AnswerParagraph returns the grammatical source with every altered
// position bolded.
func (m *ErrorMaker) AnswerParagraph() sentence.Paragraph {
	p := m.source
	for pos, w := range m.source.IndexedAllWords() {
		if _, ok := m.marks[pos]; ok {
			p = p.SetAt(pos, w.Bold())
		}
	}
	return p.WithTags(m.resultTags())
}

// Count is the number of distinct altered answer positions.
func (m *ErrorMaker) Count() int { return len(m.marks) }

// MarkedBy reports which stage first altered an answer position.
func (m *ErrorMaker) MarkedBy(pos sentence.Position) (Stage, bool) {
	s, ok := m.marks[pos]
	return s, ok
}

func (m *ErrorMaker) resultTags() tags.Set {
	ts := m.source.Tags().Add(m.ran.Tags()...)
	if !m.ran.IsEmpty() {
		ts = ts.Add(tags.HasErrors)
	}
	return ts
}

func (m *ErrorMaker) finish(stage Stage) {
	m.ran = m.ran.Add(stage.Tag())
	m.normalizeCapitals()
}

// mark records that the error word at (s, i) differs from its source.
func (m *ErrorMaker) mark(s, i int, stage Stage) {
	src := m.origins[s][i]
	if src < 0 {
		return
	}
	pos := sentence.Position{Sentence: s, Word: src}
	if _, done := m.marks[pos]; done {
		return
	}
	m.marks[pos] = stage
}

func (m *ErrorMaker) set(s, i int, w word.Word, stage Stage) {
	m.errors = m.errors.Set(s, i, w)
	m.mark(s, i, stage)
}

func (m *ErrorMaker) replaceSentence(s int, next sentence.Sentence, origins []int) {
	m.errors = m.errors.SetSentence(s, next)
	m.origins[s] = origins
}

// sourceSentence is the grammatical sentence s.
func (m *ErrorMaker) sourceSentence(s int) sentence.Sentence {
	return m.source.Sentence(s)
}

// normalizeCapitals capitalizes every sentence start except those that follow
// a comma splice.
func (m *ErrorMaker) normalizeCapitals() {
	for i, s := range m.errors.Sentences() {
		if s.Len() == 0 {
			continue
		}
		first := s.Get(0)
		fixed := first.Capitalize()
		if i > 0 && endsWithComma(m.errors.Sentence(i-1)) {
			fixed = first.DeCapitalize()
		}
		if fixed != first {
			m.errors = m.errors.Set(i, 0, fixed)
		}
	}
}

func endsWithComma(s sentence.Sentence) bool {
	p, ok := s.Last().(word.Punctuation)
	return ok && p.IsComma()
}

// Result is the outcome of InjectErrors.
type Result struct {
	Error  sentence.Paragraph
	Answer sentence.Paragraph
	Count  int
	Stages []Stage
}

// InjectErrors runs every stage with a positive probability in canonical
// order on a GRAMMATICAL paragraph.
func InjectErrors(p sentence.Paragraph, probs Probabilities, rng generate.Rand) (Result, error) {
	m, err := New(p, rng)
	if err != nil {
		return Result{}, err
	}

	var ran []Stage
	for _, stage := range Stages() {
		prob := probs.For(stage)
		if prob <= 0 {
			continue
		}
		m.Run(stage, prob)
		ran = append(ran, stage)
	}

	return Result{
		Error:  m.ErrorParagraph(),
		Answer: m.AnswerParagraph(),
		Count:  m.Count(),
		Stages: slices.Clip(ran),
	}, nil
}
