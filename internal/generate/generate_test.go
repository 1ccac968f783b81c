package generate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/myenglish-errorgen/internal/domain"
	"github.com/heartmarshall/myenglish-errorgen/internal/lexicon"
	"github.com/heartmarshall/myenglish-errorgen/internal/tags"
	"github.com/heartmarshall/myenglish-errorgen/internal/word"
)

// scriptedRand replays fixed draws. Intn results are reduced modulo n.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (s *scriptedRand) Float64() float64 {
	if len(s.floats) == 0 {
		panic("scriptedRand: out of floats")
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scriptedRand) Intn(n int) int {
	if len(s.ints) == 0 {
		panic("scriptedRand: out of ints")
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

var (
	like   = lexicon.VerbTemplate{Verb: word.NewVerb("like"), Objects: 1}
	sleep  = lexicon.VerbTemplate{Verb: word.NewIrregularVerb("sleep", "slept"), Objects: 0}
	listen = lexicon.VerbTemplate{Verb: word.NewVerb("listen"), Preposition: "to", Objects: 1}
	give   = lexicon.VerbTemplate{Verb: word.NewIrregularVerb("give", "gave"), Preposition: "to", Objects: 2, InsertPreposition: true}
	pickUp = lexicon.VerbTemplate{Verb: word.NewVerb("pick"), Particle: "up", Objects: 1}

	testNouns = []word.Noun{word.NewNoun("dog"), word.NewNoun("cat"), word.NewNoun("bird")}
	testVerbs = []lexicon.VerbTemplate{like, sleep, listen, give, pickUp}
)

func values(ws []word.Word) []string {
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = w.Value()
	}
	return out
}

func TestNewSentenceGenerator_EmptyLists(t *testing.T) {
	t.Parallel()

	_, err := NewSentenceGenerator(nil, testNouns, NewRand(1))
	assert.ErrorIs(t, err, domain.ErrConfiguration)

	_, err = NewSentenceGenerator(testVerbs, nil, NewRand(1))
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestPick(t *testing.T) {
	t.Parallel()

	choices := []Weighted[string]{{"a", 3}, {"b", 1}, {"skip", 0}, {"c", 1}}
	tests := []struct {
		draw int
		want string
	}{
		{0, "a"}, {2, "a"}, {3, "b"}, {4, "c"},
	}
	for _, tt := range tests {
		rng := &scriptedRand{ints: []int{tt.draw}}
		assert.Equal(t, tt.want, Pick(rng, choices...), "draw %d", tt.draw)
	}

	assert.Panics(t, func() { Pick(NewRand(1), Weighted[int]{1, 0}) })
}

func TestChance_Clamps(t *testing.T) {
	t.Parallel()

	rng := NewRand(7)
	for range 50 {
		assert.True(t, Chance(rng, 1.5))
		assert.False(t, Chance(rng, -0.5))
	}
	assert.Equal(t, 0.25, Clamp(0.25))
}

func TestPredicateFor_Arrangement(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		tmpl   lexicon.VerbTemplate
		p      float64
		floats []float64
		ints   []int
		want   []string
	}{
		{
			name: "transitive",
			tmpl: like, p: 0,
			floats: []float64{0.5}, ints: []int{1, 0},
			want: []string{"like", "cat", "."},
		},
		{
			name: "intransitive exclamation",
			tmpl: sleep, p: 0,
			ints: []int{2},
			want: []string{"sleep", "!"},
		},
		{
			name: "preposition before object",
			tmpl: listen, p: 0,
			floats: []float64{0.5}, ints: []int{0, 1},
			want: []string{"listen", "to", "dog", "."},
		},
		{
			name: "inserted preposition with distinct objects",
			tmpl: give, p: 0,
			floats: []float64{0.5, 0.5, 0.5}, ints: []int{0, 0, 1, 0},
			want: []string{"give", "dog", "to", "cat", "."},
		},
		{
			name: "particle after pronoun object",
			tmpl: pickUp, p: 1,
			floats: []float64{0.5}, ints: []int{2, 0},
			want: []string{"pick", "him", "up", "."},
		},
		{
			name: "particle before noun object",
			tmpl: pickUp, p: 0,
			floats: []float64{0.5}, ints: []int{2, 0},
			want: []string{"pick", "up", "bird", "."},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rng := &scriptedRand{floats: tt.floats, ints: tt.ints}
			g, err := NewSentenceGenerator(testVerbs, testNouns, rng)
			require.NoError(t, err)

			got := g.PredicateFor(tt.tmpl, tt.p)
			assert.Equal(t, tt.want, values(got))
		})
	}
}

func TestPredicate_SecondObjectNeverPronoun(t *testing.T) {
	t.Parallel()

	g, err := NewSentenceGenerator([]lexicon.VerbTemplate{give}, testNouns, NewRand(3))
	require.NoError(t, err)

	for range 200 {
		pred := g.Predicate(1)
		// give, obj1, to, obj2, punct
		require.Len(t, pred, 5)
		assert.Equal(t, word.KindPronoun, pred[1].Kind())
		assert.Equal(t, word.KindNoun, pred[3].Kind())
	}
}

func TestSubjectAndObjectForms(t *testing.T) {
	t.Parallel()

	g, err := NewSentenceGenerator(testVerbs, testNouns, NewRand(11))
	require.NoError(t, err)

	for range 100 {
		s, ok := g.Subject(1).(word.Pronoun)
		require.True(t, ok)
		assert.False(t, s.IsObjectForm())

		o, ok := g.Object(1).(word.Pronoun)
		require.True(t, ok)
		assert.True(t, o.IsObjectForm())

		assert.Equal(t, word.KindNoun, g.Subject(0).Kind())
	}
}

func TestSentence_StartsWithSubject(t *testing.T) {
	t.Parallel()

	g, err := NewSentenceGenerator(testVerbs, testNouns, NewRand(5))
	require.NoError(t, err)

	for range 50 {
		s := g.Sentence(0.5)
		assert.Equal(t, 1, s.VerbIndex())
		assert.Equal(t, 0, s.SubjectIndex())
		last, ok := s.Last().(word.Punctuation)
		require.True(t, ok)
		assert.True(t, last.EndsSentence())
	}
}

func TestCollides(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b word.Word
		want bool
	}{
		{"same noun", word.NewNoun("dog"), word.NewNoun("dog"), true},
		{"different nouns", word.NewNoun("dog"), word.NewNoun("cat"), false},
		{"pronoun case pair", word.I, word.Me, true},
		{"different pronouns", word.He, word.She, false},
		{"noun and pronoun", word.NewNoun("it"), word.It, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Collides(tt.a, tt.b), tt.name)
	}
}

// --- paragraphs ---

func newParagraphGenerator(t *testing.T, seed int64, nouns []word.Noun) *ParagraphGenerator {
	t.Helper()
	g, err := NewSentenceGenerator(testVerbs, nouns, NewRand(seed))
	require.NoError(t, err)
	return NewParagraphGenerator(g)
}

func TestParagraph_PoolSizeTooLarge(t *testing.T) {
	t.Parallel()

	g := newParagraphGenerator(t, 1, testNouns[:2])
	_, err := g.Paragraph(Options{Mode: ModePool, Sentences: 3, PoolSize: 3, PronounProbability: 0})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrPoolSize))
	assert.True(t, errors.Is(err, domain.ErrConfiguration))

	// two nouns plus seven pronouns cannot fill ten slots
	_, err = g.SubjectPool(10, 0.5)
	assert.ErrorIs(t, err, domain.ErrPoolSize)
}

func TestParagraph_SubjectAlwaysCollides(t *testing.T) {
	t.Parallel()

	newGen := func() *ParagraphGenerator {
		sg, err := NewSentenceGenerator([]lexicon.VerbTemplate{like}, []word.Noun{word.NewNoun("dog")}, NewRand(7))
		require.NoError(t, err)
		return NewParagraphGenerator(sg)
	}

	// the only subject is also the only possible object
	_, err := newGen().Paragraph(Options{Mode: ModePool, Sentences: 2, PoolSize: 1, PronounProbability: 0})
	assert.ErrorIs(t, err, domain.ErrPoolSize)

	g := newGen()
	p, err := g.Paragraph(Options{Mode: ModeChain, Sentences: 3, PronounProbability: 0})
	require.NoError(t, err)
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, 3, g.Fallbacks())
	for _, s := range p.Sentences() {
		assert.Equal(t, []string{"dog", "like", "dog"}, values(s.Words()[:3]))
	}
}

func TestParagraph_PoolMode(t *testing.T) {
	t.Parallel()

	opts := Options{Mode: ModePool, Sentences: 6, PoolSize: 2, PronounProbability: 0.3}
	p, err := newParagraphGenerator(t, 42, testNouns).Paragraph(opts)
	require.NoError(t, err)

	assert.Equal(t, 6, p.Len())
	assert.True(t, p.Tags().Has(tags.Raw))

	subjects := map[string]bool{}
	for _, s := range p.Sentences() {
		subject, ok := s.Subject()
		require.True(t, ok)
		subjects[subject.Value()] = true
		words := s.Words()
		assert.False(t, CollidesAny(words[1:], subject), s.String())
	}
	assert.LessOrEqual(t, len(subjects), 2)
}

func TestSubjectPool_Distinct(t *testing.T) {
	t.Parallel()

	g := newParagraphGenerator(t, 9, testNouns)
	pool, err := g.SubjectPool(8, 0.7)
	require.NoError(t, err)
	require.Len(t, pool, 8)
	for i, w := range pool {
		assert.False(t, CollidesAny(pool[:i], w))
	}
}

func TestParagraph_ChainMode(t *testing.T) {
	t.Parallel()

	for seed := int64(0); seed < 20; seed++ {
		p, err := newParagraphGenerator(t, seed, testNouns).Paragraph(Options{
			Mode: ModeChain, Sentences: 5, PronounProbability: 0.4,
		})
		require.NoError(t, err)
		require.Equal(t, 5, p.Len())

		for i := 1; i < p.Len(); i++ {
			prev := p.Sentence(i - 1)
			penultimate := prev.Get(prev.Len() - 2)
			subject := p.Sentence(i).Get(0)
			switch w := penultimate.(type) {
			case word.Noun:
				assert.Equal(t, w, subject)
			case word.Pronoun:
				assert.Equal(t, w.SubjectForm(), subject)
			}
		}
	}
}

func TestParagraph_Deterministic(t *testing.T) {
	t.Parallel()

	for _, mode := range []Mode{ModePool, ModeChain} {
		opts := Options{Mode: mode, Sentences: 4, PoolSize: 3, PronounProbability: 0.5}
		a, err := newParagraphGenerator(t, 2024, testNouns).Paragraph(opts)
		require.NoError(t, err)
		b, err := newParagraphGenerator(t, 2024, testNouns).Paragraph(opts)
		require.NoError(t, err)
		assert.True(t, a.Equal(b), mode.String())
	}
}

func TestParagraph_InvalidOptions(t *testing.T) {
	t.Parallel()

	g := newParagraphGenerator(t, 1, testNouns)

	_, err := g.Paragraph(Options{Mode: "spiral", Sentences: 1})
	assert.ErrorIs(t, err, domain.ErrConfiguration)

	_, err = g.Paragraph(Options{Mode: ModeChain, Sentences: 0})
	assert.ErrorIs(t, err, domain.ErrConfiguration)

	_, err = g.Paragraph(Options{Mode: ModePool, Sentences: 1, PoolSize: 0})
	assert.ErrorIs(t, err, domain.ErrConfiguration)

	assert.True(t, ModePool.IsValid())
	assert.False(t, Mode("spiral").IsValid())
}
