package sentence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/myenglish-errorgen/internal/tags"
	"github.com/heartmarshall/myenglish-errorgen/internal/word"
)

func dogLikesCat() Sentence {
	return New(word.NewNoun("dog"), word.NewVerb("like"), word.NewNoun("cat"), word.Period)
}

func TestSentence_MutatorsReturnNewValues(t *testing.T) {
	t.Parallel()

	s := dogLikesCat()

	set := s.Set(0, word.He)
	ins := s.Insert(2, word.New("really"))
	del := s.Delete(2)

	assert.Equal(t, "dog like cat .", s.String())
	assert.Equal(t, "he like cat .", set.String())
	assert.Equal(t, "dog like really cat .", ins.String())
	assert.Equal(t, "dog like .", del.String())
	assert.Equal(t, 4, s.Len())
}

func TestSentence_InsertAtEnds(t *testing.T) {
	t.Parallel()

	s := New(word.New("b"))
	assert.Equal(t, "a b", s.Insert(0, word.New("a")).String())
	assert.Equal(t, "b c d", s.Insert(1, word.New("c"), word.New("d")).String())
}

func TestSentence_NewCopiesInput(t *testing.T) {
	t.Parallel()

	words := []word.Word{word.New("a"), word.New("b")}
	s := New(words...)
	words[0] = word.New("z")
	assert.Equal(t, "a", s.Get(0).Value())

	out := s.Words()
	out[1] = word.New("z")
	assert.Equal(t, "b", s.Get(1).Value())
}

func TestSentence_VerbAndSubjectIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		sentence    Sentence
		wantVerb    int
		wantSubject int
	}{
		{"simple", dogLikesCat(), 1, 0},
		{"be verb", New(word.He, word.NewBeVerb(), word.Period), 1, 0},
		{"first verb wins", New(word.He, word.NewBeVerb(), word.NewVerb("play"), word.Period), 1, 0},
		{"no verb", New(word.NewNoun("dog"), word.Period), -1, -1},
		{"verb first", New(word.NewVerb("run"), word.Exclamation), 0, -1},
		{"empty", New(), -1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantVerb, tt.sentence.VerbIndex())
			assert.Equal(t, tt.wantSubject, tt.sentence.SubjectIndex())
		})
	}
}

func TestSentence_SubjectAndLast(t *testing.T) {
	t.Parallel()

	subj, ok := dogLikesCat().Subject()
	require.True(t, ok)
	assert.Equal(t, word.Word(word.NewNoun("dog")), subj)

	_, ok = New(word.Period).Subject()
	assert.False(t, ok)

	assert.Equal(t, word.Word(word.Period), dogLikesCat().Last())
	assert.Nil(t, New().Last())
}

func TestSentence_MapAndAll(t *testing.T) {
	t.Parallel()

	s := dogLikesCat().Map(func(i int, w word.Word) word.Word {
		if i == 0 {
			return w.Capitalize()
		}
		return w
	})
	assert.Equal(t, "Dog like cat .", s.String())

	var idx []int
	for i := range s.All() {
		idx = append(idx, i)
		if i == 1 {
			break
		}
	}
	assert.Equal(t, []int{0, 1}, idx)
}

func TestSentence_Equal(t *testing.T) {
	t.Parallel()

	assert.True(t, dogLikesCat().Equal(dogLikesCat()))
	assert.False(t, dogLikesCat().Equal(dogLikesCat().Delete(0)))
	assert.False(t, dogLikesCat().Equal(dogLikesCat().Set(0, word.NewNoun("dog").Bold())))
}

func TestParagraph_FindAndSet(t *testing.T) {
	t.Parallel()

	p := NewParagraph([]Sentence{
		dogLikesCat(),
		New(word.NewNoun("cat"), word.NewVerb("chase"), word.NewNoun("dog"), word.Period),
	}, tags.Raw)

	assert.Equal(t, []Position{{0, 0}, {1, 2}}, p.Find(word.NewNoun("dog")))
	assert.Empty(t, p.Find(word.NewNoun("cow")))

	q := p.Set(1, 2, word.Him)
	assert.Equal(t, []Position{{0, 0}}, q.Find(word.NewNoun("dog")))
	assert.Equal(t, []Position{{0, 0}, {1, 2}}, p.Find(word.NewNoun("dog")))
	assert.Equal(t, word.Word(word.Him), q.Get(Position{Sentence: 1, Word: 2}))
	assert.True(t, q.Tags().Has(tags.Raw))
}

func TestParagraph_IndexedAllWords(t *testing.T) {
	t.Parallel()

	p := NewParagraph([]Sentence{New(word.I, word.Period), New(word.You, word.Exclamation)})

	var got []Position
	for pos := range p.IndexedAllWords() {
		got = append(got, pos)
	}
	assert.Equal(t, []Position{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, got)
	assert.Equal(t, 4, p.WordCount())
}

func TestParagraph_TagsAreImmutable(t *testing.T) {
	t.Parallel()

	p := NewParagraph([]Sentence{dogLikesCat()}, tags.Raw)
	g := p.WithTags(tags.New(tags.Grammatical, tags.SimplePresent))

	assert.Equal(t, tags.New(tags.Raw), p.Tags())
	assert.Equal(t, tags.New(tags.Grammatical, tags.SimplePresent), g.Tags())
	assert.Equal(t, tags.New(tags.Raw, tags.HasPlurals), p.AddTags(tags.HasPlurals).Tags())
	assert.False(t, p.Equal(g))
	assert.True(t, p.Equal(NewParagraph([]Sentence{dogLikesCat()}, tags.Raw)))
}

func TestParagraph_SetSentenceLeavesOriginal(t *testing.T) {
	t.Parallel()

	p := NewParagraph([]Sentence{dogLikesCat()})
	q := p.SetSentence(0, New(word.It, word.NewVerb("rain"), word.Period))

	assert.Equal(t, "dog like cat .", p.Sentence(0).String())
	assert.Equal(t, "it rain .", q.Sentence(0).String())
	assert.Equal(t, "(1, 2)", Position{1, 2}.String())
}
