package word

import "github.com/heartmarshall/myenglish-errorgen/internal/tags"

// Punctuation attaches to the preceding word when text is assembled.
type Punctuation struct {
	value string
	tags  tags.Set
}

var _ Word = Punctuation{}

var (
	Period      = Punctuation{value: "."}
	Exclamation = Punctuation{value: "!"}
	Question    = Punctuation{value: "?"}
	Comma       = Punctuation{value: ","}
)

func (p Punctuation) Kind() Kind                  { return KindPunctuation }
func (p Punctuation) Value() string               { return p.value }
func (p Punctuation) Tags() tags.Set              { return p.tags }
func (p Punctuation) HasTags(ts ...tags.Tag) bool { return p.tags.Has(ts...) }
func (p Punctuation) sealed()                     {}

func (p Punctuation) Capitalize() Word   { return p }
func (p Punctuation) DeCapitalize() Word { return p }

func (p Punctuation) Bold() Word {
	p.tags = p.tags.Add(tags.Bold)
	return p
}

// IsComma ignores markup.
func (p Punctuation) IsComma() bool { return p.value == Comma.value }

// EndsSentence is true for period, exclamation and question marks.
func (p Punctuation) EndsSentence() bool {
	return p.value == Period.value || p.value == Exclamation.value || p.value == Question.value
}

func (p Punctuation) String() string { return p.value }
