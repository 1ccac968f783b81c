package word

import (
	"strings"

	"github.com/heartmarshall/myenglish-errorgen/internal/tags"
)

// Pronoun is a personal pronoun that knows both of its case forms.
type Pronoun struct {
	subject    string
	object     string
	objectCase bool
	capital    bool
	tags       tags.Set
}

var _ Word = Pronoun{}

// Subject-case pronouns.
var (
	I    = Pronoun{subject: "I", object: "me", tags: tags.New(tags.FirstPerson)}
	You  = Pronoun{subject: "you", object: "you"}
	He   = Pronoun{subject: "he", object: "him", tags: tags.New(tags.ThirdPerson)}
	She  = Pronoun{subject: "she", object: "her", tags: tags.New(tags.ThirdPerson)}
	It   = Pronoun{subject: "it", object: "it", tags: tags.New(tags.ThirdPerson)}
	We   = Pronoun{subject: "we", object: "us", tags: tags.New(tags.FirstPerson, tags.Plural)}
	They = Pronoun{subject: "they", object: "them", tags: tags.New(tags.Plural)}
)

// Object-case pronouns.
var (
	Me   = I.ObjectForm()
	Him  = He.ObjectForm()
	Her  = She.ObjectForm()
	Us   = We.ObjectForm()
	Them = They.ObjectForm()
)

// Pronouns lists every pronoun in subject case.
func Pronouns() []Pronoun {
	return []Pronoun{I, You, He, She, It, We, They}
}

func (p Pronoun) Kind() Kind                  { return KindPronoun }
func (p Pronoun) Tags() tags.Set              { return p.tags }
func (p Pronoun) HasTags(ts ...tags.Tag) bool { return p.tags.Has(ts...) }
func (p Pronoun) sealed()                     {}

func (p Pronoun) Value() string {
	if p.objectCase {
		return applyCase(p.object, p.capital)
	}
	return applyCase(p.subject, p.capital)
}

// SubjectForm returns the nominative form ("he").
func (p Pronoun) SubjectForm() Pronoun {
	p.objectCase = false
	return p
}

// ObjectForm returns the accusative form ("him").
func (p Pronoun) ObjectForm() Pronoun {
	p.objectCase = true
	return p
}

func (p Pronoun) IsObjectForm() bool { return p.objectCase }

// HasDistinctCases is false for "you" and "it", whose two forms coincide.
func (p Pronoun) HasDistinctCases() bool {
	return !strings.EqualFold(p.subject, p.object)
}

// IsPair reports whether p and other are the same pronoun regardless of case
// form, capitalization or markup ("I" and "me" pair).
func (p Pronoun) IsPair(other Pronoun) bool {
	return strings.EqualFold(p.subject, other.subject)
}

func (p Pronoun) Capitalize() Word {
	p.capital = true
	return p
}

func (p Pronoun) DeCapitalize() Word {
	p.capital = false
	return p
}

func (p Pronoun) Bold() Word {
	p.tags = p.tags.Add(tags.Bold)
	return p
}

func (p Pronoun) String() string { return p.Value() }
