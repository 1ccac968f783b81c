package word

import (
	"strings"

	"github.com/heartmarshall/myenglish-errorgen/internal/tags"
)

// Noun is a single noun whose article and number are carried as tags over one
// lemma. The surface value is derived, so "a dog", "the dogs" and "dogs" are
// all the same Noun type with different tags.
type Noun struct {
	base            string
	irregularPlural string
	capital         bool
	tags            tags.Set
}

var _ Word = Noun{}

// NewNoun returns a countable noun with a regular plural.
func NewNoun(base string) Noun {
	return Noun{base: base}
}

// NewIrregularNoun returns a countable noun whose plural is given explicitly.
func NewIrregularNoun(base, plural string) Noun {
	return Noun{base: base, irregularPlural: plural}
}

// NewUncountableNoun returns a noun tagged UNCOUNTABLE.
func NewUncountableNoun(base string) Noun {
	return Noun{base: base, tags: tags.New(tags.Uncountable)}
}

// NewProperNoun returns a noun tagged PROPER. The name keeps its casing.
func NewProperNoun(name string) Noun {
	return Noun{base: name, tags: tags.New(tags.Proper)}
}

func (n Noun) Kind() Kind                  { return KindNoun }
func (n Noun) Tags() tags.Set              { return n.tags }
func (n Noun) HasTags(ts ...tags.Tag) bool { return n.tags.Has(ts...) }
func (n Noun) sealed()                     {}

// Base is the uninflected lemma.
func (n Noun) Base() string { return n.base }

// IrregularPlural is empty for regular nouns.
func (n Noun) IrregularPlural() string { return n.irregularPlural }

// IsCountable reports whether the noun takes articles and plural morphology
// in correct text.
func (n Noun) IsCountable() bool {
	return !n.tags.HasAny(tags.Proper, tags.Uncountable)
}

func (n Noun) Value() string {
	form := n.base
	if n.tags.Has(tags.Plural) {
		form = n.pluralForm()
	}
	switch {
	case n.tags.Has(tags.Definite):
		form = "the " + form
	case n.tags.Has(tags.Indefinite):
		form = indefiniteArticle(form) + " " + form
	}
	return applyCase(form, n.capital)
}

func (n Noun) pluralForm() string {
	if n.irregularPlural != "" {
		return n.irregularPlural
	}
	return regularPlural(n.base)
}

// Definite returns the noun with "the".
func (n Noun) Definite() Noun {
	n.tags = n.tags.Remove(tags.Indefinite).Add(tags.Definite)
	return n
}

// Indefinite returns the noun with "a"/"an".
func (n Noun) Indefinite() Noun {
	n.tags = n.tags.Remove(tags.Definite).Add(tags.Indefinite)
	return n
}

// Plural returns the plural noun. Any article is kept, so Indefinite().Plural()
// yields the learner error "a dogs".
func (n Noun) Plural() Noun {
	n.tags = n.tags.Add(tags.Plural)
	return n
}

// Singular drops plural number and keeps the article.
func (n Noun) Singular() Noun {
	n.tags = n.tags.Remove(tags.Plural)
	return n
}

// Bare drops any article and keeps number.
func (n Noun) Bare() Noun {
	n.tags = n.tags.Remove(tags.Definite, tags.Indefinite)
	return n
}

// ToBaseNoun strips articles, number, case and bold, keeping the lexical
// category tags PROPER and UNCOUNTABLE.
func (n Noun) ToBaseNoun() Noun {
	return Noun{
		base:            n.base,
		irregularPlural: n.irregularPlural,
		tags:            n.tags & tags.New(tags.Proper, tags.Uncountable),
	}
}

func (n Noun) Capitalize() Word {
	n.capital = true
	return n
}

func (n Noun) DeCapitalize() Word {
	n.capital = false
	return n
}

func (n Noun) Bold() Word {
	n.tags = n.tags.Add(tags.Bold)
	return n
}

func (n Noun) String() string { return n.Value() }

func indefiniteArticle(form string) string {
	if form == "" {
		return "a"
	}
	if strings.ContainsRune("aeiouAEIOU", rune(form[0])) {
		return "an"
	}
	return "a"
}

func isVowel(b byte) bool {
	return strings.IndexByte("aeiou", b) >= 0
}

func regularPlural(base string) string {
	lower := strings.ToLower(base)
	switch {
	case base == "":
		return base
	case hasAnySuffix(lower, "s", "x", "z", "ch", "sh"):
		return base + "es"
	case len(lower) > 1 && lower[len(lower)-1] == 'y' && !isVowel(lower[len(lower)-2]):
		return base[:len(base)-1] + "ies"
	}
	return base + "s"
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}
