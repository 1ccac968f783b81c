package word

import "github.com/heartmarshall/myenglish-errorgen/internal/tags"

// BeVerb is the copula. Its person is one of FIRST_PERSON (am), THIRD_PERSON
// (is) or PLURAL (are); with no person tag it renders as the infinitive "be".
type BeVerb struct {
	capital bool
	tags    tags.Set
}

var _ Word = BeVerb{}

var personTags = []tags.Tag{tags.FirstPerson, tags.ThirdPerson, tags.Plural}

// NewBeVerb returns the infinitive copula.
func NewBeVerb() BeVerb { return BeVerb{} }

func (b BeVerb) Kind() Kind                  { return KindBeVerb }
func (b BeVerb) Tags() tags.Set              { return b.tags }
func (b BeVerb) HasTags(ts ...tags.Tag) bool { return b.tags.Has(ts...) }
func (b BeVerb) sealed()                     {}

// Infinitive is always "be".
func (b BeVerb) Infinitive() string { return "be" }

func (b BeVerb) withPerson(t tags.Tag) BeVerb {
	b.tags = b.tags.Remove(personTags...).Add(t)
	return b
}

// FirstPerson selects am/was.
func (b BeVerb) FirstPerson() BeVerb { return b.withPerson(tags.FirstPerson) }

// ThirdPerson selects is/was.
func (b BeVerb) ThirdPerson() BeVerb { return b.withPerson(tags.ThirdPerson) }

// PluralPerson selects are/were.
func (b BeVerb) PluralPerson() BeVerb { return b.withPerson(tags.Plural) }

func (b BeVerb) PastTense() BeVerb {
	b.tags = b.tags.Add(tags.Past)
	return b
}

func (b BeVerb) PresentTense() BeVerb {
	b.tags = b.tags.Remove(tags.Past)
	return b
}

func (b BeVerb) Negative() BeVerb {
	b.tags = b.tags.Add(tags.Negative)
	return b
}

// ToBaseVerb returns the bare "be".
func (b BeVerb) ToBaseVerb() BeVerb { return BeVerb{} }

func (b BeVerb) Value() string {
	neg := b.tags.Has(tags.Negative)
	var out string
	switch {
	case b.tags.Has(tags.Past) && b.tags.HasAny(tags.FirstPerson, tags.ThirdPerson):
		out = pick(neg, "wasn't", "was")
	case b.tags.Has(tags.Past):
		out = pick(neg, "weren't", "were")
	case b.tags.Has(tags.FirstPerson):
		out = pick(neg, "am not", "am")
	case b.tags.Has(tags.ThirdPerson):
		out = pick(neg, "isn't", "is")
	case b.tags.Has(tags.Plural):
		out = pick(neg, "aren't", "are")
	default:
		out = pick(neg, "not be", "be")
	}
	return applyCase(out, b.capital)
}

func pick(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}

func (b BeVerb) Capitalize() Word {
	b.capital = true
	return b
}

func (b BeVerb) DeCapitalize() Word {
	b.capital = false
	return b
}

func (b BeVerb) Bold() Word {
	b.tags = b.tags.Add(tags.Bold)
	return b
}

func (b BeVerb) String() string { return b.Value() }

// BeVerbFor conjugates the copula for subject. A nil subject is treated as
// third person singular.
func BeVerbFor(subject Word, past, negative bool) BeVerb {
	b := NewBeVerb()
	switch {
	case subject != nil && IsFirstPersonSingular(subject):
		b = b.FirstPerson()
	case subject == nil || IsThirdPersonSingular(subject):
		b = b.ThirdPerson()
	default:
		b = b.PluralPerson()
	}
	if past {
		b = b.PastTense()
	}
	if negative {
		b = b.Negative()
	}
	return b
}
