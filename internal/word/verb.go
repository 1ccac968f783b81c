package word

import (
	"strings"

	"github.com/heartmarshall/myenglish-errorgen/internal/tags"
)

// Verb is a main verb. Tense, person and negation are tags; the surface value
// is composed from the infinitive on demand.
type Verb struct {
	infinitive    string
	irregularPast string
	capital       bool
	tags          tags.Set
}

var _ Word = Verb{}

// NewVerb returns a verb with a regular -ed past.
func NewVerb(infinitive string) Verb {
	return Verb{infinitive: infinitive}
}

// NewIrregularVerb returns a verb with an explicit past form.
func NewIrregularVerb(infinitive, past string) Verb {
	return Verb{infinitive: infinitive, irregularPast: past}
}

func (v Verb) Kind() Kind                  { return KindVerb }
func (v Verb) Tags() tags.Set              { return v.tags }
func (v Verb) HasTags(ts ...tags.Tag) bool { return v.tags.Has(ts...) }
func (v Verb) sealed()                     {}

func (v Verb) Infinitive() string    { return v.infinitive }
func (v Verb) IrregularPast() string { return v.irregularPast }

// ThirdPerson marks present-tense third person singular agreement. Applied to
// a past verb it produces the doubly inflected form ("playeds").
func (v Verb) ThirdPerson() Verb {
	v.tags = v.tags.Add(tags.ThirdPerson)
	return v
}

// PastTense marks the verb past and drops third person marking.
func (v Verb) PastTense() Verb {
	v.tags = v.tags.Remove(tags.ThirdPerson).Add(tags.Past)
	return v
}

// Negative adds do-support negation ("don't play").
func (v Verb) Negative() Verb {
	v.tags = v.tags.Add(tags.Negative)
	return v
}

// Positive removes negation.
func (v Verb) Positive() Verb {
	v.tags = v.tags.Remove(tags.Negative)
	return v
}

// ToBaseVerb returns the bare infinitive.
func (v Verb) ToBaseVerb() Verb {
	return Verb{infinitive: v.infinitive, irregularPast: v.irregularPast}
}

func (v Verb) Value() string {
	past := v.tags.Has(tags.Past)
	third := v.tags.Has(tags.ThirdPerson)

	var out string
	if v.tags.Has(tags.Negative) {
		switch {
		case past && third:
			out = "didn't " + thirdPersonForm(v.infinitive)
		case past:
			out = "didn't " + v.infinitive
		case third:
			out = "doesn't " + v.infinitive
		default:
			out = "don't " + v.infinitive
		}
	} else {
		switch {
		case past && third:
			out = v.pastForm() + "s"
		case past:
			out = v.pastForm()
		case third:
			out = thirdPersonForm(v.infinitive)
		default:
			out = v.infinitive
		}
	}
	return applyCase(out, v.capital)
}

func (v Verb) pastForm() string {
	if v.irregularPast != "" {
		return v.irregularPast
	}
	return regularPast(v.infinitive)
}

func (v Verb) Capitalize() Word {
	v.capital = true
	return v
}

func (v Verb) DeCapitalize() Word {
	v.capital = false
	return v
}

func (v Verb) Bold() Word {
	v.tags = v.tags.Add(tags.Bold)
	return v
}

func (v Verb) String() string { return v.Value() }

func thirdPersonForm(infinitive string) string {
	lower := strings.ToLower(infinitive)
	switch {
	case lower == "have":
		return infinitive[:2] + "s"
	case hasAnySuffix(lower, "s", "x", "z", "ch", "sh", "o"):
		return infinitive + "es"
	case len(lower) > 1 && lower[len(lower)-1] == 'y' && !isVowel(lower[len(lower)-2]):
		return infinitive[:len(infinitive)-1] + "ies"
	}
	return infinitive + "s"
}

func regularPast(infinitive string) string {
	lower := strings.ToLower(infinitive)
	switch {
	case infinitive == "":
		return infinitive
	case strings.HasSuffix(lower, "e"):
		return infinitive + "d"
	case len(lower) > 1 && lower[len(lower)-1] == 'y' && !isVowel(lower[len(lower)-2]):
		return infinitive[:len(infinitive)-1] + "ied"
	}
	return infinitive + "ed"
}
