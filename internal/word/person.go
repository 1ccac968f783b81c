package word

import "github.com/heartmarshall/myenglish-errorgen/internal/tags"

// IsThirdPersonSingular reports whether a subject takes -s agreement in the
// simple present: singular nouns (including proper and uncountable ones) and
// he/she/it.
func IsThirdPersonSingular(w Word) bool {
	switch v := w.(type) {
	case Noun:
		return !v.HasTags(tags.Plural)
	case Pronoun:
		return v.HasTags(tags.ThirdPerson)
	}
	return false
}

// IsFirstPersonSingular is true only for I/me.
func IsFirstPersonSingular(w Word) bool {
	p, ok := w.(Pronoun)
	return ok && p.HasTags(tags.FirstPerson) && !p.HasTags(tags.Plural)
}

// Unbold strips the BOLD marker from any word.
func Unbold(w Word) Word {
	if !w.HasTags(tags.Bold) {
		return w
	}
	switch v := w.(type) {
	case Basic:
		v.tags = v.tags.Remove(tags.Bold)
		return v
	case Noun:
		v.tags = v.tags.Remove(tags.Bold)
		return v
	case Verb:
		v.tags = v.tags.Remove(tags.Bold)
		return v
	case BeVerb:
		v.tags = v.tags.Remove(tags.Bold)
		return v
	case Pronoun:
		v.tags = v.tags.Remove(tags.Bold)
		return v
	case Punctuation:
		v.tags = v.tags.Remove(tags.Bold)
		return v
	}
	return w
}

// IsCapitalized reports whether the surface value starts with an upper-case
// letter.
func IsCapitalized(w Word) bool {
	v := w.Value()
	return v != "" && upperFirst(v) == v && lowerFirst(v) != v
}
