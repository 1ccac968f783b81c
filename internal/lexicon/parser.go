package lexicon

import (
	"embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/heartmarshall/myenglish-errorgen/internal/domain"
	"github.com/heartmarshall/myenglish-errorgen/internal/word"
)

//go:embed data/*.csv
var defaultFS embed.FS

// NounKind selects the constructor used for noun rows.
type NounKind string

const (
	NounKindCountable   NounKind = "COUNTABLE"
	NounKindUncountable NounKind = "UNCOUNTABLE"
	NounKindProper      NounKind = "PROPER"
)

func (k NounKind) String() string { return string(k) }

func (k NounKind) IsValid() bool {
	switch k {
	case NounKindCountable, NounKindUncountable, NounKindProper:
		return true
	}
	return false
}

const defaultObjectCount = 1

// Paths points at word-list files. An empty path selects the embedded list.
type Paths struct {
	Nouns       string
	Uncountable string
	Proper      string
	Verbs       string
}

// Load reads all word lists. Files that are not configured fall back to the
// embedded defaults.
func Load(paths Paths) (Lexicon, error) {
	var (
		lex Lexicon
		err error
	)
	if lex.Nouns, err = loadNouns(paths.Nouns, "data/nouns.csv", NounKindCountable); err != nil {
		return Lexicon{}, err
	}
	if lex.Uncountable, err = loadNouns(paths.Uncountable, "data/uncountable.csv", NounKindUncountable); err != nil {
		return Lexicon{}, err
	}
	if lex.Proper, err = loadNouns(paths.Proper, "data/proper.csv", NounKindProper); err != nil {
		return Lexicon{}, err
	}

	r, name, closeFn, err := open(paths.Verbs, "data/verbs.csv")
	if err != nil {
		return Lexicon{}, err
	}
	defer closeFn()
	if lex.Verbs, err = ParseVerbs(r, name); err != nil {
		return Lexicon{}, fmt.Errorf("parse verbs: %w", err)
	}
	return lex, nil
}

// Default returns the embedded word lists.
func Default() (Lexicon, error) {
	return Load(Paths{})
}

func loadNouns(path, fallback string, kind NounKind) ([]word.Noun, error) {
	r, name, closeFn, err := open(path, fallback)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	nouns, err := ParseNouns(r, name, kind)
	if err != nil {
		return nil, fmt.Errorf("parse %s nouns: %w", strings.ToLower(kind.String()), err)
	}
	return nouns, nil
}

func open(path, fallback string) (io.Reader, string, func(), error) {
	if path == "" {
		f, err := defaultFS.Open(fallback)
		if err != nil {
			return nil, "", nil, fmt.Errorf("open embedded %s: %w", fallback, err)
		}
		return f, fallback, func() { f.Close() }, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, "", nil, fmt.Errorf("open word list: %w", err)
	}
	return f, path, func() { f.Close() }, nil
}

func newReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // allow variable column count
	reader.Comment = '#'
	reader.TrimLeadingSpace = true
	return reader
}

// field returns the trimmed i-th column, treating "null" as empty.
func field(record []string, i int) string {
	if i >= len(record) {
		return ""
	}
	v := strings.TrimSpace(record[i])
	if strings.EqualFold(v, "null") {
		return ""
	}
	return v
}

func rowError(name string, reader *csv.Reader, msg string) error {
	line, _ := reader.FieldPos(0)
	return domain.NewValidationError(fmt.Sprintf("%s:%d", name, line), msg)
}

// ParseNouns reads rows of "value[, irregularPlural]". Blank lines and lines
// starting with '#' are ignored. name is used in error messages.
func ParseNouns(r io.Reader, name string, kind NounKind) ([]word.Noun, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("unknown noun kind %q", kind)
	}
	reader := newReader(r)

	var nouns []word.Noun
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		value := field(record, 0)
		if value == "" {
			continue
		}
		if len(record) > 2 {
			return nil, rowError(name, reader, fmt.Sprintf("expected at most 2 columns, got %d", len(record)))
		}
		plural := field(record, 1)

		var n word.Noun
		switch kind {
		case NounKindCountable:
			n = word.NewIrregularNoun(value, plural)
		case NounKindUncountable:
			n = word.NewUncountableNoun(value)
		case NounKindProper:
			n = word.NewProperNoun(value)
		}
		nouns = append(nouns, n)
	}
	return nouns, nil
}

// ParseVerbs reads rows of
// "infinitive[, irregularPast][, preposition][, objectCount][, insertPreposition][, particle]".
// Missing, empty or "null" columns take their defaults: regular past, no
// preposition, one object, no insertion, no particle. The infinitive "be"
// yields the copula.
func ParseVerbs(r io.Reader, name string) ([]VerbTemplate, error) {
	reader := newReader(r)

	var verbs []VerbTemplate
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		infinitive := field(record, 0)
		if infinitive == "" {
			continue
		}
		if len(record) > 6 {
			return nil, rowError(name, reader, fmt.Sprintf("expected at most 6 columns, got %d", len(record)))
		}

		tmpl := VerbTemplate{
			Preposition: field(record, 2),
			Particle:    field(record, 5),
			Objects:     defaultObjectCount,
		}

		if raw := field(record, 3); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 || n > 2 {
				return nil, rowError(name, reader, fmt.Sprintf("object count must be 0, 1 or 2 (got %q)", raw))
			}
			tmpl.Objects = n
		}
		if raw := field(record, 4); raw != "" {
			b, err := strconv.ParseBool(strings.ToLower(raw))
			if err != nil {
				return nil, rowError(name, reader, fmt.Sprintf("insert preposition must be a boolean (got %q)", raw))
			}
			tmpl.InsertPreposition = b
		}

		if strings.EqualFold(infinitive, "be") {
			tmpl.Verb = word.NewBeVerb()
		} else {
			tmpl.Verb = word.NewIrregularVerb(infinitive, field(record, 1))
		}
		verbs = append(verbs, tmpl)
	}
	return verbs, nil
}
