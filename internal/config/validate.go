package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/heartmarshall/myenglish-errorgen/internal/domain"
)

var (
	paragraphModes = []string{"pool", "chain"}
	tenses         = []string{"present", "past"}
	logLevels      = []string{"debug", "info", "warn", "error"}
	logFormats     = []string{"json", "text"}
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically. All problems
// are reported together in a domain.ValidationError.
func (c *Config) Validate() error {
	var errs []domain.FieldError
	add := func(field, format string, args ...any) {
		errs = append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if !slices.Contains(paragraphModes, c.Paragraph.Mode) {
		add("paragraph.mode", "must be one of %s (got %q)", strings.Join(paragraphModes, ", "), c.Paragraph.Mode)
	}
	if c.Paragraph.Sentences <= 0 {
		add("paragraph.sentences", "must be > 0 (got %d)", c.Paragraph.Sentences)
	}
	if c.Paragraph.Mode == "pool" && c.Paragraph.PoolSize <= 0 {
		add("paragraph.pool_size", "must be > 0 in pool mode (got %d)", c.Paragraph.PoolSize)
	}
	if !slices.Contains(tenses, c.Grammar.Tense) {
		add("grammar.tense", "must be one of %s (got %q)", strings.Join(tenses, ", "), c.Grammar.Tense)
	}
	if !slices.Contains(logLevels, strings.ToLower(c.Log.Level)) {
		add("log.level", "must be one of %s (got %q)", strings.Join(logLevels, ", "), c.Log.Level)
	}
	if !slices.Contains(logFormats, c.Log.Format) {
		add("log.format", "must be one of %s (got %q)", strings.Join(logFormats, ", "), c.Log.Format)
	}

	probabilities := []struct {
		field string
		value float64
	}{
		{"paragraph.pronoun_probability", c.Paragraph.PronounProbability},
		{"grammar.plural_probability", c.Grammar.PluralProbability},
		{"grammar.negative_probability", c.Grammar.NegativeProbability},
		{"errors.noun", c.Errors.Noun},
		{"errors.pronoun", c.Errors.Pronoun},
		{"errors.verb", c.Errors.Verb},
		{"errors.is_do", c.Errors.IsDo},
		{"errors.preposition", c.Errors.Preposition},
		{"errors.punctuation", c.Errors.Punctuation},
	}
	for _, p := range probabilities {
		if p.value < 0 || p.value > 1 {
			add(p.field, "must be within [0, 1] (got %v)", p.value)
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
