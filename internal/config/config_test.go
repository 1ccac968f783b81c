package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/myenglish-errorgen/internal/domain"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "errorgen.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
paragraph:
  mode: "pool"
  sentences: 4
  pool_size: 2
  pronoun_probability: 0.5

grammar:
  tense: "past"
  plural_probability: 0.25
  negative_probability: 0.1

errors:
  noun: 1
  pronoun: 0.5
  verb: 0.4
  is_do: 0
  preposition: 0.2
  punctuation: 0.3

word_lists:
  verbs: "/data/verbs.csv"

log:
  level: "debug"
  format: "json"

seed: 42
`

func TestLoad_ValidYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ParagraphConfig{Mode: "pool", Sentences: 4, PoolSize: 2, PronounProbability: 0.5}, cfg.Paragraph)
	assert.Equal(t, GrammarConfig{Tense: "past", PluralProbability: 0.25, NegativeProbability: 0.1}, cfg.Grammar)
	assert.Equal(t, 1.0, cfg.Errors.Noun)
	assert.Equal(t, 0.0, cfg.Errors.IsDo)
	assert.Equal(t, "/data/verbs.csv", cfg.WordLists.Verbs)
	assert.Empty(t, cfg.WordLists.Nouns)
	assert.Equal(t, LogConfig{Level: "debug", Format: "json"}, cfg.Log)
	assert.Equal(t, int64(42), cfg.Seed)
}

func TestLoad_ZeroProbabilityKept(t *testing.T) {
	path := writeYAML(t, t.TempDir(), "errors:\n  noun: 0\n  verb: 0.5\ngrammar:\n  negative_probability: 0\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Zero(t, cfg.Errors.Noun)
	assert.Zero(t, cfg.Grammar.NegativeProbability)
	assert.Equal(t, 0.5, cfg.Errors.Verb)
	// fields absent from the file keep their defaults
	assert.Equal(t, 0.3, cfg.Errors.Pronoun)
	assert.Equal(t, 0.3, cfg.Grammar.PluralProbability)
}

func TestLoad_ZeroProbabilityFromEnv(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("ERRORS_NOUN", "0")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Zero(t, cfg.Errors.Noun)
}

func TestLoad_PathFromEnv(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv(PathEnv, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "pool", cfg.Paragraph.Mode)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(PathEnv, "")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "chain", cfg.Paragraph.Mode)
	assert.Equal(t, 5, cfg.Paragraph.Sentences)
	assert.Equal(t, 3, cfg.Paragraph.PoolSize)
	assert.Equal(t, "present", cfg.Grammar.Tense)
	assert.Equal(t, 0.1, cfg.Errors.IsDo)
	assert.Equal(t, 0.3, cfg.Errors.Noun)
	assert.Equal(t, 0.3, cfg.Paragraph.PronounProbability)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Zero(t, cfg.Seed)
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("PARAGRAPH_SENTENCES", "9")
	t.Setenv("GRAMMAR_TENSE", "present")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Paragraph.Sentences)
	assert.Equal(t, "present", cfg.Grammar.Tense)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := writeYAML(t, t.TempDir(), "grammar:\n  tense: future\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func validConfig() Config {
	return Config{
		Paragraph: ParagraphConfig{Mode: "chain", Sentences: 3, PronounProbability: 0.2},
		Grammar:   GrammarConfig{Tense: "present"},
		Errors:    ErrorsConfig{Noun: 0.5},
		Log:       LogConfig{Level: "INFO", Format: "text"},
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(c *Config)
		field  string
	}{
		{"valid", func(*Config) {}, ""},
		{"unknown mode", func(c *Config) { c.Paragraph.Mode = "spiral" }, "paragraph.mode"},
		{"no sentences", func(c *Config) { c.Paragraph.Sentences = 0 }, "paragraph.sentences"},
		{"pool without size", func(c *Config) { c.Paragraph.Mode = "pool"; c.Paragraph.PoolSize = 0 }, "paragraph.pool_size"},
		{"unknown tense", func(c *Config) { c.Grammar.Tense = "future" }, "grammar.tense"},
		{"probability above one", func(c *Config) { c.Errors.Verb = 1.5 }, "errors.verb"},
		{"negative probability", func(c *Config) { c.Grammar.PluralProbability = -0.1 }, "grammar.plural_probability"},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			var ve *domain.ValidationError
			require.True(t, errors.As(err, &ve))
			require.Len(t, ve.Errors, 1)
			assert.Equal(t, tt.field, ve.Errors[0].Field)
		})
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Paragraph.Sentences = -1
	cfg.Errors.Noun = 2
	cfg.Errors.Punctuation = -1

	var ve *domain.ValidationError
	require.True(t, errors.As(cfg.Validate(), &ve))
	assert.Len(t, ve.Errors, 3)
	assert.EqualError(t, ve, "validation: 3 errors")
}
