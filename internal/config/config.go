package config

// Config is the root application configuration.
type Config struct {
	Paragraph ParagraphConfig `yaml:"paragraph"`
	Grammar   GrammarConfig   `yaml:"grammar"`
	Errors    ErrorsConfig    `yaml:"errors"`
	WordLists WordListsConfig `yaml:"word_lists"`
	Log       LogConfig       `yaml:"log"`
	// Seed fixes the random source. Zero picks a time-based seed per run.
	Seed int64 `yaml:"seed" env:"ERRORGEN_SEED" env-default:"0"`
}

// ParagraphConfig controls raw paragraph generation.
type ParagraphConfig struct {
	Mode               string  `yaml:"mode"                env:"PARAGRAPH_MODE"                env-default:"chain"`
	Sentences          int     `yaml:"sentences"           env:"PARAGRAPH_SENTENCES"           env-default:"5"`
	PoolSize           int     `yaml:"pool_size"           env:"PARAGRAPH_POOL_SIZE"           env-default:"3"`
	PronounProbability float64 `yaml:"pronoun_probability" env:"PARAGRAPH_PRONOUN_PROBABILITY"`
}

// GrammarConfig controls tense, number and negation.
type GrammarConfig struct {
	Tense               string  `yaml:"tense"                env:"GRAMMAR_TENSE"                env-default:"present"`
	PluralProbability   float64 `yaml:"plural_probability"   env:"GRAMMAR_PLURAL_PROBABILITY"`
	NegativeProbability float64 `yaml:"negative_probability" env:"GRAMMAR_NEGATIVE_PROBABILITY"`
}

// ErrorsConfig holds per-category error probabilities. A zero probability
// turns the category off.
type ErrorsConfig struct {
	Noun        float64 `yaml:"noun"        env:"ERRORS_NOUN"`
	Pronoun     float64 `yaml:"pronoun"     env:"ERRORS_PRONOUN"`
	Verb        float64 `yaml:"verb"        env:"ERRORS_VERB"`
	IsDo        float64 `yaml:"is_do"       env:"ERRORS_IS_DO"`
	Preposition float64 `yaml:"preposition" env:"ERRORS_PREPOSITION"`
	Punctuation float64 `yaml:"punctuation" env:"ERRORS_PUNCTUATION"`
}

// WordListsConfig points at CSV word lists. Empty paths use the built-in lists.
type WordListsConfig struct {
	Nouns       string `yaml:"nouns"       env:"WORD_LISTS_NOUNS"`
	Uncountable string `yaml:"uncountable" env:"WORD_LISTS_UNCOUNTABLE"`
	Proper      string `yaml:"proper"      env:"WORD_LISTS_PROPER"`
	Verbs       string `yaml:"verbs"       env:"WORD_LISTS_VERBS"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// defaults presets the probability fields. They carry no env-default tag
// because cleanenv applies env-default to any zero field, which would turn an
// explicit 0 from YAML back into the default.
func defaults() Config {
	return Config{
		Paragraph: ParagraphConfig{PronounProbability: 0.3},
		Grammar:   GrammarConfig{PluralProbability: 0.3, NegativeProbability: 0.3},
		Errors: ErrorsConfig{
			Noun:        0.3,
			Pronoun:     0.3,
			Verb:        0.3,
			IsDo:        0.1,
			Preposition: 0.2,
			Punctuation: 0.2,
		},
	}
}
