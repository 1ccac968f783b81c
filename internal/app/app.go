package app

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/heartmarshall/myenglish-errorgen/internal/config"
	"github.com/heartmarshall/myenglish-errorgen/internal/errormaker"
	"github.com/heartmarshall/myenglish-errorgen/internal/exercise"
	"github.com/heartmarshall/myenglish-errorgen/internal/generate"
	"github.com/heartmarshall/myenglish-errorgen/internal/grammar"
	"github.com/heartmarshall/myenglish-errorgen/internal/lexicon"
)

// App is the wired application: configuration, logger, word lists and the
// exercise pipeline built from them.
type App struct {
	Config   *config.Config
	Log      *slog.Logger
	Lexicon  lexicon.Lexicon
	Pipeline *exercise.Pipeline
}

// New loads configuration from configPath (see config.Load), initializes the
// logger on logOut, loads the word lists and builds the pipeline.
func New(configPath string, logOut io.Writer) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	logger := NewLogger(logOut, cfg.Log)
	logger.Info("starting errorgen",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	lex, err := lexicon.Load(WordListPaths(cfg.WordLists))
	if err != nil {
		return nil, fmt.Errorf("load word lists: %w", err)
	}
	stats := lex.Stats()
	logger.Info("word lists loaded",
		slog.Int("nouns", stats.Nouns),
		slog.Int("uncountable", stats.Uncountable),
		slog.Int("proper", stats.Proper),
		slog.Int("verbs", stats.Verbs),
	)

	pipeline, err := exercise.NewPipeline(logger, lex, Settings(cfg))
	if err != nil {
		return nil, fmt.Errorf("build pipeline: %w", err)
	}

	return &App{Config: cfg, Log: logger, Lexicon: lex, Pipeline: pipeline}, nil
}

// Settings maps configuration onto pipeline settings.
func Settings(cfg *config.Config) exercise.Settings {
	return exercise.Settings{
		Paragraph: generate.Options{
			Mode:               generate.Mode(cfg.Paragraph.Mode),
			Sentences:          cfg.Paragraph.Sentences,
			PoolSize:           cfg.Paragraph.PoolSize,
			PronounProbability: cfg.Paragraph.PronounProbability,
		},
		Grammar: grammar.Options{
			Tense:               grammar.Tense(cfg.Grammar.Tense),
			PluralProbability:   cfg.Grammar.PluralProbability,
			NegativeProbability: cfg.Grammar.NegativeProbability,
		},
		Errors: errormaker.Probabilities{
			Noun:        cfg.Errors.Noun,
			Pronoun:     cfg.Errors.Pronoun,
			Verb:        cfg.Errors.Verb,
			IsDo:        cfg.Errors.IsDo,
			Preposition: cfg.Errors.Preposition,
			Punctuation: cfg.Errors.Punctuation,
		},
	}
}

// WordListPaths maps configuration onto loader paths.
func WordListPaths(cfg config.WordListsConfig) lexicon.Paths {
	return lexicon.Paths{
		Nouns:       cfg.Nouns,
		Uncountable: cfg.Uncountable,
		Proper:      cfg.Proper,
		Verbs:       cfg.Verbs,
	}
}

// Seed picks the run seed: an explicit override, then the configured seed,
// then the current time.
func (a *App) Seed(override int64) int64 {
	switch {
	case override != 0:
		return override
	case a.Config.Seed != 0:
		return a.Config.Seed
	}
	return time.Now().UnixNano()
}
