// Package exercise runs the full generation pipeline: a RAW paragraph is
// generated, grammaticalized, corrupted and rendered into an error text and
// a bold-marked answer text.
package exercise

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/myenglish-errorgen/internal/domain"
	"github.com/heartmarshall/myenglish-errorgen/internal/errormaker"
	"github.com/heartmarshall/myenglish-errorgen/internal/generate"
	"github.com/heartmarshall/myenglish-errorgen/internal/grammar"
	"github.com/heartmarshall/myenglish-errorgen/internal/lexicon"
	"github.com/heartmarshall/myenglish-errorgen/internal/render"
	"github.com/heartmarshall/myenglish-errorgen/internal/sentence"
	"github.com/heartmarshall/myenglish-errorgen/pkg/ctxutil"
)

// namespace seeds content-derived exercise IDs.
var namespace = uuid.MustParse("4b4f1d4e-7f0e-4c39-9a55-3f1f0c9e2a61")

// Phase names in execution order.
const (
	PhaseGenerate = "generate"
	PhaseGrammar  = "grammar"
	PhaseErrors   = "errors"
	PhaseRender   = "render"
)

// Settings bundles the options of every stage.
type Settings struct {
	Paragraph generate.Options
	Grammar   grammar.Options
	Errors    errormaker.Probabilities
}

// Validate rejects settings that can never produce an exercise.
func (s Settings) Validate() error {
	if !s.Paragraph.Mode.IsValid() {
		return domain.ConfigurationError("unknown paragraph mode %q", s.Paragraph.Mode)
	}
	if s.Paragraph.Sentences <= 0 {
		return domain.ConfigurationError("sentence count must be positive, got %d", s.Paragraph.Sentences)
	}
	return s.Grammar.Validate()
}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Phase    string        `json:"phase" yaml:"phase"`
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Exercise is one generated paragraph in its error and answer renderings.
type Exercise struct {
	// ID is derived from the rendered texts, so equal exercises share it.
	ID         uuid.UUID     `json:"id" yaml:"id"`
	Seed       int64         `json:"seed" yaml:"seed"`
	Tense      string        `json:"tense" yaml:"tense"`
	ErrorText  string        `json:"error_text" yaml:"error_text"`
	AnswerText string        `json:"answer_text" yaml:"answer_text"`
	ErrorCount int           `json:"error_count" yaml:"error_count"`
	Stages     []string      `json:"stages" yaml:"stages"`
	Phases     []PhaseResult `json:"-" yaml:"-"`

	Error  sentence.Paragraph `json:"-" yaml:"-"`
	Answer sentence.Paragraph `json:"-" yaml:"-"`
}

// Pipeline generates exercises from one lexicon and one set of settings.
// It holds no per-run state and is safe for concurrent use.
type Pipeline struct {
	log      *slog.Logger
	lex      lexicon.Lexicon
	settings Settings
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, lex lexicon.Lexicon, settings Settings) (*Pipeline, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if len(lex.Verbs) == 0 || len(lex.AllNouns()) == 0 {
		return nil, domain.ConfigurationError("word lists need at least one verb and one noun")
	}
	return &Pipeline{log: log, lex: lex, settings: settings}, nil
}

// Settings returns the pipeline settings.
func (p *Pipeline) Settings() Settings { return p.settings }

// Generate builds one exercise. Equal seeds produce equal exercises.
func (p *Pipeline) Generate(ctx context.Context, seed int64) (Exercise, error) {
	rng := generate.NewRand(seed)
	log := p.log.With(slog.Int64("seed", seed))
	if id := ctxutil.RunIDFromCtx(ctx); id != "" {
		log = log.With(slog.String("run_id", id))
	}

	var (
		phases []PhaseResult
		raw    sentence.Paragraph
		gram   sentence.Paragraph
		res    errormaker.Result
		ex     Exercise
	)
	run := func(phase string, fn func() error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		start := time.Now()
		err := fn()
		result := PhaseResult{Phase: phase, Duration: time.Since(start)}
		phases = append(phases, result)
		if err != nil {
			log.Warn("phase failed",
				slog.String("phase", phase),
				slog.String("error", err.Error()),
				slog.Duration("duration", result.Duration),
			)
			return fmt.Errorf("%s: %w", phase, err)
		}
		log.Debug("phase completed", slog.String("phase", phase), slog.Duration("duration", result.Duration))
		return nil
	}

	err := run(PhaseGenerate, func() error {
		sg, err := generate.NewSentenceGenerator(p.lex.Verbs, p.lex.AllNouns(), rng)
		if err != nil {
			return err
		}
		pg := generate.NewParagraphGenerator(sg)
		if raw, err = pg.Paragraph(p.settings.Paragraph); err != nil {
			return err
		}
		if n := pg.Fallbacks(); n > 0 {
			log.Warn("predicate retry budget exhausted", slog.Int("fallbacks", n))
		}
		return nil
	})
	if err == nil {
		err = run(PhaseGrammar, func() error {
			g, err := grammar.New(p.settings.Grammar, rng)
			if err != nil {
				return err
			}
			gram, err = g.Grammaticalize(raw)
			return err
		})
	}
	if err == nil {
		err = run(PhaseErrors, func() error {
			var err error
			res, err = errormaker.InjectErrors(gram, p.settings.Errors, rng)
			return err
		})
	}
	if err == nil {
		err = run(PhaseRender, func() error {
			ex = p.assemble(seed, res)
			return nil
		})
	}
	if err != nil {
		return Exercise{}, err
	}

	ex.Phases = phases
	log.Info("exercise generated",
		slog.String("id", ex.ID.String()),
		slog.Int("errors", ex.ErrorCount),
		slog.Int("sentences", res.Error.Len()),
	)
	return ex, nil
}

func (p *Pipeline) assemble(seed int64, res errormaker.Result) Exercise {
	stages := make([]string, len(res.Stages))
	for i, s := range res.Stages {
		stages[i] = s.String()
	}
	errorText := render.Paragraph(res.Error)
	answerText := render.Paragraph(res.Answer)

	return Exercise{
		ID:         uuid.NewSHA1(namespace, []byte(strconv.FormatInt(seed, 10)+"\n"+errorText+"\n"+answerText)),
		Seed:       seed,
		Tense:      p.settings.Grammar.Tense.String(),
		ErrorText:  errorText,
		AnswerText: answerText,
		ErrorCount: res.Count,
		Stages:     stages,
		Error:      res.Error,
		Answer:     res.Answer,
	}
}

// GenerateBatch builds n exercises concurrently with seeds seed, seed+1, ...
// The result is ordered by seed and identical to n sequential Generate calls.
func (p *Pipeline) GenerateBatch(ctx context.Context, n int, seed int64) ([]Exercise, error) {
	if n <= 0 {
		return nil, domain.ConfigurationError("batch size must be positive, got %d", n)
	}

	start := time.Now()
	out := make([]Exercise, n)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)
	for i := range n {
		g.Go(func() error {
			ex, err := p.Generate(ctx, seed+int64(i))
			if err != nil {
				return err
			}
			out[i] = ex
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("generate batch: %w", err)
	}

	p.log.Info("batch completed",
		slog.String("run_id", ctxutil.RunIDFromCtx(ctx)),
		slog.Int("exercises", n),
		slog.Int64("first_seed", seed),
		slog.Duration("duration", time.Since(start)),
	)
	return out, nil
}

const batchConcurrency = 8
