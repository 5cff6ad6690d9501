// Package pipeline sequences one conversational turn: context resolution,
// normalization, comparison handling or store lookup, external routing,
// empathetic composition and persistence.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/sage-agent/sage/internal/coref"
	"github.com/sage-agent/sage/internal/emotion"
	"github.com/sage-agent/sage/internal/events"
	"github.com/sage-agent/sage/internal/knowledge"
	"github.com/sage-agent/sage/internal/question"
)

// Router is the provider-routing capability the pipeline depends on.
type Router interface {
	Route(ctx context.Context, q string) (answer, source string)
	Compare(ctx context.Context, item1, item2 string) (answer, source string)
}

// Publisher is the slice of the events client the pipeline needs.
type Publisher interface {
	Publish(subject string, data any) error
}

// Result is the terminal output of one turn. UpdatedEntity is empty when
// no entity was found, in which case the session keeps its previous one.
type Result struct {
	FinalAnswer   string
	UpdatedEntity string
	Source        string
	Cached        bool
	Comparison    bool
	Score         int
}

type Pipeline struct {
	repo      knowledge.Repository
	router    Router
	publisher Publisher // nil when NATS is not configured
	threshold int
	logger    *slog.Logger

	extractEntity func(string) (string, error)
}

func New(repo knowledge.Repository, router Router, publisher Publisher, threshold int, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		repo:          repo,
		router:        router,
		publisher:     publisher,
		threshold:     threshold,
		logger:        logger,
		extractEntity: coref.FirstEntity,
	}
}

// Answer runs one turn. It never fails: provider and store trouble degrade
// toward the search-link fallback, so every input terminates in a composed
// answer.
func (p *Pipeline) Answer(ctx context.Context, rawQuestion, lastEntity string) Result {
	// Once pronouns are resolved, the resolved text is the question for
	// every later stage, including tone detection and persistence.
	q := coref.Resolve(rawQuestion, lastEntity)
	normalized := question.Normalize(q)

	var res Result
	if !p.comparison(ctx, q, normalized, &res) {
		p.lookup(ctx, q, normalized, &res)
	}

	res.UpdatedEntity = p.entity(res.FinalAnswer)
	p.publish(q, res)

	p.logger.Info("question answered",
		"source", res.Source,
		"cached", res.Cached,
		"comparison", res.Comparison,
		"score", res.Score,
	)
	return res
}

// comparison handles "A vs B" questions. Returns false when the question
// is not comparative or no pair could be extracted, in which case the
// ordinary path runs.
func (p *Pipeline) comparison(ctx context.Context, q, normalized string, res *Result) bool {
	if !question.IsComparison(normalized) {
		return false
	}
	pair, ok := question.ExtractPair(normalized)
	if !ok {
		return false
	}

	answer, source := p.router.Compare(ctx, pair.Item1, pair.Item2)
	res.FinalAnswer = emotion.Compose(q, answer)
	res.Source = source
	res.Comparison = true
	p.persist(ctx, q, res.FinalAnswer)
	return true
}

// lookup consults the knowledge store and falls back to external routing.
// A store that is absent or unreadable routes externally; both paths
// persist the freshly composed answer. A verbatim store hit is not
// re-appended — that would only pile up near-duplicate records.
func (p *Pipeline) lookup(ctx context.Context, q, normalized string, res *Result) {
	exists, err := p.repo.Exists(ctx)
	if err != nil {
		p.logger.Error("knowledge store unusable this turn", "error", err)
		exists = false
	}

	if !exists {
		answer, source := p.router.Route(ctx, normalized)
		res.FinalAnswer = emotion.Compose(q, answer)
		res.Source = source
		p.persist(ctx, q, res.FinalAnswer)
		return
	}

	match, err := p.repo.Lookup(ctx, normalized)
	if err != nil {
		p.logger.Error("knowledge lookup failed", "error", err)
		match = knowledge.Match{}
	}
	res.Score = match.Score

	if knowledge.Accepted(match.Score, p.threshold) {
		res.FinalAnswer = emotion.Compose(q, match.Answer)
		res.Source = "store"
		res.Cached = true
		return
	}

	answer, source := p.router.Route(ctx, normalized)
	res.FinalAnswer = emotion.Compose(q, answer)
	res.Source = source
	p.persist(ctx, q, res.FinalAnswer)
}

func (p *Pipeline) persist(ctx context.Context, q, answer string) {
	if err := p.repo.Append(ctx, q, answer); err != nil {
		p.logger.Error("knowledge append failed", "error", err)
	}
}

func (p *Pipeline) entity(answer string) string {
	ent, err := p.extractEntity(answer)
	if err != nil {
		p.logger.Warn("entity extraction failed", "error", err)
		return ""
	}
	return ent
}

func (p *Pipeline) publish(q string, res Result) {
	if p.publisher == nil {
		return
	}
	evt := events.AnswerEvent{
		Question:   q,
		Source:     res.Source,
		Cached:     res.Cached,
		Comparison: res.Comparison,
		Score:      res.Score,
		Entity:     res.UpdatedEntity,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
	if err := p.publisher.Publish(events.SubjectAnswered, evt); err != nil {
		p.logger.Warn("failed to publish answer event", "error", err)
	}
}
