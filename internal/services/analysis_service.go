// Package services – AnalysisService
//
// This file implements AnalysisService, the application-level component that
// owns the career analysis pipeline: it reads the caller's profile and
// assessment answers, aggregates per-domain scores, resolves the dominant
// career domain, builds the counselor prompt, calls the external completion
// service, parses the narrative into structured fields, and atomically
// replaces the user's stored recommendation.
//
// The pipeline is request-scoped and strictly sequential; the only suspension
// points are the completion call and the store operations. The store is only
// mutated after a completion has been received and parsed, so an upstream
// failure always leaves the previous recommendation intact.
//
// Observability: public methods are OpenTelemetry-instrumented; spans carry
// the user identifier and the resolved domain.

package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rs/zerolog/log"

	"github.com/tbourn/go-career-backend/internal/ai"
	"github.com/tbourn/go-career-backend/internal/domain"
	"github.com/tbourn/go-career-backend/internal/narrative"
	"github.com/tbourn/go-career-backend/internal/prompt"
	"github.com/tbourn/go-career-backend/internal/repo"
	"github.com/tbourn/go-career-backend/internal/scoring"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Completer is the narrow surface of the ai.Client consumed by the analysis
// pipeline. Declared here so tests can substitute a canned upstream.
type Completer interface {
	Complete(ctx context.Context, messages []ai.Message) (string, error)
}

var _ Completer = (*ai.Client)(nil)

// AnalysisResult is the outcome of one pipeline run: the persisted
// recommendation plus parser observability flags.
type AnalysisResult struct {
	Recommendation *domain.CareerRecommendation
	Defaulted      narrative.Defaulted
}

// AnalysisService coordinates the scoring, prompting, parsing, and
// persistence of career recommendations.
type AnalysisService struct {
	DB *gorm.DB
	AI Completer
}

// Analyze runs the full pipeline for userID.
//
// A missing profile is tolerated (prompt fields fall back to "N/A"); zero
// answers are not (ErrInsufficientData). Upstream 429/402 map to
// ErrUpstreamRateLimited / ErrUpstreamBilling; other upstream failures are
// returned as-is. Unparseable model output is never an error — the parser
// degrades field-by-field to declared defaults.
func (s *AnalysisService) Analyze(ctx context.Context, userID string) (*AnalysisResult, error) {
	tr := otel.Tracer("services/AnalysisService")
	ctx, span := tr.Start(ctx, "Analyze",
		trace.WithAttributes(attribute.String("user.id", userID)),
	)
	defer span.End()

	profile, err := repo.GetProfile(ctx, s.DB, userID)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	answers, err := repo.ListAnswersWithDomain(ctx, s.DB, userID)
	if err != nil {
		return nil, err
	}
	if len(answers) == 0 {
		return nil, ErrInsufficientData
	}

	in := make([]scoring.Answer, 0, len(answers))
	for _, a := range answers {
		in = append(in, scoring.Answer{QuestionID: a.QuestionID, Domain: a.Domain, Value: a.Value})
	}
	scores := scoring.Aggregate(in)

	dominant := scoring.ResolveDominant(scores, scoring.ProfileText(profile))
	span.SetAttributes(attribute.String("career.domain", dominant))

	p := prompt.Build(profile, scores)
	raw, err := s.AI.Complete(ctx, []ai.Message{
		{Role: "system", Content: prompt.SystemPrompt},
		{Role: "user", Content: p},
	})
	if err != nil {
		switch {
		case errors.Is(err, ai.ErrRateLimited):
			return nil, ErrUpstreamRateLimited
		case errors.Is(err, ai.ErrBillingExhausted):
			return nil, ErrUpstreamBilling
		default:
			return nil, err
		}
	}

	parsed := narrative.Parse(raw, dominant)
	if parsed.Defaulted.Roadmap {
		log.Warn().
			Str("user_id", userID).
			Str("domain", dominant).
			Msg("model response carried no roadmap steps, using default roadmap")
	}

	rec := &domain.CareerRecommendation{
		UserID:               userID,
		DominantDomain:       dominant,
		PrimaryCareer:        parsed.PrimaryCareer,
		Reasoning:            raw,
		ScoreBreakdown:       scores,
		AlternativeCareers:   parsed.AlternativeCareers,
		SkillGaps:            parsed.SkillGaps,
		RoadmapSteps:         parsed.RoadmapSteps,
		RecommendedResources: parsed.RecommendedResources,
	}
	stored, err := repo.ReplaceRecommendation(ctx, s.DB, rec)
	if err != nil {
		return nil, err
	}

	return &AnalysisResult{Recommendation: stored, Defaulted: parsed.Defaulted}, nil
}

// Current returns the user's stored recommendation without re-running the
// pipeline.
func (s *AnalysisService) Current(ctx context.Context, userID string) (*domain.CareerRecommendation, error) {
	tr := otel.Tracer("services/AnalysisService")
	ctx, span := tr.Start(ctx, "Current",
		trace.WithAttributes(attribute.String("user.id", userID)),
	)
	defer span.End()

	rec, err := repo.GetRecommendation(ctx, s.DB, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrRecommendationNotFound
	}
	return rec, err
}
