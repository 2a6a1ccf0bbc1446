// Package services – AssessmentService
//
// Serves the Likert question bank and records answer submissions with
// replace semantics per (user, question).
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-career-backend/internal/domain"
	"github.com/tbourn/go-career-backend/internal/repo"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// AssessmentService exposes the question bank and answer submission.
type AssessmentService struct {
	DB *gorm.DB
}

// Questions returns a page of the assessment question bank in display
// order along with the total count. A non-positive limit returns the
// whole bank.
func (s *AssessmentService) Questions(ctx context.Context, limit, offset int) ([]domain.AssessmentQuestion, int64, error) {
	tr := otel.Tracer("services/AssessmentService")
	ctx, span := tr.Start(ctx, "Questions",
		trace.WithAttributes(
			attribute.Int("page.limit", limit),
			attribute.Int("page.offset", offset),
		),
	)
	defer span.End()

	items, err := repo.ListQuestions(ctx, s.DB, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := repo.CountQuestions(ctx, s.DB)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Submit validates and persists a batch of Likert answers keyed by
// question ID. Values outside 1..5 and unknown question IDs are rejected
// before anything is written. Re-submitting a question overwrites the
// previous value.
func (s *AssessmentService) Submit(ctx context.Context, userID string, answers map[string]int) error {
	tr := otel.Tracer("services/AssessmentService")
	ctx, span := tr.Start(ctx, "Submit",
		trace.WithAttributes(
			attribute.String("user.id", userID),
			attribute.Int("answers.count", len(answers)),
		),
	)
	defer span.End()

	if len(answers) == 0 {
		return ErrNoAnswers
	}
	for _, v := range answers {
		if v < 1 || v > 5 {
			return ErrInvalidAnswerValue
		}
	}

	questions, err := repo.ListQuestions(ctx, s.DB, 0, 0)
	if err != nil {
		return err
	}
	known := make(map[string]struct{}, len(questions))
	for _, q := range questions {
		known[q.ID] = struct{}{}
	}
	for id := range answers {
		if _, ok := known[id]; !ok {
			return ErrUnknownQuestion
		}
	}

	return repo.UpsertAnswers(ctx, s.DB, userID, answers)
}
