package services

import (
	"context"
	"errors"
	"testing"

	"github.com/tbourn/go-career-backend/internal/repo"
)

func TestQuestions_PageAndTotal(t *testing.T) {
	db := newServiceDB(t)
	if err := repo.SeedQuestions(context.Background(), db); err != nil {
		t.Fatalf("seed: %v", err)
	}
	svc := &AssessmentService{DB: db}

	items, total, err := svc.Questions(context.Background(), 5, 0)
	if err != nil {
		t.Fatalf("Questions: %v", err)
	}
	if len(items) != 5 {
		t.Fatalf("expected a 5-item page, got %d", len(items))
	}
	if total != 20 {
		t.Fatalf("expected total 20, got %d", total)
	}
	if items[0].OrderNumber != 1 {
		t.Fatalf("page not in display order: %+v", items[0])
	}
}

func TestSubmit_RejectsBadInputBeforeWriting(t *testing.T) {
	db := newServiceDB(t)
	if err := repo.SeedQuestions(context.Background(), db); err != nil {
		t.Fatalf("seed: %v", err)
	}
	svc := &AssessmentService{DB: db}
	ctx := context.Background()

	questions, _, _ := svc.Questions(ctx, 1, 0)
	qid := questions[0].ID

	if err := svc.Submit(ctx, "u1", nil); !errors.Is(err, ErrNoAnswers) {
		t.Fatalf("expected ErrNoAnswers, got %v", err)
	}
	if err := svc.Submit(ctx, "u1", map[string]int{qid: 0}); !errors.Is(err, ErrInvalidAnswerValue) {
		t.Fatalf("expected ErrInvalidAnswerValue for 0, got %v", err)
	}
	if err := svc.Submit(ctx, "u1", map[string]int{qid: 6}); !errors.Is(err, ErrInvalidAnswerValue) {
		t.Fatalf("expected ErrInvalidAnswerValue for 6, got %v", err)
	}
	if err := svc.Submit(ctx, "u1", map[string]int{"not-a-question": 3}); !errors.Is(err, ErrUnknownQuestion) {
		t.Fatalf("expected ErrUnknownQuestion, got %v", err)
	}
	// A batch with one bad entry writes nothing.
	_ = svc.Submit(ctx, "u1", map[string]int{qid: 3, "not-a-question": 3})
	if total, _ := repo.CountAnswers(ctx, db, "u1"); total != 0 {
		t.Fatalf("rejected batch must not write, got %d rows", total)
	}
}

func TestSubmit_PersistsAndReplaces(t *testing.T) {
	db := newServiceDB(t)
	if err := repo.SeedQuestions(context.Background(), db); err != nil {
		t.Fatalf("seed: %v", err)
	}
	svc := &AssessmentService{DB: db}
	ctx := context.Background()

	questions, _, _ := svc.Questions(ctx, 2, 0)
	q1, q2 := questions[0].ID, questions[1].ID

	if err := svc.Submit(ctx, "u1", map[string]int{q1: 5, q2: 1}); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if total, _ := repo.CountAnswers(ctx, db, "u1"); total != 2 {
		t.Fatalf("expected 2 answers, got %d", total)
	}

	if err := svc.Submit(ctx, "u1", map[string]int{q1: 2}); err != nil {
		t.Fatalf("resubmit: %v", err)
	}
	rows, err := repo.ListAnswersWithDomain(ctx, db, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 2 || rows[0].Value != 2 {
		t.Fatalf("resubmit should replace in place: %+v", rows)
	}
}
