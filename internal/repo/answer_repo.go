// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for assessment
// answers.
//
// One answer exists per (user, question): UpsertAnswers relies on the unique
// index and an ON CONFLICT clause so resubmitting the assessment replaces
// values instead of duplicating rows.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tbourn/go-career-backend/internal/domain"
)

// AnswerWithDomain is an answer joined with its question's domain tag, the
// shape consumed by score aggregation.
type AnswerWithDomain struct {
	QuestionID string
	Domain     string
	Value      int
}

// UpsertAnswers writes the given (questionID, value) pairs for userID,
// replacing values for questions answered before. All rows are written in a
// single statement.
func UpsertAnswers(ctx context.Context, db *gorm.DB, userID string, answers map[string]int) error {
	if len(answers) == 0 {
		return nil
	}

	now := time.Now().UTC()
	rows := make([]domain.AssessmentAnswer, 0, len(answers))
	for questionID, value := range answers {
		rows = append(rows, domain.AssessmentAnswer{
			ID:         uuid.NewString(),
			UserID:     userID,
			QuestionID: questionID,
			Value:      value,
			CreatedAt:  now,
		})
	}

	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "question_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&rows).Error
}

// ListAnswersWithDomain returns the user's answers joined to their questions'
// domain tags, ordered by question position so aggregation output is stable.
func ListAnswersWithDomain(ctx context.Context, db *gorm.DB, userID string) ([]AnswerWithDomain, error) {
	var out []AnswerWithDomain
	err := db.WithContext(ctx).
		Model(&domain.AssessmentAnswer{}).
		Select("assessment_answers.question_id, assessment_questions.domain, assessment_answers.value").
		Joins("JOIN assessment_questions ON assessment_questions.id = assessment_answers.question_id").
		Where("assessment_answers.user_id = ?", userID).
		Order("assessment_questions.order_number asc").
		Scan(&out).Error
	return out, err
}

// CountAnswers returns the number of answers recorded for userID.
func CountAnswers(ctx context.Context, db *gorm.DB, userID string) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.AssessmentAnswer{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	return total, err
}
