// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for assessment
// questions, including the built-in instrument seeded on first boot.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/go-career-backend/internal/domain"
)

// ListQuestions returns all assessment questions ordered by their display
// position.
func ListQuestions(ctx context.Context, db *gorm.DB, limit, offset int) ([]domain.AssessmentQuestion, error) {
	var out []domain.AssessmentQuestion
	q := db.WithContext(ctx).Order("order_number asc")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	err := q.Find(&out).Error
	return out, err
}

// CountQuestions returns the total number of assessment questions.
func CountQuestions(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&domain.AssessmentQuestion{}).Count(&total).Error
	return total, err
}

// seedQuestion is one row of the built-in 20-question Likert instrument.
// Four statements per assessment domain; the domain tags feed straight into
// score aggregation.
type seedQuestion struct {
	text   string
	domain string
}

var seedQuestions = []seedQuestion{
	{"I enjoy solving logic puzzles and breaking problems into steps.", "analytical"},
	{"I like figuring out how machines, gadgets, or software work.", "technical"},
	{"I am comfortable learning new tools and technologies on my own.", "technical"},
	{"I enjoy working with numbers, data, or spreadsheets.", "analytical"},
	{"I often sketch, paint, or design things for fun.", "artistic"},
	{"I notice visual details like color, layout, and composition.", "artistic"},
	{"I enjoy coming up with original ideas for creative projects.", "creativity"},
	{"I like expressing myself through creative writing or imagery.", "creativity"},
	{"I play an instrument or sing regularly.", "musical"},
	{"I can recognize melodies, rhythms, or chords easily.", "musical"},
	{"Creating or producing music sounds like rewarding work to me.", "musical"},
	{"Music is a central part of my daily life.", "musical"},
	{"I enjoy organizing people or events to reach a goal.", "leadership"},
	{"I like negotiating, persuading, or selling ideas.", "business"},
	{"I follow markets, startups, or business news with interest.", "business"},
	{"I naturally take charge when a group needs direction.", "leadership"},
	{"I enjoy explaining difficult concepts to others.", "teaching"},
	{"Helping someone understand something gives me satisfaction.", "teaching"},
	{"I am patient when working with people who learn slowly.", "social"},
	{"I like mentoring, tutoring, or coaching others.", "social"},
}

// SeedQuestions inserts the built-in instrument when the questions table is
// empty. Safe to call on every boot.
func SeedQuestions(ctx context.Context, db *gorm.DB) error {
	total, err := CountQuestions(ctx, db)
	if err != nil || total > 0 {
		return err
	}

	now := time.Now().UTC()
	rows := make([]domain.AssessmentQuestion, 0, len(seedQuestions))
	for i, q := range seedQuestions {
		rows = append(rows, domain.AssessmentQuestion{
			ID:          uuid.NewString(),
			Text:        q.text,
			Domain:      q.domain,
			OrderNumber: i + 1,
			CreatedAt:   now,
		})
	}
	return db.WithContext(ctx).Create(&rows).Error
}
