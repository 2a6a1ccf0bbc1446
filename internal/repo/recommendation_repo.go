// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for career
// recommendations.
//
// Replace semantics: a user has at most one live recommendation.
// ReplaceRecommendation deletes any previous rows and inserts the new one
// inside a single transaction, so a failed re-analysis can never leave the
// user with zero recommendations — either the old row survives or the new
// one is committed.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/go-career-backend/internal/domain"
)

// GetRecommendation returns the user's current recommendation, newest first
// when historical rows exist, or ErrNotFound.
func GetRecommendation(ctx context.Context, db *gorm.DB, userID string) (*domain.CareerRecommendation, error) {
	var rec domain.CareerRecommendation
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// GetRecommendationByID fetches a recommendation by primary key, enforcing
// ownership.
func GetRecommendationByID(ctx context.Context, db *gorm.DB, id, userID string) (*domain.CareerRecommendation, error) {
	var rec domain.CareerRecommendation
	err := db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ReplaceRecommendation atomically swaps the user's recommendation for rec.
// The ID and timestamps are assigned here; rec.UserID must be set. Calling
// twice with the same content is idempotent in the sense that exactly one
// row remains, holding the content of the second call.
func ReplaceRecommendation(ctx context.Context, db *gorm.DB, rec *domain.CareerRecommendation) (*domain.CareerRecommendation, error) {
	rec.ID = uuid.NewString()
	rec.CreatedAt = time.Now().UTC()

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Where("user_id = ?", rec.UserID).
			Delete(&domain.CareerRecommendation{}).Error; err != nil {
			return err
		}
		return tx.Create(rec).Error
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}
