// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Profile
// model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations. They
// follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a profile is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
package repo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/go-career-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// GetProfile fetches the profile owned by userID, or ErrNotFound.
func GetProfile(ctx context.Context, db *gorm.DB, userID string) (*domain.Profile, error) {
	var p domain.Profile
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpsertProfile inserts the user's profile or, when one already exists,
// updates its mutable fields in place. The profile ID and creation time are
// preserved across updates.
func UpsertProfile(ctx context.Context, db *gorm.DB, userID string, in *domain.Profile) (*domain.Profile, error) {
	var existing domain.Profile
	err := db.WithContext(ctx).Where("user_id = ?", userID).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		p := &domain.Profile{
			ID:              uuid.NewString(),
			UserID:          userID,
			FullName:        in.FullName,
			MainSkill:       in.MainSkill,
			InterestArea:    in.InterestArea,
			Goals:           in.Goals,
			Hobbies:         in.Hobbies,
			DailyHabits:     in.DailyHabits,
			MarksPercentage: in.MarksPercentage,
			LocationCity:    in.LocationCity,
			LocationState:   in.LocationState,
			CreatedAt:       time.Now().UTC(),
		}
		if err := db.WithContext(ctx).Create(p).Error; err != nil {
			return nil, err
		}
		return p, nil
	case err != nil:
		return nil, err
	}

	updates := map[string]any{
		"full_name":        in.FullName,
		"main_skill":       in.MainSkill,
		"interest_area":    in.InterestArea,
		"goals":            in.Goals,
		"hobbies":          in.Hobbies,
		"daily_habits":     in.DailyHabits,
		"marks_percentage": in.MarksPercentage,
		"location_city":    in.LocationCity,
		"location_state":   in.LocationState,
	}
	if err := db.WithContext(ctx).Model(&existing).Updates(updates).Error; err != nil {
		return nil, err
	}
	return GetProfile(ctx, db, userID)
}
