// Package services – ProfileService
//
// Owns profile reads and writes. Validation lives here so handlers stay
// transport-thin.
package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/tbourn/go-career-backend/internal/domain"
	"github.com/tbourn/go-career-backend/internal/repo"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ProfileService coordinates profile persistence.
type ProfileService struct {
	DB *gorm.DB
}

// Get returns the user's profile or ErrProfileNotFound.
func (s *ProfileService) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	tr := otel.Tracer("services/ProfileService")
	ctx, span := tr.Start(ctx, "Get",
		trace.WithAttributes(attribute.String("user.id", userID)),
	)
	defer span.End()

	p, err := repo.GetProfile(ctx, s.DB, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrProfileNotFound
	}
	return p, err
}

// Upsert validates and persists the user's profile, creating it on first
// write and updating it afterwards.
func (s *ProfileService) Upsert(ctx context.Context, userID string, in *domain.Profile) (*domain.Profile, error) {
	tr := otel.Tracer("services/ProfileService")
	ctx, span := tr.Start(ctx, "Upsert",
		trace.WithAttributes(attribute.String("user.id", userID)),
	)
	defer span.End()

	in.FullName = strings.TrimSpace(in.FullName)
	if in.FullName == "" {
		return nil, ErrEmptyFullName
	}
	if in.MarksPercentage != nil && (*in.MarksPercentage < 0 || *in.MarksPercentage > 100) {
		return nil, ErrInvalidMarks
	}

	return repo.UpsertProfile(ctx, s.DB, userID, in)
}
