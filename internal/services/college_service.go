// Package services – CollegeService
//
// Matches colleges against the user's dominant career domain and stored
// location. Users without a recommendation yet are served the Technology
// catalogue so the endpoint always has something to show.
package services

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"

	"github.com/tbourn/go-career-backend/internal/domain"
	"github.com/tbourn/go-career-backend/internal/repo"
	"github.com/tbourn/go-career-backend/internal/scoring"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var titleCaser = cases.Title(language.English)

// CollegeService looks up college matches for a user.
type CollegeService struct {
	DB *gorm.DB
}

// CollegeMatch is the lookup result: the domain the matching ran against
// and the ordered college rows.
type CollegeMatch struct {
	Domain   string
	Colleges []domain.College
}

// Match returns colleges for the user's dominant domain. The domain comes
// from the stored recommendation; without one, Technology is assumed.
// The user's profile state narrows the match when the catalogue has
// in-state rows for that domain.
func (s *CollegeService) Match(ctx context.Context, userID string, limit int) (*CollegeMatch, error) {
	tr := otel.Tracer("services/CollegeService")
	ctx, span := tr.Start(ctx, "Match",
		trace.WithAttributes(attribute.String("user.id", userID)),
	)
	defer span.End()

	careerDomain := scoring.DomainTechnology
	rec, err := repo.GetRecommendation(ctx, s.DB, userID)
	switch {
	case err == nil && scoring.IsCanonical(rec.DominantDomain):
		careerDomain = rec.DominantDomain
	case err != nil && !errors.Is(err, repo.ErrNotFound):
		return nil, err
	}

	state := ""
	if p, perr := repo.GetProfile(ctx, s.DB, userID); perr == nil {
		state = normalizeState(p.LocationState)
	} else if !errors.Is(perr, repo.ErrNotFound) {
		return nil, perr
	}

	span.SetAttributes(attribute.String("career.domain", careerDomain))

	colleges, err := repo.MatchColleges(ctx, s.DB, careerDomain, state, limit)
	if err != nil {
		return nil, err
	}
	return &CollegeMatch{Domain: careerDomain, Colleges: colleges}, nil
}

// normalizeState canonicalizes a free-text state name so it compares
// against the seeded catalogue ("new york" == "New York").
func normalizeState(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return titleCaser.String(strings.ToLower(s))
}
