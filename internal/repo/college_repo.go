// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides the college-matching lookup and the
// built-in catalogue seeded on first boot.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/go-career-backend/internal/domain"
)

// MatchColleges returns colleges for a canonical career domain with a
// widening fallback chain: exact domain match first; when empty, colleges in
// the user's state; when still empty, the top rows of the whole catalogue.
func MatchColleges(ctx context.Context, db *gorm.DB, careerDomain, state string, limit int) ([]domain.College, error) {
	if limit <= 0 {
		limit = 10
	}

	var out []domain.College
	if careerDomain != "" {
		if err := db.WithContext(ctx).
			Where("domain = ?", careerDomain).
			Order("name asc").
			Limit(limit).
			Find(&out).Error; err != nil {
			return nil, err
		}
		if len(out) > 0 {
			return out, nil
		}
	}

	if state != "" {
		if err := db.WithContext(ctx).
			Where("state = ?", state).
			Order("name asc").
			Limit(limit).
			Find(&out).Error; err != nil {
			return nil, err
		}
		if len(out) > 0 {
			return out, nil
		}
	}

	err := db.WithContext(ctx).
		Order("name asc").
		Limit(limit).
		Find(&out).Error
	return out, err
}

// seed catalogue, two entries per canonical domain.
var seedColleges = []domain.College{
	{Name: "Carnegie Mellon University", Domain: "Technology", Course: "B.S. Computer Science", City: "Pittsburgh", State: "Pennsylvania", Website: "https://www.cmu.edu"},
	{Name: "Georgia Institute of Technology", Domain: "Technology", Course: "B.S. Computational Media", City: "Atlanta", State: "Georgia", Website: "https://www.gatech.edu"},
	{Name: "University of Pennsylvania", Domain: "Business", Course: "B.S. Economics (Wharton)", City: "Philadelphia", State: "Pennsylvania", Website: "https://www.upenn.edu"},
	{Name: "Indiana University Bloomington", Domain: "Business", Course: "B.S. Business (Kelley)", City: "Bloomington", State: "Indiana", Website: "https://www.iu.edu"},
	{Name: "Rhode Island School of Design", Domain: "Art", Course: "BFA Graphic Design", City: "Providence", State: "Rhode Island", Website: "https://www.risd.edu"},
	{Name: "School of the Art Institute of Chicago", Domain: "Art", Course: "BFA Studio Art", City: "Chicago", State: "Illinois", Website: "https://www.saic.edu"},
	{Name: "Berklee College of Music", Domain: "Music", Course: "B.M. Music Production", City: "Boston", State: "Massachusetts", Website: "https://www.berklee.edu"},
	{Name: "Juilliard School", Domain: "Music", Course: "B.M. Performance", City: "New York", State: "New York", Website: "https://www.juilliard.edu"},
	{Name: "Teachers College, Columbia University", Domain: "Education", Course: "B.A. Education Studies", City: "New York", State: "New York", Website: "https://www.tc.columbia.edu"},
	{Name: "University of Michigan", Domain: "Education", Course: "B.A. Learning Sciences", City: "Ann Arbor", State: "Michigan", Website: "https://www.umich.edu"},
}

// SeedColleges inserts the built-in catalogue when the colleges table is
// empty. Safe to call on every boot.
func SeedColleges(ctx context.Context, db *gorm.DB) error {
	var total int64
	if err := db.WithContext(ctx).Model(&domain.College{}).Count(&total).Error; err != nil {
		return err
	}
	if total > 0 {
		return nil
	}

	now := time.Now().UTC()
	rows := make([]domain.College, len(seedColleges))
	copy(rows, seedColleges)
	for i := range rows {
		rows[i].ID = uuid.NewString()
		rows[i].CreatedAt = now
	}
	return db.WithContext(ctx).Create(&rows).Error
}
