// Package domain defines the core persistence models for the application.
// These types are used by GORM for database schema mapping and are shared
// across the repository and service layers.
package domain

import "time"

// Idempotency records a previously completed analysis request, keyed by
// (user_id, scope, key). It lets POST /analysis retries replay the stored
// recommendation instead of re-running the pipeline (and re-billing the
// upstream model call).
type Idempotency struct {
	ID               string    `gorm:"type:TEXT NOT NULL;primaryKey"`
	UserID           string    `gorm:"type:TEXT NOT NULL;uniqueIndex:ux_user_scope_key,priority:1"`
	Scope            string    `gorm:"type:TEXT NOT NULL;uniqueIndex:ux_user_scope_key,priority:2"`
	Key              string    `gorm:"type:TEXT NOT NULL;uniqueIndex:ux_user_scope_key,priority:3"`
	RecommendationID string    `gorm:"type:TEXT NOT NULL"`
	Status           int       `gorm:"type:INTEGER NOT NULL"`
	CreatedAt        time.Time `gorm:"type:DATETIME NOT NULL;autoCreateTime"`
	ExpiresAt        time.Time `gorm:"type:DATETIME NOT NULL;index"`
}

// TableName implements the GORM tabler interface.
func (Idempotency) TableName() string { return "idempotency" }
