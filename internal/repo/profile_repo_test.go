package repo

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tbourn/go-career-backend/internal/domain"
)

func newProfileRepoDB(t *testing.T, migrate ...any) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("profile_repo_test_%d.db", time.Now().UnixNano()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// Ensure the file handle is released before TempDir cleanup (Windows needs this).
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	if len(migrate) > 0 {
		if err := db.AutoMigrate(migrate...); err != nil {
			t.Fatalf("automigrate: %v", err)
		}
	}
	return db
}

func TestGetProfile_NotFound(t *testing.T) {
	db := newProfileRepoDB(t, &domain.Profile{})

	p, err := GetProfile(context.Background(), db, "nobody")
	if p != nil || err != ErrNotFound {
		t.Fatalf("expected (nil, ErrNotFound), got (%v, %v)", p, err)
	}
}

func TestUpsertProfile_CreatesWhenMissing(t *testing.T) {
	db := newProfileRepoDB(t, &domain.Profile{})

	marks := 88.5
	start := time.Now().UTC().Add(-time.Minute)
	p, err := UpsertProfile(context.Background(), db, "u1", &domain.Profile{
		FullName:        "Ada Lovelace",
		MainSkill:       "mathematics",
		InterestArea:    "computing",
		Goals:           "build an analytical engine",
		MarksPercentage: &marks,
		LocationCity:    "Boston",
		LocationState:   "Massachusetts",
	})
	if err != nil {
		t.Fatalf("UpsertProfile: %v", err)
	}
	if p.ID == "" || p.UserID != "u1" || p.FullName != "Ada Lovelace" {
		t.Fatalf("unexpected profile: %+v", p)
	}
	if p.MarksPercentage == nil || *p.MarksPercentage != 88.5 {
		t.Fatalf("marks not persisted: %+v", p.MarksPercentage)
	}
	if p.CreatedAt.Before(start) {
		t.Fatalf("CreatedAt seems unset/really old: %v", p.CreatedAt)
	}

	// round-trip
	got, err := GetProfile(context.Background(), db, "u1")
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if got.ID != p.ID || got.LocationState != "Massachusetts" {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
}

func TestUpsertProfile_UpdatesInPlace(t *testing.T) {
	db := newProfileRepoDB(t, &domain.Profile{})
	ctx := context.Background()

	first, err := UpsertProfile(ctx, db, "u2", &domain.Profile{FullName: "Old Name", Hobbies: "chess"})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	second, err := UpsertProfile(ctx, db, "u2", &domain.Profile{
		FullName:     "New Name",
		InterestArea: "music production",
	})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	// Same row: ID and CreatedAt survive, mutable fields are replaced.
	if second.ID != first.ID {
		t.Fatalf("expected stable ID, got %q then %q", first.ID, second.ID)
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Fatalf("CreatedAt changed: %v -> %v", first.CreatedAt, second.CreatedAt)
	}
	if second.FullName != "New Name" || second.InterestArea != "music production" {
		t.Fatalf("fields not updated: %+v", second)
	}
	// Omitted fields are overwritten too (replace semantics, not merge).
	if second.Hobbies != "" {
		t.Fatalf("expected hobbies cleared, got %q", second.Hobbies)
	}

	var total int64
	if err := db.Model(&domain.Profile{}).Count(&total).Error; err != nil || total != 1 {
		t.Fatalf("expected exactly one row, got %d (err=%v)", total, err)
	}
}

func TestUpsertProfile_Error_NoTable(t *testing.T) {
	db := newProfileRepoDB(t /* no migrations */)
	p, err := UpsertProfile(context.Background(), db, "u1", &domain.Profile{FullName: "x"})
	if err == nil || p != nil {
		t.Fatalf("expected error without table, got p=%v err=%v", p, err)
	}
}
