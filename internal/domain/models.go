// Package domain defines the persistence models for profiles, assessment
// questions and answers, career recommendations, and colleges. These types
// are mapped with GORM and form the core data layer of the career guidance
// application.
package domain

import (
	"time"

	"gorm.io/gorm"
)

// Profile holds the free-text background information a user provides before
// taking the assessment. It is read-only input to the analysis pipeline.
//
// Fields:
//   - ID: stable UUID primary key (char(36)).
//   - UserID: identifier of the owner; unique, one profile per user.
//   - FullName: display name; the only required field.
//   - MainSkill / InterestArea / Goals / Hobbies / DailyHabits: free text,
//     scanned for domain keywords during analysis.
//   - MarksPercentage: academic performance in [0,100], optional.
//   - LocationCity / LocationState: used by college matching.
type Profile struct {
	ID              string         `json:"id"               gorm:"type:char(36);primaryKey"`
	UserID          string         `json:"user_id"          gorm:"type:varchar(64);not null;uniqueIndex:ux_profile_user"`
	FullName        string         `json:"full_name"        gorm:"type:varchar(255);not null"`
	MainSkill       string         `json:"main_skill"       gorm:"type:text"`
	InterestArea    string         `json:"interest_area"    gorm:"type:text"`
	Goals           string         `json:"goals"            gorm:"type:text"`
	Hobbies         string         `json:"hobbies"          gorm:"type:text"`
	DailyHabits     string         `json:"daily_habits"     gorm:"type:text"`
	MarksPercentage *float64       `json:"marks_percentage,omitempty"`
	LocationCity    string         `json:"location_city"    gorm:"type:varchar(128)"`
	LocationState   string         `json:"location_state"   gorm:"type:varchar(128)"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `json:"-"                gorm:"index"`
}

// TableName returns the database table name for Profile.
func (Profile) TableName() string { return "profiles" }

// AssessmentQuestion is one Likert-scale statement presented during the
// assessment. Each question carries a raw domain tag (e.g. "technical",
// "artistic") that answer values are aggregated under.
type AssessmentQuestion struct {
	ID          string    `json:"id"           gorm:"type:char(36);primaryKey"`
	Text        string    `json:"text"         gorm:"type:text;not null"`
	Domain      string    `json:"domain"       gorm:"type:varchar(64);not null;index"`
	OrderNumber int       `json:"order_number" gorm:"not null;index"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName returns the database table name for AssessmentQuestion.
func (AssessmentQuestion) TableName() string { return "assessment_questions" }

// AssessmentAnswer is a single 1–5 Likert response. A user answers each
// question at most once; resubmission replaces the value (upsert on the
// (user_id, question_id) unique index).
type AssessmentAnswer struct {
	ID         string    `json:"id"          gorm:"type:char(36);primaryKey"`
	UserID     string    `json:"user_id"     gorm:"type:varchar(64);not null;uniqueIndex:ux_answer_user_question,priority:1"`
	QuestionID string    `json:"question_id" gorm:"type:char(36);not null;uniqueIndex:ux_answer_user_question,priority:2"`
	Value      int       `json:"value"       gorm:"not null;check:value BETWEEN 1 AND 5"`
	CreatedAt  time.Time `json:"created_at"`

	// Question is the answered statement; answers are cascade-deleted with it.
	Question AssessmentQuestion `json:"-" gorm:"foreignKey:QuestionID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for AssessmentAnswer.
func (AssessmentAnswer) TableName() string { return "assessment_answers" }

// DomainScore is one entry of a recommendation's score breakdown: the raw
// 1–5 average for an assessment domain and its 0–100 normalization. Scores
// are recomputed on every analysis and persisted only inside
// CareerRecommendation.ScoreBreakdown.
type DomainScore struct {
	Domain     string  `json:"domain"`
	RawAverage float64 `json:"raw_average"`
	Score      float64 `json:"score"` // normalized to 0–100
}

// RoadmapStep is one ordered phase of a multi-year career development plan.
// Step numbers are contiguous and 1-based.
type RoadmapStep struct {
	Step        int    `json:"step"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CareerRecommendation is the structured result of one analysis run. Exactly
// one live row exists per user: re-analysis replaces the previous row
// (delete + insert in a single transaction). List-valued fields are stored as
// JSON columns; the breakdown is a display artifact, not a relational entity.
type CareerRecommendation struct {
	ID                   string         `json:"id"                    gorm:"type:char(36);primaryKey"`
	UserID               string         `json:"user_id"               gorm:"type:varchar(64);not null;index:idx_user_recommendation"`
	DominantDomain       string         `json:"dominant_domain"       gorm:"type:varchar(64);not null"`
	PrimaryCareer        string         `json:"primary_career"        gorm:"type:varchar(255);not null"`
	Reasoning            string         `json:"reasoning"             gorm:"type:text"`
	ScoreBreakdown       []DomainScore  `json:"score_breakdown"       gorm:"serializer:json"`
	AlternativeCareers   []string       `json:"alternative_careers"   gorm:"serializer:json"`
	SkillGaps            []string       `json:"skill_gaps"            gorm:"serializer:json"`
	RoadmapSteps         []RoadmapStep  `json:"roadmap_steps"         gorm:"serializer:json"`
	RecommendedResources []string       `json:"recommended_resources" gorm:"serializer:json"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
	DeletedAt            gorm.DeletedAt `json:"-"                     gorm:"index"`
}

// TableName returns the database table name for CareerRecommendation.
func (CareerRecommendation) TableName() string { return "career_recommendations" }

// College is one row of the static college catalogue used by the matching
// lookup. Domain carries a canonical career domain label.
type College struct {
	ID        string    `json:"id"      gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name"    gorm:"type:varchar(255);not null"`
	Domain    string    `json:"domain"  gorm:"type:varchar(64);not null;index"`
	Course    string    `json:"course"  gorm:"type:varchar(255);not null"`
	City      string    `json:"city"    gorm:"type:varchar(128);not null"`
	State     string    `json:"state"   gorm:"type:varchar(128);not null;index"`
	Website   string    `json:"website,omitempty" gorm:"type:varchar(512)"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name for College.
func (College) TableName() string { return "colleges" }
