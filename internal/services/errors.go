// Package services defines the business logic for profiles, assessments,
// career analysis, and college matching. This file centralizes common
// service-level error values so that they can be consistently returned by
// service methods and checked by callers.
//
// These errors are intended for internal use by the service layer; translation
// into user-facing messages or HTTP status codes is performed at the
// handler layer.
package services

import "errors"

var (
	// ErrProfileNotFound indicates the user has not created a profile yet.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrRecommendationNotFound indicates the user has no stored
	// recommendation (they have not run an analysis yet).
	ErrRecommendationNotFound = errors.New("recommendation not found")

	// ErrInsufficientData is returned when analysis is requested before any
	// assessment answers exist. The caller should complete the assessment
	// first; retrying without new answers cannot succeed.
	ErrInsufficientData = errors.New("no assessment data found")

	// ErrUpstreamRateLimited wraps a 429 from the completion service. The
	// user may retry the analysis later; no automatic retry happens.
	ErrUpstreamRateLimited = errors.New("analysis service rate limited, try again later")

	// ErrUpstreamBilling wraps a 402 from the completion service. Retrying
	// cannot help until an operator adds credits.
	ErrUpstreamBilling = errors.New("analysis credits exhausted")

	// ErrEmptyFullName is returned when a profile update carries no name.
	ErrEmptyFullName = errors.New("full name is required")

	// ErrInvalidMarks is returned when marks percentage is outside [0,100].
	ErrInvalidMarks = errors.New("marks percentage must be between 0 and 100")

	// ErrInvalidAnswerValue is returned when a Likert value is outside 1–5.
	ErrInvalidAnswerValue = errors.New("answer value must be between 1 and 5")

	// ErrUnknownQuestion is returned when an answer references a question id
	// that does not exist.
	ErrUnknownQuestion = errors.New("unknown question")

	// ErrNoAnswers is returned when an answer submission carries no entries.
	ErrNoAnswers = errors.New("no answers submitted")
)
