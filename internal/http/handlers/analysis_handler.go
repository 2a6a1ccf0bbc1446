// Career analysis HTTP handlers.
//
// This file exposes REST endpoints for the analysis resource:
//   - POST   /analysis   (run the pipeline, replace the stored recommendation)
//   - GET    /analysis   (fetch the stored recommendation)
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results into HTTP responses. POST honors the Idempotency-Key
// header: a replayed key serves the previously persisted recommendation
// without re-running the pipeline.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tbourn/go-career-backend/internal/ai"
	"github.com/tbourn/go-career-backend/internal/domain"
	"github.com/tbourn/go-career-backend/internal/http/middleware"
	"github.com/tbourn/go-career-backend/internal/repo"
	"github.com/tbourn/go-career-backend/internal/services"
)

// idemScopeAnalysis partitions idempotency keys per operation so the same key
// can be reused against different endpoints without collisions.
const idemScopeAnalysis = "analysis"

//
// Service contracts (context-aware)
//

// AnalysisService defines the career analysis operations consumed by HTTP
// handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type AnalysisService interface {
	// Analyze runs the full pipeline and replaces the stored recommendation.
	Analyze(ctx context.Context, userID string) (*services.AnalysisResult, error)
	// Current returns the stored recommendation without re-running anything.
	Current(ctx context.Context, userID string) (*domain.CareerRecommendation, error)
}

// ProfileService defines profile read/write operations.
type ProfileService interface {
	Get(ctx context.Context, userID string) (*domain.Profile, error)
	Upsert(ctx context.Context, userID string, in *domain.Profile) (*domain.Profile, error)
}

// AssessmentService defines question listing and answer submission.
type AssessmentService interface {
	// Questions returns a page of the question bank plus the total count.
	Questions(ctx context.Context, limit, offset int) ([]domain.AssessmentQuestion, int64, error)
	// Submit records a batch of 1–5 answers keyed by question ID.
	Submit(ctx context.Context, userID string, answers map[string]int) error
}

// CollegeService defines the college matching lookup.
type CollegeService interface {
	Match(ctx context.Context, userID string, limit int) (*services.CollegeMatch, error)
}

//
// Handler wiring
//

// Handlers groups HTTP endpoints for profiles, assessments, analysis, and
// college matching. It depends on abstract service interfaces to keep
// transport concerns separate from business logic. DB and IdemTTL back the
// Idempotency-Key replay bookkeeping on POST /analysis.
type Handlers struct {
	analysisSvc   AnalysisService
	profileSvc    ProfileService
	assessmentSvc AssessmentService
	collegeSvc    CollegeService

	DB         *gorm.DB
	IdemTTL    time.Duration
	CollegeMax int
}

// New constructs and returns a Handlers instance bound to the given services.
func New(analysisSvc AnalysisService, profileSvc ProfileService, assessmentSvc AssessmentService, collegeSvc CollegeService) *Handlers {
	return &Handlers{
		analysisSvc:   analysisSvc,
		profileSvc:    profileSvc,
		assessmentSvc: assessmentSvc,
		collegeSvc:    collegeSvc,
		IdemTTL:       24 * time.Hour,
		CollegeMax:    10,
	}
}

// userID extracts the authenticated user id from Gin context (set by upstream
// middleware). If absent, it falls back to "X-User-ID" header (tests use it),
// and finally to "demo-user". It never touches c.Request if it's nil.
func userID(c *gin.Context) string {
	if v, ok := c.Get("userID"); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	if c != nil && c.Request != nil {
		if h := strings.TrimSpace(c.GetHeader("X-User-ID")); h != "" {
			return h
		}
	}
	return "demo-user"
}

//
// Handlers
//

// RunAnalysis godoc
// @ID          runAnalysis
// @Summary     Run the career analysis
// @Description Scores the user's assessment, resolves the dominant career domain, generates a narrative recommendation, and replaces any previous one. Supports Idempotency-Key replay.
// @Tags        Analysis
// @Produce     json
//
// @Param       X-User-ID        header  string  false "User ID (demo header)"  example(user123)
// @Param       Idempotency-Key  header  string  false "Dedupes retries of the same run"
//
// @Success     200  {object}  domain.CareerRecommendation
// @Failure     400  {object}  handlers.ErrorResponse  "No assessment data"
// @Failure     402  {object}  handlers.ErrorResponse  "Upstream billing exhausted"
// @Failure     429  {object}  handlers.ErrorResponse  "Upstream rate limited"
// @Failure     502  {object}  handlers.ErrorResponse  "Upstream failure"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /analysis [post]
func (h *Handlers) RunAnalysis(c *gin.Context) {
	ctx := c.Request.Context()
	uid := userID(c)

	key, hasKey := middleware.GetIdempotencyKey(c)
	if hasKey && h.DB != nil {
		if rec := h.replayRecommendation(ctx, uid, key); rec != nil {
			middleware.CountAnalysisRun("replay")
			ok(c, http.StatusOK, rec)
			return
		}
	}

	res, err := h.analysisSvc.Analyze(ctx, uid)
	if err != nil {
		h.failAnalysis(c, err)
		return
	}
	middleware.CountAnalysisRun("ok")

	if hasKey && h.DB != nil {
		// Best effort: a lost record just means the retry recomputes.
		_, _ = repo.CreateIdempotency(ctx, h.DB, uid, idemScopeAnalysis, key,
			res.Recommendation.ID, http.StatusOK, h.IdemTTL)
	}

	ok(c, http.StatusOK, res.Recommendation)
}

// replayRecommendation returns the previously persisted recommendation for a
// seen idempotency key, or nil when the key is new or the row has been
// replaced since.
func (h *Handlers) replayRecommendation(ctx context.Context, uid, key string) *domain.CareerRecommendation {
	idem, err := repo.GetIdempotency(ctx, h.DB, uid, idemScopeAnalysis, key, time.Now().UTC())
	if err != nil || idem.RecommendationID == "" {
		return nil
	}
	rec, err := repo.GetRecommendationByID(ctx, h.DB, idem.RecommendationID, uid)
	if err != nil {
		return nil
	}
	return rec
}

// failAnalysis maps pipeline errors onto the HTTP error taxonomy.
func (h *Handlers) failAnalysis(c *gin.Context, err error) {
	var httpErr *ai.HTTPError
	switch {
	case errors.Is(err, services.ErrInsufficientData):
		middleware.CountAnalysisRun("insufficient_data")
		fail(c, http.StatusBadRequest, ErrCodeInsufficientData, services.ErrInsufficientData.Error())
	case errors.Is(err, services.ErrUpstreamRateLimited):
		middleware.CountAnalysisRun("rate_limited")
		fail(c, http.StatusTooManyRequests, ErrCodeRateLimited, "AI service is busy, please try again shortly")
	case errors.Is(err, services.ErrUpstreamBilling):
		middleware.CountAnalysisRun("billing")
		fail(c, http.StatusPaymentRequired, ErrCodePaymentRequired, "AI credits exhausted")
	case errors.As(err, &httpErr):
		middleware.CountAnalysisRun("upstream_error")
		fail(c, http.StatusBadGateway, ErrCodeBadGateway, "AI service failed")
	default:
		middleware.CountAnalysisRun("error")
		fail(c, http.StatusInternalServerError, ErrCodeAnalysisFailed, err.Error())
	}
}

// GetAnalysis godoc
// @ID          getAnalysis
// @Summary     Get the stored recommendation
// @Description Returns the recommendation produced by the most recent analysis run.
// @Tags        Analysis
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
//
// @Success     200  {object}  domain.CareerRecommendation
// @Failure     404  {object}  handlers.ErrorResponse  "No recommendation yet"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /analysis [get]
func (h *Handlers) GetAnalysis(c *gin.Context) {
	rec, err := h.analysisSvc.Current(c.Request.Context(), userID(c))
	if err != nil {
		if errors.Is(err, services.ErrRecommendationNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "no recommendation yet")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, rec)
}
