// Profile HTTP handlers.
//
//   - GET  /profile   (fetch the current user's profile)
//   - PUT  /profile   (create or update it)
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-career-backend/internal/domain"
	"github.com/tbourn/go-career-backend/internal/services"
)

// UpsertProfileRequest is the JSON payload for creating or updating a profile.
type UpsertProfileRequest struct {
	// FullName is the only required field (1–255 chars).
	FullName        string   `json:"full_name" binding:"required,min=1,max=255" example:"Priya Sharma"`
	MainSkill       string   `json:"main_skill" example:"software development"`
	InterestArea    string   `json:"interest_area" example:"machine learning"`
	Goals           string   `json:"goals" example:"build products people use"`
	Hobbies         string   `json:"hobbies" example:"reading, chess"`
	DailyHabits     string   `json:"daily_habits" example:"coding practice"`
	MarksPercentage *float64 `json:"marks_percentage,omitempty" example:"87.5"`
	LocationCity    string   `json:"location_city" example:"Boston"`
	LocationState   string   `json:"location_state" example:"Massachusetts"`
}

// GetProfile godoc
// @ID          getProfile
// @Summary     Get the current user's profile
// @Tags        Profile
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
//
// @Success     200  {object}  domain.Profile
// @Failure     404  {object}  handlers.ErrorResponse  "No profile yet"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /profile [get]
func (h *Handlers) GetProfile(c *gin.Context) {
	p, err := h.profileSvc.Get(c.Request.Context(), userID(c))
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "profile not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, p)
}

// UpsertProfile godoc
// @ID          upsertProfile
// @Summary     Create or update the current user's profile
// @Description First write creates the profile; later writes update it in place.
// @Tags        Profile
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
// @Param       body       body    handlers.UpsertProfileRequest  true  "Profile payload"
//
// @Success     200  {object}  domain.Profile
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /profile [put]
func (h *Handlers) UpsertProfile(c *gin.Context) {
	var req UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	p, err := h.profileSvc.Upsert(c.Request.Context(), userID(c), &domain.Profile{
		FullName:        req.FullName,
		MainSkill:       req.MainSkill,
		InterestArea:    req.InterestArea,
		Goals:           req.Goals,
		Hobbies:         req.Hobbies,
		DailyHabits:     req.DailyHabits,
		MarksPercentage: req.MarksPercentage,
		LocationCity:    req.LocationCity,
		LocationState:   req.LocationState,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyFullName):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "full_name is required")
		case errors.Is(err, services.ErrInvalidMarks):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "marks_percentage must be between 0 and 100")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeSaveFailed, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, p)
}
