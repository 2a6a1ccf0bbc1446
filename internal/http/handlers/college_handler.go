// College matching HTTP handler.
//
//   - GET /colleges/matches  (colleges for the user's dominant career domain)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-career-backend/internal/domain"
	"github.com/tbourn/go-career-backend/internal/utils"
)

// CollegeMatchesResponse is the matching lookup result.
type CollegeMatchesResponse struct {
	// Domain the matching ran against (a canonical career domain).
	Domain   string           `json:"domain" example:"Technology"`
	Colleges []domain.College `json:"colleges"`
}

// MatchColleges godoc
// @ID          matchColleges
// @Summary     List matched colleges
// @Description Returns colleges for the user's dominant career domain, preferring in-state rows when the profile has a state. Users without a recommendation get the Technology catalogue.
// @Tags        Colleges
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
// @Param       limit      query   int     false "Max results"            minimum(1) maximum(50) default(10)
//
// @Success     200  {object}  handlers.CollegeMatchesResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /colleges/matches [get]
func (h *Handlers) MatchColleges(c *gin.Context) {
	limit := utils.ClampInt(utils.AtoiDefault(c.Query("limit"), h.CollegeMax), 1, 50)

	m, err := h.collegeSvc.Match(c.Request.Context(), userID(c), limit)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, CollegeMatchesResponse{Domain: m.Domain, Colleges: m.Colleges})
}
