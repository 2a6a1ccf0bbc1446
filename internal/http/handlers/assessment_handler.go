// Assessment HTTP handlers.
//
//   - GET  /assessment/questions  (list the Likert question bank, paginated)
//   - POST /assessment/answers    (submit a batch of 1–5 answers)
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-career-backend/internal/domain"
	"github.com/tbourn/go-career-backend/internal/services"
	"github.com/tbourn/go-career-backend/internal/utils"
)

// SubmitAnswersRequest is the JSON payload for an answer batch. Keys are
// question IDs, values are Likert ratings in 1..5.
type SubmitAnswersRequest struct {
	Answers map[string]int `json:"answers" binding:"required"`
}

// Pagination carries pagination metadata for list responses.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
}

// ListQuestionsResponse wraps a page of questions and pagination information.
type ListQuestionsResponse struct {
	Questions  []domain.AssessmentQuestion `json:"questions"`
	Pagination Pagination                  `json:"pagination"`
}

// clampPagination parses and bounds page and page_size query params to sane
// defaults and limits, returning (page, pageSize).
func clampPagination(c *gin.Context) (page, pageSize int) {
	const (
		defaultPage     = 1
		defaultPageSize = 20
		maxPageSize     = 100
	)
	page = utils.AtoiDefault(c.Query("page"), defaultPage)
	if page < 1 {
		page = 1
	}
	pageSize = utils.AtoiDefault(c.Query("page_size"), defaultPageSize)
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return
}

// ListQuestions godoc
// @ID          listQuestions
// @Summary     List assessment questions (paginated)
// @Description Returns a page of the Likert question bank in display order.
// @Tags        Assessment
// @Produce     json
//
// @Param       page       query  int  false "Page number"     minimum(1) default(1)
// @Param       page_size  query  int  false "Items per page"  minimum(1) maximum(100) default(20)
//
// @Success     200  {object}  handlers.ListQuestionsResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /assessment/questions [get]
func (h *Handlers) ListQuestions(c *gin.Context) {
	page, pageSize := clampPagination(c)

	items, total, err := h.assessmentSvc.Questions(c.Request.Context(), pageSize, (page-1)*pageSize)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	resp := ListQuestionsResponse{
		Questions: items,
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
		},
	}
	ok(c, http.StatusOK, resp)
}

// SubmitAnswers godoc
// @ID          submitAnswers
// @Summary     Submit assessment answers
// @Description Records a batch of Likert answers. Resubmitting a question replaces the previous value.
// @Tags        Assessment
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
// @Param       body       body    handlers.SubmitAnswersRequest  true  "Answer batch"
//
// @Success     204  {string}  string "No Content"
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /assessment/answers [post]
func (h *Handlers) SubmitAnswers(c *gin.Context) {
	var req SubmitAnswersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	if err := h.assessmentSvc.Submit(c.Request.Context(), userID(c), req.Answers); err != nil {
		switch {
		case errors.Is(err, services.ErrNoAnswers):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "answers must not be empty")
		case errors.Is(err, services.ErrInvalidAnswerValue):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "answer values must be between 1 and 5")
		case errors.Is(err, services.ErrUnknownQuestion):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "unknown question id in batch")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeSubmitFailed, err.Error())
		}
		return
	}
	noContent(c)
}
