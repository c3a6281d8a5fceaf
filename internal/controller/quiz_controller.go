package controller

import (
	"errors"
	"net/http"
	"strconv"

	"sensai_backend/internal/model"
	"sensai_backend/internal/service"
	"sensai_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// Required integers are pointers so a legitimate zero survives the
// required check.
type SubmitQuizRequest struct {
	UserID         string `json:"user_id" binding:"required"`
	Score          *int   `json:"score" binding:"required,gte=0,lte=100"`
	TotalQuestions *int   `json:"total_questions" binding:"required,gte=1"`
	CorrectAnswers *int   `json:"correct_answers" binding:"required,gte=0"`
	Feedback       string `json:"feedback"`
}

// @Summary Submit a quiz result
// @Description Appends one quiz result to the user's history
// @Tags quiz
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/quiz [post]
func (c *QuizController) SubmitQuiz(ctx *gin.Context) {
	var req SubmitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	// correct_answers is deliberately not checked against total_questions.
	result := &model.QuizResult{
		UserID:         req.UserID,
		Score:          *req.Score,
		TotalQuestions: *req.TotalQuestions,
		CorrectAnswers: *req.CorrectAnswers,
		Feedback:       req.Feedback,
	}

	id, err := c.QuizService.SubmitResult(ctx.Request.Context(), result)
	if err != nil {
		writeStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"id": id, "ok": true})
}

// @Summary Quiz statistics
// @Description Aggregates the user's whole quiz history
// @Tags quiz
// @Produce json
// @Param user_id query string true "user id"
// @Success 200 {object} model.QuizStats
// @Router /api/quiz/stats [get]
func (c *QuizController) GetStats(ctx *gin.Context) {
	userID := ctx.Query("user_id")
	if userID == "" {
		util.BadRequest(ctx, "user_id is required")
		return
	}

	stats, err := c.QuizService.GetStats(ctx.Request.Context(), userID)
	if err != nil {
		writeStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// @Summary Recent quiz results
// @Description Up to limit results, newest first
// @Tags quiz
// @Produce json
// @Param user_id query string true "user id"
// @Param limit query int false "max results" default(5)
// @Success 200 {array} model.QuizResult
// @Router /api/quiz/recent [get]
func (c *QuizController) GetRecent(ctx *gin.Context) {
	userID := ctx.Query("user_id")
	if userID == "" {
		util.BadRequest(ctx, "user_id is required")
		return
	}

	limit, err := strconv.ParseInt(ctx.DefaultQuery("limit", "5"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "limit must be an integer")
		return
	}

	items, err := c.QuizService.GetRecent(ctx.Request.Context(), userID, limit)
	if err != nil {
		writeStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, items)
}

// writeStoreError maps repository failures onto HTTP statuses. Both the
// unconfigured store and a transient outage are server-side conditions.
func writeStoreError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrStoreNotConfigured):
		util.InternalServerError(ctx, "Database not configured")
	case errors.Is(err, util.ErrStoreUnavailable):
		util.InternalServerError(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
