package controller

import (
	"errors"
	"net/http"

	"sensai_backend/internal/service"
	"sensai_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CoverLetterController struct {
	CoverLetterService *service.CoverLetterService
}

func NewCoverLetterController(coverLetterService *service.CoverLetterService) *CoverLetterController {
	return &CoverLetterController{CoverLetterService: coverLetterService}
}

type CoverLetterRequest struct {
	CompanyName    string `json:"company_name" binding:"required"`
	JobTitle       string `json:"job_title" binding:"required"`
	JobDescription string `json:"job_description" binding:"required"`
	UserName       string `json:"user_name"`
}

// @Summary Generate a cover letter
// @Description Single pass-through call to the generation API
// @Tags cover-letter
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/cover-letter [post]
func (c *CoverLetterController) Generate(ctx *gin.Context) {
	var req CoverLetterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	text, err := c.CoverLetterService.Generate(
		ctx.Request.Context(),
		req.CompanyName,
		req.JobTitle,
		req.JobDescription,
		req.UserName,
	)
	if err != nil {
		// A missing credential is a deployment mistake reported to the caller.
		if errors.Is(err, util.ErrAPIKeyNotSet) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.InternalServerError(ctx, err.Error())
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"text": text})
}
