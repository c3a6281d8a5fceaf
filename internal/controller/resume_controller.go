package controller

import (
	"net/http"

	"sensai_backend/internal/model"
	"sensai_backend/internal/service"
	"sensai_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ResumeController struct {
	ResumeService *service.ResumeService
}

func NewResumeController(resumeService *service.ResumeService) *ResumeController {
	return &ResumeController{ResumeService: resumeService}
}

type ExperienceInput struct {
	Company     string `json:"company" binding:"required"`
	Role        string `json:"role" binding:"required"`
	Start       string `json:"start" binding:"required"`
	End         string `json:"end" binding:"required"`
	Description string `json:"description"`
}

type EducationInput struct {
	School  string `json:"school" binding:"required"`
	Degree  string `json:"degree" binding:"required"`
	Start   string `json:"start" binding:"required"`
	End     string `json:"end" binding:"required"`
	Details string `json:"details"`
}

type ProjectInput struct {
	Name        string `json:"name" binding:"required"`
	Link        string `json:"link"`
	Description string `json:"description"`
}

type UpsertResumeRequest struct {
	UserID      string            `json:"user_id" binding:"required"`
	Email       string            `json:"email"`
	LinkedIn    string            `json:"linkedin"`
	Twitter     string            `json:"twitter"`
	Summary     string            `json:"summary"`
	Skills      []string          `json:"skills"`
	Experiences []ExperienceInput `json:"experiences" binding:"omitempty,dive"`
	Education   []EducationInput  `json:"education" binding:"omitempty,dive"`
	Projects    []ProjectInput    `json:"projects" binding:"omitempty,dive"`
}

// @Summary Upsert a resume profile
// @Description Fully replaces the user's resume document, keeping created_at
// @Tags resume
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/resume [post]
func (c *ResumeController) UpsertResume(ctx *gin.Context) {
	var req UpsertResumeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	profile := &model.ResumeProfile{
		UserID:   req.UserID,
		Email:    req.Email,
		LinkedIn: req.LinkedIn,
		Twitter:  req.Twitter,
		Summary:  req.Summary,
		Skills:   req.Skills,
	}
	for _, e := range req.Experiences {
		profile.Experiences = append(profile.Experiences, model.ResumeExperience(e))
	}
	for _, e := range req.Education {
		profile.Education = append(profile.Education, model.ResumeEducation(e))
	}
	for _, p := range req.Projects {
		profile.Projects = append(profile.Projects, model.ResumeProject(p))
	}

	if err := c.ResumeService.UpsertProfile(ctx.Request.Context(), profile); err != nil {
		writeStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}

// @Summary Fetch a resume profile
// @Description Returns the stored resume, or an empty object when none exists
// @Tags resume
// @Produce json
// @Param user_id query string true "user id"
// @Success 200 {object} model.ResumeProfile
// @Router /api/resume [get]
func (c *ResumeController) GetResume(ctx *gin.Context) {
	userID := ctx.Query("user_id")
	if userID == "" {
		util.BadRequest(ctx, "user_id is required")
		return
	}

	profile, err := c.ResumeService.GetProfile(ctx.Request.Context(), userID)
	if err != nil {
		writeStoreError(ctx, err)
		return
	}

	// No resume yet is an empty success, not an error.
	if profile == nil {
		ctx.JSON(http.StatusOK, gin.H{})
		return
	}

	ctx.JSON(http.StatusOK, profile)
}
