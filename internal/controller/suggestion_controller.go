package controller

import (
	"errors"

	"quizify_backend/internal/model"
	"quizify_backend/internal/service"
	"quizify_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SuggestionController struct {
	SuggestionService *service.SuggestionService
}

func NewSuggestionController(suggestionService *service.SuggestionService) *SuggestionController {
	return &SuggestionController{SuggestionService: suggestionService}
}

// swagger:model SuggestionRequest
type SuggestionRequest struct {
	Title       string `json:"title" binding:"required,min=3,max=255"`
	Description string `json:"description" binding:"required"`
}

// swagger:model SuggestionStatusRequest
type SuggestionStatusRequest struct {
	Status model.SuggestionStatus `json:"status" binding:"required"`
}

// Submit godoc
// @Summary Submit a suggestion
// @Tags suggestions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body SuggestionRequest true "Suggestion payload"
// @Success 201 {object} util.Response{data=model.Suggestion}
// @Failure 400 {object} util.Response
// @Router /api/suggestions [post]
func (c *SuggestionController) Submit(ctx *gin.Context) {
	var req SuggestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	suggestion, err := c.SuggestionService.Submit(claims.UserID, req.Title, req.Description)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, suggestion)
}

// List godoc
// @Summary List suggestions
// @Description Staff review listing joined with submitter and reviewer names
// @Tags suggestions
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(20)
// @Param status query string false "pending | approved | rejected"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Failure 400 {object} util.Response "unknown status"
// @Router /api/suggestions [get]
func (c *SuggestionController) List(ctx *gin.Context) {
	page, limit := pagination(ctx, 20)
	status := model.SuggestionStatus(ctx.Query("status"))
	if status != "" && !model.ValidSuggestionStatus(status) {
		util.BadRequest(ctx, "unknown suggestion status")
		return
	}

	views, total, err := c.SuggestionService.List(page, limit, status, 0)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, pageData(views, total, page, limit))
}

// SetStatus godoc
// @Summary Review a suggestion
// @Description pending clears the reviewer, approved/rejected stamp the acting reviewer and time
// @Tags suggestions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Suggestion id"
// @Param body body SuggestionStatusRequest true "Target status"
// @Success 200 {object} util.Response{data=model.Suggestion}
// @Failure 400 {object} util.Response "unknown status"
// @Failure 404 {object} util.Response
// @Router /api/suggestions/{id}/status [patch]
func (c *SuggestionController) SetStatus(ctx *gin.Context) {
	var req SuggestionStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if !model.ValidSuggestionStatus(req.Status) {
		util.BadRequest(ctx, "unknown suggestion status")
		return
	}

	claims := util.GetUserFromContext(ctx)
	suggestion, err := c.SuggestionService.SetStatus(util.MustParseUint(ctx.Param("id")), req.Status, claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrSuggestionNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, suggestion)
}
