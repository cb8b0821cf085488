package controller

import (
	"errors"

	"quizify_backend/internal/service"
	"quizify_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	QuestionService *service.QuestionService
}

func NewQuestionController(questionService *service.QuestionService) *QuestionController {
	return &QuestionController{QuestionService: questionService}
}

// Update godoc
// @Summary Update a question
// @Description Partial update of text, time limit and the answer set; a replaced answer set must keep at least one correct option. 204 when the body carries no fields.
// @Tags questions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Question id"
// @Param body body service.QuestionUpdate true "Fields to change"
// @Success 200 {object} util.Response
// @Success 204 "nothing to change"
// @Failure 400 {object} util.Response "all answers incorrect"
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/questions/{id} [put]
func (c *QuestionController) Update(ctx *gin.Context) {
	var req service.QuestionUpdate
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if req.Empty() {
		util.NoContent(ctx)
		return
	}

	err := c.QuestionService.Update(util.MustParseUint(ctx.Param("id")), util.GetUserFromContext(ctx), req)
	if err != nil {
		c.questionError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"updated": true})
}

// Delete godoc
// @Summary Delete a question
// @Description Cascades to options and recorded attempt answers
// @Tags questions
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Question id"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/questions/{id} [delete]
func (c *QuestionController) Delete(ctx *gin.Context) {
	err := c.QuestionService.Delete(util.MustParseUint(ctx.Param("id")), util.GetUserFromContext(ctx))
	if err != nil {
		c.questionError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}

func (c *QuestionController) questionError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrQuestionNotFound):
		util.NotFound(ctx, err.Error())
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	case errors.Is(err, util.ErrNoCorrectAnswer):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
