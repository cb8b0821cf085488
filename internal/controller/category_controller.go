package controller

import (
	"errors"

	"quizify_backend/internal/service"
	"quizify_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	CategoryService *service.CategoryService
}

func NewCategoryController(categoryService *service.CategoryService) *CategoryController {
	return &CategoryController{CategoryService: categoryService}
}

// swagger:model CategoryRequest
type CategoryRequest struct {
	CategoryName string `json:"category_name" binding:"required,min=2,max=100"`
}

// List godoc
// @Summary List categories
// @Description Sorted by name; 204 when none exist
// @Tags categories
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Category}
// @Success 204 "no categories"
// @Router /api/categories [get]
func (c *CategoryController) List(ctx *gin.Context) {
	categories, err := c.CategoryService.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if len(categories) == 0 {
		util.NoContent(ctx)
		return
	}
	util.Success(ctx, categories)
}

// Create godoc
// @Summary Create a category
// @Description Names are unique case-insensitively
// @Tags categories
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CategoryRequest true "Category payload"
// @Success 201 {object} util.Response{data=model.Category}
// @Failure 409 {object} util.Response "duplicate name"
// @Router /api/categories [post]
func (c *CategoryController) Create(ctx *gin.Context) {
	var req CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	category, err := c.CategoryService.Create(req.CategoryName)
	if err != nil {
		c.categoryError(ctx, err)
		return
	}
	util.Created(ctx, category)
}

// Update godoc
// @Summary Rename a category
// @Tags categories
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Category id"
// @Param body body CategoryRequest true "New name"
// @Success 200 {object} util.Response{data=model.Category}
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response "duplicate name"
// @Router /api/categories/{id} [put]
func (c *CategoryController) Update(ctx *gin.Context) {
	var req CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	category, err := c.CategoryService.Rename(util.MustParseUint(ctx.Param("id")), req.CategoryName)
	if err != nil {
		c.categoryError(ctx, err)
		return
	}
	util.Success(ctx, category)
}

// Delete godoc
// @Summary Delete a category
// @Description Refused with 409 while quizzes still reference it
// @Tags categories
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Category id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response "category in use"
// @Router /api/categories/{id} [delete]
func (c *CategoryController) Delete(ctx *gin.Context) {
	if err := c.CategoryService.Delete(util.MustParseUint(ctx.Param("id"))); err != nil {
		c.categoryError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}

func (c *CategoryController) categoryError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrCategoryNotFound):
		util.NotFound(ctx, err.Error())
	case errors.Is(err, util.ErrCategoryExists), errors.Is(err, util.ErrCategoryInUse):
		util.Conflict(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
