package controller

import (
	"errors"
	"strconv"

	"quizify_backend/internal/service"
	"quizify_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService    *service.UserService
	RankingService *service.RankingService
}

func NewUserController(userService *service.UserService, rankingService *service.RankingService) *UserController {
	return &UserController{UserService: userService, RankingService: rankingService}
}

// swagger:model CreateUserRequest
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	RoleID   uint   `json:"role_id" binding:"required"`
	Verified bool   `json:"verified"`
}

// List godoc
// @Summary List users
// @Description Paginated user listing ordered by rank, staff only
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(20)
// @Param search query string false "Username substring filter"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Failure 401 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/users [get]
func (c *UserController) List(ctx *gin.Context) {
	page, limit := pagination(ctx, 20)
	search := ctx.Query("search")

	users, total, err := c.UserService.List(page, limit, search)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, pageData(users, total, page, limit))
}

// Create godoc
// @Summary Create a user
// @Description Staff creation path with an explicit role
// @Tags users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CreateUserRequest true "User payload"
// @Success 201 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response "unknown role"
// @Failure 409 {object} util.Response "duplicate"
// @Router /api/users [post]
func (c *UserController) Create(ctx *gin.Context) {
	var req CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.Create(req.Username, req.Email, req.Password, req.RoleID, req.Verified)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrRoleNotFound):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrUserExists):
			util.Conflict(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{"user_id": user.UserID, "username": user.Username})
}

// Get godoc
// @Summary Get one user
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Param username path string true "Username"
// @Success 200 {object} util.Response{data=model.UserWithRole}
// @Failure 404 {object} util.Response
// @Router /api/users/{username} [get]
func (c *UserController) Get(ctx *gin.Context) {
	user, err := c.UserService.GetByUsername(ctx.Param("username"))
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, user)
}

// Update godoc
// @Summary Update a user
// @Description Partial update of email, role and verified flag; verification flips are audit-logged
// @Tags users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param username path string true "Username"
// @Param body body service.UserUpdate true "Fields to change"
// @Success 200 {object} util.Response{data=model.UserWithRole}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/users/{username} [put]
func (c *UserController) Update(ctx *gin.Context) {
	var req service.UserUpdate
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	performer := util.GetUserFromContext(ctx).Username
	user, err := c.UserService.Update(ctx.Param("username"), req, performer)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUserNotFound), errors.Is(err, util.ErrRoleNotFound):
			util.NotFound(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, user)
}

// Delete godoc
// @Summary Delete a user
// @Description Administrator accounts cannot be deleted
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Param username path string true "Username"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response "target is an administrator"
// @Failure 404 {object} util.Response
// @Router /api/users/{username} [delete]
func (c *UserController) Delete(ctx *gin.Context) {
	err := c.UserService.Delete(ctx.Param("username"))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrCannotDeleteAdmin):
			util.Error(ctx, 403, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}

// Leaderboard godoc
// @Summary Global leaderboard
// @Description Top 10 by rank; the caller's own row is attached when ranked below the top 10
// @Tags users
// @Produce json
// @Success 200 {object} util.Response{data=service.Leaderboard}
// @Router /api/users/leaderboard [get]
func (c *UserController) Leaderboard(ctx *gin.Context) {
	var viewerID uint
	if claims := util.GetUserFromContext(ctx); claims != nil {
		viewerID = claims.UserID
	}

	board, err := c.RankingService.GlobalLeaderboard(viewerID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, board)
}

// pagination reads page/limit query params with sane bounds.
func pagination(ctx *gin.Context, defaultLimit int) (int, int) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = defaultLimit
	}
	return page, limit
}

func pageData(list interface{}, total int64, page, limit int) util.PageResponse {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return util.PageResponse{
		List:       list,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}
