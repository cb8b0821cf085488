package controller

import (
	"errors"

	"quizify_backend/internal/service"
	"quizify_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
	UserService *service.UserService
}

func NewAuthController(authService *service.AuthService, userService *service.UserService) *AuthController {
	return &AuthController{AuthService: authService, UserService: userService}
}

// swagger:model RegisterRequest
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// swagger:model LoginRequest
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register godoc
// @Summary Register a new account
// @Description Creates a regular-role user and enters it into the ranking
// @Tags auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Registration payload"
// @Success 201 {object} util.Response{data=object} "created"
// @Failure 400 {object} util.Response "invalid payload"
// @Failure 409 {object} util.Response "username or email taken"
// @Failure 500 {object} util.Response "internal error"
// @Router /api/auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.AuthService.Register(req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, util.ErrUserExists) {
			util.Conflict(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{"user_id": user.UserID, "username": user.Username})
}

// Login godoc
// @Summary Log in
// @Description Verifies credentials and returns a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} util.Response{data=object} "token"
// @Failure 400 {object} util.Response "invalid payload"
// @Failure 401 {object} util.Response "bad credentials"
// @Router /api/auth [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, user, err := c.AuthService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) || errors.Is(err, util.ErrPermissionDenied) {
			util.Error(ctx, 401, "Invalid username or password")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{
		"token":    token,
		"user_id":  user.UserID,
		"username": user.Username,
		"role_id":  user.RoleID,
	})
}

// Whoami godoc
// @Summary Current session
// @Description Returns the caller's identity, or nulls when anonymous
// @Tags auth
// @Produce json
// @Success 200 {object} util.Response{data=object} "identity"
// @Router /api/auth [get]
func (c *AuthController) Whoami(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Success(ctx, gin.H{"username": nil, "role_id": nil})
		return
	}

	user, err := c.UserService.GetByUsername(claims.Username)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.Success(ctx, gin.H{"username": nil, "role_id": nil})
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{
		"username": user.Username,
		"role_id":  user.RoleID,
		"role":     user.RoleName,
		"verified": user.Verified,
	})
}

// Logout godoc
// @Summary Log out
// @Description Stateless acknowledgement; the client discards its token
// @Tags auth
// @Produce json
// @Success 200 {object} util.Response "logged out"
// @Router /api/auth [delete]
func (c *AuthController) Logout(ctx *gin.Context) {
	util.Success(ctx, gin.H{"logged_out": true})
}
