package controller

import (
	"errors"

	"quizify_backend/internal/model"
	"quizify_backend/internal/repository"
	"quizify_backend/internal/service"
	"quizify_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService    *service.QuizService
	ScoringService *service.ScoringService
	RankingService *service.RankingService
	UserService    *service.UserService
}

func NewQuizController(
	quizService *service.QuizService,
	scoringService *service.ScoringService,
	rankingService *service.RankingService,
	userService *service.UserService,
) *QuizController {
	return &QuizController{
		QuizService:    quizService,
		ScoringService: scoringService,
		RankingService: rankingService,
		UserService:    userService,
	}
}

// List godoc
// @Summary Browse quizzes
// @Description Paginated listing with category, difficulty, creator, like count and the caller's like flag
// @Tags quizzes
// @Produce json
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(12)
// @Param category_id query int false "Category filter"
// @Param difficulty_id query int false "Difficulty filter"
// @Param search query string false "Name substring filter"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/quizzes [get]
func (c *QuizController) List(ctx *gin.Context) {
	page, limit := pagination(ctx, 12)
	var viewerID uint
	if claims := util.GetUserFromContext(ctx); claims != nil {
		viewerID = claims.UserID
	}
	filter := repository.QuizFilter{
		CategoryID:   util.MustParseUint(ctx.Query("category_id")),
		DifficultyID: util.MustParseUint(ctx.Query("difficulty_id")),
		Search:       ctx.Query("search"),
	}

	quizzes, total, err := c.QuizService.List(page, limit, viewerID, filter)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, pageData(quizzes, total, page, limit))
}

// Create godoc
// @Summary Create a quiz
// @Description Quiz with questions and options in one transaction; unverified regular users are capped at 5 questions and a fixed 15-minute duration
// @Tags quizzes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.QuizCreate true "Quiz payload"
// @Success 201 {object} util.Response{data=object}
// @Failure 400 {object} util.Response "no correct answer or question limit"
// @Failure 404 {object} util.Response "unknown category"
// @Router /api/quizzes [post]
func (c *QuizController) Create(ctx *gin.Context) {
	var req service.QuizCreate
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if len(req.Questions) == 0 {
		util.BadRequest(ctx, "quiz needs at least one question")
		return
	}

	claims := util.GetUserFromContext(ctx)
	creator, err := c.UserService.GetByUsername(claims.Username)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	quiz, err := c.QuizService.Create(userFromRow(creator), req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrCategoryNotFound):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrNoCorrectAnswer), errors.Is(err, util.ErrQuestionLimit):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, gin.H{"quiz_id": quiz.QuizID, "quiz_name": quiz.QuizName})
}

// Get godoc
// @Summary Get one quiz
// @Tags quizzes
// @Produce json
// @Param id path int true "Quiz id"
// @Success 200 {object} util.Response{data=model.QuizListing}
// @Failure 404 {object} util.Response
// @Router /api/quizzes/{id} [get]
func (c *QuizController) Get(ctx *gin.Context) {
	var viewerID uint
	if claims := util.GetUserFromContext(ctx); claims != nil {
		viewerID = claims.UserID
	}

	listing, err := c.QuizService.Get(util.MustParseUint(ctx.Param("id")), viewerID)
	if err != nil {
		if errors.Is(err, util.ErrQuizNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, listing)
}

// Update godoc
// @Summary Update a quiz header
// @Tags quizzes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Quiz id"
// @Param body body service.QuizUpdate true "Fields to change"
// @Success 200 {object} util.Response{data=model.Quiz}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/quizzes/{id} [put]
func (c *QuizController) Update(ctx *gin.Context) {
	var req service.QuizUpdate
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz, err := c.QuizService.Update(util.MustParseUint(ctx.Param("id")), util.GetUserFromContext(ctx), req)
	if err != nil {
		c.quizError(ctx, err)
		return
	}
	util.Success(ctx, quiz)
}

// Delete godoc
// @Summary Delete a quiz
// @Description Cascades to questions, options, attempts and likes
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Quiz id"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/quizzes/{id} [delete]
func (c *QuizController) Delete(ctx *gin.Context) {
	if err := c.QuizService.Delete(util.MustParseUint(ctx.Param("id")), util.GetUserFromContext(ctx)); err != nil {
		c.quizError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}

// Questions godoc
// @Summary Playable question set
// @Description Questions with their options in position order; 204 when the quiz has none
// @Tags quizzes
// @Produce json
// @Param id path int true "Quiz id"
// @Success 200 {object} util.Response{data=[]model.QuizQuestionView}
// @Success 204 "no questions"
// @Failure 404 {object} util.Response
// @Router /api/quizzes/{id}/questions [get]
func (c *QuizController) Questions(ctx *gin.Context) {
	questions, err := c.QuizService.Questions(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		c.quizError(ctx, err)
		return
	}
	if len(questions) == 0 {
		util.NoContent(ctx)
		return
	}
	util.Success(ctx, questions)
}

// swagger:model SubmitRequest
type SubmitRequest struct {
	Answers []service.SubmittedAnswer `json:"answers"`
}

// Submit godoc
// @Summary Submit quiz answers
// @Description Scores the submission atomically, credits the user's total score and refreshes the global ranking
// @Tags quizzes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Quiz id"
// @Param body body SubmitRequest true "Submitted answers"
// @Success 200 {object} util.Response{data=service.SubmitResult}
// @Failure 400 {object} util.Response "answer does not belong to the quiz"
// @Failure 404 {object} util.Response
// @Router /api/quizzes/{id}/submit [post]
func (c *QuizController) Submit(ctx *gin.Context) {
	var req SubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	result, err := c.ScoringService.SubmitQuiz(claims.UserID, claims.Username, util.MustParseUint(ctx.Param("id")), req.Answers)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrQuizNotFound):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrQuestionNotInQuiz), errors.Is(err, util.ErrAnswerNotInQuest):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, result)
}

// Leaderboard godoc
// @Summary Per-quiz leaderboard
// @Description Best attempt per user ranked by score then earliest finish; 204 when nobody attempted the quiz
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Quiz id"
// @Success 200 {object} util.Response{data=service.Leaderboard}
// @Success 204 "no attempts"
// @Failure 404 {object} util.Response
// @Router /api/quizzes/{id}/leaderboard [get]
func (c *QuizController) Leaderboard(ctx *gin.Context) {
	quizID := util.MustParseUint(ctx.Param("id"))
	if _, err := c.QuizService.Get(quizID, 0); err != nil {
		c.quizError(ctx, err)
		return
	}

	claims := util.GetUserFromContext(ctx)
	board, err := c.RankingService.QuizLeaderboard(quizID, claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if board == nil {
		util.NoContent(ctx)
		return
	}
	util.Success(ctx, board)
}

// Like godoc
// @Summary Toggle a like
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Quiz id"
// @Success 200 {object} util.Response{data=object} "liked flag and new total"
// @Failure 404 {object} util.Response
// @Router /api/quizzes/{id}/like [post]
func (c *QuizController) Like(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	liked, likes, err := c.QuizService.ToggleLike(util.MustParseUint(ctx.Param("id")), claims.UserID)
	if err != nil {
		c.quizError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"liked": liked, "likes": likes})
}

// Difficulties godoc
// @Summary List difficulties
// @Tags quizzes
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Difficulty}
// @Router /api/quizzes/difficulties [get]
func (c *QuizController) Difficulties(ctx *gin.Context) {
	difficulties, err := c.QuizService.Difficulties()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, difficulties)
}

// DifficultyStats godoc
// @Summary Attempt histogram by difficulty
// @Description Site-wide for anonymous callers, personal when authenticated
// @Tags quizzes
// @Produce json
// @Success 200 {object} util.Response{data=[]model.DifficultyStat}
// @Router /api/quizzes/difficulty-stats [get]
func (c *QuizController) DifficultyStats(ctx *gin.Context) {
	var userID uint
	if claims := util.GetUserFromContext(ctx); claims != nil {
		userID = claims.UserID
	}

	stats, err := c.QuizService.DifficultyStats(userID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

// MyStats godoc
// @Summary Personal attempt history
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.PersonalStat}
// @Router /api/quizzes/my-stats [get]
func (c *QuizController) MyStats(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	stats, err := c.QuizService.MyStats(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

// userFromRow rebuilds the fields creation checks need from a listing row.
func userFromRow(row *model.UserWithRole) *model.User {
	return &model.User{
		UserID:   row.UserID,
		RoleID:   row.RoleID,
		Username: row.Username,
		Verified: row.Verified,
	}
}

func (c *QuizController) quizError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrQuizNotFound), errors.Is(err, util.ErrCategoryNotFound):
		util.NotFound(ctx, err.Error())
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	case errors.Is(err, util.ErrNoCorrectAnswer):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
