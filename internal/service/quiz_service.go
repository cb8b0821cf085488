package service

import (
	"errors"

	"quizify_backend/internal/model"
	"quizify_backend/internal/repository"
	"quizify_backend/internal/util"

	"gorm.io/gorm"
)

// Limits applied to creators who cannot customize their quizzes.
const (
	regularQuestionLimit = 5
	regularDurationMins  = 15
)

type QuizService struct {
	quizRepo       *repository.QuizRepository
	userRepo       *repository.UserRepository
	difficultyRepo *repository.DifficultyRepository
	categoryRepo   *repository.CategoryRepository
	likeRepo       *repository.LikeRepository
}

func NewQuizService(
	quizRepo *repository.QuizRepository,
	userRepo *repository.UserRepository,
	difficultyRepo *repository.DifficultyRepository,
	categoryRepo *repository.CategoryRepository,
	likeRepo *repository.LikeRepository,
) *QuizService {
	return &QuizService{
		quizRepo:       quizRepo,
		userRepo:       userRepo,
		difficultyRepo: difficultyRepo,
		categoryRepo:   categoryRepo,
		likeRepo:       likeRepo,
	}
}

func (s *QuizService) List(page, limit int, viewerID uint, filter repository.QuizFilter) ([]model.QuizListing, int64, error) {
	return s.quizRepo.List(page, limit, viewerID, filter)
}

func (s *QuizService) Get(quizID, viewerID uint) (*model.QuizListing, error) {
	listing, err := s.quizRepo.FindListing(quizID, viewerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}
	return listing, nil
}

func (s *QuizService) Questions(quizID uint) ([]model.QuizQuestionView, error) {
	if _, err := s.quizRepo.FindByID(quizID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}
	return s.quizRepo.QuestionsWithAnswers(quizID)
}

// AnswerInput and QuestionInput form the nested quiz creation payload.
type AnswerInput struct {
	AnswerText string `json:"answer_text" binding:"required"`
	IsCorrect  bool   `json:"is_correct"`
}

type QuestionInput struct {
	QuestionText   string        `json:"question_text" binding:"required"`
	QuestionTypeID uint          `json:"question_type_id"`
	TimeLimit      int           `json:"time_limit"`
	Answers        []AnswerInput `json:"answers" binding:"required"`
}

type QuizCreate struct {
	QuizName     string          `json:"quiz_name" binding:"required"`
	CategoryID   uint            `json:"category_id" binding:"required"`
	DifficultyID uint            `json:"difficulty_id" binding:"required"`
	Duration     int             `json:"duration"`
	Questions    []QuestionInput `json:"questions" binding:"required"`
}

// Create builds the quiz with its questions and options in one transaction.
// Creators without customization rights are capped at five questions and a
// fixed duration.
func (s *QuizService) Create(creator *model.User, input QuizCreate) (*model.Quiz, error) {
	if _, err := s.categoryRepo.FindByID(input.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCategoryNotFound
		}
		return nil, err
	}
	if _, err := s.difficultyRepo.FindByID(input.DifficultyID); err != nil {
		return nil, err
	}

	customizable := creator.CanCustomize()
	duration := input.Duration
	if !customizable {
		if len(input.Questions) > regularQuestionLimit {
			return nil, util.ErrQuestionLimit
		}
		duration = regularDurationMins
	}
	if duration <= 0 {
		duration = regularDurationMins
	}

	questions := make([]model.Question, 0, len(input.Questions))
	options := make([][]model.AnswerOption, 0, len(input.Questions))
	for _, q := range input.Questions {
		hasCorrect := false
		opts := make([]model.AnswerOption, 0, len(q.Answers))
		for _, a := range q.Answers {
			if a.IsCorrect {
				hasCorrect = true
			}
			opts = append(opts, model.AnswerOption{AnswerText: a.AnswerText, IsCorrect: a.IsCorrect})
		}
		if !hasCorrect {
			return nil, util.ErrNoCorrectAnswer
		}
		typeID := q.QuestionTypeID
		if typeID == 0 {
			typeID = model.QuestionTypeMultiple
		}
		timeLimit := q.TimeLimit
		if timeLimit <= 0 {
			timeLimit = 30
		}
		questions = append(questions, model.Question{
			QuestionTypeID: typeID,
			QuestionText:   q.QuestionText,
			TimeLimit:      timeLimit,
		})
		options = append(options, opts)
	}

	quiz := &model.Quiz{
		QuizName:       input.QuizName,
		UserID:         creator.UserID,
		CategoryID:     input.CategoryID,
		DifficultyID:   input.DifficultyID,
		Duration:       duration,
		IsCustomizable: customizable,
	}
	if err := s.quizRepo.CreateWithQuestions(quiz, questions, options); err != nil {
		return nil, err
	}
	return quiz, nil
}

// QuizUpdate carries the editable header fields; nil means "leave unchanged".
type QuizUpdate struct {
	QuizName     *string `json:"quiz_name"`
	CategoryID   *uint   `json:"category_id"`
	DifficultyID *uint   `json:"difficulty_id"`
	Duration     *int    `json:"duration"`
}

// Update edits the quiz header. Only the owner and staff may edit.
func (s *QuizService) Update(quizID uint, caller *util.Claims, upd QuizUpdate) (*model.Quiz, error) {
	quiz, err := s.authorize(quizID, caller)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if upd.QuizName != nil {
		updates["quiz_name"] = *upd.QuizName
	}
	if upd.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(*upd.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, util.ErrCategoryNotFound
			}
			return nil, err
		}
		updates["category_id"] = *upd.CategoryID
	}
	if upd.DifficultyID != nil {
		if _, err := s.difficultyRepo.FindByID(*upd.DifficultyID); err != nil {
			return nil, err
		}
		updates["difficulty_id"] = *upd.DifficultyID
	}
	if upd.Duration != nil && *upd.Duration > 0 {
		updates["duration"] = *upd.Duration
	}
	if len(updates) > 0 {
		if err := s.quizRepo.Update(quizID, updates); err != nil {
			return nil, err
		}
	}
	return s.quizRepo.FindByID(quiz.QuizID)
}

// Delete removes a quiz and all dependent rows.
func (s *QuizService) Delete(quizID uint, caller *util.Claims) error {
	if _, err := s.authorize(quizID, caller); err != nil {
		return err
	}
	return s.quizRepo.DeleteCascade(quizID)
}

// ToggleLike flips the caller's like on a quiz.
func (s *QuizService) ToggleLike(quizID, userID uint) (liked bool, likes int64, err error) {
	if _, err := s.quizRepo.FindByID(quizID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, 0, util.ErrQuizNotFound
		}
		return false, 0, err
	}
	return s.likeRepo.Toggle(userID, quizID)
}

func (s *QuizService) Difficulties() ([]model.Difficulty, error) {
	return s.difficultyRepo.List()
}

func (s *QuizService) DifficultyStats(userID uint) ([]model.DifficultyStat, error) {
	return s.quizRepo.DifficultyStats(userID)
}

func (s *QuizService) MyStats(userID uint) ([]model.PersonalStat, error) {
	return s.quizRepo.MyStats(userID)
}

func (s *QuizService) authorize(quizID uint, caller *util.Claims) (*model.Quiz, error) {
	quiz, err := s.quizRepo.FindByID(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}
	isStaff := caller.RoleID == model.RoleAdmin || caller.RoleID == model.RoleManagement
	if quiz.UserID != caller.UserID && !isStaff {
		return nil, util.ErrPermissionDenied
	}
	return quiz, nil
}
