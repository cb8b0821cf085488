package util

import "errors"

var (
	ErrUserExists         = errors.New("username or email already taken")
	ErrUserNotFound       = errors.New("user not found")
	ErrRoleNotFound       = errors.New("role not found")
	ErrCannotDeleteAdmin  = errors.New("cannot delete administrator")
	ErrQuizNotFound       = errors.New("quiz not found")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrCategoryExists     = errors.New("category already exists")
	ErrCategoryInUse      = errors.New("category is in use and cannot be deleted")
	ErrSuggestionNotFound = errors.New("suggestion not found")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrNoCorrectAnswer    = errors.New("at least one answer must be correct")
	ErrQuestionNotInQuiz  = errors.New("question does not belong to quiz")
	ErrAnswerNotInQuest   = errors.New("answer does not belong to question")
	ErrQuestionLimit      = errors.New("question limit exceeded for unverified users")
)
