package service

import (
	"errors"

	"quizify_backend/internal/model"
	"quizify_backend/internal/repository"
	"quizify_backend/internal/util"

	"gorm.io/gorm"
)

type QuestionService struct {
	questionRepo *repository.QuestionRepository
}

func NewQuestionService(questionRepo *repository.QuestionRepository) *QuestionService {
	return &QuestionService{questionRepo: questionRepo}
}

// QuestionUpdate carries the editable fields. When Answers is non-nil the
// full option set is replaced and must keep at least one correct option.
type QuestionUpdate struct {
	QuestionText *string       `json:"question_text"`
	TimeLimit    *int          `json:"time_limit"`
	Answers      []AnswerInput `json:"answers"`
}

// Empty reports whether the update carries no fields at all.
func (u QuestionUpdate) Empty() bool {
	return u.QuestionText == nil && u.TimeLimit == nil && u.Answers == nil
}

// Update applies a partial question edit. Only the owning quiz's creator and
// staff may edit.
func (s *QuestionService) Update(questionID uint, caller *util.Claims, upd QuestionUpdate) error {
	question, err := s.authorize(questionID, caller)
	if err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if upd.QuestionText != nil {
		updates["question_text"] = *upd.QuestionText
	}
	if upd.TimeLimit != nil && *upd.TimeLimit > 0 {
		updates["time_limit"] = *upd.TimeLimit
	}
	if len(updates) > 0 {
		if err := s.questionRepo.Update(question.QuestionID, updates); err != nil {
			return err
		}
	}

	if upd.Answers != nil {
		hasCorrect := false
		options := make([]model.AnswerOption, 0, len(upd.Answers))
		for _, a := range upd.Answers {
			if a.IsCorrect {
				hasCorrect = true
			}
			options = append(options, model.AnswerOption{AnswerText: a.AnswerText, IsCorrect: a.IsCorrect})
		}
		if !hasCorrect {
			return util.ErrNoCorrectAnswer
		}
		if err := s.questionRepo.ReplaceAnswers(question.QuestionID, options); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a question with its options and recorded answers.
func (s *QuestionService) Delete(questionID uint, caller *util.Claims) error {
	question, err := s.authorize(questionID, caller)
	if err != nil {
		return err
	}
	return s.questionRepo.DeleteCascade(question.QuestionID, question.QuizID)
}

func (s *QuestionService) authorize(questionID uint, caller *util.Claims) (*repository.QuestionWithOwner, error) {
	question, err := s.questionRepo.FindWithOwner(questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}
	isStaff := caller.RoleID == model.RoleAdmin || caller.RoleID == model.RoleManagement
	if question.QuizOwnerID != caller.UserID && !isStaff {
		return nil, util.ErrPermissionDenied
	}
	return question, nil
}
