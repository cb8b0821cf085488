package repository

import (
	"quizify_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

// QuestionWithOwner carries the owning quiz's creator for permission checks.
type QuestionWithOwner struct {
	model.Question
	QuizOwnerID uint
}

func (r *QuestionRepository) FindWithOwner(questionID uint) (*QuestionWithOwner, error) {
	var row QuestionWithOwner
	err := r.DB.Table("questions q").
		Select("q.*, z.user_id AS quiz_owner_id").
		Joins("JOIN quizzes z ON z.quiz_id = q.quiz_id").
		Where("q.question_id = ?", questionID).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *QuestionRepository) Update(questionID uint, updates map[string]interface{}) error {
	return r.DB.Model(&model.Question{}).Where("question_id = ?", questionID).Updates(updates).Error
}

// ReplaceAnswers swaps the full option set of a question in one transaction.
func (r *QuestionRepository) ReplaceAnswers(questionID uint, options []model.AnswerOption) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", questionID).Delete(&model.AnswerOption{}).Error; err != nil {
			return err
		}
		for i := range options {
			options[i].AnswerID = 0
			options[i].QuestionID = questionID
		}
		return tx.Create(&options).Error
	})
}

// DeleteCascade removes a question, its options and any recorded answers, then
// decrements the quiz's question_count.
func (r *QuestionRepository) DeleteCascade(questionID, quizID uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", questionID).Delete(&model.AttemptAnswer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("question_id = ?", questionID).Delete(&model.AnswerOption{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Question{}, "question_id = ?", questionID).Error; err != nil {
			return err
		}
		return tx.Model(&model.Quiz{}).
			Where("quiz_id = ? AND question_count > 0", quizID).
			Update("question_count", gorm.Expr("question_count - 1")).Error
	})
}
