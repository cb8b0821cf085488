package repository

import (
	"errors"

	"quizify_backend/internal/model"

	"gorm.io/gorm"
)

type LikeRepository struct {
	DB *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{DB: db}
}

// Toggle flips the (user, quiz) like and reports the resulting state plus the
// new total for the quiz.
func (r *LikeRepository) Toggle(userID, quizID uint) (liked bool, likes int64, err error) {
	err = r.DB.Transaction(func(tx *gorm.DB) error {
		var existing model.QuizLike
		findErr := tx.Where("user_id = ? AND quiz_id = ?", userID, quizID).Take(&existing).Error
		switch {
		case findErr == nil:
			liked = false
			if err := tx.Where("user_id = ? AND quiz_id = ?", userID, quizID).Delete(&model.QuizLike{}).Error; err != nil {
				return err
			}
		case errors.Is(findErr, gorm.ErrRecordNotFound):
			liked = true
			if err := tx.Create(&model.QuizLike{UserID: userID, QuizID: quizID}).Error; err != nil {
				return err
			}
		default:
			return findErr
		}
		return tx.Model(&model.QuizLike{}).Where("quiz_id = ?", quizID).Count(&likes).Error
	})
	return liked, likes, err
}
