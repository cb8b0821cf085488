package repository

import (
	"quizify_backend/internal/model"

	"gorm.io/gorm"
)

type SuggestionRepository struct {
	DB *gorm.DB
}

func NewSuggestionRepository(db *gorm.DB) *SuggestionRepository {
	return &SuggestionRepository{DB: db}
}

func (r *SuggestionRepository) Create(suggestion *model.Suggestion) error {
	return r.DB.Create(suggestion).Error
}

func (r *SuggestionRepository) FindByID(id uint) (*model.Suggestion, error) {
	var suggestion model.Suggestion
	err := r.DB.First(&suggestion, "suggestion_id = ?", id).Error
	return &suggestion, err
}

// List returns one page of suggestions joined with submitter and reviewer
// names. status and userID are optional filters.
func (r *SuggestionRepository) List(page, limit int, status model.SuggestionStatus, userID uint) ([]model.SuggestionView, int64, error) {
	countQuery := r.DB.Model(&model.Suggestion{})
	query := r.DB.Table("suggestions s").
		Select("s.*, u.username, rv.username AS reviewer_username").
		Joins("JOIN users u ON u.user_id = s.user_id").
		Joins("LEFT JOIN users rv ON rv.user_id = s.reviewer_id")

	if status != "" {
		countQuery = countQuery.Where("status = ?", status)
		query = query.Where("s.status = ?", status)
	}
	if userID != 0 {
		countQuery = countQuery.Where("user_id = ?", userID)
		query = query.Where("s.user_id = ?", userID)
	}

	var total int64
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var views []model.SuggestionView
	err := query.Order("s.created_at DESC, s.suggestion_id DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Scan(&views).Error
	return views, total, err
}

func (r *SuggestionRepository) Update(id uint, updates map[string]interface{}) error {
	return r.DB.Model(&model.Suggestion{}).Where("suggestion_id = ?", id).Updates(updates).Error
}

func (r *SuggestionRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Suggestion{}, "suggestion_id = ?", id).Error
}
