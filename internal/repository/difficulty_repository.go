package repository

import (
	"quizify_backend/internal/model"

	"gorm.io/gorm"
)

type DifficultyRepository struct {
	DB *gorm.DB
}

func NewDifficultyRepository(db *gorm.DB) *DifficultyRepository {
	return &DifficultyRepository{DB: db}
}

func (r *DifficultyRepository) List() ([]model.Difficulty, error) {
	var difficulties []model.Difficulty
	err := r.DB.Order("id ASC").Find(&difficulties).Error
	return difficulties, err
}

func (r *DifficultyRepository) FindByID(id uint) (*model.Difficulty, error) {
	var difficulty model.Difficulty
	err := r.DB.First(&difficulty, "id = ?", id).Error
	return &difficulty, err
}
