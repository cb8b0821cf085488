package repository

import (
	"quizify_backend/internal/model"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) List() ([]model.Category, error) {
	var categories []model.Category
	err := r.DB.Order("category_name ASC").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) FindByID(id uint) (*model.Category, error) {
	var category model.Category
	err := r.DB.First(&category, "category_id = ?", id).Error
	return &category, err
}

// FindByNameFold matches case-insensitively; uniqueness is enforced that way.
func (r *CategoryRepository) FindByNameFold(name string, excludeID uint) (*model.Category, error) {
	var category model.Category
	query := r.DB.Where("LOWER(category_name) = LOWER(?)", name)
	if excludeID != 0 {
		query = query.Where("category_id != ?", excludeID)
	}
	err := query.First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) Create(category *model.Category) error {
	return r.DB.Create(category).Error
}

func (r *CategoryRepository) Update(category *model.Category) error {
	return r.DB.Save(category).Error
}

func (r *CategoryRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Category{}, "category_id = ?", id).Error
}

func (r *CategoryRepository) QuizCount(categoryID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Quiz{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}
