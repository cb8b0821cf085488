package service

import (
	"errors"

	"quizify_backend/internal/model"
	"quizify_backend/internal/repository"
	"quizify_backend/internal/util"

	"gorm.io/gorm"
)

type CategoryService struct {
	categoryRepo *repository.CategoryRepository
}

func NewCategoryService(categoryRepo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

func (s *CategoryService) List() ([]model.Category, error) {
	return s.categoryRepo.List()
}

// Create rejects names that collide case-insensitively with an existing one.
func (s *CategoryService) Create(name string) (*model.Category, error) {
	_, err := s.categoryRepo.FindByNameFold(name, 0)
	if err == nil {
		return nil, util.ErrCategoryExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category := &model.Category{CategoryName: name}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Rename(id uint, name string) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCategoryNotFound
		}
		return nil, err
	}

	_, err = s.categoryRepo.FindByNameFold(name, id)
	if err == nil {
		return nil, util.ErrCategoryExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category.CategoryName = name
	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete refuses while any quiz still references the category.
func (s *CategoryService) Delete(id uint) error {
	if _, err := s.categoryRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrCategoryNotFound
		}
		return err
	}
	count, err := s.categoryRepo.QuizCount(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return util.ErrCategoryInUse
	}
	return s.categoryRepo.Delete(id)
}
