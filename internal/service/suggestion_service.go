package service

import (
	"errors"
	"time"

	"quizify_backend/internal/model"
	"quizify_backend/internal/repository"
	"quizify_backend/internal/util"

	"gorm.io/gorm"
)

type SuggestionService struct {
	suggestionRepo *repository.SuggestionRepository
}

func NewSuggestionService(suggestionRepo *repository.SuggestionRepository) *SuggestionService {
	return &SuggestionService{suggestionRepo: suggestionRepo}
}

func (s *SuggestionService) Submit(userID uint, title, description string) (*model.Suggestion, error) {
	suggestion := &model.Suggestion{
		UserID:      userID,
		Title:       title,
		Description: description,
		Status:      model.SuggestionPending,
	}
	if err := s.suggestionRepo.Create(suggestion); err != nil {
		return nil, err
	}
	return suggestion, nil
}

func (s *SuggestionService) List(page, limit int, status model.SuggestionStatus, userID uint) ([]model.SuggestionView, int64, error) {
	return s.suggestionRepo.List(page, limit, status, userID)
}

// SetStatus moves a suggestion between review states. Pending clears the
// reviewer fields, the other states stamp the acting reviewer and time.
func (s *SuggestionService) SetStatus(id uint, status model.SuggestionStatus, reviewerID uint) (*model.Suggestion, error) {
	if _, err := s.suggestionRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSuggestionNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{"status": status}
	if status == model.SuggestionPending {
		updates["reviewer_id"] = nil
		updates["reviewed_at"] = nil
	} else {
		updates["reviewer_id"] = reviewerID
		updates["reviewed_at"] = time.Now()
	}
	if err := s.suggestionRepo.Update(id, updates); err != nil {
		return nil, err
	}
	return s.suggestionRepo.FindByID(id)
}
