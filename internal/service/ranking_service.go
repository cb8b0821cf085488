package service

import (
	"errors"

	"quizify_backend/internal/model"
	"quizify_backend/internal/repository"
	"quizify_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RankingService owns the global dense ranking and both leaderboard
// projections. The stored users.rank column is a cached projection of the
// live computation and is rewritten after every scoring event.
type RankingService struct {
	userRepo    *repository.UserRepository
	quizRepo    *repository.QuizRepository
	attemptRepo *repository.AttemptRepository
}

func NewRankingService(userRepo *repository.UserRepository, quizRepo *repository.QuizRepository, attemptRepo *repository.AttemptRepository) *RankingService {
	return &RankingService{userRepo: userRepo, quizRepo: quizRepo, attemptRepo: attemptRepo}
}

// Leaderboard is the wire shape of both boards. CurrentUser is null when the
// caller is anonymous or already visible in Top.
type Leaderboard struct {
	Top         []model.LeaderboardEntry `json:"leaderboard"`
	CurrentUser *model.LeaderboardEntry  `json:"currentUser"`
}

const leaderboardSize = 10

// RecomputeRanks reassigns dense ranks 1..N over total_score descending with
// user_id as the tie-break. It runs outside any transaction: a failed run
// leaves stale ranks that the next scoring event repairs.
func (s *RankingService) RecomputeRanks() error {
	users, err := s.userRepo.AllByScore()
	if err != nil {
		return err
	}
	for i, u := range users {
		rank := i + 1
		if u.Rank == rank {
			continue
		}
		if err := s.userRepo.UpdateRank(u.UserID, rank); err != nil {
			return err
		}
	}
	return nil
}

// RecomputeRanksAsyncSafe is RecomputeRanks with the error demoted to a log
// line, for call sites where ranking must not fail the request.
func (s *RankingService) RecomputeRanksAsyncSafe() {
	if err := s.RecomputeRanks(); err != nil {
		logger.Log.Error("rank recompute failed", zap.Error(err))
	}
}

// GlobalLeaderboard returns the stored top 10 plus the caller's own row when
// their rank exceeds the visible window. viewerID 0 means anonymous.
func (s *RankingService) GlobalLeaderboard(viewerID uint) (*Leaderboard, error) {
	top, err := s.userRepo.TopRanked(leaderboardSize)
	if err != nil {
		return nil, err
	}
	board := &Leaderboard{Top: top}

	if viewerID != 0 {
		row, err := s.userRepo.LeaderboardRow(viewerID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if err == nil && row.Rank > leaderboardSize {
			board.CurrentUser = row
		}
	}
	return board, nil
}

// QuizLeaderboard ranks best attempts on one quiz live. It returns nil when
// the quiz has no attempts at all. Unlike the global board the caller's row
// is attached whenever they attempted the quiz, visible in the top or not.
func (s *RankingService) QuizLeaderboard(quizID, viewerID uint) (*Leaderboard, error) {
	top, err := s.quizRepo.Leaderboard(quizID, leaderboardSize)
	if err != nil {
		return nil, err
	}
	if len(top) == 0 {
		return nil, nil
	}
	board := &Leaderboard{Top: top}

	if viewerID != 0 {
		attempted, err := s.attemptRepo.HasAttempted(viewerID, quizID)
		if err != nil {
			return nil, err
		}
		if attempted {
			row, err := s.quizRepo.LeaderboardRow(quizID, viewerID)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			if err == nil {
				board.CurrentUser = row
			}
		}
	}
	return board, nil
}
