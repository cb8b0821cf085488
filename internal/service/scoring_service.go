package service

import (
	"errors"
	"fmt"
	"time"

	"quizify_backend/internal/model"
	"quizify_backend/internal/util"
	"quizify_backend/pkg/logger"
	"quizify_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ScoringService runs the submission flow: validate answers against the quiz,
// persist the attempt atomically, credit the user and refresh the ranking.
type ScoringService struct {
	db      *gorm.DB
	ranking *RankingService
}

func NewScoringService(db *gorm.DB, ranking *RankingService) *ScoringService {
	return &ScoringService{db: db, ranking: ranking}
}

// SubmittedAnswer is one (question, chosen answer) pair from the client.
type SubmittedAnswer struct {
	QuestionID uint `json:"question_id" binding:"required"`
	AnswerID   uint `json:"answer_id" binding:"required"`
	TimeTaken  int  `json:"time_taken"`
}

// SubmitResult is the submission response payload. Incorrect counts only
// submitted-but-wrong answers; unanswered questions are ignored.
type SubmitResult struct {
	Score       int          `json:"score"`
	Correct     int          `json:"correct_answers"`
	Incorrect   int          `json:"incorrect_answers"`
	Leaderboard *Leaderboard `json:"leaderboard"`
}

// SubmitQuiz scores one submission. Everything up to and including the audit
// row happens in a single transaction; a rejected answer rolls the whole
// attempt back. The rank recompute runs after commit.
func (s *ScoringService) SubmitQuiz(userID uint, username string, quizID uint, answers []SubmittedAnswer) (*SubmitResult, error) {
	var (
		score      int
		correct    int
		difficulty string
	)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var quiz model.Quiz
		if err := tx.First(&quiz, "quiz_id = ?", quizID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.ErrQuizNotFound
			}
			return err
		}
		var diff model.Difficulty
		if err := tx.First(&diff, "id = ?", quiz.DifficultyID).Error; err != nil {
			return err
		}
		difficulty = diff.Difficulty
		points := model.PointsPerCorrectAnswer(difficulty)

		// One correct-answer map for the whole quiz, built up front so the
		// per-answer loop never touches the database.
		var questions []model.Question
		if err := tx.Where("quiz_id = ?", quizID).Find(&questions).Error; err != nil {
			return err
		}
		questionIDs := make([]uint, 0, len(questions))
		inQuiz := make(map[uint]bool, len(questions))
		for _, q := range questions {
			questionIDs = append(questionIDs, q.QuestionID)
			inQuiz[q.QuestionID] = true
		}
		correctByQuestion := make(map[uint]uint, len(questions))
		optionOwner := make(map[uint]uint)
		if len(questionIDs) > 0 {
			var options []model.AnswerOption
			if err := tx.Where("question_id IN ?", questionIDs).Find(&options).Error; err != nil {
				return err
			}
			for _, opt := range options {
				optionOwner[opt.AnswerID] = opt.QuestionID
				if opt.IsCorrect {
					correctByQuestion[opt.QuestionID] = opt.AnswerID
				}
			}
		}

		now := time.Now()
		attempt := model.QuizAttempt{
			UserID:     userID,
			QuizID:     quizID,
			Score:      0,
			StartedAt:  now,
			FinishedAt: now,
		}
		if err := tx.Create(&attempt).Error; err != nil {
			return err
		}

		for _, a := range answers {
			if !inQuiz[a.QuestionID] {
				return util.ErrQuestionNotInQuiz
			}
			if optionOwner[a.AnswerID] != a.QuestionID {
				return util.ErrAnswerNotInQuest
			}
			isCorrect := correctByQuestion[a.QuestionID] == a.AnswerID
			if isCorrect {
				correct++
				score += points
			}
			row := model.AttemptAnswer{
				AttemptID:  attempt.AttemptID,
				QuestionID: a.QuestionID,
				AnswerID:   a.AnswerID,
				IsCorrect:  isCorrect,
				TimeTaken:  a.TimeTaken,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(&model.QuizAttempt{}).
			Where("attempt_id = ?", attempt.AttemptID).
			Update("score", score).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.User{}).
			Where("user_id = ?", userID).
			Update("total_score", gorm.Expr("total_score + ?", score)).Error; err != nil {
			return err
		}

		uid, qid := userID, quizID
		return tx.Create(&model.AuditLog{
			ActionPerformer: username,
			Action:          fmt.Sprintf("Completed quiz %q with score %d", quiz.QuizName, score),
			TimeOfAction:    now,
			UserID:          &uid,
			QuizID:          &qid,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	monitoring.ScoringEvents.WithLabelValues(difficulty).Inc()
	if err := s.ranking.RecomputeRanks(); err != nil {
		logger.Log.Error("rank recompute after submission failed", zap.Error(err), zap.Uint("user_id", userID))
	}

	board, err := s.ranking.GlobalLeaderboard(userID)
	if err != nil {
		return nil, err
	}
	return &SubmitResult{
		Score:       score,
		Correct:     correct,
		Incorrect:   len(answers) - correct,
		Leaderboard: board,
	}, nil
}
