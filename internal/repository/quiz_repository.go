package repository

import (
	"quizify_backend/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

// QuizFilter narrows the browse listing. Zero values mean "no filter".
type QuizFilter struct {
	CategoryID   uint
	DifficultyID uint
	Search       string
	CreatorID    uint
}

// List returns one page of the joined browse listing. viewerID drives the
// user_has_liked flag; pass 0 for anonymous callers.
func (r *QuizRepository) List(page, limit int, viewerID uint, filter QuizFilter) ([]model.QuizListing, int64, error) {
	countQuery := r.DB.Model(&model.Quiz{})
	base := r.DB.Table("quizzes q").
		Select(`q.quiz_id, q.quiz_name, q.question_count, q.duration, q.is_customizable, q.created_at,
			c.category_name, d.difficulty, u.username AS creator,
			(SELECT COUNT(*) FROM quiz_likes l WHERE l.quiz_id = q.quiz_id) AS likes,
			EXISTS(SELECT 1 FROM quiz_likes l WHERE l.quiz_id = q.quiz_id AND l.user_id = ?) AS user_has_liked`, viewerID).
		Joins("JOIN categories c ON c.category_id = q.category_id").
		Joins("JOIN quiz_difficulties d ON d.id = q.difficulty_id").
		Joins("JOIN users u ON u.user_id = q.user_id")

	if filter.CategoryID != 0 {
		countQuery = countQuery.Where("category_id = ?", filter.CategoryID)
		base = base.Where("q.category_id = ?", filter.CategoryID)
	}
	if filter.DifficultyID != 0 {
		countQuery = countQuery.Where("difficulty_id = ?", filter.DifficultyID)
		base = base.Where("q.difficulty_id = ?", filter.DifficultyID)
	}
	if filter.Search != "" {
		countQuery = countQuery.Where("quiz_name LIKE ?", "%"+filter.Search+"%")
		base = base.Where("q.quiz_name LIKE ?", "%"+filter.Search+"%")
	}
	if filter.CreatorID != 0 {
		countQuery = countQuery.Where("user_id = ?", filter.CreatorID)
		base = base.Where("q.user_id = ?", filter.CreatorID)
	}

	var total int64
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var listings []model.QuizListing
	err := base.Order("q.created_at DESC, q.quiz_id DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Scan(&listings).Error
	return listings, total, err
}

func (r *QuizRepository) FindByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.First(&quiz, "quiz_id = ?", id).Error
	return &quiz, err
}

// FindListing returns the single-quiz detail row in the same shape as List.
func (r *QuizRepository) FindListing(quizID, viewerID uint) (*model.QuizListing, error) {
	var listing model.QuizListing
	err := r.DB.Table("quizzes q").
		Select(`q.quiz_id, q.quiz_name, q.question_count, q.duration, q.is_customizable, q.created_at,
			c.category_name, d.difficulty, u.username AS creator,
			(SELECT COUNT(*) FROM quiz_likes l WHERE l.quiz_id = q.quiz_id) AS likes,
			EXISTS(SELECT 1 FROM quiz_likes l WHERE l.quiz_id = q.quiz_id AND l.user_id = ?) AS user_has_liked`, viewerID).
		Joins("JOIN categories c ON c.category_id = q.category_id").
		Joins("JOIN quiz_difficulties d ON d.id = q.difficulty_id").
		Joins("JOIN users u ON u.user_id = q.user_id").
		Where("q.quiz_id = ?", quizID).
		Take(&listing).Error
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

// QuestionsWithAnswers loads the playable question set in position order.
func (r *QuizRepository) QuestionsWithAnswers(quizID uint) ([]model.QuizQuestionView, error) {
	type questionRow struct {
		QuestionID   uint
		QuestionText string
		TimeLimit    int
		Type         string
	}
	var rows []questionRow
	err := r.DB.Table("questions q").
		Select("q.question_id, q.question_text, q.time_limit, t.name AS type").
		Joins("JOIN question_types t ON t.question_type_id = q.question_type_id").
		Where("q.quiz_id = ?", quizID).
		Order("q.position ASC, q.question_id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []model.QuizQuestionView{}, nil
	}

	ids := make([]uint, 0, len(rows))
	for _, q := range rows {
		ids = append(ids, q.QuestionID)
	}
	var options []model.AnswerOption
	if err := r.DB.Where("question_id IN ?", ids).Order("answer_id ASC").Find(&options).Error; err != nil {
		return nil, err
	}
	byQuestion := make(map[uint][]model.AnswerOptView, len(rows))
	for _, opt := range options {
		byQuestion[opt.QuestionID] = append(byQuestion[opt.QuestionID], model.AnswerOptView{
			AnswerID:   opt.AnswerID,
			AnswerText: opt.AnswerText,
			IsCorrect:  opt.IsCorrect,
		})
	}

	views := make([]model.QuizQuestionView, 0, len(rows))
	for _, q := range rows {
		views = append(views, model.QuizQuestionView{
			QuestionID:   q.QuestionID,
			QuestionText: q.QuestionText,
			TimeLimit:    q.TimeLimit,
			Type:         q.Type,
			Answers:      byQuestion[q.QuestionID],
		})
	}
	return views, nil
}

// CreateWithQuestions inserts the quiz, its questions and options in one
// transaction and bumps the category's times_chosen counter.
func (r *QuizRepository) CreateWithQuestions(quiz *model.Quiz, questions []model.Question, options [][]model.AnswerOption) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		quiz.QuestionCount = len(questions)
		if err := tx.Create(quiz).Error; err != nil {
			return err
		}
		for i := range questions {
			questions[i].QuizID = quiz.QuizID
			questions[i].Position = i + 1
			if err := tx.Create(&questions[i]).Error; err != nil {
				return err
			}
			for j := range options[i] {
				options[i][j].QuestionID = questions[i].QuestionID
			}
			if len(options[i]) > 0 {
				if err := tx.Create(&options[i]).Error; err != nil {
					return err
				}
			}
		}
		return tx.Model(&model.Category{}).
			Where("category_id = ?", quiz.CategoryID).
			Update("times_chosen", gorm.Expr("times_chosen + 1")).Error
	})
}

func (r *QuizRepository) Update(quizID uint, updates map[string]interface{}) error {
	return r.DB.Model(&model.Quiz{}).Where("quiz_id = ?", quizID).Updates(updates).Error
}

// DeleteCascade removes the quiz and every dependent row. SQLite enforces the
// foreign keys, so children go first.
func (r *QuizRepository) DeleteCascade(quizID uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		attemptIDs := tx.Model(&model.QuizAttempt{}).Select("attempt_id").Where("quiz_id = ?", quizID)
		if err := tx.Where("attempt_id IN (?)", attemptIDs).Delete(&model.AttemptAnswer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("quiz_id = ?", quizID).Delete(&model.QuizAttempt{}).Error; err != nil {
			return err
		}
		if err := tx.Where("quiz_id = ?", quizID).Delete(&model.QuizLike{}).Error; err != nil {
			return err
		}
		questionIDs := tx.Model(&model.Question{}).Select("question_id").Where("quiz_id = ?", quizID)
		if err := tx.Where("question_id IN (?)", questionIDs).Delete(&model.AnswerOption{}).Error; err != nil {
			return err
		}
		if err := tx.Where("quiz_id = ?", quizID).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Quiz{}, "quiz_id = ?", quizID).Error
	})
}

// Leaderboard ranks each user's best attempt on one quiz. Ties on score break
// toward the earlier finish.
func (r *QuizRepository) Leaderboard(quizID uint, limit int) ([]model.LeaderboardEntry, error) {
	var entries []model.LeaderboardEntry
	err := r.DB.Raw(`
		SELECT u.username, best.score AS total_score,
		       ROW_NUMBER() OVER (ORDER BY best.score DESC, best.finished_at ASC) AS rank
		FROM (
			SELECT a.user_id, a.score, a.finished_at,
			       ROW_NUMBER() OVER (PARTITION BY a.user_id ORDER BY a.score DESC, a.finished_at ASC) AS rn
			FROM quiz_attempts a
			WHERE a.quiz_id = ?
		) best
		JOIN users u ON u.user_id = best.user_id
		WHERE best.rn = 1
		ORDER BY best.score DESC, best.finished_at ASC
		LIMIT ?`, quizID, limit).Scan(&entries).Error
	return entries, err
}

// LeaderboardRow finds one user's ranked best attempt on a quiz; gorm.ErrRecordNotFound
// when the user never attempted it.
func (r *QuizRepository) LeaderboardRow(quizID, userID uint) (*model.LeaderboardEntry, error) {
	var entry model.LeaderboardEntry
	err := r.DB.Raw(`
		SELECT username, total_score, rank FROM (
			SELECT u.user_id, u.username, best.score AS total_score,
			       ROW_NUMBER() OVER (ORDER BY best.score DESC, best.finished_at ASC) AS rank
			FROM (
				SELECT a.user_id, a.score, a.finished_at,
				       ROW_NUMBER() OVER (PARTITION BY a.user_id ORDER BY a.score DESC, a.finished_at ASC) AS rn
				FROM quiz_attempts a
				WHERE a.quiz_id = ?
			) best
			JOIN users u ON u.user_id = best.user_id
			WHERE best.rn = 1
		) ranked WHERE user_id = ?`, quizID, userID).Scan(&entry).Error
	if err != nil {
		return nil, err
	}
	if entry.Username == "" {
		return nil, gorm.ErrRecordNotFound
	}
	return &entry, nil
}

// DifficultyStats buckets attempts by quiz difficulty. userID 0 means the
// site-wide histogram, otherwise one user's.
func (r *QuizRepository) DifficultyStats(userID uint) ([]model.DifficultyStat, error) {
	query := r.DB.Table("quiz_attempts a").
		Select("d.difficulty AS label, COUNT(*) AS count").
		Joins("JOIN quizzes q ON q.quiz_id = a.quiz_id").
		Joins("JOIN quiz_difficulties d ON d.id = q.difficulty_id")
	if userID != 0 {
		query = query.Where("a.user_id = ?", userID)
	}
	var stats []model.DifficultyStat
	err := query.Group("d.difficulty").Order("d.id ASC").Scan(&stats).Error
	return stats, err
}

// MyStats is the caller's attempt history, newest first.
func (r *QuizRepository) MyStats(userID uint) ([]model.PersonalStat, error) {
	var stats []model.PersonalStat
	err := r.DB.Table("quiz_attempts a").
		Select(`q.quiz_name, a.score AS your_score,
			(SELECT COUNT(*) FROM attempt_answers aa WHERE aa.attempt_id = a.attempt_id AND aa.is_correct = 1) AS correct_answers,
			q.question_count AS total_questions,
			c.category_name, a.finished_at`).
		Joins("JOIN quizzes q ON q.quiz_id = a.quiz_id").
		Joins("JOIN categories c ON c.category_id = q.category_id").
		Where("a.user_id = ?", userID).
		Order("a.finished_at DESC").
		Scan(&stats).Error
	return stats, err
}
